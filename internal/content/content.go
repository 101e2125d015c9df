// Package content embeds the default game data and loads any content tree
// (embedded or on disk) into registries.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/cory-johannsen/wrm/internal/game/condition"
	"github.com/cory-johannsen/wrm/internal/game/inventory"
	"github.com/cory-johannsen/wrm/internal/game/magic"
	"github.com/cory-johannsen/wrm/internal/game/npc"
	"github.com/cory-johannsen/wrm/internal/game/quest"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

//go:embed items spells talents races conditions npcs quests
var embedded embed.FS

// Directory names within a content tree.
const (
	ItemsDir      = "items"
	SpellsDir     = "spells"
	TalentsDir    = "talents"
	RacesDir      = "races"
	ConditionsDir = "conditions"
	NPCsDir       = "npcs"
	QuestsDir     = "quests"
)

// Embedded returns the default content tree compiled into the binary.
func Embedded() fs.FS { return embedded }

// Content is a fully loaded content tree.
type Content struct {
	Items      *inventory.Registry
	Rules      *ruleset.Registry
	Conditions *condition.Registry
	Spells     []*magic.SpellDef
	NPCs       []*npc.Template
	Quests     map[string]*quest.Def
}

// Load reads every content directory of fsys. Missing directories are empty.
//
// Postcondition: Returns the first load error, or the joined cross-reference
// errors from Validate.
func Load(fsys fs.FS) (*Content, error) {
	c := &Content{Items: inventory.NewRegistry(), Rules: ruleset.NewRegistry()}

	items, err := inventory.LoadItems(fsys, ItemsDir)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	for _, it := range items {
		if err := c.Items.RegisterItem(it); err != nil {
			return nil, err
		}
	}

	talents, err := ruleset.LoadTalents(fsys, TalentsDir)
	if err != nil {
		return nil, fmt.Errorf("loading talents: %w", err)
	}
	for _, t := range talents {
		if err := c.Rules.RegisterTalent(t); err != nil {
			return nil, err
		}
	}
	races, err := ruleset.LoadRaces(fsys, RacesDir)
	if err != nil {
		return nil, fmt.Errorf("loading races: %w", err)
	}
	for _, r := range races {
		if err := c.Rules.RegisterRace(r); err != nil {
			return nil, err
		}
	}

	if c.Conditions, err = condition.LoadDirectory(fsys, ConditionsDir); err != nil {
		return nil, fmt.Errorf("loading conditions: %w", err)
	}
	if c.Spells, err = magic.LoadSpells(fsys, SpellsDir); err != nil {
		return nil, fmt.Errorf("loading spells: %w", err)
	}
	if c.NPCs, err = npc.LoadTemplates(fsys, NPCsDir); err != nil {
		return nil, fmt.Errorf("loading npcs: %w", err)
	}
	if c.Quests, err = quest.LoadDefs(fsys, QuestsDir); err != nil {
		return nil, fmt.Errorf("loading quests: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadEmbedded loads the default content tree.
func LoadEmbedded() (*Content, error) { return Load(embedded) }

// Validate checks references between content kinds: template items, talents
// and on-hit conditions; loot and reward items; implement spells.
//
// Postcondition: Returns nil, or an error joining every dangling reference.
func (c *Content) Validate() error {
	spells := make(map[string]bool, len(c.Spells))
	for _, s := range c.Spells {
		spells[s.ID] = true
	}
	var errs []error
	item := func(owner, id string) {
		if _, ok := c.Items.Item(id); !ok {
			errs = append(errs, fmt.Errorf("%s: %w %q", owner, inventory.ErrUnknownItem, id))
		}
	}
	for _, it := range c.Items.AllItems() {
		if it.Implement == nil {
			continue
		}
		for _, id := range it.Implement.Spells {
			if !spells[id] {
				errs = append(errs, fmt.Errorf("item %q: %w %q", it.ID, magic.ErrUnknownSpell, id))
			}
		}
	}
	for _, t := range c.NPCs {
		owner := "npc " + t.ID
		for _, id := range t.Equipment {
			item(owner, id)
		}
		for _, id := range t.Talents {
			if _, err := c.Rules.Lookup(id); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", owner, err))
			}
		}
		for _, id := range t.Spells {
			if !spells[id] {
				errs = append(errs, fmt.Errorf("%s: %w %q", owner, magic.ErrUnknownSpell, id))
			}
		}
		if t.Loot != nil {
			for _, d := range t.Loot.Items {
				item(owner, d.ItemID)
			}
		}
		if t.OnHit != nil {
			if _, ok := c.Conditions.Get(t.OnHit.Condition); !ok {
				errs = append(errs, fmt.Errorf("%s: unknown on_hit condition %q", owner, t.OnHit.Condition))
			}
		}
	}
	for id, q := range c.Quests {
		for _, it := range q.Reward.Items {
			item("quest "+id, it)
		}
	}
	return errors.Join(errs...)
}

// Library binds the loaded spells to effects.
//
// Postcondition: Returns an error wrapping magic.ErrUnknownEffect for a spell
// whose effect is not in effects.
func (c *Content) Library(effects *magic.Effects) (*magic.Library, error) {
	lib := magic.NewLibrary(effects)
	for _, s := range c.Spells {
		if err := lib.Register(s); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// NPCManager returns a Manager holding every loaded template.
func (c *Content) NPCManager(rules ruleset.Rules) (*npc.Manager, error) {
	m := npc.NewManager(c.Items, c.Rules, rules)
	for _, t := range c.NPCs {
		if err := m.AddTemplate(t); err != nil {
			return nil, err
		}
	}
	return m, nil
}
