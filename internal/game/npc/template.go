// Package npc provides declarative stat-block templates for NPCs and monsters
// and tracks the live entities spawned from them.
package npc

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

// Kind distinguishes talking NPCs from monsters.
type Kind string

const (
	KindNPC     Kind = "npc"
	KindMonster Kind = "monster"
)

// OnHit configures a chance-based condition applied after a successful hit.
type OnHit struct {
	Condition string `yaml:"condition"`
	// MinRoll is the lowest standard-die face that applies the condition.
	MinRoll int `yaml:"min_roll"`
}

// Template defines a reusable combatant archetype loaded from YAML.
type Template struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Kind        Kind           `yaml:"kind"`
	Attributes  ruleset.Scores `yaml:"attributes"`
	Skills      []string       `yaml:"skills"`
	Talents     []string       `yaml:"talents"`
	// Resistances maps damage type names to fractional reductions.
	Resistances map[string]float64 `yaml:"resistances"`
	// Equipment lists item IDs equipped at spawn, in order.
	Equipment []string   `yaml:"equipment"`
	Spells    []string   `yaml:"spells"`
	XPValue   int        `yaml:"xp_value"`
	Dialogue  string     `yaml:"dialogue"`
	Loot      *LootTable `yaml:"loot"`
	OnHit     *OnHit     `yaml:"on_hit"`
}

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff every field is well formed; returns an error
// on the first violation otherwise. Item, talent, and condition references
// are resolved at spawn time.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("npc template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("npc template %q: name must not be empty", t.ID)
	}
	if t.Kind != KindNPC && t.Kind != KindMonster {
		return fmt.Errorf("npc template %q: kind must be npc or monster, got %q", t.ID, t.Kind)
	}
	a := t.Attributes
	if a.Warrior < 0 || a.Rogue < 0 || a.Mage < 0 {
		return fmt.Errorf("npc template %q: attributes must be >= 0", t.ID)
	}
	if _, err := ruleset.ParseSkills(t.Skills); err != nil {
		return fmt.Errorf("npc template %q: %w", t.ID, err)
	}
	for name, f := range t.Resistances {
		if _, err := ruleset.ParseDamageType(name); err != nil {
			return fmt.Errorf("npc template %q: %w", t.ID, err)
		}
		if f <= 0 || f > 1 {
			return fmt.Errorf("npc template %q: resistance %s must be in (0, 1], got %v", t.ID, name, f)
		}
	}
	if t.XPValue < 0 {
		return fmt.Errorf("npc template %q: xp_value must be >= 0", t.ID)
	}
	if t.Loot != nil {
		if err := t.Loot.Validate(); err != nil {
			return fmt.Errorf("npc template %q: %w", t.ID, err)
		}
	}
	if t.OnHit != nil {
		if t.OnHit.Condition == "" {
			return fmt.Errorf("npc template %q: on_hit condition must not be empty", t.ID)
		}
		if t.OnHit.MinRoll < 1 {
			return fmt.Errorf("npc template %q: on_hit min_roll must be >= 1", t.ID)
		}
	}
	return nil
}

// LoadTemplateFromBytes parses a single NPC template from raw YAML bytes.
//
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all YAML files in dir of fsys and returns the parsed templates.
//
// Postcondition: Returns all templates or an error on the first parse or validate
// failure; on error, the partial result is discarded.
func LoadTemplates(fsys fs.FS, dir string) ([]*Template, error) {
	var templates []*Template
	err := ruleset.EachYAML(fsys, dir, func(name string, data []byte) error {
		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return fmt.Errorf("loading %q: %w", name, err)
		}
		templates = append(templates, tmpl)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return templates, nil
}
