package character

import (
	"fmt"

	"github.com/cory-johannsen/wrm/internal/game/condition"
	"github.com/cory-johannsen/wrm/internal/game/inventory"
	"github.com/cory-johannsen/wrm/internal/game/quest"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

// ConditionState is the saved form of one active status effect.
type ConditionState struct {
	ID        string `yaml:"id"`
	Remaining int    `yaml:"remaining"`
}

// Snapshot is the plain-data form of a Character, suitable for any
// persistence format. Derived values are not stored.
type Snapshot struct {
	Name       string         `yaml:"name"`
	TemplateID string         `yaml:"template_id,omitempty"`
	Race       string         `yaml:"race,omitempty"`
	Attributes ruleset.Scores `yaml:"attributes"`
	Skills     []string       `yaml:"skills"`

	HP      int `yaml:"hp"`
	MaxHP   int `yaml:"max_hp"`
	Mana    int `yaml:"mana"`
	MaxMana int `yaml:"max_mana"`
	Fate    int `yaml:"fate"`

	Talents      []string           `yaml:"talents"`
	SkillBonuses map[string]int     `yaml:"skill_bonuses,omitempty"`
	RangedBonus  int                `yaml:"ranged_bonus,omitempty"`
	MeleeBonus   int                `yaml:"melee_bonus,omitempty"`
	BloodMagic   bool               `yaml:"blood_magic,omitempty"`
	Resistances  map[string]float64 `yaml:"resistances,omitempty"`

	Inventory []inventory.ItemInstance `yaml:"inventory"`
	Equipped  map[string]string        `yaml:"equipped,omitempty"` // slot -> instance ID

	Spellbook  []string         `yaml:"spellbook"`
	Sustained  []string         `yaml:"sustained"`
	Conditions []ConditionState `yaml:"conditions"`

	Level           int `yaml:"level"`
	Experience      int `yaml:"experience"`
	Threshold       int `yaml:"threshold"`
	PendingAdvances int `yaml:"pending_advances"`

	Quests []quest.State `yaml:"quests"`
}

// Snapshot captures the full state of c.
func (c *Character) Snapshot() Snapshot {
	s := Snapshot{
		Name:            c.name,
		TemplateID:      c.templateID,
		Race:            c.race,
		Attributes:      c.attrs,
		HP:              c.hp,
		MaxHP:           c.maxHP,
		Mana:            c.mana,
		MaxMana:         c.maxMana,
		Fate:            c.fate,
		Talents:         c.Talents(),
		RangedBonus:     c.rangedBonus,
		MeleeBonus:      c.meleeBonus,
		BloodMagic:      c.bloodMagic,
		Spellbook:       c.Spellbook(),
		Sustained:       c.Sustained(),
		Level:           c.level,
		Experience:      c.xp,
		Threshold:       c.threshold,
		PendingAdvances: c.pendingAdvances,
		Quests:          c.Journal.States(),
	}
	for _, sk := range c.skills {
		s.Skills = append(s.Skills, string(sk))
	}
	for sk, v := range c.skillBonus {
		if s.SkillBonuses == nil {
			s.SkillBonuses = make(map[string]int)
		}
		s.SkillBonuses[string(sk)] = v
	}
	for dt, f := range c.resistances {
		if s.Resistances == nil {
			s.Resistances = make(map[string]float64)
		}
		s.Resistances[dt.String()] = f
	}
	for _, it := range c.inv.Items() {
		s.Inventory = append(s.Inventory, *it)
	}
	for slot, it := range c.equipped {
		if s.Equipped == nil {
			s.Equipped = make(map[string]string)
		}
		s.Equipped[string(slot)] = it.InstanceID
	}
	for _, id := range c.conditions.IDs() {
		s.Conditions = append(s.Conditions, ConditionState{ID: id, Remaining: c.conditions.Remaining(id)})
	}
	return s
}

// Restore rebuilds a Character from s. Conditions are resolved against
// conds; quests are not restored here because they need live definitions.
//
// Postcondition: Returns an error for unknown skills, damage types,
// conditions, or equipped instances missing from the inventory.
func Restore(s Snapshot, items *inventory.Registry, conds *condition.Registry, rules ruleset.Rules) (*Character, error) {
	skills, err := ruleset.ParseSkills(s.Skills)
	if err != nil {
		return nil, fmt.Errorf("restoring %q: %w", s.Name, err)
	}
	c := New(Params{Name: s.Name, TemplateID: s.TemplateID, Race: s.Race, Items: items, Rules: rules})
	c.attrs = s.Attributes
	c.skills = skills
	c.maxHP, c.hp = s.MaxHP, min(max(0, s.HP), s.MaxHP)
	c.maxMana, c.mana = s.MaxMana, min(max(0, s.Mana), s.MaxMana)
	c.fate = max(0, s.Fate)
	c.talents = append([]string(nil), s.Talents...)
	c.rangedBonus, c.meleeBonus, c.bloodMagic = s.RangedBonus, s.MeleeBonus, s.BloodMagic
	for name, v := range s.SkillBonuses {
		sk, err := ruleset.ParseSkill(name)
		if err != nil {
			return nil, fmt.Errorf("restoring %q: %w", s.Name, err)
		}
		c.skillBonus[sk] = v
	}
	for name, f := range s.Resistances {
		dt, err := ruleset.ParseDamageType(name)
		if err != nil {
			return nil, fmt.Errorf("restoring %q: %w", s.Name, err)
		}
		c.resistances[dt] = f
	}
	for i := range s.Inventory {
		it := s.Inventory[i]
		c.inv.Add(&it)
	}
	for slot, id := range s.Equipped {
		inst, ok := c.inv.Get(id)
		if !ok {
			return nil, fmt.Errorf("restoring %q: equipped %w: %q", s.Name, ErrNotOwned, id)
		}
		c.equipped[inventory.Slot(slot)] = inst
	}
	c.spellbook = append([]string(nil), s.Spellbook...)
	for _, id := range s.Sustained {
		if c.Knows(id) {
			c.sustained = append(c.sustained, id)
		}
	}
	for _, cs := range s.Conditions {
		var def *condition.ConditionDef
		ok := false
		if conds != nil {
			def, ok = conds.Get(cs.ID)
		}
		if !ok {
			return nil, fmt.Errorf("restoring %q: unknown condition %q", s.Name, cs.ID)
		}
		c.conditions.ApplyFor(def.New(), cs.Remaining)
	}
	c.level = max(1, s.Level)
	c.xp = max(0, s.Experience)
	c.threshold = max(1, s.Threshold)
	c.pendingAdvances = max(0, s.PendingAdvances)
	return c, nil
}
