package npc

import (
	"fmt"

	"github.com/cory-johannsen/wrm/internal/game/character"
	"github.com/cory-johannsen/wrm/internal/game/inventory"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

// Instance is a live entity spawned from a template.
type Instance struct {
	// ID uniquely identifies this runtime instance.
	ID string
	// Template is the source stat block.
	Template *Template
	// Character is the entity's mutable state.
	Character *character.Character
}

// Build constructs a fresh character from tmpl: attributes, skills, talents,
// resistances, known spells, and equipped gear.
//
// Precondition: tmpl must have passed Validate; items and talents must be non-nil.
// Postcondition: Returns an error for an unknown talent or item reference, or
// an equipment entry that cannot be equipped.
func Build(tmpl *Template, items *inventory.Registry, talents *ruleset.Registry, rules ruleset.Rules) (*character.Character, error) {
	skills, err := ruleset.ParseSkills(tmpl.Skills)
	if err != nil {
		return nil, fmt.Errorf("npc %q: %w", tmpl.ID, err)
	}
	p := character.Params{
		Name:        tmpl.Name,
		TemplateID:  tmpl.ID,
		Attributes:  tmpl.Attributes,
		Skills:      skills,
		Resistances: make(map[ruleset.DamageType]float64, len(tmpl.Resistances)),
		Items:       items,
		Rules:       rules,
	}
	for _, id := range tmpl.Talents {
		t, err := talents.Lookup(id)
		if err != nil {
			return nil, fmt.Errorf("npc %q: %w", tmpl.ID, err)
		}
		p.Talents = append(p.Talents, t)
	}
	for name, f := range tmpl.Resistances {
		dt, err := ruleset.ParseDamageType(name)
		if err != nil {
			return nil, fmt.Errorf("npc %q: %w", tmpl.ID, err)
		}
		p.Resistances[dt] = f
	}
	c := character.New(p)
	for _, id := range tmpl.Spells {
		c.Learn(id)
	}
	for _, id := range tmpl.Equipment {
		def, err := items.Lookup(id)
		if err != nil {
			return nil, fmt.Errorf("npc %q: %w", tmpl.ID, err)
		}
		inst := inventory.NewInstance(def)
		c.AddItem(inst)
		if err := c.Equip(inst.InstanceID); err != nil {
			return nil, fmt.Errorf("npc %q equipping %q: %w", tmpl.ID, id, err)
		}
	}
	return c, nil
}

// IsDead reports whether the instance has zero or fewer hit points.
func (i *Instance) IsDead() bool {
	return i.Character.IsDead()
}

// HealthDescription returns a visible health state string suitable for examine output.
//
// Postcondition: Returns a non-empty string.
func (i *Instance) HealthDescription() string {
	c := i.Character
	if c.IsDead() {
		return "dead"
	}
	pct := float64(c.HP()) / float64(c.MaxHP())
	switch {
	case pct >= 1.0:
		return "unharmed"
	case pct >= 0.85:
		return "barely scratched"
	case pct >= 0.60:
		return "lightly wounded"
	case c.SeriouslyWounded() && pct >= 0.20:
		return "seriously wounded"
	case pct >= 0.20:
		return "moderately wounded"
	default:
		return "critically wounded"
	}
}
