// Package character defines the entity model shared by player characters and
// content-defined NPCs and monsters: attributes, skills, resource pools,
// equipment, spellbook, status effects, talents, and progression.
package character

import (
	"errors"
	"math"

	"github.com/cory-johannsen/wrm/internal/game/condition"
	"github.com/cory-johannsen/wrm/internal/game/inventory"
	"github.com/cory-johannsen/wrm/internal/game/quest"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

var (
	// ErrNotOwned is returned when an item instance is not in the inventory.
	ErrNotOwned = errors.New("item not owned")
	// ErrNotEquipped is returned when unequipping an item that is not equipped.
	ErrNotEquipped = errors.New("item not equipped")
	// ErrNotEquippable is returned when equipping an item with no equipment slot.
	ErrNotEquippable = errors.New("item cannot be equipped")
	// ErrNotAPotion is returned when using a non-potion item as a potion.
	ErrNotAPotion = errors.New("item is not a potion")
	// ErrNotSustainable is returned when sustaining an unknown or instantaneous spell.
	ErrNotSustainable = errors.New("spell cannot be sustained")
	// ErrInvalidCreation is returned when character creation choices break the rules.
	ErrInvalidCreation = errors.New("invalid character creation")
)

// Params configures New.
type Params struct {
	Name       string
	TemplateID string
	Race       string
	Attributes ruleset.Scores
	Skills     []ruleset.Skill
	Talents    []*ruleset.TalentDef
	// Resistances are innate fractional damage reductions, e.g. 0.5 for half damage.
	Resistances map[ruleset.DamageType]float64
	// Items resolves item definitions for equipment. Nil means only UnarmedStrike.
	Items *inventory.Registry
	// Rules is the rules table. The zero value means ruleset.DefaultRules().
	Rules ruleset.Rules
}

// Character is a combat participant.
//
// Invariant: 0 <= HP() <= MaxHP(); 0 <= Mana() <= MaxMana(); Fate() >= 0.
// It is not safe for concurrent use; resolvers act on one entity at a time.
type Character struct {
	name       string
	templateID string
	race       string
	rules      ruleset.Rules
	items      *inventory.Registry

	attrs  ruleset.Scores
	skills []ruleset.Skill

	hp, maxHP     int
	mana, maxMana int
	fate          int

	talents     []string
	skillBonus  map[ruleset.Skill]int
	rangedBonus int
	meleeBonus  int
	bloodMagic  bool
	resistances map[ruleset.DamageType]float64

	inv      *inventory.Inventory
	equipped map[inventory.Slot]*inventory.ItemInstance

	spellbook []string
	sustained []string

	conditions *condition.ActiveSet

	level, xp, threshold int
	pendingAdvances      int

	// Journal tracks the quests this character follows.
	Journal *quest.Journal
}

// New constructs a Character from p. Construction is total: negative
// attributes are raised to zero and skills outside the catalog are dropped.
//
// Postcondition: HP = 6 + warrior, mana = 2 * mage, fate = max(1, rogue),
// before talent effects; level 1 with the starting XP threshold.
func New(p Params) *Character {
	rules := p.Rules
	if rules == (ruleset.Rules{}) {
		rules = ruleset.DefaultRules()
	}
	items := p.Items
	if items == nil {
		items = inventory.NewRegistry()
	}
	attrs := ruleset.Scores{
		Warrior: max(0, p.Attributes.Warrior),
		Rogue:   max(0, p.Attributes.Rogue),
		Mage:    max(0, p.Attributes.Mage),
	}
	c := &Character{
		name:        p.Name,
		templateID:  p.TemplateID,
		race:        p.Race,
		rules:       rules,
		items:       items,
		attrs:       attrs,
		skillBonus:  make(map[ruleset.Skill]int),
		resistances: make(map[ruleset.DamageType]float64),
		inv:         inventory.NewInventory(),
		equipped:    make(map[inventory.Slot]*inventory.ItemInstance),
		level:       1,
		threshold:   rules.StartingXPThreshold,
		Journal:     quest.NewJournal(),
	}
	c.maxHP = 6 + attrs.Warrior
	c.hp = c.maxHP
	c.maxMana = 2 * attrs.Mage
	c.mana = c.maxMana
	c.fate = max(1, attrs.Rogue)
	c.conditions = condition.NewActiveSet(c)
	for _, sk := range p.Skills {
		c.addSkill(sk)
	}
	for dt, f := range p.Resistances {
		c.addResistance(dt, f)
	}
	for _, t := range p.Talents {
		c.AcquireTalent(t)
	}
	return c
}

// Name returns the display name.
func (c *Character) Name() string { return c.name }

// TemplateID returns the content template the entity was built from, or "".
func (c *Character) TemplateID() string { return c.templateID }

// Race returns the race ID, or "".
func (c *Character) Race() string { return c.race }

// Rules returns the rules table the entity was built with.
func (c *Character) Rules() ruleset.Rules { return c.rules }

// Attributes returns a copy of the attribute scores.
func (c *Character) Attributes() ruleset.Scores { return c.attrs }

// Attribute returns the score for attr.
//
// Postcondition: Returns an error wrapping ruleset.ErrInvalidAttribute for an invalid attr.
func (c *Character) Attribute(attr ruleset.Attribute) (int, error) {
	return c.attrs.Get(attr)
}

// Skills returns the known skills in acquisition order.
func (c *Character) Skills() []ruleset.Skill {
	return append([]ruleset.Skill(nil), c.skills...)
}

// HasSkill reports whether sk is known.
func (c *Character) HasSkill(sk ruleset.Skill) bool {
	for _, s := range c.skills {
		if s == sk {
			return true
		}
	}
	return false
}

// HasAnySkill reports whether any of skills is known.
func (c *Character) HasAnySkill(skills []ruleset.Skill) bool {
	for _, sk := range skills {
		if c.HasSkill(sk) {
			return true
		}
	}
	return false
}

func (c *Character) addSkill(sk ruleset.Skill) bool {
	if !sk.Valid() || c.HasSkill(sk) {
		return false
	}
	c.skills = append(c.skills, sk)
	return true
}

// BaseDefense returns (warrior + rogue) / 2 + 4.
func (c *Character) BaseDefense() int {
	return (c.attrs.Warrior+c.attrs.Rogue)/2 + 4
}

// Conditions returns the active status effects.
func (c *Character) Conditions() *condition.ActiveSet { return c.conditions }

// Inventory returns the owned item instances.
func (c *Character) Inventory() *inventory.Inventory { return c.inv }

// Resistance returns the fractional reduction against dt, in [0, 1].
func (c *Character) Resistance(dt ruleset.DamageType) float64 {
	return c.resistances[dt]
}

func (c *Character) addResistance(dt ruleset.DamageType, f float64) {
	if !dt.Valid() || f <= 0 {
		return
	}
	c.resistances[dt] = math.Min(1, c.resistances[dt]+f)
}
