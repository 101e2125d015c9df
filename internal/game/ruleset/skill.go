package ruleset

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSkill is returned when a skill name is not in the skill catalog.
var ErrUnknownSkill = errors.New("unknown skill")

// Skill is a validated skill name.
type Skill string

const (
	Axes     Skill = "Axes"
	Blunt    Skill = "Blunt"
	Polearms Skill = "Polearms"
	Riding   Skill = "Riding"
	Swords   Skill = "Swords"
	Unarmed  Skill = "Unarmed"

	Acrobatics Skill = "Acrobatics"
	Bows       Skill = "Bows"
	Daggers    Skill = "Daggers"
	Firearms   Skill = "Firearms"
	Thievery   Skill = "Thievery"
	Thrown     Skill = "Thrown"

	Alchemy     Skill = "Alchemy"
	Awareness   Skill = "Awareness"
	Herbalism   Skill = "Herbalism"
	Lore        Skill = "Lore"
	Thaumaturgy Skill = "Thaumaturgy"
)

// catalog maps each skill to the attribute that governs it.
var catalog = map[Skill]Attribute{
	Axes: Warrior, Blunt: Warrior, Polearms: Warrior, Riding: Warrior, Swords: Warrior, Unarmed: Warrior,
	Acrobatics: Rogue, Bows: Rogue, Daggers: Rogue, Firearms: Rogue, Thievery: Rogue, Thrown: Rogue,
	Alchemy: Mage, Awareness: Mage, Herbalism: Mage, Lore: Mage, Thaumaturgy: Mage,
}

// ThaumaturgySkills is the relevant skill set for spellcasting and ritual checks.
var ThaumaturgySkills = []Skill{Thaumaturgy}

// ParseSkill validates s against the skill catalog.
//
// Postcondition: Returns the Skill, or an error wrapping ErrUnknownSkill.
func ParseSkill(s string) (Skill, error) {
	sk := Skill(s)
	if _, ok := catalog[sk]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSkill, s)
	}
	return sk, nil
}

// ParseSkills validates every name in names.
//
// Postcondition: Returns the skills in input order, or the first validation error.
func ParseSkills(names []string) ([]Skill, error) {
	out := make([]Skill, 0, len(names))
	for _, n := range names {
		sk, err := ParseSkill(n)
		if err != nil {
			return nil, err
		}
		out = append(out, sk)
	}
	return out, nil
}

// Valid reports whether s is in the skill catalog.
func (s Skill) Valid() bool {
	_, ok := catalog[s]
	return ok
}

// Attribute returns the attribute governing s, or AttributeUnknown.
func (s Skill) Attribute() Attribute {
	return catalog[s]
}

// SkillsFor returns the catalog skills governed by attr in alphabetical order.
func SkillsFor(attr Attribute) []Skill {
	var out []Skill
	for sk, a := range catalog {
		if a == attr {
			out = append(out, sk)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
