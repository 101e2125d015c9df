package ruleset

import (
	"errors"
	"fmt"
)

// TalentType distinguishes talents available on advancement from those only
// granted by race.
type TalentType string

const (
	TalentGeneral TalentType = "general"
	TalentRacial  TalentType = "racial"
)

// EffectKind names one passive modifier a talent applies when acquired.
type EffectKind string

const (
	// EffectMaxHP raises maximum and current HP by Amount.
	EffectMaxHP EffectKind = "max_hp"
	// EffectRangedAttack adds Amount to ranged attack checks.
	EffectRangedAttack EffectKind = "ranged_attack"
	// EffectAttribute raises Attribute by Amount and rederives resources.
	EffectAttribute EffectKind = "attribute"
	// EffectSkillBonus adds Amount to any check whose relevant skills include Skill.
	EffectSkillBonus EffectKind = "skill_bonus"
	// EffectMeleeDamage adds Amount to melee damage rolls.
	EffectMeleeDamage EffectKind = "melee_damage"
	// EffectNoMagic zeroes the Mage attribute and mana.
	EffectNoMagic EffectKind = "no_magic"
	// EffectBloodMagic allows contributing HP to rituals.
	EffectBloodMagic EffectKind = "blood_magic"
	// EffectResistance adds Fraction resistance against DamageType.
	EffectResistance EffectKind = "resistance"
)

var validEffectKinds = map[EffectKind]bool{
	EffectMaxHP:        true,
	EffectRangedAttack: true,
	EffectAttribute:    true,
	EffectSkillBonus:   true,
	EffectMeleeDamage:  true,
	EffectNoMagic:      true,
	EffectBloodMagic:   true,
	EffectResistance:   true,
}

// TalentEffect is one declarative modifier. Only the fields used by Kind are read.
type TalentEffect struct {
	Kind       EffectKind `yaml:"kind"`
	Attribute  Attribute  `yaml:"attribute,omitempty"`
	Skill      Skill      `yaml:"skill,omitempty"`
	DamageType DamageType `yaml:"damage_type,omitempty"`
	Amount     int        `yaml:"amount,omitempty"`
	Fraction   float64    `yaml:"fraction,omitempty"`
}

// Validate checks that the fields required by Kind are present.
func (e TalentEffect) Validate() error {
	if !validEffectKinds[e.Kind] {
		return fmt.Errorf("unknown effect kind %q", e.Kind)
	}
	switch e.Kind {
	case EffectAttribute:
		if !e.Attribute.Valid() {
			return fmt.Errorf("%s effect: %w", e.Kind, ErrInvalidAttribute)
		}
	case EffectSkillBonus:
		if !e.Skill.Valid() {
			return fmt.Errorf("%s effect: %w: %q", e.Kind, ErrUnknownSkill, e.Skill)
		}
	case EffectResistance:
		if !e.DamageType.Valid() {
			return fmt.Errorf("%s effect: %w", e.Kind, ErrInvalidDamageType)
		}
		if e.Fraction <= 0 || e.Fraction > 1 {
			return fmt.Errorf("%s effect: fraction must be in (0, 1], got %v", e.Kind, e.Fraction)
		}
	}
	return nil
}

// TalentDef is a permanent passive modifier applied once at acquisition.
type TalentDef struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Type        TalentType     `yaml:"type"`
	Effects     []TalentEffect `yaml:"effects"`
}

// Validate checks that the TalentDef satisfies its invariants.
//
// Precondition: t is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (t *TalentDef) Validate() error {
	var errs []error
	if t.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if t.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if t.Type != TalentGeneral && t.Type != TalentRacial {
		errs = append(errs, fmt.Errorf("type must be general or racial, got %q", t.Type))
	}
	for i, e := range t.Effects {
		if err := e.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("effects[%d]: %w", i, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("talent %q validation failed: %w", t.ID, errors.Join(errs...))
	}
	return nil
}
