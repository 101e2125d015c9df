package ruleset

import (
	"errors"
	"fmt"
)

// Rules is the numeric rules table shared by every resolver.
type Rules struct {
	// DieSides is the face count of the standard die.
	DieSides int
	// SkillBonus is the flat bonus for holding a relevant skill.
	SkillBonus int
	// WoundedPenalty is subtracted from checks while at or below half HP.
	WoundedPenalty int
	// SustainPenalty is subtracted from checks per sustained spell.
	SustainPenalty int
	// StartingXPThreshold is the experience needed for level 2.
	StartingXPThreshold int
	// XPGrowth multiplies the threshold on every level gained (truncated).
	XPGrowth float64
	// CreationPoints is the attribute budget for new characters.
	CreationPoints int
	// CreationSkills is the number of skills chosen at creation.
	CreationSkills int
	// MaxCreationAttribute caps any single attribute at creation.
	MaxCreationAttribute int
}

// DefaultRules returns the standard rules table.
func DefaultRules() Rules {
	return Rules{
		DieSides:             6,
		SkillBonus:           2,
		WoundedPenalty:       3,
		SustainPenalty:       1,
		StartingXPThreshold:  100,
		XPGrowth:             1.5,
		CreationPoints:       10,
		CreationSkills:       3,
		MaxCreationAttribute: 6,
	}
}

// Validate reports every invariant violation in r.
func (r Rules) Validate() error {
	var errs []error
	if r.DieSides < 2 {
		errs = append(errs, fmt.Errorf("die_sides must be >= 2, got %d", r.DieSides))
	}
	if r.SkillBonus < 0 {
		errs = append(errs, fmt.Errorf("skill_bonus must be >= 0, got %d", r.SkillBonus))
	}
	if r.WoundedPenalty < 0 {
		errs = append(errs, fmt.Errorf("wounded_penalty must be >= 0, got %d", r.WoundedPenalty))
	}
	if r.SustainPenalty < 0 {
		errs = append(errs, fmt.Errorf("sustain_penalty must be >= 0, got %d", r.SustainPenalty))
	}
	if r.StartingXPThreshold < 1 {
		errs = append(errs, fmt.Errorf("starting_xp_threshold must be >= 1, got %d", r.StartingXPThreshold))
	}
	if r.XPGrowth < 1 {
		errs = append(errs, fmt.Errorf("xp_growth must be >= 1, got %v", r.XPGrowth))
	}
	if r.CreationPoints < 0 || r.CreationSkills < 0 || r.MaxCreationAttribute < 0 {
		errs = append(errs, errors.New("creation limits must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("rules validation failed: %w", errors.Join(errs...))
	}
	return nil
}
