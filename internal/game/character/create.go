package character

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/wrm/internal/game/inventory"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

// Creation holds a player's character creation choices.
type Creation struct {
	Name       string
	Attributes ruleset.Scores
	Skills     []string
	// Race is a race ID; empty means no race.
	Race string
}

// Create validates choices against the creation rules and builds a player character.
// All attribute points must be spent, each attribute must lie within
// [0, MaxCreationAttribute], exactly CreationSkills distinct skills must be
// chosen, and each skill's governing attribute must be > 0. Racial talents
// are applied.
//
// Postcondition: Returns a Character, or an error wrapping ErrInvalidCreation,
// ruleset.ErrUnknownSkill, or a content lookup failure.
func Create(choices Creation, talents *ruleset.Registry, items *inventory.Registry, rules ruleset.Rules) (*Character, error) {
	if rules == (ruleset.Rules{}) {
		rules = ruleset.DefaultRules()
	}
	var errs []error
	if choices.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	a := choices.Attributes
	for _, attr := range ruleset.Attributes {
		v, _ := a.Get(attr)
		if v < 0 || v > rules.MaxCreationAttribute {
			errs = append(errs, fmt.Errorf("%s must be in [0, %d], got %d", attr, rules.MaxCreationAttribute, v))
		}
	}
	if a.Sum() != rules.CreationPoints {
		errs = append(errs, fmt.Errorf("attributes must total %d, got %d", rules.CreationPoints, a.Sum()))
	}
	skills, err := ruleset.ParseSkills(choices.Skills)
	if err != nil {
		return nil, err
	}
	seen := make(map[ruleset.Skill]bool, len(skills))
	for _, sk := range skills {
		if seen[sk] {
			errs = append(errs, fmt.Errorf("skill %q chosen twice", sk))
		}
		seen[sk] = true
		if v, _ := a.Get(sk.Attribute()); v <= 0 {
			errs = append(errs, fmt.Errorf("skill %q requires %s > 0", sk, sk.Attribute()))
		}
	}
	if len(skills) != rules.CreationSkills {
		errs = append(errs, fmt.Errorf("exactly %d skills must be chosen, got %d", rules.CreationSkills, len(skills)))
	}
	var racial []*ruleset.TalentDef
	if choices.Race != "" {
		var race *ruleset.Race
		ok := false
		if talents != nil {
			race, ok = talents.Race(choices.Race)
		}
		if !ok {
			errs = append(errs, fmt.Errorf("unknown race %q", choices.Race))
		} else {
			for _, id := range race.Talents {
				if t, ok := talents.Talent(id); ok {
					racial = append(racial, t)
				}
			}
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCreation, errors.Join(errs...))
	}
	return New(Params{
		Name:       choices.Name,
		Race:       choices.Race,
		Attributes: a,
		Skills:     skills,
		Talents:    racial,
		Items:      items,
		Rules:      rules,
	}), nil
}
