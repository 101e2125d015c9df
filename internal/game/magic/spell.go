// Package magic defines spells, the catalog of spell effects, and the
// spellcasting resolver.
package magic

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

var (
	// ErrUnknownSpell is returned when a spell ID is not in the library.
	ErrUnknownSpell = errors.New("unknown spell")
	// ErrUnknownEffect is returned when a spell names an effect that is not in the catalog.
	ErrUnknownEffect = errors.New("unknown spell effect")
	// ErrInvalidEnhancement is returned for a negative enhancement level.
	ErrInvalidEnhancement = errors.New("enhancement level must be >= 0")
)

// SpellDef is an immutable spell definition loaded from YAML.
type SpellDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Circle      int    `yaml:"circle"`
	Difficulty  int    `yaml:"dl"`
	ManaCost    int    `yaml:"mana_cost"`
	// Duration is 0 for instantaneous spells and > 0 for sustainable ones.
	Duration int `yaml:"duration"`
	// Effect is the catalog key of the effect invoked on a successful cast.
	Effect string `yaml:"effect"`
}

// Sustainable reports whether a successful cast keeps the spell active.
func (s *SpellDef) Sustainable() bool { return s.Duration > 0 }

// Validate checks that the definition is internally consistent.
//
// Postcondition: Returns nil if valid, or an error joining every violation.
func (s *SpellDef) Validate() error {
	var errs []error
	if s.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if s.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if s.Circle < 1 {
		errs = append(errs, fmt.Errorf("circle must be >= 1, got %d", s.Circle))
	}
	if s.Difficulty < 0 {
		errs = append(errs, fmt.Errorf("dl must be >= 0, got %d", s.Difficulty))
	}
	if s.ManaCost < 0 {
		errs = append(errs, fmt.Errorf("mana_cost must be >= 0, got %d", s.ManaCost))
	}
	if s.Duration < 0 {
		errs = append(errs, fmt.Errorf("duration must be >= 0, got %d", s.Duration))
	}
	if s.Effect == "" {
		errs = append(errs, errors.New("effect must not be empty"))
	}
	return errors.Join(errs...)
}

// LoadSpells reads every YAML file under dir as a single SpellDef.
//
// Postcondition: Returns the definitions in file order, or the first
// decode or validation error.
func LoadSpells(fsys fs.FS, dir string) ([]*SpellDef, error) {
	var defs []*SpellDef
	err := ruleset.EachYAML(fsys, dir, func(path string, data []byte) error {
		var def SpellDef
		if err := yaml.Unmarshal(data, &def); err != nil {
			return fmt.Errorf("parsing spell %s: %w", path, err)
		}
		if err := def.Validate(); err != nil {
			return fmt.Errorf("invalid spell %s: %w", path, err)
		}
		defs = append(defs, &def)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return defs, nil
}
