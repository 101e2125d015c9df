// Package condition implements timed status effects: definitions loaded from
// YAML, lifecycle hooks, and the per-entity active set.
package condition

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

// Permanent is the duration of a condition that never expires on its own.
const Permanent = -1

// ConditionDef is the static definition of a condition, loaded from YAML.
type ConditionDef struct {
	ID            string             `yaml:"id"`
	Name          string             `yaml:"name"`
	Description   string             `yaml:"description"`
	Duration      int                `yaml:"duration"` // turns; -1 = permanent
	DamagePerTurn int                `yaml:"damage_per_turn"`
	DamageType    ruleset.DamageType `yaml:"damage_type"`
	HealPerTurn   int                `yaml:"heal_per_turn"`
	CheckPenalty  int                `yaml:"check_penalty"`
}

// Validate checks that the ConditionDef satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *ConditionDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if d.Duration == 0 || d.Duration < Permanent {
		errs = append(errs, fmt.Errorf("duration must be > 0 or -1, got %d", d.Duration))
	}
	if d.DamagePerTurn < 0 || d.HealPerTurn < 0 || d.CheckPenalty < 0 {
		errs = append(errs, errors.New("damage_per_turn, heal_per_turn and check_penalty must be >= 0"))
	}
	if d.DamagePerTurn > 0 && !d.DamageType.Valid() {
		errs = append(errs, fmt.Errorf("damage_per_turn requires damage_type: %w", ruleset.ErrInvalidDamageType))
	}
	if len(errs) > 0 {
		return fmt.Errorf("condition %q validation failed: %w", d.ID, errors.Join(errs...))
	}
	return nil
}

// New returns a fresh Effect instance of this definition.
func (d *ConditionDef) New() Effect {
	return &Condition{def: d}
}

// Registry holds all known ConditionDefs keyed by ID.
type Registry struct {
	defs map[string]*ConditionDef
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*ConditionDef)}
}

// Register adds def to the registry, overwriting any existing entry with the same ID.
// Precondition: def must not be nil and def.ID must not be empty.
func (r *Registry) Register(def *ConditionDef) {
	r.defs[def.ID] = def
}

// Get returns the ConditionDef for id, or (nil, false) if not found.
func (r *Registry) Get(id string) (*ConditionDef, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// LoadDirectory reads every YAML file in dir of fsys, parses and validates
// each as a ConditionDef, and returns a populated Registry.
// Unknown YAML fields are rejected.
//
// Postcondition: Returns a non-nil Registry, or an error if any file fails.
func LoadDirectory(fsys fs.FS, dir string) (*Registry, error) {
	reg := NewRegistry()
	err := ruleset.EachYAML(fsys, dir, func(name string, data []byte) error {
		var def ConditionDef
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return fmt.Errorf("parsing %q: %w", name, err)
		}
		if err := def.Validate(); err != nil {
			return fmt.Errorf("invalid condition in %q: %w", name, err)
		}
		reg.Register(&def)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}
