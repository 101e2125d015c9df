package quest

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

// Objective kinds in quest definitions.
const (
	ObjectiveKill    = "kill"
	ObjectiveCollect = "collect"
)

// ObjectiveDef declares one objective in YAML.
type ObjectiveDef struct {
	Kind        string `yaml:"kind"` // kill | collect
	Description string `yaml:"description"`
	Target      string `yaml:"target"`
	Count       int    `yaml:"count"`
}

// RewardDef declares what completing a quest grants.
type RewardDef struct {
	XP    int      `yaml:"xp"`
	Items []string `yaml:"items"`
}

// Def is a quest definition loaded from YAML.
type Def struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Objectives  []ObjectiveDef `yaml:"objectives"`
	Reward      RewardDef      `yaml:"reward"`
}

// Validate checks that the Def satisfies its invariants.
func (d *Def) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if d.Title == "" {
		errs = append(errs, errors.New("title must not be empty"))
	}
	if len(d.Objectives) == 0 {
		errs = append(errs, errors.New("at least one objective is required"))
	}
	for i, o := range d.Objectives {
		if o.Kind != ObjectiveKill && o.Kind != ObjectiveCollect {
			errs = append(errs, fmt.Errorf("objectives[%d]: kind must be kill or collect, got %q", i, o.Kind))
		}
		if o.Target == "" {
			errs = append(errs, fmt.Errorf("objectives[%d]: target must not be empty", i))
		}
	}
	if d.Reward.XP < 0 {
		errs = append(errs, errors.New("reward xp must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("quest %q validation failed: %w", d.ID, errors.Join(errs...))
	}
	return nil
}

// New builds a fresh Quest from d with the given reward hook.
//
// Precondition: d.Validate() == nil.
func (d *Def) New(reward func()) *Quest {
	objs := make([]Objective, 0, len(d.Objectives))
	for _, o := range d.Objectives {
		switch o.Kind {
		case ObjectiveKill:
			objs = append(objs, NewKillObjective(o.Description, o.Target, o.Count))
		case ObjectiveCollect:
			objs = append(objs, NewCollectObjective(o.Description, o.Target, o.Count))
		}
	}
	return New(d.ID, d.Title, d.Description, objs, reward)
}

// LoadDefs reads, parses, and validates every quest file in dir.
//
// Postcondition: Returns all definitions keyed by ID or the first error.
func LoadDefs(fsys fs.FS, dir string) (map[string]*Def, error) {
	out := make(map[string]*Def)
	err := ruleset.EachYAML(fsys, dir, func(name string, data []byte) error {
		var d Def
		if err := yaml.Unmarshal(data, &d); err != nil {
			return fmt.Errorf("parsing quest file %s: %w", name, err)
		}
		if err := d.Validate(); err != nil {
			return fmt.Errorf("invalid quest in %s: %w", name, err)
		}
		if _, dup := out[d.ID]; dup {
			return fmt.Errorf("quest ID %q in %s already defined", d.ID, name)
		}
		out[d.ID] = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
