package ruleset

import (
	"errors"
	"fmt"
)

// Race is a playable ancestry granting racial talents at creation.
type Race struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Talents     []string `yaml:"talents"`
}

// Validate checks that the Race satisfies its invariants.
func (r *Race) Validate() error {
	var errs []error
	if r.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if r.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("race %q validation failed: %w", r.ID, errors.Join(errs...))
	}
	return nil
}
