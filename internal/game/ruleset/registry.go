package ruleset

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownTalent is returned when a talent ID is not registered.
var ErrUnknownTalent = errors.New("unknown talent")

// Registry holds talent and race definitions indexed by ID.
type Registry struct {
	talents map[string]*TalentDef
	races   map[string]*Race
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		talents: make(map[string]*TalentDef),
		races:   make(map[string]*Race),
	}
}

// RegisterTalent adds t to the registry.
//
// Precondition: t must not be nil.
// Postcondition: Talent(t.ID) returns (t, true); returns error if t.ID already registered.
func (r *Registry) RegisterTalent(t *TalentDef) error {
	if _, exists := r.talents[t.ID]; exists {
		return fmt.Errorf("ruleset: talent ID %q already registered", t.ID)
	}
	r.talents[t.ID] = t
	return nil
}

// RegisterRace adds race to the registry. Every talent the race grants must
// already be registered.
//
// Precondition: race must not be nil.
// Postcondition: Race(race.ID) returns (race, true), or an error is returned.
func (r *Registry) RegisterRace(race *Race) error {
	if _, exists := r.races[race.ID]; exists {
		return fmt.Errorf("ruleset: race ID %q already registered", race.ID)
	}
	for _, id := range race.Talents {
		if _, ok := r.talents[id]; !ok {
			return fmt.Errorf("ruleset: race %q: %w %q", race.ID, ErrUnknownTalent, id)
		}
	}
	r.races[race.ID] = race
	return nil
}

// Talent returns the talent for id and whether it was found.
func (r *Registry) Talent(id string) (*TalentDef, bool) {
	t, ok := r.talents[id]
	return t, ok
}

// Lookup returns the talent for id.
//
// Postcondition: Returns an error wrapping ErrUnknownTalent if absent.
func (r *Registry) Lookup(id string) (*TalentDef, error) {
	t, ok := r.talents[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTalent, id)
	}
	return t, nil
}

// Race returns the race for id and whether it was found.
func (r *Registry) Race(id string) (*Race, bool) {
	race, ok := r.races[id]
	return race, ok
}

// GeneralTalents returns every general talent sorted by ID.
func (r *Registry) GeneralTalents() []*TalentDef {
	var out []*TalentDef
	for _, t := range r.talents {
		if t.Type == TalentGeneral {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Races returns every race sorted by ID.
func (r *Registry) Races() []*Race {
	out := make([]*Race, 0, len(r.races))
	for _, race := range r.races {
		out = append(out, race)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
