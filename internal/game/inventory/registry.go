package inventory

import (
	"fmt"
	"sort"
)

// Registry holds all loaded item definitions indexed by ID.
type Registry struct {
	items map[string]*ItemDef
}

// NewRegistry returns a Registry holding only UnarmedStrike.
//
// Postcondition: Item(UnarmedStrike.ID) succeeds.
func NewRegistry() *Registry {
	return &Registry{items: map[string]*ItemDef{UnarmedStrike.ID: UnarmedStrike}}
}

// RegisterItem adds d to the registry.
//
// Precondition: d must not be nil.
// Postcondition: Item(d.ID) returns (d, true); returns error if d.ID already registered.
func (r *Registry) RegisterItem(d *ItemDef) error {
	if _, exists := r.items[d.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterItem: item ID %q already registered", d.ID)
	}
	r.items[d.ID] = d
	return nil
}

// Item returns the ItemDef for the given id and whether it was found.
//
// Postcondition: ok is true iff the id is registered.
func (r *Registry) Item(id string) (*ItemDef, bool) {
	d, ok := r.items[id]
	return d, ok
}

// Lookup returns the ItemDef for id.
//
// Postcondition: Returns an error wrapping ErrUnknownItem if id is not registered.
func (r *Registry) Lookup(id string) (*ItemDef, error) {
	d, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return d, nil
}

// Weapon returns the weapon ItemDef for id.
//
// Postcondition: Returns an error wrapping ErrUnknownItem or ErrNotAWeapon on failure.
func (r *Registry) Weapon(id string) (*ItemDef, error) {
	d, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	if d.Category != CategoryWeapon {
		return nil, fmt.Errorf("%w: %q", ErrNotAWeapon, id)
	}
	return d, nil
}

// AllItems returns all registered ItemDefs sorted by ID.
func (r *Registry) AllItems() []*ItemDef {
	out := make([]*ItemDef, 0, len(r.items))
	for _, d := range r.items {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
