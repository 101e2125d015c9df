package magic

import (
	"fmt"
	"sort"
)

// Spell is a definition bound to its effect.
type Spell struct {
	*SpellDef
	effect Effect
}

// Invoke runs the spell's effect.
func (s *Spell) Invoke(ctx EffectContext) EffectResult {
	ctx.Spell = s.SpellDef
	return s.effect(ctx)
}

// Library holds every castable spell keyed by ID.
type Library struct {
	effects *Effects
	spells  map[string]*Spell
}

// NewLibrary returns an empty Library resolving effects from effects.
//
// Precondition: effects must be non-nil.
func NewLibrary(effects *Effects) *Library {
	return &Library{effects: effects, spells: make(map[string]*Spell)}
}

// Register binds def to its effect and adds it to the library.
//
// Postcondition: Returns an error wrapping ErrUnknownEffect if the effect
// key is not in the catalog, or an error if the ID is already registered.
func (l *Library) Register(def *SpellDef) error {
	if _, ok := l.spells[def.ID]; ok {
		return fmt.Errorf("spell %q already registered", def.ID)
	}
	effect, ok := l.effects.Get(def.Effect)
	if !ok {
		return fmt.Errorf("spell %q: %w %q", def.ID, ErrUnknownEffect, def.Effect)
	}
	l.spells[def.ID] = &Spell{SpellDef: def, effect: effect}
	return nil
}

// Spell returns the spell with the given ID.
//
// Postcondition: Returns an error wrapping ErrUnknownSpell if absent.
func (l *Library) Spell(id string) (*Spell, error) {
	s, ok := l.spells[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSpell, id)
	}
	return s, nil
}

// Spells returns every spell sorted by circle, then ID.
func (l *Library) Spells() []*Spell {
	out := make([]*Spell, 0, len(l.spells))
	for _, s := range l.spells {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Circle != out[j].Circle {
			return out[i].Circle < out[j].Circle
		}
		return out[i].ID < out[j].ID
	})
	return out
}
