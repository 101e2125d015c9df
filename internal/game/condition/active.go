package condition

type activeEffect struct {
	effect    Effect
	remaining int
}

// ActiveSet tracks the status effects applied to one owner, in application order.
// At most one effect per ID is held.
// It is not safe for concurrent use; the caller must serialise access.
type ActiveSet struct {
	owner   Owner
	effects []*activeEffect
}

// NewActiveSet creates an empty ActiveSet bound to owner.
//
// Precondition: owner must not be nil.
func NewActiveSet(owner Owner) *ActiveSet {
	return &ActiveSet{owner: owner}
}

// Apply binds e to the owner and fires its OnApply hook.
// Applying an effect whose ID is already active is a no-op.
//
// Precondition: e must not be nil.
// Postcondition: Has(e.ID()) is true; returns false iff e was a duplicate.
func (s *ActiveSet) Apply(e Effect) bool {
	return s.ApplyFor(e, e.Duration())
}

// ApplyFor is Apply with an explicit remaining duration, used when restoring state.
func (s *ActiveSet) ApplyFor(e Effect, remaining int) bool {
	if s.Has(e.ID()) {
		return false
	}
	s.effects = append(s.effects, &activeEffect{effect: e, remaining: remaining})
	e.OnApply(s.owner)
	return true
}

// Remove clears the effect with id, firing its OnRemove hook.
//
// Postcondition: Has(id) is false; returns false if id was not active.
func (s *ActiveSet) Remove(id string) bool {
	for i, ae := range s.effects {
		if ae.effect.ID() == id {
			s.effects = append(s.effects[:i], s.effects[i+1:]...)
			ae.effect.OnRemove(s.owner)
			return true
		}
	}
	return false
}

// Clear removes every effect in application order.
func (s *ActiveSet) Clear() {
	for len(s.effects) > 0 {
		s.Remove(s.effects[0].effect.ID())
	}
}

// StartTurn fires OnTurnStart for every active effect in application order.
func (s *ActiveSet) StartTurn() {
	for _, ae := range append([]*activeEffect(nil), s.effects...) {
		ae.effect.OnTurnStart(s.owner)
	}
}

// Tick decrements the remaining duration of every timed effect by 1 and
// removes those that reach 0, firing their OnRemove hooks.
// Permanent effects are not affected.
//
// Postcondition: For every id in the returned slice, Has(id) is false.
func (s *ActiveSet) Tick() []string {
	var expired []string
	kept := s.effects[:0]
	var removed []*activeEffect
	for _, ae := range s.effects {
		if ae.remaining != Permanent {
			ae.remaining--
			if ae.remaining <= 0 {
				expired = append(expired, ae.effect.ID())
				removed = append(removed, ae)
				continue
			}
		}
		kept = append(kept, ae)
	}
	s.effects = kept
	for _, ae := range removed {
		ae.effect.OnRemove(s.owner)
	}
	return expired
}

// Has reports whether the effect with id is currently active.
func (s *ActiveSet) Has(id string) bool {
	for _, ae := range s.effects {
		if ae.effect.ID() == id {
			return true
		}
	}
	return false
}

// Remaining returns the turns left on effect id, Permanent, or 0 if not active.
func (s *ActiveSet) Remaining(id string) int {
	for _, ae := range s.effects {
		if ae.effect.ID() == id {
			return ae.remaining
		}
	}
	return 0
}

// IDs returns the active effect IDs in application order.
func (s *ActiveSet) IDs() []string {
	out := make([]string, 0, len(s.effects))
	for _, ae := range s.effects {
		out = append(out, ae.effect.ID())
	}
	return out
}

// Len returns the number of active effects.
func (s *ActiveSet) Len() int { return len(s.effects) }

// CheckPenalty returns the total check penalty of all active effects.
//
// Postcondition: Returns >= 0.
func (s *ActiveSet) CheckPenalty() int {
	total := 0
	for _, ae := range s.effects {
		if p, ok := ae.effect.(Penalizer); ok && p.CheckPenalty() > 0 {
			total += p.CheckPenalty()
		}
	}
	return total
}
