package character

import "fmt"

// Learn adds spellID to the spellbook.
//
// Postcondition: Returns false with no change if the spell is already known.
func (c *Character) Learn(spellID string) bool {
	if c.Knows(spellID) {
		return false
	}
	c.spellbook = append(c.spellbook, spellID)
	return true
}

// Knows reports whether spellID is in the spellbook.
func (c *Character) Knows(spellID string) bool {
	return contains(c.spellbook, spellID)
}

// Spellbook returns known spell IDs in learning order.
func (c *Character) Spellbook() []string {
	return append([]string(nil), c.spellbook...)
}

// Sustain marks a known spell with nonzero duration as active.
//
// Postcondition: Returns an error wrapping ErrNotSustainable if the spell is
// unknown or instantaneous; sustaining an active spell is a no-op.
func (c *Character) Sustain(spellID string, duration int) error {
	if !c.Knows(spellID) {
		return fmt.Errorf("%w: %q is not known", ErrNotSustainable, spellID)
	}
	if duration == 0 {
		return fmt.Errorf("%w: %q is instantaneous", ErrNotSustainable, spellID)
	}
	if !c.IsSustaining(spellID) {
		c.sustained = append(c.sustained, spellID)
	}
	return nil
}

// IsSustaining reports whether spellID is currently sustained.
func (c *Character) IsSustaining(spellID string) bool {
	return contains(c.sustained, spellID)
}

// Release stops sustaining spellID.
func (c *Character) Release(spellID string) bool {
	for i, s := range c.sustained {
		if s == spellID {
			c.sustained = append(c.sustained[:i], c.sustained[i+1:]...)
			return true
		}
	}
	return false
}

// ClearSustained stops sustaining every spell.
func (c *Character) ClearSustained() { c.sustained = nil }

// Sustained returns the sustained spell IDs in activation order.
func (c *Character) Sustained() []string {
	return append([]string(nil), c.sustained...)
}

// SustainedCount returns the number of sustained spells.
func (c *Character) SustainedCount() int { return len(c.sustained) }

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
