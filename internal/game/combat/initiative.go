// Package combat resolves initiative, attacks, and on-hit hooks between two
// entities, and runs turn-sequential duels.
package combat

import "github.com/cory-johannsen/wrm/internal/game/dice"

// Initiative is the outcome of an initiative roll-off.
type Initiative[T any] struct {
	First, Second T
	// Rolls holds every (first entity, second entity) pair drawn, ties included.
	Rolls [][2]int
}

// RollInitiative draws one standard die for a and b until one is strictly
// higher; the higher roller acts first. Ties are re-rolled without bound.
//
// Precondition: roller must be non-nil.
func RollInitiative[T any](a, b T, roller *dice.Roller) Initiative[T] {
	var rolls [][2]int
	for {
		ra, rb := roller.D(), roller.D()
		rolls = append(rolls, [2]int{ra, rb})
		switch {
		case ra > rb:
			return Initiative[T]{First: a, Second: b, Rolls: rolls}
		case rb > ra:
			return Initiative[T]{First: b, Second: a, Rolls: rolls}
		}
	}
}
