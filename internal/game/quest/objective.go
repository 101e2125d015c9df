// Package quest tracks quest objectives against domain events posted on an
// event.Bus, and keeps a per-character journal.
package quest

//go:generate mockgen -destination=mock/mock_objective.go -package=questmock github.com/cory-johannsen/wrm/internal/game/quest Objective

import (
	"fmt"

	"github.com/cory-johannsen/wrm/internal/game/event"
)

// Objective is one completion condition of a Quest.
type Objective interface {
	Description() string
	// Listens returns the event kind the objective consumes.
	Listens() event.Kind
	// Update inspects e and reports whether it advanced progress.
	Update(e event.Event) bool
	Complete() bool
	// Progress returns the number of matching events counted so far.
	Progress() int
	// Restore sets progress, used when loading saved state.
	Restore(progress int)
}

type counter struct {
	description string
	target      string
	required    int
	count       int
}

// Description returns the objective text.
func (c *counter) Description() string { return c.description }

// Complete reports whether the required count has been reached.
func (c *counter) Complete() bool { return c.count >= c.required }

// Progress returns the count so far.
func (c *counter) Progress() int { return c.count }

// Restore sets the count, clamped to [0, required].
func (c *counter) Restore(n int) { c.count = min(max(0, n), c.required) }

func (c *counter) bump(name string) bool {
	if c.Complete() || name != c.target {
		return false
	}
	c.count++
	return true
}

// KillObjective completes after Required entity_defeated events naming Target.
type KillObjective struct{ counter }

// NewKillObjective returns an objective requiring required defeats of target.
//
// Precondition: required >= 1.
func NewKillObjective(description, target string, required int) *KillObjective {
	return &KillObjective{counter{description: description, target: target, required: max(1, required)}}
}

// Listens returns event.EntityDefeated.
func (o *KillObjective) Listens() event.Kind { return event.EntityDefeated }

// Update counts entity_defeated events naming the target.
//
// Postcondition: Returns false, with progress unchanged, once complete.
func (o *KillObjective) Update(e event.Event) bool {
	if e.Kind != event.EntityDefeated {
		return false
	}
	return o.bump(e.Name)
}

// String renders the description with progress, e.g. "Defeat goblins (1/3)".
func (o *KillObjective) String() string {
	return fmt.Sprintf("%s (%d/%d)", o.description, o.count, o.required)
}

// CollectObjective completes after Required item_acquired events naming Item.
type CollectObjective struct{ counter }

// NewCollectObjective returns an objective requiring required acquisitions of item.
//
// Precondition: required >= 1.
func NewCollectObjective(description, item string, required int) *CollectObjective {
	return &CollectObjective{counter{description: description, target: item, required: max(1, required)}}
}

// Listens returns event.ItemAcquired.
func (o *CollectObjective) Listens() event.Kind { return event.ItemAcquired }

// Update counts item_acquired events naming the item.
//
// Postcondition: Returns false, with progress unchanged, once complete.
func (o *CollectObjective) Update(e event.Event) bool {
	if e.Kind != event.ItemAcquired {
		return false
	}
	return o.bump(e.ItemName)
}

// String renders the description with progress, e.g. "Bring daggers (0/1)".
func (o *CollectObjective) String() string {
	return fmt.Sprintf("%s (%d/%d)", o.description, o.count, o.required)
}
