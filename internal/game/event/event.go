// Package event provides a synchronous, session-owned publish/subscribe bus
// for domain events such as defeats and item acquisitions.
package event

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Kind tags an Event.
type Kind string

const (
	// EntityDefeated is posted when a combatant's HP reaches zero.
	EntityDefeated Kind = "entity_defeated"
	// ItemAcquired is posted when an item enters an inventory.
	ItemAcquired Kind = "item_acquired"
	// LevelGained is posted when a character gains one or more levels.
	LevelGained Kind = "level_gained"
	// QuestCompleted is posted when every objective of a quest is complete.
	QuestCompleted Kind = "quest_completed"
)

// Event is a tagged record. Only the fields relevant to Kind are set.
type Event struct {
	Kind Kind
	// Name is the defeated entity's name for EntityDefeated, the character name
	// for LevelGained, and the quest ID for QuestCompleted.
	Name string
	// ItemName is the display name of the item for ItemAcquired.
	ItemName string
	// Owner is the name of the character receiving an item or a level.
	Owner string
	// Level is the new level for LevelGained.
	Level int
}

// Handler receives a published event.
type Handler func(Event)

// payloadKey is the toolkit context key carrying the Event record.
const payloadKey = "wrm.event"

// Bus delivers every published event to the handlers subscribed to its kind,
// in subscription order, before Publish returns. It is backed by the
// rpg-toolkit event bus; each subscription takes the next priority, so the
// toolkit's priority ordering is subscription order.
//
// The zero value is ready to use.
type Bus struct {
	mu       sync.Mutex
	inner    *events.Bus
	priority int
	counts   map[Kind]int
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{inner: events.NewBus(), counts: make(map[Kind]int)}
}

// Subscribe registers h for events of kind k.
//
// Precondition: h must not be nil.
func (b *Bus) Subscribe(k Kind, h Handler) {
	b.mu.Lock()
	if b.inner == nil {
		b.inner = events.NewBus()
		b.counts = make(map[Kind]int)
	}
	b.priority++
	priority := b.priority
	b.counts[k]++
	inner := b.inner
	b.mu.Unlock()

	inner.SubscribeFunc(string(k), priority, func(_ context.Context, ev events.Event) error {
		if e, ok := Payload(ev); ok {
			h(e)
		}
		return nil
	})
}

// Publish synchronously invokes every handler subscribed to e.Kind.
// Handlers subscribed during delivery receive only later events.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	inner := b.inner
	b.mu.Unlock()
	if inner == nil {
		return
	}
	ev := events.NewGameEvent(string(e.Kind), nil, nil)
	ev.Context().Set(payloadKey, e)
	// Handlers never fail, so Publish has no error to report.
	_ = inner.Publish(context.Background(), ev)
}

// Subscribers returns the number of handlers registered for k.
func (b *Bus) Subscribers(k Kind) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[k]
}

// Payload extracts the Event record carried by a toolkit event published
// through a Bus.
func Payload(ev events.Event) (Event, bool) {
	if ev == nil || ev.Context() == nil {
		return Event{}, false
	}
	v, ok := ev.Context().Get(payloadKey)
	if !ok {
		return Event{}, false
	}
	e, ok := v.(Event)
	return e, ok
}
