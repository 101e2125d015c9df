package quest

import "github.com/cory-johannsen/wrm/internal/game/event"

// Quest aggregates objectives and fires its reward once, when all are complete.
type Quest struct {
	ID          string
	Title       string
	Description string

	objectives []Objective
	reward     func()
	rewarded   bool
}

// New returns a quest. reward may be nil.
func New(id, title, description string, objectives []Objective, reward func()) *Quest {
	return &Quest{
		ID:          id,
		Title:       title,
		Description: description,
		objectives:  objectives,
		reward:      reward,
	}
}

// Objectives returns the objectives in declaration order.
func (q *Quest) Objectives() []Objective {
	return append([]Objective(nil), q.objectives...)
}

// Complete reports whether every objective is complete.
func (q *Quest) Complete() bool {
	for _, o := range q.objectives {
		if !o.Complete() {
			return false
		}
	}
	return true
}

// Rewarded reports whether the reward has fired.
func (q *Quest) Rewarded() bool { return q.rewarded }

// ClaimReward fires the reward if the quest is complete and unrewarded.
//
// Postcondition: Returns true at most once over the quest's lifetime.
func (q *Quest) ClaimReward() bool {
	if q.rewarded || !q.Complete() {
		return false
	}
	q.rewarded = true
	if q.reward != nil {
		q.reward()
	}
	return true
}

// Update forwards e to every objective, then claims the reward if complete.
//
// Postcondition: Returns true iff this call completed the quest.
func (q *Quest) Update(e event.Event) bool {
	for _, o := range q.objectives {
		o.Update(e)
	}
	return q.ClaimReward()
}

// Track subscribes each objective of q to the event kind it listens to.
// After every delivery the quest claims its reward if complete, and
// publishes QuestCompleted when that happens.
func Track(bus *event.Bus, q *Quest) {
	for _, o := range q.objectives {
		o := o
		bus.Subscribe(o.Listens(), func(e event.Event) {
			if !o.Update(e) {
				return
			}
			if q.ClaimReward() {
				bus.Publish(event.Event{Kind: event.QuestCompleted, Name: q.ID})
			}
		})
	}
}
