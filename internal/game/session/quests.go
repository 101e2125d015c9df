package session

import (
	"fmt"

	"github.com/cory-johannsen/wrm/internal/game/character"
	"github.com/cory-johannsen/wrm/internal/game/quest"
)

// Track starts questID for c: it builds the quest from content, binds the
// reward (experience and items for c), adds it to c's journal, and
// subscribes its objectives to the session bus.
//
// Postcondition: Returns an error wrapping ErrUnknownQuest if absent. Tracking
// a quest already in the journal returns the existing quest unchanged.
func (s *Session) Track(c *character.Character, questID string) (*quest.Quest, error) {
	if q, ok := c.Journal.Quest(questID); ok {
		return q, nil
	}
	q, err := s.build(c, questID)
	if err != nil {
		return nil, err
	}
	c.Journal.Add(q)
	quest.Track(s.bus, q)
	return q, nil
}

// RestoreQuests rebuilds c's journal from saved states. Restored quests keep
// their progress and rewarded flag, and incomplete ones resume listening.
func (s *Session) RestoreQuests(c *character.Character, states []quest.State) error {
	for _, st := range states {
		if _, ok := c.Journal.Quest(st.ID); ok {
			continue
		}
		q, err := s.build(c, st.ID)
		if err != nil {
			return err
		}
		quest.Restore(q, st)
		c.Journal.Add(q)
		if !q.Rewarded() {
			quest.Track(s.bus, q)
		}
	}
	return nil
}

func (s *Session) build(c *character.Character, questID string) (*quest.Quest, error) {
	def, ok := s.content.Quests[questID]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownQuest, questID)
	}
	return def.New(func() {
		s.AwardXP(c, def.Reward.XP)
		for _, id := range def.Reward.Items {
			// Reward items are checked when content loads.
			_, _ = s.Give(c, id)
		}
	}), nil
}
