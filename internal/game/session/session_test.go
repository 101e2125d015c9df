package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/wrm/internal/content"
	"github.com/cory-johannsen/wrm/internal/game/character"
	"github.com/cory-johannsen/wrm/internal/game/dice"
	"github.com/cory-johannsen/wrm/internal/game/event"
	"github.com/cory-johannsen/wrm/internal/game/inventory"
	"github.com/cory-johannsen/wrm/internal/game/magic"
	"github.com/cory-johannsen/wrm/internal/game/quest"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
	"github.com/cory-johannsen/wrm/internal/game/session"
)

func newSession(t *testing.T, src dice.Source, maxRounds int) *session.Session {
	t.Helper()
	c, err := content.LoadEmbedded()
	require.NoError(t, err)
	s, err := session.New(session.Deps{Content: c, Source: src, MaxRounds: maxRounds, Logger: zap.NewNop()})
	require.NoError(t, err)
	return s
}

// hero: warrior 4, rogue 2, mage 1 with a sword; HP 10, base defense 7.
func hero(t *testing.T, s *session.Session) *character.Character {
	t.Helper()
	c := character.New(character.Params{
		Name:       "Brom",
		Attributes: ruleset.Scores{Warrior: 4, Rogue: 2, Mage: 1},
		Skills:     []ruleset.Skill{ruleset.Swords},
		Items:      s.Content().Items,
	})
	inst, err := s.Give(c, "sword")
	require.NoError(t, err)
	require.NoError(t, c.Equip(inst.InstanceID))
	return c
}

type recorder struct{ events []event.Event }

func (r *recorder) on(bus *event.Bus, kinds ...event.Kind) {
	for _, k := range kinds {
		bus.Subscribe(k, func(e event.Event) { r.events = append(r.events, e) })
	}
}

// Initiative 6 vs 1; attack 3+2+4 = 9 vs 6; damage 6+3 kills the goblin
// (HP 8); the herbal remedy drops on a chance roll of 0.
var goblinFalls = []int{6, 1, 3, 6, 3, 1}

func TestNew_RegistersOnHitHooks(t *testing.T) {
	s := newSession(t, dice.NewSeededSource(1), 0)
	assert.Equal(t, 1, s.Combat().Hooks().Len("giant_spider"))
	assert.Zero(t, s.Combat().Hooks().Len("goblin"))
}

func TestNew_RejectsInvalidRules(t *testing.T) {
	c, err := content.LoadEmbedded()
	require.NoError(t, err)
	rules := ruleset.DefaultRules()
	rules.DieSides = 1
	_, err = session.New(session.Deps{Content: c, Source: dice.NewSeededSource(1), Rules: rules, Logger: zap.NewNop()})
	require.Error(t, err)
}

func TestGive_PublishesItemAcquired(t *testing.T) {
	s := newSession(t, dice.NewScriptedSource(), 0)
	var rec recorder
	rec.on(s.Bus(), event.ItemAcquired)
	c := hero(t, s)
	require.Len(t, rec.events, 1)
	assert.Equal(t, event.Event{Kind: event.ItemAcquired, ItemName: "Sword", Owner: "Brom"}, rec.events[0])

	_, err := s.Give(c, "excalibur")
	require.ErrorIs(t, err, inventory.ErrUnknownItem)
	assert.Len(t, rec.events, 1)
}

func TestDuel_AwardsXPAndLoot(t *testing.T) {
	src := dice.NewScriptedSource(goblinFalls...)
	s := newSession(t, src, 0)
	c := hero(t, s)
	goblin, err := s.Spawn("goblin")
	require.NoError(t, err)

	var rec recorder
	rec.on(s.Bus(), event.EntityDefeated, event.ItemAcquired)
	res, err := s.Duel(c, goblin.Character)
	require.NoError(t, err)

	assert.Same(t, c, res.Winner)
	assert.True(t, goblin.IsDead())
	assert.Equal(t, 50, res.XP)
	assert.Equal(t, 50, c.Experience())
	assert.Zero(t, res.Levels)
	require.Len(t, res.Loot, 1)
	assert.Equal(t, "herbal_remedy", res.Loot[0].DefID)
	assert.Equal(t, []event.Event{
		{Kind: event.EntityDefeated, Name: "Goblin", Owner: "Brom"},
		{Kind: event.ItemAcquired, ItemName: "Herbal Remedy", Owner: "Brom"},
	}, rec.events)
	assert.Zero(t, src.Remaining())
}

func TestDuel_StalemateAwardsNothing(t *testing.T) {
	// Initiative 6 vs 1; hero 1+2+4 = 7 misses the bandit (DL 8);
	// bandit 1+2+3 = 6 misses the hero (DL 7).
	src := dice.NewScriptedSource(6, 1, 1, 1)
	s := newSession(t, src, 1)
	c := hero(t, s)
	bandit, err := s.Spawn("bandit")
	require.NoError(t, err)
	var rec recorder
	rec.on(s.Bus(), event.EntityDefeated)
	res, err := s.Duel(c, bandit.Character)
	require.NoError(t, err)
	assert.True(t, res.Stalemate)
	assert.Zero(t, res.XP)
	assert.Empty(t, rec.events)
	assert.Zero(t, src.Remaining())
}

func TestTrack_QuestCompletesOnDefeat(t *testing.T) {
	s := newSession(t, dice.NewScriptedSource(goblinFalls...), 0)
	c := hero(t, s)
	q, err := s.Track(c, "goblin_menace")
	require.NoError(t, err)
	again, err := s.Track(c, "goblin_menace")
	require.NoError(t, err)
	assert.Same(t, q, again)

	var rec recorder
	rec.on(s.Bus(), event.QuestCompleted, event.LevelGained)
	goblin, err := s.Spawn("goblin")
	require.NoError(t, err)
	_, err = s.Duel(c, goblin.Character)
	require.NoError(t, err)

	assert.True(t, q.Complete())
	assert.True(t, q.Rewarded())
	assert.Len(t, c.Journal.Completed(), 1)
	// Quest reward 100 levels up first; the duel's 50 lands after.
	assert.Equal(t, 2, c.Level())
	assert.Equal(t, 50, c.Experience())
	assert.Equal(t, 150, c.Threshold())
	_, ok := c.Inventory().FindByDef("health_potion")
	assert.True(t, ok)
	assert.Equal(t, []event.Event{
		{Kind: event.LevelGained, Name: "Brom", Owner: "Brom", Level: 2},
		{Kind: event.QuestCompleted, Name: "goblin_menace"},
	}, rec.events)
}

func TestTrack_UnknownQuest(t *testing.T) {
	s := newSession(t, dice.NewScriptedSource(), 0)
	_, err := s.Track(hero(t, s), "dragon_slayer")
	require.ErrorIs(t, err, session.ErrUnknownQuest)
}

func TestRestoreQuests_ResumesProgress(t *testing.T) {
	s := newSession(t, dice.NewScriptedSource(), 0)
	first := hero(t, s)
	q, err := s.Track(first, "bandit_bounty")
	require.NoError(t, err)
	s.Bus().Publish(event.Event{Kind: event.EntityDefeated, Name: "Bandit"})
	assert.Equal(t, 1, q.Objectives()[0].Progress())
	states := first.Journal.States()

	s2 := newSession(t, dice.NewScriptedSource(), 0)
	second := hero(t, s2)
	require.NoError(t, s2.RestoreQuests(second, states))
	restored, ok := second.Journal.Quest("bandit_bounty")
	require.True(t, ok)
	assert.Equal(t, 1, restored.Objectives()[0].Progress())

	s2.Bus().Publish(event.Event{Kind: event.EntityDefeated, Name: "Bandit"})
	_, err = s2.Give(second, "dagger")
	require.NoError(t, err)
	assert.True(t, restored.Rewarded())
	assert.Equal(t, 2, second.Level())
	assert.Equal(t, 50, second.Experience())

	require.ErrorIs(t, s2.RestoreQuests(second, []quest.State{{ID: "nope"}}), session.ErrUnknownQuest)
}

func TestCreate_AppliesRace(t *testing.T) {
	s := newSession(t, dice.NewScriptedSource(), 0)
	c, err := s.Create(character.Creation{
		Name:       "Aelis",
		Attributes: ruleset.Scores{Warrior: 2, Rogue: 3, Mage: 5},
		Skills:     []string{"Bows", "Thaumaturgy", "Lore"},
		Race:       "elf",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, c.Attributes().Mage)
	assert.Equal(t, 10, c.MaxMana())
	assert.True(t, c.HasTalent("sixth_sense"))
}

func TestCastAndRitual(t *testing.T) {
	// Cast: 4+2+5 = 11 vs 5, heal die 2. Ritual: 3+2+5 = 10 vs 15-5.
	s := newSession(t, dice.NewScriptedSource(4, 2, 3), 0)
	c, err := s.Create(character.Creation{
		Name:       "Mira",
		Attributes: ruleset.Scores{Warrior: 2, Rogue: 3, Mage: 5},
		Skills:     []string{"Daggers", "Thaumaturgy", "Lore"},
	})
	require.NoError(t, err)
	c.Learn("healing_hand")
	c.TakeDamage(3, ruleset.Slashing)
	res, err := s.Cast(c, "healing_hand", magic.CastOptions{})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Effect.Healed)

	_, err = s.NewRitual("wish", c)
	require.ErrorIs(t, err, magic.ErrUnknownSpell)

	r, err := s.NewRitual("great_summoning", c)
	require.NoError(t, err)
	helpers := make([]*character.Character, 0, 6)
	for i := 0; i < 6; i++ {
		h := character.New(character.Params{Name: "acolyte", Attributes: ruleset.Scores{Mage: 5}})
		require.True(t, r.AddParticipant(h))
		helpers = append(helpers, h)
	}
	require.NoError(t, r.Contribute(c, c.Mana(), false))
	for _, h := range helpers {
		require.NoError(t, r.Contribute(h, 10, false))
	}
	r.SpendTime(5)
	out, err := s.PerformRitual(r, nil)
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, 69, out.Pool)
}
