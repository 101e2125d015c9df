package quest_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/wrm/internal/game/event"
	"github.com/cory-johannsen/wrm/internal/game/quest"
	questmock "github.com/cory-johannsen/wrm/internal/game/quest/mock"
)

func defeated(name string) event.Event {
	return event.Event{Kind: event.EntityDefeated, Name: name}
}

func TestKillObjective_CountsMatchingDefeats(t *testing.T) {
	o := quest.NewKillObjective("Defeat two goblins", "Goblin", 2)
	assert.False(t, o.Update(defeated("Bandit")))
	assert.False(t, o.Update(event.Event{Kind: event.ItemAcquired, ItemName: "Goblin"}))
	assert.True(t, o.Update(defeated("Goblin")))
	assert.False(t, o.Complete())
	assert.True(t, o.Update(defeated("Goblin")))
	assert.True(t, o.Complete())
	assert.False(t, o.Update(defeated("Goblin")))
	assert.Equal(t, 2, o.Progress())
}

func TestCollectObjective(t *testing.T) {
	o := quest.NewCollectObjective("Find a potion", "Health Potion", 1)
	assert.Equal(t, event.ItemAcquired, o.Listens())
	o.Update(event.Event{Kind: event.ItemAcquired, ItemName: "Health Potion"})
	assert.True(t, o.Complete())
}

func TestQuest_RewardFiresOnceWhenAllObjectivesComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := questmock.NewMockObjective(ctrl)
	b := questmock.NewMockObjective(ctrl)
	e := defeated("Goblin")

	a.EXPECT().Update(e).Return(true).Times(2)
	b.EXPECT().Update(e).Return(false).Times(2)
	gomock.InOrder(
		a.EXPECT().Complete().Return(true),
		a.EXPECT().Complete().Return(true),
	)
	gomock.InOrder(
		b.EXPECT().Complete().Return(false),
		b.EXPECT().Complete().Return(true),
	)

	rewards := 0
	q := quest.New("q", "Q", "", []quest.Objective{a, b}, func() { rewards++ })
	assert.False(t, q.Update(e))
	assert.True(t, q.Update(e))
	assert.False(t, q.ClaimReward())
	assert.Equal(t, 1, rewards)
}

func TestTrack_DeliversThroughBus(t *testing.T) {
	bus := event.NewBus()
	var completed []string
	bus.Subscribe(event.QuestCompleted, func(e event.Event) { completed = append(completed, e.Name) })

	rewards := 0
	q := quest.New("goblin_menace", "Goblin Menace", "", []quest.Objective{
		quest.NewKillObjective("Defeat a Goblin", "Goblin", 1),
		quest.NewCollectObjective("Recover the dagger", "Dagger", 1),
	}, func() { rewards++ })
	quest.Track(bus, q)

	bus.Publish(defeated("Goblin"))
	assert.False(t, q.Complete())
	bus.Publish(event.Event{Kind: event.ItemAcquired, ItemName: "Dagger"})
	assert.True(t, q.Complete())
	bus.Publish(defeated("Goblin"))

	assert.Equal(t, 1, rewards)
	assert.Equal(t, []string{"goblin_menace"}, completed)
}

func TestJournal_ActiveCompletedAndRestore(t *testing.T) {
	j := quest.NewJournal()
	q1 := quest.New("a", "A", "", []quest.Objective{quest.NewKillObjective("", "Goblin", 2)}, nil)
	q2 := quest.New("b", "B", "", []quest.Objective{quest.NewKillObjective("", "Bandit", 1)}, nil)
	require.True(t, j.Add(q1))
	require.True(t, j.Add(q2))
	assert.False(t, j.Add(q1))

	q1.Update(defeated("Goblin"))
	q2.Update(defeated("Bandit"))
	assert.Equal(t, []*quest.Quest{q1}, j.Active())
	assert.Equal(t, []*quest.Quest{q2}, j.Completed())

	states := j.States()
	require.Len(t, states, 2)
	assert.Equal(t, quest.State{ID: "a", Progress: []int{1}}, states[0])
	assert.True(t, states[1].Rewarded)

	fresh := quest.New("a", "A", "", []quest.Objective{quest.NewKillObjective("", "Goblin", 2)}, nil)
	quest.Restore(fresh, states[0])
	fresh.Update(defeated("Goblin"))
	assert.True(t, fresh.Complete())
}

func TestLoadDefs(t *testing.T) {
	fsys := fstest.MapFS{"quests/goblin_menace.yaml": {Data: []byte(`
id: goblin_menace
title: The Goblin Menace
objectives:
  - kind: kill
    description: Defeat the Goblin
    target: Goblin
    count: 1
reward:
  xp: 100
  items: [health_potion]
`)}}
	defs, err := quest.LoadDefs(fsys, "quests")
	require.NoError(t, err)
	d := defs["goblin_menace"]
	require.NotNil(t, d)
	assert.Equal(t, 100, d.Reward.XP)
	q := d.New(nil)
	q.Update(defeated("Goblin"))
	assert.True(t, q.Complete())

	bad := fstest.MapFS{"quests/bad.yaml": {Data: []byte("id: bad\ntitle: Bad\nobjectives:\n  - kind: escort\n    target: x\n")}}
	_, err = quest.LoadDefs(bad, "quests")
	assert.Error(t, err)
}

func TestProperty_KillObjectiveCompletesExactlyAtRequired(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		required := rapid.IntRange(1, 10).Draw(rt, "required")
		names := rapid.SliceOf(rapid.SampledFrom([]string{"Goblin", "Bandit"})).Draw(rt, "names")
		o := quest.NewKillObjective("", "Goblin", required)
		goblins := 0
		for _, n := range names {
			o.Update(defeated(n))
			if n == "Goblin" {
				goblins++
			}
			assert.Equal(rt, goblins >= required, o.Complete())
		}
		assert.Equal(rt, min(goblins, required), o.Progress())
	})
}
