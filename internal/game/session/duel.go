package session

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/wrm/internal/game/character"
	"github.com/cory-johannsen/wrm/internal/game/combat"
	"github.com/cory-johannsen/wrm/internal/game/event"
	"github.com/cory-johannsen/wrm/internal/game/inventory"
	"github.com/cory-johannsen/wrm/internal/game/npc"
)

// DuelResult is the encounter outcome plus its rewards.
type DuelResult struct {
	combat.Outcome
	// XP is the experience awarded to the winner.
	XP     int
	Levels int
	Loot   []*inventory.ItemInstance
}

// Duel runs an automatic duel between a and b. When one side falls the
// session publishes EntityDefeated, awards the loser's template xp_value to
// the winner, and gives the winner the loser's rolled loot.
//
// Postcondition: Returns an error only for a configuration error, such as
// a loot entry naming an unknown item.
func (s *Session) Duel(a, b *character.Character) (DuelResult, error) {
	enc := combat.NewEncounter(s.combat, a, b, s.maxRounds, s.logger)
	out, err := enc.Run()
	if err != nil {
		return DuelResult{}, err
	}
	res := DuelResult{Outcome: out}
	for _, c := range []*character.Character{a, b} {
		if c.IsDead() {
			s.bus.Publish(event.Event{Kind: event.EntityDefeated, Name: c.Name(), Owner: victorName(out)})
		}
	}
	if out.Winner == nil {
		return res, nil
	}
	tmpl, ok := s.npcs.Template(out.Loser.TemplateID())
	if !ok {
		return res, nil
	}
	res.XP = tmpl.XPValue
	res.Levels = s.AwardXP(out.Winner, tmpl.XPValue)
	if tmpl.Loot != nil {
		for _, drop := range npc.GenerateLoot(*tmpl.Loot, s.roller).Items {
			for i := 0; i < drop.Quantity; i++ {
				inst, err := s.Give(out.Winner, drop.ItemDefID)
				if err != nil {
					return res, err
				}
				res.Loot = append(res.Loot, inst)
			}
		}
	}
	s.logger.Info("duel rewards",
		zap.String("winner", out.Winner.Name()),
		zap.Int("xp", res.XP),
		zap.Int("loot", len(res.Loot)),
	)
	return res, nil
}

func victorName(out combat.Outcome) string {
	if out.Winner == nil {
		return ""
	}
	return out.Winner.Name()
}
