package combat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wrm/internal/game/character"
)

// DefaultMaxRounds bounds a duel when the caller passes no limit.
const DefaultMaxRounds = 100

// Turn is one entity's action within a round.
type Turn struct {
	Round int
	// Attack is the zero value when the actor did not attack.
	Attack AttackResult
	// Expired lists status effects that ended at the close of the turn.
	Expired   []string
	Narrative string
}

// Outcome summarizes a finished duel.
type Outcome struct {
	Winner *character.Character
	Loser  *character.Character
	Rounds int
	// Stalemate is set when the round limit was reached with both alive.
	Stalemate bool
	Turns     []Turn
}

// Encounter runs a turn-sequential duel between two entities.
type Encounter struct {
	resolver  *Resolver
	a, b      *character.Character
	maxRounds int
	logger    *zap.Logger
}

// NewEncounter returns an Encounter between a and b. maxRounds <= 0 means
// DefaultMaxRounds.
//
// Precondition: resolver, a, b, and logger must be non-nil.
func NewEncounter(resolver *Resolver, a, b *character.Character, maxRounds int, logger *zap.Logger) *Encounter {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &Encounter{resolver: resolver, a: a, b: b, maxRounds: maxRounds, logger: logger}
}

// Run rolls initiative once, then alternates turns until one side is dead or
// the round limit is reached. Each turn applies start-of-turn status effects,
// attacks with the equipped weapon if the actor is still alive, then ticks
// status durations.
//
// Postcondition: Outcome.Winner is nil only when Stalemate is set or both died.
func (e *Encounter) Run() (Outcome, error) {
	ini := RollInitiative(e.a, e.b, e.resolver.checks.Roller())
	order := [2]*character.Character{ini.First, ini.Second}
	e.logger.Info("duel started",
		zap.String("first", ini.First.Name()),
		zap.String("second", ini.Second.Name()),
	)

	var out Outcome
	for round := 1; round <= e.maxRounds; round++ {
		out.Rounds = round
		for i, actor := range order {
			target := order[1-i]
			turn, err := e.takeTurn(round, actor, target)
			if err != nil {
				return out, err
			}
			out.Turns = append(out.Turns, turn)
			if actor.IsDead() || target.IsDead() {
				e.finish(&out)
				return out, nil
			}
		}
	}
	out.Stalemate = true
	e.logger.Info("duel ended in stalemate", zap.Int("rounds", out.Rounds))
	return out, nil
}

func (e *Encounter) takeTurn(round int, actor, target *character.Character) (Turn, error) {
	turn := Turn{Round: round}
	actor.Conditions().StartTurn()
	if actor.IsDead() {
		turn.Narrative = fmt.Sprintf("%s succumbs before acting.", actor.Name())
		return turn, nil
	}
	res, err := e.resolver.Attack(actor, target, "")
	if err != nil {
		return turn, err
	}
	turn.Attack = res
	turn.Expired = actor.Conditions().Tick()
	turn.Narrative = narrate(res)
	return turn, nil
}

func (e *Encounter) finish(out *Outcome) {
	switch {
	case e.a.IsDead() && e.b.IsDead():
	case e.a.IsDead():
		out.Winner, out.Loser = e.b, e.a
	case e.b.IsDead():
		out.Winner, out.Loser = e.a, e.b
	}
	fields := []zap.Field{zap.Int("rounds", out.Rounds)}
	if out.Winner != nil {
		fields = append(fields, zap.String("winner", out.Winner.Name()))
	}
	e.logger.Info("duel ended", fields...)
}

func narrate(r AttackResult) string {
	switch {
	case r.Reason != Resolved:
		return fmt.Sprintf("%s cannot attack (%s).", r.Attacker, r.Reason)
	case !r.Hit:
		return fmt.Sprintf("%s attacks %s with %s and misses (%d vs %d).",
			r.Attacker, r.Defender, r.Weapon, r.Check.Total, r.Check.Difficulty)
	case r.Killed:
		return fmt.Sprintf("%s strikes %s with %s for %d damage. %s falls!",
			r.Attacker, r.Defender, r.Weapon, r.Dealt, r.Defender)
	default:
		return fmt.Sprintf("%s strikes %s with %s for %d damage.",
			r.Attacker, r.Defender, r.Weapon, r.Dealt)
	}
}
