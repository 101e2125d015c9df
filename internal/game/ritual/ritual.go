// Package ritual resolves cooperative castings that pool mana from several
// participants and trade time for difficulty.
package ritual

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wrm/internal/game/character"
	"github.com/cory-johannsen/wrm/internal/game/check"
	"github.com/cory-johannsen/wrm/internal/game/magic"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

var (
	// ErrNotParticipant is returned when a non-participant contributes.
	ErrNotParticipant = errors.New("not a ritual participant")
	// ErrInsufficientMana is returned when a contributor lacks the mana offered.
	ErrInsufficientMana = errors.New("insufficient mana")
	// ErrInsufficientHP is returned when a blood contribution would not leave HP above zero.
	ErrInsufficientHP = errors.New("insufficient hit points")
	// ErrNoBloodMagic is returned when contributing HP without the blood magic talent.
	ErrNoBloodMagic = errors.New("blood magic talent required")
)

// Ritual binds one spell and a primary caster to a shared mana pool and
// elapsed time. It is discarded after Perform.
type Ritual struct {
	spell        *magic.Spell
	primary      *character.Character
	participants []*character.Character
	pool         int
	time         int
}

// New returns a Ritual for spell led by primary, who is the first participant.
//
// Precondition: spell and primary must be non-nil.
func New(spell *magic.Spell, primary *character.Character) *Ritual {
	return &Ritual{spell: spell, primary: primary, participants: []*character.Character{primary}}
}

// Spell returns the spell being cast.
func (r *Ritual) Spell() *magic.Spell { return r.spell }

// Primary returns the primary caster.
func (r *Ritual) Primary() *character.Character { return r.primary }

// Participants returns the participants in joining order.
func (r *Ritual) Participants() []*character.Character { return slices.Clone(r.participants) }

// Pool returns the pooled mana.
func (r *Ritual) Pool() int { return r.pool }

// Time returns the elapsed time units.
func (r *Ritual) Time() int { return r.time }

// Difficulty returns the spell's base DL minus elapsed time. It is not
// floored and may be negative.
func (r *Ritual) Difficulty() int { return r.spell.Difficulty - r.time }

// AddParticipant adds c to the ritual.
//
// Postcondition: Returns false with no change if c already participates.
func (r *Ritual) AddParticipant(c *character.Character) bool {
	if r.isParticipant(c) {
		return false
	}
	r.participants = append(r.participants, c)
	return true
}

func (r *Ritual) isParticipant(c *character.Character) bool {
	return slices.Contains(r.participants, c)
}

// Contribute moves amount into the pool from c's mana, or from c's HP at
// 1:1 when fromHP is set and c has blood magic.
//
// Postcondition: On error the pool and c are unchanged. A blood contribution
// requires HP strictly greater than amount.
func (r *Ritual) Contribute(c *character.Character, amount int, fromHP bool) error {
	if !r.isParticipant(c) {
		return fmt.Errorf("%s: %w", c.Name(), ErrNotParticipant)
	}
	if amount <= 0 {
		return nil
	}
	if fromHP {
		if !c.BloodMagic() {
			return fmt.Errorf("%s: %w", c.Name(), ErrNoBloodMagic)
		}
		if !c.SacrificeHP(amount) {
			return fmt.Errorf("%s offers %d with %d HP: %w", c.Name(), amount, c.HP(), ErrInsufficientHP)
		}
	} else if !c.SpendMana(amount) {
		return fmt.Errorf("%s offers %d with %d mana: %w", c.Name(), amount, c.Mana(), ErrInsufficientMana)
	}
	r.pool += amount
	return nil
}

// SpendTime adds units of elapsed time; each unit lowers the DL by one.
// Non-positive units are ignored.
func (r *Ritual) SpendTime(units int) {
	if units > 0 {
		r.time += units
	}
}

// Result reports a ritual attempt.
type Result struct {
	Spell string
	// Attempted is false when the pool was below the spell's base cost.
	Attempted  bool
	Success    bool
	Pool       int
	Difficulty int
	Check      check.Result
	Effect     magic.EffectResult
}

// Resolver performs rituals.
type Resolver struct {
	checks *check.Resolver
	logger *zap.Logger
}

// NewResolver returns a Resolver.
//
// Precondition: checks and logger must be non-nil.
func NewResolver(checks *check.Resolver, logger *zap.Logger) *Resolver {
	return &Resolver{checks: checks, logger: logger}
}

// Perform resolves r against target, which may be nil.
//
// A pool below the spell's base mana cost fails without a check. Otherwise the
// primary caster alone checks mage with thaumaturgy against Difficulty, and
// success invokes the effect once at enhancement 0. Pool and time are never
// refunded or consumed by Perform itself.
func (p *Resolver) Perform(r *Ritual, target *character.Character) (Result, error) {
	res := Result{Spell: r.spell.Name, Pool: r.pool, Difficulty: r.Difficulty()}
	if r.pool < r.spell.ManaCost {
		p.logger.Debug("ritual pool short",
			zap.String("spell", r.spell.ID),
			zap.Int("pool", r.pool),
			zap.Int("cost", r.spell.ManaCost),
		)
		return res, nil
	}
	res.Attempted = true
	var err error
	res.Check, err = p.checks.Check(r.primary, check.Request{
		Attribute:  ruleset.Mage,
		Skills:     ruleset.ThaumaturgySkills,
		Difficulty: res.Difficulty,
	})
	if err != nil {
		return Result{}, err
	}
	res.Success = res.Check.Success
	if res.Success {
		res.Effect = r.spell.Invoke(magic.EffectContext{
			Caster: r.primary,
			Target: target,
			Roller: p.checks.Roller(),
		})
	}
	p.logger.Debug("ritual performed",
		zap.String("spell", r.spell.ID),
		zap.String("primary", r.primary.Name()),
		zap.Int("participants", len(r.participants)),
		zap.Int("pool", r.pool),
		zap.Int("difficulty", res.Difficulty),
		zap.Int("total", res.Check.Total),
		zap.Bool("success", res.Success),
	)
	return res, nil
}
