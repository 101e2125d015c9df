package magic

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wrm/internal/game/character"
	"github.com/cory-johannsen/wrm/internal/game/check"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

// Reason explains why a cast did not reach its check.
type Reason int

const (
	// Attempted means the check was made; see CastResult.Success.
	Attempted Reason = iota
	// NotKnown means the spell is not in the caster's spellbook.
	NotKnown
	// InsufficientMana means the chosen source held less than the cost.
	InsufficientMana
	// CasterDead means a dead entity tried to cast.
	CasterDead
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case NotKnown:
		return "not_known"
	case InsufficientMana:
		return "insufficient_mana"
	case CasterDead:
		return "caster_dead"
	default:
		return "attempted"
	}
}

// Source identifies the mana pool a cast drew from.
type Source int

const (
	// SourceCaster is the caster's own mana pool.
	SourceCaster Source = iota
	// SourceImplement is the equipped implement's mana pool.
	SourceImplement
)

// String returns "caster" or "implement".
func (s Source) String() string {
	if s == SourceImplement {
		return "implement"
	}
	return "caster"
}

// CastOptions adjusts a single cast.
type CastOptions struct {
	Target *character.Character
	// UseImplement draws mana from the equipped implement when it stores the spell.
	UseImplement bool
	Enhancement  int
}

// CastResult reports a cast attempt.
type CastResult struct {
	Spell   string
	Reason  Reason
	Success bool
	Source  Source
	// Cost is the computed mana cost; ManaSpent is what was actually deducted.
	Cost       int
	ManaSpent  int
	Difficulty int
	Check      check.Result
	Sustained  bool
	Effect     EffectResult
}

// Cost returns the mana cost of casting def at enhancement level enh:
// base cost, plus armor and shield mana penalties, plus enh * floor(base/2).
func Cost(c *character.Character, def *SpellDef, enh int) int {
	return def.ManaCost + c.ManaPenalty() + enh*(def.ManaCost/2)
}

// Caster resolves spellcasting.
type Caster struct {
	checks  *check.Resolver
	library *Library
	logger  *zap.Logger
}

// NewCaster returns a Caster.
//
// Precondition: checks, library and logger must be non-nil.
func NewCaster(checks *check.Resolver, library *Library, logger *zap.Logger) *Caster {
	return &Caster{checks: checks, library: library, logger: logger}
}

// Library returns the spell library the Caster resolves against.
func (c *Caster) Library() *Library { return c.library }

// Cast resolves c casting spellID.
//
// Mana is deducted from the chosen source whether the check succeeds or
// fails. On success a sustainable spell joins the caster's sustained set and
// the spell's effect runs.
//
// Postcondition: Returns an error wrapping ErrUnknownSpell or
// ErrInvalidEnhancement for a configuration error, with no state change.
// An unknown-to-caster spell or insufficient mana yields Reason set and no
// state change.
func (c *Caster) Cast(caster *character.Character, spellID string, opts CastOptions) (CastResult, error) {
	if opts.Enhancement < 0 {
		return CastResult{}, fmt.Errorf("cast %q: %w, got %d", spellID, ErrInvalidEnhancement, opts.Enhancement)
	}
	spell, err := c.library.Spell(spellID)
	if err != nil {
		return CastResult{}, err
	}
	res := CastResult{
		Spell:      spell.Name,
		Cost:       Cost(caster, spell.SpellDef, opts.Enhancement),
		Difficulty: spell.Difficulty + opts.Enhancement,
	}
	switch {
	case caster.IsDead():
		res.Reason = CasterDead
		return res, nil
	case !caster.Knows(spellID):
		res.Reason = NotKnown
		c.logger.Debug("spell not known", zap.String("caster", caster.Name()), zap.String("spell", spellID))
		return res, nil
	}

	inst, impl, hasImpl := caster.Implement()
	useImpl := opts.UseImplement && hasImpl && impl.Implement.Stores(spellID)
	var available int
	if useImpl {
		res.Source = SourceImplement
		available = inst.Mana
	} else {
		available = caster.Mana()
	}
	if available < res.Cost {
		res.Reason = InsufficientMana
		c.logger.Debug("insufficient mana",
			zap.String("caster", caster.Name()),
			zap.String("spell", spellID),
			zap.Stringer("source", res.Source),
			zap.Int("cost", res.Cost),
			zap.Int("available", available),
		)
		return res, nil
	}

	res.Check, err = c.checks.Check(caster, check.Request{
		Attribute:  ruleset.Mage,
		Skills:     ruleset.ThaumaturgySkills,
		Difficulty: res.Difficulty,
	})
	if err != nil {
		return CastResult{}, err
	}
	if useImpl {
		inst.Mana -= res.Cost
	} else {
		caster.SpendMana(res.Cost)
	}
	res.ManaSpent = res.Cost
	res.Success = res.Check.Success

	if res.Success {
		if spell.Sustainable() && !caster.IsSustaining(spellID) {
			if err := caster.Sustain(spellID, spell.Duration); err != nil {
				return res, err
			}
			res.Sustained = true
		}
		res.Effect = spell.Invoke(EffectContext{
			Caster:      caster,
			Target:      opts.Target,
			Enhancement: opts.Enhancement,
			Roller:      c.checks.Roller(),
		})
	}
	c.logger.Debug("spell cast",
		zap.String("caster", caster.Name()),
		zap.String("spell", spellID),
		zap.Int("enhancement", opts.Enhancement),
		zap.Stringer("source", res.Source),
		zap.Int("mana_spent", res.ManaSpent),
		zap.Int("total", res.Check.Total),
		zap.Int("difficulty", res.Difficulty),
		zap.Bool("success", res.Success),
	)
	return res, nil
}
