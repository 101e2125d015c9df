package magic

import (
	"fmt"

	"github.com/cory-johannsen/wrm/internal/game/character"
	"github.com/cory-johannsen/wrm/internal/game/condition"
	"github.com/cory-johannsen/wrm/internal/game/dice"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

// Built-in effect keys.
const (
	EffectLight    = "light"
	EffectHeal     = "heal"
	EffectFireBolt = "fire_bolt"
	EffectWard     = "ward"
	EffectSummon   = "summon"
)

// WardCondition is the condition applied by the ward effect.
const WardCondition = "warded"

// EffectContext carries everything a spell effect may touch.
type EffectContext struct {
	Spell  *SpellDef
	Caster *character.Character
	// Target is nil when no target was chosen.
	Target      *character.Character
	Enhancement int
	Roller      *dice.Roller
}

// target returns the explicit target, or the caster for self-targetable effects.
func (c EffectContext) target() *character.Character {
	if c.Target != nil {
		return c.Target
	}
	return c.Caster
}

// EffectResult reports what an effect did.
type EffectResult struct {
	Healed  int
	Dealt   int
	Applied string
	Message string
}

// Effect is a spell's behavior on a successful cast.
type Effect func(EffectContext) EffectResult

// Effects is the catalog of spell effects keyed by name.
type Effects struct {
	m map[string]Effect
}

// NewEffects returns an empty catalog.
func NewEffects() *Effects {
	return &Effects{m: make(map[string]Effect)}
}

// Register adds or replaces the effect stored under key.
//
// Precondition: e must not be nil.
func (e *Effects) Register(key string, effect Effect) {
	e.m[key] = effect
}

// Get returns the effect stored under key.
func (e *Effects) Get(key string) (Effect, bool) {
	effect, ok := e.m[key]
	return effect, ok
}

// DefaultEffects returns a catalog holding every built-in effect. conds
// supplies the ward condition; a nil registry or a missing definition makes
// ward a purely descriptive effect.
func DefaultEffects(conds *condition.Registry) *Effects {
	e := NewEffects()
	e.Register(EffectLight, func(ctx EffectContext) EffectResult {
		return EffectResult{Message: fmt.Sprintf("A magical light illuminates the area around %s.", ctx.Caster.Name())}
	})
	e.Register(EffectHeal, func(ctx EffectContext) EffectResult {
		t := ctx.target()
		amount := ctx.Roller.D() + ctx.Enhancement
		healed := t.Heal(amount)
		return EffectResult{
			Healed:  healed,
			Message: fmt.Sprintf("%s's healing hand restores %d HP to %s.", ctx.Caster.Name(), healed, t.Name()),
		}
	})
	e.Register(EffectFireBolt, func(ctx EffectContext) EffectResult {
		if ctx.Target == nil {
			return EffectResult{Message: fmt.Sprintf("%s's fire bolt strikes nothing.", ctx.Caster.Name())}
		}
		n := ctx.Enhancement + 1
		expr := dice.Expression{Raw: fmt.Sprintf("%dd%d", n, ctx.Roller.Sides()), Count: n, Sides: ctx.Roller.Sides()}
		dealt := ctx.Target.TakeDamage(ctx.Roller.RollExploding(expr).Total(), ruleset.Fire)
		return EffectResult{
			Dealt:   dealt,
			Message: fmt.Sprintf("%s's fire bolt burns %s for %d damage.", ctx.Caster.Name(), ctx.Target.Name(), dealt),
		}
	})
	e.Register(EffectWard, func(ctx EffectContext) EffectResult {
		t := ctx.target()
		res := EffectResult{Message: fmt.Sprintf("A shimmering ward surrounds %s.", t.Name())}
		if conds == nil {
			return res
		}
		if def, ok := conds.Get(WardCondition); ok && t.Conditions().Apply(def.New()) {
			res.Applied = def.ID
		}
		return res
	})
	e.Register(EffectSummon, func(ctx EffectContext) EffectResult {
		return EffectResult{Message: fmt.Sprintf("%s calls forth a being from beyond.", ctx.Caster.Name())}
	})
	return e
}
