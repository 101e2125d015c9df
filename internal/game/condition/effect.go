package condition

import "github.com/cory-johannsen/wrm/internal/game/ruleset"

// Owner is the entity a status effect is bound to.
type Owner interface {
	Name() string
	// TakeDamage applies amount of type dt after resistances and returns the HP lost.
	TakeDamage(amount int, dt ruleset.DamageType) int
	// Heal restores up to amount HP and returns the HP gained.
	Heal(amount int) int
}

// Effect is a named, time-limited condition with lifecycle hooks.
// Duration bookkeeping is owned by ActiveSet; effects only expose hooks.
type Effect interface {
	// ID is the unique key of the effect on one owner.
	ID() string
	// Duration is the number of owner turns the effect lasts, or Permanent.
	Duration() int
	// OnApply fires once when the effect is bound to o.
	OnApply(o Owner)
	// OnTurnStart fires once at the start of each of o's turns.
	OnTurnStart(o Owner)
	// OnRemove fires when the effect expires or is cleared.
	OnRemove(o Owner)
}

// Penalizer is implemented by effects that reduce their owner's checks.
type Penalizer interface {
	// CheckPenalty is subtracted from every check made by the owner.
	CheckPenalty() int
}

// Condition is the Effect built from a ConditionDef.
type Condition struct {
	def *ConditionDef
}

// ID returns the definition ID.
func (c *Condition) ID() string { return c.def.ID }

// Duration returns the definition's duration in owner turns.
func (c *Condition) Duration() int { return c.def.Duration }

// CheckPenalty returns the definition's check penalty.
func (c *Condition) CheckPenalty() int { return c.def.CheckPenalty }

// Def returns the definition the condition was built from.
func (c *Condition) Def() *ConditionDef { return c.def }

// OnApply does nothing; definitions carry no apply-time effect.
func (c *Condition) OnApply(Owner) {}

// OnRemove does nothing; definitions carry no removal effect.
func (c *Condition) OnRemove(Owner) {}

// OnTurnStart deals the definition's periodic damage, then its periodic healing.
func (c *Condition) OnTurnStart(o Owner) {
	if c.def.DamagePerTurn > 0 {
		o.TakeDamage(c.def.DamagePerTurn, c.def.DamageType)
	}
	if c.def.HealPerTurn > 0 {
		o.Heal(c.def.HealPerTurn)
	}
}
