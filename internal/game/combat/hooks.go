package combat

import (
	"github.com/cory-johannsen/wrm/internal/game/character"
	"github.com/cory-johannsen/wrm/internal/game/condition"
	"github.com/cory-johannsen/wrm/internal/game/dice"
)

// HitContext is passed to on-hit hooks after a successful hit.
type HitContext struct {
	Attacker *character.Character
	Defender *character.Character
	Result   *AttackResult
	Roller   *dice.Roller
}

// OnHit is a post-hit special rule.
type OnHit func(HitContext)

// HookRegistry holds on-hit hooks keyed by attacker identity: the template
// ID, or the name for entities without a template.
type HookRegistry struct {
	hooks map[string][]OnHit
}

// NewHookRegistry returns an empty HookRegistry.
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{hooks: make(map[string][]OnHit)}
}

// Register adds h for attackers identified by key.
//
// Precondition: h must not be nil.
func (r *HookRegistry) Register(key string, h OnHit) {
	r.hooks[key] = append(r.hooks[key], h)
}

// Len returns the number of hooks registered for key.
func (r *HookRegistry) Len(key string) int { return len(r.hooks[key]) }

// Identity returns the hook key for c.
func Identity(c *character.Character) string {
	if c.TemplateID() != "" {
		return c.TemplateID()
	}
	return c.Name()
}

func (r *HookRegistry) run(ctx HitContext) {
	for _, h := range r.hooks[Identity(ctx.Attacker)] {
		h(ctx)
	}
}

// ApplyCondition returns a hook that applies def to a living defender when
// one standard die shows at least minRoll.
func ApplyCondition(def *condition.ConditionDef, minRoll int) OnHit {
	return func(ctx HitContext) {
		if ctx.Defender.IsDead() {
			return
		}
		if ctx.Roller.D() >= minRoll {
			ctx.Defender.Conditions().Apply(def.New())
		}
	}
}
