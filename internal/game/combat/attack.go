package combat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wrm/internal/game/character"
	"github.com/cory-johannsen/wrm/internal/game/check"
	"github.com/cory-johannsen/wrm/internal/game/dice"
	"github.com/cory-johannsen/wrm/internal/game/inventory"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

// Reason explains an attack that was not resolved.
type Reason int

const (
	// Resolved means the attack check was made.
	Resolved Reason = iota
	// AttackerDead means a dead entity tried to act.
	AttackerDead
	// TargetDead means the defender was no longer a valid target.
	TargetDead
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case AttackerDead:
		return "attacker_dead"
	case TargetDead:
		return "target_dead"
	default:
		return "resolved"
	}
}

// AttackResult holds the outcome of a single attack.
type AttackResult struct {
	Attacker string
	Defender string
	Weapon   string
	Reason   Reason
	Hit      bool
	// Check is the final attack check; Rerolled is set when fate replaced a miss.
	Check    check.Result
	Rerolled bool
	// Damage is the rolled damage after flat bonuses, before resistance.
	Damage     int
	DamageRoll dice.RollResult
	// Dealt is the HP the defender actually lost.
	Dealt  int
	Killed bool
}

// Resolver resolves attacks.
type Resolver struct {
	checks *check.Resolver
	hooks  *HookRegistry
	logger *zap.Logger
}

// NewResolver returns a Resolver. hooks may be nil.
//
// Precondition: checks and logger must be non-nil.
func NewResolver(checks *check.Resolver, hooks *HookRegistry, logger *zap.Logger) *Resolver {
	if hooks == nil {
		hooks = NewHookRegistry()
	}
	return &Resolver{checks: checks, hooks: hooks, logger: logger}
}

// Hooks returns the on-hit hook registry.
func (r *Resolver) Hooks() *HookRegistry { return r.hooks }

// Attack resolves one attack with the weapon weaponID, or with the attacker's
// equipped weapon when weaponID is empty.
//
// Ranged weapons check rogue plus the ranged-attack talent bonus; melee
// weapons check warrior. The DL is the defender's total defense, or base
// defense for weapons that ignore armor. Damage dice always explode.
//
// Postcondition: An unknown weapon reference returns an error and draws no dice.
// Dead participants yield a result with Reason set and no state change.
func (r *Resolver) Attack(attacker, defender *character.Character, weaponID string) (AttackResult, error) {
	return r.attack(attacker, defender, weaponID, false)
}

// AttackWithFate is Attack, except that a missed check is re-resolved once
// if the attacker can spend a fate point.
func (r *Resolver) AttackWithFate(attacker, defender *character.Character, weaponID string) (AttackResult, error) {
	return r.attack(attacker, defender, weaponID, true)
}

func (r *Resolver) weapon(attacker *character.Character, weaponID string) (*inventory.ItemDef, error) {
	if weaponID == "" {
		return attacker.Weapon(), nil
	}
	def, err := attacker.Items().Weapon(weaponID)
	if err != nil {
		return nil, fmt.Errorf("attack by %q: %w", attacker.Name(), err)
	}
	return def, nil
}

func (r *Resolver) attack(attacker, defender *character.Character, weaponID string, fate bool) (AttackResult, error) {
	def, err := r.weapon(attacker, weaponID)
	if err != nil {
		return AttackResult{}, err
	}
	w := def.Weapon
	res := AttackResult{Attacker: attacker.Name(), Defender: defender.Name(), Weapon: def.Name}
	if attacker.IsDead() {
		res.Reason = AttackerDead
		return res, nil
	}
	if defender.IsDead() {
		res.Reason = TargetDead
		return res, nil
	}

	req := check.Request{
		Attribute:  ruleset.Warrior,
		Skills:     []ruleset.Skill{w.Skill},
		Difficulty: defender.TotalDefense(),
	}
	if w.IsRanged() {
		req.Attribute = ruleset.Rogue
		req.Modifier = attacker.RangedAttackBonus()
	}
	if w.IgnoresArmor {
		req.Difficulty = defender.BaseDefense()
	}
	res.Check, err = r.checks.Check(attacker, req)
	if err != nil {
		return AttackResult{}, err
	}
	if !res.Check.Success && fate && attacker.SpendFate() {
		res.Rerolled = true
		if res.Check, err = r.checks.Check(attacker, req); err != nil {
			return AttackResult{}, err
		}
	}
	res.Hit = res.Check.Success
	if res.Hit {
		res.DamageRoll = r.checks.Roller().RollExploding(w.Damage)
		res.Damage = res.DamageRoll.Total()
		if !w.IsRanged() {
			res.Damage += attacker.MeleeDamageWith(def)
		}
		res.Damage = max(0, res.Damage)
		res.Dealt = defender.TakeDamage(res.Damage, w.DamageType)
		res.Killed = defender.IsDead()
		r.hooks.run(HitContext{Attacker: attacker, Defender: defender, Result: &res, Roller: r.checks.Roller()})
	}
	r.logger.Debug("attack resolved",
		zap.String("attacker", res.Attacker),
		zap.String("defender", res.Defender),
		zap.String("weapon", res.Weapon),
		zap.Int("total", res.Check.Total),
		zap.Int("difficulty", res.Check.Difficulty),
		zap.Bool("hit", res.Hit),
		zap.Int("dealt", res.Dealt),
	)
	return res, nil
}
