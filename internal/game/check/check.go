// Package check resolves attribute checks and opposed checks with the
// standard die, skill bonus, skilled explosion, and state penalties.
package check

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/wrm/internal/game/dice"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

// Subject is the entity state a check reads.
type Subject interface {
	Name() string
	Attribute(attr ruleset.Attribute) (int, error)
	HasAnySkill(skills []ruleset.Skill) bool
	// SkillBonus returns talent and equipment bonuses keyed to skills.
	SkillBonus(skills []ruleset.Skill) int
	SustainedCount() int
	SeriouslyWounded() bool
}

// penalized is implemented by subjects whose status effects penalize checks.
type penalized interface {
	ConditionPenalty() int
}

// Request describes one check.
type Request struct {
	Attribute ruleset.Attribute
	Skills    []ruleset.Skill
	// Difficulty is the DL the total must meet or exceed.
	Difficulty int
	// Modifier is a situational bonus added after the standard terms.
	Modifier int
}

// Result is the outcome of one check. Every term is reported.
type Result struct {
	Success    bool
	Total      int
	Difficulty int

	Roll        int
	Explosion   int
	SkillBonus  int
	Attribute   int
	TalentBonus int
	Modifier    int
	Sustained   int
	Wounded     int
	Conditions  int
}

// Resolver performs checks against a shared Roller.
type Resolver struct {
	roller *dice.Roller
	rules  ruleset.Rules
	logger *zap.Logger
}

// NewResolver returns a Resolver.
//
// Precondition: roller and logger must be non-nil; rules must be valid.
func NewResolver(roller *dice.Roller, rules ruleset.Rules, logger *zap.Logger) *Resolver {
	return &Resolver{roller: roller, rules: rules, logger: logger}
}

// Roller returns the underlying roller.
func (r *Resolver) Roller() *dice.Roller { return r.roller }

// Rules returns the rules table.
func (r *Resolver) Rules() ruleset.Rules { return r.rules }

// Check resolves req for s.
//
// Algorithm: one standard die; +SkillBonus if s has any relevant skill; if so
// and the die shows its maximum face, + one exploding roll; + the attribute;
// + talent bonuses for the relevant skills; + Modifier; - SustainPenalty per
// sustained spell; - WoundedPenalty while seriously wounded; - status effect
// penalties.
//
// Postcondition: Returns an error wrapping ruleset.ErrInvalidAttribute for an
// invalid attribute, before any die is drawn.
func (r *Resolver) Check(s Subject, req Request) (Result, error) {
	attr, err := s.Attribute(req.Attribute)
	if err != nil {
		return Result{}, err
	}
	res := Result{Difficulty: req.Difficulty, Attribute: attr, Modifier: req.Modifier}
	res.Roll = r.roller.D()
	skilled := s.HasAnySkill(req.Skills)
	if skilled {
		res.SkillBonus = r.rules.SkillBonus
		if res.Roll == r.roller.Sides() {
			res.Explosion = r.roller.Exploding()
		}
	}
	res.TalentBonus = s.SkillBonus(req.Skills)
	res.Sustained = r.rules.SustainPenalty * s.SustainedCount()
	if s.SeriouslyWounded() {
		res.Wounded = r.rules.WoundedPenalty
	}
	if p, ok := s.(penalized); ok {
		res.Conditions = p.ConditionPenalty()
	}
	res.Total = res.Roll + res.SkillBonus + res.Explosion + res.Attribute + res.TalentBonus +
		res.Modifier - res.Sustained - res.Wounded - res.Conditions
	res.Success = res.Total >= req.Difficulty
	r.logger.Debug("check resolved",
		zap.String("subject", s.Name()),
		zap.Stringer("attribute", req.Attribute),
		zap.Int("difficulty", req.Difficulty),
		zap.Int("total", res.Total),
		zap.Bool("success", res.Success),
	)
	return res, nil
}

// Outcome is the result of an opposed check.
type Outcome int

const (
	// Tie means equal totals: no winner.
	Tie Outcome = iota
	// SelfWins means the initiating entity's total was strictly higher.
	SelfWins
	// OpponentWins means the opponent's total was strictly higher.
	OpponentWins
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case SelfWins:
		return "self_wins"
	case OpponentWins:
		return "opponent_wins"
	default:
		return "tie"
	}
}

// OpposedResult reports both totals regardless of outcome.
type OpposedResult struct {
	Outcome     Outcome
	SelfTotal   int
	OppTotal    int
	Self, Other Result
}

// Opposed runs independent checks for self and opponent and compares totals.
// Difficulty fields of the requests are ignored.
func (r *Resolver) Opposed(self Subject, selfReq Request, opp Subject, oppReq Request) (OpposedResult, error) {
	a, err := r.Check(self, selfReq)
	if err != nil {
		return OpposedResult{}, err
	}
	b, err := r.Check(opp, oppReq)
	if err != nil {
		return OpposedResult{}, err
	}
	out := OpposedResult{SelfTotal: a.Total, OppTotal: b.Total, Self: a, Other: b}
	switch {
	case a.Total > b.Total:
		out.Outcome = SelfWins
	case b.Total > a.Total:
		out.Outcome = OpponentWins
	default:
		out.Outcome = Tie
	}
	return out, nil
}
