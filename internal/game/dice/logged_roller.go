package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged dice rolling.
// All rolls are logged at debug level with expression, dice values, modifier, and total.
//
// Roller itself satisfies Source, so it can be handed to code that only needs draws.
type Roller struct {
	src    Source
	sides  int
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls standard d6 dice with src and logs
// each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, sides: DefaultSides, logger: logger}
}

// WithSides returns a copy of r whose standard die has the given face count.
//
// Precondition: sides >= 2.
func (r *Roller) WithSides(sides int) *Roller {
	cp := *r
	cp.sides = sides
	return &cp
}

// Sides returns the face count of the standard die.
func (r *Roller) Sides() int { return r.sides }

// Intn forwards to the underlying Source without logging.
func (r *Roller) Intn(n int) int { return r.src.Intn(n) }

// D rolls one standard die.
//
// Postcondition: 1 <= result <= Sides().
func (r *Roller) D() int {
	v := Draw(r.src, r.sides)
	r.logger.Debug("die roll", zap.Int("sides", r.sides), zap.Int("result", v))
	return v
}

// Exploding performs an open-ended roll of the standard die and returns the sum.
//
// Postcondition: result >= 1.
func (r *Roller) Exploding() int {
	draws := Explode(r.src, r.sides)
	total := Sum(draws)
	r.logger.Debug("exploding roll",
		zap.Int("sides", r.sides),
		zap.Ints("draws", draws),
		zap.Int("total", total),
	)
	return total
}

// Roll evaluates expr and logs the result at debug level.
//
// Precondition: expr must come from Parse.
func (r *Roller) Roll(expr Expression) RollResult {
	return r.logged("dice roll", Roll(expr, r.src))
}

// RollExploding evaluates expr with every die exploding and logs the result.
//
// Precondition: expr must come from Parse.
func (r *Roller) RollExploding(expr Expression) RollResult {
	return r.logged("exploding dice roll", RollExploding(expr, r.src))
}

// RollExpr parses expr and rolls it, logging the result.
//
// Postcondition: Returns a RollResult or a parse error.
func (r *Roller) RollExpr(expr string) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return r.Roll(e), nil
}

func (r *Roller) logged(msg string, result RollResult) RollResult {
	r.logger.Debug(msg,
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
	)
	return result
}
