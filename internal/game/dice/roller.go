package dice

// Draw rolls one die with the given number of sides.
//
// Precondition: sides >= 1; src must be non-nil.
// Postcondition: 1 <= result <= sides.
func Draw(src Source, sides int) int {
	return src.Intn(sides) + 1
}

// Explode performs an open-ended roll: it keeps drawing while the most recent
// draw shows the maximum face and stops on the first lower face. It returns
// every draw in order.
//
// Precondition: sides >= 2; src must be non-nil.
// Postcondition: len(result) >= 1; every element but the last equals sides;
// the last element is < sides. sum(result) == (len(result)-1)*sides + last.
func Explode(src Source, sides int) []int {
	var draws []int
	for {
		d := Draw(src, sides)
		draws = append(draws, d)
		if d != sides {
			return draws
		}
	}
}

// Roll evaluates an Expression using the given Source and returns a RollResult.
//
// Precondition: expr must come from Parse; src must be non-nil.
// Postcondition: len(result.Dice) == expr.Count;
// result.Total() == sum(result.Dice) + result.Modifier.
func Roll(expr Expression, src Source) RollResult {
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = Draw(src, expr.Sides)
	}
	return RollResult{
		Expression: expr.Raw,
		Dice:       rolled,
		Modifier:   expr.Modifier,
	}
}

// RollExploding evaluates an Expression where every die explodes.
//
// Precondition: expr must come from Parse; src must be non-nil.
// Postcondition: len(result.Dice) >= expr.Count;
// result.Total() == sum(result.Dice) + result.Modifier.
func RollExploding(expr Expression, src Source) RollResult {
	var rolled []int
	for i := 0; i < expr.Count; i++ {
		rolled = append(rolled, Explode(src, expr.Sides)...)
	}
	return RollResult{
		Expression: expr.Raw,
		Dice:       rolled,
		Modifier:   expr.Modifier,
	}
}

// Sum returns the sum of draws.
func Sum(draws []int) int {
	total := 0
	for _, d := range draws {
		total += d
	}
	return total
}
