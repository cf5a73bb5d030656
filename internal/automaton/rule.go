package automaton

// nextValue computes one interior cell's next state from its committed
// value and the committed values of its four von Neumann neighbours.
//
// Threshold rule on the neighbour sum: fewer than 3 live neighbours kills
// the cell, exactly 3 keeps it as is, 4 forces it alive. Two overrides are
// then checked in order; they give the automaton its streaky texture.
func nextValue(cur, up, down, left, right float64) float64 {
	var next float64
	switch sum := up + down + left + right; {
	case sum < 3:
		next = 0
	case sum < 4:
		next = cur
	default:
		next = 1
	}
	if down+right == 2 {
		// Down and right both live: the thresholded value stands. Inert
		// in practice (right==1 already blocks the stasis override
		// below), preserved so the rule behaves exactly as designed.
		return next
	}
	if up+right == 0 {
		// Up and right both empty: the cell freezes at its current value.
		return cur
	}
	return next
}
