package fluid

import "math"

// Ave is the symmetric van Leer slope limiter over forward and backward
// differences. Opposite signs (or either difference exactly zero) return a
// flat slope, preserving monotonicity; otherwise the harmonic blend, which
// equals a when a == b and never exceeds twice the smaller magnitude.
func Ave(a, b float64) (slope float64) {
	if a*b <= 0 {
		return 0
	}
	slope = 2 * a * b / (a + b)
	return
}

// Flux is the two-point numerical flux for a quantity advected by a
// locally varying velocity: the velocity-weighted average stabilized by
// the larger wave speed, reducing to pure upwinding when one side
// dominates.
func Flux(qMinus, qPlus, vLeft, vRight float64) (f float64) {
	s := math.Max(math.Abs(vLeft), math.Abs(vRight))
	f = 0.5*(vLeft*qMinus+vRight*qPlus) - 0.5*s*(qPlus-qMinus)
	return
}
