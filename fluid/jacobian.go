package fluid

import (
	"math"

	"github.com/notargets/gofluid/utils"
)

/*
	The conserved vector is Q = (N, NUx, NUy, NUz) = N*(1, Ux, Uy, Uz) and
	its flux along axis d is F_d = V_d*Q with V_d = U_d/gamma,
	gamma = sqrt(1 + |U|^2/c^2). Differentiating V_d through U = NU/N gives
	the closed form

		dF_d[m]/dQ[n] = V_d*delta(m,n) + w[m]*T[n]

	with w = (1, Ux, Uy, Uz),
	T[0]   = -U_d/gamma^3,
	T[1+b] = (delta(d,b)*c^2*gamma^2 - U_d*U_b) / (c^2*gamma^3).

	Expanded per axis this reproduces the familiar rational-function entry
	tables, e.g. for d = x:
		A[0][1] = (c^2 + Uy^2 + Uz^2) / (c^2*gamma^3)
		A[1][0] = -Ux^2 / gamma^3
		A[1][1] = (2*Ux*c^2 + 2*Ux*Uz^2 + 2*Ux*Uy^2 + Ux^3) / (c^2*gamma^3)
	and so on; one expression serves all active axes.
*/

// FluxJacobian is the 4x4 Jacobian of the conserved-moment flux along one
// axis with respect to the conserved vector, evaluated at bulk momentum
// (ux,uy,uz). Pure and pointwise; singular in the N=0 limit upstream of
// this call (the caller guarantees populated cells).
func FluxJacobian(axis int, ux, uy, uz, clight float64) (A [4][4]float64) {
	var (
		u     = [3]float64{ux, uy, uz}
		cSq   = clight * clight
		uSq   = ux*ux + uy*uy + uz*uz
		gamma = math.Sqrt(1 + uSq/cSq)
		g3    = utils.POW(gamma, 3)
		a     = cSq * g3
		ud    = u[axis]
		vd    = ud / gamma
		w     = [4]float64{1, ux, uy, uz}
		t     [4]float64
	)
	t[0] = -ud / g3
	for b := 0; b < 3; b++ {
		t[1+b] = -ud * u[b] / a
		if b == axis {
			t[1+b] += cSq * gamma * gamma / a
		}
	}
	for m := 0; m < 4; m++ {
		for n := 0; n < 4; n++ {
			A[m][n] = w[m] * t[n]
		}
		A[m][m] += vd
	}
	return
}

// ApplyJacobian is the 4-vector product A*dq used by the half-step
// characteristic tracing.
func ApplyJacobian(A [4][4]float64, dq [4]float64) (adq [4]float64) {
	for m := 0; m < 4; m++ {
		adq[m] = A[m][0]*dq[0] + A[m][1]*dq[1] + A[m][2]*dq[2] + A[m][3]*dq[3]
	}
	return
}
