package fluid

import (
	"fmt"
	"math"

	"github.com/notargets/gofluid/mesh"
)

func unitShift(axis int) (u [3]int) {
	u[axis] = 1
	return
}

// AdvectivePushMuscl advances the conserved moments (N, NUx, NUy, NUz) by
// one explicit step of the MUSCL-Hancock scheme: slope-limited
// reconstruction with a half-step flux-Jacobian predictor over the valid
// region grown by one layer, then the conservative divergence of the
// two-point face fluxes. The extra reconstruction layer means no ghost
// exchange is needed between the two passes; stability is the caller's
// CFL responsibility.
func (fc *FluidContainer) AdvectivePushMuscl(lev int, dt float64) {
	var (
		l            = fc.layouts[lev]
		g            = fc.geoms[lev]
		axes         = fc.Axes.Axes()
		cFull, cHalf [3]float64
	)
	for _, ax := range axes {
		cFull[ax] = dt / g.Dx[ax]
		cHalf[ax] = 0.5 * dt / g.Dx[ax]
	}

	// Transient per-step storage: nodal velocities and the face-predicted
	// states, each with one ghost layer
	var (
		V             = mesh.NewField("advect velocity", l, mesh.Nodal, 3, 1)
		qMinus, qPlus [3]*mesh.Field
	)
	for _, ax := range axes {
		qMinus[ax] = mesh.NewField(fmt.Sprintf("Q minus [%d]", ax), l, mesh.FaceStag(ax), 4, 1)
		qPlus[ax] = mesh.NewField(fmt.Sprintf("Q plus [%d]", ax), l, mesh.FaceStag(ax), 4, 1)
	}

	// Reconstruction and half-step prediction
	for ip := 0; ip < l.NumPatches(); ip++ {
		var (
			vp      = V.Patch(ip)
			qm, qp  [3]*mesh.Patch
			faceBox [3]mesh.Box
			moments = [4]*mesh.Patch{
				fc.N[lev].Patch(ip),
				fc.NU[lev][0].Patch(ip),
				fc.NU[lev][1].Patch(ip),
				fc.NU[lev][2].Patch(ip),
			}
		)
		for _, ax := range axes {
			qm[ax] = qMinus[ax].Patch(ip)
			qp[ax] = qPlus[ax].Patch(ip)
			faceBox[ax] = l.Boxes[ip].Grow(1).Convert(mesh.FaceStag(ax))
		}
		// One extra layer so the flux pass needs no further communication
		mesh.ParallelFor(moments[0].Box.Grow(1), func(i, j, k int) {
			var (
				n  = moments[0].At(i, j, k, 0)
				ux = moments[1].At(i, j, k, 0) / n
				uy = moments[2].At(i, j, k, 0) / n
				uz = moments[3].At(i, j, k, 0) / n
			)
			gamma := math.Sqrt(1 + (ux*ux+uy*uy+uz*uz)/(Clight*Clight))
			vp.Set(i, j, k, 0, ux/gamma)
			vp.Set(i, j, k, 1, uy/gamma)
			vp.Set(i, j, k, 2, uz/gamma)

			// Limited slopes and the half-step predictor
			var (
				dq [3][4]float64
				qt [4]float64
			)
			for m := 0; m < 4; m++ {
				qt[m] = moments[m].At(i, j, k, 0)
			}
			for _, ax := range axes {
				u := unitShift(ax)
				for m := 0; m < 4; m++ {
					center := moments[m].At(i, j, k, 0)
					dq[ax][m] = Ave(
						center-moments[m].At(i-u[0], j-u[1], k-u[2], 0),
						moments[m].At(i+u[0], j+u[1], k+u[2], 0)-center)
				}
				adq := ApplyJacobian(FluxJacobian(ax, ux, uy, uz, Clight), dq[ax])
				for m := 0; m < 4; m++ {
					qt[m] -= cHalf[ax] * adq[m]
				}
			}

			// Face states; the plus state at a face is bookkept by the
			// lower cell, hence the shifted index
			for _, ax := range axes {
				u := unitShift(ax)
				if faceBox[ax].Contains(i, j, k) {
					for m := 0; m < 4; m++ {
						qm[ax].Set(i, j, k, m, qt[m]+0.5*dq[ax][m])
					}
				}
				if faceBox[ax].Contains(i-u[0], j-u[1], k-u[2]) {
					for m := 0; m < 4; m++ {
						qp[ax].Set(i-u[0], j-u[1], k-u[2], m, qt[m]-0.5*dq[ax][m])
					}
				}
			}
		})
	}

	// Flux evaluation and conservative update
	for ip := 0; ip < l.NumPatches(); ip++ {
		var (
			vp      = V.Patch(ip)
			qm, qp  [3]*mesh.Patch
			moments = [4]*mesh.Patch{
				fc.N[lev].Patch(ip),
				fc.NU[lev][0].Patch(ip),
				fc.NU[lev][1].Patch(ip),
				fc.NU[lev][2].Patch(ip),
			}
		)
		for _, ax := range axes {
			qm[ax] = qMinus[ax].Patch(ip)
			qp[ax] = qPlus[ax].Patch(ip)
		}
		mesh.ParallelFor(moments[0].Box, func(i, j, k int) {
			var div [4]float64
			for _, ax := range axes {
				var (
					u          = unitShift(ax)
					il, jl, kl = i - u[0], j - u[1], k - u[2]
					ir, jr, kr = i + u[0], j + u[1], k + u[2]
					vl         = vp.At(il, jl, kl, ax)
					vc         = vp.At(i, j, k, ax)
					vr         = vp.At(ir, jr, kr, ax)
				)
				for m := 0; m < 4; m++ {
					fMinus := Flux(qm[ax].At(il, jl, kl, m), qp[ax].At(il, jl, kl, m), vl, vc)
					fPlus := Flux(qm[ax].At(i, j, k, m), qp[ax].At(i, j, k, m), vc, vr)
					div[m] += cFull[ax] * (fPlus - fMinus)
				}
			}
			for m := 0; m < 4; m++ {
				moments[m].Set(i, j, k, 0, moments[m].At(i, j, k, 0)-div[m])
			}
		})
	}

	fc.N[lev].FillBoundary()
	for d := 0; d < 3; d++ {
		fc.NU[lev][d].FillBoundary()
	}
}
