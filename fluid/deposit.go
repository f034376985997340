package fluid

import (
	"fmt"
	"math"

	"github.com/notargets/gofluid/mesh"
)

// DepositCharge accumulates q*N into rho at every node this patch owns.
// The ownership mask resolves the nodes shared between overlapping
// patches, so the contribution of each physical node arrives exactly
// once; accumulation is additive so other species can deposit into the
// same field.
func (fc *FluidContainer) DepositCharge(lev int, rho *mesh.Field) {
	if rho.Stag != mesh.Nodal {
		panic(fmt.Errorf("charge field %s must be node-centered like %s",
			rho.Name, fc.N[lev].Name))
	}
	var (
		l    = fc.layouts[lev]
		q    = fc.Charge
		mask = mesh.OwnerMask(rho)
	)
	for ip := 0; ip < l.NumPatches(); ip++ {
		var (
			np = fc.N[lev].Patch(ip)
			rp = rho.Patch(ip)
		)
		mesh.ParallelFor(np.Box, func(i, j, k int) {
			if mask.At(ip, i, j, k) {
				rp.Add(i, j, k, 0, q*np.At(i, j, k, 0))
			}
		})
	}
}

// DepositCurrent converts the moments to a node-centered current
// j = q*NU/gamma and resamples it onto the (possibly staggered) current
// components of the coupled mesh. The gamma here is the
// current-conserving form sqrt(N^2 + |NU|^2/c^2)/N built from the
// conserved magnitudes, intentionally distinct from the kinematic Lorentz
// factor used by the pusher. Per-component ownership masks prevent double
// counting at patch boundaries; accumulation is additive.
func (fc *FluidContainer) DepositCurrent(lev int, J [3]*mesh.Field) {
	var (
		l      = fc.layouts[lev]
		q      = fc.Charge
		invCSq = 1.0 / (Clight * Clight)
		tmp    = mesh.NewField("fluid current", l, mesh.Nodal, 3, 0)
		masks  [3]*mesh.Mask
	)
	for d := 0; d < 3; d++ {
		masks[d] = mesh.OwnerMask(J[d])
	}

	// Current at the nodes
	for ip := 0; ip < l.NumPatches(); ip++ {
		var (
			np  = fc.N[lev].Patch(ip)
			nux = fc.NU[lev][0].Patch(ip)
			nuy = fc.NU[lev][1].Patch(ip)
			nuz = fc.NU[lev][2].Patch(ip)
			tp  = tmp.Patch(ip)
		)
		mesh.ParallelFor(np.Box, func(i, j, k int) {
			var (
				n  = np.At(i, j, k, 0)
				ax = nux.At(i, j, k, 0)
				ay = nuy.At(i, j, k, 0)
				az = nuz.At(i, j, k, 0)
			)
			gamma := math.Sqrt(n*n+(ax*ax+ay*ay+az*az)*invCSq) / n
			tp.Set(i, j, k, 0, q*ax/gamma)
			tp.Set(i, j, k, 1, q*ay/gamma)
			tp.Set(i, j, k, 2, q*az/gamma)
		})
	}

	// Resample onto the simulation mesh components, masking double counts
	for ip := 0; ip < l.NumPatches(); ip++ {
		tp := tmp.Patch(ip)
		for d := 0; d < 3; d++ {
			var (
				dd = d
				jp = J[d].Patch(ip)
				ms = masks[d]
			)
			mesh.ParallelFor(jp.Box, func(i, j, k int) {
				v := Interp(tp, jp.Stag, i, j, k, dd)
				if ms.At(ip, i, j, k) {
					jp.Add(i, j, k, 0, v)
				}
			})
		}
	}
}
