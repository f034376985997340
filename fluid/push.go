package fluid

import (
	"github.com/notargets/gofluid/mesh"
)

// GatherAndPush is the momentum source from the electromagnetic fields:
// the field components, which may live at staggered locations, are
// resampled to the fluid nodes, the bulk momentum U = NU/N is advanced by
// the Higuera-Cary integrator, and NU is restored as N*U. Density is
// untouched by construction. Field patches need a filled ghost layer of 1
// when their stagger differs from nodal.
func (fc *FluidContainer) GatherAndPush(lev int, dt float64, E, B [3]*mesh.Field) {
	var (
		l      = fc.layouts[lev]
		q      = fc.Charge
		m      = fc.Mass
		gather = !fc.Flags.DoNotGather
	)
	for ip := 0; ip < l.NumPatches(); ip++ {
		var (
			np  = fc.N[lev].Patch(ip)
			nux = fc.NU[lev][0].Patch(ip)
			nuy = fc.NU[lev][1].Patch(ip)
			nuz = fc.NU[lev][2].Patch(ip)
			ep  [3]*mesh.Patch
			bp  [3]*mesh.Patch
		)
		if gather {
			for d := 0; d < 3; d++ {
				ep[d] = E[d].Patch(ip)
				bp[d] = B[d].Patch(ip)
			}
		}
		mesh.ParallelFor(np.Box, func(i, j, k int) {
			var ex, ey, ez, bx, by, bz float64
			if gather {
				ex = Interp(ep[0], mesh.Nodal, i, j, k, 0)
				ey = Interp(ep[1], mesh.Nodal, i, j, k, 0)
				ez = Interp(ep[2], mesh.Nodal, i, j, k, 0)
				bx = Interp(bp[0], mesh.Nodal, i, j, k, 0)
				by = Interp(bp[1], mesh.Nodal, i, j, k, 0)
				bz = Interp(bp[2], mesh.Nodal, i, j, k, 0)
			}
			n := np.At(i, j, k, 0)
			ux := nux.At(i, j, k, 0) / n
			uy := nuy.At(i, j, k, 0) / n
			uz := nuz.At(i, j, k, 0) / n
			ux, uy, uz = UpdateMomentumHigueraCary(ux, uy, uz,
				ex, ey, ez, bx, by, bz, q, m, dt)
			nux.Set(i, j, k, 0, n*ux)
			nuy.Set(i, j, k, 0, n*uy)
			nuz.Set(i, j, k, 0, n*uz)
		})
	}
	for d := 0; d < 3; d++ {
		fc.NU[lev][d].FillBoundary()
	}
}
