package fluid

import (
	"github.com/notargets/gofluid/mesh"
)

// InitData seeds the moment fields from the injector profiles, one sample
// per node, then fills the ghost halo. Momentum density is stored as
// N*U with U converted from units of c.
func (fc *FluidContainer) InitData(lev int, inj Injector) {
	var (
		l = fc.layouts[lev]
		g = fc.geoms[lev]
	)
	for ip := 0; ip < l.NumPatches(); ip++ {
		var (
			np  = fc.N[lev].Patch(ip)
			nux = fc.NU[lev][0].Patch(ip)
			nuy = fc.NU[lev][1].Patch(ip)
			nuz = fc.NU[lev][2].Patch(ip)
		)
		mesh.ParallelFor(np.Box, func(i, j, k int) {
			var (
				idx   = [3]int{i, j, k}
				coord [3]float64 // reduced dimensions stay at the origin
			)
			for _, ax := range fc.Axes.Axes() {
				coord[ax] = g.Coord(ax, idx[ax], 1)
			}
			n := inj.Density(coord[0], coord[1], coord[2])
			ux, uy, uz := inj.BulkMomentum(coord[0], coord[1], coord[2])
			np.Set(i, j, k, 0, n)
			nux.Set(i, j, k, 0, n*ux*Clight)
			nuy.Set(i, j, k, 0, n*uy*Clight)
			nuz.Set(i, j, k, 0, n*uz*Clight)
		})
	}
	fc.N[lev].FillBoundary()
	for d := 0; d < 3; d++ {
		fc.NU[lev][d].FillBoundary()
	}
}
