package fluid

import (
	"fmt"

	"github.com/notargets/gofluid/mesh"
)

// Injector supplies the initial moment profiles as black-box functions of
// position; bulk momentum is in units of c.
type Injector interface {
	Density(x, y, z float64) float64
	BulkMomentum(x, y, z float64) (ux, uy, uz float64)
}

// SpeciesFlags are the per-species switches resolved once from the input
// deck at container construction and immutable afterwards.
type SpeciesFlags struct {
	DoNotPush    bool
	DoNotGather  bool
	DoNotDeposit bool
}

// FluidContainer evolves the moments of one plasma species on a set of
// mesh levels: nodal density N and momentum density NU, both with a ghost
// halo wide enough (2) that the reconstruction and flux stages need no
// mid-step communication. Bulk velocity and Lorentz factor are always
// recomputed from NU/N, never cached.
type FluidContainer struct {
	SpeciesName  string
	Charge, Mass float64
	Flags        SpeciesFlags
	Axes         AxisSet

	N       []*mesh.Field
	NU      [][3]*mesh.Field
	layouts []*mesh.Layout
	geoms   []mesh.Geometry
}

const nGuards = 2

func NewFluidContainer(nlevsMax int, name string, charge, mass float64,
	axes AxisSet, flags SpeciesFlags) (fc *FluidContainer) {
	fc = &FluidContainer{
		SpeciesName: name,
		Charge:      charge,
		Mass:        mass,
		Flags:       flags,
		Axes:        axes,
		N:           make([]*mesh.Field, nlevsMax),
		NU:          make([][3]*mesh.Field, nlevsMax),
		layouts:     make([]*mesh.Layout, nlevsMax),
		geoms:       make([]mesh.Geometry, nlevsMax),
	}
	return
}

// AllocateLevel creates the moment fields for one mesh level.
func (fc *FluidContainer) AllocateLevel(lev int, l *mesh.Layout, g mesh.Geometry) {
	tag := func(name string) string {
		return fmt.Sprintf("%s[l=%d]", name, lev)
	}
	fc.layouts[lev] = l
	fc.geoms[lev] = g
	fc.N[lev] = mesh.NewField(tag("fluid density"), l, mesh.Nodal, 1, nGuards)
	fc.NU[lev] = [3]*mesh.Field{
		mesh.NewField(tag("fluid momentum density [x]"), l, mesh.Nodal, 1, nGuards),
		mesh.NewField(tag("fluid momentum density [y]"), l, mesh.Nodal, 1, nGuards),
		mesh.NewField(tag("fluid momentum density [z]"), l, mesh.Nodal, 1, nGuards),
	}
	for d := 0; d < 3; d++ {
		fc.NU[lev][d].SameLayoutAs(fc.N[lev])
	}
}

func (fc *FluidContainer) Layout(lev int) *mesh.Layout    { return fc.layouts[lev] }
func (fc *FluidContainer) Geometry(lev int) mesh.Geometry { return fc.geoms[lev] }

// Evolve advances the moments one time step: momentum push under the
// fields, advective MUSCL push, then current deposition onto the coupled
// mesh. Ghost synchronization brackets each stage inside the callees.
func (fc *FluidContainer) Evolve(lev int, dt float64, E, B [3]*mesh.Field,
	J [3]*mesh.Field, skipDeposition bool) {
	if !fc.Flags.DoNotPush {
		fc.GatherAndPush(lev, dt, E, B)
	}
	fc.AdvectivePushMuscl(lev, dt)
	if !skipDeposition && !fc.Flags.DoNotDeposit {
		fc.DepositCurrent(lev, J)
	}
}
