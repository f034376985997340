package fluid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gofluid/mesh"
)

type uniformInjector struct {
	n0, uz float64 // uz in units of c
}

func (u uniformInjector) Density(x, y, z float64) float64 { return u.n0 }

func (u uniformInjector) BulkMomentum(x, y, z float64) (ux, uy, uzOut float64) {
	uzOut = u.uz
	return
}

type waveInjector struct {
	n0, amp, uz float64
}

func (w waveInjector) Density(x, y, z float64) float64 {
	return w.n0 * (1 + w.amp*math.Sin(2*math.Pi*z))
}

func (w waveInjector) BulkMomentum(x, y, z float64) (ux, uy, uzOut float64) {
	uzOut = w.uz
	return
}

func newTestContainer(nz, nPatches int, flags SpeciesFlags, inj Injector) (
	fc *FluidContainer) {
	var (
		l = mesh.NewLayout(1, 1, nz, nPatches, [3]bool{true, true, true})
		g = mesh.NewGeometry(l, [3]float64{0, 0, 0}, [3]float64{1, 1, 1})
	)
	fc = NewFluidContainer(1, "electrons", -Qe, Me, NewAxisSet("Z"), flags)
	fc.AllocateLevel(0, l, g)
	fc.InitData(0, inj)
	return
}

// totalDensity is the owner-masked sum of N over all patches.
func totalDensity(fc *FluidContainer) (sum float64) {
	var (
		n = fc.N[0]
		m = mesh.OwnerMask(n)
	)
	for ip := 0; ip < fc.Layout(0).NumPatches(); ip++ {
		np := n.Patch(ip)
		np.Box.ForEach(func(i, j, k int) {
			if m.At(ip, i, j, k) {
				sum += np.At(i, j, k, 0)
			}
		})
	}
	return
}

func TestAdvectivePushMuscl(t *testing.T) {
	const (
		n0 = 4.e24
		nz = 32
	)
	dt := 0.4 / (float64(nz) * Clight) // CFL 0.4 against dz/c
	// A uniform fluid at rest is a fixed point
	{
		fc := newTestContainer(nz, 1, SpeciesFlags{}, uniformInjector{n0: n0})
		fc.AdvectivePushMuscl(0, dt)
		np := fc.N[0].Patch(0)
		np.Box.ForEach(func(i, j, k int) {
			assert.Equal(t, n0, np.At(i, j, k, 0))
			assert.Equal(t, 0.0, fc.NU[0][2].Patch(0).At(i, j, k, 0))
		})
	}
	// A uniform moving fluid is translation invariant
	{
		fc := newTestContainer(nz, 1, SpeciesFlags{}, uniformInjector{n0: n0, uz: 0.3})
		fc.AdvectivePushMuscl(0, dt)
		var (
			np  = fc.N[0].Patch(0)
			nuz = fc.NU[0][2].Patch(0)
		)
		np.Box.ForEach(func(i, j, k int) {
			assert.InDelta(t, n0, np.At(i, j, k, 0), n0*1.e-13)
			assert.InDelta(t, n0*0.3*Clight, nuz.At(i, j, k, 0),
				n0*0.3*Clight*1.e-13)
		})
	}
	// Mass is conserved over a periodic density wave
	{
		fc := newTestContainer(nz, 1, SpeciesFlags{},
			waveInjector{n0: n0, amp: 0.1, uz: 0.2})
		before := totalDensity(fc)
		for step := 0; step < 20; step++ {
			fc.AdvectivePushMuscl(0, dt)
		}
		after := totalDensity(fc)
		assert.InDelta(t, before, after, before*1.e-11)
	}
	// The patch decomposition is invisible: multi-patch evolution matches
	// the single patch run on every owned node
	{
		var (
			inj = waveInjector{n0: n0, amp: 0.1, uz: 0.2}
			fc1 = newTestContainer(nz, 1, SpeciesFlags{}, inj)
			fc3 = newTestContainer(nz, 3, SpeciesFlags{}, inj)
		)
		for step := 0; step < 5; step++ {
			fc1.AdvectivePushMuscl(0, dt)
			fc3.AdvectivePushMuscl(0, dt)
		}
		var (
			ref  = fc1.N[0].Patch(0)
			mask = mesh.OwnerMask(fc3.N[0])
		)
		for ip := 0; ip < 3; ip++ {
			np := fc3.N[0].Patch(ip)
			np.Box.ForEach(func(i, j, k int) {
				if mask.At(ip, i, j, k) {
					assert.InDelta(t, ref.At(i, j, k, 0), np.At(i, j, k, 0),
						n0*1.e-12)
				}
			})
		}
	}
}

func TestGatherAndPush(t *testing.T) {
	const (
		n0 = 4.e24
		nz = 16
	)
	const dt = 1.e-16
	zeroFields := func(l *mesh.Layout) (E, B [3]*mesh.Field) {
		for d := 0; d < 3; d++ {
			E[d] = mesh.NewField("E", l, mesh.Nodal, 1, 1)
			B[d] = mesh.NewField("B", l, mesh.Nodal, 1, 1)
		}
		return
	}
	// Zero fields leave density untouched and momentum unchanged
	{
		fc := newTestContainer(nz, 1, SpeciesFlags{}, uniformInjector{n0: n0, uz: 0.1})
		E, B := zeroFields(fc.Layout(0))
		fc.GatherAndPush(0, dt, E, B)
		var (
			np  = fc.N[0].Patch(0)
			nuz = fc.NU[0][2].Patch(0)
		)
		np.Box.ForEach(func(i, j, k int) {
			assert.Equal(t, n0, np.At(i, j, k, 0))
			assert.InDelta(t, n0*0.1*Clight, nuz.At(i, j, k, 0),
				n0*0.1*Clight*1.e-13)
		})
	}
	// A uniform Ez accelerates by (q/m)*Ez*dt, gathered through the
	// staggered field location
	{
		fc := newTestContainer(nz, 1, SpeciesFlags{}, uniformInjector{n0: n0})
		E, B := zeroFields(fc.Layout(0))
		E[2] = mesh.NewField("Ez", fc.Layout(0), mesh.Stag{1, 1, 0}, 1, 1)
		E[2].SetVal(1.e9)
		fc.GatherAndPush(0, dt, E, B)
		var (
			want = -Qe * 1.e9 * dt / Me
			nuz  = fc.NU[0][2].Patch(0)
		)
		nuz.Box.ForEach(func(i, j, k int) {
			assert.InDelta(t, n0*want, nuz.At(i, j, k, 0),
				math.Abs(n0*want)*1.e-12)
		})
	}
	// DoNotGather pushes against zero fields regardless of the mesh values
	{
		fc := newTestContainer(nz, 1, SpeciesFlags{DoNotGather: true},
			uniformInjector{n0: n0, uz: 0.1})
		E, B := zeroFields(fc.Layout(0))
		E[2].SetVal(1.e9)
		fc.GatherAndPush(0, dt, E, B)
		nuz := fc.NU[0][2].Patch(0)
		nuz.Box.ForEach(func(i, j, k int) {
			assert.InDelta(t, n0*0.1*Clight, nuz.At(i, j, k, 0),
				n0*0.1*Clight*1.e-13)
		})
	}
}
