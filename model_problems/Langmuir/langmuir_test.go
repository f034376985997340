package Langmuir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gofluid/InputParameters"
)

func testDeck() *InputParameters.FluidParameters {
	return &InputParameters.FluidParameters{
		Title:          "Langmuir Wave",
		Dimensionality: "Z",
		Nx:             1, Ny: 1, Nz: 64,
		XMin: -20.e-6, XMax: 20.e-6,
		YMin: -20.e-6, YMax: 20.e-6,
		ZMin: -20.e-6, ZMax: 20.e-6,
		NPatches:  2,
		CFL:       0.4,
		FinalTime: 1.0,
		MaxSteps:  20,
		Density:   4.e24,
		Epsilon:   0.01,
		NOscZ:     2,
		Species: []InputParameters.SpeciesParameters{
			{Name: "electrons", Charge: -1, Mass: 1},
		},
	}
}

func TestNewLangmuir(t *testing.T) {
	c := NewLangmuir(testDeck())
	// Step size and wave numbers from the deck
	{
		dz := 40.e-6 / 64
		assert.InDelta(t, 0.4*dz/2.99792458e8, c.DT, c.DT*1.e-12)
		assert.InDelta(t, 2*math.Pi*2/40.e-6, c.Kz, c.Kz*1.e-12)
		// electron plasma frequency for 4e24 1/m^3 is about 1.128e14 rad/s
		assert.InDelta(t, 1.128e14, c.Wp, 0.01e14)
	}
	// Initial condition: uniform density, momentum wave along z
	{
		var (
			np  = c.Species[0].N[0].Patch(0)
			nuz = c.Species[0].NU[0][2].Patch(0)
			n0  = 4.e24
		)
		np.Box.ForEach(func(i, j, k int) {
			assert.InDelta(t, n0, np.At(i, j, k, 0), n0*1.e-13)
		})
		// amplitude of the momentum wave is n0*eps*c
		var maxNUz float64
		nuz.Box.ForEach(func(i, j, k int) {
			maxNUz = math.Max(maxNUz, math.Abs(nuz.At(i, j, k, 0)))
		})
		assert.InDelta(t, n0*0.01*2.99792458e8, maxNUz, n0*0.01*2.99792458e8*1.e-2)
	}
	// A deck without species is rejected
	{
		fp := testDeck()
		fp.Species = nil
		assert.Panics(t, func() { NewLangmuir(fp) })
	}
}

func TestLangmuirRun(t *testing.T) {
	c := NewLangmuir(testDeck())
	c.Run(false)
	// Diagnostics sampled on the log cadence
	assert.True(t, len(c.diags) >= 2)
	last := c.diags[len(c.diags)-1]
	// Mass conservation: total owned density stays at n0 per node
	want := 4.e24 * 64
	assert.InDelta(t, want, last.TotalDensity, want*1.e-6)
	// The deposited current is alive and bounded by the linear scale
	// j0 = |q|*n0*eps*c of the initial wave
	j0 := 1.602176634e-19 * 4.e24 * 0.01 * 2.99792458e8
	assert.True(t, last.MaxJz > 0)
	assert.True(t, last.MaxJz < 2*j0)
}
