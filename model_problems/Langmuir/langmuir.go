package Langmuir

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/gofluid/InputParameters"
	"github.com/notargets/gofluid/fluid"
	"github.com/notargets/gofluid/mesh"
)

// Langmuir is the standing plasma oscillation model problem: a uniform
// fluid with a sinusoidal bulk momentum perturbation along Z, driven by
// the analytic electrostatic field of the linearized oscillation,
//
//	uz(z,t) = eps * c * cos(kz*z) * cos(wp*t)
//	Ez(z,t) = (m*eps*c*wp/e) * cos(kz*z) * sin(wp*t)
//
// The field solve is replaced by the analytic Ez so the fluid stages can
// be validated against linear theory in isolation.
type Langmuir struct {
	Title          string
	CFL, FinalTime float64
	MaxSteps       int
	Species        []*fluid.FluidContainer
	Layout         *mesh.Layout
	Geom           mesh.Geometry
	E, B, J        [3]*mesh.Field
	Rho            *mesh.Field
	DT, Kz, Wp     float64
	N0, Epsilon    float64
	EzAmp          float64
	diagFile       string
	diags          []*DiagRow
	plotOnce       sync.Once
	chart          *chart2d.Chart2D
	colorMap       *utils2.ColorMap
	ezOp           []*fluid.ResampleOperator
}

func NewLangmuir(fp *InputParameters.FluidParameters) (c *Langmuir) {
	var (
		axes   = fluid.NewAxisSet(fp.Dimensionality)
		layout = mesh.NewLayout(fp.Nx, fp.Ny, fp.Nz,
			fp.NPatches, [3]bool{true, true, true})
		probLo = [3]float64{fp.XMin, fp.YMin, fp.ZMin}
		probHi = [3]float64{fp.XMax, fp.YMax, fp.ZMax}
	)
	if len(fp.Species) == 0 {
		panic("input deck names no species")
	}
	geom := mesh.NewGeometry(layout, probLo, probHi)
	maxSteps := fp.MaxSteps
	if maxSteps == 0 {
		maxSteps = 1 << 30
	}
	c = &Langmuir{
		Title:     fp.Title,
		CFL:       fp.CFL,
		FinalTime: fp.FinalTime,
		MaxSteps:  maxSteps,
		Layout:    layout,
		Geom:      geom,
		DT:        fp.CFL * geom.Dx[2] / fluid.Clight,
		Kz:        2 * math.Pi * float64(fp.NOscZ) / (fp.ZMax - fp.ZMin),
		N0:        fp.Density,
		Epsilon:   fp.Epsilon,
		diagFile:  fp.DiagnosticsFile,
	}
	var (
		q0 = math.Abs(fp.Species[0].Charge) * fluid.Qe
		m0 = fp.Species[0].Mass * fluid.Me
	)
	c.Wp = math.Sqrt(c.N0 * q0 * q0 / (m0 * fluid.Ep0))
	c.EzAmp = m0 * c.Epsilon * fluid.Clight * c.Wp / q0

	for _, sp := range fp.Species {
		fc := fluid.NewFluidContainer(1, sp.Name,
			sp.Charge*fluid.Qe, sp.Mass*fluid.Me, axes,
			fluid.SpeciesFlags{
				DoNotPush:    sp.DoNotPush,
				DoNotGather:  sp.DoNotGather,
				DoNotDeposit: sp.DoNotDeposit,
			})
		fc.AllocateLevel(0, layout, geom)
		fc.InitData(0, WaveInjector{N0: c.N0, Epsilon: c.Epsilon, Kz: c.Kz})
		c.Species = append(c.Species, fc)
	}

	// The Yee staggers of the coupled electromagnetic mesh; only Ez is
	// nonzero in this problem but the full set exercises the gather
	for d := 0; d < 3; d++ {
		c.E[d] = mesh.NewField(fmt.Sprintf("E[%d]", d), layout, mesh.Nodal, 1, 1)
		c.B[d] = mesh.NewField(fmt.Sprintf("B[%d]", d), layout, mesh.Nodal, 1, 1)
	}
	c.E[2] = mesh.NewField("E[2]", layout, mesh.Stag{1, 1, 0}, 1, 1)
	c.J[0] = mesh.NewField("j[0]", layout, mesh.Stag{0, 1, 1}, 1, 0)
	c.J[1] = mesh.NewField("j[1]", layout, mesh.Stag{1, 0, 1}, 1, 0)
	c.J[2] = mesh.NewField("j[2]", layout, mesh.Stag{1, 1, 0}, 1, 0)
	c.Rho = mesh.NewField("rho", layout, mesh.Nodal, 1, 0)

	fmt.Printf("Relativistic Fluid Moments in %s\nSolving the Langmuir Wave\n",
		axes.Name())
	fmt.Printf("CFL = %8.4f, dt = %12.5e, wp = %12.5e, kz = %12.5e\n\n",
		c.CFL, c.DT, c.Wp, c.Kz)
	return
}

// WaveInjector is the initial condition: uniform density with a
// sinusoidal bulk momentum along Z, in units of c.
type WaveInjector struct {
	N0, Epsilon, Kz float64
}

func (w WaveInjector) Density(x, y, z float64) float64 { return w.N0 }

func (w WaveInjector) BulkMomentum(x, y, z float64) (ux, uy, uz float64) {
	uz = w.Epsilon * math.Cos(w.Kz*z)
	return
}

// DriveFields evaluates the analytic Ez at its cell-centered Z locations
// for time t and refreshes the halo.
func (c *Langmuir) DriveFields(t float64) {
	var (
		ez = c.E[2]
		st = math.Sin(c.Wp * t)
	)
	for ip := 0; ip < c.Layout.NumPatches(); ip++ {
		ep := ez.Patch(ip)
		mesh.ParallelFor(ep.Box, func(i, j, k int) {
			z := c.Geom.Coord(2, k, 0)
			ep.Set(i, j, k, 0, c.EzAmp*math.Cos(c.Kz*z)*st)
		})
	}
	ez.FillBoundary()
}

func (c *Langmuir) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		Time         float64
		logFrequency = 10
	)
	for tstep := 1; tstep <= c.MaxSteps; tstep++ {
		// The analytic field stands in for the Maxwell half-advance, so
		// it is sampled at the midpoint of the step
		c.DriveFields(Time + 0.5*c.DT)
		for d := 0; d < 3; d++ {
			c.J[d].SetVal(0)
		}
		for _, sp := range c.Species {
			sp.Evolve(0, c.DT, c.E, c.B, c.J, false)
		}
		Time += c.DT
		isDone := Time >= c.FinalTime || tstep == c.MaxSteps
		if tstep%logFrequency == 0 || isDone {
			c.Rho.SetVal(0)
			for _, sp := range c.Species {
				sp.DepositCharge(0, c.Rho)
			}
			row := c.Sample(tstep, Time)
			fmt.Printf("Time = %11.4e, step %5d, total N = %14.8e, max|jz| = %12.5e, theory = %12.5e\n",
				Time, tstep, row.TotalDensity, row.MaxJz, row.TheoryJz)
			c.Plot(showGraph, graphDelay)
		}
		if isDone {
			break
		}
	}
	if err := c.WriteDiagnostics(); err != nil {
		panic(err)
	}
}
