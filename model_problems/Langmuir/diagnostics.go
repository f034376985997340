package Langmuir

import (
	"math"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gofluid/fluid"
	"github.com/notargets/gofluid/mesh"
)

// DiagRow is one time sample of the run diagnostics, written as CSV.
type DiagRow struct {
	Step         int     `csv:"step"`
	Time         float64 `csv:"time"`
	TotalDensity float64 `csv:"total_density"`
	TotalCharge  float64 `csv:"total_charge"`
	MaxJz        float64 `csv:"max_jz"`
	TheoryJz     float64 `csv:"theory_jz"`
}

// Sample reduces the current state to one diagnostics row. All
// reductions run over owned points only, so shared patch boundary nodes
// and periodic images count once.
func (c *Langmuir) Sample(tstep int, t float64) (row *DiagRow) {
	var (
		sp      = c.Species[0]
		n       = sp.N[0]
		nMask   = mesh.OwnerMask(n)
		jz      = c.J[2]
		jzMask  = mesh.OwnerMask(jz)
		rhoMask = mesh.OwnerMask(c.Rho)
		nVals   []float64
		rhoVals []float64
		jzVals  []float64
	)
	for ip := 0; ip < c.Layout.NumPatches(); ip++ {
		var (
			np = n.Patch(ip)
			rp = c.Rho.Patch(ip)
			jp = jz.Patch(ip)
		)
		np.Box.ForEach(func(i, j, k int) {
			if nMask.At(ip, i, j, k) {
				nVals = append(nVals, np.At(i, j, k, 0))
			}
		})
		rp.Box.ForEach(func(i, j, k int) {
			if rhoMask.At(ip, i, j, k) {
				rhoVals = append(rhoVals, rp.At(i, j, k, 0))
			}
		})
		jp.Box.ForEach(func(i, j, k int) {
			if jzMask.At(ip, i, j, k) {
				jzVals = append(jzVals, math.Abs(jp.At(i, j, k, 0)))
			}
		})
	}
	row = &DiagRow{
		Step:         tstep,
		Time:         t,
		TotalDensity: floats.Sum(nVals),
		TotalCharge:  floats.Sum(rhoVals),
		MaxJz:        floats.Max(jzVals),
		TheoryJz: math.Abs(c.Species[0].Charge) * c.N0 * c.Epsilon *
			fluid.Clight * math.Abs(math.Cos(c.Wp*t)),
	}
	c.diags = append(c.diags, row)
	return
}

// WriteDiagnostics dumps the accumulated rows to the configured CSV
// file; a run with no file configured writes nothing.
func (c *Langmuir) WriteDiagnostics() (err error) {
	if c.diagFile == "" {
		return
	}
	var f *os.File
	if f, err = os.Create(c.diagFile); err != nil {
		return
	}
	defer f.Close()
	err = gocsv.MarshalFile(&c.diags, f)
	return
}
