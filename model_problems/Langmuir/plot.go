package Langmuir

import (
	"math"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/gofluid/fluid"
	"github.com/notargets/gofluid/mesh"
)

// Plot draws the Z profiles of the normalized drive field and deposited
// current along the line through the domain corner. Ez lives at cell
// centers in Z, so it is resampled to the nodes through the frozen
// stencil operator built on first use.
func (c *Langmuir) Plot(showGraph bool, graphDelay []time.Duration) {
	if !showGraph {
		return
	}
	var (
		zmin = float32(c.Geom.ProbLo[2])
		zmax = float32(c.Geom.ProbLo[2] + float64(c.Layout.Domain.Size(2))*c.Geom.Dx[2])
		j0   = math.Abs(c.Species[0].Charge) * c.N0 * c.Epsilon * fluid.Clight
	)
	c.plotOnce.Do(func() {
		c.chart = chart2d.NewChart2D(1920, 1280, zmin, zmax, -1.3, 1.3)
		c.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.Plot()
		for ip := 0; ip < c.Layout.NumPatches(); ip++ {
			var (
				ep     = c.E[2].Patch(ip)
				dstBox = c.Species[0].N[0].Patch(ip).Box
			)
			c.ezOp = append(c.ezOp,
				fluid.NewResampleOperator(ep, dstBox, mesh.Nodal))
		}
	})
	pSeries := func(name string, x, y []float64, color float32) {
		if err := c.chart.AddSeries(name, x, y,
			chart2d.NoGlyph, chart2d.Solid, c.colorMap.GetRGB(color)); err != nil {
			panic("unable to add graph series")
		}
	}
	var xEz, yEz, xJz, yJz []float64
	for ip := 0; ip < c.Layout.NumPatches(); ip++ {
		var (
			ro  = c.ezOp[ip]
			ez  = make([]float64, ro.Dst.NumPts())
			jp  = c.J[2].Patch(ip)
			ilo = ro.Dst.Lo[0]
			jlo = ro.Dst.Lo[1]
		)
		ro.Apply(c.E[2].Patch(ip), 0, ez)
		for k := ro.Dst.Lo[2]; k <= ro.Dst.Hi[2]; k++ {
			xEz = append(xEz, c.Geom.Coord(2, k, 1))
			yEz = append(yEz, ez[ro.Dst.FlatIndex(ilo, jlo, k)]/c.EzAmp)
		}
		for k := jp.Box.Lo[2]; k <= jp.Box.Hi[2]; k++ {
			xJz = append(xJz, c.Geom.Coord(2, k, 0))
			yJz = append(yJz, jp.At(ilo, jlo, k, 0)/j0)
		}
	}
	pSeries("Ez", xEz, yEz, -0.7)
	pSeries("Jz", xJz, yJz, 0.7)
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}
