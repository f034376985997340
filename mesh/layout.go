package mesh

import (
	"fmt"

	"github.com/notargets/gofluid/utils"
)

// Layout is the spatial decomposition of one mesh level: a cell-indexed
// domain box tiled by disjoint patch cell boxes, plus the periodicity of
// the domain. Nodal fields built on the layout share boundary nodes
// between adjacent patches; OwnerMask resolves that overlap.
type Layout struct {
	Domain   Box // cell-centered domain box, origin at index 0
	Periodic [3]bool
	Boxes    []Box // per-patch cell boxes, disjoint tiling of Domain
}

// NewLayout builds a layout of nPatches boxes splitting the domain along
// z, using the same 1D range splitter that buckets parallel work.
func NewLayout(nx, ny, nz, nPatches int, periodic [3]bool) (l *Layout) {
	if nx < 1 || ny < 1 || nz < 1 {
		panic(fmt.Errorf("invalid domain dimensions [%d,%d,%d]", nx, ny, nz))
	}
	if nPatches < 1 || nPatches > nz {
		panic(fmt.Errorf("cannot split %d cells along z into %d patches", nz, nPatches))
	}
	l = &Layout{
		Domain:   NewBox([3]int{0, 0, 0}, [3]int{nx - 1, ny - 1, nz - 1}),
		Periodic: periodic,
		Boxes:    make([]Box, nPatches),
	}
	pm := utils.NewPartitionMap(nPatches, nz)
	for n := 0; n < nPatches; n++ {
		kMin, kMax := pm.GetBucketRange(n)
		l.Boxes[n] = NewBox([3]int{0, 0, kMin}, [3]int{nx - 1, ny - 1, kMax - 1})
	}
	return
}

func (l *Layout) NumPatches() int {
	return len(l.Boxes)
}

// Geometry carries the physical cell spacing and the domain origin.
type Geometry struct {
	Dx     [3]float64
	ProbLo [3]float64
}

func NewGeometry(l *Layout, probLo, probHi [3]float64) (g Geometry) {
	g.ProbLo = probLo
	for d := 0; d < 3; d++ {
		g.Dx[d] = (probHi[d] - probLo[d]) / float64(l.Domain.Size(d))
	}
	return
}

// Coord is the physical coordinate of index i in dimension d for the
// given stagger: node points sit on cell edges, cell points at centers.
func (g Geometry) Coord(d, i, stag int) float64 {
	if stag == 1 {
		return g.ProbLo[d] + float64(i)*g.Dx[d]
	}
	return g.ProbLo[d] + (float64(i)+0.5)*g.Dx[d]
}
