package fluid

import "fmt"

// AxisSet is the dimensionality strategy: the set of spatial axes the
// advection and initialization kernels iterate. Reduced geometries (slab,
// 1-D) are the same kernels over fewer axes, selected once from
// configuration rather than branched per kernel.
type AxisSet struct {
	name string
	axes []int
}

var axisSets = map[string][]int{
	"3D": {0, 1, 2},
	"XZ": {0, 2},
	"Z":  {2},
}

func NewAxisSet(dimensionality string) (a AxisSet) {
	axes, ok := axisSets[dimensionality]
	if !ok {
		panic(fmt.Errorf("unknown dimensionality %q (want 3D, XZ or Z)",
			dimensionality))
	}
	a = AxisSet{name: dimensionality, axes: axes}
	return
}

func (a AxisSet) Name() string { return a.name }

func (a AxisSet) Axes() []int { return a.axes }

func (a AxisSet) Active(d int) bool {
	for _, ax := range a.axes {
		if ax == d {
			return true
		}
	}
	return false
}
