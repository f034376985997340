package fluid

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofluid/mesh"
	"github.com/notargets/gofluid/utils"
)

// stencilOffsets is the ratio-1 resampling rule between grid locations in
// one dimension: same stagger reads in place, a node-centered source seen
// from a cell center averages the two bracketing nodes, and a
// cell-centered source seen from a node averages the two bracketing cells.
func stencilOffsets(srcStag, dstStag int) []int {
	switch {
	case srcStag == dstStag:
		return []int{0}
	case srcStag == 1: // nodal source, cell-centered destination
		return []int{0, 1}
	default: // cell-centered source, nodal destination
		return []int{-1, 0}
	}
}

// Interp resamples component comp of the source patch onto the dstStag
// grid location at index (i,j,k), same-resolution only. Pure function of
// the source stencil; the source must hold valid data at the stencil
// points (one extra layer when the stagger differs on the low side).
func Interp(src *mesh.Patch, dstStag mesh.Stag, i, j, k, comp int) (v float64) {
	var (
		oi = stencilOffsets(src.Stag[0], dstStag[0])
		oj = stencilOffsets(src.Stag[1], dstStag[1])
		ok = stencilOffsets(src.Stag[2], dstStag[2])
	)
	for _, dk := range ok {
		for _, dj := range oj {
			for _, di := range oi {
				v += src.At(i+di, j+dj, k+dk, comp)
			}
		}
	}
	v /= float64(len(oi) * len(oj) * len(ok))
	return
}

// ResampleOperator is the same ratio-1 stencil frozen into a sparse
// matrix mapping a source patch's grown box onto a destination box. The
// stencil never changes during a run, so assembling it once and applying
// it as a matrix-vector product serves consumers that resample the same
// pair of locations every step.
type ResampleOperator struct {
	R       *sparse.CSR
	Src     mesh.Box // source grown box (column space)
	Dst     mesh.Box // destination box (row space)
	DstStag mesh.Stag
}

func NewResampleOperator(src *mesh.Patch, dstBox mesh.Box, dstStag mesh.Stag) (ro *ResampleOperator) {
	var (
		rows = dstBox.NumPts()
		cols = src.Grown.NumPts()
		oi   = stencilOffsets(src.Stag[0], dstStag[0])
		oj   = stencilOffsets(src.Stag[1], dstStag[1])
		ok   = stencilOffsets(src.Stag[2], dstStag[2])
		w    = 1.0 / float64(len(oi)*len(oj)*len(ok))
		dok  = utils.NewDOK(rows, cols)
	)
	dstBox.ForEach(func(i, j, k int) {
		row := dstBox.FlatIndex(i, j, k)
		for _, dk := range ok {
			for _, dj := range oj {
				for _, di := range oi {
					dok.Set(row, src.Grown.FlatIndex(i+di, j+dj, k+dk), w)
				}
			}
		}
	})
	ro = &ResampleOperator{
		R:       dok.ToCSR(),
		Src:     src.Grown,
		Dst:     dstBox,
		DstStag: dstStag,
	}
	return
}

// Apply resamples component comp of src into dst, which must have
// Dst.NumPts() elements in the destination box's canonical ordering.
func (ro *ResampleOperator) Apply(src *mesh.Patch, comp int, dst []float64) {
	var (
		x = mat.NewVecDense(ro.Src.NumPts(), src.CompData(comp))
		y = mat.NewVecDense(ro.Dst.NumPts(), dst)
	)
	y.MulVec(ro.R, x)
}
