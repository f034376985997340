package utils

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK is a thin wrapper over the dictionary-of-keys sparse matrix, used to
// assemble stencil operators entry by entry before freezing them to CSR for
// repeated application.
type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{sparse.NewDOK(nr, nc)}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

func (m DOK) Set(i, j int, v float64) {
	m.M.Set(i, j, v)
}

// ToCSR freezes the assembled entries into compressed sparse row form,
// suitable for repeated matrix-vector products.
func (m DOK) ToCSR() *sparse.CSR {
	return m.M.ToCSR()
}
