package mesh

// Stag describes the grid location of a field per dimension:
// 1 = node-centered, 0 = cell-centered. A cell box converted with a
// nodal stagger gains one point on its upper side.
type Stag [3]int

var (
	Nodal      = Stag{1, 1, 1}
	CellCenter = Stag{0, 0, 0}
)

// FaceStag is the location of a face-centered quantity normal to axis:
// cell-centered along the axis, node-centered in the transverse dimensions.
func FaceStag(axis int) (s Stag) {
	s = Nodal
	s[axis] = 0
	return
}

// Box is an index-space box with inclusive bounds.
type Box struct {
	Lo, Hi [3]int
}

func NewBox(lo, hi [3]int) Box {
	return Box{Lo: lo, Hi: hi}
}

func (b Box) Contains(i, j, k int) bool {
	return i >= b.Lo[0] && i <= b.Hi[0] &&
		j >= b.Lo[1] && j <= b.Hi[1] &&
		k >= b.Lo[2] && k <= b.Hi[2]
}

func (b Box) Size(d int) int {
	return b.Hi[d] - b.Lo[d] + 1
}

func (b Box) NumPts() int {
	return b.Size(0) * b.Size(1) * b.Size(2)
}

func (b Box) Grow(n int) (g Box) {
	g = b
	for d := 0; d < 3; d++ {
		g.Lo[d] -= n
		g.Hi[d] += n
	}
	return
}

// Convert reinterprets a cell box as the index box of a staggered field:
// nodal dimensions gain the shared upper point.
func (b Box) Convert(s Stag) (c Box) {
	c = b
	for d := 0; d < 3; d++ {
		c.Hi[d] += s[d]
	}
	return
}

// FlatIndex is the position of (i,j,k) in the box's canonical ordering,
// first dimension fastest. Points must lie inside the box.
func (b Box) FlatIndex(i, j, k int) int {
	var (
		nx = b.Size(0)
		ny = b.Size(1)
	)
	return (i - b.Lo[0]) + nx*((j-b.Lo[1])+ny*(k-b.Lo[2]))
}

// ForEach visits every point of the box in canonical order.
func (b Box) ForEach(f func(i, j, k int)) {
	for k := b.Lo[2]; k <= b.Hi[2]; k++ {
		for j := b.Lo[1]; j <= b.Hi[1]; j++ {
			for i := b.Lo[0]; i <= b.Hi[0]; i++ {
				f(i, j, k)
			}
		}
	}
}
