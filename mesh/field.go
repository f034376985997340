package mesh

import "fmt"

// Patch holds the data of one field patch: the staggered valid box plus a
// ghost halo, stored as a flat component-major slice.
type Patch struct {
	Box   Box // valid (staggered) box
	Grown Box // valid box grown by the ghost width
	Stag  Stag
	Ncomp int
	Data  []float64
}

func (p *Patch) index(i, j, k, n int) int {
	return n*p.Grown.NumPts() + p.Grown.FlatIndex(i, j, k)
}

func (p *Patch) At(i, j, k, n int) float64 {
	return p.Data[p.index(i, j, k, n)]
}

func (p *Patch) Set(i, j, k, n int, v float64) {
	p.Data[p.index(i, j, k, n)] = v
}

func (p *Patch) Add(i, j, k, n int, v float64) {
	p.Data[p.index(i, j, k, n)] += v
}

// CompData is the contiguous slice holding component n over the grown box.
func (p *Patch) CompData(n int) []float64 {
	np := p.Grown.NumPts()
	return p.Data[n*np : (n+1)*np]
}

// Field is a mesh-level quantity: one Patch per layout box, every patch at
// the same stagger, component count and ghost width. The human-readable
// name tags allocation and fatal-config panics.
type Field struct {
	Name    string
	Stag    Stag
	Ncomp   int
	Ng      int
	Layout  *Layout
	Patches []*Patch
}

func NewField(name string, l *Layout, stag Stag, ncomp, ng int) (f *Field) {
	f = &Field{
		Name:    name,
		Stag:    stag,
		Ncomp:   ncomp,
		Ng:      ng,
		Layout:  l,
		Patches: make([]*Patch, l.NumPatches()),
	}
	for ip, cb := range l.Boxes {
		valid := cb.Convert(stag)
		grown := valid.Grow(ng)
		f.Patches[ip] = &Patch{
			Box:   valid,
			Grown: grown,
			Stag:  stag,
			Ncomp: ncomp,
			Data:  make([]float64, ncomp*grown.NumPts()),
		}
	}
	return
}

func (f *Field) Patch(ip int) *Patch {
	return f.Patches[ip]
}

func (f *Field) SetVal(v float64) {
	for _, p := range f.Patches {
		for i := range p.Data {
			p.Data[i] = v
		}
	}
}

// SameLayoutAs panics unless the two fields share layout and stagger; this
// is the one-time construction check, never called from cell kernels.
func (f *Field) SameLayoutAs(o *Field) {
	if f.Layout != o.Layout || f.Stag != o.Stag {
		panic(fmt.Errorf("field %s is not layout-compatible with field %s",
			f.Name, o.Name))
	}
}
