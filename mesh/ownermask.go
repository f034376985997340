package mesh

// Mask is a per-patch boolean over the valid box of a field, marking the
// points this patch owns. Shared nodes between adjacent patches and
// periodic images of the same node are owned by exactly one patch, so a
// masked accumulation never double counts. Read-only to consumers.
type Mask struct {
	Field   *Field
	Patches [][]bool
}

func (m *Mask) At(ip, i, j, k int) bool {
	return m.Patches[ip][m.Field.Patches[ip].Box.FlatIndex(i, j, k)]
}

// OwnerMask derives the ownership mask for a field: a valid point is owned
// by patch ip when it is the canonical periodic image of itself and ip is
// the lowest-numbered patch containing it.
func OwnerMask(f *Field) (m *Mask) {
	var (
		l = f.Layout
	)
	m = &Mask{
		Field:   f,
		Patches: make([][]bool, f.Layout.NumPatches()),
	}
	for ip, p := range f.Patches {
		vals := make([]bool, p.Box.NumPts())
		p.Box.ForEach(func(i, j, k int) {
			g := [3]int{i, j, k}
			canonical := true
			for d := 0; d < 3; d++ {
				if l.Periodic[d] && wrapIndex(g[d], l.Domain.Size(d)) != g[d] {
					canonical = false
					break
				}
			}
			if canonical {
				owner := -1
				for iq, q := range f.Patches {
					if q.Box.Contains(g[0], g[1], g[2]) {
						owner = iq
						break
					}
				}
				vals[p.Box.FlatIndex(i, j, k)] = owner == ip
			}
		})
		m.Patches[ip] = vals
	}
	return
}
