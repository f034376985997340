package mesh

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// FillBoundary is the synchronous ghost exchange: every ghost point of
// every patch is overwritten with the value held by the patch owning that
// point, honoring periodic wrap. Stages that wrote ghost-adjacent data
// must call it before any stage that reads ghosts; it returns only once
// all patches are filled, so no partial-result visibility exists.
//
// The exchange runs over the in-process patch set; a distributed
// implementation would sit behind this same call.
func (f *Field) FillBoundary() {
	var (
		l      = f.Layout
		domain = l.Domain.Convert(f.Stag)
	)
	for _, p := range f.Patches {
		p.Grown.ForEach(func(i, j, k int) {
			if p.Box.Contains(i, j, k) {
				return
			}
			g := [3]int{i, j, k}
			for d := 0; d < 3; d++ {
				if l.Periodic[d] {
					// period is the cell count: the upper nodal plane is
					// the image of the lower one
					g[d] = wrapIndex(g[d], l.Domain.Size(d))
				} else if g[d] < domain.Lo[d] || g[d] > domain.Hi[d] {
					return // physical boundary, not filled here
				}
			}
			for _, q := range f.Patches {
				if q.Box.Contains(g[0], g[1], g[2]) {
					for n := 0; n < f.Ncomp; n++ {
						p.Set(i, j, k, n, q.At(g[0], g[1], g[2], n))
					}
					return
				}
			}
		})
	}
}
