package mesh

import (
	"runtime"
	"sync"

	"github.com/notargets/gofluid/utils"
)

// ParallelFor applies kernel to every point of the box, partitioned over
// goroutine buckets. Kernels must be pure functions of their local stencil
// with no cross-iteration mutable state; under that contract the same
// kernels are valid on a serial, threaded, or offloaded backend.
func ParallelFor(b Box, kernel func(i, j, k int)) {
	var (
		nx   = b.Size(0)
		ny   = b.Size(1)
		nPts = b.NumPts()
	)
	if nPts <= 0 {
		return
	}
	np := runtime.NumCPU()
	if np > nPts {
		np = nPts
	}
	var (
		pm = utils.NewPartitionMap(np, nPts)
		wg = sync.WaitGroup{}
	)
	for n := 0; n < np; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			pMin, pMax := pm.GetBucketRange(n)
			for p := pMin; p < pMax; p++ {
				i := b.Lo[0] + p%nx
				j := b.Lo[1] + (p/nx)%ny
				k := b.Lo[2] + p/(nx*ny)
				kernel(i, j, k)
			}
		}(n)
	}
	wg.Wait()
}
