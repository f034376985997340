package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	// Even split
	{
		pm := NewPartitionMap(4, 100)
		var total int
		for bn := 0; bn < 4; bn++ {
			kMin, kMax := pm.GetBucketRange(bn)
			assert.Equal(t, 25, kMax-kMin)
			total += kMax - kMin
		}
		assert.Equal(t, 100, total)
	}
	// Remainder is spread one per bucket from the front
	{
		pm := NewPartitionMap(4, 102)
		var (
			total int
			prev  int
		)
		for bn := 0; bn < 4; bn++ {
			kMin, kMax := pm.GetBucketRange(bn)
			assert.Equal(t, prev, kMin) // contiguous coverage
			assert.True(t, kMax-kMin == 25 || kMax-kMin == 26)
			prev = kMax
			total += pm.GetBucketDimension(bn)
		}
		assert.Equal(t, 102, total)
		assert.Equal(t, 102, prev)
	}
	// More buckets than indices
	{
		pm := NewPartitionMap(8, 3)
		var total int
		for bn := 0; bn < 8; bn++ {
			total += pm.GetBucketDimension(bn)
		}
		assert.Equal(t, 3, total)
	}
}

func TestHeapSortByKey(t *testing.T) {
	// Index permutation sorts the keys
	{
		keys := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}
		index := make([]int, len(keys))
		for i := range index {
			index[i] = i
		}
		SortIndexByKey(index, keys)
		for i := 1; i < len(index); i++ {
			assert.True(t, keys[index[i-1]] <= keys[index[i]])
		}
	}
	// Agrees with the library sort on a larger random-ish input
	{
		var keys []int
		for i := 0; i < 257; i++ {
			keys = append(keys, (i*7919)%263)
		}
		index := make([]int, len(keys))
		want := make([]int, len(keys))
		for i := range index {
			index[i] = i
			want[i] = keys[i]
		}
		SortIndexByKey(index, keys)
		sort.Ints(want)
		for i := range index {
			assert.Equal(t, want[i], keys[index[i]])
		}
	}
	// Subrange sort leaves the rest untouched
	{
		keys := []int{9, 8, 7, 6, 5}
		index := []int{0, 1, 2, 3, 4}
		HeapSortByKey(index, keys, 1, 3)
		assert.Equal(t, 0, index[0])
		assert.Equal(t, 4, index[4])
		assert.True(t, keys[index[1]] <= keys[index[2]])
		assert.True(t, keys[index[2]] <= keys[index[3]])
	}
}
