package utils

import "cmp"

// HeapSortByKey sorts index[start:start+n] in place so that
// keys[index[start+i]] is ascending. It achieves the same as a
// sort.Slice with a key-lookup less function, but is allocation free and
// uses no global state, so disjoint ranges of the same index array can be
// sorted concurrently from a parallel-for.
func HeapSortByKey[K cmp.Ordered](index []int, keys []K, start, n int) {
	// sort index into a max heap structure
	for i := 1; i < n; i++ {
		j := i
		// move child through heap if it is bigger than its parent
		for j > 0 && keys[index[j+start]] > keys[index[(j-1)/2+start]] {
			index[j+start], index[(j-1)/2+start] = index[(j-1)/2+start], index[j+start]
			j = (j - 1) / 2
		}
	}
	for i := n - 1; i > 0; i-- {
		// swap value of first (now the largest value) to the new end point
		index[start], index[i+start] = index[i+start], index[start]

		// remake the max heap
		j := 0
		for j < i {
			child := 2*j + 1
			// if left child is smaller than right child, take the right child
			if child+1 < i && keys[index[child+start]] < keys[index[child+1+start]] {
				child++
			}
			if child < i && keys[index[j+start]] < keys[index[child+start]] {
				index[j+start], index[child+start] = index[child+start], index[j+start]
			}
			j = child
		}
	}
}

// SortIndexByKey sorts the full index array by its key array.
func SortIndexByKey[K cmp.Ordered](index []int, keys []K) {
	HeapSortByKey(index, keys, 0, len(index))
}
