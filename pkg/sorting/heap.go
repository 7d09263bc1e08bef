package sorting

import "golang.org/x/exp/constraints"

// Heapsort sorts s in place using a max-heap.
func Heapsort[E constraints.Ordered](s []E) {
	n := len(s)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, n, i)
	}
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, end, 0)
	}
}

// siftDown restores the heap property for the subtree rooted at i within
// the first n elements.
func siftDown[E constraints.Ordered](s []E, n, i int) {
	for {
		largest := i
		l, r := 2*i+1, 2*i+2
		if l < n && s[l] > s[largest] {
			largest = l
		}
		if r < n && s[r] > s[largest] {
			largest = r
		}
		if largest == i {
			return
		}
		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}
