package sorting

import "golang.org/x/exp/constraints"

// Quicksort sorts s in place. See the package documentation for the
// pivot and recursion policy.
func Quicksort[E constraints.Ordered](s []E) {
	if len(s) > 1 {
		quicksort(s, 0, len(s)-1)
	}
}

// quicksort sorts the closed range s[l..r].
func quicksort[E constraints.Ordered](s []E, l, r int) {
	for l < r {
		if r-l < InsertionThreshold {
			insertionSort(s, l, r)
			return
		}

		pivot := medianOfThree(s, l, r)

		// s[l] <= pivot and s[r] >= pivot act as sentinels for the scans.
		i, j := l, r-1
		for {
			for i++; s[i] < pivot; i++ {
			}
			for j--; s[j] > pivot; j-- {
			}
			if i >= j {
				break
			}
			s[i], s[j] = s[j], s[i]
		}
		s[i], s[r-1] = s[r-1], s[i]

		if i-l < r-i {
			quicksort(s, l, i-1)
			l = i + 1
		} else {
			quicksort(s, i+1, r)
			r = i - 1
		}
	}
}

// medianOfThree orders s[l], s[m], s[r], parks the median at r-1 and
// returns it.
func medianOfThree[E constraints.Ordered](s []E, l, r int) E {
	m := l + (r-l)/2
	if s[l] > s[m] {
		s[l], s[m] = s[m], s[l]
	}
	if s[l] > s[r] {
		s[l], s[r] = s[r], s[l]
	}
	if s[m] > s[r] {
		s[m], s[r] = s[r], s[m]
	}
	s[m], s[r-1] = s[r-1], s[m]
	return s[r-1]
}

// insertionSort sorts the closed range s[l..r].
func insertionSort[E constraints.Ordered](s []E, l, r int) {
	for i := l + 1; i <= r; i++ {
		key := s[i]
		j := i - 1
		for j >= l && s[j] > key {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}
