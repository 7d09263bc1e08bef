package sorting

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Algorithm names a sorting algorithm.
type Algorithm string

// Available algorithms.
const (
	Quick Algorithm = "quick"
	Heap  Algorithm = "heap"
)

// Algorithms lists every algorithm in menu order.
var Algorithms = []Algorithm{Quick, Heap}

// InsertionThreshold is the range length below which quicksort switches to
// insertion sort.
const InsertionThreshold = 16

// ErrUnknownAlgorithm is returned for an algorithm name outside [Algorithms].
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Valid reports whether a is one of the known algorithms.
func (a Algorithm) Valid() bool {
	return a == Quick || a == Heap
}

// Parse converts a name or a 1-based menu index ("1", "2") into an Algorithm.
func Parse(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "1", "quick", "quicksort":
		return Quick, nil
	case "2", "heap", "heapsort":
		return Heap, nil
	}
	return "", fmt.Errorf("%w: %q (must be one of: quick, heap)", ErrUnknownAlgorithm, name)
}

// Sort sorts s in ascending order using algorithm a.
func Sort[E constraints.Ordered](a Algorithm, s []E) error {
	switch a {
	case Quick:
		Quicksort(s)
	case Heap:
		Heapsort(s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, a)
	}
	return nil
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[E constraints.Ordered](s []E) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

// InsertOrdered inserts v into the ascending slice s, shifting larger
// elements one slot to the right, and returns the extended slice.
// Equal elements already present stay in front of v.
func InsertOrdered[E constraints.Ordered](s []E, v E) []E {
	var zero E
	s = append(s, zero)
	i := len(s) - 1
	for i > 0 && s[i-1] > v {
		s[i] = s[i-1]
		i--
	}
	s[i] = v
	return s
}
