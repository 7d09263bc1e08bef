package classify

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Strategy names a classification algorithm.
type Strategy string

// Available strategies.
const (
	Stable     Strategy = "stable"
	Partition  Strategy = "partition"
	TwoPointer Strategy = "two-pointer"
)

// Strategies lists every strategy in menu order.
var Strategies = []Strategy{Stable, Partition, TwoPointer}

// ErrUnknownStrategy is returned for a strategy name outside [Strategies].
var ErrUnknownStrategy = errors.New("classify: unknown strategy")

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool {
	switch s {
	case Stable, Partition, TwoPointer:
		return true
	}
	return false
}

// StableOrder reports whether the strategy preserves input order inside
// each partition.
func (s Strategy) StableOrder() bool { return s == Stable }

// Parse converts a name or a 1-based menu index ("1", "2", "3") into a Strategy.
// Names are case-insensitive; "twopointer" and "two_pointer" are accepted.
func Parse(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "1", "stable":
		return Stable, nil
	case "2", "partition", "inplace", "in-place":
		return Partition, nil
	case "3", "two-pointer", "twopointer", "two_pointer":
		return TwoPointer, nil
	}
	return "", fmt.Errorf("%w: %q (must be one of: stable, partition, two-pointer)", ErrUnknownStrategy, name)
}

// IsOdd reports whether v is odd by testing its lowest bit.
func IsOdd[E constraints.Integer](v E) bool {
	return v&1 != 0
}

// Apply runs strategy s over raw and returns the odd and even partitions.
// raw is never modified. The returned slices do not share memory with raw.
func Apply[E constraints.Integer](s Strategy, raw []E) (odd, even []E, err error) {
	switch s {
	case Stable:
		odd, even = StableSplit(raw)
	case Partition:
		odd, even = PartitionSplit(raw)
	case TwoPointer:
		odd, even = TwoPointerSplit(raw)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
	return odd, even, nil
}

// StableSplit collects odd values, then even values, each in input order.
func StableSplit[E constraints.Integer](raw []E) (odd, even []E) {
	odd = make([]E, 0, len(raw))
	for _, v := range raw {
		if IsOdd(v) {
			odd = append(odd, v)
		}
	}
	even = make([]E, 0, len(raw)-len(odd))
	for _, v := range raw {
		if !IsOdd(v) {
			even = append(even, v)
		}
	}
	return odd, even
}

// PartitionSplit partitions a working copy of raw in place around a moving
// boundary: every odd value found is swapped into the boundary slot.
func PartitionSplit[E constraints.Integer](raw []E) (odd, even []E) {
	work := make([]E, len(raw))
	copy(work, raw)

	boundary := 0
	for i := range work {
		if IsOdd(work[i]) {
			work[i], work[boundary] = work[boundary], work[i]
			boundary++
		}
	}
	return work[:boundary:boundary], work[boundary:]
}

// TwoPointerSplit partitions a working copy of raw with two converging
// cursors. Values already on the correct side are never moved.
func TwoPointerSplit[E constraints.Integer](raw []E) (odd, even []E) {
	work := make([]E, len(raw))
	copy(work, raw)

	l, r := 0, len(work)-1
	for l <= r {
		for l <= r && IsOdd(work[l]) {
			l++
		}
		for l <= r && !IsOdd(work[r]) {
			r--
		}
		if l < r {
			work[l], work[r] = work[r], work[l]
		}
	}
	return work[:l:l], work[l:]
}
