package source

import (
	"math/rand/v2"

	apperrors "github.com/matzehuels/seatsort/pkg/errors"
)

// Random returns n values drawn uniformly from [lo, hi].
//
// A zero seed draws a fresh seed, so two unseeded calls differ. Any other
// seed makes the output reproducible.
func Random(n, lo, hi int, seed uint64) ([]int, error) {
	if err := validateCount(n); err != nil {
		return nil, err
	}
	if lo > hi {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "random range [%d, %d] is empty", lo, hi)
	}
	if seed == 0 {
		seed = rand.Uint64()
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	// span wraps to zero only for the full int range.
	span := uint64(hi) - uint64(lo) + 1
	values := make([]int, n)
	for i := range values {
		draw := rng.Uint64()
		if span != 0 {
			draw = rng.Uint64N(span)
		}
		values[i] = lo + int(draw)
	}
	return values, nil
}
