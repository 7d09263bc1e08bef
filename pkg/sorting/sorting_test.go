package sorting

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
	}{
		{"quick", Quick},
		{"QuickSort", Quick},
		{"1", Quick},
		{"heap", Heap},
		{"2", Heap},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoErrorf(t, err, "Parse(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := Parse("bubble")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestSortUnknownAlgorithm(t *testing.T) {
	s := []int{3, 1, 2}
	err := Sort(Algorithm("bubble"), s)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Equal(t, []int{3, 1, 2}, s, "slice must be untouched on error")
}

// inputs covers the shapes that stress pivot selection and heap building.
func inputs(rng *rand.Rand) map[string][]int {
	shapes := map[string][]int{
		"empty":      {},
		"single":     {42},
		"pair":       {2, 1},
		"threshold":  make([]int, InsertionThreshold),
		"above":      make([]int, InsertionThreshold+1),
		"sorted":     make([]int, 200),
		"reversed":   make([]int, 200),
		"all equal":  make([]int, 100),
		"few values": make([]int, 500),
		"random":     make([]int, 1024),
		"negatives":  {-5, 3, -1, 0, -5, 7, -100, 2, 2, -1, 9, -8, 4, 4, 1, -3, 0, 6},
	}
	for i := range shapes["threshold"] {
		shapes["threshold"][i] = rng.IntN(50)
	}
	for i := range shapes["above"] {
		shapes["above"][i] = rng.IntN(50)
	}
	for i := range shapes["sorted"] {
		shapes["sorted"][i] = i
		shapes["reversed"][i] = 200 - i
	}
	for i := range shapes["all equal"] {
		shapes["all equal"][i] = 7
	}
	for i := range shapes["few values"] {
		shapes["few values"][i] = rng.IntN(3)
	}
	for i := range shapes["random"] {
		shapes["random"][i] = rng.IntN(20001) - 10000
	}
	return shapes
}

func TestSortAlgorithms(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, alg := range Algorithms {
		for name, in := range inputs(rng) {
			t.Run(string(alg)+"/"+name, func(t *testing.T) {
				got := slices.Clone(in)
				require.NoError(t, Sort(alg, got))

				want := slices.Clone(in)
				slices.Sort(want)
				assert.Equal(t, want, got)
				assert.True(t, IsSorted(got))
			})
		}
	}
}

func TestSortIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, alg := range Algorithms {
		s := make([]int, 300)
		for i := range s {
			s[i] = rng.IntN(100)
		}
		require.NoError(t, Sort(alg, s))
		once := slices.Clone(s)
		require.NoError(t, Sort(alg, s))
		assert.Equal(t, once, s, "second %s sort changed the sequence", alg)
	}
}

func TestSortRandomProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for round := 0; round < 300; round++ {
		n := rng.IntN(400)
		in := make([]int, n)
		for i := range in {
			in[i] = rng.IntN(2*n+1) - n
		}
		want := slices.Clone(in)
		slices.Sort(want)

		q := slices.Clone(in)
		Quicksort(q)
		require.Equal(t, want, q, "quicksort round %d", round)

		h := slices.Clone(in)
		Heapsort(h)
		require.Equal(t, want, h, "heapsort round %d", round)
	}
}

func TestSortGeneric(t *testing.T) {
	u := []uint16{9, 3, 65535, 0, 3}
	Quicksort(u)
	assert.Equal(t, []uint16{0, 3, 3, 9, 65535}, u)

	f := []float64{2.5, -1, 0}
	Heapsort(f)
	assert.Equal(t, []float64{-1, 0, 2.5}, f)
}

func TestMedianOfThree(t *testing.T) {
	s := []int{9, 0, 0, 5, 0, 0, 1}
	pivot := medianOfThree(s, 0, len(s)-1)

	assert.Equal(t, 5, pivot)
	assert.Equal(t, 1, s[0])
	assert.Equal(t, 5, s[len(s)-2])
	assert.Equal(t, 9, s[len(s)-1])
}

func TestInsertOrdered(t *testing.T) {
	tests := []struct {
		name string
		s    []int
		v    int
		want []int
	}{
		{"middle", []int{2, 6, 8}, 4, []int{2, 4, 6, 8}},
		{"front", []int{2, 6, 8}, 0, []int{0, 2, 6, 8}},
		{"back", []int{2, 6, 8}, 10, []int{2, 6, 8, 10}},
		{"empty", nil, -3, []int{-3}},
		{"duplicate", []int{1, 3, 3, 5}, 3, []int{1, 3, 3, 3, 5}},
		{"negative", []int{-9, -5, -1}, -7, []int{-9, -7, -5, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InsertOrdered(slices.Clone(tt.s), tt.v)
			assert.Equal(t, tt.want, got)
		})
	}
}
