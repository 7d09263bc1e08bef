package classify

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOdd(t *testing.T) {
	tests := []struct {
		v    int
		want bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{-1, true},
		{-2, false},
		{-7, true},
		{1<<30 + 1, true},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, IsOdd(tt.v), "IsOdd(%d)", tt.v)
	}

	assert.True(t, IsOdd(uint8(255)))
	assert.True(t, IsOdd(int8(-128+1)))
	assert.False(t, IsOdd(int8(-128)))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"stable", Stable},
		{"1", Stable},
		{"Partition", Partition},
		{"in-place", Partition},
		{"2", Partition},
		{"two-pointer", TwoPointer},
		{"two_pointer", TwoPointer},
		{" 3 ", TwoPointer},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoErrorf(t, err, "Parse(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := Parse("bogo")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestApplyUnknownStrategy(t *testing.T) {
	_, _, err := Apply(Strategy("merge"), []int{1, 2})
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.False(t, Strategy("merge").Valid())
}

func TestStableSplitPreservesOrder(t *testing.T) {
	raw := []int{9, 4, -3, 0, 7, 8, 1, -6, 5, 2}
	odd, even := StableSplit(raw)

	assert.Equal(t, []int{9, -3, 7, 1, 5}, odd)
	assert.Equal(t, []int{4, 0, 8, -6, 2}, even)
}

func TestPartitionSplitIsContiguous(t *testing.T) {
	raw := []int{2, 4, 1, 3}
	odd, even := PartitionSplit(raw)

	// Lomuto swaps reorder the even group.
	assert.Equal(t, []int{1, 3}, odd)
	assert.Equal(t, []int{2, 4}, even)
	assert.Equal(t, []int{2, 4, 1, 3}, raw, "input must not be modified")

	raw = []int{1, 2, 3, 4, 5, 6}
	odd, even = PartitionSplit(raw)
	assert.Equal(t, []int{1, 3, 5}, odd)
	assert.Equal(t, []int{4, 2, 6}, even)
}

func TestTwoPointerSplit(t *testing.T) {
	raw := []int{1, 2, 3, 4, 5, 6}
	odd, even := TwoPointerSplit(raw)
	assert.Equal(t, []int{1, 5, 3}, odd)
	assert.Equal(t, []int{4, 2, 6}, even)

	// Already classified input is left untouched.
	raw = []int{7, 9, 11, 2, 4}
	odd, even = TwoPointerSplit(raw)
	assert.Equal(t, []int{7, 9, 11}, odd)
	assert.Equal(t, []int{2, 4}, even)
}

func TestSplitEdgeCases(t *testing.T) {
	for _, s := range Strategies {
		t.Run(string(s), func(t *testing.T) {
			odd, even, err := Apply(s, []int(nil))
			require.NoError(t, err)
			assert.Empty(t, odd)
			assert.Empty(t, even)

			odd, even, err = Apply(s, []int{3, 5, -1})
			require.NoError(t, err)
			assert.Len(t, odd, 3)
			assert.Empty(t, even)

			odd, even, err = Apply(s, []int{0, -2, 4})
			require.NoError(t, err)
			assert.Empty(t, odd)
			assert.Len(t, even, 3)
		})
	}
}

func TestPartitionsDoNotAlias(t *testing.T) {
	for _, s := range Strategies {
		odd, even, err := Apply(s, []int{1, 2, 3, 4})
		require.NoError(t, err)

		odd = append(odd, 99)
		assert.Equal(t, []int{1, 3, 99}, sortedCopy(odd), "strategy %s", s)
		assert.Equal(t, []int{2, 4}, sortedCopy(even), "append to odd must not clobber even (%s)", s)
	}
}

func TestApplyProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for round := 0; round < 200; round++ {
		n := 1 + rng.IntN(300)
		raw := make([]int, n)
		for i := range raw {
			raw[i] = rng.IntN(2001) - 1000
		}

		for _, s := range Strategies {
			odd, even, err := Apply(s, raw)
			require.NoError(t, err)

			require.Equal(t, len(raw), len(odd)+len(even), "strategy %s", s)
			for _, v := range odd {
				require.Truef(t, IsOdd(v), "%s put even %d in odd partition", s, v)
			}
			for _, v := range even {
				require.Falsef(t, IsOdd(v), "%s put odd %d in even partition", s, v)
			}

			union := append(slices.Clone(odd), even...)
			require.Equal(t, sortedCopy(raw), sortedCopy(union), "multiset mismatch for %s", s)

			if s.StableOrder() {
				wantOdd, wantEven := filter(raw, true), filter(raw, false)
				require.Equal(t, wantOdd, odd)
				require.Equal(t, wantEven, even)
			}
		}
	}
}

func sortedCopy(s []int) []int {
	c := slices.Clone(s)
	slices.Sort(c)
	return c
}

func filter(s []int, odd bool) []int {
	out := []int{}
	for _, v := range s {
		if IsOdd(v) == odd {
			out = append(out, v)
		}
	}
	return out
}
