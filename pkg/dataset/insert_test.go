package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/seatsort/pkg/classify"
	apperrors "github.com/matzehuels/seatsort/pkg/errors"
	"github.com/matzehuels/seatsort/pkg/sorting"
)

func TestInsertAtCapacity(t *testing.T) {
	d, err := New(seq(0, MaxSize)...)
	require.NoError(t, err)
	before := d.Raw()

	err = d.Insert(5)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeCapacityExceeded))
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, before, d.Raw(), "raw sequence must be unchanged")
}

func TestInsertOrderedAfterClassification(t *testing.T) {
	d, _ := New(1, 2, 6, 8)
	require.NoError(t, d.SetPartitions([]int{1}, []int{2, 6, 8}))

	require.NoError(t, d.Insert(4))

	assert.Equal(t, []int{2, 4, 6, 8}, d.Even())
	assert.Equal(t, []int{1}, d.Odd(), "odd partition must not be touched")
	assert.Equal(t, []int{1, 2, 6, 8, 4}, d.Raw())
	assert.True(t, d.Classified())
}

func TestInsertOddAfterSort(t *testing.T) {
	raw := append(seq(1, MinSize), -7)
	d, _ := New(raw...)
	require.NoError(t, d.Classify(classify.TwoPointer))
	require.NoError(t, d.Sort(sorting.Heap))

	require.NoError(t, d.Insert(-3))
	require.NoError(t, d.Insert(12))

	odd, even := d.Odd(), d.Even()
	assert.True(t, sorting.IsSorted(odd))
	assert.True(t, sorting.IsSorted(even))
	assert.Equal(t, -7, odd[0])
	assert.Equal(t, -3, odd[1])
	assert.Equal(t, d.Len(), len(odd)+len(even))
}

func TestInsertBeforeClassification(t *testing.T) {
	d, _ := New(seq(1, MinSize)...)

	require.NoError(t, d.Insert(4))

	assert.Equal(t, MinSize+1, d.Len())
	assert.Empty(t, d.Odd())
	assert.Empty(t, d.Even())
	assert.False(t, d.Classified())
}

func TestInsertAfterStaleInsert(t *testing.T) {
	d, _ := New(1, 2)
	require.NoError(t, d.SetPartitions([]int{1}, []int{2}))

	// A load invalidates partitions; following inserts only grow raw.
	require.NoError(t, d.Load([]int{5, 6, 7}))
	require.NoError(t, d.Insert(9))

	assert.Equal(t, []int{5, 6, 7, 9}, d.Raw())
	assert.Empty(t, d.Odd())
	assert.False(t, d.Classified())
}

func TestInsertIntoEmptyBuildsPartitions(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	for v := MinSize; v >= 1; v-- {
		require.NoError(t, d.Insert(v))
	}

	assert.True(t, d.Classified())
	assert.Equal(t, []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}, d.Odd())
	assert.Equal(t, []int{2, 4, 6, 8, 10, 12, 14, 16, 18, 20}, d.Even())
	require.NoError(t, d.Sort(sorting.Heap))
}
