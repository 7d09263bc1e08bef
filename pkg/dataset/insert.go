package dataset

import (
	"github.com/matzehuels/seatsort/pkg/classify"
	apperrors "github.com/matzehuels/seatsort/pkg/errors"
	"github.com/matzehuels/seatsort/pkg/sorting"
)

// Insert appends v to the raw values.
//
// When the partitions already account for every raw value before the
// append, v is also shift-inserted into the partition matching its parity,
// keeping that partition in ascending order without a full re-sort.
// Otherwise only the raw sequence grows and the partitions stay stale until
// the next classification.
//
// Insert fails with CAPACITY_EXCEEDED, leaving d unchanged, when the
// dataset is full.
func (d *Dataset) Insert(v int) error {
	if d.Full() {
		return apperrors.Wrap(apperrors.ErrCodeCapacityExceeded, ErrCapacityExceeded,
			"insert %d: dataset already holds %d values", v, MaxSize)
	}

	current := len(d.odd)+len(d.even) == len(d.raw)
	d.raw = append(d.raw, v)
	if !current {
		d.classified = false
		return nil
	}

	d.classified = true
	if classify.IsOdd(v) {
		d.odd = sorting.InsertOrdered(d.odd, v)
	} else {
		d.even = sorting.InsertOrdered(d.even, v)
	}
	return nil
}
