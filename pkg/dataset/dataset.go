// Package dataset holds the raw integer sequence being seated together with
// its derived odd and even partitions.
//
// A Dataset is a bounded container: it never holds more than [MaxSize]
// values and reports [apperrors.ErrCodeCapacityExceeded] instead of growing.
// The derived partitions are overwritten by every classification run, except
// for [Dataset.Insert], which maintains them incrementally.
//
// A Dataset is not safe for concurrent use. Give each pipeline run its own
// instance (see [Dataset.Clone]).
package dataset

import (
	"errors"
	"slices"

	"github.com/matzehuels/seatsort/pkg/classify"
	apperrors "github.com/matzehuels/seatsort/pkg/errors"
	"github.com/matzehuels/seatsort/pkg/sorting"
)

const (
	// MaxSize is the maximum number of raw values a dataset can hold.
	MaxSize = 1024

	// MinSize is the minimum number of raw values required before
	// classification, sorting or seating may run.
	MinSize = 20
)

// Sentinel errors wrapped by the coded errors this package returns.
var (
	ErrCapacityExceeded  = errors.New("dataset: capacity exceeded")
	ErrInsufficientData  = errors.New("dataset: insufficient data")
	ErrInconsistentSplit = errors.New("dataset: partitions do not cover raw values")
)

// Dataset is the raw sequence plus its odd and even partitions.
type Dataset struct {
	raw  []int
	odd  []int
	even []int

	classified bool
}

// New creates a dataset holding a copy of values.
func New(values ...int) (*Dataset, error) {
	d := &Dataset{}
	if err := d.Load(values); err != nil {
		return nil, err
	}
	return d, nil
}

// Load replaces the raw values with a copy of values and discards the
// derived partitions.
func (d *Dataset) Load(values []int) error {
	if len(values) > MaxSize {
		return apperrors.Wrap(apperrors.ErrCodeCapacityExceeded, ErrCapacityExceeded,
			"load %d values: dataset holds at most %d", len(values), MaxSize)
	}
	d.raw = slices.Clone(values)
	d.odd, d.even = nil, nil
	d.classified = false
	return nil
}

// Len returns the number of raw values.
func (d *Dataset) Len() int { return len(d.raw) }

// Full reports whether the dataset is at capacity.
func (d *Dataset) Full() bool { return len(d.raw) >= MaxSize }

// Raw returns a copy of the raw values in insertion order.
func (d *Dataset) Raw() []int { return slices.Clone(d.raw) }

// Odd returns a copy of the odd partition.
func (d *Dataset) Odd() []int { return slices.Clone(d.odd) }

// Even returns a copy of the even partition.
func (d *Dataset) Even() []int { return slices.Clone(d.even) }

// Classified reports whether the partitions have been populated for the
// current raw contents.
func (d *Dataset) Classified() bool { return d.classified }

// Clone returns an independent deep copy of d.
func (d *Dataset) Clone() *Dataset {
	return &Dataset{
		raw:        slices.Clone(d.raw),
		odd:        slices.Clone(d.odd),
		even:       slices.Clone(d.even),
		classified: d.classified,
	}
}

// Validate checks that the dataset holds enough values to be processed.
func (d *Dataset) Validate() error {
	if err := apperrors.ValidateCount("dataset", len(d.raw), MinSize, MaxSize); err != nil {
		if apperrors.Is(err, apperrors.ErrCodeInsufficientData) {
			return apperrors.Wrap(apperrors.ErrCodeInsufficientData, ErrInsufficientData,
				"need at least %d values, have %d", MinSize, len(d.raw))
		}
		return err
	}
	return nil
}

// Classify splits the raw values with strategy s, overwriting any previous
// partitions. The length bounds are re-checked here even though the
// acquisition side is expected to enforce them.
func (d *Dataset) Classify(s classify.Strategy) error {
	if err := d.Validate(); err != nil {
		return err
	}
	odd, even, err := classify.Apply(s, d.raw)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfiguration, err, "classify")
	}
	d.odd, d.even = odd, even
	d.classified = true
	return nil
}

// SetPartitions installs externally computed partitions. They must cover
// the raw values exactly once by count.
func (d *Dataset) SetPartitions(odd, even []int) error {
	if len(odd)+len(even) != len(d.raw) {
		return apperrors.Wrap(apperrors.ErrCodeInternal, ErrInconsistentSplit,
			"odd %d + even %d != raw %d", len(odd), len(even), len(d.raw))
	}
	d.odd, d.even = slices.Clone(odd), slices.Clone(even)
	d.classified = true
	return nil
}

// Sort sorts both partitions in place with algorithm a.
func (d *Dataset) Sort(a sorting.Algorithm) error {
	if !d.classified {
		return apperrors.New(apperrors.ErrCodeInsufficientData, "sort: dataset has not been classified")
	}
	if err := sorting.Sort(a, d.odd); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfiguration, err, "sort")
	}
	// a is known to be valid here.
	_ = sorting.Sort(a, d.even)
	return nil
}
