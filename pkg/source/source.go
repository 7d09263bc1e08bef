package source

import (
	"io"
	"strings"

	"github.com/matzehuels/seatsort/pkg/dataset"
	apperrors "github.com/matzehuels/seatsort/pkg/errors"
)

// Kind names an acquisition path.
type Kind string

// Acquisition kinds.
const (
	KindManual Kind = "manual"
	KindRandom Kind = "random"
	KindCSV    Kind = "csv"
)

// Defaults for random generation.
const (
	DefaultCount = 40
	DefaultMin   = 0
	DefaultMax   = 99
)

// ValidKinds is the set of supported acquisition kinds.
var ValidKinds = map[Kind]bool{
	KindManual: true,
	KindRandom: true,
	KindCSV:    true,
}

// Options selects and parameterises an acquisition path.
type Options struct {
	Kind  Kind   `json:"kind" toml:"kind" yaml:"kind"`
	Path  string `json:"path,omitempty" toml:"path" yaml:"path"`
	Count int    `json:"count,omitempty" toml:"count" yaml:"count"`
	Min   int    `json:"min" toml:"min" yaml:"min"`
	Max   int    `json:"max" toml:"max" yaml:"max"`
	Seed  uint64 `json:"seed,omitempty" toml:"seed" yaml:"seed"`
}

// SetDefaults fills in unset fields. Min and Max are only defaulted when
// both are zero, so an explicit [0, 0] range is not expressible.
func (o *Options) SetDefaults() {
	if o.Kind == "" {
		o.Kind = KindRandom
	}
	if o.Kind == KindRandom {
		if o.Count == 0 {
			o.Count = DefaultCount
		}
		if o.Min == 0 && o.Max == 0 {
			o.Min, o.Max = DefaultMin, DefaultMax
		}
	}
}

// Validate checks the options without touching any input.
func (o *Options) Validate() error {
	if !ValidKinds[o.Kind] {
		return apperrors.New(apperrors.ErrCodeInvalidInput,
			"invalid source %q (must be one of: manual, random, csv)", o.Kind)
	}
	switch o.Kind {
	case KindRandom:
		if err := validateCount(o.Count); err != nil {
			return err
		}
		if o.Min > o.Max {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "random range [%d, %d] is empty", o.Min, o.Max)
		}
	case KindCSV:
		if strings.TrimSpace(o.Path) == "" {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "csv source requires a path")
		}
	}
	return nil
}

// Load acquires values according to o. Manual input is read from stdin.
func Load(o Options, stdin io.Reader) ([]int, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	switch o.Kind {
	case KindManual:
		return Manual(stdin)
	case KindCSV:
		return ImportCSV(o.Path)
	default:
		return Random(o.Count, o.Min, o.Max, o.Seed)
	}
}

func validateCount(n int) error {
	if n < dataset.MinSize || n > dataset.MaxSize {
		return apperrors.New(apperrors.ErrCodeInvalidInput,
			"count must be between %d and %d, got %d", dataset.MinSize, dataset.MaxSize, n)
	}
	return nil
}
