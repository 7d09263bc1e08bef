// Package pipeline provides the classify → sort → seat pipeline for seatsort.
//
// This package implements the complete pipeline used by the CLI, the
// interactive menu and the HTTP API. Centralizing it keeps defaults,
// validation and logging identical across all entry points.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Classify: split the raw values into odd and even partitions
//  2. Sort: sort both partitions in place
//  3. Seat: map the sorted partitions onto a seat grid
//  4. Render: produce the requested artifacts (ascii, styled, json)
//
// Each stage can be run on its own or as part of [Runner.Execute].
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	ds, _ := dataset.New(values...)
//	result, err := runner.Execute(ctx, ds, pipeline.Options{
//	    Classifier: classify.Stable,
//	    Sorter:     sorting.Heap,
//	    Layout:     seatmap.Config{Mode: seatmap.FrontBack},
//	    Formats:    []string{pipeline.FormatASCII},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(string(result.Artifacts[pipeline.FormatASCII]))
//
// # Isolation
//
// Execute classifies and sorts the dataset it is given, so a session that
// keeps its dataset can insert into the sorted partitions afterwards.
// Concurrent callers must each pass their own dataset; [Bench] and
// [BenchAll] always work on private copies.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seatsort/pkg/classify"
	apperrors "github.com/matzehuels/seatsort/pkg/errors"
	seatio "github.com/matzehuels/seatsort/pkg/io"
	"github.com/matzehuels/seatsort/pkg/seatmap"
	"github.com/matzehuels/seatsort/pkg/sorting"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, Menu, and API
// =============================================================================

const (
	// DefaultClassifier is the classification strategy used when none is set.
	DefaultClassifier = classify.Partition

	// DefaultSorter is the sort algorithm used when none is set.
	DefaultSorter = sorting.Quick

	// DefaultMode is the layout mode used when none is set.
	DefaultMode = seatmap.LeftRight

	// DefaultOddSide is the odd-side preference used when none is set.
	DefaultOddSide = seatmap.First
)

// Format constants for rendered artifacts.
const (
	FormatASCII  = "ascii"
	FormatStyled = "styled"
	FormatJSON   = "json"
)

// ValidFormats is the set of supported artifact formats.
var ValidFormats = map[string]bool{
	FormatASCII:  true,
	FormatStyled: true,
	FormatJSON:   true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	Classifier classify.Strategy `json:"classifier,omitempty"`
	Sorter     sorting.Algorithm `json:"sorter,omitempty"`
	Layout     seatmap.Config    `json:"layout"`

	// Formats lists the artifacts to render; empty renders nothing.
	Formats []string `json:"formats,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs, reports and API responses.
	RunID string

	// Odd and Even are the sorted partitions.
	Odd  []int
	Even []int

	// Grid is the seat assignment.
	Grid *seatmap.Grid

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Count        int
	ClassifyTime time.Duration
	SortTime     time.Duration
	SeatTime     time.Duration
	RenderTime   time.Duration
}

// Total returns the time spent in classify, sort and seat.
func (s Stats) Total() time.Duration {
	return s.ClassifyTime + s.SortTime + s.SeatTime
}

// Report converts r into its JSON export form.
func (r *Result) Report(opts Options) seatio.Report {
	return seatio.Report{
		RunID:      r.RunID,
		Classifier: string(opts.Classifier),
		Sorter:     string(opts.Sorter),
		Count:      r.Stats.Count,
		Odd:        r.Odd,
		Even:       r.Even,
		Grid:       r.Grid,
		Timings: seatio.Timings{
			ClassifyMS: seatio.Millis(r.Stats.ClassifyTime),
			SortMS:     seatio.Millis(r.Stats.SortTime),
			SeatMS:     seatio.Millis(r.Stats.SeatTime),
			TotalMS:    seatio.Millis(r.Stats.Total()),
		},
	}
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: ascii, styled, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateClassifier checks that a classification strategy is known.
func ValidateClassifier(s classify.Strategy) error {
	if !s.Valid() {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfiguration, classify.ErrUnknownStrategy,
			"%q (must be one of: stable, partition, two-pointer)", s)
	}
	return nil
}

// ValidateSorter checks that a sort algorithm is known.
func ValidateSorter(a sorting.Algorithm) error {
	if !a.Valid() {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfiguration, sorting.ErrUnknownAlgorithm,
			"%q (must be one of: quick, heap)", a)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills in every unset field.
func (o *Options) SetDefaults() {
	if o.Classifier == "" {
		o.Classifier = DefaultClassifier
	}
	if o.Sorter == "" {
		o.Sorter = DefaultSorter
	}
	if o.Layout.Mode == "" {
		o.Layout.Mode = DefaultMode
	}
	if o.Layout.OddSide == "" {
		o.Layout.OddSide = DefaultOddSide
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and validates every field.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateClassifier(o.Classifier); err != nil {
		return err
	}
	if err := ValidateSorter(o.Sorter); err != nil {
		return err
	}
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// String summarizes the strategy choice, e.g. "partition/quick".
func (o Options) String() string {
	return fmt.Sprintf("%s/%s", o.Classifier, o.Sorter)
}
