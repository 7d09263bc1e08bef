package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/seatsort/pkg/classify"
	"github.com/matzehuels/seatsort/pkg/dataset"
	seatio "github.com/matzehuels/seatsort/pkg/io"
	"github.com/matzehuels/seatsort/pkg/observability"
	"github.com/matzehuels/seatsort/pkg/render"
	"github.com/matzehuels/seatsort/pkg/seatmap"
	"github.com/matzehuels/seatsort/pkg/sorting"
)

// Runner executes pipeline stages and reports them to the logger and the
// registered observability hooks.
//
// The Runner is stateless except for the logger. Multiple goroutines can
// safely use the same Runner as long as each passes its own dataset.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs classify → sort → seat → render on ds.
//
// ds is classified and sorted in place. The returned result holds copies
// of the sorted partitions.
func (r *Runner) Execute(ctx context.Context, ds *dataset.Dataset, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	result.Stats.Count = ds.Len()
	logger := opts.Logger.With("run", result.RunID[:8])

	// Stage 1: Classify
	d, err := r.Classify(ctx, ds, opts.Classifier)
	if err != nil {
		return nil, err
	}
	result.Stats.ClassifyTime = d
	logger.Info("classified values",
		"strategy", opts.Classifier,
		"odd", len(ds.Odd()),
		"even", len(ds.Even()),
		"duration", d)

	// Stage 2: Sort
	if d, err = r.Sort(ctx, ds, opts.Sorter); err != nil {
		return nil, err
	}
	result.Stats.SortTime = d
	result.Odd, result.Even = ds.Odd(), ds.Even()
	logger.Info("sorted partitions",
		"algorithm", opts.Sorter,
		"duration", d)

	// Stage 3: Seat
	start := time.Now()
	grid, err := r.Seat(ctx, result.Odd, result.Even, opts.Layout)
	if err != nil {
		return nil, err
	}
	result.Grid = grid
	result.Stats.SeatTime = time.Since(start)
	logger.Info("seated values",
		"rows", grid.Rows(),
		"cols", grid.Cols(),
		"placed", grid.Placed(),
		"dropped", grid.Dropped(),
		"duration", result.Stats.SeatTime)
	if grid.Dropped() > 0 {
		logger.Warn("grid too small, values left unseated",
			"capacity", grid.Config.Capacity(),
			"dropped", grid.Dropped())
	}

	// Stage 4: Render
	if len(opts.Formats) > 0 {
		start = time.Now()
		artifacts, err := r.Render(result, opts)
		if err != nil {
			return nil, err
		}
		result.Artifacts = artifacts
		result.Stats.RenderTime = time.Since(start)
		logger.Debug("rendered outputs",
			"formats", opts.Formats,
			"duration", result.Stats.RenderTime)
	}

	return result, nil
}

// Classify runs the classification stage on ds and returns its duration.
func (r *Runner) Classify(ctx context.Context, ds *dataset.Dataset, s classify.Strategy) (time.Duration, error) {
	return r.stage(ctx, observability.StageClassify, ds.Len(), func() error {
		return ds.Classify(s)
	})
}

// Sort runs the sort stage on ds and returns its duration.
func (r *Runner) Sort(ctx context.Context, ds *dataset.Dataset, a sorting.Algorithm) (time.Duration, error) {
	return r.stage(ctx, observability.StageSort, ds.Len(), func() error {
		return ds.Sort(a)
	})
}

// Seat maps the sorted partitions onto a grid.
func (r *Runner) Seat(ctx context.Context, odd, even []int, cfg seatmap.Config) (*seatmap.Grid, error) {
	var grid *seatmap.Grid
	_, err := r.stage(ctx, observability.StageSeat, len(odd)+len(even), func() error {
		var err error
		grid, err = seatmap.Generate(odd, even, cfg)
		return err
	})
	if err != nil {
		return nil, err
	}
	observability.Pipeline().OnPlacement(ctx, grid.Placed(), grid.Dropped())
	return grid, nil
}

// Render produces the artifacts named in opts.Formats from a completed
// result.
func (r *Runner) Render(result *Result, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var buf bytes.Buffer
		var err error

		switch format {
		case FormatASCII:
			err = render.Render(&buf, result.Grid, render.FormatASCII)
		case FormatStyled:
			err = render.Render(&buf, result.Grid, render.FormatStyled)
		case FormatJSON:
			err = seatio.WriteJSON(result.Report(opts), &buf)
		default:
			err = ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = buf.Bytes()
	}
	return artifacts, nil
}

// stage times fn and reports it to the pipeline hooks. A cancelled
// context stops the pipeline before the stage starts.
func (r *Runner) stage(ctx context.Context, stage observability.Stage, size int, fn func() error) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, stage, size)
	start := time.Now()
	err := fn()
	d := time.Since(start)
	hooks.OnStageComplete(ctx, stage, d, err)
	if err != nil {
		r.logger().Debug("stage failed", "stage", stage, "error", err)
	}
	return d, err
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	return r.Logger
}

// applyLogger routes opts through the runner's logger unless the caller
// set one.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
