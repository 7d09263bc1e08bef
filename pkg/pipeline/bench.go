package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/seatsort/pkg/classify"
	"github.com/matzehuels/seatsort/pkg/dataset"
	"github.com/matzehuels/seatsort/pkg/sorting"
)

// BenchResult holds the timings of one classify + sort run.
type BenchResult struct {
	Classifier classify.Strategy `json:"classifier"`
	Sorter     sorting.Algorithm `json:"sorter"`
	Count      int               `json:"count"`
	Classify   time.Duration     `json:"classify_ns"`
	Sort       time.Duration     `json:"sort_ns"`
	Total      time.Duration     `json:"total_ns"`
}

// Bench classifies and sorts a private copy of ds, leaving ds untouched.
func (r *Runner) Bench(ctx context.Context, ds *dataset.Dataset, s classify.Strategy, a sorting.Algorithm) (BenchResult, error) {
	if err := ValidateClassifier(s); err != nil {
		return BenchResult{}, err
	}
	if err := ValidateSorter(a); err != nil {
		return BenchResult{}, err
	}

	work := ds.Clone()
	res := BenchResult{Classifier: s, Sorter: a, Count: work.Len()}

	var err error
	if res.Classify, err = r.Classify(ctx, work, s); err != nil {
		return BenchResult{}, err
	}
	if res.Sort, err = r.Sort(ctx, work, a); err != nil {
		return BenchResult{}, err
	}
	res.Total = res.Classify + res.Sort
	return res, nil
}

// BenchAll benchmarks every classifier/sorter pair concurrently, one
// goroutine and one dataset copy per pair. Results are ordered classifier
// first, then sorter, as listed in [classify.Strategies] and
// [sorting.Algorithms].
func (r *Runner) BenchAll(ctx context.Context, ds *dataset.Dataset) ([]BenchResult, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	results := make([]BenchResult, len(classify.Strategies)*len(sorting.Algorithms))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, s := range classify.Strategies {
		for j, a := range sorting.Algorithms {
			idx := i*len(sorting.Algorithms) + j
			src := ds.Clone()
			eg.Go(func() error {
				res, err := r.Bench(egCtx, src, s, a)
				if err != nil {
					return err
				}
				results[idx] = res
				return nil
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	r.logger().Info("benchmarked strategies", "pairs", len(results), "count", ds.Len())
	return results, nil
}
