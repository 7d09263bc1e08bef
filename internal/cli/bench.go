package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seatsort/pkg/pipeline"
	"github.com/matzehuels/seatsort/pkg/render"
)

// benchCommand creates the bench command for timing classify and sort.
func (c *CLI) benchCommand() *cobra.Command {
	var (
		s   settings
		all bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time classification and sorting on a dataset",
		Long: `Time classification and sorting on a dataset.

By default only the configured classifier and sorter are timed. With --all
every classifier/sorter pair runs concurrently, each on its own copy of
the dataset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBench(cmd, &s, all)
		},
	}

	s.addConfigFlags(cmd)
	s.addSourceFlags(cmd)
	s.addPipelineFlags(cmd)
	cmd.Flags().BoolVarP(&all, "all", "a", false, "benchmark every classifier/sorter pair")

	return cmd
}

func (c *CLI) runBench(cmd *cobra.Command, s *settings, all bool) error {
	ctx := contextOf(cmd)
	cfg, opts, err := s.resolve(cmd)
	if err != nil {
		return err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	ds, err := loadDataset(cfg.Source, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	runner := c.newRunner()
	var results []pipeline.BenchResult
	if all {
		if results, err = runner.BenchAll(ctx, ds); err != nil {
			return err
		}
	} else {
		res, err := runner.Bench(ctx, ds, opts.Classifier, opts.Sorter)
		if err != nil {
			return err
		}
		results = []pipeline.BenchResult{res}
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, benchTable(results))
	printDetail(out, "%d values, timings are wall clock on a private copy", ds.Len())
	return nil
}

// benchTable renders results one row per classifier/sorter pair.
func benchTable(results []pipeline.BenchResult) string {
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{
			string(r.Classifier),
			string(r.Sorter),
			fmt.Sprint(r.Count),
			formatMillis(r.Classify),
			formatMillis(r.Sort),
			formatMillis(r.Total),
		}
	}
	return render.Table([]string{"Classifier", "Sorter", "Values", "Classify", "Sort", "Total"}, rows)
}

// formatMillis formats d in milliseconds with three decimals.
func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}
