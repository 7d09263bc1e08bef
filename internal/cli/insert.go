package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seatsort/pkg/classify"
	"github.com/matzehuels/seatsort/pkg/source"
)

// insertCommand creates the insert command. It seats a dataset, inserts
// the given values into the sorted sequences and seats the result again.
func (c *CLI) insertCommand() *cobra.Command {
	var (
		s      settings
		format string
	)

	cmd := &cobra.Command{
		Use:   "insert VALUE...",
		Short: "Insert values into a seated dataset and seat it again",
		Long: `Insert values into a seated dataset and seat it again.

Each value is placed into the odd or even sequence at its sorted position,
without re-running classification or sorting. Insertion fails once the
dataset holds 1024 values.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := source.Parse(args)
			if err != nil {
				return err
			}
			return c.runInsert(cmd, &s, format, values)
		},
	}

	s.addConfigFlags(cmd)
	s.addSourceFlags(cmd)
	s.addPipelineFlags(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "ascii", "display format: ascii, styled")

	return cmd
}

func (c *CLI) runInsert(cmd *cobra.Command, s *settings, format string, values []int) error {
	ctx := contextOf(cmd)
	cfg, opts, err := s.resolve(cmd)
	if err != nil {
		return err
	}
	opts.Logger = c.Logger
	opts.Formats = nil
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	ds, err := loadDataset(cfg.Source, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	runner := c.newRunner()
	result, err := runner.Execute(ctx, ds, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, v := range values {
		if err := ds.Insert(v); err != nil {
			return err
		}
		side := "even"
		if classify.IsOdd(v) {
			side = "odd"
		}
		printInfo(out, "Inserted %d into the %s sequence", v, side)
	}

	result.Odd, result.Even = ds.Odd(), ds.Even()
	result.Stats.Count = ds.Len()
	if result.Grid, err = runner.Seat(ctx, result.Odd, result.Even, opts.Layout); err != nil {
		return err
	}

	opts.Formats = []string{format}
	if result.Artifacts, err = runner.Render(result, opts); err != nil {
		return err
	}
	printNewline(out)
	printResult(out, result, opts)
	return nil
}
