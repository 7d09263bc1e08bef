package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	seatio "github.com/matzehuels/seatsort/pkg/io"
	"github.com/matzehuels/seatsort/pkg/source"
)

// generateCommand creates the generate command, which writes a random
// dataset in the delimited format accepted by --input.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output string
		count  int
		lo, hi int
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random dataset as a comma-separated line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := source.Random(count, lo, hi, seed)
			if err != nil {
				return err
			}
			if output == "" {
				return seatio.WriteSequenceCSV(cmd.OutOrStdout(), values)
			}
			if err := writeValues(output, values); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Generated %d values", len(values))
			printFile(out, output)
			printNewline(out)
			printNextStep(out, "Seat them", appName+" run --input "+output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVarP(&count, "count", "n", source.DefaultCount, "number of values")
	cmd.Flags().IntVar(&lo, "min", source.DefaultMin, "lower bound")
	cmd.Flags().IntVar(&hi, "max", source.DefaultMax, "upper bound")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 draws a fresh one)")

	return cmd
}

func writeValues(path string, values []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := seatio.WriteSequenceCSV(f, values); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
