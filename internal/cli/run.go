package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	seatio "github.com/matzehuels/seatsort/pkg/io"
	"github.com/matzehuels/seatsort/pkg/pipeline"
)

// runOpts holds the output flags of the run command.
type runOpts struct {
	format   string // display format: ascii or styled
	jsonPath string // optional JSON report path
	noExport bool   // skip the CSV export
}

// runCommand creates the run command, the one-shot form of the menu's
// load → seat → display → export sequence.
func (c *CLI) runCommand() *cobra.Command {
	var s settings
	opts := runOpts{format: pipeline.FormatASCII}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Classify, sort and seat a dataset, then display and export it",
		Long: `Classify, sort and seat a dataset, then display and export it.

The dataset is generated at random by default. Use --source manual to read
a count followed by that many integers from stdin, or --input to import a
comma or newline delimited file.

The sorted odd and even sequences and the seat map are written as CSV to
--export-dir unless --no-export is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRun(cmd, &s, opts)
		},
	}

	s.addConfigFlags(cmd)
	s.addSourceFlags(cmd)
	s.addPipelineFlags(cmd)
	s.addExportFlags(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "display format: ascii, styled")
	cmd.Flags().StringVar(&opts.jsonPath, "json", "", "write a JSON run report to this file")
	cmd.Flags().BoolVar(&opts.noExport, "no-export", false, "do not write CSV files")

	return cmd
}

func (c *CLI) runRun(cmd *cobra.Command, s *settings, ro runOpts) error {
	ctx := contextOf(cmd)
	cfg, opts, err := s.resolve(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") || len(opts.Formats) == 0 {
		opts.Formats = []string{ro.format}
	}
	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	ds, err := loadDataset(cfg.Source, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	prog := newProgress(c.Logger)
	result, err := c.newRunner().Execute(ctx, ds, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Seated %d values with %s", result.Stats.Count, opts))

	out := cmd.OutOrStdout()
	printResult(out, result, opts)

	if ro.jsonPath != "" {
		if err := seatio.ExportJSON(result.Report(opts), ro.jsonPath); err != nil {
			return err
		}
		printSuccess(out, "Report written")
		printFile(out, ro.jsonPath)
	}

	if !ro.noExport {
		if err := exportResult(out, cfg.Export.Dir, cfg.Export.Names(), result); err != nil {
			return err
		}
	}

	printNewline(out)
	printNextStep(out, "Compare strategies", appName+" bench --all")
	return ctx.Err()
}

// printResult writes every rendered artifact followed by the sequences
// and placement statistics.
func printResult(w io.Writer, result *pipeline.Result, opts pipeline.Options) {
	for _, format := range opts.Formats {
		fmt.Fprint(w, string(result.Artifacts[format]))
	}
	printNewline(w)
	printSequence(w, "odd", result.Odd, true)
	printSequence(w, "even", result.Even, false)
	printStats(w, result.Grid)
	if result.Grid.Dropped() > 0 {
		printWarning(w, "%d values did not fit the %dx%d grid",
			result.Grid.Dropped(), result.Grid.Rows(), result.Grid.Cols())
	}
}

// exportResult writes the three CSV files and lists them.
func exportResult(w io.Writer, dir string, names seatio.Names, result *pipeline.Result) error {
	paths, err := seatio.ExportCSV(dir, names, result.Odd, result.Even, result.Grid)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	printSuccess(w, "Exported %d files", len(paths))
	for _, p := range paths {
		printFile(w, p)
	}
	return nil
}
