package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seatsort/pkg/config"
	"github.com/matzehuels/seatsort/pkg/dataset"
	"github.com/matzehuels/seatsort/pkg/pipeline"
	"github.com/matzehuels/seatsort/pkg/source"
)

// settings holds the flags shared by the data-processing commands. Flags
// the user sets on the command line override the config file, which in
// turn overrides the built-in defaults.
type settings struct {
	configPath string

	// Source
	source string
	input  string
	count  int
	min    int
	max    int
	seed   uint64

	// Pipeline
	classifier string
	sorter     string
	mode       string
	oddSide    string
	rows       int
	cols       int

	// Export
	exportDir string
}

func (s *settings) addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")
}

func (s *settings) addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.source, "source", "s", string(source.KindRandom), "data source: random, manual (stdin), csv")
	cmd.Flags().StringVarP(&s.input, "input", "i", "", "delimited file to import (implies --source csv)")
	cmd.Flags().IntVarP(&s.count, "count", "n", source.DefaultCount, "number of random values")
	cmd.Flags().IntVar(&s.min, "min", source.DefaultMin, "lower bound of random values")
	cmd.Flags().IntVar(&s.max, "max", source.DefaultMax, "upper bound of random values")
	cmd.Flags().Uint64Var(&s.seed, "seed", 0, "random seed (0 draws a fresh one)")
}

func (s *settings) addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.classifier, "classifier", string(pipeline.DefaultClassifier), "classification strategy: stable, partition, two-pointer")
	cmd.Flags().StringVar(&s.sorter, "sorter", string(pipeline.DefaultSorter), "sort algorithm: quick, heap")
	cmd.Flags().StringVarP(&s.mode, "mode", "m", string(pipeline.DefaultMode), "layout mode: left-right (lr), front-back (fb)")
	cmd.Flags().StringVar(&s.oddSide, "odd-side", string(pipeline.DefaultOddSide), "half receiving odd values: first, second")
	cmd.Flags().IntVar(&s.rows, "rows", 0, "grid rows (0 derives from the data)")
	cmd.Flags().IntVar(&s.cols, "cols", 0, "grid columns (0 derives from the data)")
}

func (s *settings) addExportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.exportDir, "export-dir", defaultExportDir, "directory for odd.csv, even.csv and seat_map.csv")
}

// resolve loads the config file, overlays the flags the user changed and
// returns the merged config together with validated pipeline options.
func (s *settings) resolve(cmd *cobra.Command) (*config.Config, pipeline.Options, error) {
	cfg := config.Default()
	if s.configPath != "" {
		var err error
		if cfg, err = config.Load(s.configPath); err != nil {
			return nil, pipeline.Options{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("classifier") {
		cfg.Pipeline.Classifier = s.classifier
	}
	if changed("sorter") {
		cfg.Pipeline.Sorter = s.sorter
	}
	if changed("mode") {
		cfg.Layout.Mode = s.mode
	}
	if changed("odd-side") {
		cfg.Layout.OddSide = s.oddSide
	}
	if changed("rows") {
		cfg.Layout.Rows = s.rows
	}
	if changed("cols") {
		cfg.Layout.Cols = s.cols
	}

	if changed("source") {
		cfg.Source.Kind = source.Kind(s.source)
	}
	if changed("input") {
		cfg.Source.Path = s.input
		if !changed("source") {
			cfg.Source.Kind = source.KindCSV
		}
	}
	if changed("count") {
		cfg.Source.Count = s.count
	}
	// A range left unset by the file starts from the flag defaults, so a
	// single bound on the command line keeps the other one.
	if cfg.Source.Min == 0 && cfg.Source.Max == 0 {
		cfg.Source.Min, cfg.Source.Max = s.min, s.max
	}
	if changed("min") {
		cfg.Source.Min = s.min
	}
	if changed("max") {
		cfg.Source.Max = s.max
	}
	if changed("seed") {
		cfg.Source.Seed = s.seed
	}
	cfg.Source.SetDefaults()

	if changed("export-dir") || cfg.Export.Dir == "" {
		cfg.Export.Dir = s.exportDir
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = defaultExportDir
	}

	var opts pipeline.Options
	if err := cfg.ApplyTo(&opts); err != nil {
		return nil, pipeline.Options{}, err
	}
	// Explicit zero dimensions on the command line reset the file's values.
	if changed("rows") {
		opts.Layout.Rows = s.rows
	}
	if changed("cols") {
		opts.Layout.Cols = s.cols
	}
	return cfg, opts, nil
}

// loadDataset acquires values as configured and wraps them in a dataset.
func loadDataset(o source.Options, stdin io.Reader) (*dataset.Dataset, error) {
	values, err := source.Load(o, stdin)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.New(values...)
	if err != nil {
		return nil, err
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}
