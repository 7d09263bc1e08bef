// Package config loads seatsort configuration files.
//
// A file has four optional sections:
//
//	[pipeline]
//	classifier = "stable"     # stable | partition | two-pointer (or 1/2/3)
//	sorter = "heap"           # quick | heap (or 1/2)
//
//	[layout]
//	rows = 0                  # 0 derives the dimension
//	cols = 0
//	mode = "front-back"       # left-right | front-back (or 0/1)
//	odd_side = "second"       # first | second (or 0/1)
//
//	[export]
//	dir = "out"
//	odd = "odd.csv"
//	even = "even.csv"
//	seats = "seat_map.csv"
//	formats = ["ascii"]
//
//	[source]
//	kind = "random"           # manual | random | csv
//	count = 40
//	min = 0
//	max = 99
//	seed = 7
//
// TOML is used for .toml files and YAML for .yaml and .yml files; the YAML
// keys are the same. Unknown keys are rejected. The environment variables
// SEATSORT_CLASSIFIER, SEATSORT_SORTER and SEATSORT_EXPORT_DIR override the
// file. Command-line flags override both.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/seatsort/pkg/classify"
	apperrors "github.com/matzehuels/seatsort/pkg/errors"
	seatio "github.com/matzehuels/seatsort/pkg/io"
	"github.com/matzehuels/seatsort/pkg/pipeline"
	"github.com/matzehuels/seatsort/pkg/seatmap"
	"github.com/matzehuels/seatsort/pkg/sorting"
	"github.com/matzehuels/seatsort/pkg/source"
)

// Environment variables read by [Load] and [Default].
const (
	EnvClassifier = "SEATSORT_CLASSIFIER"
	EnvSorter     = "SEATSORT_SORTER"
	EnvExportDir  = "SEATSORT_EXPORT_DIR"
)

// Config is the decoded configuration file.
type Config struct {
	Pipeline PipelineConfig `toml:"pipeline" yaml:"pipeline"`
	Layout   LayoutConfig   `toml:"layout" yaml:"layout"`
	Export   ExportConfig   `toml:"export" yaml:"export"`
	Source   source.Options `toml:"source" yaml:"source"`
}

// PipelineConfig selects the strategies.
type PipelineConfig struct {
	Classifier string `toml:"classifier" yaml:"classifier"`
	Sorter     string `toml:"sorter" yaml:"sorter"`
}

// LayoutConfig describes the seat grid. Mode and side accept the same
// aliases as the command line.
type LayoutConfig struct {
	Rows    int    `toml:"rows" yaml:"rows"`
	Cols    int    `toml:"cols" yaml:"cols"`
	Mode    string `toml:"mode" yaml:"mode"`
	OddSide string `toml:"odd_side" yaml:"odd_side"`
}

// ExportConfig controls where and what is written after a run.
type ExportConfig struct {
	Dir     string   `toml:"dir" yaml:"dir"`
	Odd     string   `toml:"odd" yaml:"odd"`
	Even    string   `toml:"even" yaml:"even"`
	Seats   string   `toml:"seats" yaml:"seats"`
	Formats []string `toml:"formats" yaml:"formats"`
}

// Names returns the export file names with defaults applied.
func (e ExportConfig) Names() seatio.Names {
	n := seatio.Names{Odd: e.Odd, Even: e.Even, Seats: e.Seats}
	n.SetDefaults()
	return n
}

// Default returns an empty configuration with environment overrides
// applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyEnvOverrides()
	return cfg
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read config %s", path)
	}

	cfg := &Config{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, cfg)
	case ".yaml", ".yml":
		err = decodeYAML(data, cfg)
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat,
			"config %s: unsupported extension %q (must be .toml, .yaml or .yml)", path, ext)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfiguration, err, "parse config %s", path)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New("unknown keys: " + strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvClassifier); v != "" {
		c.Pipeline.Classifier = v
	}
	if v := os.Getenv(EnvSorter); v != "" {
		c.Pipeline.Sorter = v
	}
	if v := os.Getenv(EnvExportDir); v != "" {
		c.Export.Dir = v
	}
}

// ApplyTo copies every set field onto opts. Names are parsed with the
// same aliases the command line accepts.
func (c *Config) ApplyTo(opts *pipeline.Options) error {
	if c.Pipeline.Classifier != "" {
		s, err := classify.Parse(c.Pipeline.Classifier)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfiguration, err, "pipeline.classifier")
		}
		opts.Classifier = s
	}
	if c.Pipeline.Sorter != "" {
		a, err := sorting.Parse(c.Pipeline.Sorter)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfiguration, err, "pipeline.sorter")
		}
		opts.Sorter = a
	}

	if c.Layout.Rows != 0 {
		opts.Layout.Rows = c.Layout.Rows
	}
	if c.Layout.Cols != 0 {
		opts.Layout.Cols = c.Layout.Cols
	}
	if c.Layout.Mode != "" {
		m, err := seatmap.ParseMode(c.Layout.Mode)
		if err != nil {
			return err
		}
		opts.Layout.Mode = m
	}
	if c.Layout.OddSide != "" {
		s, err := seatmap.ParseSide(c.Layout.OddSide)
		if err != nil {
			return err
		}
		opts.Layout.OddSide = s
	}

	if len(c.Export.Formats) > 0 {
		opts.Formats = c.Export.Formats
	}
	return nil
}
