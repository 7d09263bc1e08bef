package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/seatsort/pkg/classify"
	apperrors "github.com/matzehuels/seatsort/pkg/errors"
	seatio "github.com/matzehuels/seatsort/pkg/io"
	"github.com/matzehuels/seatsort/pkg/pipeline"
	"github.com/matzehuels/seatsort/pkg/seatmap"
	"github.com/matzehuels/seatsort/pkg/sorting"
	"github.com/matzehuels/seatsort/pkg/source"
)

const tomlConfig = `
[pipeline]
classifier = "3"
sorter = "heap"

[layout]
rows = 4
mode = "fb"
odd_side = "back"

[export]
dir = "out"
seats = "seats.csv"
formats = ["ascii", "json"]

[source]
kind = "random"
count = 50
min = -9
max = 9
seed = 11
`

const yamlConfig = `
pipeline:
  classifier: stable
layout:
  cols: 8
  mode: left-right
  odd_side: first
source:
  kind: csv
  path: data/scores.csv
`

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadTOML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "seatsort.toml", tomlConfig))
	require.NoError(t, err)

	assert.Equal(t, PipelineConfig{Classifier: "3", Sorter: "heap"}, cfg.Pipeline)
	assert.Equal(t, LayoutConfig{Rows: 4, Mode: "fb", OddSide: "back"}, cfg.Layout)
	assert.Equal(t, "out", cfg.Export.Dir)
	assert.Equal(t, seatio.Names{Odd: "odd.csv", Even: "even.csv", Seats: "seats.csv"}, cfg.Export.Names())
	assert.Equal(t, source.Options{Kind: source.KindRandom, Count: 50, Min: -9, Max: 9, Seed: 11}, cfg.Source)

	var opts pipeline.Options
	require.NoError(t, cfg.ApplyTo(&opts))
	assert.Equal(t, classify.TwoPointer, opts.Classifier)
	assert.Equal(t, sorting.Heap, opts.Sorter)
	assert.Equal(t, seatmap.Config{Rows: 4, Mode: seatmap.FrontBack, OddSide: seatmap.Second}, opts.Layout)
	assert.Equal(t, []string{"ascii", "json"}, opts.Formats)
	require.NoError(t, opts.ValidateAndSetDefaults())
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"seatsort.yaml", "seatsort.YML"} {
		cfg, err := Load(writeConfig(t, name, yamlConfig))
		require.NoError(t, err, name)
		assert.Equal(t, "stable", cfg.Pipeline.Classifier)
		assert.Equal(t, source.Options{Kind: source.KindCSV, Path: "data/scores.csv"}, cfg.Source)

		opts := pipeline.Options{Sorter: sorting.Heap}
		require.NoError(t, cfg.ApplyTo(&opts))
		assert.Equal(t, classify.Stable, opts.Classifier)
		assert.Equal(t, sorting.Heap, opts.Sorter, "unset keys keep existing values")
		assert.Equal(t, seatmap.Config{Cols: 8, Mode: seatmap.LeftRight, OddSide: seatmap.First}, opts.Layout)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Config{}, *cfg)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		code apperrors.Code
	}{
		{"unknown toml key", "a.toml", "[layout]\ncolumns = 3\n", apperrors.ErrCodeInvalidConfiguration},
		{"unknown yaml key", "a.yaml", "layout:\n  columns: 3\n", apperrors.ErrCodeInvalidConfiguration},
		{"bad toml", "a.toml", "[layout\n", apperrors.ErrCodeInvalidConfiguration},
		{"bad extension", "a.json", "{}", apperrors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.body))
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.GetCode(err), "err: %v", err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeFileNotFound))
}

func TestApplyToErrors(t *testing.T) {
	bad := []Config{
		{Pipeline: PipelineConfig{Classifier: "random"}},
		{Pipeline: PipelineConfig{Sorter: "merge"}},
		{Layout: LayoutConfig{Mode: "diagonal"}},
		{Layout: LayoutConfig{OddSide: "middle"}},
	}
	for _, cfg := range bad {
		var opts pipeline.Options
		err := cfg.ApplyTo(&opts)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidConfiguration), "%+v: %v", cfg, err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvClassifier, "partition")
	t.Setenv(EnvSorter, "2")
	t.Setenv(EnvExportDir, "/tmp/seats")

	cfg, err := Load(writeConfig(t, "seatsort.toml", tomlConfig))
	require.NoError(t, err)
	assert.Equal(t, "partition", cfg.Pipeline.Classifier)
	assert.Equal(t, "2", cfg.Pipeline.Sorter)
	assert.Equal(t, "/tmp/seats", cfg.Export.Dir)

	def := Default()
	var opts pipeline.Options
	require.NoError(t, def.ApplyTo(&opts))
	assert.Equal(t, classify.Partition, opts.Classifier)
	assert.Equal(t, sorting.Heap, opts.Sorter)
}
