package io

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	apperrors "github.com/matzehuels/seatsort/pkg/errors"
	"github.com/matzehuels/seatsort/pkg/seatmap"
)

// Default export file names.
const (
	DefaultOddFile   = "odd.csv"
	DefaultEvenFile  = "even.csv"
	DefaultSeatsFile = "seat_map.csv"
)

// Names holds the three export file names.
type Names struct {
	Odd   string `json:"odd" toml:"odd" yaml:"odd"`
	Even  string `json:"even" toml:"even" yaml:"even"`
	Seats string `json:"seats" toml:"seats" yaml:"seats"`
}

// SetDefaults fills in empty names.
func (n *Names) SetDefaults() {
	if n.Odd == "" {
		n.Odd = DefaultOddFile
	}
	if n.Even == "" {
		n.Even = DefaultEvenFile
	}
	if n.Seats == "" {
		n.Seats = DefaultSeatsFile
	}
}

// Validate checks that every name is a plain, distinct file name.
func (n Names) Validate() error {
	for _, name := range []string{n.Odd, n.Even, n.Seats} {
		if err := apperrors.ValidateFilename(name); err != nil {
			return err
		}
	}
	if n.Odd == n.Even || n.Odd == n.Seats || n.Even == n.Seats {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "export file names must be distinct")
	}
	return nil
}

// WriteSequenceCSV writes values to w as one comma-separated line.
// An empty sequence writes nothing.
func WriteSequenceCSV(w io.Writer, values []int) error {
	if len(values) == 0 {
		return nil
	}
	record := make([]string, len(values))
	for i, v := range values {
		record[i] = strconv.Itoa(v)
	}
	return writeRecords(w, [][]string{record})
}

// WriteGridCSV writes one line per grid row. Empty seats become empty
// fields.
func WriteGridCSV(w io.Writer, g *seatmap.Grid) error {
	records := make([][]string, 0, g.Rows())
	for _, row := range g.Cells {
		record := make([]string, len(row))
		for c, cell := range row {
			if cell.Occupied {
				record[c] = strconv.Itoa(cell.Value)
			}
		}
		records = append(records, record)
	}
	return writeRecords(w, records)
}

func writeRecords(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// ExportCSV writes the odd, even and seat map files into dir, creating it
// if needed, and returns the written paths in that order.
func ExportCSV(dir string, names Names, odd, even []int, g *seatmap.Grid) ([]string, error) {
	names.SetDefaults()
	if err := names.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{names.Odd, func(w io.Writer) error { return WriteSequenceCSV(w, odd) }},
		{names.Even, func(w io.Writer) error { return WriteSequenceCSV(w, even) }},
		{names.Seats, func(w io.Writer) error { return WriteGridCSV(w, g) }},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeFile(path, f.write); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
