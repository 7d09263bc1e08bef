package io

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	apperrors "github.com/matzehuels/seatsort/pkg/errors"
	"github.com/matzehuels/seatsort/pkg/seatmap"
)

// Report is the JSON form of one pipeline run.
type Report struct {
	RunID      string        `json:"run_id"`
	Classifier string        `json:"classifier"`
	Sorter     string        `json:"sorter"`
	Count      int           `json:"count"`
	Odd        []int         `json:"odd"`
	Even       []int         `json:"even"`
	Grid       *seatmap.Grid `json:"grid,omitempty"`
	Timings    Timings       `json:"timings"`
}

// Timings holds stage durations in milliseconds.
type Timings struct {
	ClassifyMS float64 `json:"classify_ms"`
	SortMS     float64 `json:"sort_ms"`
	SeatMS     float64 `json:"seat_ms"`
	TotalMS    float64 `json:"total_ms"`
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// WriteJSON encodes r as indented JSON and writes it to w.
func WriteJSON(r Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a report written by [WriteJSON]. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return Report{}, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "decode report")
	}
	return rep, nil
}

// ExportJSON writes r to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(r Report, path string) error {
	return writeFile(path, func(w io.Writer) error { return WriteJSON(r, w) })
}
