// Package io exports seating results.
//
// # CSV Export
//
// [ExportCSV] writes three files into a directory:
//
//   - odd.csv: the sorted odd sequence on one comma-separated line
//   - even.csv: the sorted even sequence on one comma-separated line
//   - seat_map.csv: one line per grid row, one field per seat; empty
//     seats are written as empty fields so a seated 0 stays visible
//
// The file names can be changed through [Names]; they must be plain base
// names. [WriteSequenceCSV] and [WriteGridCSV] write the same formats to
// any io.Writer.
//
// # JSON Report
//
// [WriteJSON] encodes a [Report]: the run id, the strategies used, both
// sequences, the grid with its placement counts and the stage timings.
// [ReadJSON] decodes it again, which the HTTP API tests rely on.
//
//	err := io.ExportJSON(report, "run.json")
//
// # Concurrency
//
// All functions only read their arguments and can be called concurrently.
package io
