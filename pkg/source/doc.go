// Package source acquires raw integer datasets.
//
// Three acquisition paths are supported:
//
//   - [Manual]: a count followed by that many integers, read from any
//     io.Reader (the terminal in the interactive menu)
//   - [Random]: n uniformly distributed values in a closed range
//   - [ReadDelimited] / [ImportCSV]: integers separated by commas and/or
//     line breaks
//
// Every path yields between [dataset.MinSize] and [dataset.MaxSize] values
// or fails. Manual and random acquisition reject out-of-range counts up
// front with INVALID_INPUT. Delimited import is lenient: tokens that do not
// start with an integer are skipped, reading stops once the capacity is
// reached, and a file with too few values is INSUFFICIENT_DATA.
//
// [Load] dispatches on [Options] so the CLI, the config file and the HTTP
// API share one entry point.
package source
