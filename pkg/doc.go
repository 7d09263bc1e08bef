// Package pkg provides the core libraries for seatsort.
//
// # Overview
//
// Seatsort splits a bounded dataset of integers into odd and even
// sequences, sorts both, and seats them on an exam seating grid so that
// neighbouring seats hold values of different parity. The pkg directory is
// organized into three areas:
//
//  1. Core - [dataset], [classify], [sorting] and [seatmap]
//  2. Collaborators - [source] (acquisition), [render] (display) and [io] (export)
//  3. Orchestration - [pipeline], configured by [config]
//
// # Architecture
//
// The typical data flow through seatsort:
//
//	manual entry / random generation / delimited file
//	         ↓
//	    [source] package (acquire values)
//	         ↓
//	    [dataset] package (capacity-checked container)
//	         ↓
//	    [classify] package (odd/even partition)
//	         ↓
//	    [sorting] package (quicksort or heapsort)
//	         ↓
//	    [seatmap] package (grid assignment)
//	         ↓
//	    [render] / [io] (ASCII, styled, CSV, JSON)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/seatsort/pkg/classify"
//	    "github.com/matzehuels/seatsort/pkg/dataset"
//	    "github.com/matzehuels/seatsort/pkg/render"
//	    "github.com/matzehuels/seatsort/pkg/seatmap"
//	    "github.com/matzehuels/seatsort/pkg/sorting"
//	)
//
//	// 1. Build and classify the dataset
//	ds, _ := dataset.New(values...)
//	if err := ds.Classify(classify.Partition); err != nil {
//	    return err
//	}
//
//	// 2. Sort both sequences
//	if err := ds.Sort(sorting.Quick); err != nil {
//	    return err
//	}
//
//	// 3. Seat them
//	grid, err := seatmap.Generate(ds.Odd(), ds.Even(), seatmap.Config{
//	    Mode:    seatmap.LeftRight,
//	    OddSide: seatmap.First,
//	})
//
//	// 4. Render
//	fmt.Print(render.ASCII(grid))
//
// Most callers use [pipeline.Runner], which runs the same stages with
// logging, hooks and run reports.
//
// # Error Handling
//
// Every package returns coded errors from [errors]. The core produces
// three codes: CAPACITY_EXCEEDED, INSUFFICIENT_DATA and
// INVALID_CONFIGURATION. Callers branch on codes with errors.Is(err, code)
// or on the package sentinels with the standard library's errors.Is.
//
// [dataset]: https://pkg.go.dev/github.com/matzehuels/seatsort/pkg/dataset
// [classify]: https://pkg.go.dev/github.com/matzehuels/seatsort/pkg/classify
// [sorting]: https://pkg.go.dev/github.com/matzehuels/seatsort/pkg/sorting
// [seatmap]: https://pkg.go.dev/github.com/matzehuels/seatsort/pkg/seatmap
// [source]: https://pkg.go.dev/github.com/matzehuels/seatsort/pkg/source
// [render]: https://pkg.go.dev/github.com/matzehuels/seatsort/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/seatsort/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/seatsort/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/seatsort/pkg/pipeline#Runner
// [config]: https://pkg.go.dev/github.com/matzehuels/seatsort/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/seatsort/pkg/errors
package pkg
