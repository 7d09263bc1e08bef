// Package render draws seat grids for terminals.
//
// # Overview
//
// Two renderers produce the same picture:
//
//   - [ASCII]: plain text, safe for logs, files and pipes
//   - [Styled]: lipgloss borders and colours, odd and even occupants in
//     different colours
//
// Both draw a titled frame, the front label above the grid and the rear
// label below it. Occupied seats show as [NN] (zero padded to two digits)
// and empty seats as --. Left-right layouts get an aisle legend under the
// frame.
//
// # Labels
//
// Labels come from [seatmap.Config.FrontLabel] and
// [seatmap.Config.RearLabel]. In front-back mode with the odd side set to
// second the two labels trade places; this is cosmetic and independent of
// which rows the odd values were seated in.
//
// # Tables
//
// [Table] renders rows of text with the rounded lipgloss table style used
// by the CLI for strategy and timing summaries.
package render
