// Package seatmap assigns two sorted sequences to the cells of a fixed
// capacity seating grid.
//
// # Layout modes
//
// In [LeftRight] mode the columns are split into a left and a right half of
// cols/2 columns each (with an odd column count the last column is never
// used). Rows are filled top to bottom; within each row the odd sequence's
// half is filled left to right, then the even sequence's half.
//
// In [FrontBack] mode the rows are split into a front and a back half of
// rows/2 rows each. The odd sequence fills its half row-major, then the even
// sequence fills the other half row-major.
//
// The odd-side preference ([First] or [Second]) selects which half (left or
// front for First, right or back for Second) receives the odd sequence.
//
// # Capacity
//
// Each sequence is consumed through a cursor that only moves forward. Once
// a sequence's region is full the remaining values are not placed. This is
// not an error: [Grid] reports how many values were dropped.
//
// # Dimensions
//
// Rows or columns left at zero are derived by [Config.Resolve]: left-right
// layouts use [DefaultColumns] columns and ceil(total/columns) rows,
// front-back layouts use [DefaultRows] rows and ceil(total/rows) columns.
// Derived values are clamped to [MaxRows] and [MaxCols].
package seatmap
