package seatmap

import (
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/matzehuels/seatsort/pkg/errors"
)

// Grid bounds and derivation defaults.
const (
	MaxRows = 32
	MaxCols = 32

	// DefaultColumns is the column count derived for left-right layouts.
	DefaultColumns = 6

	// DefaultRows is the row count derived for front-back layouts.
	DefaultRows = 2
)

// Mode selects how the grid is split between the two sequences.
type Mode string

// Layout modes.
const (
	LeftRight Mode = "left-right"
	FrontBack Mode = "front-back"
)

// Side selects which half of the grid receives the odd sequence.
type Side string

// Odd-side preferences.
const (
	First  Side = "first"  // left half or front half
	Second Side = "second" // right half or back half
)

// Sentinel errors wrapped by the INVALID_CONFIGURATION errors of this package.
var (
	ErrInvalidMode      = errors.New("seatmap: invalid layout mode")
	ErrInvalidSide      = errors.New("seatmap: invalid odd side")
	ErrInvalidDimension = errors.New("seatmap: invalid grid dimension")
)

// Config describes a seating layout. Zero Rows or Cols means "derive it".
type Config struct {
	Rows    int  `json:"rows" toml:"rows" yaml:"rows"`
	Cols    int  `json:"cols" toml:"cols" yaml:"cols"`
	Mode    Mode `json:"mode" toml:"mode" yaml:"mode"`
	OddSide Side `json:"odd_side" toml:"odd_side" yaml:"odd_side"`
}

// ParseMode accepts a mode name, a short alias ("lr", "fb") or the menu
// index ("0" for left-right, "1" for front-back).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "lr", "left-right", "leftright":
		return LeftRight, nil
	case "1", "fb", "front-back", "frontback":
		return FrontBack, nil
	}
	return "", apperrors.Wrap(apperrors.ErrCodeInvalidConfiguration, ErrInvalidMode,
		"%q (must be one of: left-right, front-back)", s)
}

// ParseSide accepts a side name, a positional alias or the menu index
// ("0" for first, "1" for second).
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "first", "left", "front":
		return First, nil
	case "1", "second", "right", "back", "rear":
		return Second, nil
	}
	return "", apperrors.Wrap(apperrors.ErrCodeInvalidConfiguration, ErrInvalidSide,
		"%q (must be one of: first, second)", s)
}

// Validate checks the mode, the odd side and any explicit dimension.
func (c Config) Validate() error {
	if c.Mode != LeftRight && c.Mode != FrontBack {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfiguration, ErrInvalidMode, "%q", c.Mode)
	}
	if c.OddSide != First && c.OddSide != Second {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfiguration, ErrInvalidSide, "%q", c.OddSide)
	}
	if err := apperrors.ValidateDimension("rows", c.Rows, MaxRows); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDimension, err)
	}
	if err := apperrors.ValidateDimension("cols", c.Cols, MaxCols); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDimension, err)
	}
	return nil
}

// Resolved reports whether both dimensions are set.
func (c Config) Resolved() bool { return c.Rows > 0 && c.Cols > 0 }

// Resolve validates c and, when either dimension is unspecified, derives
// both from total (the number of values to seat).
func (c Config) Resolve(total int) (Config, error) {
	if err := c.Validate(); err != nil {
		return c, err
	}
	if c.Resolved() {
		return c, nil
	}

	switch c.Mode {
	case LeftRight:
		c.Cols = DefaultColumns
		c.Rows = ceilDiv(total, c.Cols)
	case FrontBack:
		c.Rows = DefaultRows
		c.Cols = ceilDiv(total, c.Rows)
	}
	c.Rows = clamp(c.Rows, 1, MaxRows)
	c.Cols = clamp(c.Cols, 1, MaxCols)
	return c, nil
}

// Capacity returns rows*cols for a resolved config.
func (c Config) Capacity() int { return c.Rows * c.Cols }

// FrontLabel is the label printed above the grid.
//
// In front-back mode with the odd side set to Second the two labels trade
// places. Only the labels move; cell placement is decided by Generate.
func (c Config) FrontLabel() string {
	if c.Mode == FrontBack && c.OddSide == Second {
		return "Rear"
	}
	return "Front"
}

// RearLabel is the label printed below the grid.
func (c Config) RearLabel() string {
	if c.Mode == FrontBack && c.OddSide == Second {
		return "Front"
	}
	return "Rear"
}

// HasAisle reports whether the layout is drawn with a central aisle.
func (c Config) HasAisle() bool { return c.Mode == LeftRight }

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
