package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateCount checks that n lies in [lo, hi].
// Counts below lo are reported as INSUFFICIENT_DATA, counts above hi as
// CAPACITY_EXCEEDED, matching how the seating core classifies the two
// failures.
func ValidateCount(what string, n, lo, hi int) error {
	if n < lo {
		return New(ErrCodeInsufficientData, "%s: need at least %d values, have %d", what, lo, n)
	}
	if n > hi {
		return New(ErrCodeCapacityExceeded, "%s: at most %d values allowed, have %d", what, hi, n)
	}
	return nil
}

// ValidateDimension checks an explicit grid dimension.
// Zero means "unspecified" and is accepted; negative values and values
// above max are rejected.
func ValidateDimension(name string, v, max int) error {
	if v < 0 {
		return New(ErrCodeInvalidConfiguration, "%s must be positive, got %d", name, v)
	}
	if v > max {
		return New(ErrCodeInvalidConfiguration, "%s must be at most %d, got %d", name, max, v)
	}
	return nil
}

// ValidateFilename validates an export file name.
// It must be a plain base name: no separators, no traversal, no control
// characters.
func ValidateFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "file name cannot be empty")
	}
	if len(name) > 255 {
		return New(ErrCodeInvalidInput, "file name too long (max 255 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "file name contains invalid control characters")
		}
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return New(ErrCodeInvalidInput, "file name cannot contain path separators: %q", name)
	}
	if name == "." || name == ".." {
		return New(ErrCodeInvalidInput, "invalid file name: %q", name)
	}
	return nil
}
