package pipeline

import (
	"testing"

	"github.com/matzehuels/seatsort/pkg/classify"
	apperrors "github.com/matzehuels/seatsort/pkg/errors"
	"github.com/matzehuels/seatsort/pkg/seatmap"
	"github.com/matzehuels/seatsort/pkg/sorting"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"ascii", false},
		{"styled", false},
		{"json", false},
		{"svg", true},
		{"ASCII", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !apperrors.Is(err, apperrors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %q, want INVALID_FORMAT", tt.format, apperrors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"ascii", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"ascii", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}

	if opts.Classifier != classify.Partition {
		t.Errorf("Classifier = %q, want %q", opts.Classifier, classify.Partition)
	}
	if opts.Sorter != sorting.Quick {
		t.Errorf("Sorter = %q, want %q", opts.Sorter, sorting.Quick)
	}
	if opts.Layout.Mode != seatmap.LeftRight || opts.Layout.OddSide != seatmap.First {
		t.Errorf("Layout = %+v, want left-right/first", opts.Layout)
	}
	if opts.Layout.Rows != 0 || opts.Layout.Cols != 0 {
		t.Errorf("Layout dimensions should stay unspecified, got %dx%d", opts.Layout.Rows, opts.Layout.Cols)
	}
	if opts.Logger == nil {
		t.Error("Logger should be set")
	}
	if got := opts.String(); got != "partition/quick" {
		t.Errorf("String() = %q", got)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code apperrors.Code
	}{
		{"unknown classifier", Options{Classifier: "bogo"}, apperrors.ErrCodeInvalidConfiguration},
		{"unknown sorter", Options{Sorter: "bubble"}, apperrors.ErrCodeInvalidConfiguration},
		{"negative rows", Options{Layout: seatmap.Config{Rows: -2}}, apperrors.ErrCodeInvalidConfiguration},
		{"too many cols", Options{Layout: seatmap.Config{Cols: 33}}, apperrors.ErrCodeInvalidConfiguration},
		{"bad mode", Options{Layout: seatmap.Config{Mode: "zigzag"}}, apperrors.ErrCodeInvalidConfiguration},
		{"bad format", Options{Formats: []string{"pdf"}}, apperrors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apperrors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Classifier: classify.Stable, Formats: []string{FormatASCII}}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first call error = %v", err)
	}
	first := opts

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call error = %v", err)
	}
	if opts.Classifier != first.Classifier || opts.Sorter != first.Sorter || opts.Layout != first.Layout {
		t.Errorf("second call changed options: %+v -> %+v", first, opts)
	}
}
