package source

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/seatsort/pkg/dataset"
	apperrors "github.com/matzehuels/seatsort/pkg/errors"
)

// ReadDelimited reads integers separated by commas and/or line breaks.
//
// Each token is trimmed and its leading integer, if any, is taken, so
// "12 kg" reads as 12 and "n/a" is skipped. Reading stops after
// [dataset.MaxSize] values. Fewer than [dataset.MinSize] values is
// INSUFFICIENT_DATA. ReadDelimited does not close r.
func ReadDelimited(r io.Reader) ([]int, error) {
	var values []int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

scan:
	for sc.Scan() {
		for _, tok := range strings.Split(sc.Text(), ",") {
			v, ok := leadingInt(tok)
			if !ok {
				continue
			}
			values = append(values, v)
			if len(values) == dataset.MaxSize {
				break scan
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read delimited input")
	}

	if len(values) < dataset.MinSize {
		return nil, apperrors.Wrap(apperrors.ErrCodeInsufficientData, dataset.ErrInsufficientData,
			"read %d values, need at least %d", len(values), dataset.MinSize)
	}
	return values, nil
}

// ImportCSV reads a delimited integer file from path.
// This is a convenience wrapper around [ReadDelimited].
func ImportCSV(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadDelimited(f)
}

// leadingInt parses an optional sign followed by digits at the start of
// the trimmed token.
func leadingInt(tok string) (int, bool) {
	tok = strings.TrimSpace(tok)
	end := 0
	if end < len(tok) && (tok[end] == '+' || tok[end] == '-') {
		end++
	}
	digits := end
	for end < len(tok) && tok[end] >= '0' && tok[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(tok[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}
