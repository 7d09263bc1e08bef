package source

import (
	"bufio"
	"io"
	"strconv"

	apperrors "github.com/matzehuels/seatsort/pkg/errors"
)

// Manual reads a count n followed by n integers, separated by any
// whitespace. Input after the n-th value is left unread.
func Manual(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n, err := nextInt(sc, "count")
	if err != nil {
		return nil, err
	}
	if err := validateCount(n); err != nil {
		return nil, err
	}

	values := make([]int, n)
	for i := range values {
		if values[i], err = nextInt(sc, "value "+strconv.Itoa(i+1)); err != nil {
			return nil, err
		}
	}
	return values, nil
}

// Parse converts tokens to integers. Unlike delimited import it is strict:
// the first bad token fails the whole call.
func Parse(tokens []string) ([]int, error) {
	values := make([]int, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "token %d: %q is not an integer", i+1, tok)
		}
		values[i] = v
	}
	return values, nil
}

func nextInt(sc *bufio.Scanner, what string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read %s", what)
		}
		return 0, apperrors.New(apperrors.ErrCodeInvalidInput, "read %s: unexpected end of input", what)
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read %s: %q is not an integer", what, sc.Text())
	}
	return v, nil
}
