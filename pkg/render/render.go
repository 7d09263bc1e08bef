package render

import (
	"fmt"
	"io"
	"strings"

	apperrors "github.com/matzehuels/seatsort/pkg/errors"
	"github.com/matzehuels/seatsort/pkg/seatmap"
)

// Title is printed at the top of every frame.
const Title = "Exam Seating"

// aisleLegend is printed under left-right layouts.
const aisleLegend = "Left   Aisle   Right"

// Format names a renderer.
type Format string

// Render formats.
const (
	FormatASCII  Format = "ascii"
	FormatStyled Format = "styled"
)

// ValidFormats is the set of supported render formats.
var ValidFormats = map[Format]bool{
	FormatASCII:  true,
	FormatStyled: true,
}

// Render writes g to w in format f.
func Render(w io.Writer, g *seatmap.Grid, f Format) error {
	var out string
	switch f {
	case FormatASCII:
		out = ASCII(g)
	case FormatStyled:
		out = Styled(g)
	default:
		return apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid render format %q (must be one of: ascii, styled)", f)
	}
	_, err := io.WriteString(w, out)
	return err
}

// cellWidth is the width of the widest occupied seat text, at least four.
func cellWidth(g *seatmap.Grid) int {
	w := 4
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Occupied {
				w = max(w, len(seatText(cell.Value)))
			}
		}
	}
	return w
}

func seatText(v int) string {
	return fmt.Sprintf("[%02d]", v)
}

// cellText renders one seat padded to width w.
func cellText(cell seatmap.Cell, w int) string {
	if cell.Occupied {
		return fmt.Sprintf("%*s", w, seatText(cell.Value))
	}
	return center("--", w)
}

// center pads s with spaces on both sides to width w, favouring the right.
func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	left := (w - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(s)-left)
}
