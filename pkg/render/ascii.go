package render

import (
	"strings"

	"github.com/matzehuels/seatsort/pkg/seatmap"
)

// ASCII renders g as a plain-text frame.
//
//	+-------------------------------+
//	|         Exam Seating          |
//	+-------------------------------+
//	|             Front             |
//	| [01] [03] [05] [02] [04]  --  |
//	|             Rear              |
//	+-------------------------------+
//	      Left   Aisle   Right
func ASCII(g *seatmap.Grid) string {
	cw := cellWidth(g)
	inner := max(1+g.Cols()*(cw+1), len(Title)+2)
	rule := "+" + strings.Repeat("-", inner) + "+\n"

	var b strings.Builder
	b.WriteString(rule)
	b.WriteString("|" + center(Title, inner) + "|\n")
	b.WriteString(rule)
	b.WriteString("|" + center(g.Config.FrontLabel(), inner) + "|\n")

	for _, row := range g.Cells {
		line := " "
		for _, cell := range row {
			line += cellText(cell, cw) + " "
		}
		b.WriteString("|" + line + strings.Repeat(" ", inner-len(line)) + "|\n")
	}

	b.WriteString("|" + center(g.Config.RearLabel(), inner) + "|\n")
	b.WriteString(rule)
	if g.Config.HasAisle() {
		b.WriteString(strings.TrimRight(center(aisleLegend, inner+2), " ") + "\n")
	}
	return b.String()
}
