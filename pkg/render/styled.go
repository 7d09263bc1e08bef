package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/seatsort/pkg/classify"
	"github.com/matzehuels/seatsort/pkg/seatmap"
)

var (
	colorOdd   = lipgloss.Color("36")  // Teal - odd occupants
	colorEven  = lipgloss.Color("220") // Amber - even occupants
	colorLabel = lipgloss.Color("245") // Gray - front/rear labels
	colorDim   = lipgloss.Color("240") // Dim gray - empty seats, borders
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true)
	styleLabel  = lipgloss.NewStyle().Foreground(colorLabel).Italic(true)
	styleOdd    = lipgloss.NewStyle().Foreground(colorOdd)
	styleEven   = lipgloss.NewStyle().Foreground(colorEven)
	styleEmpty  = lipgloss.NewStyle().Foreground(colorDim)
	styleLegend = lipgloss.NewStyle().Foreground(colorLabel)

	styleFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// Styled renders g with lipgloss: a rounded frame, odd occupants in teal,
// even occupants in amber and empty seats dimmed. Colours are dropped
// automatically when the output is not a terminal.
func Styled(g *seatmap.Grid) string {
	cw := cellWidth(g)

	rows := make([]string, 0, g.Rows())
	for _, row := range g.Cells {
		cells := make([]string, len(row))
		for c, cell := range row {
			cells[c] = seatStyle(cell).Render(cellText(cell, cw))
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		styleTitle.Render(Title),
		"",
		styleLabel.Render(g.Config.FrontLabel()),
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		styleLabel.Render(g.Config.RearLabel()),
	)
	frame := styleFrame.Render(body)

	if g.Config.HasAisle() {
		legend := lipgloss.PlaceHorizontal(lipgloss.Width(frame), lipgloss.Center, styleLegend.Render(aisleLegend))
		frame = lipgloss.JoinVertical(lipgloss.Left, frame, legend)
	}
	return frame + "\n"
}

func seatStyle(cell seatmap.Cell) lipgloss.Style {
	switch {
	case !cell.Occupied:
		return styleEmpty
	case classify.IsOdd(cell.Value):
		return styleOdd
	default:
		return styleEven
	}
}
