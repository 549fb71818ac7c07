package heatmap

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const terminalCellWidth = 6

// RenderTerminal draws the grid as colored text. Columns are numbered and
// a legend maps the numbers back to contestant names, since terminal
// column headers cannot be rotated.
func RenderTerminal(g *Grid, r *lipgloss.Renderer) string {
	n := g.Size()
	labelWidth := max(longestLabel(g.Labels), len("Black player"))
	rowPrefix := fmt.Sprintf("%*s ", labelWidth, "")

	axisStyle := r.NewStyle().Bold(true)
	labelStyle := r.NewStyle().Width(labelWidth).Align(lipgloss.Right)
	headerStyle := r.NewStyle().Width(terminalCellWidth).Align(lipgloss.Center).Faint(true)

	var lines []string
	lines = append(lines, rowPrefix+axisStyle.Render("White player →"))

	header := make([]string, n)
	for j := range n {
		header[j] = headerStyle.Render(fmt.Sprint(j + 1))
	}
	lines = append(lines, labelStyle.Render(axisStyle.Render("Black player"))+" "+strings.Join(header, ""))

	for i, label := range g.Labels {
		cells := make([]string, n)
		for j := range n {
			cells[j] = renderCell(r, g.Cell(i, j))
		}
		lines = append(lines, labelStyle.Render(label)+" "+strings.Join(cells, ""))
	}

	lines = append(lines, "")
	for j, label := range g.Labels {
		lines = append(lines, fmt.Sprintf("%s%3d  %s", rowPrefix, j+1, label))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCell(r *lipgloss.Renderer, c Cell) string {
	return r.NewStyle().
		Width(terminalCellWidth).
		Align(lipgloss.Center).
		Background(lipgloss.Color(GrayHex(c.Shade))).
		Foreground(lipgloss.Color(c.Ink.Hex())).
		Render(c.Text)
}
