package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/weightstack/pkg/scene"
)

var (
	frameHeaderStyle    = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	frameContainerStyle = lipgloss.NewStyle().Foreground(colorCyan)
	frameLeafStyle      = lipgloss.NewStyle().Foreground(colorWhite)
	frameNumberStyle    = lipgloss.NewStyle().Foreground(colorGray)
)

// frameTable renders the frames of l, indenting IDs by depth.
func frameTable(l scene.Layout) string {
	rows := make([][]string, 0, len(l.Frames))
	for _, f := range l.Frames {
		rows = append(rows, []string{
			strings.Repeat("  ", f.Depth) + f.ID,
			formatNum(f.Weight),
			formatNum(f.X),
			formatNum(f.Y),
			formatNum(f.Width),
			formatNum(f.Height),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Node", "Weight", "X", "Y", "Width", "Height").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1: // header
				return frameHeaderStyle
			case col > 0:
				return frameNumberStyle
			case row < len(l.Frames) && l.Frames[row].Container:
				return frameContainerStyle
			default:
				return frameLeafStyle
			}
		})
	return t.Render()
}
