package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ccff")).
		Bold(true)

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	ErrorText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444"))

	Selected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff00ff"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)
)

// SeriesStyles colour C1, C2, C3 blue, red and yellow.
var SeriesStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308")),
}

var SeriesNames = []string{"C1", "C2", "C3"}

func Legend() string {
	parts := make([]string, len(SeriesNames))
	for i, name := range SeriesNames {
		parts[i] = SeriesStyles[i].Render("■") + " " + name
	}
	return strings.Join(parts, "  ")
}

// KeyValue renders "label: value" with the shared label/value styles.
func KeyValue(label string, v float64) string {
	return Label.Render(label+":") + " " + Value.Render(fmt.Sprintf("%g", v))
}
