package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	ContinuousStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	RowStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))

	Warning = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffaa00"))
)

// Metric is a labelled value in a summary panel.
type Metric struct {
	Label string
	Value string
}

// Summary renders a titled panel of aligned label/value pairs.
func Summary(title string, metrics []Metric) string {
	width := 0
	for _, m := range metrics {
		if len(m.Label) > width {
			width = len(m.Label)
		}
	}

	lines := make([]string, 0, len(metrics)+1)
	lines = append(lines, Title.Render(title))
	for _, m := range metrics {
		label := fmt.Sprintf("%-*s", width, m.Label)
		lines = append(lines, MetricLabel.Render(label)+"  "+MetricValue.Render(m.Value))
	}
	return Panel.Render(strings.Join(lines, "\n"))
}
