package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/keydrill/internal/ui/theme"
)

// ProgressBar displays a horizontal bar with an optional right-hand label.
type ProgressBar struct {
	Label   string
	Percent float64 // 0-100
	Suffix  string
	Width   int
}

// NewProgressBar creates a progress bar. An empty suffix shows the percent.
func NewProgressBar(label string, percent float64, suffix string, width int) ProgressBar {
	if suffix == "" {
		suffix = fmt.Sprintf("%3.0f%%", percent)
	}
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Suffix:  suffix,
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var left string
	if p.Label != "" {
		left = theme.Body.Render(p.Label) + "  "
	}
	right := "  " + theme.Dimmed.Render(p.Suffix)

	barWidth := max(p.Width-lipgloss.Width(left)-lipgloss.Width(right), 4)
	filled := min(max(int(float64(barWidth)*p.Percent/100), 0), barWidth)

	return left +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		right
}
