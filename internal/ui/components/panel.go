package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/keydrill/internal/ui/theme"
)

// ContentWidth returns the inner width used for every panel on a screen,
// so stacked panels line up.
func ContentWidth(frameWidth int) int {
	// border (2) + padding (4)
	return min(max(frameWidth-6, 20), 72)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Panel wraps content in a rounded card of content width cw.
func Panel(content string, cw int) string {
	return theme.Card.
		Width(cw - 2).
		Render(content)
}

// HighlightPanel is a Panel whose border uses the given color.
func HighlightPanel(content string, cw int, border color.Color) string {
	return theme.Card.
		Width(cw - 2).
		BorderForeground(border).
		Render(content)
}
