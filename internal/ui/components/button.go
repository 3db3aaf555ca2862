package components

import (
	"strings"

	"github.com/abhisek/keydrill/internal/ui/theme"
)

// ButtonRow is a horizontal row of buttons with one focused.
type ButtonRow struct {
	Labels  []string
	Focused int
}

// NewButtonRow creates a row with the first button focused.
func NewButtonRow(labels ...string) ButtonRow {
	return ButtonRow{Labels: labels}
}

// Move shifts focus by delta, clamped to the row.
func (b ButtonRow) Move(delta int) ButtonRow {
	b.Focused = min(max(b.Focused+delta, 0), len(b.Labels)-1)
	return b
}

// View renders the buttons.
func (b ButtonRow) View() string {
	parts := make([]string, len(b.Labels))
	for i, label := range b.Labels {
		if i == b.Focused {
			parts[i] = theme.ButtonActive.Render("▸ " + label)
		} else {
			parts[i] = theme.ButtonInactive.Render("  " + label)
		}
	}
	return strings.Join(parts, "  ")
}
