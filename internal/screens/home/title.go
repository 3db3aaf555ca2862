package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/keydrill/internal/ui/theme"
)

const titleFull = `█▄▀ █▀▀ █▄█ █▀▄ █▀█ █ █   █
█ █ ██▄  █  █▄▀ █▀▄ █ █▄▄ █▄▄`

const titleCompact = "K · E · Y · D · R · I · L · L"

const tagline = "Learn the shell shortcuts you keep forgetting."

// renderTitle returns the styled title block, or a one-line fallback on
// short terminals.
func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	block := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(art)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block + "\n\n" + theme.Dimmed.Render(tagline))
}
