package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/keydrill/internal/ui/theme"
)

// ChoiceMsg reports the option the user picked.
type ChoiceMsg struct {
	Index int
}

// MultiChoice is a numbered option list. It only picks an option; judging
// the answer is up to the caller, which then calls Reveal.
type MultiChoice struct {
	Options  []string
	Cursor   int
	revealed bool
	chosen   int
	correct  int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		chosen:  -1,
		correct: -1,
	}
}

// Update handles arrows, enter and the digit keys 1-9.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch s := kmsg.String(); s {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter":
		return m, choose(m.Cursor)
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			idx := int(s[0] - '1')
			if idx < len(m.Options) {
				m.Cursor = idx
				return m, choose(idx)
			}
		}
	}

	return m, nil
}

func choose(idx int) tea.Cmd {
	return func() tea.Msg { return ChoiceMsg{Index: idx} }
}

// Reveal freezes the list and colors the chosen and correct options.
func (m *MultiChoice) Reveal(chosen, correct int) {
	m.revealed = true
	m.chosen = chosen
	m.correct = correct
}

// Revealed reports whether Reveal has been called.
func (m MultiChoice) Revealed() bool {
	return m.revealed
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case m.revealed && i == m.correct:
			line = theme.Correct.Render(line + "  ✓")
		case m.revealed && i == m.chosen:
			line = theme.Incorrect.Render(line + "  ✗")
		case m.revealed:
			line = theme.Dimmed.Render(line)
		case i == m.Cursor:
			line = theme.Selected.Render(line)
		default:
			line = theme.Unselected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
