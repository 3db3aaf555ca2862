package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/keydrill/internal/ui/theme"
)

// MenuItem is a single row of a Menu. Items with Choices are adjusted with
// left/right; items with an Action fire on enter.
type MenuItem struct {
	Label    string
	Choices  []string
	Choice   int
	Action   func() tea.Cmd
	Disabled bool
}

// Value returns the selected choice, or "" for plain items.
func (i MenuItem) Value() string {
	if len(i.Choices) == 0 {
		return ""
	}
	return i.Choices[i.Choice]
}

// Menu is a vertical menu of actions and adjustable settings.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "left", "h":
		m.cycle(-1)
	case "right", "l":
		m.cycle(1)
	case "enter":
		item := m.Items[m.Selected]
		if item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
		m.cycle(1)
	}

	return m, nil
}

func (m *Menu) cycle(delta int) {
	item := &m.Items[m.Selected]
	n := len(item.Choices)
	if n == 0 || item.Disabled {
		return
	}
	item.Choice = (item.Choice + delta + n) % n
}

// View renders the menu.
func (m Menu) View() string {
	labelWidth := 0
	for _, item := range m.Items {
		labelWidth = max(labelWidth, lipgloss.Width(item.Label))
	}

	var b strings.Builder
	for i, item := range m.Items {
		label := item.Label
		if len(item.Choices) > 0 {
			label += strings.Repeat(" ", labelWidth-lipgloss.Width(item.Label)) + "   ◂ " + item.Value() + " ▸"
		}

		switch {
		case item.Disabled:
			b.WriteString(theme.Dimmed.Render("    " + label))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ " + label))
		default:
			b.WriteString(theme.Unselected.Render("    " + label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
