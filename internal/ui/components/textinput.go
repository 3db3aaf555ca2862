package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// SearchInput wraps bubbles/textinput for live keyword filtering.
type SearchInput struct {
	Model textinput.Model
}

// NewSearchInput creates a focused search field.
func NewSearchInput(placeholder string, charLimit int) SearchInput {
	ti := textinput.New()
	ti.Prompt = "🔍 "
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()
	return SearchInput{Model: ti}
}

// Init returns the initial focus command.
func (s SearchInput) Init() tea.Cmd {
	return s.Model.Focus()
}

// Update forwards messages to the text input.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the text input.
func (s SearchInput) View() string {
	return s.Model.View()
}

// Value returns the current query.
func (s SearchInput) Value() string {
	return s.Model.Value()
}
