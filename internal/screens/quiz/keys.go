package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/keydrill/internal/ui/layout"
)

type keyMap struct {
	Choose  key.Binding
	Hint    key.Binding
	Next    key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

var keys = keyMap{
	Choose: key.NewBinding(
		key.WithKeys("1", "2", "3", "4"),
		key.WithHelp("1-4", "Answer"),
	),
	Hint: key.NewBinding(
		key.WithKeys("h", "?"),
		key.WithHelp("h", "Hint"),
	),
	Next: key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "Next"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Quit"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("Y", "End quiz"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("N", "Keep going"),
	),
}

func hintFor(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}
