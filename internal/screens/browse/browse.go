// Package browse lists the catalog with a live keyword filter.
package browse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/keydrill/internal/catalog"
	"github.com/abhisek/keydrill/internal/router"
	"github.com/abhisek/keydrill/internal/screen"
	"github.com/abhisek/keydrill/internal/ui/components"
	"github.com/abhisek/keydrill/internal/ui/layout"
	"github.com/abhisek/keydrill/internal/ui/theme"
)

// BrowseScreen shows catalog entries matching the search field.
type BrowseScreen struct {
	catalog *catalog.Catalog
	input   components.SearchInput
	matches []catalog.Shortcut
	cursor  int
	offset  int
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)
var _ screen.StatusProvider = (*BrowseScreen)(nil)

// New creates a browse screen over cat with an empty query.
func New(cat *catalog.Catalog) *BrowseScreen {
	b := &BrowseScreen{
		catalog: cat,
		input:   components.NewSearchInput("Search keys, actions, tips...", 40),
	}
	b.filter()
	return b
}

func (b *BrowseScreen) filter() {
	b.matches = b.catalog.Search(b.input.Value())
	b.cursor = min(b.cursor, max(len(b.matches)-1, 0))
	b.offset = min(b.offset, b.cursor)
}

// Matches returns the entries currently listed.
func (b *BrowseScreen) Matches() []catalog.Shortcut {
	return b.matches
}

func (b *BrowseScreen) Init() tea.Cmd {
	return b.input.Init()
}

func (b *BrowseScreen) Title() string {
	return "Browse"
}

func (b *BrowseScreen) Status() string {
	return fmt.Sprintf("%d/%d", len(b.matches), b.catalog.Len())
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "type", Description: "Filter"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return b, func() tea.Msg { return router.PopScreenMsg{} }
		case "up":
			b.cursor = max(b.cursor-1, 0)
			return b, nil
		case "down":
			b.cursor = min(b.cursor+1, max(len(b.matches)-1, 0))
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	b.filter()
	return b, cmd
}

func (b *BrowseScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	// Rows available after the search field, detail card and spacing.
	rows := max(height-16, 3)
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+rows {
		b.offset = b.cursor - rows + 1
	}

	var list strings.Builder
	if len(b.matches) == 0 {
		list.WriteString(theme.Dimmed.Render("No shortcuts match."))
	}
	end := min(b.offset+rows, len(b.matches))
	for i := b.offset; i < end; i++ {
		s := b.matches[i]
		line := fmt.Sprintf("%s %-28s %s", s.CategoryIcon, s.Key, s.Action)
		line = lipgloss.NewStyle().MaxWidth(cw - 16).Render(line)
		badge := difficultyBadge(catalog.DifficultyOf(s.Key))
		if i == b.cursor {
			list.WriteString(theme.Selected.Render("▸ "+line) + "  " + badge)
		} else {
			list.WriteString(theme.Unselected.Render("  "+line) + "  " + badge)
		}
		if i < end-1 {
			list.WriteString("\n")
		}
	}

	sections := []string{
		b.input.View(),
		components.Panel(list.String(), cw),
	}
	if len(b.matches) > 0 {
		sections = append(sections, renderDetail(b.matches[b.cursor], cw))
	}
	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

func renderDetail(s catalog.Shortcut, cw int) string {
	var d strings.Builder
	d.WriteString(theme.KeyCap.Render(s.Key))
	d.WriteString("  ")
	d.WriteString(theme.Section.Render(s.Action))
	d.WriteString("\n")
	d.WriteString(theme.Body.Render(s.Description))
	if s.Tips != "" {
		d.WriteString("\n")
		d.WriteString(theme.Hint.Render("Tip: " + s.Tips))
	}
	return components.Panel(d.String(), cw)
}

func difficultyBadge(d catalog.Difficulty) string {
	switch d {
	case catalog.DifficultyEasy:
		return theme.Correct.Render("easy")
	case catalog.DifficultyHard:
		return theme.Incorrect.Render("hard")
	default:
		return lipgloss.NewStyle().Foreground(theme.Accent).Render("medium")
	}
}
