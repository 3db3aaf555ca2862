package home

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/keydrill/internal/catalog"
	"github.com/abhisek/keydrill/internal/router"
	"github.com/abhisek/keydrill/internal/screen"
	"github.com/abhisek/keydrill/internal/screens/browse"
	"github.com/abhisek/keydrill/internal/screens/quiz"
	"github.com/abhisek/keydrill/internal/session"
	"github.com/abhisek/keydrill/internal/ui/components"
	"github.com/abhisek/keydrill/internal/ui/layout"
	"github.com/abhisek/keydrill/internal/ui/theme"
)

// Menu rows.
const (
	itemDifficulty = iota
	itemCategory
	itemCount
	itemStart
	itemBrowse
	itemQuit
)

var defaultCounts = []int{5, 10, 15, 20, 30}

// HomeScreen lets the user pick quiz settings and start a run.
type HomeScreen struct {
	sess          *session.Session
	feedbackDelay time.Duration
	menu          components.Menu
	counts        []int
	errMsg        string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates the home screen for sess. feedbackDelay is passed on to the
// quiz screen.
func New(sess *session.Session, feedbackDelay time.Duration) *HomeScreen {
	h := &HomeScreen{
		sess:          sess,
		feedbackDelay: feedbackDelay,
	}
	h.menu = h.buildMenu()
	return h
}

func (h *HomeScreen) buildMenu() components.Menu {
	s := h.sess.Settings()

	h.counts = slices.Clone(defaultCounts)
	if !slices.Contains(h.counts, s.QuestionCount) {
		h.counts = append(h.counts, s.QuestionCount)
		slices.Sort(h.counts)
	}
	countLabels := make([]string, len(h.counts))
	for i, c := range h.counts {
		countLabels[i] = strconv.Itoa(c)
	}

	difficulties := catalog.AllDifficulties()
	diffLabels := make([]string, len(difficulties))
	for i, d := range difficulties {
		diffLabels[i] = string(d)
	}

	catLabels := []string{"All categories"}
	for _, c := range catalog.Categories() {
		catLabels = append(catLabels, c.Icon+" "+c.DisplayName)
	}
	catChoice := 0
	if s.Category != "" {
		catChoice = s.Category.Order() + 1
	}

	items := make([]components.MenuItem, itemQuit+1)
	items[itemDifficulty] = components.MenuItem{
		Label:   "Difficulty",
		Choices: diffLabels,
		Choice:  max(slices.Index(difficulties, s.Difficulty), 0),
	}
	items[itemCategory] = components.MenuItem{
		Label:   "Category",
		Choices: catLabels,
		Choice:  catChoice,
	}
	items[itemCount] = components.MenuItem{
		Label:   "Questions",
		Choices: countLabels,
		Choice:  slices.Index(h.counts, s.QuestionCount),
	}
	items[itemStart] = components.MenuItem{Label: "Start quiz", Action: h.start}
	items[itemBrowse] = components.MenuItem{Label: "Browse shortcuts", Action: h.browse}
	items[itemQuit] = components.MenuItem{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }}

	m := components.NewMenu(items)
	m.Selected = itemStart
	return m
}

// selectedSettings reads the settings currently chosen in the menu.
func (h *HomeScreen) selectedSettings() session.Settings {
	items := h.menu.Items
	s := session.Settings{
		Difficulty:    catalog.AllDifficulties()[items[itemDifficulty].Choice],
		QuestionCount: h.counts[items[itemCount].Choice],
	}
	if c := items[itemCategory].Choice; c > 0 {
		s.Category = catalog.AllCategories()[c-1]
	}
	return s
}

func (h *HomeScreen) start() tea.Cmd {
	if err := h.sess.UpdateSettings(h.selectedSettings()); err != nil {
		h.errMsg = err.Error()
		return nil
	}
	if err := h.sess.Start(); err != nil {
		if errors.Is(err, session.ErrNoQuestions) {
			h.errMsg = "No shortcuts match this difficulty and category. Try another combination."
		} else {
			h.errMsg = err.Error()
		}
		return nil
	}
	h.errMsg = ""

	next := quiz.New(h.sess, h.feedbackDelay)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (h *HomeScreen) browse() tea.Cmd {
	next := browse.New(h.sess.Catalog())
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume rebuilds the menu from the retained settings when the user comes
// back from a run.
func (h *HomeScreen) Resume() tea.Cmd {
	selected := h.menu.Selected
	h.menu = h.buildMenu()
	h.menu.Selected = selected
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// Status shows the catalog size in the header.
func (h *HomeScreen) Status() string {
	return fmt.Sprintf("%d shortcuts", h.sess.Catalog().Len())
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q":
			return h, tea.Quit
		case "left", "right", "h", "l":
			h.errMsg = ""
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 24
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		components.Panel(h.menu.View(), cw),
	}

	s := h.selectedSettings()
	pool := len(session.Filter(h.sess.Catalog().All(), s.Difficulty, s.Category))
	sections = append(sections, theme.Dimmed.Render(
		fmt.Sprintf("%d shortcuts match · %d will be asked", pool, min(pool, s.QuestionCount))))

	if h.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(h.errMsg))
	}

	return components.Center(strings.Join(sections, "\n\n"), width, height)
}
