package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/keydrill/internal/router"
	"github.com/abhisek/keydrill/internal/screen"
	"github.com/abhisek/keydrill/internal/screens/home"
	"github.com/abhisek/keydrill/internal/screens/quiz"
	"github.com/abhisek/keydrill/internal/session"
	"github.com/abhisek/keydrill/internal/ui/layout"
)

var defaultHints = []layout.KeyHint{
	{Key: "↑↓", Description: "Navigate"},
	{Key: "Enter", Description: "Select"},
	{Key: "Ctrl+C", Description: "Quit"},
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// Options configures the TUI.
type Options struct {
	Session       *session.Session
	FeedbackDelay time.Duration

	// StartQuiz opens directly on the quiz. The session must already be
	// started; leaving the quiz returns to the home screen.
	StartQuiz bool
}

// newAppModel creates an AppModel with the home screen at the root.
func newAppModel(opts Options) AppModel {
	r := router.New(home.New(opts.Session, opts.FeedbackDelay))
	if opts.StartQuiz {
		r.Push(quiz.New(opts.Session, opts.FeedbackDelay))
	}
	return AppModel{router: r}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is left to the screens: the quiz asks before leaving.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	footerHints := defaultHints
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = append(kp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
