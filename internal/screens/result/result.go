package result

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/keydrill/internal/report"
	"github.com/abhisek/keydrill/internal/router"
	"github.com/abhisek/keydrill/internal/screen"
	"github.com/abhisek/keydrill/internal/session"
	"github.com/abhisek/keydrill/internal/ui/components"
	"github.com/abhisek/keydrill/internal/ui/layout"
)

const (
	buttonRetry = iota
	buttonHome
)

var (
	retryKey = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Retry"))
	homeKey  = key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Home"))
	pressKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Select"))
	leftKey  = key.NewBinding(key.WithKeys("left", "h", "shift+tab"))
	rightKey = key.NewBinding(key.WithKeys("right", "l", "tab"))
)

// ResultScreen shows the report of a completed run.
type ResultScreen struct {
	sess    *session.Session
	report  *report.Report
	buttons components.ButtonRow
	restart func() screen.Screen
	errMsg  string
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.StatusProvider = (*ResultScreen)(nil)

// New builds the report for the completed run in sess. restart creates the
// quiz screen used when the user retries.
func New(sess *session.Session, restart func() screen.Screen) *ResultScreen {
	return &ResultScreen{
		sess:    sess,
		report:  report.FromSession(sess),
		buttons: components.NewButtonRow("Retry", "Home"),
		restart: restart,
	}
}

// Report returns the report being displayed.
func (r *ResultScreen) Report() *report.Report {
	return r.report
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Results"
}

func (r *ResultScreen) Status() string {
	return r.report.Settings.CategoryLabel() + " · " + string(r.report.Settings.Difficulty)
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, 4)
	hints = append(hints, layout.KeyHint{Key: "←→", Description: "Choose"})
	for _, b := range []key.Binding{pressKey, retryKey, homeKey} {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch {
	case key.Matches(kmsg, leftKey):
		r.buttons = r.buttons.Move(-1)
	case key.Matches(kmsg, rightKey):
		r.buttons = r.buttons.Move(1)
	case key.Matches(kmsg, retryKey):
		return r, r.retry()
	case key.Matches(kmsg, homeKey):
		return r, r.home()
	case key.Matches(kmsg, pressKey):
		if r.buttons.Focused == buttonRetry {
			return r, r.retry()
		}
		return r, r.home()
	}
	return r, nil
}

// retry starts a new run with the same settings.
func (r *ResultScreen) retry() tea.Cmd {
	if err := r.sess.Start(); err != nil {
		r.errMsg = err.Error()
		return nil
	}
	next := r.restart()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (r *ResultScreen) home() tea.Cmd {
	r.sess.ResetToHome()
	return func() tea.Msg { return router.PopToRootMsg{} }
}
