package quiz

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/keydrill/internal/router"
	"github.com/abhisek/keydrill/internal/screen"
	"github.com/abhisek/keydrill/internal/screens/result"
	"github.com/abhisek/keydrill/internal/session"
	"github.com/abhisek/keydrill/internal/ui/components"
	"github.com/abhisek/keydrill/internal/ui/layout"
)

// QuizScreen shows the questions of a started session one at a time.
type QuizScreen struct {
	sess          *session.Session
	feedbackDelay time.Duration
	choices       components.MultiChoice
	confirming    bool

	// pending holds an auto-advance that fired while the quit dialog was
	// open. It is rescheduled if the user keeps going.
	pending *session.AdvanceToken
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a quiz screen for sess, which must already be started.
// A zero feedbackDelay disables the automatic advance.
func New(sess *session.Session, feedbackDelay time.Duration) *QuizScreen {
	q := &QuizScreen{
		sess:          sess,
		feedbackDelay: feedbackDelay,
	}
	q.loadQuestion()
	return q
}

func (q *QuizScreen) loadQuestion() {
	cur, ok := q.sess.CurrentQuestion()
	if !ok {
		q.choices = components.NewMultiChoice(nil)
		return
	}
	opts := make([]string, len(cur.Options))
	for i, o := range cur.Options {
		opts[i] = o.Text
	}
	q.choices = components.NewMultiChoice(opts)
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

// Status shows the running score.
func (q *QuizScreen) Status() string {
	results := q.sess.Results()
	correct := 0
	for _, r := range results {
		if r.Correct {
			correct++
		}
	}
	return fmt.Sprintf("✓ %d/%d", correct, len(results))
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.confirming {
		return []layout.KeyHint{hintFor(keys.Confirm), hintFor(keys.Cancel)}
	}
	if q.sess.Phase() == session.PhaseAnswered {
		return []layout.KeyHint{hintFor(keys.Next), hintFor(keys.Quit)}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		hintFor(keys.Choose),
		hintFor(keys.Hint),
		hintFor(keys.Quit),
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ChoiceMsg:
		return q.answer(msg.Index)

	case advanceMsg:
		if q.confirming {
			t := msg.token
			q.pending = &t
			return q, nil
		}
		if !q.sess.AdvanceWith(msg.token) {
			return q, nil
		}
		return q.afterAdvance()

	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.confirming {
		switch {
		case key.Matches(msg, keys.Confirm):
			q.confirming = false
			q.pending = nil
			q.sess.ResetToHome()
			return q, func() tea.Msg { return router.PopToRootMsg{} }
		case key.Matches(msg, keys.Cancel):
			q.confirming = false
			if q.pending != nil {
				t := *q.pending
				q.pending = nil
				return q, q.scheduleAdvance(t)
			}
		}
		return q, nil
	}

	if key.Matches(msg, keys.Quit) {
		q.confirming = true
		return q, nil
	}

	switch q.sess.Phase() {
	case session.PhaseAnswered:
		if key.Matches(msg, keys.Next) && q.sess.Advance() {
			return q.afterAdvance()
		}
		return q, nil

	case session.PhaseAwaitingAnswer:
		if key.Matches(msg, keys.Hint) {
			q.sess.UseHint()
			return q, nil
		}
		var cmd tea.Cmd
		q.choices, cmd = q.choices.Update(msg)
		return q, cmd
	}

	return q, nil
}

// answer scores the picked option and schedules the automatic advance.
func (q *QuizScreen) answer(index int) (screen.Screen, tea.Cmd) {
	if !q.sess.SubmitAnswer(index) {
		return q, nil
	}
	fb := q.sess.Feedback()
	q.choices.Reveal(fb.SelectedIndex, fb.CorrectIndex)

	token, ok := q.sess.AdvanceToken()
	if !ok {
		return q, nil
	}
	return q, q.scheduleAdvance(token)
}

func (q *QuizScreen) scheduleAdvance(t session.AdvanceToken) tea.Cmd {
	if q.feedbackDelay <= 0 {
		return nil
	}
	return tea.Tick(q.feedbackDelay, func(time.Time) tea.Msg {
		return advanceMsg{token: t}
	})
}

// afterAdvance shows the next question or hands over to the result screen.
func (q *QuizScreen) afterAdvance() (screen.Screen, tea.Cmd) {
	if q.sess.Page() == session.PageResult {
		sess, delay := q.sess, q.feedbackDelay
		next := result.New(sess, func() screen.Screen { return New(sess, delay) })
		return q, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	q.loadQuestion()
	return q, nil
}
