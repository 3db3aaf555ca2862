package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/keydrill/internal/catalog"
	"github.com/abhisek/keydrill/internal/screens/quiz"
	"github.com/abhisek/keydrill/internal/session"
)

func newModel(t *testing.T) (AppModel, *session.Session) {
	t.Helper()
	sess, err := session.New(catalog.Default(), session.Config{})
	require.NoError(t, err)
	m := newAppModel(Options{Session: sess, FeedbackDelay: time.Second})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel), sess
}

// step feeds msg to the model and delivers the resulting command's message
// once, which is enough for navigation messages.
func step(m AppModel, msg tea.Msg) AppModel {
	updated, cmd := m.Update(msg)
	m = updated.(AppModel)
	if cmd != nil {
		if next := cmd(); next != nil {
			updated, _ = m.Update(next)
			m = updated.(AppModel)
		}
	}
	return m
}

func TestAppModel_RenderHome(t *testing.T) {
	m, _ := newModel(t)

	frame := m.render()
	assert.Contains(t, frame, "keydrill")
	assert.Contains(t, frame, "Home")
	assert.Contains(t, frame, "33 shortcuts")
	assert.Contains(t, frame, "Ctrl+C")
}

func TestAppModel_TooSmall(t *testing.T) {
	m, _ := newModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	assert.Contains(t, updated.(AppModel).render(), "Terminal too small!")
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m, _ := newModel(t)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_StartAndLeaveQuiz(t *testing.T) {
	m, sess := newModel(t)

	m = step(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, 2, m.router.Depth())
	assert.IsType(t, &quiz.QuizScreen{}, m.router.Active())
	assert.Equal(t, session.PageQuiz, sess.Page())
	assert.Contains(t, m.render(), "Question 1/10")

	m = step(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 2, m.router.Depth(), "esc only opens the confirm dialog")

	m = step(m, tea.KeyPressMsg{Code: 'y', Text: "y"})
	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, session.PageHome, sess.Page())
}

func TestAppModel_StartQuiz(t *testing.T) {
	sess, err := session.New(catalog.Default(), session.Config{})
	require.NoError(t, err)
	require.NoError(t, sess.Start())

	m := newAppModel(Options{Session: sess, FeedbackDelay: time.Second, StartQuiz: true})
	assert.Equal(t, 2, m.router.Depth())
	assert.IsType(t, &quiz.QuizScreen{}, m.router.Active())
}
