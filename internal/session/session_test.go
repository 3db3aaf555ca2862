package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/keydrill/internal/catalog"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSession(t *testing.T, settings Settings) (*Session, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	s, err := New(catalog.Default(), Config{
		Settings: settings,
		Rand:     testRand(),
		Now:      clock.Now,
	})
	require.NoError(t, err)
	return s, clock
}

func startedSession(t *testing.T, count int) (*Session, *fakeClock) {
	t.Helper()
	s, clock := newTestSession(t, Settings{QuestionCount: count, Difficulty: catalog.DifficultyMixed})
	require.NoError(t, s.Start())
	return s, clock
}

func wrongIndex(q Question) int {
	for i, o := range q.Options {
		if !o.Correct {
			return i
		}
	}
	return -1
}

func TestNew_Defaults(t *testing.T) {
	s, err := New(catalog.Default(), Config{})
	require.NoError(t, err)

	assert.Equal(t, DefaultSettings(), s.Settings())
	assert.Equal(t, PageHome, s.Page())
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Empty(t, s.ID())
	_, ok := s.CurrentQuestion()
	assert.False(t, ok)
}

func TestNew_InvalidSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
	}{
		{"zero count", Settings{QuestionCount: 0, Difficulty: catalog.DifficultyEasy}},
		{"negative count", Settings{QuestionCount: -3, Difficulty: catalog.DifficultyEasy}},
		{"bad difficulty", Settings{QuestionCount: 5, Difficulty: "extreme"}},
		{"bad category", Settings{QuestionCount: 5, Difficulty: catalog.DifficultyMixed, Category: "misc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(catalog.Default(), Config{Settings: tt.settings})
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestStart(t *testing.T) {
	s, _ := startedSession(t, 5)

	assert.Equal(t, PageQuiz, s.Page())
	assert.Equal(t, PhaseAwaitingAnswer, s.Phase())
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, Progress{Current: 1, Total: 5, Percentage: 20}, s.Progress())
	assert.Equal(t, Feedback{}, s.Feedback())
	assert.Empty(t, s.Results())
}

func TestStart_EmptyPoolStaysHome(t *testing.T) {
	s, _ := newTestSession(t, Settings{
		QuestionCount: 10,
		Difficulty:    catalog.DifficultyHard,
		Category:      catalog.CategoryCursor,
	})

	err := s.Start()
	assert.ErrorIs(t, err, ErrNoQuestions)
	assert.Equal(t, PageHome, s.Page())
	assert.Equal(t, PhaseIdle, s.Phase())
}

func TestStart_NewIDEachRun(t *testing.T) {
	s, _ := startedSession(t, 3)
	first := s.ID()
	require.NoError(t, s.Start())
	assert.NotEqual(t, first, s.ID())
}

func TestSubmitAnswer_Correct(t *testing.T) {
	s, clock := startedSession(t, 3)
	q, ok := s.CurrentQuestion()
	require.True(t, ok)

	clock.Advance(2500 * time.Millisecond)
	require.True(t, s.SubmitAnswer(q.AnswerIndex))

	assert.Equal(t, PhaseAnswered, s.Phase())
	assert.Equal(t, Feedback{Kind: FeedbackCorrect, SelectedIndex: q.AnswerIndex, CorrectIndex: q.AnswerIndex}, s.Feedback())

	results := s.Results()
	require.Len(t, results, 1)
	assert.True(t, results[0].Correct)
	assert.False(t, results[0].HintUsed)
	assert.InDelta(t, 2.5, results[0].TimeSpent, 1e-9)
	assert.Equal(t, q.Key, results[0].Shortcut.Key)
}

func TestSubmitAnswer_Incorrect(t *testing.T) {
	s, _ := startedSession(t, 3)
	q, _ := s.CurrentQuestion()
	wrong := wrongIndex(q)

	require.True(t, s.SubmitAnswer(wrong))
	assert.Equal(t, Feedback{Kind: FeedbackIncorrect, SelectedIndex: wrong, CorrectIndex: q.AnswerIndex}, s.Feedback())
	assert.False(t, s.Results()[0].Correct)
}

func TestSubmitAnswer_OutOfRangeIsIncorrect(t *testing.T) {
	for _, idx := range []int{-1, 4, 99} {
		s, _ := startedSession(t, 3)
		require.True(t, s.SubmitAnswer(idx))
		results := s.Results()
		require.Len(t, results, 1)
		assert.False(t, results[0].Correct, "index %d", idx)
		assert.Equal(t, FeedbackIncorrect, s.Feedback().Kind)
	}
}

func TestSubmitAnswer_SecondSubmitIgnored(t *testing.T) {
	s, _ := startedSession(t, 3)
	q, _ := s.CurrentQuestion()

	require.True(t, s.SubmitAnswer(wrongIndex(q)))
	assert.False(t, s.SubmitAnswer(q.AnswerIndex))

	results := s.Results()
	require.Len(t, results, 1)
	assert.False(t, results[0].Correct)
	assert.Equal(t, FeedbackIncorrect, s.Feedback().Kind)
}

func TestSubmitAnswer_ClockBackwardsClampsToZero(t *testing.T) {
	s, clock := startedSession(t, 3)
	clock.Advance(-5 * time.Second)
	s.SubmitAnswer(0)
	assert.Equal(t, 0.0, s.Results()[0].TimeSpent)
}

func TestSubmitAnswer_BeforeStartIgnored(t *testing.T) {
	s, _ := newTestSession(t, DefaultSettings())
	assert.False(t, s.SubmitAnswer(0))
	assert.Empty(t, s.Results())
}

func TestUseHint(t *testing.T) {
	s, _ := startedSession(t, 3)

	assert.True(t, s.UseHint())
	assert.False(t, s.UseHint(), "second hint call should be a no-op")
	assert.True(t, s.HintUsed())

	s.SubmitAnswer(0)
	assert.True(t, s.Results()[0].HintUsed)
	assert.False(t, s.UseHint(), "hint after answering should be ignored")

	require.True(t, s.Advance())
	assert.False(t, s.HintUsed(), "hint flag resets on the next question")
}

func TestAdvance(t *testing.T) {
	s, clock := startedSession(t, 2)

	assert.False(t, s.Advance(), "advance before answering should be ignored")

	s.SubmitAnswer(0)
	clock.Advance(time.Second)
	require.True(t, s.Advance())

	assert.Equal(t, PhaseAwaitingAnswer, s.Phase())
	assert.Equal(t, PageQuiz, s.Page())
	assert.Equal(t, Feedback{}, s.Feedback())
	assert.Equal(t, 2, s.Progress().Current)

	// Question timer restarts on advance.
	clock.Advance(3 * time.Second)
	s.SubmitAnswer(0)
	assert.InDelta(t, 3.0, s.Results()[1].TimeSpent, 1e-9)

	require.True(t, s.Advance())
	assert.Equal(t, PhaseComplete, s.Phase())
	assert.Equal(t, PageResult, s.Page())
	assert.Len(t, s.Results(), 2)

	assert.False(t, s.Advance(), "advance after completion should be ignored")
	_, ok := s.CurrentQuestion()
	assert.False(t, ok)
}

func TestAdvance_NoSessionIgnored(t *testing.T) {
	s, _ := newTestSession(t, DefaultSettings())
	assert.False(t, s.Advance())
	assert.Equal(t, PageHome, s.Page())
}

func TestAdvanceWith_CurrentToken(t *testing.T) {
	s, _ := startedSession(t, 3)
	_, ok := s.AdvanceToken()
	assert.False(t, ok, "no token before answering")

	s.SubmitAnswer(0)
	token, ok := s.AdvanceToken()
	require.True(t, ok)
	assert.Equal(t, AdvanceToken{SessionID: s.ID(), QuestionIndex: 0}, token)

	assert.True(t, s.AdvanceWith(token))
	assert.Equal(t, 2, s.Progress().Current)
	assert.False(t, s.AdvanceWith(token), "token is spent once its question is left")
}

func TestAdvanceWith_StaleAfterManualAdvance(t *testing.T) {
	s, _ := startedSession(t, 3)
	s.SubmitAnswer(0)
	token, _ := s.AdvanceToken()

	require.True(t, s.Advance())
	s.SubmitAnswer(0)

	assert.False(t, s.AdvanceWith(token))
	assert.Equal(t, PhaseAnswered, s.Phase())
	assert.Equal(t, 2, s.Progress().Current)
}

func TestAdvanceWith_StaleAfterReset(t *testing.T) {
	s, _ := startedSession(t, 3)
	s.SubmitAnswer(0)
	token, _ := s.AdvanceToken()

	s.ResetToHome()
	assert.False(t, s.AdvanceWith(token))
	assert.Equal(t, PageHome, s.Page())
	assert.Empty(t, s.Results())

	// A new run must not accept the old token either.
	require.NoError(t, s.Start())
	s.SubmitAnswer(0)
	assert.False(t, s.AdvanceWith(token))
	assert.Len(t, s.Results(), 1)
	assert.Equal(t, PhaseAnswered, s.Phase())
}

func TestResetToHome_KeepsSettings(t *testing.T) {
	settings := Settings{QuestionCount: 4, Difficulty: catalog.DifficultyEasy, Category: catalog.CategoryCursor}
	s, _ := newTestSession(t, settings)
	require.NoError(t, s.Start())
	s.UseHint()
	s.SubmitAnswer(0)

	s.ResetToHome()

	assert.Equal(t, settings, s.Settings())
	assert.Equal(t, PageHome, s.Page())
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Empty(t, s.ID())
	assert.Empty(t, s.Results())
	assert.False(t, s.HintUsed())
	assert.Equal(t, Feedback{}, s.Feedback())
	assert.Equal(t, Progress{}, s.Progress())
}

func TestUpdateSettings(t *testing.T) {
	s, _ := newTestSession(t, DefaultSettings())

	next := Settings{QuestionCount: 3, Difficulty: catalog.DifficultyHard}
	require.NoError(t, s.UpdateSettings(next))
	assert.Equal(t, next, s.Settings())

	err := s.UpdateSettings(Settings{QuestionCount: 0, Difficulty: catalog.DifficultyHard})
	assert.ErrorIs(t, err, ErrInvalidSettings)
	assert.Equal(t, next, s.Settings(), "rejected settings must not be applied")

	require.NoError(t, s.Start())
	assert.Equal(t, 3, s.Progress().Total)
}

func TestFullRun(t *testing.T) {
	s, clock := startedSession(t, 10)

	for i := range 10 {
		q, ok := s.CurrentQuestion()
		require.True(t, ok)
		if i%3 == 0 {
			s.UseHint()
		}
		clock.Advance(time.Second)
		if i < 7 {
			s.SubmitAnswer(q.AnswerIndex)
		} else {
			s.SubmitAnswer(wrongIndex(q))
		}
		require.True(t, s.Advance())
	}

	assert.Equal(t, PageResult, s.Page())
	results := s.Results()
	require.Len(t, results, 10)

	correct, hints := 0, 0
	for _, r := range results {
		if r.Correct {
			correct++
		}
		if r.HintUsed {
			hints++
		}
	}
	assert.Equal(t, 7, correct)
	assert.Equal(t, 4, hints)
}

func TestCurrentQuestion_ReturnsCopy(t *testing.T) {
	s, _ := startedSession(t, 3)
	q, _ := s.CurrentQuestion()
	q.Options[q.AnswerIndex].Correct = false

	again, _ := s.CurrentQuestion()
	assert.True(t, again.Options[again.AnswerIndex].Correct)
}
