package report

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/keydrill/internal/catalog"
	"github.com/abhisek/keydrill/internal/practice"
	"github.com/abhisek/keydrill/internal/session"
)

func TestBuild_Empty(t *testing.T) {
	r := Build(session.DefaultSettings(), nil, catalog.Default())

	assert.Equal(t, 0, r.Stats.TotalQuestions)
	assert.Equal(t, 0.0, r.Progress.ProgressPercentage)
	assert.Equal(t, practice.LevelBeginner, r.Practice.Level)
	assert.Empty(t, r.RecommendedShortcuts)
	assert.Equal(t, 0, r.Streak.Max)
}

func TestFromSession_CompletedRun(t *testing.T) {
	s, err := session.New(catalog.Default(), session.Config{
		Settings: session.Settings{QuestionCount: 4, Difficulty: catalog.DifficultyMixed, Category: catalog.CategoryHistory},
		Rand:     rand.New(rand.NewPCG(7, 7)),
	})
	require.NoError(t, err)
	require.NoError(t, s.Start())

	var missed string
	for i := range 4 {
		q, ok := s.CurrentQuestion()
		require.True(t, ok)
		if i == 1 {
			missed = q.Key
			s.SubmitAnswer((q.AnswerIndex + 1) % len(q.Options))
		} else {
			s.SubmitAnswer(q.AnswerIndex)
		}
		require.True(t, s.Advance())
	}
	require.Equal(t, session.PageResult, s.Page())

	r := FromSession(s)
	assert.Equal(t, 4, r.Stats.TotalQuestions)
	assert.Equal(t, 3, r.Stats.CorrectAnswers)
	assert.Equal(t, 75.0, r.Stats.Accuracy)
	assert.Equal(t, 2, r.Streak.Current)
	assert.Equal(t, []int{1, 2}, r.Streak.History)

	// 3 of 4 history answers is above the weak threshold.
	assert.Empty(t, r.Practice.WeakCategories)
	require.Len(t, r.RecommendedShortcuts, 1)
	assert.Equal(t, missed, r.RecommendedShortcuts[0].Key)
	assert.Equal(t, catalog.CategoryHistory, r.Settings.Category)
}
