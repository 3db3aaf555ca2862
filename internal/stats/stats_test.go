package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/keydrill/internal/catalog"
	"github.com/abhisek/keydrill/internal/session"
)

func result(key string, cat catalog.Category, correct, hint bool, secs float64) session.Result {
	return session.Result{
		Shortcut:  catalog.Shortcut{Key: key, Category: cat},
		Correct:   correct,
		HintUsed:  hint,
		TimeSpent: secs,
	}
}

func TestCompute_Empty(t *testing.T) {
	st := Compute(nil)

	assert.Equal(t, 0, st.TotalQuestions)
	assert.Equal(t, 0, st.CorrectAnswers)
	assert.Equal(t, 0, st.IncorrectAnswers)
	assert.Equal(t, 0.0, st.Accuracy)
	assert.Equal(t, 0.0, st.AverageTime)
	assert.Equal(t, 0, st.HintsUsed)
	assert.Equal(t, 0.0, st.HintRatio())
	assert.Empty(t, st.CategoryStats)
	assert.Empty(t, st.HardestCategories)
}

func TestCompute_SevenOfTen(t *testing.T) {
	var results []session.Result
	for i := range 10 {
		results = append(results, result("k", catalog.CategoryEdit, i < 7, false, 1))
	}

	st := Compute(results)
	assert.Equal(t, 10, st.TotalQuestions)
	assert.Equal(t, 7, st.CorrectAnswers)
	assert.Equal(t, 3, st.IncorrectAnswers)
	assert.Equal(t, 70.0, st.Accuracy)
}

func TestCompute_Rounding(t *testing.T) {
	results := []session.Result{
		result("a", catalog.CategoryCursor, true, true, 1.111),
		result("b", catalog.CategoryCursor, false, false, 2.222),
		result("c", catalog.CategoryCursor, false, false, 3.333),
	}

	st := Compute(results)
	assert.Equal(t, 33.33, st.Accuracy)
	assert.Equal(t, 2.22, st.AverageTime)
	assert.Equal(t, 1, st.HintsUsed)
	assert.InDelta(t, 1.0/3, st.HintRatio(), 1e-9)
}

func TestCompute_CategoryStats(t *testing.T) {
	results := []session.Result{
		result("a", catalog.CategoryCursor, true, false, 1),
		result("b", catalog.CategoryCursor, false, false, 1),
		result("c", catalog.CategoryHistory, true, false, 1),
		result("d", catalog.CategoryControl, false, false, 1),
	}

	st := Compute(results)
	assert.Equal(t, map[catalog.Category]CategoryStat{
		catalog.CategoryCursor:  {Correct: 1, Total: 2},
		catalog.CategoryHistory: {Correct: 1, Total: 1},
		catalog.CategoryControl: {Correct: 0, Total: 1},
	}, st.CategoryStats)
	assert.Equal(t, []catalog.Category{
		catalog.CategoryCursor, catalog.CategoryHistory, catalog.CategoryControl,
	}, st.SortedCategories())
}

func TestCompute_HardestCategories(t *testing.T) {
	results := []session.Result{
		// cursor 100%
		result("a", catalog.CategoryCursor, true, false, 1),
		// edit 50%
		result("b", catalog.CategoryEdit, true, false, 1),
		result("c", catalog.CategoryEdit, false, false, 1),
		// history 0%
		result("d", catalog.CategoryHistory, false, false, 1),
		// advanced 0%, ties with history and comes after it
		result("e", catalog.CategoryAdvanced, false, false, 1),
	}

	st := Compute(results)
	require.Len(t, st.HardestCategories, MaxHardestCategories)
	assert.Equal(t, []catalog.Category{
		catalog.CategoryHistory, catalog.CategoryAdvanced, catalog.CategoryEdit,
	}, st.HardestCategories)
}

func TestCategoryStat_Accuracy(t *testing.T) {
	assert.Equal(t, 0.0, CategoryStat{}.Accuracy())
	assert.Equal(t, 0.75, CategoryStat{Correct: 3, Total: 4}.Accuracy())
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{66.666666, 66.67},
		{1.005, 1},
		{12.344, 12.34},
		{12.345001, 12.35},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
}
