// Package stats aggregates the results of a quiz run.
package stats

import (
	"math"
	"slices"

	"github.com/abhisek/keydrill/internal/catalog"
	"github.com/abhisek/keydrill/internal/session"
)

// MaxHardestCategories is the number of categories reported as hardest.
const MaxHardestCategories = 3

// CategoryStat counts answers within one category.
type CategoryStat struct {
	Correct int
	Total   int
}

// Accuracy returns the correct ratio in [0, 1], or 0 with no answers.
func (c CategoryStat) Accuracy() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Total)
}

// Stats summarises a results log.
type Stats struct {
	TotalQuestions   int
	CorrectAnswers   int
	IncorrectAnswers int
	Accuracy         float64 // percent, 2 decimals
	AverageTime      float64 // seconds, 2 decimals
	HintsUsed        int
	CategoryStats    map[catalog.Category]CategoryStat

	// HardestCategories lists up to three answered categories, lowest
	// accuracy first.
	HardestCategories []catalog.Category
}

// HintRatio returns hints used per question, or 0 with no questions.
func (s Stats) HintRatio() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.HintsUsed) / float64(s.TotalQuestions)
}

// Compute derives Stats from results. It never divides by zero.
func Compute(results []session.Result) Stats {
	st := Stats{
		TotalQuestions: len(results),
		CategoryStats:  make(map[catalog.Category]CategoryStat),
	}

	var totalTime float64
	for _, r := range results {
		cs := st.CategoryStats[r.Shortcut.Category]
		cs.Total++
		if r.Correct {
			st.CorrectAnswers++
			cs.Correct++
		}
		st.CategoryStats[r.Shortcut.Category] = cs

		if r.HintUsed {
			st.HintsUsed++
		}
		totalTime += r.TimeSpent
	}
	st.IncorrectAnswers = st.TotalQuestions - st.CorrectAnswers

	if st.TotalQuestions > 0 {
		st.Accuracy = Round2(100 * float64(st.CorrectAnswers) / float64(st.TotalQuestions))
		st.AverageTime = Round2(totalTime / float64(st.TotalQuestions))
	}

	st.HardestCategories = hardest(st.CategoryStats)
	return st
}

// SortedCategories returns the answered categories in display order.
func (s Stats) SortedCategories() []catalog.Category {
	out := make([]catalog.Category, 0, len(s.CategoryStats))
	for c := range s.CategoryStats {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b catalog.Category) int {
		return a.Order() - b.Order()
	})
	return out
}

func hardest(byCat map[catalog.Category]CategoryStat) []catalog.Category {
	cats := make([]catalog.Category, 0, len(byCat))
	for c := range byCat {
		cats = append(cats, c)
	}
	slices.SortFunc(cats, func(a, b catalog.Category) int {
		accA, accB := byCat[a].Accuracy(), byCat[b].Accuracy()
		switch {
		case accA < accB:
			return -1
		case accA > accB:
			return 1
		default:
			return a.Order() - b.Order()
		}
	})
	if len(cats) > MaxHardestCategories {
		cats = cats[:MaxHardestCategories]
	}
	return cats
}

// Round2 rounds x to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
