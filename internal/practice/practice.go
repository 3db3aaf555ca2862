// Package practice turns quiz statistics into a practice level and advice.
package practice

import (
	"github.com/abhisek/keydrill/internal/catalog"
	"github.com/abhisek/keydrill/internal/session"
	"github.com/abhisek/keydrill/internal/stats"
)

// Level is the estimated skill level of the player.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Thresholds used by Recommend.
const (
	WeakMinAttempts = 3
	WeakAccuracy    = 0.7

	IntermediateAccuracy = 70.0
	IntermediateTime     = 10.0
	AdvancedAccuracy     = 85.0
	AdvancedTime         = 7.0
	AdvancedHintRatio    = 0.3

	SlowTime       = 15.0
	HeavyHintRatio = 0.7

	MaxWeakCategoryShortcuts = 5
	MaxRecommendedShortcuts  = 10
)

// Recommendation messages.
const (
	MsgBasicsStepByStep   = "Practice the basic shortcuts step by step."
	MsgUseHints           = "Use hints actively to understand what each shortcut means."
	MsgReviewMissed       = "Good progress! Review the questions you missed."
	MsgFocusCategory      = "Try focused practice by category."
	MsgTakeOnHarder       = "Impressive skills! Take on the harder shortcuts."
	MsgWithoutHints       = "Try solving questions without hints."
	MsgMasterCombinations = "Excellent work! Master the advanced shortcut combinations."
	MsgTeachOthers        = "Try teaching these shortcuts to someone else."
	MsgBuildSpeed         = "Drill repeatedly to build up your speed."
	MsgLessHints          = "Rely less on hints and strengthen your recall."
)

// Practice is the recommendation derived from a run's statistics.
type Practice struct {
	Level           Level
	WeakCategories  []catalog.Category
	Recommendations []string
}

// Recommend classifies st into a practice level and picks advice.
func Recommend(st stats.Stats) Practice {
	return Practice{
		Level:           level(st),
		WeakCategories:  WeakCategories(st),
		Recommendations: recommendations(st),
	}
}

// WeakCategories returns categories with at least WeakMinAttempts answers
// and accuracy below WeakAccuracy, in display order.
func WeakCategories(st stats.Stats) []catalog.Category {
	var weak []catalog.Category
	for _, c := range st.SortedCategories() {
		cs := st.CategoryStats[c]
		if cs.Total >= WeakMinAttempts && cs.Accuracy() < WeakAccuracy {
			weak = append(weak, c)
		}
	}
	return weak
}

func level(st stats.Stats) Level {
	lvl := LevelBeginner
	if st.Accuracy >= IntermediateAccuracy && st.AverageTime < IntermediateTime {
		lvl = LevelIntermediate
	}
	if lvl == LevelIntermediate &&
		st.Accuracy >= AdvancedAccuracy &&
		st.AverageTime < AdvancedTime &&
		st.HintRatio() < AdvancedHintRatio {
		lvl = LevelAdvanced
	}
	return lvl
}

func recommendations(st stats.Stats) []string {
	var recs []string
	switch {
	case st.Accuracy < 50:
		recs = append(recs, MsgBasicsStepByStep, MsgUseHints)
	case st.Accuracy < 70:
		recs = append(recs, MsgReviewMissed, MsgFocusCategory)
	case st.Accuracy < 85:
		recs = append(recs, MsgTakeOnHarder, MsgWithoutHints)
	default:
		recs = append(recs, MsgMasterCombinations, MsgTeachOthers)
	}

	if st.AverageTime > SlowTime {
		recs = append(recs, MsgBuildSpeed)
	}
	if st.HintRatio() > HeavyHintRatio {
		recs = append(recs, MsgLessHints)
	}
	return recs
}

// RecommendShortcuts lists shortcuts worth drilling: every incorrectly
// answered one in answer order, then up to MaxWeakCategoryShortcuts entries
// of cat from the weak categories. Keys appear once and the list is capped at
// MaxRecommendedShortcuts.
func RecommendShortcuts(results []session.Result, weak []catalog.Category, cat *catalog.Catalog) []catalog.Shortcut {
	var out []catalog.Shortcut
	seen := make(map[string]bool)
	add := func(s catalog.Shortcut) {
		if seen[s.Key] || len(out) >= MaxRecommendedShortcuts {
			return
		}
		seen[s.Key] = true
		out = append(out, s)
	}

	for _, r := range results {
		if !r.Correct {
			add(r.Shortcut)
		}
	}

	if len(weak) > 0 && cat != nil {
		isWeak := make(map[catalog.Category]bool, len(weak))
		for _, c := range weak {
			isWeak[c] = true
		}
		taken := 0
		for _, s := range cat.All() {
			if taken == MaxWeakCategoryShortcuts {
				break
			}
			if isWeak[s.Category] {
				add(s)
				taken++
			}
		}
	}

	return out
}
