package stats

import "github.com/abhisek/keydrill/internal/session"

// StreakInfo describes runs of consecutive correct answers.
type StreakInfo struct {
	Current int   // run ending at the last answer
	Max     int   // longest run
	History []int // every run in answer order, including a trailing one
}

// Streak computes correct-answer runs over results.
func Streak(results []session.Result) StreakInfo {
	var info StreakInfo

	for i := len(results) - 1; i >= 0 && results[i].Correct; i-- {
		info.Current++
	}

	run := 0
	for _, r := range results {
		if r.Correct {
			run++
			info.Max = max(info.Max, run)
			continue
		}
		if run > 0 {
			info.History = append(info.History, run)
		}
		run = 0
	}
	if run > 0 {
		info.History = append(info.History, run)
	}

	return info
}
