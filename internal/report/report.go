// Package report assembles everything shown after a completed run.
package report

import (
	"github.com/abhisek/keydrill/internal/catalog"
	"github.com/abhisek/keydrill/internal/mastery"
	"github.com/abhisek/keydrill/internal/practice"
	"github.com/abhisek/keydrill/internal/session"
	"github.com/abhisek/keydrill/internal/stats"
)

// Report holds the analytics derived from one results log.
type Report struct {
	Settings             session.Settings
	Stats                stats.Stats
	Streak               stats.StreakInfo
	Progress             mastery.Progress
	Practice             practice.Practice
	RecommendedShortcuts []catalog.Shortcut
}

// Build derives a Report from results. cat sizes the mastery percentage and
// supplies weak-category shortcuts.
func Build(settings session.Settings, results []session.Result, cat *catalog.Catalog) *Report {
	st := stats.Compute(results)
	p := practice.Recommend(st)

	return &Report{
		Settings:             settings,
		Stats:                st,
		Streak:               stats.Streak(results),
		Progress:             mastery.Track(results, cat.Len()),
		Practice:             p,
		RecommendedShortcuts: practice.RecommendShortcuts(results, p.WeakCategories, cat),
	}
}

// FromSession builds a Report from the session's recorded results.
func FromSession(s *session.Session) *Report {
	return Build(s.Settings(), s.Results(), s.Catalog())
}
