// Package mastery classifies shortcuts by per-key answer history.
package mastery

import (
	"github.com/abhisek/keydrill/internal/catalog"
	"github.com/abhisek/keydrill/internal/session"
	"github.com/abhisek/keydrill/internal/stats"
)

// KeyMastery holds the answer history for a single shortcut key.
type KeyMastery struct {
	Shortcut      catalog.Shortcut
	TotalAttempts int
	CorrectCount  int
}

// Accuracy returns the current accuracy ratio.
func (km *KeyMastery) Accuracy() float64 {
	if km.TotalAttempts == 0 {
		return 0.0
	}
	return float64(km.CorrectCount) / float64(km.TotalAttempts)
}

// State classifies the key. Keys with fewer than MinAttempts answers are
// StateNew regardless of accuracy.
func (km *KeyMastery) State() MasteryState {
	if km.TotalAttempts < MinAttempts {
		return StateNew
	}
	acc := km.Accuracy()
	switch {
	case acc >= MasteredAccuracy:
		return StateMastered
	case acc < StrugglingAccuracy:
		return StateStruggling
	default:
		return StateLearning
	}
}

// Progress is the mastery picture across a results log.
type Progress struct {
	Keys               []*KeyMastery // first-seen order
	Mastered           []catalog.Shortcut
	Struggling         []catalog.Shortcut
	ProgressPercentage float64 // mastered share of the catalog, 2 decimals
}

// Track groups results by shortcut key and classifies each key.
// catalogSize is the number of shortcuts mastery is measured against.
func Track(results []session.Result, catalogSize int) Progress {
	byKey := make(map[string]*KeyMastery)
	var p Progress

	for _, r := range results {
		km, ok := byKey[r.Shortcut.Key]
		if !ok {
			km = &KeyMastery{Shortcut: r.Shortcut}
			byKey[r.Shortcut.Key] = km
			p.Keys = append(p.Keys, km)
		}
		km.TotalAttempts++
		if r.Correct {
			km.CorrectCount++
		}
	}

	for _, km := range p.Keys {
		switch km.State() {
		case StateMastered:
			p.Mastered = append(p.Mastered, km.Shortcut)
		case StateStruggling:
			p.Struggling = append(p.Struggling, km.Shortcut)
		}
	}

	if catalogSize > 0 {
		p.ProgressPercentage = stats.Round2(100 * float64(len(p.Mastered)) / float64(catalogSize))
	}
	return p
}
