package catalog

import (
	"fmt"
	"slices"
)

// Difficulty selects which slice of the catalog a session draws from.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyMixed  Difficulty = "mixed"
)

// AllDifficulties returns every difficulty in menu order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyMixed, DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a string into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !slices.Contains(AllDifficulties(), d) {
		return "", fmt.Errorf("invalid difficulty %q: must be easy, medium, hard or mixed", s)
	}
	return d, nil
}

// easyKeys are the beginner-friendly shortcuts.
var easyKeys = []string{
	"Ctrl + A",
	"Ctrl + E",
	"Ctrl + B",
	"Ctrl + F",
	"Ctrl + L",
	"Ctrl + C",
	"Ctrl + P",
	"Ctrl + N",
	"Tab",
	"!!",
}

// hardKeys are the shortcuts most often confused with one another.
var hardKeys = []string{
	"Ctrl + K",
	"Ctrl + U",
	"Alt + D",
	"Ctrl + W",
	"Ctrl + T",
	"Alt + T",
	"Ctrl + _",
	"Ctrl + O (after Ctrl + R)",
	"Ctrl + G (after Ctrl + R)",
	"Alt + .",
	"Ctrl + S",
	"Ctrl + Q",
	"Ctrl + X → Ctrl + E",
	"Ctrl + X → Ctrl + U",
}

// EasyKeys returns the curated easy key list.
func EasyKeys() []string { return slices.Clone(easyKeys) }

// HardKeys returns the curated hard key list.
func HardKeys() []string { return slices.Clone(hardKeys) }

// DifficultyOf classifies a key. Medium is whatever is neither easy nor hard.
func DifficultyOf(key string) Difficulty {
	switch {
	case slices.Contains(easyKeys, key):
		return DifficultyEasy
	case slices.Contains(hardKeys, key):
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Matches reports whether a shortcut with the given key belongs to d.
// Mixed matches everything.
func (d Difficulty) Matches(key string) bool {
	if d == DifficultyMixed {
		return true
	}
	return DifficultyOf(key) == d
}
