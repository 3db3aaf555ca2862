package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/keydrill/internal/catalog"
)

// DefaultQuestionCount is the number of questions in a session when the
// user has not chosen otherwise.
const DefaultQuestionCount = 10

// ErrInvalidSettings is returned when quiz settings fail validation.
var ErrInvalidSettings = errors.New("invalid quiz settings")

// Settings are the user-controlled quiz parameters. They survive a return to
// the home page.
type Settings struct {
	QuestionCount int
	Difficulty    catalog.Difficulty
	// Category restricts questions to one category. Empty means all.
	Category catalog.Category
}

// DefaultSettings returns ten mixed questions from every category.
func DefaultSettings() Settings {
	return Settings{
		QuestionCount: DefaultQuestionCount,
		Difficulty:    catalog.DifficultyMixed,
	}
}

// Validate checks that s describes a session that can be built.
func (s Settings) Validate() error {
	if s.QuestionCount <= 0 {
		return fmt.Errorf("%w: question count must be positive, got %d", ErrInvalidSettings, s.QuestionCount)
	}
	if _, err := catalog.ParseDifficulty(string(s.Difficulty)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if s.Category != "" && !s.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidSettings, s.Category)
	}
	return nil
}

// CategoryLabel returns the display name of the category filter.
func (s Settings) CategoryLabel() string {
	if s.Category == "" {
		return "All categories"
	}
	return s.Category.DisplayName()
}
