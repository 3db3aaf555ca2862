package session

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/keydrill/internal/catalog"
)

// ErrNoQuestions is returned by Start when the settings select no entries.
var ErrNoQuestions = errors.New("no shortcuts match the selected difficulty and category")

// Config holds the collaborators of a Session. Zero values are replaced with
// defaults.
type Config struct {
	Settings Settings
	Rand     *rand.Rand
	Now      func() time.Time
	Logger   *zap.Logger
}

// Session owns the quiz state for one user. It is not safe for concurrent
// use; the UI event loop is its only caller.
type Session struct {
	catalog  *catalog.Catalog
	settings Settings
	rng      *rand.Rand
	now      func() time.Time
	log      *zap.Logger

	id        string
	page      Page
	phase     Phase
	questions []Question
	index     int
	shownAt   time.Time
	hintUsed  bool
	feedback  Feedback
	results   []Result
}

// New creates a session on the home page.
func New(cat *catalog.Catalog, cfg Config) (*Session, error) {
	if cfg.Settings == (Settings{}) {
		cfg.Settings = DefaultSettings()
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Session{
		catalog:  cat,
		settings: cfg.Settings,
		rng:      cfg.Rand,
		now:      cfg.Now,
		log:      cfg.Logger,
	}, nil
}

// Start builds a new run from the current settings and shows the first
// question. Any previous run is discarded.
func (s *Session) Start() error {
	questions := Build(s.rng, s.catalog, s.settings)
	if len(questions) == 0 {
		s.log.Warn("session not started: empty pool",
			zap.String("difficulty", string(s.settings.Difficulty)),
			zap.String("category", string(s.settings.Category)),
		)
		return ErrNoQuestions
	}

	s.clear()
	s.id = uuid.NewString()
	s.questions = questions
	s.page = PageQuiz
	s.phase = PhaseAwaitingAnswer
	s.shownAt = s.now()

	s.log.Info("session started",
		zap.String("session_id", s.id),
		zap.String("difficulty", string(s.settings.Difficulty)),
		zap.String("category", string(s.settings.Category)),
		zap.Int("requested", s.settings.QuestionCount),
		zap.Int("served", len(questions)),
	)
	return nil
}

// SubmitAnswer scores the option at index for the current question. An index
// outside the options counts as incorrect. Returns false when no question is
// awaiting an answer.
func (s *Session) SubmitAnswer(index int) bool {
	if s.phase != PhaseAwaitingAnswer {
		s.log.Debug("answer ignored", zap.String("phase", s.phase.String()))
		return false
	}

	q := s.questions[s.index]
	correct := index >= 0 && index < len(q.Options) && q.Options[index].Correct

	elapsed := s.now().Sub(s.shownAt).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}

	s.results = append(s.results, Result{
		Shortcut:  q.Source(),
		Correct:   correct,
		HintUsed:  s.hintUsed,
		TimeSpent: elapsed,
	})

	kind := FeedbackIncorrect
	if correct {
		kind = FeedbackCorrect
	}
	s.feedback = Feedback{Kind: kind, SelectedIndex: index, CorrectIndex: q.AnswerIndex}
	s.phase = PhaseAnswered

	s.log.Info("answer recorded",
		zap.String("session_id", s.id),
		zap.String("key", q.Key),
		zap.Bool("correct", correct),
		zap.Bool("hint_used", s.hintUsed),
		zap.Float64("seconds", elapsed),
	)
	return true
}

// UseHint marks the hint as used for the current question. Calling it again
// for the same question does nothing.
func (s *Session) UseHint() bool {
	if s.phase != PhaseAwaitingAnswer || s.hintUsed {
		return false
	}
	s.hintUsed = true
	s.log.Debug("hint used", zap.String("session_id", s.id), zap.Int("question", s.index))
	return true
}

// Advance moves past an answered question, either to the next question or to
// the result page after the last one.
func (s *Session) Advance() bool {
	if s.phase != PhaseAnswered {
		s.log.Debug("advance ignored", zap.String("phase", s.phase.String()))
		return false
	}

	if s.index == len(s.questions)-1 {
		s.phase = PhaseComplete
		s.page = PageResult
		s.log.Info("session complete",
			zap.String("session_id", s.id),
			zap.Int("answered", len(s.results)),
		)
		return true
	}

	s.index++
	s.hintUsed = false
	s.feedback = Feedback{}
	s.shownAt = s.now()
	s.phase = PhaseAwaitingAnswer
	return true
}

// AdvanceToken returns a token for scheduling a delayed advance of the
// current answered question.
func (s *Session) AdvanceToken() (AdvanceToken, bool) {
	if s.phase != PhaseAnswered {
		return AdvanceToken{}, false
	}
	return AdvanceToken{SessionID: s.id, QuestionIndex: s.index}, true
}

// AdvanceWith advances only if t still refers to the live, answered
// question. Tokens from a reset or replaced run are ignored.
func (s *Session) AdvanceWith(t AdvanceToken) bool {
	if t.SessionID != s.id || t.QuestionIndex != s.index || s.phase != PhaseAnswered {
		s.log.Debug("stale advance ignored",
			zap.String("token_session", t.SessionID),
			zap.Int("token_question", t.QuestionIndex),
		)
		return false
	}
	return s.Advance()
}

// ResetToHome discards the run and returns to the home page. Settings are
// kept.
func (s *Session) ResetToHome() {
	if s.id != "" {
		s.log.Info("session reset", zap.String("session_id", s.id))
	}
	s.clear()
}

func (s *Session) clear() {
	s.id = ""
	s.page = PageHome
	s.phase = PhaseIdle
	s.questions = nil
	s.index = 0
	s.shownAt = time.Time{}
	s.hintUsed = false
	s.feedback = Feedback{}
	s.results = nil
}

// UpdateSettings replaces the settings used by the next Start.
func (s *Session) UpdateSettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.settings = settings
	return nil
}

// Settings returns the current quiz settings.
func (s *Session) Settings() Settings { return s.settings }

// Catalog returns the catalog questions are drawn from.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// ID returns the identifier of the current run, or "" when none is active.
func (s *Session) ID() string { return s.id }

// Page returns the current page.
func (s *Session) Page() Page { return s.page }

// Phase returns the answer-scoring phase.
func (s *Session) Phase() Phase { return s.phase }

// HintUsed reports whether the hint was revealed for the current question.
func (s *Session) HintUsed() bool { return s.hintUsed }

// Feedback returns the judgement of the current question's answer.
func (s *Session) Feedback() Feedback { return s.feedback }

// CurrentQuestion returns the question on screen, if any.
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.phase != PhaseAwaitingAnswer && s.phase != PhaseAnswered {
		return Question{}, false
	}
	q := s.questions[s.index]
	q.Shortcut = q.Shortcut.Clone()
	return q, true
}

// Progress returns the 1-based position within the run.
func (s *Session) Progress() Progress {
	total := len(s.questions)
	if total == 0 {
		return Progress{}
	}
	current := s.index + 1
	return Progress{
		Current:    current,
		Total:      total,
		Percentage: 100 * float64(current) / float64(total),
	}
}

// Results returns a copy of the results recorded so far.
func (s *Session) Results() []Result {
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}
