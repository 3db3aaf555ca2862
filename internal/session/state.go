package session

import "github.com/abhisek/keydrill/internal/catalog"

// Page is the view the session is currently on.
type Page int

const (
	PageHome   Page = iota // Choosing settings
	PageQuiz               // Answering questions
	PageResult             // Reviewing the completed run
)

func (p Page) String() string {
	switch p {
	case PageQuiz:
		return "quiz"
	case PageResult:
		return "result"
	default:
		return "home"
	}
}

// Phase is the answer-scoring state of the current question.
type Phase int

const (
	PhaseIdle           Phase = iota // No active run
	PhaseAwaitingAnswer              // Question shown, no answer yet
	PhaseAnswered                    // Answer recorded, feedback showing
	PhaseComplete                    // Last question answered and advanced past
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAnswer:
		return "awaiting_answer"
	case PhaseAnswered:
		return "answered"
	case PhaseComplete:
		return "complete"
	default:
		return "idle"
	}
}

// FeedbackKind says how the last answer was judged.
type FeedbackKind int

const (
	FeedbackNone FeedbackKind = iota
	FeedbackCorrect
	FeedbackIncorrect
)

// Feedback describes the judged answer for rendering.
type Feedback struct {
	Kind          FeedbackKind
	SelectedIndex int
	CorrectIndex  int
}

// Result is the record of one answered question. Results are append-only.
type Result struct {
	Shortcut  catalog.Shortcut
	Correct   bool
	HintUsed  bool
	TimeSpent float64 // seconds
}

// Progress is the position within the current run.
type Progress struct {
	Current    int
	Total      int
	Percentage float64
}

// AdvanceToken identifies the question a delayed advance was scheduled for.
// A token only takes effect while that exact question is still answered and
// on screen.
type AdvanceToken struct {
	SessionID     string
	QuestionIndex int
}
