package mastery

// MasteryState classifies how reliably a shortcut is answered.
type MasteryState string

const (
	StateNew        MasteryState = "new"        // fewer than MinAttempts answers
	StateLearning   MasteryState = "learning"   // enough answers, accuracy in between
	StateMastered   MasteryState = "mastered"   // accuracy >= MasteredAccuracy
	StateStruggling MasteryState = "struggling" // accuracy < StrugglingAccuracy
)

const (
	// MinAttempts is the number of answers needed before a shortcut is
	// classified at all.
	MinAttempts = 3

	MasteredAccuracy   = 0.8
	StrugglingAccuracy = 0.5
)
