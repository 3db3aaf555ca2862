package quiz

import "github.com/abhisek/keydrill/internal/session"

// advanceMsg fires after the feedback delay. It carries the token of the
// question it was scheduled for so a late tick cannot move a newer run.
type advanceMsg struct {
	token session.AdvanceToken
}
