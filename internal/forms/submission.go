package forms

import (
	"errors"
	"sync"
)

var ErrSubmitInFlight = errors.New("forms: a submission is already in progress")

// Submission is one client's copy of a form: whether a submit is running and
// the message shown after the last failure.
type Submission struct {
	mu         sync.Mutex
	submitting bool
	errMsg     string
}

// Begin claims the form for a submit and clears the previous message.
func (s *Submission) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return ErrSubmitInFlight
	}
	s.submitting = true
	s.errMsg = ""
	return nil
}

// Finish releases the form, leaving msg for display.
func (s *Submission) Finish(msg string) {
	s.mu.Lock()
	s.submitting = false
	s.errMsg = msg
	s.mu.Unlock()
}

// Error is the message to display, empty when there is none.
func (s *Submission) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *Submission) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}
