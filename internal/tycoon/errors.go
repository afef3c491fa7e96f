package tycoon

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidChoice     = errors.New("invalid choice")
	ErrConfiguration     = errors.New("invalid configuration")
	ErrInvalidState      = errors.New("invalid state")
)

// TransitionError reports an operation attempted in a phase that does not
// allow it. It matches ErrInvalidTransition with errors.Is.
type TransitionError struct {
	Op     string
	Phase  Phase
	Reason string
}

func (e *TransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s not allowed in phase %s: %s", e.Op, e.Phase, e.Reason)
	}
	return fmt.Sprintf("%s not allowed in phase %s", e.Op, e.Phase)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
