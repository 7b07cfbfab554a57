package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is wrapped by every InvalidStateError.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidChoice indicates a choice other than A or B.
	ErrInvalidChoice = errors.New("invalid choice")
)

// InvalidStateError reports an operation invoked in a phase where it is not
// legal. The session state is left unchanged.
type InvalidStateError struct {
	Op     string
	Phase  Phase
	Reason string
}

func (e *InvalidStateError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s (phase %s)", e.Op, e.Reason, e.Phase)
	}
	return fmt.Sprintf("%s: not allowed in phase %s", e.Op, e.Phase)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

func invalidState(op string, p Phase, reason string) error {
	return &InvalidStateError{Op: op, Phase: p, Reason: reason}
}
