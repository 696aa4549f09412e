package proposal

import (
	"errors"
	"fmt"
)

var (
	// ErrProposalLocked rejects any transition on a proposal that carries a
	// final decision.
	ErrProposalLocked = errors.New("proposal is locked after final decision")

	// ErrIncompleteReviews rejects a decision while required reviews are
	// PENDING or lack a final score.
	ErrIncompleteReviews = errors.New("not all required reviews are complete")

	// ErrDeadlineExceeded is returned when a revision arrives after its
	// deadline; the proposal has already been moved to
	// REVISION_DEADLINE_MISSED as a side effect of the failing call.
	ErrDeadlineExceeded = errors.New("revision deadline has passed")

	// ErrDuplicateDecision rejects a second stage-1 or final decision.
	ErrDuplicateDecision = errors.New("a decision already exists for this proposal")

	ErrProposalNotFound = errors.New("proposal not found")
)

// InvalidStateError reports a transition attempted from a status that does
// not permit it.
type InvalidStateError struct {
	Action string
	Status Status
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s a proposal in status %s", e.Action, e.Status)
}

// NewInvalidState builds the error for a rejected transition attempt.
func NewInvalidState(action string, status Status) error {
	return &InvalidStateError{Action: action, Status: status}
}

// IsInvalidState reports whether err is an InvalidStateError.
func IsInvalidState(err error) bool {
	var ise *InvalidStateError
	return errors.As(err, &ise)
}
