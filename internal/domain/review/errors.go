package review

import (
	"errors"
	"fmt"
)

// Assignment validation failures, ordered the way ValidateAssignment checks
// them: the first failing check wins.
var (
	// ErrDuplicateAssignment rejects a second assignment for the same
	// (proposal, reviewer, stage) triple.
	ErrDuplicateAssignment = errors.New("reviewer is already assigned to this proposal for this stage")

	// ErrNoReviewerProfile rejects assignment of a user with no reviewer
	// profile.
	ErrNoReviewerProfile = errors.New("user does not have a reviewer profile")

	// ErrReviewerInactive rejects assignment of a deactivated reviewer.
	ErrReviewerInactive = errors.New("reviewer is not active")

	// ErrWorkloadExceeded rejects assignment of a reviewer already at their
	// max review load of PENDING assignments.
	ErrWorkloadExceeded = errors.New("reviewer has reached maximum workload")

	// ErrProposalCapacity rejects an assignment once the proposal already has
	// the cycle's max reviewers for the stage.
	ErrProposalCapacity = errors.New("maximum reviewers already assigned for this stage")

	// ErrReviewCompleted rejects score submission on a COMPLETED assignment.
	ErrReviewCompleted = errors.New("review already completed")

	// ErrWrongStage rejects a stage-1 score on a stage-2 assignment and vice
	// versa.
	ErrWrongStage = errors.New("submission does not match the assignment stage")

	ErrAssignmentNotFound = errors.New("review assignment not found")
)

// CriterionRangeError reports a stage-1 criterion score outside its rubric
// maximum.
type CriterionRangeError struct {
	Criterion string
	Value     int
	Max       int
}

func (e *CriterionRangeError) Error() string {
	return fmt.Sprintf("%s must be between 0 and %d, got %d", e.Criterion, e.Max, e.Value)
}
