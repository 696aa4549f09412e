package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nsu-ctrg/grant-review/internal/application"
	"github.com/nsu-ctrg/grant-review/internal/domain/proposal"
	"github.com/nsu-ctrg/grant-review/internal/domain/review"
	"github.com/nsu-ctrg/grant-review/pkg/response"
)

// writeDomainError maps workflow errors onto HTTP statuses. Anything
// unmapped is an internal error; the message is not leaked.
func writeDomainError(c *gin.Context, err error) {
	var rangeErr *review.CriterionRangeError
	switch {
	case errors.Is(err, proposal.ErrProposalNotFound),
		errors.Is(err, review.ErrAssignmentNotFound),
		errors.Is(err, review.ErrNoReviewerProfile),
		errors.Is(err, application.ErrCycleNotFound),
		errors.Is(err, application.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})

	case proposal.IsInvalidState(err),
		errors.Is(err, proposal.ErrProposalLocked),
		errors.Is(err, proposal.ErrDuplicateDecision),
		errors.Is(err, proposal.ErrDeadlineExceeded),
		errors.Is(err, review.ErrDuplicateAssignment),
		errors.Is(err, review.ErrReviewCompleted),
		errors.Is(err, review.ErrWorkloadExceeded),
		errors.Is(err, review.ErrProposalCapacity),
		errors.Is(err, review.ErrReviewerInactive):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})

	case errors.Is(err, proposal.ErrIncompleteReviews),
		errors.Is(err, review.ErrWrongStage),
		errors.As(err, &rangeErr):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
	}
}
