package application

import (
	"errors"

	"github.com/nsu-ctrg/grant-review/internal/domain/audit"
	"github.com/nsu-ctrg/grant-review/internal/domain/review"
	"github.com/nsu-ctrg/grant-review/internal/repository"
	"github.com/nsu-ctrg/grant-review/pkg/utils"
	"gorm.io/gorm"
)

// ReviewService handles score and review submission. Drafts may be saved
// any number of times; a final submission flips the assignment to COMPLETED
// and freezes it.
type ReviewService struct {
	Repos *repository.Repos
}

func NewReviewService(repos *repository.Repos) *ReviewService {
	return &ReviewService{Repos: repos}
}

func (s *ReviewService) getOwnAssignment(tx *repository.Repos, assignmentID, uid uint) (review.ReviewAssignment, error) {
	a, err := tx.Assignment.GetAssignmentByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a, review.ErrAssignmentNotFound
		}
		return a, err
	}
	if a.UID != uid {
		return a, review.ErrAssignmentNotFound
	}
	return a, nil
}

// SubmitStage1Score saves or finalizes the rubric scores for one stage-1
// assignment. Criterion ranges are checked again server-side; binding tags
// on the DTO are not the source of truth.
func (s *ReviewService) SubmitStage1Score(uid, assignmentID uint, input review.Stage1ScoreDTO) (*review.Stage1Score, error) {
	var score review.Stage1Score
	var pid uint

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		a, err := s.getOwnAssignment(tx, assignmentID, uid)
		if err != nil {
			return err
		}
		if a.Stage != review.Stage1 {
			return review.ErrWrongStage
		}
		if a.Status == review.AssignmentCompleted {
			return review.ErrReviewCompleted
		}
		pid = a.PID

		score = review.Stage1Score{
			AssignmentID:               assignmentID,
			OriginalityScore:           input.OriginalityScore,
			ClarityScore:               input.ClarityScore,
			LiteratureReviewScore:      input.LiteratureReviewScore,
			MethodologyScore:           input.MethodologyScore,
			ImpactScore:                input.ImpactScore,
			PublicationPotentialScore:  input.PublicationPotentialScore,
			BudgetAppropriatenessScore: input.BudgetAppropriatenessScore,
			TimelinePracticalityScore:  input.TimelinePracticalityScore,
			NarrativeComments:          input.NarrativeComments,
			IsDraft:                    input.IsDraft,
		}
		if err := score.Validate(); err != nil {
			return err
		}
		if err := tx.Assignment.SaveStage1Score(&score); err != nil {
			return err
		}

		if !input.IsDraft {
			a.Status = review.AssignmentCompleted
			return tx.Assignment.UpdateAssignment(&a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !input.IsDraft {
		utils.LogAuditWithConsole(&uid, audit.ActionReviewSubmitted, &pid, map[string]interface{}{
			"assignment_id": assignmentID,
			"stage":         1,
			"total_score":   score.TotalScore(),
		}, s.Repos.Audit)
	}

	return &score, nil
}

// SubmitStage2Review saves or finalizes the stage-2 assessment.
func (s *ReviewService) SubmitStage2Review(uid, assignmentID uint, input review.Stage2ReviewDTO) (*review.Stage2Review, error) {
	var rv review.Stage2Review
	var pid uint

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		a, err := s.getOwnAssignment(tx, assignmentID, uid)
		if err != nil {
			return err
		}
		if a.Stage != review.Stage2 {
			return review.ErrWrongStage
		}
		if a.Status == review.AssignmentCompleted {
			return review.ErrReviewCompleted
		}
		pid = a.PID

		rv = review.Stage2Review{
			AssignmentID:      assignmentID,
			ConcernsAddressed: input.ConcernsAddressed,
			Recommendation:    input.Recommendation,
			RevisedScore:      input.RevisedScore,
			Comments:          input.Comments,
			IsDraft:           input.IsDraft,
		}
		if err := tx.Assignment.SaveStage2Review(&rv); err != nil {
			return err
		}

		if !input.IsDraft {
			a.Status = review.AssignmentCompleted
			return tx.Assignment.UpdateAssignment(&a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !input.IsDraft {
		utils.LogAuditWithConsole(&uid, audit.ActionReviewSubmitted, &pid, map[string]interface{}{
			"assignment_id":  assignmentID,
			"stage":          2,
			"recommendation": string(rv.Recommendation),
		}, s.Repos.Audit)
	}

	return &rv, nil
}

// ListMyAssignments returns a reviewer's assignments with attached work.
func (s *ReviewService) ListMyAssignments(uid uint) ([]review.ReviewAssignment, error) {
	return s.Repos.Assignment.ListByReviewer(uid)
}

// GetAssignment returns one assignment if it belongs to the reviewer.
func (s *ReviewService) GetAssignment(uid, assignmentID uint) (*review.ReviewAssignment, error) {
	a, err := s.getOwnAssignment(s.Repos, assignmentID, uid)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// AggregateProposalStage1 computes the live stage-1 aggregate for a proposal.
func (s *ReviewService) AggregateProposalStage1(pid uint) (*review.StageAggregate, error) {
	assignments, err := s.Repos.Assignment.ListByProposalStage(pid, review.Stage1)
	if err != nil {
		return nil, err
	}
	agg := review.AggregateStage1(assignments)
	return &agg, nil
}
