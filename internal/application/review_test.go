package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nsu-ctrg/grant-review/internal/domain/review"
	"github.com/nsu-ctrg/grant-review/internal/repository"
	"github.com/nsu-ctrg/grant-review/internal/repository/mock"
	"github.com/nsu-ctrg/grant-review/pkg/utils"
)

func setupReview(t *testing.T) (*ReviewService, *mock.MockAssignmentRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAssignment := mock.NewMockAssignmentRepo(ctrl)
	repos := &repository.Repos{Assignment: mockAssignment}

	orig := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(*uint, string, *uint, map[string]interface{}, repository.AuditRepo) {}
	t.Cleanup(func() { utils.LogAuditWithConsole = orig })

	return NewReviewService(repos), mockAssignment
}

func pendingAssignment(stage review.Stage) review.ReviewAssignment {
	return review.ReviewAssignment{
		ID:     5,
		PID:    1,
		UID:    10,
		Stage:  stage,
		Status: review.AssignmentPending,
	}
}

func validScores() review.Stage1ScoreDTO {
	return review.Stage1ScoreDTO{
		OriginalityScore:           12,
		ClarityScore:               13,
		LiteratureReviewScore:      11,
		MethodologyScore:           14,
		ImpactScore:                12,
		PublicationPotentialScore:  8,
		BudgetAppropriatenessScore: 9,
		TimelinePracticalityScore:  4,
		NarrativeComments:          "solid design, timeline is tight",
	}
}

func TestSubmitStage1Score(t *testing.T) {
	t.Run("final submission completes the assignment", func(t *testing.T) {
		svc, mockAssignment := setupReview(t)
		mockAssignment.EXPECT().GetAssignmentByID(uint(5)).Return(pendingAssignment(review.Stage1), nil)
		mockAssignment.EXPECT().SaveStage1Score(gomock.Any()).Return(nil)

		var saved review.ReviewAssignment
		mockAssignment.EXPECT().UpdateAssignment(gomock.Any()).DoAndReturn(func(a *review.ReviewAssignment) error {
			saved = *a
			return nil
		})

		score, err := svc.SubmitStage1Score(10, 5, validScores())
		require.NoError(t, err)
		assert.Equal(t, 83, score.TotalScore())
		assert.Equal(t, review.AssignmentCompleted, saved.Status)
	})

	t.Run("draft save keeps the assignment pending", func(t *testing.T) {
		svc, mockAssignment := setupReview(t)
		input := validScores()
		input.IsDraft = true
		mockAssignment.EXPECT().GetAssignmentByID(uint(5)).Return(pendingAssignment(review.Stage1), nil)
		mockAssignment.EXPECT().SaveStage1Score(gomock.Any()).Return(nil)

		score, err := svc.SubmitStage1Score(10, 5, input)
		require.NoError(t, err)
		assert.True(t, score.IsDraft)
	})

	t.Run("criterion above its maximum", func(t *testing.T) {
		svc, mockAssignment := setupReview(t)
		input := validScores()
		input.TimelinePracticalityScore = 9
		mockAssignment.EXPECT().GetAssignmentByID(uint(5)).Return(pendingAssignment(review.Stage1), nil)

		_, err := svc.SubmitStage1Score(10, 5, input)
		var rangeErr *review.CriterionRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "timeline_practicality_score", rangeErr.Criterion)
	})

	t.Run("completed review is frozen", func(t *testing.T) {
		svc, mockAssignment := setupReview(t)
		a := pendingAssignment(review.Stage1)
		a.Status = review.AssignmentCompleted
		mockAssignment.EXPECT().GetAssignmentByID(uint(5)).Return(a, nil)

		_, err := svc.SubmitStage1Score(10, 5, validScores())
		assert.ErrorIs(t, err, review.ErrReviewCompleted)
	})

	t.Run("stage-2 assignment rejects rubric scores", func(t *testing.T) {
		svc, mockAssignment := setupReview(t)
		mockAssignment.EXPECT().GetAssignmentByID(uint(5)).Return(pendingAssignment(review.Stage2), nil)

		_, err := svc.SubmitStage1Score(10, 5, validScores())
		assert.ErrorIs(t, err, review.ErrWrongStage)
	})

	t.Run("someone else's assignment", func(t *testing.T) {
		svc, mockAssignment := setupReview(t)
		mockAssignment.EXPECT().GetAssignmentByID(uint(5)).Return(pendingAssignment(review.Stage1), nil)

		_, err := svc.SubmitStage1Score(99, 5, validScores())
		assert.ErrorIs(t, err, review.ErrAssignmentNotFound)
	})

	t.Run("missing assignment", func(t *testing.T) {
		svc, mockAssignment := setupReview(t)
		mockAssignment.EXPECT().GetAssignmentByID(uint(5)).Return(review.ReviewAssignment{}, gorm.ErrRecordNotFound)

		_, err := svc.SubmitStage1Score(10, 5, validScores())
		assert.ErrorIs(t, err, review.ErrAssignmentNotFound)
	})
}

func TestSubmitStage2Review(t *testing.T) {
	input := review.Stage2ReviewDTO{
		ConcernsAddressed: review.ConcernsPartially,
		Recommendation:    review.RecommendAccept,
		Comments:          "methodology concerns resolved, budget still vague",
	}

	t.Run("final submission completes the assignment", func(t *testing.T) {
		svc, mockAssignment := setupReview(t)
		mockAssignment.EXPECT().GetAssignmentByID(uint(5)).Return(pendingAssignment(review.Stage2), nil)
		mockAssignment.EXPECT().SaveStage2Review(gomock.Any()).Return(nil)

		var saved review.ReviewAssignment
		mockAssignment.EXPECT().UpdateAssignment(gomock.Any()).DoAndReturn(func(a *review.ReviewAssignment) error {
			saved = *a
			return nil
		})

		rv, err := svc.SubmitStage2Review(10, 5, input)
		require.NoError(t, err)
		assert.Equal(t, review.RecommendAccept, rv.Recommendation)
		assert.Equal(t, review.AssignmentCompleted, saved.Status)
	})

	t.Run("stage-1 assignment rejects a stage-2 review", func(t *testing.T) {
		svc, mockAssignment := setupReview(t)
		mockAssignment.EXPECT().GetAssignmentByID(uint(5)).Return(pendingAssignment(review.Stage1), nil)

		_, err := svc.SubmitStage2Review(10, 5, input)
		assert.ErrorIs(t, err, review.ErrWrongStage)
	})
}
