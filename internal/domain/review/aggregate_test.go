package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scored(total int) ReviewAssignment {
	return ReviewAssignment{
		Status: AssignmentCompleted,
		Stage1Score: &Stage1Score{
			OriginalityScore: total,
			IsDraft:          false,
		},
	}
}

func TestAggregateStage1(t *testing.T) {
	t.Run("no assignments is incomplete", func(t *testing.T) {
		agg := AggregateStage1(nil)
		assert.False(t, agg.Complete)
	})

	t.Run("pending assignment is incomplete", func(t *testing.T) {
		agg := AggregateStage1([]ReviewAssignment{
			scored(80),
			{Status: AssignmentPending},
		})
		assert.False(t, agg.Complete)
	})

	t.Run("draft score is incomplete", func(t *testing.T) {
		a := scored(80)
		a.Stage1Score.IsDraft = true
		agg := AggregateStage1([]ReviewAssignment{a})
		assert.False(t, agg.Complete)
	})

	t.Run("completed without a score row is incomplete", func(t *testing.T) {
		agg := AggregateStage1([]ReviewAssignment{{Status: AssignmentCompleted}})
		assert.False(t, agg.Complete)
	})

	t.Run("average over all reviewers", func(t *testing.T) {
		agg := AggregateStage1([]ReviewAssignment{scored(72), scored(85), scored(91)})
		assert.True(t, agg.Complete)
		assert.Equal(t, []int{72, 85, 91}, agg.Totals)
		assert.InDelta(t, 82.666, agg.Average, 0.001)
	})
}

func TestStage2Complete(t *testing.T) {
	done := ReviewAssignment{
		Status:       AssignmentCompleted,
		Stage2Review: &Stage2Review{IsDraft: false},
	}

	assert.False(t, Stage2Complete(nil))
	assert.False(t, Stage2Complete([]ReviewAssignment{done, {Status: AssignmentPending}}))
	assert.True(t, Stage2Complete([]ReviewAssignment{done}))
}

func TestStage1ScoreValidate(t *testing.T) {
	s := Stage1Score{
		OriginalityScore:          15,
		ClarityScore:              15,
		LiteratureReviewScore:     15,
		MethodologyScore:          15,
		ImpactScore:               15,
		PublicationPotentialScore: 10,
		BudgetAppropriatenessScore: 10,
		TimelinePracticalityScore: 5,
	}
	assert.NoError(t, s.Validate())
	assert.Equal(t, 100, s.TotalScore())

	s.ImpactScore = 16
	var rangeErr *CriterionRangeError
	assert.ErrorAs(t, s.Validate(), &rangeErr)
	assert.Equal(t, "impact_score", rangeErr.Criterion)

	s.ImpactScore = -1
	assert.Error(t, s.Validate())
}
