package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nsu-ctrg/grant-review/internal/domain/cycle"
	"github.com/nsu-ctrg/grant-review/internal/domain/proposal"
	"github.com/nsu-ctrg/grant-review/internal/domain/review"
	"github.com/nsu-ctrg/grant-review/internal/events"
	"github.com/nsu-ctrg/grant-review/internal/notify"
	"github.com/nsu-ctrg/grant-review/internal/repository"
	"github.com/nsu-ctrg/grant-review/internal/repository/mock"
	"github.com/nsu-ctrg/grant-review/pkg/utils"
)

var testNow = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

type fakeNotifier struct {
	sent []notify.Kind
}

func (f *fakeNotifier) Notify(recipient string, kind notify.Kind, ctx map[string]string) bool {
	f.sent = append(f.sent, kind)
	return true
}

type lifecycleMocks struct {
	proposal   *mock.MockProposalRepo
	assignment *mock.MockAssignmentRepo
	cycle      *mock.MockCycleRepo
	notifier   *fakeNotifier
}

func setupLifecycle(t *testing.T) (*LifecycleService, *lifecycleMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &lifecycleMocks{
		proposal:   mock.NewMockProposalRepo(ctrl),
		assignment: mock.NewMockAssignmentRepo(ctrl),
		cycle:      mock.NewMockCycleRepo(ctrl),
		notifier:   &fakeNotifier{},
	}
	repos := &repository.Repos{
		Proposal:   m.proposal,
		Assignment: m.assignment,
		Cycle:      m.cycle,
	}

	orig := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(*uint, string, *uint, map[string]interface{}, repository.AuditRepo) {}
	t.Cleanup(func() { utils.LogAuditWithConsole = orig })

	svc := NewLifecycleService(repos, m.notifier, events.NewBus())
	svc.Clock = func() time.Time { return testNow }
	return svc, m
}

func draftProposal() proposal.Proposal {
	return proposal.Proposal{
		PID:          1,
		ProposalCode: "CTRG-2026-001",
		Title:        "Biomarkers in early-stage screening",
		PIName:       "R. Osei",
		PIEmail:      "osei@example.edu",
		CID:          3,
		Status:       proposal.StatusDraft,
	}
}

func completedStage1Assignments(scores ...int) []review.ReviewAssignment {
	out := make([]review.ReviewAssignment, 0, len(scores))
	for i, total := range scores {
		out = append(out, review.ReviewAssignment{
			ID:     uint(i + 1),
			PID:    1,
			UID:    uint(10 + i),
			Stage:  review.Stage1,
			Status: review.AssignmentCompleted,
			Stage1Score: &review.Stage1Score{
				AssignmentID:     uint(i + 1),
				OriginalityScore: total, // single criterion carries the total
				IsDraft:          false,
			},
		})
	}
	return out
}

func TestSubmit(t *testing.T) {
	t.Run("draft becomes submitted", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		m.proposal.EXPECT().GetProposalForUpdate(uint(1)).Return(draftProposal(), nil)
		m.proposal.EXPECT().UpdateProposal(gomock.Any()).Return(nil)

		p, err := svc.Submit(nil, 1)
		require.NoError(t, err)
		assert.Equal(t, proposal.StatusSubmitted, p.Status)
		require.NotNil(t, p.SubmittedAt)
		assert.Equal(t, testNow, *p.SubmittedAt)
	})

	t.Run("rejects non-draft", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		p := draftProposal()
		p.Status = proposal.StatusSubmitted
		m.proposal.EXPECT().GetProposalForUpdate(uint(1)).Return(p, nil)

		_, err := svc.Submit(nil, 1)
		assert.True(t, proposal.IsInvalidState(err))
	})

	t.Run("rejects locked", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		p := draftProposal()
		p.IsLocked = true
		m.proposal.EXPECT().GetProposalForUpdate(uint(1)).Return(p, nil)

		_, err := svc.Submit(nil, 1)
		assert.ErrorIs(t, err, proposal.ErrProposalLocked)
	})

	t.Run("unknown proposal", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		m.proposal.EXPECT().GetProposalForUpdate(uint(99)).Return(proposal.Proposal{}, gorm.ErrRecordNotFound)

		_, err := svc.Submit(nil, 99)
		assert.ErrorIs(t, err, proposal.ErrProposalNotFound)
	})
}

func TestApplyStage1Decision(t *testing.T) {
	input := proposal.Stage1DecisionDTO{
		Decision:      proposal.Stage1TentativelyAccept,
		ChairComments: "address methodology concerns",
	}

	underReview := func() proposal.Proposal {
		p := draftProposal()
		p.Status = proposal.StatusUnderStage1Review
		return p
	}

	t.Run("tentative accept opens revision window", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		m.proposal.EXPECT().GetProposalForUpdate(uint(1)).Return(underReview(), nil)
		m.proposal.EXPECT().GetStage1Decision(uint(1)).Return(proposal.Stage1Decision{}, gorm.ErrRecordNotFound)
		m.assignment.EXPECT().ListByProposalStage(uint(1), review.Stage1).
			Return(completedStage1Assignments(80, 90), nil)
		m.cycle.EXPECT().GetCycleByID(uint(3)).Return(cycle.GrantCycle{
			CID: 3, RevisionWindowDays: 7, AcceptanceThreshold: 70, MaxReviewersPerProposal: 2,
		}, nil)
		m.proposal.EXPECT().CreateStage1Decision(gomock.Any()).Return(nil)

		var saved proposal.Proposal
		m.proposal.EXPECT().UpdateProposal(gomock.Any()).DoAndReturn(func(p *proposal.Proposal) error {
			saved = *p
			return nil
		})

		d, err := svc.ApplyStage1Decision(nil, 1, input)
		require.NoError(t, err)
		assert.Equal(t, 85.0, d.AverageScore)
		assert.Equal(t, proposal.StatusRevisionRequested, saved.Status)
		require.NotNil(t, saved.RevisionDeadline)
		assert.Equal(t, testNow.AddDate(0, 0, 7), *saved.RevisionDeadline)
		assert.Contains(t, m.notifier.sent, notify.KindRevisionRequested)
	})

	t.Run("reject closes the proposal", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		m.proposal.EXPECT().GetProposalForUpdate(uint(1)).Return(underReview(), nil)
		m.proposal.EXPECT().GetStage1Decision(uint(1)).Return(proposal.Stage1Decision{}, gorm.ErrRecordNotFound)
		m.assignment.EXPECT().ListByProposalStage(uint(1), review.Stage1).
			Return(completedStage1Assignments(40, 50), nil)
		m.cycle.EXPECT().GetCycleByID(uint(3)).Return(cycle.GrantCycle{CID: 3, RevisionWindowDays: 7, AcceptanceThreshold: 70}, nil)
		m.proposal.EXPECT().CreateStage1Decision(gomock.Any()).Return(nil)

		var saved proposal.Proposal
		m.proposal.EXPECT().UpdateProposal(gomock.Any()).DoAndReturn(func(p *proposal.Proposal) error {
			saved = *p
			return nil
		})

		_, err := svc.ApplyStage1Decision(nil, 1, proposal.Stage1DecisionDTO{Decision: proposal.Stage1Reject})
		require.NoError(t, err)
		assert.Equal(t, proposal.StatusStage1Rejected, saved.Status)
		assert.Nil(t, saved.RevisionDeadline)
	})

	t.Run("incomplete reviews block the decision", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		assignments := completedStage1Assignments(80)
		assignments = append(assignments, review.ReviewAssignment{
			ID: 2, PID: 1, UID: 11, Stage: review.Stage1, Status: review.AssignmentPending,
		})
		m.proposal.EXPECT().GetProposalForUpdate(uint(1)).Return(underReview(), nil)
		m.proposal.EXPECT().GetStage1Decision(uint(1)).Return(proposal.Stage1Decision{}, gorm.ErrRecordNotFound)
		m.assignment.EXPECT().ListByProposalStage(uint(1), review.Stage1).Return(assignments, nil)

		_, err := svc.ApplyStage1Decision(nil, 1, input)
		assert.ErrorIs(t, err, proposal.ErrIncompleteReviews)
	})

	t.Run("second decision is rejected", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		m.proposal.EXPECT().GetProposalForUpdate(uint(1)).Return(underReview(), nil)
		m.proposal.EXPECT().GetStage1Decision(uint(1)).Return(proposal.Stage1Decision{ID: 7, PID: 1}, nil)

		_, err := svc.ApplyStage1Decision(nil, 1, input)
		assert.ErrorIs(t, err, proposal.ErrDuplicateDecision)
	})

	t.Run("wrong status", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		m.proposal.EXPECT().GetProposalForUpdate(uint(1)).Return(draftProposal(), nil)

		_, err := svc.ApplyStage1Decision(nil, 1, input)
		assert.True(t, proposal.IsInvalidState(err))
	})
}

func TestSubmitRevision(t *testing.T) {
	revisionRequested := func(deadline time.Time) proposal.Proposal {
		p := draftProposal()
		p.Status = proposal.StatusRevisionRequested
		p.RevisionDeadline = &deadline
		return p
	}
	input := proposal.SubmitRevisionDTO{RevisedFileKey: "proposals/1/revised.pdf"}

	t.Run("within the window", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		m.proposal.EXPECT().GetProposalForUpdate(uint(1)).
			Return(revisionRequested(testNow.Add(24*time.Hour)), nil)
		m.proposal.EXPECT().UpdateProposal(gomock.Any()).Return(nil)

		p, err := svc.SubmitRevision(nil, 1, input)
		require.NoError(t, err)
		assert.Equal(t, proposal.StatusRevisedProposalSubmitted, p.Status)
		assert.Equal(t, "proposals/1/revised.pdf", p.RevisedFileKey)
	})

	t.Run("after the deadline the miss is recorded", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		m.proposal.EXPECT().GetProposalForUpdate(uint(1)).
			Return(revisionRequested(testNow.Add(-time.Hour)), nil)

		var saved proposal.Proposal
		m.proposal.EXPECT().UpdateProposal(gomock.Any()).DoAndReturn(func(p *proposal.Proposal) error {
			saved = *p
			return nil
		})

		_, err := svc.SubmitRevision(nil, 1, input)
		assert.ErrorIs(t, err, proposal.ErrDeadlineExceeded)
		assert.Equal(t, proposal.StatusRevisionDeadlineMissed, saved.Status)
		assert.Empty(t, saved.RevisedFileKey)
		assert.Contains(t, m.notifier.sent, notify.KindDeadlineMissed)
	})
}

func TestStartStage2Review(t *testing.T) {
	svc, m := setupLifecycle(t)
	p := draftProposal()
	p.Status = proposal.StatusRevisedProposalSubmitted
	m.proposal.EXPECT().GetProposalForUpdate(uint(1)).Return(p, nil)
	m.proposal.EXPECT().UpdateProposal(gomock.Any()).Return(nil)

	got, err := svc.StartStage2Review(nil, 1)
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusUnderStage2Review, got.Status)
}

func TestApplyFinalDecision(t *testing.T) {
	input := proposal.FinalDecisionDTO{
		Decision:       proposal.FinalAccepted,
		ApprovedAmount: 45000,
		FinalRemarks:   "fund in full",
	}

	t.Run("accept locks the proposal", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		p := draftProposal()
		p.Status = proposal.StatusUnderStage2Review
		m.proposal.EXPECT().GetProposalForUpdate(uint(1)).Return(p, nil)
		m.proposal.EXPECT().GetFinalDecision(uint(1)).Return(proposal.FinalDecision{}, gorm.ErrRecordNotFound)
		m.assignment.EXPECT().ListByProposalStage(uint(1), review.Stage2).Return([]review.ReviewAssignment{
			{ID: 5, Stage: review.Stage2, Status: review.AssignmentCompleted,
				Stage2Review: &review.Stage2Review{AssignmentID: 5, IsDraft: false}},
		}, nil)
		m.proposal.EXPECT().CreateFinalDecision(gomock.Any()).Return(nil)

		var saved proposal.Proposal
		m.proposal.EXPECT().UpdateProposal(gomock.Any()).DoAndReturn(func(p *proposal.Proposal) error {
			saved = *p
			return nil
		})

		d, err := svc.ApplyFinalDecision(nil, 1, input)
		require.NoError(t, err)
		assert.Equal(t, proposal.FinalAccepted, d.Decision)
		assert.Equal(t, proposal.StatusFinalAccepted, saved.Status)
		assert.True(t, saved.IsLocked)
		assert.Contains(t, m.notifier.sent, notify.KindFinalDecision)
	})

	t.Run("direct decision without a stage-2 round", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		p := draftProposal()
		p.Status = proposal.StatusRevisedProposalSubmitted
		m.proposal.EXPECT().GetProposalForUpdate(uint(1)).Return(p, nil)
		m.proposal.EXPECT().GetFinalDecision(uint(1)).Return(proposal.FinalDecision{}, gorm.ErrRecordNotFound)
		m.assignment.EXPECT().ListByProposalStage(uint(1), review.Stage2).Return(nil, nil)
		m.proposal.EXPECT().CreateFinalDecision(gomock.Any()).Return(nil)
		m.proposal.EXPECT().UpdateProposal(gomock.Any()).Return(nil)

		_, err := svc.ApplyFinalDecision(nil, 1, input)
		assert.NoError(t, err)
	})

	t.Run("pending stage-2 reviews block the decision", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		p := draftProposal()
		p.Status = proposal.StatusUnderStage2Review
		m.proposal.EXPECT().GetProposalForUpdate(uint(1)).Return(p, nil)
		m.proposal.EXPECT().GetFinalDecision(uint(1)).Return(proposal.FinalDecision{}, gorm.ErrRecordNotFound)
		m.assignment.EXPECT().ListByProposalStage(uint(1), review.Stage2).Return([]review.ReviewAssignment{
			{ID: 5, Stage: review.Stage2, Status: review.AssignmentPending},
		}, nil)

		_, err := svc.ApplyFinalDecision(nil, 1, input)
		assert.ErrorIs(t, err, proposal.ErrIncompleteReviews)
	})

	t.Run("second decision is rejected", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		p := draftProposal()
		p.Status = proposal.StatusUnderStage2Review
		m.proposal.EXPECT().GetProposalForUpdate(uint(1)).Return(p, nil)
		m.proposal.EXPECT().GetFinalDecision(uint(1)).Return(proposal.FinalDecision{ID: 2, PID: 1}, nil)

		_, err := svc.ApplyFinalDecision(nil, 1, input)
		assert.ErrorIs(t, err, proposal.ErrDuplicateDecision)
	})
}

func TestExpireRevision(t *testing.T) {
	t.Run("overdue proposal is expired", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		deadline := testNow.Add(-time.Hour)
		p := draftProposal()
		p.Status = proposal.StatusRevisionRequested
		p.RevisionDeadline = &deadline
		m.proposal.EXPECT().GetProposalForUpdate(uint(1)).Return(p, nil)

		var saved proposal.Proposal
		m.proposal.EXPECT().UpdateProposal(gomock.Any()).DoAndReturn(func(p *proposal.Proposal) error {
			saved = *p
			return nil
		})

		expired, err := svc.ExpireRevision(1)
		require.NoError(t, err)
		assert.True(t, expired)
		assert.Equal(t, proposal.StatusRevisionDeadlineMissed, saved.Status)
	})

	t.Run("already-submitted revision is left alone", func(t *testing.T) {
		svc, m := setupLifecycle(t)
		p := draftProposal()
		p.Status = proposal.StatusRevisedProposalSubmitted
		m.proposal.EXPECT().GetProposalForUpdate(uint(1)).Return(p, nil)

		expired, err := svc.ExpireRevision(1)
		require.NoError(t, err)
		assert.False(t, expired)
		assert.Empty(t, m.notifier.sent)
	})
}

func TestRunDeadlineSweep(t *testing.T) {
	svc, m := setupLifecycle(t)
	deadline := testNow.Add(-2 * time.Hour)
	p1 := draftProposal()
	p1.Status = proposal.StatusRevisionRequested
	p1.RevisionDeadline = &deadline
	p2 := p1
	p2.PID = 2

	m.proposal.EXPECT().ListOverdueRevisions(testNow).Return([]proposal.Proposal{p1, p2}, nil)
	m.proposal.EXPECT().GetProposalForUpdate(uint(1)).Return(p1, nil)
	m.proposal.EXPECT().GetProposalForUpdate(uint(2)).Return(p2, nil)
	m.proposal.EXPECT().UpdateProposal(gomock.Any()).Return(nil).Times(2)

	count, err := svc.RunDeadlineSweep()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
