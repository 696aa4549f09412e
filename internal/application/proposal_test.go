package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsu-ctrg/grant-review/internal/domain/cycle"
	"github.com/nsu-ctrg/grant-review/internal/domain/proposal"
	"github.com/nsu-ctrg/grant-review/internal/repository"
	"github.com/nsu-ctrg/grant-review/internal/repository/mock"
)

func setupProposal(t *testing.T) (*ProposalService, *mock.MockProposalRepo, *mock.MockCycleRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockProposal := mock.NewMockProposalRepo(ctrl)
	mockCycle := mock.NewMockCycleRepo(ctrl)
	repos := &repository.Repos{Proposal: mockProposal, Cycle: mockCycle}
	return NewProposalService(repos), mockProposal, mockCycle
}

func TestCreateProposal(t *testing.T) {
	input := proposal.CreateProposalDTO{
		Title:         "Biomarkers in early-stage screening",
		Abstract:      "We propose ...",
		PIName:        "R. Osei",
		PIEmail:       "osei@example.edu",
		FundRequested: 45000,
		CID:           3,
	}
	testCycle := cycle.GrantCycle{CID: 3, Year: "2026-2027"}

	t.Run("generates the next sequential code", func(t *testing.T) {
		svc, mockProposal, mockCycle := setupProposal(t)
		mockCycle.EXPECT().GetCycleByID(uint(3)).Return(testCycle, nil)
		mockProposal.EXPECT().CountByCodePrefix("CTRG-2026-").Return(int64(4), nil)
		mockProposal.EXPECT().CodeExists("CTRG-2026-005").Return(false, nil)
		mockProposal.EXPECT().CreateProposal(gomock.Any()).Return(nil)

		p, err := svc.Create(input)
		require.NoError(t, err)
		assert.Equal(t, "CTRG-2026-005", p.ProposalCode)
		assert.Equal(t, proposal.StatusDraft, p.Status)
	})

	t.Run("bumps past a taken code", func(t *testing.T) {
		svc, mockProposal, mockCycle := setupProposal(t)
		mockCycle.EXPECT().GetCycleByID(uint(3)).Return(testCycle, nil)
		mockProposal.EXPECT().CountByCodePrefix("CTRG-2026-").Return(int64(4), nil)
		mockProposal.EXPECT().CodeExists("CTRG-2026-005").Return(true, nil)
		mockProposal.EXPECT().CodeExists("CTRG-2026-006").Return(false, nil)
		mockProposal.EXPECT().CreateProposal(gomock.Any()).Return(nil)

		p, err := svc.Create(input)
		require.NoError(t, err)
		assert.Equal(t, "CTRG-2026-006", p.ProposalCode)
	})
}

func TestUpdateProposal(t *testing.T) {
	t.Run("locked proposal rejects edits", func(t *testing.T) {
		svc, mockProposal, _ := setupProposal(t)
		p := draftProposal()
		p.IsLocked = true
		mockProposal.EXPECT().GetProposalForUpdate(uint(1)).Return(p, nil)

		title := "new title"
		_, err := svc.Update(1, proposal.UpdateProposalDTO{Title: &title})
		assert.ErrorIs(t, err, proposal.ErrProposalLocked)
	})

	t.Run("partial update", func(t *testing.T) {
		svc, mockProposal, _ := setupProposal(t)
		mockProposal.EXPECT().GetProposalForUpdate(uint(1)).Return(draftProposal(), nil)
		mockProposal.EXPECT().UpdateProposal(gomock.Any()).Return(nil)

		title := "revised working title"
		p, err := svc.Update(1, proposal.UpdateProposalDTO{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "revised working title", p.Title)
		assert.Equal(t, "R. Osei", p.PIName)
	})
}

func TestDeleteProposal(t *testing.T) {
	t.Run("draft can be removed", func(t *testing.T) {
		svc, mockProposal, _ := setupProposal(t)
		mockProposal.EXPECT().GetProposalForUpdate(uint(1)).Return(draftProposal(), nil)
		mockProposal.EXPECT().DeleteProposal(uint(1)).Return(nil)

		assert.NoError(t, svc.Delete(1))
	})

	t.Run("submitted proposal cannot", func(t *testing.T) {
		svc, mockProposal, _ := setupProposal(t)
		p := draftProposal()
		p.Status = proposal.StatusSubmitted
		mockProposal.EXPECT().GetProposalForUpdate(uint(1)).Return(p, nil)

		err := svc.Delete(1)
		assert.True(t, proposal.IsInvalidState(err))
	})
}
