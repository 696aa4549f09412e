package proposal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusDraft, StatusSubmitted, true},
		{StatusSubmitted, StatusUnderStage1Review, true},
		{StatusUnderStage1Review, StatusStage1Rejected, true},
		{StatusUnderStage1Review, StatusTentativelyAccepted, true},
		{StatusTentativelyAccepted, StatusRevisionRequested, true},
		{StatusRevisionRequested, StatusRevisedProposalSubmitted, true},
		{StatusRevisionRequested, StatusRevisionDeadlineMissed, true},
		{StatusRevisedProposalSubmitted, StatusUnderStage2Review, true},
		{StatusRevisedProposalSubmitted, StatusFinalAccepted, true},
		{StatusUnderStage2Review, StatusFinalRejected, true},

		{StatusDraft, StatusUnderStage1Review, false},
		{StatusSubmitted, StatusFinalAccepted, false},
		{StatusStage1Rejected, StatusSubmitted, false},
		{StatusFinalAccepted, StatusDraft, false},
		{StatusRevisionDeadlineMissed, StatusRevisedProposalSubmitted, false},
	}
	for _, c := range cases {
		assert.Equalf(t, c.ok, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []Status{StatusStage1Rejected, StatusAcceptedNoCorrections,
		StatusRevisionDeadlineMissed, StatusFinalAccepted, StatusFinalRejected} {
		assert.Truef(t, s.IsTerminal(), "%s", s)
	}
	for _, s := range []Status{StatusDraft, StatusSubmitted, StatusUnderStage1Review,
		StatusRevisionRequested, StatusUnderStage2Review} {
		assert.Falsef(t, s.IsTerminal(), "%s", s)
	}
}

func TestIsRevisionOverdue(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	p := Proposal{Status: StatusRevisionRequested, RevisionDeadline: &past}
	assert.True(t, p.IsRevisionOverdue(now))

	p.RevisionDeadline = &future
	assert.False(t, p.IsRevisionOverdue(now))

	p.RevisionDeadline = nil
	assert.False(t, p.IsRevisionOverdue(now))

	p.Status = StatusRevisedProposalSubmitted
	p.RevisionDeadline = &past
	assert.False(t, p.IsRevisionOverdue(now))
}
