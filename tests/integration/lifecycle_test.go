package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nsu-ctrg/grant-review/internal/domain/proposal"
	"github.com/nsu-ctrg/grant-review/internal/domain/review"
)

// TestProposalLifecycle walks one proposal through the whole review
// workflow, from draft to a final decision, over the HTTP API.
func TestProposalLifecycle(t *testing.T) {
	// Chair opens a grant cycle.
	w := doRequest(t, "POST", "/cycles", adminToken, map[string]interface{}{
		"name":                       "CTRG Research Grants 2026-27",
		"year":                       "2026-27",
		"start_date":                 "2026-01-01T00:00:00Z",
		"end_date":                   "2026-12-31T00:00:00Z",
		"revision_window_days":       7,
		"acceptance_threshold":       70.0,
		"max_reviewers_per_proposal": 2,
	}, http.StatusCreated)

	var cyc struct {
		CID uint `json:"cid"`
	}
	decodeBody(t, w, &cyc)
	require.NotZero(t, cyc.CID)

	// PI drafts a proposal and gets a cycle-scoped code.
	w = doRequest(t, "POST", "/proposals", piToken, map[string]interface{}{
		"title":          "Low-power sensor networks for glacier monitoring",
		"abstract":       "We propose a field study of LoRa mesh deployments on alpine glaciers.",
		"pi_name":        "Alice Moreau",
		"pi_department":  "Environmental Engineering",
		"pi_email":       "alice@nsu.edu",
		"fund_requested": 48000.0,
		"cid":            cyc.CID,
	}, http.StatusCreated)

	var p proposal.Proposal
	decodeBody(t, w, &p)
	require.Equal(t, "CTRG-2026-001", p.ProposalCode)
	require.Equal(t, proposal.StatusDraft, p.Status)

	// Submitting moves it out of draft.
	w = doRequest(t, "POST", fmt.Sprintf("/proposals/%d/submit", p.PID), piToken, nil, http.StatusOK)
	decodeBody(t, w, &p)
	require.Equal(t, proposal.StatusSubmitted, p.Status)
	require.NotNil(t, p.SubmittedAt)

	// Chair registers both reviewers.
	for _, uid := range []uint{reviewer1UID, reviewer2UID} {
		doRequest(t, "POST", "/reviewers", chairToken, map[string]interface{}{
			"uid":               uid,
			"department":        "Electrical Engineering",
			"area_of_expertise": "wireless sensor networks",
		}, http.StatusCreated)
	}

	// First stage-1 assignment moves the proposal into review.
	deadline := time.Now().Add(14 * 24 * time.Hour).UTC().Format(time.RFC3339)
	var a1, a2 review.ReviewAssignment
	w = doRequest(t, "POST", "/assignments", chairToken, map[string]interface{}{
		"pid": p.PID, "uid": reviewer1UID, "stage": 1, "deadline": deadline,
	}, http.StatusCreated)
	decodeBody(t, w, &a1)

	w = doRequest(t, "GET", fmt.Sprintf("/proposals/%d", p.PID), chairToken, nil, http.StatusOK)
	decodeBody(t, w, &p)
	require.Equal(t, proposal.StatusUnderStage1Review, p.Status)

	w = doRequest(t, "POST", "/assignments", chairToken, map[string]interface{}{
		"pid": p.PID, "uid": reviewer2UID, "stage": 1, "deadline": deadline,
	}, http.StatusCreated)
	decodeBody(t, w, &a2)

	// Re-assigning the same reviewer to the same stage is a conflict.
	doRequest(t, "POST", "/assignments", chairToken, map[string]interface{}{
		"pid": p.PID, "uid": reviewer1UID, "stage": 1, "deadline": deadline,
	}, http.StatusConflict)

	// Decision before reviews are in is rejected.
	doRequest(t, "POST", fmt.Sprintf("/proposals/%d/stage1-decision", p.PID), chairToken,
		map[string]interface{}{"decision": "TENTATIVELY_ACCEPT"}, http.StatusUnprocessableEntity)

	// Both reviewers score the proposal. Totals are 83 and 77.
	scores := map[string]interface{}{
		"originality_score": 13, "clarity_score": 12, "literature_review_score": 11,
		"methodology_score": 14, "impact_score": 15, "publication_potential_score": 8,
		"budget_appropriateness_score": 6, "timeline_practicality_score": 4,
		"narrative_comments": "Strong methodology, thin deployment plan.",
	}
	doRequest(t, "POST", fmt.Sprintf("/assignments/%d/stage1-score", a1.ID), reviewer1Tok, scores, http.StatusOK)

	scores["impact_score"] = 12
	scores["originality_score"] = 10
	doRequest(t, "POST", fmt.Sprintf("/assignments/%d/stage1-score", a2.ID), reviewer2Tok, scores, http.StatusOK)

	// Aggregate is now complete.
	var agg review.StageAggregate
	w = doRequest(t, "GET", fmt.Sprintf("/proposals/%d/aggregate", p.PID), chairToken, nil, http.StatusOK)
	decodeBody(t, w, &agg)
	require.True(t, agg.Complete)
	require.InDelta(t, 80.0, agg.Average, 0.001)

	// Tentative acceptance opens the revision window.
	var d1 proposal.Stage1Decision
	w = doRequest(t, "POST", fmt.Sprintf("/proposals/%d/stage1-decision", p.PID), chairToken,
		map[string]interface{}{"decision": "TENTATIVELY_ACCEPT", "chair_comments": "Address the deployment concerns."},
		http.StatusCreated)
	decodeBody(t, w, &d1)
	require.InDelta(t, 80.0, d1.AverageScore, 0.001)

	w = doRequest(t, "GET", fmt.Sprintf("/proposals/%d", p.PID), piToken, nil, http.StatusOK)
	decodeBody(t, w, &p)
	require.Equal(t, proposal.StatusRevisionRequested, p.Status)
	require.NotNil(t, p.RevisionDeadline)

	// A second decision on the same proposal is a conflict.
	doRequest(t, "POST", fmt.Sprintf("/proposals/%d/stage1-decision", p.PID), chairToken,
		map[string]interface{}{"decision": "ACCEPT"}, http.StatusConflict)

	// PI submits the revision within the window.
	w = doRequest(t, "POST", fmt.Sprintf("/proposals/%d/revision", p.PID), piToken,
		map[string]interface{}{"revised_file_key": "proposals/1/revised.pdf"}, http.StatusOK)
	decodeBody(t, w, &p)
	require.Equal(t, proposal.StatusRevisedProposalSubmitted, p.Status)

	// Chair opens stage 2 and assigns one reviewer.
	w = doRequest(t, "POST", fmt.Sprintf("/proposals/%d/start-stage2", p.PID), chairToken, nil, http.StatusOK)
	decodeBody(t, w, &p)
	require.Equal(t, proposal.StatusUnderStage2Review, p.Status)

	var s2 review.ReviewAssignment
	w = doRequest(t, "POST", "/assignments", chairToken, map[string]interface{}{
		"pid": p.PID, "uid": reviewer1UID, "stage": 2, "deadline": deadline,
	}, http.StatusCreated)
	decodeBody(t, w, &s2)

	// Final decision is blocked until the stage-2 review is in.
	doRequest(t, "POST", fmt.Sprintf("/proposals/%d/final-decision", p.PID), chairToken,
		map[string]interface{}{"decision": "ACCEPTED", "approved_amount": 45000.0, "final_remarks": "Fund at reduced level."},
		http.StatusUnprocessableEntity)

	doRequest(t, "POST", fmt.Sprintf("/assignments/%d/stage2-review", s2.ID), reviewer1Tok,
		map[string]interface{}{"concerns_addressed": "YES", "recommendation": "ACCEPT", "comments": "Revision resolves the concerns."},
		http.StatusOK)

	var final proposal.FinalDecision
	w = doRequest(t, "POST", fmt.Sprintf("/proposals/%d/final-decision", p.PID), chairToken,
		map[string]interface{}{"decision": "ACCEPTED", "approved_amount": 45000.0, "final_remarks": "Fund at reduced level."},
		http.StatusCreated)
	decodeBody(t, w, &final)
	require.Equal(t, 45000.0, final.ApprovedAmount)

	w = doRequest(t, "GET", fmt.Sprintf("/proposals/%d", p.PID), piToken, nil, http.StatusOK)
	decodeBody(t, w, &p)
	require.Equal(t, proposal.StatusFinalAccepted, p.Status)
	require.True(t, p.IsLocked)

	// Accepted proposals are immutable.
	doRequest(t, "POST", fmt.Sprintf("/proposals/%d/revision", p.PID), piToken,
		map[string]interface{}{"revised_file_key": "proposals/1/late.pdf"}, http.StatusConflict)
	doRequest(t, "PUT", fmt.Sprintf("/proposals/%d", p.PID), piToken,
		map[string]interface{}{"title": "Retitled"}, http.StatusConflict)

	// Every state change left an audit trail.
	var history []map[string]interface{}
	w = doRequest(t, "GET", fmt.Sprintf("/proposals/%d/history", p.PID), chairToken, nil, http.StatusOK)
	decodeBody(t, w, &history)
	require.NotEmpty(t, history)
}

func TestStage1Rejection(t *testing.T) {
	w := doRequest(t, "POST", "/cycles", adminToken, map[string]interface{}{
		"name":       "Seed Grants 2025-26",
		"year":       "2025-26",
		"start_date": "2025-07-01T00:00:00Z",
		"end_date":   "2026-06-30T00:00:00Z",
	}, http.StatusCreated)
	var cyc struct {
		CID uint `json:"cid"`
	}
	decodeBody(t, w, &cyc)

	w = doRequest(t, "POST", "/proposals", piToken, map[string]interface{}{
		"title":          "Archive digitization pilot",
		"abstract":       "A pilot on OCR for degraded manuscripts.",
		"pi_name":        "Alice Moreau",
		"pi_email":       "alice@nsu.edu",
		"fund_requested": 9000.0,
		"cid":            cyc.CID,
	}, http.StatusCreated)
	var p proposal.Proposal
	decodeBody(t, w, &p)
	require.Equal(t, "CTRG-2025-001", p.ProposalCode)

	doRequest(t, "POST", fmt.Sprintf("/proposals/%d/submit", p.PID), piToken, nil, http.StatusOK)

	deadline := time.Now().Add(7 * 24 * time.Hour).UTC().Format(time.RFC3339)
	var a review.ReviewAssignment
	w = doRequest(t, "POST", "/assignments", chairToken, map[string]interface{}{
		"pid": p.PID, "uid": reviewer2UID, "stage": 1, "deadline": deadline,
	}, http.StatusCreated)
	decodeBody(t, w, &a)

	doRequest(t, "POST", fmt.Sprintf("/assignments/%d/stage1-score", a.ID), reviewer2Tok, map[string]interface{}{
		"originality_score": 4, "clarity_score": 5, "literature_review_score": 3,
		"methodology_score": 6, "impact_score": 4, "publication_potential_score": 2,
		"budget_appropriateness_score": 3, "timeline_practicality_score": 1,
		"narrative_comments": "Not competitive in this cycle.",
	}, http.StatusOK)

	doRequest(t, "POST", fmt.Sprintf("/proposals/%d/stage1-decision", p.PID), chairToken,
		map[string]interface{}{"decision": "REJECT", "chair_comments": "Below the bar."}, http.StatusCreated)

	w = doRequest(t, "GET", fmt.Sprintf("/proposals/%d", p.PID), piToken, nil, http.StatusOK)
	decodeBody(t, w, &p)
	require.Equal(t, proposal.StatusStage1Rejected, p.Status)

	// Terminal proposals take no further assignments.
	doRequest(t, "POST", "/assignments", chairToken, map[string]interface{}{
		"pid": p.PID, "uid": reviewer1UID, "stage": 1, "deadline": deadline,
	}, http.StatusConflict)
}

func TestReviewerWorkloadEndpoint(t *testing.T) {
	var stats []review.WorkloadStats
	w := doRequest(t, "GET", "/reviewers/workloads", chairToken, nil, http.StatusOK)
	decodeBody(t, w, &stats)
	require.NotEmpty(t, stats)

	for _, s := range stats {
		require.Equal(t, s.Total, s.Pending+s.Completed)
	}

	// Non-chairs cannot see workloads.
	doRequest(t, "GET", "/reviewers/workloads", reviewer1Tok, nil, http.StatusForbidden)
}
