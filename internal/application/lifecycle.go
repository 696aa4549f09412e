package application

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/nsu-ctrg/grant-review/internal/domain/audit"
	"github.com/nsu-ctrg/grant-review/internal/domain/proposal"
	"github.com/nsu-ctrg/grant-review/internal/domain/review"
	"github.com/nsu-ctrg/grant-review/internal/events"
	"github.com/nsu-ctrg/grant-review/internal/notify"
	"github.com/nsu-ctrg/grant-review/internal/repository"
	"github.com/nsu-ctrg/grant-review/pkg/utils"
	"gorm.io/gorm"
)

// LifecycleService owns the proposal status field. Every transition runs as
// read-check-write inside one transaction with the proposal row locked; no
// other component writes status, is_locked or revision_deadline.
//
// Notifications and audit events fire after the transaction commits and are
// best-effort: their failure never rolls back a committed transition.
type LifecycleService struct {
	Repos    *repository.Repos
	Notifier notify.Notifier
	Bus      *events.Bus

	// Clock is replaceable in tests.
	Clock func() time.Time
}

func NewLifecycleService(repos *repository.Repos, notifier notify.Notifier, bus *events.Bus) *LifecycleService {
	return &LifecycleService{
		Repos:    repos,
		Notifier: notifier,
		Bus:      bus,
		Clock:    time.Now,
	}
}

// checkMutable rejects transitions on locked proposals. The lock check runs
// before any status check, from every entry point.
func checkMutable(p *proposal.Proposal) error {
	if p.IsLocked {
		return proposal.ErrProposalLocked
	}
	return nil
}

func (s *LifecycleService) publish(p *proposal.Proposal, from proposal.Status) {
	if s.Bus == nil {
		return
	}
	s.Bus.Publish(events.StatusEvent{
		PID:       p.PID,
		Code:      p.ProposalCode,
		From:      from,
		To:        p.Status,
		Timestamp: s.Clock(),
	})
}

// Submit moves a DRAFT proposal to SUBMITTED and stamps submitted_at.
func (s *LifecycleService) Submit(actor *uint, pid uint) (*proposal.Proposal, error) {
	var p proposal.Proposal
	var from proposal.Status

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		p, err = tx.Proposal.GetProposalForUpdate(pid)
		if err != nil {
			return proposal.ErrProposalNotFound
		}
		if err := checkMutable(&p); err != nil {
			return err
		}
		if p.Status != proposal.StatusDraft {
			return proposal.NewInvalidState("submit", p.Status)
		}

		from = p.Status
		now := s.Clock()
		p.Status = proposal.StatusSubmitted
		p.SubmittedAt = &now
		return tx.Proposal.UpdateProposal(&p)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(actor, audit.ActionProposalSubmitted, &p.PID, map[string]interface{}{
		"proposal_code": p.ProposalCode,
	}, s.Repos.Audit)
	s.publish(&p, from)

	return &p, nil
}

// ApplyStage1Decision records the chair's stage-1 verdict. Every stage-1
// assignment must be COMPLETED with a final score attached; the computed
// average is snapshotted on the decision row. A TENTATIVELY_ACCEPT verdict
// opens the revision window in the same transaction.
//
// A below-threshold accept is permitted: the chair's discretion overrides the
// numeric threshold. The override is logged and recorded in the audit event,
// never blocked.
func (s *LifecycleService) ApplyStage1Decision(actor *uint, pid uint, input proposal.Stage1DecisionDTO) (*proposal.Stage1Decision, error) {
	var (
		p              proposal.Proposal
		from           proposal.Status
		decision       proposal.Stage1Decision
		belowThreshold bool
		revisionOpened bool
	)

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		p, err = tx.Proposal.GetProposalForUpdate(pid)
		if err != nil {
			return proposal.ErrProposalNotFound
		}
		if err := checkMutable(&p); err != nil {
			return err
		}
		if p.Status != proposal.StatusUnderStage1Review {
			return proposal.NewInvalidState("apply a stage-1 decision to", p.Status)
		}

		if _, err := tx.Proposal.GetStage1Decision(pid); err == nil {
			return proposal.ErrDuplicateDecision
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		assignments, err := tx.Assignment.ListByProposalStage(pid, review.Stage1)
		if err != nil {
			return err
		}
		agg := review.AggregateStage1(assignments)
		if !agg.Complete {
			return proposal.ErrIncompleteReviews
		}

		cyc, err := tx.Cycle.GetCycleByID(p.CID)
		if err != nil {
			return err
		}

		decision = proposal.Stage1Decision{
			PID:           pid,
			Decision:      input.Decision,
			ChairComments: input.ChairComments,
			AverageScore:  agg.Average,
		}
		if err := tx.Proposal.CreateStage1Decision(&decision); err != nil {
			return err
		}

		from = p.Status
		switch input.Decision {
		case proposal.Stage1Reject:
			p.Status = proposal.StatusStage1Rejected
		case proposal.Stage1Accept:
			p.Status = proposal.StatusAcceptedNoCorrections
		case proposal.Stage1TentativelyAccept:
			// Compound transition: tentative acceptance immediately opens
			// the revision window.
			p.Status = proposal.StatusRevisionRequested
			deadline := s.Clock().AddDate(0, 0, cyc.RevisionWindowDays)
			p.RevisionDeadline = &deadline
			revisionOpened = true
		default:
			return fmt.Errorf("unknown stage-1 decision %q", input.Decision)
		}

		belowThreshold = input.Decision != proposal.Stage1Reject &&
			agg.Average < cyc.AcceptanceThreshold

		return tx.Proposal.UpdateProposal(&p)
	})
	if err != nil {
		return nil, err
	}

	if belowThreshold {
		log.Printf("stage-1 decision %s for %s overrides threshold (avg %.2f)",
			decision.Decision, p.ProposalCode, decision.AverageScore)
	}

	details := map[string]interface{}{
		"decision":        string(decision.Decision),
		"average_score":   decision.AverageScore,
		"chair_comments":  decision.ChairComments,
		"below_threshold": belowThreshold,
	}
	if revisionOpened {
		details["revision_deadline"] = p.RevisionDeadline.Format(time.RFC3339)
	}
	utils.LogAuditWithConsole(actor, audit.ActionStage1DecisionMade, &p.PID, details, s.Repos.Audit)
	s.publish(&p, from)

	if revisionOpened {
		s.Notifier.Notify(p.PIEmail, notify.KindRevisionRequested, map[string]string{
			"name":     p.PIName,
			"title":    p.Title,
			"code":     p.ProposalCode,
			"deadline": p.RevisionDeadline.Format("2006-01-02 15:04"),
		})
	}

	return &decision, nil
}

// SubmitRevision attaches the revised files and moves the proposal to
// REVISED_PROPOSAL_SUBMITTED. When the deadline has already passed the
// proposal is force-moved to REVISION_DEADLINE_MISSED and the call fails
// with ErrDeadlineExceeded; the forced transition is committed.
func (s *LifecycleService) SubmitRevision(actor *uint, pid uint, input proposal.SubmitRevisionDTO) (*proposal.Proposal, error) {
	var (
		p      proposal.Proposal
		from   proposal.Status
		missed bool
	)

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		p, err = tx.Proposal.GetProposalForUpdate(pid)
		if err != nil {
			return proposal.ErrProposalNotFound
		}
		if err := checkMutable(&p); err != nil {
			return err
		}
		if p.Status != proposal.StatusRevisionRequested {
			return proposal.NewInvalidState("submit a revision for", p.Status)
		}

		from = p.Status
		if p.IsRevisionOverdue(s.Clock()) {
			p.Status = proposal.StatusRevisionDeadlineMissed
			missed = true
			return tx.Proposal.UpdateProposal(&p)
		}

		p.RevisedFileKey = input.RevisedFileKey
		if input.ResponseFileKey != nil {
			p.ResponseFileKey = *input.ResponseFileKey
		}
		p.Status = proposal.StatusRevisedProposalSubmitted
		return tx.Proposal.UpdateProposal(&p)
	})
	if err != nil {
		return nil, err
	}

	if missed {
		s.afterDeadlineMiss(&p, from)
		return nil, proposal.ErrDeadlineExceeded
	}

	utils.LogAuditWithConsole(actor, audit.ActionRevisionSubmitted, &p.PID, map[string]interface{}{
		"proposal_code": p.ProposalCode,
		"submitted_at":  s.Clock().Format(time.RFC3339),
	}, s.Repos.Audit)
	s.publish(&p, from)

	return &p, nil
}

// StartStage2Review moves a revised proposal into the stage-2 round.
func (s *LifecycleService) StartStage2Review(actor *uint, pid uint) (*proposal.Proposal, error) {
	var p proposal.Proposal
	var from proposal.Status

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		p, err = tx.Proposal.GetProposalForUpdate(pid)
		if err != nil {
			return proposal.ErrProposalNotFound
		}
		if err := checkMutable(&p); err != nil {
			return err
		}
		if p.Status != proposal.StatusRevisedProposalSubmitted {
			return proposal.NewInvalidState("start stage-2 review for", p.Status)
		}

		from = p.Status
		p.Status = proposal.StatusUnderStage2Review
		return tx.Proposal.UpdateProposal(&p)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(actor, audit.ActionStage2ReviewStarted, &p.PID, map[string]interface{}{
		"proposal_code": p.ProposalCode,
	}, s.Repos.Audit)
	s.publish(&p, from)

	return &p, nil
}

// ApplyFinalDecision creates the final decision and locks the proposal.
// Stage-2 completeness is enforced only when stage-2 assignments exist; a
// proposal may go straight from REVISED_PROPOSAL_SUBMITTED to a final
// decision when the chair skips the second round.
func (s *LifecycleService) ApplyFinalDecision(actor *uint, pid uint, input proposal.FinalDecisionDTO) (*proposal.FinalDecision, error) {
	var (
		p        proposal.Proposal
		from     proposal.Status
		decision proposal.FinalDecision
	)

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		p, err = tx.Proposal.GetProposalForUpdate(pid)
		if err != nil {
			return proposal.ErrProposalNotFound
		}
		if err := checkMutable(&p); err != nil {
			return err
		}
		if p.Status != proposal.StatusUnderStage2Review &&
			p.Status != proposal.StatusRevisedProposalSubmitted {
			return proposal.NewInvalidState("apply a final decision to", p.Status)
		}

		if _, err := tx.Proposal.GetFinalDecision(pid); err == nil {
			return proposal.ErrDuplicateDecision
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		assignments, err := tx.Assignment.ListByProposalStage(pid, review.Stage2)
		if err != nil {
			return err
		}
		if len(assignments) > 0 && !review.Stage2Complete(assignments) {
			return proposal.ErrIncompleteReviews
		}

		decision = proposal.FinalDecision{
			PID:            pid,
			Decision:       input.Decision,
			ApprovedAmount: input.ApprovedAmount,
			FinalRemarks:   input.FinalRemarks,
		}
		if err := tx.Proposal.CreateFinalDecision(&decision); err != nil {
			return err
		}

		from = p.Status
		if input.Decision == proposal.FinalAccepted {
			p.Status = proposal.StatusFinalAccepted
		} else {
			p.Status = proposal.StatusFinalRejected
		}
		p.IsLocked = true
		return tx.Proposal.UpdateProposal(&p)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(actor, audit.ActionFinalDecisionMade, &p.PID, map[string]interface{}{
		"decision":        string(decision.Decision),
		"approved_amount": decision.ApprovedAmount,
		"final_remarks":   decision.FinalRemarks,
	}, s.Repos.Audit)
	s.publish(&p, from)

	s.Notifier.Notify(p.PIEmail, notify.KindFinalDecision, map[string]string{
		"name":     p.PIName,
		"title":    p.Title,
		"code":     p.ProposalCode,
		"decision": string(decision.Decision),
	})

	return &decision, nil
}

// ExpireRevision force-moves one overdue proposal to
// REVISION_DEADLINE_MISSED. It re-reads the row under lock so a racing
// SubmitRevision loses cleanly: whichever transition commits first wins and
// the loser's status check fails. Returns false when the proposal is no
// longer eligible.
func (s *LifecycleService) ExpireRevision(pid uint) (bool, error) {
	var p proposal.Proposal
	var from proposal.Status
	expired := false

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		p, err = tx.Proposal.GetProposalForUpdate(pid)
		if err != nil {
			return proposal.ErrProposalNotFound
		}
		if p.IsLocked || !p.IsRevisionOverdue(s.Clock()) {
			return nil
		}

		from = p.Status
		p.Status = proposal.StatusRevisionDeadlineMissed
		expired = true
		return tx.Proposal.UpdateProposal(&p)
	})
	if err != nil {
		return false, err
	}
	if expired {
		s.afterDeadlineMiss(&p, from)
	}
	return expired, nil
}

// RunDeadlineSweep expires every overdue revision window. Safe to run
// concurrently with PI submissions; already-transitioned proposals are
// filtered out by status and re-checked under lock.
func (s *LifecycleService) RunDeadlineSweep() (int, error) {
	overdue, err := s.Repos.Proposal.ListOverdueRevisions(s.Clock())
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range overdue {
		expired, err := s.ExpireRevision(overdue[i].PID)
		if err != nil {
			log.Printf("deadline sweep: proposal %d: %v", overdue[i].PID, err)
			continue
		}
		if expired {
			count++
		}
	}
	return count, nil
}

func (s *LifecycleService) afterDeadlineMiss(p *proposal.Proposal, from proposal.Status) {
	details := map[string]interface{}{
		"proposal_code": p.ProposalCode,
	}
	if p.RevisionDeadline != nil {
		details["deadline"] = p.RevisionDeadline.Format(time.RFC3339)
	}
	utils.LogAuditWithConsole(nil, audit.ActionRevisionDeadlineMissed, &p.PID, details, s.Repos.Audit)
	s.publish(p, from)

	s.Notifier.Notify(p.PIEmail, notify.KindDeadlineMissed, map[string]string{
		"name":  p.PIName,
		"title": p.Title,
		"code":  p.ProposalCode,
	})
}
