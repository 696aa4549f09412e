package application

import (
	"errors"
	"log"
	"time"

	"github.com/nsu-ctrg/grant-review/internal/domain/audit"
	"github.com/nsu-ctrg/grant-review/internal/domain/proposal"
	"github.com/nsu-ctrg/grant-review/internal/domain/review"
	"github.com/nsu-ctrg/grant-review/internal/notify"
	"github.com/nsu-ctrg/grant-review/internal/repository"
	"github.com/nsu-ctrg/grant-review/pkg/utils"
	"gorm.io/gorm"
)

// WorkloadService manages reviewer profiles and review assignments. All
// workload figures are computed from assignment rows at call time; nothing
// stores a counter that could drift.
type WorkloadService struct {
	Repos    *repository.Repos
	Notifier notify.Notifier
}

func NewWorkloadService(repos *repository.Repos, notifier notify.Notifier) *WorkloadService {
	return &WorkloadService{Repos: repos, Notifier: notifier}
}

// validateAssignment runs the assignment checks in a fixed order so callers
// always see the most specific error first.
func (s *WorkloadService) validateAssignment(tx *repository.Repos, p *proposal.Proposal, uid uint, stage review.Stage) error {
	exists, err := tx.Assignment.AssignmentExists(p.PID, uid, stage)
	if err != nil {
		return err
	}
	if exists {
		return review.ErrDuplicateAssignment
	}

	profile, err := tx.Reviewer.GetProfileByUserID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return review.ErrNoReviewerProfile
		}
		return err
	}
	if !profile.IsActiveReviewer {
		return review.ErrReviewerInactive
	}

	pending, err := tx.Assignment.CountPendingByReviewer(uid)
	if err != nil {
		return err
	}
	if pending >= int64(profile.MaxReviewLoad) {
		return review.ErrWorkloadExceeded
	}

	cyc, err := tx.Cycle.GetCycleByID(p.CID)
	if err != nil {
		return err
	}
	count, err := tx.Assignment.CountByProposalStage(p.PID, stage)
	if err != nil {
		return err
	}
	if count >= int64(cyc.MaxReviewersPerProposal) {
		return review.ErrProposalCapacity
	}

	return nil
}

// Assign creates a review assignment for one reviewer on one proposal stage.
// The first stage-1 assignment on a SUBMITTED proposal also moves it to
// UNDER_STAGE_1_REVIEW; later assignments leave the status alone, so the
// transition is idempotent across concurrent assigns.
func (s *WorkloadService) Assign(actor *uint, input review.CreateAssignmentDTO) (*review.ReviewAssignment, error) {
	var (
		p            proposal.Proposal
		assignment   review.ReviewAssignment
		reviewerMail string
		reviewerName string
		transitioned bool
	)

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		p, err = tx.Proposal.GetProposalForUpdate(input.PID)
		if err != nil {
			return proposal.ErrProposalNotFound
		}
		if p.IsLocked {
			return proposal.ErrProposalLocked
		}

		stage := review.Stage(input.Stage)
		switch stage {
		case review.Stage1:
			if p.Status != proposal.StatusSubmitted && p.Status != proposal.StatusUnderStage1Review {
				return proposal.NewInvalidState("assign a stage-1 reviewer to", p.Status)
			}
		case review.Stage2:
			if p.Status != proposal.StatusUnderStage2Review {
				return proposal.NewInvalidState("assign a stage-2 reviewer to", p.Status)
			}
		default:
			return review.ErrWrongStage
		}

		if err := s.validateAssignment(tx, &p, input.UID, stage); err != nil {
			return err
		}

		assignment = review.ReviewAssignment{
			PID:      input.PID,
			UID:      input.UID,
			Stage:    stage,
			Status:   review.AssignmentPending,
			Deadline: input.Deadline,
		}
		if err := tx.Assignment.CreateAssignment(&assignment); err != nil {
			return err
		}

		u, err := tx.User.GetUserByID(input.UID)
		if err != nil {
			return err
		}
		reviewerMail = u.Email
		reviewerName = u.DisplayName()

		if p.Status == proposal.StatusSubmitted && stage == review.Stage1 {
			p.Status = proposal.StatusUnderStage1Review
			transitioned = true
			return tx.Proposal.UpdateProposal(&p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(actor, audit.ActionReviewerAssigned, &p.PID, map[string]interface{}{
		"reviewer_id":   assignment.UID,
		"stage":         int(assignment.Stage),
		"deadline":      assignment.Deadline.Format(time.RFC3339),
		"started_round": transitioned,
	}, s.Repos.Audit)

	sent := s.Notifier.Notify(reviewerMail, notify.KindReviewerAssigned, map[string]string{
		"name":     reviewerName,
		"title":    p.Title,
		"code":     p.ProposalCode,
		"stage":    review.Stage(assignment.Stage).String(),
		"deadline": assignment.Deadline.Format("2006-01-02 15:04"),
	})
	if sent {
		assignment.NotificationSent = true
		if err := s.Repos.Assignment.UpdateAssignment(&assignment); err != nil {
			log.Printf("mark assignment %d notified: %v", assignment.ID, err)
		}
	}

	return &assignment, nil
}

// GetReviewerWorkload computes the live workload of one reviewer.
func (s *WorkloadService) GetReviewerWorkload(uid uint) (*review.WorkloadStats, error) {
	profile, err := s.Repos.Reviewer.GetProfileByUserID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrNoReviewerProfile
		}
		return nil, err
	}
	u, err := s.Repos.User.GetUserByID(uid)
	if err != nil {
		return nil, err
	}
	return s.buildStats(&profile, u.Email, u.DisplayName())
}

// ListWorkloads returns live stats for every reviewer profile, for the
// chair's assignment dashboard.
func (s *WorkloadService) ListWorkloads() ([]review.WorkloadStats, error) {
	profiles, err := s.Repos.Reviewer.ListProfiles()
	if err != nil {
		return nil, err
	}

	stats := make([]review.WorkloadStats, 0, len(profiles))
	for i := range profiles {
		u, err := s.Repos.User.GetUserByID(profiles[i].UID)
		if err != nil {
			return nil, err
		}
		st, err := s.buildStats(&profiles[i], u.Email, u.DisplayName())
		if err != nil {
			return nil, err
		}
		stats = append(stats, *st)
	}
	return stats, nil
}

func (s *WorkloadService) buildStats(profile *review.ReviewerProfile, email, name string) (*review.WorkloadStats, error) {
	uid := profile.UID
	pending := review.AssignmentPending
	completed := review.AssignmentCompleted
	stage1 := review.Stage1
	stage2 := review.Stage2

	total, err := s.Repos.Assignment.CountByReviewer(uid, nil, nil)
	if err != nil {
		return nil, err
	}
	pendingCount, err := s.Repos.Assignment.CountByReviewer(uid, &pending, nil)
	if err != nil {
		return nil, err
	}
	completedCount, err := s.Repos.Assignment.CountByReviewer(uid, &completed, nil)
	if err != nil {
		return nil, err
	}
	s1Pending, err := s.Repos.Assignment.CountByReviewer(uid, &pending, &stage1)
	if err != nil {
		return nil, err
	}
	s2Pending, err := s.Repos.Assignment.CountByReviewer(uid, &pending, &stage2)
	if err != nil {
		return nil, err
	}

	return &review.WorkloadStats{
		UID:           uid,
		Email:         email,
		Name:          name,
		IsActive:      profile.IsActiveReviewer,
		MaxReviewLoad: profile.MaxReviewLoad,
		Total:         total,
		Pending:       pendingCount,
		Completed:     completedCount,
		Stage1Pending: s1Pending,
		Stage2Pending: s2Pending,
		CanAcceptMore: profile.IsActiveReviewer && pendingCount < int64(profile.MaxReviewLoad),
	}, nil
}

// CreateProfile registers a user as reviewer.
func (s *WorkloadService) CreateProfile(input review.CreateProfileDTO) (*review.ReviewerProfile, error) {
	profile := review.ReviewerProfile{
		UID:              input.UID,
		Department:       input.Department,
		AreaOfExpertise:  input.AreaOfExpertise,
		MaxReviewLoad:    5,
		IsActiveReviewer: true,
	}
	if input.MaxReviewLoad != nil {
		profile.MaxReviewLoad = *input.MaxReviewLoad
	}
	if input.IsActiveReviewer != nil {
		profile.IsActiveReviewer = *input.IsActiveReviewer
	}
	if err := s.Repos.Reviewer.CreateProfile(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile changes capacity or active flag. Deactivating a reviewer
// blocks new assignments only; existing pending reviews stay theirs.
func (s *WorkloadService) UpdateProfile(uid uint, input review.UpdateProfileDTO) (*review.ReviewerProfile, error) {
	profile, err := s.Repos.Reviewer.GetProfileByUserID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrNoReviewerProfile
		}
		return nil, err
	}
	if input.Department != nil {
		profile.Department = *input.Department
	}
	if input.AreaOfExpertise != nil {
		profile.AreaOfExpertise = *input.AreaOfExpertise
	}
	if input.MaxReviewLoad != nil {
		profile.MaxReviewLoad = *input.MaxReviewLoad
	}
	if input.IsActiveReviewer != nil {
		profile.IsActiveReviewer = *input.IsActiveReviewer
	}
	if err := s.Repos.Reviewer.UpdateProfile(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
