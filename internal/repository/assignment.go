package repository

import (
	"errors"
	"time"

	"github.com/nsu-ctrg/grant-review/internal/domain/review"
	"gorm.io/gorm"
)

type AssignmentRepo interface {
	CreateAssignment(a *review.ReviewAssignment) error
	GetAssignmentByID(id uint) (review.ReviewAssignment, error)
	// AssignmentExists reports whether the (proposal, reviewer, stage) triple
	// already has an assignment.
	AssignmentExists(pid, uid uint, stage review.Stage) (bool, error)
	// ListByProposalStage returns assignments with their score/review
	// preloaded so the aggregator can run over them directly.
	ListByProposalStage(pid uint, stage review.Stage) ([]review.ReviewAssignment, error)
	ListByReviewer(uid uint) ([]review.ReviewAssignment, error)
	CountByProposalStage(pid uint, stage review.Stage) (int64, error)
	CountByReviewer(uid uint, status *review.AssignmentStatus, stage *review.Stage) (int64, error)
	CountPendingByReviewer(uid uint) (int64, error)
	UpdateAssignment(a *review.ReviewAssignment) error
	ListPendingDueWithin(now time.Time, window time.Duration) ([]review.ReviewAssignment, error)
	ListUnnotified(ids []uint) ([]review.ReviewAssignment, error)

	GetStage1Score(assignmentID uint) (review.Stage1Score, error)
	SaveStage1Score(s *review.Stage1Score) error
	GetStage2Review(assignmentID uint) (review.Stage2Review, error)
	SaveStage2Review(rv *review.Stage2Review) error

	WithTx(tx *gorm.DB) AssignmentRepo
}

type DBAssignmentRepo struct {
	db *gorm.DB
}

func NewAssignmentRepo(db *gorm.DB) *DBAssignmentRepo {
	return &DBAssignmentRepo{db: db}
}

func (r *DBAssignmentRepo) CreateAssignment(a *review.ReviewAssignment) error {
	return r.db.Create(a).Error
}

func (r *DBAssignmentRepo) GetAssignmentByID(id uint) (review.ReviewAssignment, error) {
	var a review.ReviewAssignment
	err := r.db.
		Preload("Reviewer").
		Preload("Stage1Score").
		Preload("Stage2Review").
		First(&a, id).Error
	return a, err
}

func (r *DBAssignmentRepo) AssignmentExists(pid, uid uint, stage review.Stage) (bool, error) {
	var count int64
	err := r.db.Model(&review.ReviewAssignment{}).
		Where("p_id = ? AND u_id = ? AND stage = ?", pid, uid, stage).
		Count(&count).Error
	return count > 0, err
}

func (r *DBAssignmentRepo) ListByProposalStage(pid uint, stage review.Stage) ([]review.ReviewAssignment, error) {
	var assignments []review.ReviewAssignment
	err := r.db.
		Preload("Reviewer").
		Preload("Stage1Score").
		Preload("Stage2Review").
		Where("p_id = ? AND stage = ?", pid, stage).
		Order("create_at ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *DBAssignmentRepo) ListByReviewer(uid uint) ([]review.ReviewAssignment, error) {
	var assignments []review.ReviewAssignment
	err := r.db.
		Preload("Stage1Score").
		Preload("Stage2Review").
		Where("u_id = ?", uid).
		Order("create_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (r *DBAssignmentRepo) CountByProposalStage(pid uint, stage review.Stage) (int64, error) {
	var count int64
	err := r.db.Model(&review.ReviewAssignment{}).
		Where("p_id = ? AND stage = ?", pid, stage).
		Count(&count).Error
	return count, err
}

func (r *DBAssignmentRepo) CountByReviewer(uid uint, status *review.AssignmentStatus, stage *review.Stage) (int64, error) {
	var count int64
	query := r.db.Model(&review.ReviewAssignment{}).Where("u_id = ?", uid)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if stage != nil {
		query = query.Where("stage = ?", *stage)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *DBAssignmentRepo) CountPendingByReviewer(uid uint) (int64, error) {
	var count int64
	err := r.db.Model(&review.ReviewAssignment{}).
		Where("u_id = ? AND status = ?", uid, review.AssignmentPending).
		Count(&count).Error
	return count, err
}

func (r *DBAssignmentRepo) UpdateAssignment(a *review.ReviewAssignment) error {
	return r.db.Save(a).Error
}

func (r *DBAssignmentRepo) ListPendingDueWithin(now time.Time, window time.Duration) ([]review.ReviewAssignment, error) {
	var assignments []review.ReviewAssignment
	err := r.db.
		Preload("Reviewer").
		Where("status = ? AND deadline > ? AND deadline <= ?",
			review.AssignmentPending, now, now.Add(window)).
		Find(&assignments).Error
	return assignments, err
}

func (r *DBAssignmentRepo) ListUnnotified(ids []uint) ([]review.ReviewAssignment, error) {
	var assignments []review.ReviewAssignment
	err := r.db.
		Preload("Reviewer").
		Where("id IN ? AND notification_sent = ?", ids, false).
		Find(&assignments).Error
	return assignments, err
}

func (r *DBAssignmentRepo) GetStage1Score(assignmentID uint) (review.Stage1Score, error) {
	var s review.Stage1Score
	err := r.db.Where("assignment_id = ?", assignmentID).First(&s).Error
	return s, err
}

// SaveStage1Score upserts: a draft may be overwritten until submitted final.
func (r *DBAssignmentRepo) SaveStage1Score(s *review.Stage1Score) error {
	var existing review.Stage1Score
	err := r.db.Where("assignment_id = ?", s.AssignmentID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(s).Error
	}
	if err != nil {
		return err
	}
	s.ID = existing.ID
	s.SubmittedAt = existing.SubmittedAt
	return r.db.Save(s).Error
}

func (r *DBAssignmentRepo) GetStage2Review(assignmentID uint) (review.Stage2Review, error) {
	var rv review.Stage2Review
	err := r.db.Where("assignment_id = ?", assignmentID).First(&rv).Error
	return rv, err
}

func (r *DBAssignmentRepo) SaveStage2Review(rv *review.Stage2Review) error {
	var existing review.Stage2Review
	err := r.db.Where("assignment_id = ?", rv.AssignmentID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(rv).Error
	}
	if err != nil {
		return err
	}
	rv.ID = existing.ID
	rv.SubmittedAt = existing.SubmittedAt
	return r.db.Save(rv).Error
}

func (r *DBAssignmentRepo) WithTx(tx *gorm.DB) AssignmentRepo {
	if tx == nil {
		return r
	}
	return &DBAssignmentRepo{db: tx}
}
