package repository

import (
	"github.com/nsu-ctrg/grant-review/internal/domain/review"
	"gorm.io/gorm"
)

type ReviewerRepo interface {
	CreateProfile(p *review.ReviewerProfile) error
	GetProfileByUserID(uid uint) (review.ReviewerProfile, error)
	UpdateProfile(p *review.ReviewerProfile) error
	ListProfiles() ([]review.ReviewerProfile, error)
	WithTx(tx *gorm.DB) ReviewerRepo
}

type DBReviewerRepo struct {
	db *gorm.DB
}

func NewReviewerRepo(db *gorm.DB) *DBReviewerRepo {
	return &DBReviewerRepo{db: db}
}

func (r *DBReviewerRepo) CreateProfile(p *review.ReviewerProfile) error {
	return r.db.Create(p).Error
}

func (r *DBReviewerRepo) GetProfileByUserID(uid uint) (review.ReviewerProfile, error) {
	var p review.ReviewerProfile
	err := r.db.Preload("User").Where("u_id = ?", uid).First(&p).Error
	return p, err
}

func (r *DBReviewerRepo) UpdateProfile(p *review.ReviewerProfile) error {
	return r.db.Save(p).Error
}

func (r *DBReviewerRepo) ListProfiles() ([]review.ReviewerProfile, error) {
	var profiles []review.ReviewerProfile
	err := r.db.Preload("User").Find(&profiles).Error
	return profiles, err
}

func (r *DBReviewerRepo) WithTx(tx *gorm.DB) ReviewerRepo {
	if tx == nil {
		return r
	}
	return &DBReviewerRepo{db: tx}
}
