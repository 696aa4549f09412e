package repository

import (
	"time"

	"github.com/nsu-ctrg/grant-review/internal/domain/proposal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProposalRepo interface {
	CreateProposal(p *proposal.Proposal) error
	GetProposalByID(id uint) (proposal.Proposal, error)
	GetProposalByCode(code string) (proposal.Proposal, error)
	// GetProposalForUpdate reads the row under SELECT ... FOR UPDATE; every
	// status transition must go through it inside a transaction.
	GetProposalForUpdate(id uint) (proposal.Proposal, error)
	UpdateProposal(p *proposal.Proposal) error
	DeleteProposal(id uint) error
	ListProposals(params proposal.ListProposalsParams) ([]proposal.Proposal, error)
	CountByCodePrefix(prefix string) (int64, error)
	CodeExists(code string) (bool, error)

	ListOverdueRevisions(now time.Time) ([]proposal.Proposal, error)
	ListRevisionsDueWithin(now time.Time, window time.Duration) ([]proposal.Proposal, error)

	CreateStage1Decision(d *proposal.Stage1Decision) error
	GetStage1Decision(pid uint) (proposal.Stage1Decision, error)
	CreateFinalDecision(d *proposal.FinalDecision) error
	GetFinalDecision(pid uint) (proposal.FinalDecision, error)

	WithTx(tx *gorm.DB) ProposalRepo
}

type DBProposalRepo struct {
	db *gorm.DB
}

func NewProposalRepo(db *gorm.DB) *DBProposalRepo {
	return &DBProposalRepo{db: db}
}

func (r *DBProposalRepo) CreateProposal(p *proposal.Proposal) error {
	return r.db.Create(p).Error
}

func (r *DBProposalRepo) GetProposalByID(id uint) (proposal.Proposal, error) {
	var p proposal.Proposal
	err := r.db.Preload("Cycle").First(&p, id).Error
	return p, err
}

func (r *DBProposalRepo) GetProposalByCode(code string) (proposal.Proposal, error) {
	var p proposal.Proposal
	err := r.db.Preload("Cycle").Where("proposal_code = ?", code).First(&p).Error
	return p, err
}

func (r *DBProposalRepo) GetProposalForUpdate(id uint) (proposal.Proposal, error) {
	var p proposal.Proposal
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error
	return p, err
}

func (r *DBProposalRepo) UpdateProposal(p *proposal.Proposal) error {
	return r.db.Save(p).Error
}

func (r *DBProposalRepo) DeleteProposal(id uint) error {
	return r.db.Delete(&proposal.Proposal{}, id).Error
}

func (r *DBProposalRepo) ListProposals(params proposal.ListProposalsParams) ([]proposal.Proposal, error) {
	var proposals []proposal.Proposal
	query := r.db.Model(&proposal.Proposal{})

	if params.CID != nil {
		query = query.Where("c_id = ?", *params.CID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	query = query.Order("create_at DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Find(&proposals).Error
	return proposals, err
}

func (r *DBProposalRepo) CountByCodePrefix(prefix string) (int64, error) {
	var count int64
	err := r.db.Model(&proposal.Proposal{}).
		Where("proposal_code LIKE ?", prefix+"%").
		Count(&count).Error
	return count, err
}

func (r *DBProposalRepo) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&proposal.Proposal{}).
		Where("proposal_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (r *DBProposalRepo) ListOverdueRevisions(now time.Time) ([]proposal.Proposal, error) {
	var proposals []proposal.Proposal
	err := r.db.Preload("Cycle").
		Where("status = ? AND revision_deadline < ?", proposal.StatusRevisionRequested, now).
		Find(&proposals).Error
	return proposals, err
}

func (r *DBProposalRepo) ListRevisionsDueWithin(now time.Time, window time.Duration) ([]proposal.Proposal, error) {
	var proposals []proposal.Proposal
	err := r.db.
		Where("status = ? AND revision_deadline > ? AND revision_deadline <= ?",
			proposal.StatusRevisionRequested, now, now.Add(window)).
		Find(&proposals).Error
	return proposals, err
}

func (r *DBProposalRepo) CreateStage1Decision(d *proposal.Stage1Decision) error {
	return r.db.Create(d).Error
}

func (r *DBProposalRepo) GetStage1Decision(pid uint) (proposal.Stage1Decision, error) {
	var d proposal.Stage1Decision
	err := r.db.Where("p_id = ?", pid).First(&d).Error
	return d, err
}

func (r *DBProposalRepo) CreateFinalDecision(d *proposal.FinalDecision) error {
	return r.db.Create(d).Error
}

func (r *DBProposalRepo) GetFinalDecision(pid uint) (proposal.FinalDecision, error) {
	var d proposal.FinalDecision
	err := r.db.Where("p_id = ?", pid).First(&d).Error
	return d, err
}

func (r *DBProposalRepo) WithTx(tx *gorm.DB) ProposalRepo {
	if tx == nil {
		return r
	}
	return &DBProposalRepo{db: tx}
}
