package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Cycle      CycleRepo
	Proposal   ProposalRepo
	Assignment AssignmentRepo
	Reviewer   ReviewerRepo
	User       UserRepo
	Audit      AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Cycle:      NewCycleRepo(db),
		Proposal:   NewProposalRepo(db),
		Assignment: NewAssignmentRepo(db),
		Reviewer:   NewReviewerRepo(db),
		User:       NewUserRepo(db),
		Audit:      NewAuditRepo(db),
		db:         db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Cycle:      r.Cycle.WithTx(tx),
		Proposal:   r.Proposal.WithTx(tx),
		Assignment: r.Assignment.WithTx(tx),
		Reviewer:   r.Reviewer.WithTx(tx),
		User:       r.User.WithTx(tx),
		Audit:      r.Audit.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn inside one transaction. Lifecycle transitions rely on this
// plus ProposalRepo.GetProposalForUpdate for read-check-write atomicity on a
// single proposal row. When no shared handle is present (mock-wired tests),
// fn runs directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
