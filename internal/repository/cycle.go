package repository

import (
	"github.com/nsu-ctrg/grant-review/internal/domain/cycle"
	"gorm.io/gorm"
)

type CycleRepo interface {
	CreateCycle(c *cycle.GrantCycle) error
	GetCycleByID(id uint) (cycle.GrantCycle, error)
	UpdateCycle(c *cycle.GrantCycle) error
	ListCycles() ([]cycle.GrantCycle, error)
	ListActiveCycles() ([]cycle.GrantCycle, error)
	CountProposals(cid uint) (int64, error)
	WithTx(tx *gorm.DB) CycleRepo
}

type DBCycleRepo struct {
	db *gorm.DB
}

func NewCycleRepo(db *gorm.DB) *DBCycleRepo {
	return &DBCycleRepo{db: db}
}

func (r *DBCycleRepo) CreateCycle(c *cycle.GrantCycle) error {
	return r.db.Create(c).Error
}

func (r *DBCycleRepo) GetCycleByID(id uint) (cycle.GrantCycle, error) {
	var c cycle.GrantCycle
	err := r.db.First(&c, id).Error
	return c, err
}

func (r *DBCycleRepo) UpdateCycle(c *cycle.GrantCycle) error {
	return r.db.Save(c).Error
}

func (r *DBCycleRepo) ListCycles() ([]cycle.GrantCycle, error) {
	var cycles []cycle.GrantCycle
	err := r.db.Order("year DESC, create_at DESC").Find(&cycles).Error
	return cycles, err
}

func (r *DBCycleRepo) ListActiveCycles() ([]cycle.GrantCycle, error) {
	var cycles []cycle.GrantCycle
	err := r.db.Where("is_active = ?", true).Order("year DESC").Find(&cycles).Error
	return cycles, err
}

func (r *DBCycleRepo) CountProposals(cid uint) (int64, error) {
	var count int64
	err := r.db.Table("proposals").Where("c_id = ?", cid).Count(&count).Error
	return count, err
}

func (r *DBCycleRepo) WithTx(tx *gorm.DB) CycleRepo {
	if tx == nil {
		return r
	}
	return &DBCycleRepo{db: tx}
}
