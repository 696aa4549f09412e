package repository

import (
	"time"

	"github.com/nsu-ctrg/grant-review/internal/domain/audit"
	"gorm.io/gorm"
)

type AuditQueryParams struct {
	UID        *uint
	PID        *uint
	ActionType *string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Offset     int
}

type AuditRepo interface {
	CreateAuditLog(entry *audit.AuditLog) error
	GetAuditLogs(params AuditQueryParams) ([]audit.AuditLog, error)
	DeleteOldAuditLogs(retentionDays int) error
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{db: db}
}

func (r *DBAuditRepo) CreateAuditLog(entry *audit.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) GetAuditLogs(params AuditQueryParams) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	query := r.db.Model(&audit.AuditLog{})

	if params.UID != nil {
		query = query.Where("u_id = ?", *params.UID)
	}
	if params.PID != nil {
		query = query.Where("p_id = ?", *params.PID)
	}
	if params.ActionType != nil {
		query = query.Where("action_type = ?", *params.ActionType)
	}
	if params.StartTime != nil {
		query = query.Where("created_at >= ?", *params.StartTime)
	}
	if params.EndTime != nil {
		query = query.Where("created_at <= ?", *params.EndTime)
	}

	query = query.Order("created_at DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Find(&logs).Error
	return logs, err
}

func (r *DBAuditRepo) DeleteOldAuditLogs(retentionDays int) error {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return r.db.Where("created_at < ?", cutoff).Delete(&audit.AuditLog{}).Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{db: tx}
}
