package application

import (
	"log"

	"github.com/nsu-ctrg/grant-review/internal/domain/audit"
	"github.com/nsu-ctrg/grant-review/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{Repos: repos}
}

func (s *AuditService) Query(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(params)
}

// ProposalHistory returns the full audit trail for one proposal, oldest
// first, so the chair can reconstruct every decision.
func (s *AuditService) ProposalHistory(pid uint) ([]audit.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(repository.AuditQueryParams{PID: &pid})
}

// CleanupOldLogs drops audit rows past the retention horizon.
func (s *AuditService) CleanupOldLogs(retentionDays int) {
	if err := s.Repos.Audit.DeleteOldAuditLogs(retentionDays); err != nil {
		log.Printf("audit cleanup: %v", err)
	}
}
