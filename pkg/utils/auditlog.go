package utils

import (
	"encoding/json"
	"log"

	"github.com/nsu-ctrg/grant-review/internal/domain/audit"
	"github.com/nsu-ctrg/grant-review/internal/repository"
)

// LogAuditWithConsole records an audit event, logging failures instead of
// returning them. Audit writes are fire-and-forget: a failed write must never
// surface from the operation that triggered it.
var LogAuditWithConsole = func(actor *uint, actionType string, pid *uint, details map[string]interface{}, repo repository.AuditRepo) {
	if err := LogAudit(actor, actionType, pid, details, "", repo); err != nil {
		log.Printf("[LogAudit] error: %v", err)
	}
}

func LogAudit(
	actor *uint,
	actionType string,
	pid *uint,
	details map[string]interface{},
	ipAddress string,
	repo repository.AuditRepo,
) error {
	var payload []byte
	if details != nil {
		var err error
		payload, err = json.Marshal(details)
		if err != nil {
			log.Printf("Audit marshal details error: %v", err)
			payload = nil
		}
	}

	entry := &audit.AuditLog{
		UID:        actor,
		ActionType: actionType,
		PID:        pid,
		Details:    payload,
		IPAddress:  ipAddress,
	}

	return repo.CreateAuditLog(entry)
}
