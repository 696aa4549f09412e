package audit

import (
	"time"

	"gorm.io/datatypes"
)

// Action types recorded by the lifecycle and workload services.
const (
	ActionProposalSubmitted      = "PROPOSAL_SUBMITTED"
	ActionReviewerAssigned       = "REVIEWER_ASSIGNED"
	ActionReviewSubmitted        = "REVIEW_SUBMITTED"
	ActionStage1DecisionMade     = "STAGE1_DECISION_MADE"
	ActionRevisionRequested      = "REVISION_REQUESTED"
	ActionRevisionSubmitted      = "REVISION_SUBMITTED"
	ActionRevisionDeadlineMissed = "REVISION_DEADLINE_MISSED"
	ActionStage2ReviewStarted    = "STAGE2_REVIEW_STARTED"
	ActionFinalDecisionMade      = "FINAL_DECISION_MADE"
)

// AuditLog is an append-only event record. Rows are never updated or deleted
// by the services; only the retention cleanup task removes old rows.
type AuditLog struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UID        *uint          `gorm:"column:u_id" json:"uid"`
	ActionType string         `gorm:"size:100;not null;index" json:"action_type"`
	PID        *uint          `gorm:"column:p_id;index" json:"pid"`
	Details    datatypes.JSON `json:"details"`
	IPAddress  string         `gorm:"size:45" json:"ip_address"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
