package proposal

import (
	"time"

	"github.com/nsu-ctrg/grant-review/internal/domain/cycle"
)

// Status is the proposal lifecycle state. Transitions are enumerated in
// validTransitions; nothing else in the codebase compares raw status strings.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"

	StatusUnderStage1Review     Status = "UNDER_STAGE_1_REVIEW"
	StatusStage1Rejected        Status = "STAGE_1_REJECTED"
	StatusAcceptedNoCorrections Status = "ACCEPTED_NO_CORRECTIONS"
	StatusTentativelyAccepted   Status = "TENTATIVELY_ACCEPTED"

	StatusRevisionRequested        Status = "REVISION_REQUESTED"
	StatusRevisedProposalSubmitted Status = "REVISED_PROPOSAL_SUBMITTED"
	StatusRevisionDeadlineMissed   Status = "REVISION_DEADLINE_MISSED"

	StatusUnderStage2Review Status = "UNDER_STAGE_2_REVIEW"

	StatusFinalAccepted Status = "FINAL_ACCEPTED"
	StatusFinalRejected Status = "FINAL_REJECTED"
)

var validTransitions = map[Status][]Status{
	StatusDraft:               {StatusSubmitted},
	StatusSubmitted:           {StatusUnderStage1Review},
	StatusUnderStage1Review:   {StatusStage1Rejected, StatusAcceptedNoCorrections, StatusTentativelyAccepted},
	StatusTentativelyAccepted: {StatusRevisionRequested},
	StatusRevisionRequested:   {StatusRevisedProposalSubmitted, StatusRevisionDeadlineMissed},
	StatusRevisedProposalSubmitted: {
		StatusUnderStage2Review,
		StatusFinalAccepted, // direct final decision without a stage-2 round
		StatusFinalRejected,
	},
	StatusUnderStage2Review: {StatusFinalAccepted, StatusFinalRejected},
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// Proposal is the central entity of the review workflow. Only the lifecycle
// service writes Status, IsLocked and RevisionDeadline.
type Proposal struct {
	PID uint `gorm:"primaryKey;column:p_id;autoIncrement" json:"pid"`

	// Auto-generated, globally unique, e.g. CTRG-2025-001.
	ProposalCode string `gorm:"size:50;not null;uniqueIndex" json:"proposal_code"`

	Title    string `gorm:"size:255;not null" json:"title"`
	Abstract string `gorm:"type:text" json:"abstract"`

	PIName          string `gorm:"size:255;not null" json:"pi_name"`
	PIDepartment    string `gorm:"size:255" json:"pi_department"`
	PIEmail         string `gorm:"size:255;not null" json:"pi_email"`
	CoInvestigators string `gorm:"type:text" json:"co_investigators"`

	FundRequested float64 `gorm:"type:decimal(12,2)" json:"fund_requested"`

	// Object-storage keys; uploads go through internal/storage.
	ProposalFileKey     string `gorm:"size:255" json:"proposal_file_key"`
	TemplateFileKey     string `gorm:"size:255" json:"template_file_key"`
	RevisedFileKey      string `gorm:"size:255" json:"revised_file_key"`
	ResponseFileKey     string `gorm:"size:255" json:"response_file_key"`

	CID   uint              `gorm:"column:c_id;not null" json:"cid"`
	Cycle *cycle.GrantCycle `gorm:"foreignKey:CID" json:"cycle,omitempty"`

	Status   Status `gorm:"size:50;not null;default:'DRAFT'" json:"status"`
	IsLocked bool   `gorm:"default:false" json:"is_locked"`

	SubmittedAt      *time.Time `json:"submitted_at"`
	RevisionDeadline *time.Time `json:"revision_deadline"`
	CreatedAt        time.Time  `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Proposal) TableName() string {
	return "proposals"
}

// IsRevisionOverdue reports whether the revision window has lapsed at t.
func (p *Proposal) IsRevisionOverdue(t time.Time) bool {
	return p.Status == StatusRevisionRequested &&
		p.RevisionDeadline != nil &&
		t.After(*p.RevisionDeadline)
}

// Stage1DecisionKind is the chair's verdict after stage-1 reviews.
type Stage1DecisionKind string

const (
	Stage1Reject            Stage1DecisionKind = "REJECT"
	Stage1Accept            Stage1DecisionKind = "ACCEPT"
	Stage1TentativelyAccept Stage1DecisionKind = "TENTATIVELY_ACCEPT"
)

// Stage1Decision is created exactly once per proposal and never updated.
// AverageScore is a snapshot of the stage-1 mean at decision time.
type Stage1Decision struct {
	ID            uint               `gorm:"primaryKey;autoIncrement" json:"id"`
	PID           uint               `gorm:"column:p_id;not null;uniqueIndex" json:"pid"`
	Decision      Stage1DecisionKind `gorm:"size:30;not null" json:"decision"`
	ChairComments string             `gorm:"type:text" json:"chair_comments"`
	AverageScore  float64            `gorm:"type:decimal(5,2);not null" json:"average_score"`
	DecisionDate  time.Time          `gorm:"autoCreateTime" json:"decision_date"`
}

func (Stage1Decision) TableName() string {
	return "stage1_decisions"
}

// FinalDecisionKind is the terminal verdict.
type FinalDecisionKind string

const (
	FinalAccepted FinalDecisionKind = "ACCEPTED"
	FinalRejected FinalDecisionKind = "REJECTED"
)

// FinalDecision is created exactly once per proposal; creating it locks the
// proposal permanently.
type FinalDecision struct {
	ID             uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	PID            uint              `gorm:"column:p_id;not null;uniqueIndex" json:"pid"`
	Decision       FinalDecisionKind `gorm:"size:20;not null" json:"decision"`
	ApprovedAmount float64           `gorm:"type:decimal(12,2)" json:"approved_amount"`
	FinalRemarks   string            `gorm:"type:text" json:"final_remarks"`
	DecisionDate   time.Time         `gorm:"autoCreateTime" json:"decision_date"`
}

func (FinalDecision) TableName() string {
	return "final_decisions"
}
