package review

import (
	"strconv"
	"time"

	"github.com/nsu-ctrg/grant-review/internal/domain/user"
)

// ReviewerProfile extends a user account with reviewer capacity settings.
// The current workload is always counted live from PENDING assignments,
// never cached here.
type ReviewerProfile struct {
	ID              uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UID             uint       `gorm:"column:u_id;not null;uniqueIndex" json:"uid"`
	User            *user.User `gorm:"foreignKey:UID" json:"user,omitempty"`
	Department      string     `gorm:"size:255" json:"department"`
	AreaOfExpertise string     `gorm:"type:text" json:"area_of_expertise"`
	MaxReviewLoad   int        `gorm:"default:5" json:"max_review_load"`
	IsActiveReviewer bool      `gorm:"default:true" json:"is_active_reviewer"`
	CreatedAt       time.Time  `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (ReviewerProfile) TableName() string {
	return "reviewer_profiles"
}

type Stage int

const (
	Stage1 Stage = 1
	Stage2 Stage = 2
)

func (s Stage) String() string {
	return strconv.Itoa(int(s))
}

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "PENDING"
	AssignmentCompleted AssignmentStatus = "COMPLETED"
)

// ReviewAssignment links one reviewer to one proposal for one stage.
// At most one assignment may exist per (proposal, reviewer, stage).
type ReviewAssignment struct {
	ID       uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	PID      uint             `gorm:"column:p_id;not null;uniqueIndex:idx_assignment_triple" json:"pid"`
	UID      uint             `gorm:"column:u_id;not null;uniqueIndex:idx_assignment_triple" json:"uid"`
	Stage    Stage            `gorm:"not null;uniqueIndex:idx_assignment_triple" json:"stage"`
	Status   AssignmentStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	Deadline time.Time        `gorm:"not null" json:"deadline"`

	NotificationSent bool `gorm:"default:false" json:"notification_sent"`

	Reviewer *user.User `gorm:"foreignKey:UID" json:"reviewer,omitempty"`

	// Has-one review artifacts, populated by preload where needed.
	Stage1Score  *Stage1Score  `gorm:"foreignKey:AssignmentID" json:"stage1_score,omitempty"`
	Stage2Review *Stage2Review `gorm:"foreignKey:AssignmentID" json:"stage2_review,omitempty"`

	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (ReviewAssignment) TableName() string {
	return "review_assignments"
}

// Stage-1 rubric maxima. The eight criteria total 100.
const (
	MaxOriginality          = 15
	MaxClarity              = 15
	MaxLiteratureReview     = 15
	MaxMethodology          = 15
	MaxImpact               = 15
	MaxPublicationPotential = 10
	MaxBudgetAppropriateness = 10
	MaxTimelinePracticality = 5
)

// Stage1Score holds the eight criterion scores for one stage-1 assignment.
// The total is always derived from the criteria; it is never stored.
type Stage1Score struct {
	ID           uint `gorm:"primaryKey;autoIncrement" json:"id"`
	AssignmentID uint `gorm:"not null;uniqueIndex" json:"assignment_id"`

	OriginalityScore          int `gorm:"default:0" json:"originality_score"`
	ClarityScore              int `gorm:"default:0" json:"clarity_score"`
	LiteratureReviewScore     int `gorm:"default:0" json:"literature_review_score"`
	MethodologyScore          int `gorm:"default:0" json:"methodology_score"`
	ImpactScore               int `gorm:"default:0" json:"impact_score"`
	PublicationPotentialScore int `gorm:"default:0" json:"publication_potential_score"`
	BudgetAppropriatenessScore int `gorm:"default:0" json:"budget_appropriateness_score"`
	TimelinePracticalityScore int `gorm:"default:0" json:"timeline_practicality_score"`

	NarrativeComments string `gorm:"type:text" json:"narrative_comments"`

	IsDraft     bool      `gorm:"default:true" json:"is_draft"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Stage1Score) TableName() string {
	return "stage1_scores"
}

// TotalScore is the live sum of the eight criteria (0-100).
func (s *Stage1Score) TotalScore() int {
	return s.OriginalityScore +
		s.ClarityScore +
		s.LiteratureReviewScore +
		s.MethodologyScore +
		s.ImpactScore +
		s.PublicationPotentialScore +
		s.BudgetAppropriatenessScore +
		s.TimelinePracticalityScore
}

// Validate checks each criterion against its rubric maximum.
func (s *Stage1Score) Validate() error {
	checks := []struct {
		name  string
		value int
		max   int
	}{
		{"originality_score", s.OriginalityScore, MaxOriginality},
		{"clarity_score", s.ClarityScore, MaxClarity},
		{"literature_review_score", s.LiteratureReviewScore, MaxLiteratureReview},
		{"methodology_score", s.MethodologyScore, MaxMethodology},
		{"impact_score", s.ImpactScore, MaxImpact},
		{"publication_potential_score", s.PublicationPotentialScore, MaxPublicationPotential},
		{"budget_appropriateness_score", s.BudgetAppropriatenessScore, MaxBudgetAppropriateness},
		{"timeline_practicality_score", s.TimelinePracticalityScore, MaxTimelinePracticality},
	}
	for _, c := range checks {
		if c.value < 0 || c.value > c.max {
			return &CriterionRangeError{Criterion: c.name, Value: c.value, Max: c.max}
		}
	}
	return nil
}

type ConcernsAddressed string

const (
	ConcernsYes       ConcernsAddressed = "YES"
	ConcernsPartially ConcernsAddressed = "PARTIALLY"
	ConcernsNo        ConcernsAddressed = "NO"
)

type Recommendation string

const (
	RecommendAccept Recommendation = "ACCEPT"
	RecommendReject Recommendation = "REJECT"
)

// Stage2Review records whether stage-1 concerns were addressed in the
// revised proposal.
type Stage2Review struct {
	ID           uint `gorm:"primaryKey;autoIncrement" json:"id"`
	AssignmentID uint `gorm:"not null;uniqueIndex" json:"assignment_id"`

	ConcernsAddressed ConcernsAddressed `gorm:"size:20;not null" json:"concerns_addressed"`
	Recommendation    Recommendation    `gorm:"size:20;not null" json:"recommendation"`
	RevisedScore      *int              `json:"revised_score"`
	Comments          string            `gorm:"type:text" json:"comments"`

	IsDraft     bool      `gorm:"default:true" json:"is_draft"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Stage2Review) TableName() string {
	return "stage2_reviews"
}
