package review

import "time"

type CreateAssignmentDTO struct {
	PID      uint      `json:"pid" binding:"required"`
	UID      uint      `json:"uid" binding:"required"`
	Stage    Stage     `json:"stage" binding:"required,oneof=1 2"`
	Deadline time.Time `json:"deadline" binding:"required"`
}

type Stage1ScoreDTO struct {
	OriginalityScore           int    `json:"originality_score" binding:"min=0,max=15"`
	ClarityScore               int    `json:"clarity_score" binding:"min=0,max=15"`
	LiteratureReviewScore      int    `json:"literature_review_score" binding:"min=0,max=15"`
	MethodologyScore           int    `json:"methodology_score" binding:"min=0,max=15"`
	ImpactScore                int    `json:"impact_score" binding:"min=0,max=15"`
	PublicationPotentialScore  int    `json:"publication_potential_score" binding:"min=0,max=10"`
	BudgetAppropriatenessScore int    `json:"budget_appropriateness_score" binding:"min=0,max=10"`
	TimelinePracticalityScore  int    `json:"timeline_practicality_score" binding:"min=0,max=5"`
	NarrativeComments          string `json:"narrative_comments"`
	IsDraft                    bool   `json:"is_draft"`
}

type Stage2ReviewDTO struct {
	ConcernsAddressed ConcernsAddressed `json:"concerns_addressed" binding:"required,oneof=YES PARTIALLY NO"`
	Recommendation    Recommendation    `json:"recommendation" binding:"required,oneof=ACCEPT REJECT"`
	RevisedScore      *int              `json:"revised_score" binding:"omitempty,min=0,max=100"`
	Comments          string            `json:"comments"`
	IsDraft           bool              `json:"is_draft"`
}

type CreateProfileDTO struct {
	UID              uint   `json:"uid" binding:"required"`
	Department       string `json:"department"`
	AreaOfExpertise  string `json:"area_of_expertise"`
	MaxReviewLoad    *int   `json:"max_review_load" binding:"omitempty,min=1"`
	IsActiveReviewer *bool  `json:"is_active_reviewer"`
}

type UpdateProfileDTO struct {
	Department       *string `json:"department"`
	AreaOfExpertise  *string `json:"area_of_expertise"`
	MaxReviewLoad    *int    `json:"max_review_load" binding:"omitempty,min=1"`
	IsActiveReviewer *bool   `json:"is_active_reviewer"`
}

// WorkloadStats is the live workload view for one reviewer. All counts are
// computed from assignments at read time.
type WorkloadStats struct {
	UID           uint   `json:"uid"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	IsActive      bool   `json:"is_active_reviewer"`
	MaxReviewLoad int    `json:"max_review_load"`
	Total         int64  `json:"total"`
	Pending       int64  `json:"pending"`
	Completed     int64  `json:"completed"`
	Stage1Pending int64  `json:"stage1_pending"`
	Stage2Pending int64  `json:"stage2_pending"`
	CanAcceptMore bool   `json:"can_accept_more"`
}
