package cycle

import "time"

type CreateCycleDTO struct {
	Name                    string     `json:"name" binding:"required"`
	Year                    string     `json:"year" binding:"required"`
	StartDate               time.Time  `json:"start_date" binding:"required"`
	EndDate                 time.Time  `json:"end_date" binding:"required"`
	Stage1ReviewStart       *time.Time `json:"stage1_review_start"`
	Stage1ReviewEnd         *time.Time `json:"stage1_review_end"`
	Stage2ReviewStart       *time.Time `json:"stage2_review_start"`
	Stage2ReviewEnd         *time.Time `json:"stage2_review_end"`
	RevisionWindowDays      *int       `json:"revision_window_days"`
	AcceptanceThreshold     *float64   `json:"acceptance_threshold"`
	MaxReviewersPerProposal *int       `json:"max_reviewers_per_proposal" binding:"omitempty,min=1,max=4"`
}

type UpdateCycleDTO struct {
	Name                    *string    `json:"name"`
	StartDate               *time.Time `json:"start_date"`
	EndDate                 *time.Time `json:"end_date"`
	Stage1ReviewStart       *time.Time `json:"stage1_review_start"`
	Stage1ReviewEnd         *time.Time `json:"stage1_review_end"`
	Stage2ReviewStart       *time.Time `json:"stage2_review_start"`
	Stage2ReviewEnd         *time.Time `json:"stage2_review_end"`
	RevisionWindowDays      *int       `json:"revision_window_days"`
	AcceptanceThreshold     *float64   `json:"acceptance_threshold"`
	MaxReviewersPerProposal *int       `json:"max_reviewers_per_proposal" binding:"omitempty,min=1,max=4"`
	IsActive                *bool      `json:"is_active"`
}
