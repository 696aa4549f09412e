package cycle

import "time"

// GrantCycle is the configuration envelope for one grant round
// (e.g. CTRG 2025-2026). Proposals reference it for the revision window,
// acceptance threshold and reviewer capacity.
type GrantCycle struct {
	CID  uint   `gorm:"primaryKey;column:c_id;autoIncrement" json:"cid"`
	Name string `gorm:"size:100;not null" json:"name"`
	Year string `gorm:"size:20;not null" json:"year"` // e.g. "2025-2026"

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	Stage1ReviewStart *time.Time `json:"stage1_review_start"`
	Stage1ReviewEnd   *time.Time `json:"stage1_review_end"`
	Stage2ReviewStart *time.Time `json:"stage2_review_start"`
	Stage2ReviewEnd   *time.Time `json:"stage2_review_end"`

	RevisionWindowDays      int     `gorm:"default:7" json:"revision_window_days"`
	AcceptanceThreshold     float64 `gorm:"type:decimal(5,2);default:70.0" json:"acceptance_threshold"`
	MaxReviewersPerProposal int     `gorm:"default:2" json:"max_reviewers_per_proposal"`

	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (GrantCycle) TableName() string {
	return "grant_cycles"
}

// CodeYear returns the leading year used in proposal codes,
// "2025" for a cycle year of "2025-2026".
func (c *GrantCycle) CodeYear() string {
	for i := 0; i < len(c.Year); i++ {
		if c.Year[i] == '-' {
			return c.Year[:i]
		}
	}
	return c.Year
}
