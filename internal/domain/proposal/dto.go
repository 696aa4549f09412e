package proposal

type CreateProposalDTO struct {
	Title           string  `json:"title" binding:"required"`
	Abstract        string  `json:"abstract" binding:"required"`
	PIName          string  `json:"pi_name" binding:"required"`
	PIDepartment    string  `json:"pi_department"`
	PIEmail         string  `json:"pi_email" binding:"required,email"`
	CoInvestigators *string `json:"co_investigators"`
	FundRequested   float64 `json:"fund_requested" binding:"required,gt=0"`
	CID             uint    `json:"cid" binding:"required"`
}

type UpdateProposalDTO struct {
	Title           *string  `json:"title"`
	Abstract        *string  `json:"abstract"`
	PIName          *string  `json:"pi_name"`
	PIDepartment    *string  `json:"pi_department"`
	PIEmail         *string  `json:"pi_email" binding:"omitempty,email"`
	CoInvestigators *string  `json:"co_investigators"`
	FundRequested   *float64 `json:"fund_requested" binding:"omitempty,gt=0"`
}

type Stage1DecisionDTO struct {
	Decision      Stage1DecisionKind `json:"decision" binding:"required,oneof=REJECT ACCEPT TENTATIVELY_ACCEPT"`
	ChairComments string             `json:"chair_comments"`
}

type FinalDecisionDTO struct {
	Decision       FinalDecisionKind `json:"decision" binding:"required,oneof=ACCEPTED REJECTED"`
	ApprovedAmount float64           `json:"approved_amount"`
	FinalRemarks   string            `json:"final_remarks" binding:"required"`
}

type SubmitRevisionDTO struct {
	RevisedFileKey  string  `json:"revised_file_key" binding:"required"`
	ResponseFileKey *string `json:"response_file_key"`
}

type ListProposalsParams struct {
	CID    *uint   `form:"cid"`
	Status *Status `form:"status"`
	Limit  int     `form:"limit"`
	Offset int     `form:"offset"`
}
