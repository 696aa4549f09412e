package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/nsu-ctrg/grant-review/internal/application"
)

type Handlers struct {
	Auth     *AuthHandler
	Cycle    *CycleHandler
	Proposal *ProposalHandler
	Review   *ReviewHandler
	Audit    *AuditHandler
	WS       *WSHandler
	Router   *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(svc.User),
		Cycle:    NewCycleHandler(svc.Cycle),
		Proposal: NewProposalHandler(svc.Proposal, svc.Lifecycle, svc.Review, svc.Audit),
		Review:   NewReviewHandler(svc.Review, svc.Workload),
		Audit:    NewAuditHandler(svc.Audit),
		WS:       NewWSHandler(svc.Bus),
		Router:   router,
	}
}
