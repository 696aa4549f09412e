package application

import (
	"github.com/nsu-ctrg/grant-review/internal/events"
	"github.com/nsu-ctrg/grant-review/internal/notify"
	"github.com/nsu-ctrg/grant-review/internal/repository"
)

type Services struct {
	Cycle     *CycleService
	Proposal  *ProposalService
	Lifecycle *LifecycleService
	Workload  *WorkloadService
	Review    *ReviewService
	User      *UserService
	Audit     *AuditService

	Bus *events.Bus
}

func New(repos *repository.Repos, notifier notify.Notifier) *Services {
	bus := events.NewBus()
	return &Services{
		Cycle:     NewCycleService(repos),
		Proposal:  NewProposalService(repos),
		Lifecycle: NewLifecycleService(repos, notifier, bus),
		Workload:  NewWorkloadService(repos, notifier),
		Review:    NewReviewService(repos),
		User:      NewUserService(repos),
		Audit:     NewAuditService(repos),
		Bus:       bus,
	}
}
