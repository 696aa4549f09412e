package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nsu-ctrg/grant-review/internal/api/handlers"
	"github.com/nsu-ctrg/grant-review/internal/api/middleware"
	"github.com/nsu-ctrg/grant-review/internal/application"
	"github.com/nsu-ctrg/grant-review/internal/domain/user"
	"github.com/nsu-ctrg/grant-review/internal/notify"
	"github.com/nsu-ctrg/grant-review/internal/repository"
)

func RegisterRoutes(r *gin.Engine, repos *repository.Repos) {
	notifier := notify.NewSMTPNotifier()
	services := application.New(repos, notifier)
	h := handlers.New(services, r)

	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/me", h.Auth.Me)
		auth.GET("/ws/proposals", h.WS.StatusStream)

		users := auth.Group("/users")
		{
			users.GET("", middleware.Chair(), h.Auth.ListUsers)
			users.PUT("/:id", middleware.Admin(), h.Auth.UpdateUser)
		}

		cycles := auth.Group("/cycles")
		{
			cycles.GET("", h.Cycle.List)
			cycles.GET("/:id", h.Cycle.Get)
			cycles.POST("", middleware.Admin(), h.Cycle.Create)
			cycles.PUT("/:id", middleware.Admin(), h.Cycle.Update)
		}

		proposals := auth.Group("/proposals")
		{
			proposals.POST("", middleware.RequireRole(user.RolePI, user.RoleChair), h.Proposal.Create)
			proposals.GET("", h.Proposal.List)
			proposals.GET("/:id", h.Proposal.Get)
			proposals.PUT("/:id", middleware.RequireRole(user.RolePI, user.RoleChair), h.Proposal.Update)
			proposals.DELETE("/:id", middleware.RequireRole(user.RolePI, user.RoleChair), h.Proposal.Delete)

			proposals.POST("/:id/files", middleware.RequireRole(user.RolePI, user.RoleChair), h.Proposal.UploadFile)
			proposals.GET("/:id/files", h.Proposal.DownloadURL)

			proposals.POST("/:id/submit", middleware.RequireRole(user.RolePI, user.RoleChair), h.Proposal.Submit)
			proposals.POST("/:id/revision", middleware.RequireRole(user.RolePI, user.RoleChair), h.Proposal.SubmitRevision)

			proposals.GET("/:id/aggregate", middleware.Chair(), h.Proposal.Aggregate)
			proposals.GET("/:id/history", middleware.Chair(), h.Proposal.History)
			proposals.POST("/:id/stage1-decision", middleware.Chair(), h.Proposal.Stage1Decision)
			proposals.POST("/:id/start-stage2", middleware.Chair(), h.Proposal.StartStage2)
			proposals.POST("/:id/final-decision", middleware.Chair(), h.Proposal.FinalDecision)
		}

		assignments := auth.Group("/assignments")
		{
			assignments.POST("", middleware.Chair(), h.Review.Assign)
			assignments.POST("/notify", middleware.Chair(), h.Review.Notify)
			assignments.GET("/mine", middleware.Reviewer(), h.Review.MyAssignments)
			assignments.GET("/:id", middleware.Reviewer(), h.Review.GetAssignment)
			assignments.POST("/:id/stage1-score", middleware.Reviewer(), h.Review.SubmitStage1Score)
			assignments.POST("/:id/stage2-review", middleware.Reviewer(), h.Review.SubmitStage2Review)
		}

		reviewers := auth.Group("/reviewers")
		{
			reviewers.POST("", middleware.Chair(), h.Review.CreateProfile)
			reviewers.PUT("/:id", middleware.Chair(), h.Review.UpdateProfile)
			reviewers.GET("/workloads", middleware.Chair(), h.Review.ListWorkloads)
			reviewers.GET("/:id/workload", middleware.Chair(), h.Review.GetWorkload)
		}

		auth.GET("/audit", middleware.Chair(), h.Audit.Query)
	}
}
