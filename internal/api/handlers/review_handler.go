package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nsu-ctrg/grant-review/internal/application"
	"github.com/nsu-ctrg/grant-review/internal/domain/review"
	"github.com/nsu-ctrg/grant-review/pkg/response"
	"github.com/nsu-ctrg/grant-review/pkg/utils"
)

type ReviewHandler struct {
	svc      *application.ReviewService
	workload *application.WorkloadService
}

func NewReviewHandler(svc *application.ReviewService, workload *application.WorkloadService) *ReviewHandler {
	return &ReviewHandler{svc: svc, workload: workload}
}

// Assign godoc
// @Summary Assign a reviewer to a proposal stage
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body review.CreateAssignmentDTO true "Assignment"
// @Success 201 {object} review.ReviewAssignment
// @Failure 409 {object} response.ErrorResponse "Duplicate, capacity, or inactive reviewer"
// @Router /assignments [post]
func (h *ReviewHandler) Assign(c *gin.Context) {
	var input review.CreateAssignmentDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	a, err := h.workload.Assign(actorID(c), input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// MyAssignments godoc
// @Summary The calling reviewer's assignments
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} review.ReviewAssignment
// @Router /assignments/mine [get]
func (h *ReviewHandler) MyAssignments(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	assignments, err := h.svc.ListMyAssignments(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to list assignments"})
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// GetAssignment godoc
// @Summary One of the calling reviewer's assignments
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} review.ReviewAssignment
// @Router /assignments/{id} [get]
func (h *ReviewHandler) GetAssignment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid assignment id"})
		return
	}
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	a, err := h.svc.GetAssignment(uid, id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// SubmitStage1Score godoc
// @Summary Save or finalize stage-1 rubric scores
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param input body review.Stage1ScoreDTO true "Criterion scores"
// @Success 200 {object} review.Stage1Score
// @Failure 409 {object} response.ErrorResponse "Review already completed"
// @Failure 422 {object} response.ErrorResponse "Criterion out of range or wrong stage"
// @Router /assignments/{id}/stage1-score [post]
func (h *ReviewHandler) SubmitStage1Score(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid assignment id"})
		return
	}
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input review.Stage1ScoreDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	score, err := h.svc.SubmitStage1Score(uid, id, input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, score)
}

// SubmitStage2Review godoc
// @Summary Save or finalize a stage-2 review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param input body review.Stage2ReviewDTO true "Assessment"
// @Success 200 {object} review.Stage2Review
// @Router /assignments/{id}/stage2-review [post]
func (h *ReviewHandler) SubmitStage2Review(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid assignment id"})
		return
	}
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input review.Stage2ReviewDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	rv, err := h.svc.SubmitStage2Review(uid, id, input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rv)
}

// ListWorkloads godoc
// @Summary Live workload for every reviewer
// @Tags reviewers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} review.WorkloadStats
// @Router /reviewers/workloads [get]
func (h *ReviewHandler) ListWorkloads(c *gin.Context) {
	stats, err := h.workload.ListWorkloads()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to compute workloads"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetWorkload godoc
// @Summary Live workload for one reviewer
// @Tags reviewers
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} review.WorkloadStats
// @Router /reviewers/{id}/workload [get]
func (h *ReviewHandler) GetWorkload(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
		return
	}

	stats, err := h.workload.GetReviewerWorkload(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CreateProfile godoc
// @Summary Register a user as reviewer
// @Tags reviewers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body review.CreateProfileDTO true "Profile"
// @Success 201 {object} review.ReviewerProfile
// @Router /reviewers [post]
func (h *ReviewHandler) CreateProfile(c *gin.Context) {
	var input review.CreateProfileDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	profile, err := h.workload.CreateProfile(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to create profile"})
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// UpdateProfile godoc
// @Summary Update reviewer capacity or active flag
// @Tags reviewers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param input body review.UpdateProfileDTO true "Fields to update"
// @Success 200 {object} review.ReviewerProfile
// @Router /reviewers/{id} [put]
func (h *ReviewHandler) UpdateProfile(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
		return
	}

	var input review.UpdateProfileDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	profile, err := h.workload.UpdateProfile(id, input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Notify godoc
// @Summary Retry assignment notifications that failed to send
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body object true "Assignment IDs"
// @Success 200 {object} map[string]int
// @Router /assignments/notify [post]
func (h *ReviewHandler) Notify(c *gin.Context) {
	var input struct {
		IDs []uint `json:"ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	sent, err := h.workload.ResendAssignmentNotifications(input.IDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to send notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": sent})
}
