package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nsu-ctrg/grant-review/internal/application"
	"github.com/nsu-ctrg/grant-review/internal/domain/proposal"
	"github.com/nsu-ctrg/grant-review/internal/storage"
	"github.com/nsu-ctrg/grant-review/pkg/response"
	"github.com/nsu-ctrg/grant-review/pkg/utils"
)

type ProposalHandler struct {
	svc       *application.ProposalService
	lifecycle *application.LifecycleService
	review    *application.ReviewService
	audit     *application.AuditService
}

func NewProposalHandler(svc *application.ProposalService, lifecycle *application.LifecycleService, review *application.ReviewService, audit *application.AuditService) *ProposalHandler {
	return &ProposalHandler{svc: svc, lifecycle: lifecycle, review: review, audit: audit}
}

func actorID(c *gin.Context) *uint {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		return nil
	}
	return &uid
}

// Create godoc
// @Summary Create a draft proposal
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body proposal.CreateProposalDTO true "Proposal content"
// @Success 201 {object} proposal.Proposal
// @Router /proposals [post]
func (h *ProposalHandler) Create(c *gin.Context) {
	var input proposal.CreateProposalDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	p, err := h.svc.Create(input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// List godoc
// @Summary List proposals
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param cid query int false "Cycle filter"
// @Param status query string false "Status filter"
// @Success 200 {array} proposal.Proposal
// @Router /proposals [get]
func (h *ProposalHandler) List(c *gin.Context) {
	var params proposal.ListProposalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}

	proposals, err := h.svc.List(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to list proposals"})
		return
	}
	c.JSON(http.StatusOK, proposals)
}

// Get godoc
// @Summary Get one proposal
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Success 200 {object} proposal.Proposal
// @Router /proposals/{id} [get]
func (h *ProposalHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid proposal id"})
		return
	}

	p, err := h.svc.Get(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update godoc
// @Summary Edit proposal content
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Param input body proposal.UpdateProposalDTO true "Fields to update"
// @Success 200 {object} proposal.Proposal
// @Router /proposals/{id} [put]
func (h *ProposalHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid proposal id"})
		return
	}

	var input proposal.UpdateProposalDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	p, err := h.svc.Update(id, input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete godoc
// @Summary Delete a draft proposal
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Success 200 {object} response.MessageResponse
// @Router /proposals/{id} [delete]
func (h *ProposalHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid proposal id"})
		return
	}

	if err := h.svc.Delete(id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Proposal deleted"})
}

// Submit godoc
// @Summary Submit a draft for review
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Success 200 {object} proposal.Proposal
// @Failure 409 {object} response.ErrorResponse "Not in a submittable state"
// @Router /proposals/{id}/submit [post]
func (h *ProposalHandler) Submit(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid proposal id"})
		return
	}

	p, err := h.lifecycle.Submit(actorID(c), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UploadFile godoc
// @Summary Upload a proposal document
// @Tags proposals
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Param kind formData string true "File slot (proposal or template)"
// @Param file formData file true "Document"
// @Success 200 {object} proposal.Proposal
// @Router /proposals/{id}/files [post]
func (h *ProposalHandler) UploadFile(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid proposal id"})
		return
	}

	kind := c.PostForm("kind")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "File is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to read upload"})
		return
	}
	defer f.Close()

	objectKey, err := storage.UploadProposalFile(c.Request.Context(), id, fileHeader.Filename, f,
		fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Upload failed"})
		return
	}

	p, err := h.svc.AttachFile(id, kind, objectKey)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DownloadURL godoc
// @Summary Presigned download link for a stored document
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Param key query string true "Object key"
// @Success 200 {object} map[string]string
// @Router /proposals/{id}/files [get]
func (h *ProposalHandler) DownloadURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "key is required"})
		return
	}

	url, err := storage.PresignedDownloadURL(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to presign"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Stage1Decision godoc
// @Summary Record the chair's stage-1 decision
// @Tags decisions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Param input body proposal.Stage1DecisionDTO true "Decision"
// @Success 201 {object} proposal.Stage1Decision
// @Failure 409 {object} response.ErrorResponse "Duplicate or wrong state"
// @Failure 422 {object} response.ErrorResponse "Reviews incomplete"
// @Router /proposals/{id}/stage1-decision [post]
func (h *ProposalHandler) Stage1Decision(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid proposal id"})
		return
	}

	var input proposal.Stage1DecisionDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	d, err := h.lifecycle.ApplyStage1Decision(actorID(c), id, input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// SubmitRevision godoc
// @Summary Submit the revised proposal
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Param input body proposal.SubmitRevisionDTO true "Revised document keys"
// @Success 200 {object} proposal.Proposal
// @Failure 409 {object} response.ErrorResponse "Deadline missed"
// @Router /proposals/{id}/revision [post]
func (h *ProposalHandler) SubmitRevision(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid proposal id"})
		return
	}

	var input proposal.SubmitRevisionDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	p, err := h.lifecycle.SubmitRevision(actorID(c), id, input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// StartStage2 godoc
// @Summary Open the stage-2 review round
// @Tags decisions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Success 200 {object} proposal.Proposal
// @Router /proposals/{id}/start-stage2 [post]
func (h *ProposalHandler) StartStage2(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid proposal id"})
		return
	}

	p, err := h.lifecycle.StartStage2Review(actorID(c), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// FinalDecision godoc
// @Summary Record the chair's final decision
// @Tags decisions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Param input body proposal.FinalDecisionDTO true "Decision"
// @Success 201 {object} proposal.FinalDecision
// @Router /proposals/{id}/final-decision [post]
func (h *ProposalHandler) FinalDecision(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid proposal id"})
		return
	}

	var input proposal.FinalDecisionDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	d, err := h.lifecycle.ApplyFinalDecision(actorID(c), id, input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// Aggregate godoc
// @Summary Live stage-1 score aggregate
// @Tags decisions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Success 200 {object} review.StageAggregate
// @Router /proposals/{id}/aggregate [get]
func (h *ProposalHandler) Aggregate(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid proposal id"})
		return
	}

	agg, err := h.review.AggregateProposalStage1(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to aggregate"})
		return
	}
	c.JSON(http.StatusOK, agg)
}

// History godoc
// @Summary Audit trail for one proposal
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Success 200 {array} audit.AuditLog
// @Router /proposals/{id}/history [get]
func (h *ProposalHandler) History(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid proposal id"})
		return
	}

	logs, err := h.audit.ProposalHistory(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to load history"})
		return
	}
	c.JSON(http.StatusOK, logs)
}
