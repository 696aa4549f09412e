package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nsu-ctrg/grant-review/internal/application"
	"github.com/nsu-ctrg/grant-review/internal/domain/cycle"
	"github.com/nsu-ctrg/grant-review/pkg/response"
	"github.com/nsu-ctrg/grant-review/pkg/utils"
)

type CycleHandler struct {
	svc *application.CycleService
}

func NewCycleHandler(svc *application.CycleService) *CycleHandler {
	return &CycleHandler{svc: svc}
}

// Create godoc
// @Summary Create a grant cycle
// @Tags cycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body cycle.CreateCycleDTO true "Cycle settings"
// @Success 201 {object} cycle.GrantCycle
// @Router /cycles [post]
func (h *CycleHandler) Create(c *gin.Context) {
	var input cycle.CreateCycleDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	created, err := h.svc.Create(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to create cycle"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List grant cycles
// @Tags cycles
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active cycles"
// @Success 200 {array} cycle.GrantCycle
// @Router /cycles [get]
func (h *CycleHandler) List(c *gin.Context) {
	cycles, err := h.svc.List(c.Query("active") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to list cycles"})
		return
	}
	c.JSON(http.StatusOK, cycles)
}

// Get godoc
// @Summary Get one grant cycle
// @Tags cycles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cycle ID"
// @Success 200 {object} cycle.GrantCycle
// @Router /cycles/{id} [get]
func (h *CycleHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid cycle id"})
		return
	}

	cyc, err := h.svc.Get(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cyc)
}

// Update godoc
// @Summary Update cycle settings
// @Tags cycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cycle ID"
// @Param input body cycle.UpdateCycleDTO true "Fields to update"
// @Success 200 {object} cycle.GrantCycle
// @Router /cycles/{id} [put]
func (h *CycleHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid cycle id"})
		return
	}

	var input cycle.UpdateCycleDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	cyc, err := h.svc.Update(id, input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cyc)
}
