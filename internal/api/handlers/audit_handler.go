package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nsu-ctrg/grant-review/internal/application"
	"github.com/nsu-ctrg/grant-review/internal/repository"
	"github.com/nsu-ctrg/grant-review/pkg/response"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// Query godoc
// @Summary Query the audit trail
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param uid query int false "Actor filter"
// @Param pid query int false "Proposal filter"
// @Param action query string false "Action type filter"
// @Param start query string false "RFC3339 start time"
// @Param end query string false "RFC3339 end time"
// @Success 200 {array} audit.AuditLog
// @Router /audit [get]
func (h *AuditHandler) Query(c *gin.Context) {
	var params repository.AuditQueryParams

	if v := c.Query("uid"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid uid"})
			return
		}
		uid := uint(n)
		params.UID = &uid
	}
	if v := c.Query("pid"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid pid"})
			return
		}
		pid := uint(n)
		params.PID = &pid
	}
	if v := c.Query("action"); v != "" {
		params.ActionType = &v
	}
	if v := c.Query("start"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid start time"})
			return
		}
		params.StartTime = &t
	}
	if v := c.Query("end"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid end time"})
			return
		}
		params.EndTime = &t
	}
	params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	params.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, err := h.svc.Query(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to query audit logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}
