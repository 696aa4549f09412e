package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nsu-ctrg/grant-review/internal/api/middleware"
	"github.com/nsu-ctrg/grant-review/internal/application"
	"github.com/nsu-ctrg/grant-review/internal/domain/user"
	"github.com/nsu-ctrg/grant-review/pkg/response"
	"github.com/nsu-ctrg/grant-review/pkg/utils"
)

const tokenLifetime = 24 * time.Hour

type AuthHandler struct {
	svc *application.UserService
}

func NewAuthHandler(svc *application.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register godoc
// @Summary Account registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterDTO true "Account info"
// @Success 201 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Username already taken"
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	u, err := h.svc.Register(input)
	if err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, u)
}

// Login godoc
// @Summary Login and token issuance
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginDTO true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	u, err := h.svc.Authenticate(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid username or password"})
		return
	}

	token, err := middleware.GenerateToken(u.UID, u.Username, u.Role, tokenLifetime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to issue token"})
		return
	}

	c.SetCookie("token", token, int(tokenLifetime.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      u.UID,
		Username: u.Username,
		Role:     u.Role,
	})
}

// Me godoc
// @Summary Current account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} user.User
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	u, err := h.svc.Get(claims.UserID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// ListUsers godoc
// @Summary List accounts, optionally by role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role filter"
// @Success 200 {array} user.User
// @Router /users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	if role := c.Query("role"); role != "" {
		users, err := h.svc.ListByRole(role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to list users"})
			return
		}
		c.JSON(http.StatusOK, users)
		return
	}

	users, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser godoc
// @Summary Update an account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param input body user.UpdateUserDTO true "Fields to update"
// @Success 200 {object} user.User
// @Router /users/{id} [put]
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
		return
	}

	var input user.UpdateUserDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	u, err := h.svc.Update(id, input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
