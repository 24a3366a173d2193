package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "assistec/internal/errors"
	"assistec/internal/models"
	"assistec/internal/services"
)

// UserHandler handles owner-only user and role management.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents the payload for creating an admin user.
type CreateUserRequest struct {
	Email    string           `json:"email" binding:"required,email,max=255"`
	Password string           `json:"password" binding:"required,min=6,max=128"`
	Role     models.AdminRole `json:"role" binding:"required,admin_role"`
}

// CreateUser creates an admin user with a role
// @Summary     Create admin user
// @Description Create a new admin user and grant a role in one step. Owner only.
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateUserRequest true "User details"
// @Success     201 {object} models.User "Created user"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owner access required"
// @Failure     409 {object} ErrorResponse "Email already in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.CreateUserWithRole(req.Email, req.Password, req.Role)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// ListRoles returns every role grant
// @Summary     List role grants
// @Description Get every admin role grant, newest first. Owner only.
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.UserRole "Role grants"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owner access required"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/roles [get]
func (h *UserHandler) ListRoles(c *gin.Context) {
	roles, err := h.userService.ListRoles()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

// RevokeRole removes a role grant
// @Summary     Revoke role
// @Description Revoke an admin role grant, locking that user out of the panel. Owner only.
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Role grant ID"
// @Success     200 {object} MessageResponse "Role revoked"
// @Failure     400 {object} ErrorResponse "Invalid role ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owner access required"
// @Failure     404 {object} ErrorResponse "Role not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/roles/{id} [delete]
func (h *UserHandler) RevokeRole(c *gin.Context) {
	roleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.RevokeRole(roleID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role revoked successfully"})
}
