package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "assistec/internal/errors"
	"assistec/internal/services"
)

// CredentialHandler handles the owner-only credential vault.
type CredentialHandler struct {
	credentialService services.CredentialServicer
}

// NewCredentialHandler creates a new CredentialHandler.
func NewCredentialHandler(credentialService services.CredentialServicer) *CredentialHandler {
	return &CredentialHandler{credentialService: credentialService}
}

// CredentialRequest represents the payload for creating or updating a
// credential.
type CredentialRequest struct {
	ServiceName   string `json:"service_name" binding:"required,max=200"`
	LoginUsername string `json:"login_username" binding:"required,max=200"`
	Password      string `json:"password" binding:"required,max=500"`
	URL           string `json:"url" binding:"max=500"`
	Notes         string `json:"notes" binding:"max=2000"`
}

// ListCredentials returns all stored credentials
// @Summary     List credentials
// @Description Get every stored service credential, ordered by service name. Owner only.
// @Tags        credentials
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Credential "Credentials"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owner access required"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /credentials [get]
func (h *CredentialHandler) ListCredentials(c *gin.Context) {
	credentials, err := h.credentialService.ListCredentials()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"credentials": credentials})
}

// CreateCredential stores a new credential
// @Summary     Create credential
// @Description Store a new service credential. Owner only.
// @Tags        credentials
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CredentialRequest true "Credential details"
// @Success     201 {object} models.Credential "Stored credential"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owner access required"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /credentials [post]
func (h *CredentialHandler) CreateCredential(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	credential, err := h.credentialService.CreateCredential(userID, req.ServiceName, req.LoginUsername, req.Password, req.URL, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"credential": credential})
}

// UpdateCredential replaces a stored credential
// @Summary     Update credential
// @Description Replace the fields of a stored credential. Owner only.
// @Tags        credentials
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Credential ID"
// @Param       request body CredentialRequest true "Credential details"
// @Success     200 {object} models.Credential "Updated credential"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owner access required"
// @Failure     404 {object} ErrorResponse "Credential not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /credentials/{id} [put]
func (h *CredentialHandler) UpdateCredential(c *gin.Context) {
	credentialID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	credential, err := h.credentialService.UpdateCredential(credentialID, req.ServiceName, req.LoginUsername, req.Password, req.URL, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"credential": credential})
}

// DeleteCredential removes a stored credential
// @Summary     Delete credential
// @Description Delete a stored credential by ID. Owner only.
// @Tags        credentials
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Credential ID"
// @Success     200 {object} MessageResponse "Credential deleted"
// @Failure     400 {object} ErrorResponse "Invalid credential ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owner access required"
// @Failure     404 {object} ErrorResponse "Credential not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /credentials/{id} [delete]
func (h *CredentialHandler) DeleteCredential(c *gin.Context) {
	credentialID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.credentialService.DeleteCredential(credentialID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Credential deleted successfully"})
}
