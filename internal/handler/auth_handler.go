package handler

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"

	"gestao-associado-svc/internal/middleware"
	"gestao-associado-svc/internal/service"
	"gestao-associado-svc/pkg/logger"
	"gestao-associado-svc/pkg/utils"
)

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents the password change request body
type ChangePasswordRequest struct {
	Username    string `json:"username,omitempty"`
	NewPassword string `json:"new_password" binding:"required,min=4"`
}

// RegisterRequest represents the member self-registration request body
type RegisterRequest struct {
	MemberRequest
	Password string `json:"password" binding:"required,min=4"`
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login authenticates a credential and issues a token
// @Summary Log in
// @Description Authenticate with username (or masked national id) and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} utils.APIResponse{data=service.LoginResult} "Authenticated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	result, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		h.logger.WithError(err).WithField("username", req.Username).Warn("Login failed")
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Authenticated successfully", result)
}

// Register creates a member with its login credential
// @Summary Register a member
// @Description Create a member record together with its login; the username is the national id digits
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Member data and initial password"
// @Success 201 {object} utils.APIResponse "Member registered"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 409 {object} utils.APIResponse "National id or username already registered"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	input, err := req.MemberRequest.toInput()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid member data", err)
		return
	}

	member, err := h.authService.Register(*input, req.Password)
	if err != nil {
		h.logger.WithError(err).Error("Failed to register member")
		handleServiceError(c, err)
		return
	}

	h.logger.WithField("member_id", member.ID).Info("Member registered")
	utils.CreatedResponse(c, "Member registered successfully", member)
}

// ChangePassword updates a credential's password
// @Summary Change password
// @Description Change the authenticated user's password; administrators may name another username
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "New password"
// @Success 200 {object} utils.APIResponse "Password updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "User not found"
// @Security BearerAuth
// @Router /api/v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	// Non-admins may only change their own password
	username := req.Username
	role, _ := c.Get(middleware.ContextKeyRole)
	tokenUsername, _ := c.Get(middleware.ContextKeyUsername)
	if role != service.RoleAdmin || username == "" {
		username, _ = tokenUsername.(string)
	}

	if err := h.authService.ChangePassword(username, req.NewPassword); err != nil {
		h.logger.WithError(err).WithField("username", username).Error("Failed to change password")
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Password updated successfully", nil)
}

// decodeBlob decodes an optional base64 payload
func decodeBlob(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(encoded)
}
