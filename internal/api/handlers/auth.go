package handlers

import (
	"net/http"

	"community-scheduler-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler handles login flows
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest is the payload for a local login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Local login
// @Description Authenticates a local account and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} auth.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	resp, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GoogleAuthURL godoc
// @Summary Google consent URL
// @Description Returns the provider consent URL to start the OAuth flow
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/google [get]
func (h *AuthHandler) GoogleAuthURL(c *gin.Context) {
	state := uuid.New().String()
	c.JSON(http.StatusOK, gin.H{"url": h.authService.GoogleAuthURL(state), "state": state})
}

// Validate godoc
// @Summary Validate the bearer token
// @Description Returns the claims of the presented token
// @Tags auth
// @Produce json
// @Success 200 {object} auth.Claims
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	claims, ok := auth.CallerClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	c.JSON(http.StatusOK, claims)
}

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Exchanges the OAuth code and returns a bearer token
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} auth.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing code parameter"})
		return
	}
	resp, err := h.authService.GoogleLogin(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
