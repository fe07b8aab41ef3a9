package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/application/identity"
	"github.com/nutritrack/backend/internal/interfaces/http/middleware"
)

// AuthUseCases is what AuthHandler needs from the identity layer
type AuthUseCases interface {
	Register(ctx context.Context, req identity.RegisterRequest, client identity.ClientInfo) (*identity.AuthResponse, error)
	Login(ctx context.Context, req identity.LoginRequest, client identity.ClientInfo) (*identity.AuthResponse, error)
	Refresh(ctx context.Context, req identity.RefreshRequest) (*identity.AuthResponse, error)
	Logout(ctx context.Context, in identity.LogoutInput) error
	Me(ctx context.Context, userID uuid.UUID) (*identity.UserResponse, error)
}

// AuthHandler handles registration and sessions
type AuthHandler struct {
	BaseHandler
	auth AuthUseCases
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth AuthUseCases) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func clientInfo(c *gin.Context) identity.ClientInfo {
	return identity.ClientInfo{IP: c.ClientIP(), UserAgent: c.Request.UserAgent()}
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identity.RegisterRequest true "Account"
// @Success      201 {object} APIResponse[identity.AuthResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req identity.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.auth.Register(c.Request.Context(), req, clientInfo(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identity.LoginRequest true "Credentials"
// @Success      200 {object} APIResponse[identity.AuthResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.auth.Login(c.Request.Context(), req, clientInfo(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Refresh godoc
// @Summary      Exchange a refresh token for a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identity.RefreshRequest true "Refresh token"
// @Success      200 {object} APIResponse[identity.AuthResponse]
// @Failure      401 {object} ErrorResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req identity.RefreshRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.auth.Refresh(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Logout godoc
// @Summary      Revoke the current access token
// @Tags         auth
// @Produce      json
// @Success      200 {object} APIResponse[MessageData]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	err := h.auth.Logout(c.Request.Context(), identity.LogoutInput{
		UserID:    userID,
		TokenID:   claims.ID,
		ExpiresIn: claims.RemainingTTL(),
		Client:    clientInfo(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, MessageData{Message: "Logged out"})
}

// Me godoc
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Success      200 {object} APIResponse[identity.UserResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	user, err := h.auth.Me(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}
