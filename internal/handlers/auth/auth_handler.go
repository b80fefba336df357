// internal/handlers/auth/auth_handler.go
package auth

import (
	authdto "coreadmin-service/internal/domain/auth"
	"coreadmin-service/internal/middleware"
	"coreadmin-service/internal/pkg/response"
	service "coreadmin-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.Service
}

func NewAuthHandler(authService *service.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and issues a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	req.IP = c.ClientIP()
	req.UserAgent = c.Request.UserAgent()

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, result)
}

// Logout terminates the caller's session. Always succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authService.Logout(c.GetHeader("Authorization"))
	response.OK(c, middleware.MustGetUserID(c))
}

// GetUserInfo returns the authenticated user's profile, roles and
// permissions.
func (h *AuthHandler) GetUserInfo(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	info, err := h.authService.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, info)
}

// GetRoutes returns the front-end route tree for the caller's roles.
func (h *AuthHandler) GetRoutes(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	routes, err := h.authService.GetRoutes(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, routes)
}
