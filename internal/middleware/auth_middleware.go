// internal/middleware/auth_middleware.go
package middleware

import (
	"coreadmin-service/internal/pkg/response"
	"coreadmin-service/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey = "user_id"
	ctxTokenKey  = "session_token"
)

type AuthMiddleware struct {
	tokens *token.Service
}

func NewAuthMiddleware(tokens *token.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Auth validates the Authorization header and stores the caller's
// identity in the request context.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		claims := m.tokens.Parse(header)
		if claims == nil {
			response.Unauthorized(c)
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxTokenKey, token.StripBearer(header))
		c.Next()
	}
}

// GetUserID returns the authenticated user's ID from the context.
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// MustGetUserID returns the authenticated user's ID or panics. Only call
// it behind the Auth middleware.
func MustGetUserID(c *gin.Context) int64 {
	id, ok := GetUserID(c)
	if !ok {
		panic("user_id not found in context")
	}
	return id
}

// GetSessionToken returns the caller's raw session token.
func GetSessionToken(c *gin.Context) string {
	v, exists := c.Get(ctxTokenKey)
	if !exists {
		return ""
	}
	tok, _ := v.(string)
	return tok
}
