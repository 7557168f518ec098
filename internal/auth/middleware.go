package auth

import (
	"net/http"
	"strings"

	"business-manager-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// CodeUnauthorized is the envelope code for missing or rejected credentials
const CodeUnauthorized = "Unauthorized"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is required")
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			logger.WithContext(c).WithError(err).Warn("Rejected token")
			unauthorized(c, "Invalid token")
			return
		}

		c.Set(logger.UserIDKey, claims.UserID)
		c.Set(logger.EmailKey, claims.Email)

		c.Next()
	}
}

// LocalActor attributes every request to a fixed user. It replaces RequireAuth in the
// single-operator desktop deployment.
func LocalActor(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(logger.UserIDKey, userID)
		c.Next()
	}
}

// ActorID returns the acting user set by RequireAuth or LocalActor, or "" when there is none
func ActorID(c *gin.Context) string {
	return c.GetString(logger.UserIDKey)
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   message,
		"code":    CodeUnauthorized,
	})
}
