package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"vps-rental/internal/domain/order"
	"vps-rental/internal/domain/user"
	"vps-rental/internal/handler/httperr"
	"vps-rental/internal/pkg/cookie"
	"vps-rental/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

// TokenValidator is the slice of jwt.Service the middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.New(http.StatusUnauthorized, "access token required"))
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.New(http.StatusUnauthorized, "invalid or expired token"))
			return
		}

		role, err := user.NewRole(claims.Role)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.New(http.StatusUnauthorized, "invalid or expired token"))
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"user_id": claims.UserID,
			"role":    claims.Role,
		})
		c.Next()
	}
}

// GetActor assembles the authorization actor from the authenticated context.
func GetActor(c *gin.Context) (order.Actor, bool) {
	rawID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return order.Actor{}, false
	}
	userID, ok := rawID.(int64)
	if !ok {
		return order.Actor{}, false
	}

	rawRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return order.Actor{}, false
	}
	role, ok := rawRole.(user.Role)
	if !ok {
		return order.Actor{}, false
	}

	return order.Actor{UserID: userID, Role: role}, true
}
