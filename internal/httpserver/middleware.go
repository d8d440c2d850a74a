package httpserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"navhub/internal/domain"
	authsvc "navhub/internal/service/auth"
)

// AuthService is the slice of the auth service the HTTP layer needs.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	UserFromToken(ctx context.Context, token string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, in authsvc.UpdateInput) (*domain.User, error)
	ListUsers(ctx context.Context, page, pageSize int, search string) ([]domain.User, int, error)
	TokenTTLSeconds() int
}

const userContextKey = "adminUser"

// authRequired accepts the admin token either as a bearer header or as the
// auth_token cookie set at login.
func authRequired(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie("auth_token"); err == nil {
				token = cookie
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		u, err := svc.UserFromToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(userContextKey, u)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func currentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(userContextKey); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}
