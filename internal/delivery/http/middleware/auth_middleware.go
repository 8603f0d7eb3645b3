package middleware

import (
	"net/http"
	"strings"

	"go-hiretrack-backend/internal/delivery/http/response"
	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// Authenticate requires a valid, unexpired bearer token and attaches the
// decoded claims to the request context for downstream checks.
func Authenticate(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			// Malformed, forged and expired tokens are all the same
			// unauthenticated outcome
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.ID)
		c.Set(string(domain.KeyUserEmail), claims.Email)
		c.Set(string(domain.KeyUserRole), claims.Role)

		c.Next()
	}
}
