package middleware

import (
	"net/http"

	"go-hiretrack-backend/internal/delivery/http/response"
	"go-hiretrack-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// RequireRoles rejects the request unless the authenticated role is in the
// allowed set. Must run after Authenticate.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	roles := make(map[string]bool, len(allowed))
	for _, r := range allowed {
		roles[r] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		if !roles[role] {
			response.Error(c, http.StatusForbidden, "You do not have permission to perform this action")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SelfOrAdmin is the ownership-or-admin predicate: the request passes when
// the authenticated id matches the route parameter naming the resource
// owner, or the caller is an admin. The parameter name keeps the check
// reusable across routes.
func SelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(string(domain.KeyUserID))
		role := c.GetString(string(domain.KeyUserRole))
		if userID != c.Param(param) && role != domain.RoleAdmin {
			response.Error(c, http.StatusForbidden, "You can only access your own profile")
			c.Abort()
			return
		}
		c.Next()
	}
}
