package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hiretrack-backend/internal/delivery/http/middleware"
	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func issue(t *testing.T, svc *token.Service, role string) string {
	t.Helper()
	tok, err := svc.Issue(&domain.User{ID: "u1", Email: "u1@example.com", Role: role})
	require.NoError(t, err)
	return tok
}

func TestAuthenticate(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)

	newRouter := func() (*gin.Engine, *string) {
		r := gin.New()
		var seenRole string
		r.GET("/protected", middleware.Authenticate(tokens), func(c *gin.Context) {
			seenRole = c.GetString(string(domain.KeyUserRole))
			c.Status(http.StatusOK)
		})
		return r, &seenRole
	}

	t.Run("Should reject a request without an Authorization header", func(t *testing.T) {
		r, _ := newRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject a garbage token", func(t *testing.T) {
		r, _ := newRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject an expired token", func(t *testing.T) {
		expired := token.NewService("test-secret", -time.Hour)
		r, _ := newRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, expired, domain.RoleAdmin))

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should pass a valid token through and expose the claims", func(t *testing.T) {
		r, seenRole := newRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, tokens, domain.RoleInterviewer))

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.RoleInterviewer, *seenRole)
	})
}

func TestRequireRoles(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)

	r := gin.New()
	r.Use(middleware.Authenticate(tokens))
	r.DELETE("/admin-only", middleware.RequireRoles(domain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	t.Run("Should reject an interviewer on an admin route", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, tokens, domain.RoleInterviewer))

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Should let an admin through", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, tokens, domain.RoleAdmin))

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestSelfOrAdmin(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)

	r := gin.New()
	r.Use(middleware.Authenticate(tokens))
	r.GET("/users/:id", middleware.SelfOrAdmin("id"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("Should let a user read their own record", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/u1", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, tokens, domain.RoleInterviewer))

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should reject a non-admin reading someone else", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/u2", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, tokens, domain.RoleInterviewer))

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Should let an admin read anyone", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/u2", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, tokens, domain.RoleAdmin))

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
