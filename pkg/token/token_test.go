package token_test

import (
	"testing"
	"time"

	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := token.NewService("test-secret", 24*time.Hour)
	user := &domain.User{ID: "u1", Email: "admin@example.com", Role: "admin"}

	tok, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.ID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestVerifyFailures(t *testing.T) {
	svc := token.NewService("test-secret", 24*time.Hour)

	t.Run("Should reject an expired token regardless of payload", func(t *testing.T) {
		expired := token.NewService("test-secret", -time.Hour)
		tok, err := expired.Issue(&domain.User{ID: "u1", Role: "admin"})
		require.NoError(t, err)

		_, err = svc.Verify(tok)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("Should reject a token signed with a different secret", func(t *testing.T) {
		forged := token.NewService("other-secret", 24*time.Hour)
		tok, err := forged.Issue(&domain.User{ID: "u1", Role: "admin"})
		require.NoError(t, err)

		_, err = svc.Verify(tok)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("Should reject garbage", func(t *testing.T) {
		_, err := svc.Verify("not.a.token")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}
