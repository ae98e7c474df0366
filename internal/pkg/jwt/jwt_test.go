package jwt

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")
	employeeID := "EMP001"

	token, expiresAt, err := svc.GenerateAccessToken(Subject{
		Email:      "priya@hrms.com",
		FullName:   "Priya Sharma",
		Role:       user.RoleEmployee,
		EmployeeID: &employeeID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	parsed, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := parsed.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "priya@hrms.com", claims["email"])
	assert.Equal(t, "EMPLOYEE", claims["role"])
	assert.Equal(t, "EMP001", claims["employee_id"])
	assert.NoError(t, CheckTokenType(claims))
}

func TestGenerateAccessToken_InvalidDuration(t *testing.T) {
	svc := NewJWTService("secret", "forever")

	_, _, err := svc.GenerateAccessToken(Subject{Email: "admin@hrms.com", Role: user.RoleAdmin})
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("secret", "1h")
	token, _, err := svc.GenerateAccessToken(Subject{Email: "admin@hrms.com", Role: user.RoleAdmin})
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestCheckTokenType(t *testing.T) {
	assert.ErrorIs(t, CheckTokenType(map[string]interface{}{"type": "refresh"}), ErrInvalidTokenType)
	assert.ErrorIs(t, CheckTokenType(map[string]interface{}{}), ErrInvalidTokenType)
}
