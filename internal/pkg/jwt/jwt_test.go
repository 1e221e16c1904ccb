package jwt

import (
	"testing"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestJWTService_GenerateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, expiresAt, err := svc.GenerateAccessToken(user.User{ID: 3, Name: "Khalid", Role: user.RoleDirectManager})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	role, _ := decoded.Get("role")
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "direct_manager", role)
	assert.Equal(t, TokenTypeAccess, tokenType)

	userID, _ := decoded.Get("user_id")
	id, err := UserIDFromClaims(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestJWTService_GenerateAccessToken_BadDuration(t *testing.T) {
	svc := NewJWTService(testSecret, "forever")

	_, _, err := svc.GenerateAccessToken(user.User{ID: 1})

	assert.Error(t, err)
}

func TestJWTService_StreamToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, expiresIn, err := svc.GenerateStreamToken(42)
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateStreamToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestJWTService_ValidateStreamToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")
	access, _, err := svc.GenerateAccessToken(user.User{ID: 1, Role: user.RoleEmployee})
	require.NoError(t, err)

	_, err = svc.ValidateStreamToken(access)
	assert.Error(t, err)

	_, err = svc.ValidateStreamToken("garbage")
	assert.Error(t, err)
}

func TestJWTService_ValidateStreamToken_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("other-secret", "1h").GenerateStreamToken(7)
	require.NoError(t, err)

	_, err = NewJWTService(testSecret, "1h").ValidateStreamToken(token)
	assert.Error(t, err)
}

func TestUserIDFromClaims(t *testing.T) {
	_, err := UserIDFromClaims(map[string]interface{}{})
	assert.Error(t, err)

	_, err = UserIDFromClaims(map[string]interface{}{"user_id": "abc"})
	assert.Error(t, err)

	_, err = UserIDFromClaims(map[string]interface{}{"user_id": 5})
	assert.Error(t, err)
}
