package jwt

import (
	"FarmToFork-Backend/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token, expiresAt, err := svc.GenerateTokenUser("1", domain.RoleFarmer, "session-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	userID, role, sessionID, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1", userID)
	assert.Equal(t, domain.RoleFarmer, role)
	assert.Equal(t, "session-1", sessionID)
}

func TestGetUserIDByToken_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret", time.Hour).GenerateTokenUser("1", domain.RoleFarmer, "s")
	require.NoError(t, err)

	_, _, _, err = NewJWTService("other", time.Hour).GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByToken_Expired(t *testing.T) {
	claims := jwtUserClaim{
		UserID:    "1",
		Role:      domain.RoleFarmer,
		SessionID: "s",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, _, _, err = NewJWTService("secret", time.Hour).GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestGetUserIDByToken_Garbage(t *testing.T) {
	_, _, _, err := NewJWTService("secret", 0).GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestValidateTokenUser_RejectsNoneAlg(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwtUserClaim{UserID: "1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTService("secret", time.Hour).ValidateTokenUser(token)
	assert.Error(t, err)
}
