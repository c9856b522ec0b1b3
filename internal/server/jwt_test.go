package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariana/talent-hub/internal/config"
	"github.com/mariana/talent-hub/internal/db"
)

func newTestJWTService(secret string) *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: secret, ExpirationHours: 1})
}

func TestJWTRoundTrip(t *testing.T) {
	svc := newTestJWTService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, db.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
	assert.Equal(t, db.RoleAdmin, claims.GetRole())
}

func TestJWTValidateRejectsWrongSecret(t *testing.T) {
	token, err := newTestJWTService("secret-a").GenerateToken(uuid.New(), db.RoleUser)
	require.NoError(t, err)

	_, err = newTestJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTValidateRejectsEmptyToken(t *testing.T) {
	_, err := newTestJWTService("test-secret").ValidateToken("")
	assert.Error(t, err)
}

func TestJWTValidateRejectsExpiredToken(t *testing.T) {
	secret := "test-secret"
	now := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		UserID: uuid.New(),
		Role:   db.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = newTestJWTService(secret).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTValidateRejectsWrongSigningMethod(t *testing.T) {
	// alg=none tokens must never validate.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: uuid.New()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestJWTService("test-secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestAsTokenValidator(t *testing.T) {
	svc := newTestJWTService("test-secret")
	userID := uuid.New()
	token, err := svc.GenerateToken(userID, db.RoleUser)
	require.NoError(t, err)

	identity, err := svc.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.GetUserID())
	assert.Equal(t, db.RoleUser, identity.GetRole())
}
