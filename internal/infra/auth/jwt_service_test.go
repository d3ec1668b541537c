package auth

import (
	"testing"
	"time"

	"bloodbank/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t, "test_access_secret_key_very_long_for_testing")
	userID := uuid.New()
	roles := []string{"admin", "patient"}

	token, err := svc.IssueAccessToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, "secret-one-secret-one-secret-one")
	verifier := newTestJWTService(t, "secret-two-secret-two-secret-two")

	token, err := issuer.IssueAccessToken(uuid.New(), []string{"donor"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, "test_access_secret_key_very_long_for_testing")
	issuedAt := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.IssueAccessToken(uuid.New(), []string{"admin"})
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(accessTokenTTL + time.Minute) }
	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc := newTestJWTService(t, "test_access_secret_key_very_long_for_testing")

	_, err := svc.ValidateToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}
