package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
}

func TestHMACService_AccessTokenCarriesRole(t *testing.T) {
	svc := newService()
	uid := uuid.New()

	tok, err := svc.GenerateAccessToken(uid, "a@b.c", "pwd")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UserID)
	assert.Equal(t, "pwd", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, Issuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestHMACService_RefreshToken(t *testing.T) {
	svc := newService()

	tok, err := svc.GenerateRefreshToken(uuid.New(), "employer")
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(tok)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	assert.Equal(t, "employer", claims.Role)
}

func TestHMACService_TokenTypesDoNotCross(t *testing.T) {
	svc := newService()

	access, err := svc.GenerateAccessToken(uuid.New(), "", "pwd")
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(uuid.New(), "pwd")
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, err = svc.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// Same secret for both kinds still keeps them apart by type.
	shared := NewHMACService("s", "s", time.Minute, time.Hour)
	tok, err := shared.GenerateRefreshToken(uuid.New(), "pwd")
	require.NoError(t, err)
	_, err = shared.ValidateAccessToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_Expired(t *testing.T) {
	svc := newService()
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := svc.GenerateAccessToken(uuid.New(), "", "pwd")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateAccessToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_ForeignSecretOrIssuer(t *testing.T) {
	svc := newService()

	other := NewHMACService("x", "y", time.Minute, time.Hour)
	tok, err := other.GenerateAccessToken(uuid.New(), "", "pwd")
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	uid := uuid.New()
	foreign, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, Claims{
		UserID:    uid,
		Role:      "pwd",
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    "someone-else",
			Subject:   uid.String(),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString([]byte("access-secret"))
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(foreign)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_RejectsBadInput(t *testing.T) {
	_, err := NewHMACService("", "refresh-secret", time.Minute, time.Hour).GenerateAccessToken(uuid.New(), "", "pwd")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = NewHMACService("a", "r", 0, time.Hour).GenerateAccessToken(uuid.New(), "", "pwd")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = newService().GenerateAccessToken(uuid.Nil, "", "pwd")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = newService().ValidateAccessToken("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
