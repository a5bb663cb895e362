package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	Issuer = "inclusive-jobs"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims identify the account and its role. Refresh tokens carry the role too
// so a refresh can mint an access token without reloading the account.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	TokenType string    `json:"token_type"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateAccessToken(userID uuid.UUID, email, role string) (string, error)
	GenerateRefreshToken(userID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (Claims, error)
	ValidateRefreshToken(token string) (Claims, error)
}

type HMACService struct {
	access  keyConfig
	refresh keyConfig

	now func() time.Time
}

type keyConfig struct {
	secret    []byte
	expiresIn time.Duration
}

func NewHMACService(accessSecret, refreshSecret string, accessExpiresIn, refreshExpiresIn time.Duration) *HMACService {
	return &HMACService{
		access:  keyConfig{secret: []byte(accessSecret), expiresIn: accessExpiresIn},
		refresh: keyConfig{secret: []byte(refreshSecret), expiresIn: refreshExpiresIn},
		now:     time.Now,
	}
}

func (s *HMACService) GenerateAccessToken(userID uuid.UUID, email, role string) (string, error) {
	return s.sign(s.access, Claims{UserID: userID, Email: email, Role: role, TokenType: TokenTypeAccess})
}

func (s *HMACService) GenerateRefreshToken(userID uuid.UUID, role string) (string, error) {
	return s.sign(s.refresh, Claims{UserID: userID, Role: role, TokenType: TokenTypeRefresh})
}

// ValidateAccessToken accepts only access tokens signed with the access secret.
func (s *HMACService) ValidateAccessToken(token string) (Claims, error) {
	return s.parse(s.access, TokenTypeAccess, token)
}

// ValidateRefreshToken accepts only refresh tokens signed with the refresh secret.
func (s *HMACService) ValidateRefreshToken(token string) (Claims, error) {
	return s.parse(s.refresh, TokenTypeRefresh, token)
}

func (s *HMACService) sign(k keyConfig, c Claims) (string, error) {
	if len(k.secret) == 0 || k.expiresIn <= 0 || c.UserID == uuid.Nil {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c.RegisteredClaims = jwtlib.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    Issuer,
		Subject:   c.UserID.String(),
		IssuedAt:  jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(k.expiresIn)),
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(k.secret)
}

func (s *HMACService) parse(k keyConfig, tokenType, token string) (Claims, error) {
	if token == "" || len(k.secret) == 0 {
		return Claims{}, ErrTokenInvalid
	}

	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(Issuer),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(s.now),
	)

	var c Claims
	if _, err := p.ParseWithClaims(token, &c, func(*jwtlib.Token) (any, error) {
		return k.secret, nil
	}); err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}

	if c.TokenType != tokenType || c.UserID == uuid.Nil || c.Subject != c.UserID.String() {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}
