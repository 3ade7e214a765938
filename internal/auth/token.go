package auth

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/pet-adoption/internal/domain"
)

// DefaultTokenTTL is the validity window of issued tokens.
const DefaultTokenTTL = 7 * 24 * time.Hour

var (
	// ErrMissingSecret means no signing secret is configured; no token may be issued or accepted.
	ErrMissingSecret = errors.New("token signing secret is not configured")
	// ErrInvalidToken covers every structural failure: segments, encoding, algorithm, claims.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidSignature means the token parsed but its signature does not match.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrExpiredToken means the signature is valid but the expiration has passed.
	ErrExpiredToken = errors.New("token expired")
)

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a new manager. An empty secret is accepted here so the
// service can boot, but every Generate/Parse call fails with ErrMissingSecret.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source.
func (tm *TokenManager) WithClock(now func() time.Time) *TokenManager {
	tm.now = now
	return tm
}

// TTL returns the configured validity window.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Configured reports whether a signing secret is present.
func (tm *TokenManager) Configured() bool {
	return len(tm.secret) > 0
}

// Claims describes JWT payload.
type Claims struct {
	SubjectID string                 `json:"id"`
	Email     string                 `json:"email"`
	Role      domain.ResponsibleType `json:"type"`
	jwt.RegisteredClaims
}

// Identity converts the claims to the domain identity.
func (c *Claims) Identity() domain.Identity {
	return domain.Identity{SubjectID: c.SubjectID, Email: c.Email, Role: c.Role}
}

// GenerateToken builds and signs a JWT for the identity.
func (tm *TokenManager) GenerateToken(identity domain.Identity) (string, time.Time, error) {
	if !tm.Configured() {
		return "", time.Time{}, ErrMissingSecret
	}

	now := tm.now()
	expiresAt := jwt.NewNumericDate(now.Add(tm.ttl))
	claims := &Claims{
		SubjectID: identity.SubjectID,
		Email:     identity.Email,
		Role:      identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.SubjectID,
			ExpiresAt: expiresAt,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt.Time, nil
}

// ParseToken validates the signature first and the expiration second, so a
// forged token is never reported as merely expired.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	if !tm.Configured() {
		return nil, ErrMissingSecret
	}

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := &Claims{}
	parsed, err := parser.ParseWithClaims(strings.TrimSpace(tokenStr), claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrInvalidSignature
		}
		return nil, ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if claims.ExpiresAt == nil || claims.SubjectID == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	if tm.now().After(claims.ExpiresAt.Time) {
		return nil, ErrExpiredToken
	}
	return claims, nil
}

// Verify returns the identity carried by a valid token.
func (tm *TokenManager) Verify(tokenStr string) (domain.Identity, error) {
	claims, err := tm.ParseToken(tokenStr)
	if err != nil {
		return domain.Identity{}, err
	}
	return claims.Identity(), nil
}
