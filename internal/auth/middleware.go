package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/pet-adoption/internal/domain"
	apperrors "github.com/spec-kit/pet-adoption/pkg/util"
)

const identityKey = "auth_identity"

// CookieName is the cookie carrying the bearer token.
const CookieName = "token"

// Codes reported by strict routes.
const (
	CodeTokenMissing = "TOKEN_MISSING"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// TokenVerifier checks a bearer token and returns its identity.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// Guard resolves the caller identity from the request credential.
type Guard struct {
	tokens TokenVerifier
	logger *zap.Logger
}

// NewGuard constructs the route guard.
func NewGuard(tokens TokenVerifier, logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{tokens: tokens, logger: logger}
}

// Authenticate attaches the identity when a valid token is presented. Any
// rejected token leaves the request anonymous; routes decide whether anonymous
// access is allowed.
func (g *Guard) Authenticate(c *fiber.Ctx) error {
	token := ExtractToken(c)
	if token == "" {
		return c.Next()
	}

	identity, err := g.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, ErrMissingSecret) {
			g.logger.Error("bearer token presented but signing secret is not configured")
			return apperrors.NewConfigurationError(err)
		}
		g.logger.Debug("bearer token rejected", zap.Error(err), zap.String("path", c.Path()))
		return c.Next()
	}

	c.Locals(identityKey, &identity)
	return c.Next()
}

// Strict requires a valid token and tells the caller why one was rejected.
func (g *Guard) Strict(c *fiber.Ctx) error {
	token := ExtractToken(c)
	if token == "" {
		return apperrors.NewUnauthorizedCode(CodeTokenMissing, "authentication required")
	}

	identity, err := g.tokens.Verify(token)
	switch {
	case err == nil:
	case errors.Is(err, ErrMissingSecret):
		return apperrors.NewConfigurationError(err)
	case errors.Is(err, ErrExpiredToken):
		return apperrors.NewUnauthorizedCode(CodeTokenExpired, "token expired")
	default:
		return apperrors.NewUnauthorizedCode(CodeTokenInvalid, "invalid token")
	}

	c.Locals(identityKey, &identity)
	return c.Next()
}

// ExtractToken reads the token cookie, falling back to the Authorization header.
func ExtractToken(c *fiber.Ctx) string {
	if token := strings.TrimSpace(c.Cookies(CookieName)); token != "" {
		return token
	}

	authHeader := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return domain.Identity{}, false
	}
	identity, ok := val.(*domain.Identity)
	if !ok || identity == nil {
		return domain.Identity{}, false
	}
	return *identity, true
}
