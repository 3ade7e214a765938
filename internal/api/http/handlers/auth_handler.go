package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pet-adoption/internal/api/dto"
	"github.com/spec-kit/pet-adoption/internal/auth"
	"github.com/spec-kit/pet-adoption/internal/service"
)

// CookieConfig controls the token cookie attributes.
type CookieConfig struct {
	Secure   bool
	SameSite string
}

// AuthHandler exposes login, logout and session endpoints.
type AuthHandler struct {
	auth   *service.AuthService
	cookie CookieConfig
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookie CookieConfig) *AuthHandler {
	if cookie.SameSite == "" {
		cookie.SameSite = fiber.CookieSameSiteLaxMode
	}
	return &AuthHandler{auth: authService, cookie: cookie}
}

// Login handles POST /login and sets the token cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	result, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(h.tokenCookie(result.Token, result.ExpiresAt, int(h.auth.TokenManager().TTL().Seconds())))
	return c.Status(http.StatusOK).JSON(dto.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      dto.NewUserSummary(result.Responsible),
	})
}

// Logout handles POST /logout. Tokens are stateless, so this only clears the cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.ExpireCookie(c)
	return c.JSON(dto.MessageResponse{Message: "logged out"})
}

// ExpireCookie tells the client to drop the token cookie.
func (h *AuthHandler) ExpireCookie(c *fiber.Ctx) {
	c.Cookie(h.tokenCookie("", time.Unix(0, 0), -1))
}

// Session handles GET /session and reports the caller's identity.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.SessionResponse{User: dto.IdentitySummary(id)})
}

func (h *AuthHandler) tokenCookie(value string, expires time.Time, maxAge int) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	}
}
