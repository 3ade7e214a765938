package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/pet-adoption/internal/domain"
	apperrors "github.com/spec-kit/pet-adoption/pkg/util"
)

func newGuardApp(tm *TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": de.Message, "code": de.Code})
		},
	})
	guard := NewGuard(tm, nil)

	who := func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return c.SendString("anonymous")
		}
		return c.SendString(identity.SubjectID)
	}

	app.Get("/public", guard.Authenticate, who)
	app.Get("/private", guard.Authenticate, RequireIdentity(), who)
	app.Get("/strict", guard.Strict, who)
	return app
}

func doGet(t *testing.T, app *fiber.App, path string, mutate func(*http.Request)) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func bearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func cookie(token string) func(*http.Request) {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: CookieName, Value: token}) }
}

func TestGuard_Authenticate(t *testing.T) {
	tm := NewTokenManager("test-secret", DefaultTokenTTL)
	app := newGuardApp(tm)
	token, _, err := tm.GenerateToken(sampleIdentity())
	require.NoError(t, err)

	t.Run("no token is anonymous", func(t *testing.T) {
		status, body := doGet(t, app, "/public", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "anonymous", body)
	})

	t.Run("bearer header", func(t *testing.T) {
		_, body := doGet(t, app, "/public", bearer(token))
		assert.Equal(t, sampleIdentity().SubjectID, body)
	})

	t.Run("cookie", func(t *testing.T) {
		_, body := doGet(t, app, "/public", cookie(token))
		assert.Equal(t, sampleIdentity().SubjectID, body)
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		other, _, err := tm.GenerateToken(domain.Identity{SubjectID: "other", Role: domain.ResponsibleOrganization})
		require.NoError(t, err)
		_, body := doGet(t, app, "/public", func(r *http.Request) {
			cookie(token)(r)
			bearer(other)(r)
		})
		assert.Equal(t, sampleIdentity().SubjectID, body)
	})

	t.Run("tampered token is anonymous", func(t *testing.T) {
		status, body := doGet(t, app, "/public", bearer(token+"x"))
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "anonymous", body)
	})

	t.Run("non bearer scheme ignored", func(t *testing.T) {
		_, body := doGet(t, app, "/public", func(r *http.Request) { r.Header.Set("Authorization", "Basic "+token) })
		assert.Equal(t, "anonymous", body)
	})
}

func TestGuard_RequireIdentity(t *testing.T) {
	tm := NewTokenManager("test-secret", DefaultTokenTTL)
	app := newGuardApp(tm)
	token, _, err := tm.GenerateToken(sampleIdentity())
	require.NoError(t, err)

	status, _ := doGet(t, app, "/private", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doGet(t, app, "/private", bearer("garbage"))
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := doGet(t, app, "/private", bearer(token))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, sampleIdentity().SubjectID, body)
}

func TestGuard_StrictReportsReason(t *testing.T) {
	issuedAt := time.Now().Add(-30 * 24 * time.Hour)
	old := NewTokenManager("test-secret", DefaultTokenTTL).WithClock(fixedClock(issuedAt))
	expired, _, err := old.GenerateToken(sampleIdentity())
	require.NoError(t, err)

	tm := NewTokenManager("test-secret", DefaultTokenTTL)
	app := newGuardApp(tm)

	status, body := doGet(t, app, "/strict", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, CodeTokenMissing)

	status, body = doGet(t, app, "/strict", bearer(expired))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, CodeTokenExpired)

	status, body = doGet(t, app, "/strict", bearer("a.b.c"))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, CodeTokenInvalid)
}

func TestGuard_MissingSecretFailsHard(t *testing.T) {
	signed, _, err := NewTokenManager("x", DefaultTokenTTL).GenerateToken(sampleIdentity())
	require.NoError(t, err)

	app := newGuardApp(NewTokenManager("", DefaultTokenTTL))

	status, body := doGet(t, app, "/public", bearer(signed))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body, apperrors.CodeConfiguration)

	status, _ = doGet(t, app, "/public", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestAuthorize(t *testing.T) {
	owner := sampleIdentity()
	assert.NoError(t, Authorize(owner, owner.SubjectID))

	err := Authorize(domain.Identity{SubjectID: "someone-else"}, owner.SubjectID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))

	assert.Error(t, Authorize(domain.Identity{}, ""))
}
