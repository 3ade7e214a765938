package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pet-adoption/internal/domain"
	apperrors "github.com/spec-kit/pet-adoption/pkg/util"
)

// RequireIdentity rejects anonymous callers.
func RequireIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := IdentityFromContext(c); !ok {
			return apperrors.NewUnauthorized("Unauthorized")
		}
		return c.Next()
	}
}

// Authorize allows a mutation only when the caller owns the resource.
func Authorize(identity domain.Identity, ownerID string) error {
	if identity.SubjectID == "" || identity.SubjectID != ownerID {
		return apperrors.NewForbidden("you are not allowed to modify this resource")
	}
	return nil
}
