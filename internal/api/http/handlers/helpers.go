package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pet-adoption/internal/api/dto"
	"github.com/spec-kit/pet-adoption/internal/auth"
	"github.com/spec-kit/pet-adoption/internal/domain"
	apperrors "github.com/spec-kit/pet-adoption/pkg/util"
)

// parseBody decodes a JSON body and runs its validation rules.
func parseBody(c *fiber.Ctx, body dto.Validatable) error {
	if err := c.BodyParser(body); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	return dto.Check(body)
}

func identity(c *fiber.Ctx) (domain.Identity, error) {
	id, ok := auth.IdentityFromContext(c)
	if !ok {
		return domain.Identity{}, apperrors.NewUnauthorized("Unauthorized")
	}
	return id, nil
}

func pathID(c *fiber.Ctx) (string, error) {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return "", apperrors.NewValidationError("id is required", map[string]any{"id": "cannot be blank"})
	}
	return id, nil
}
