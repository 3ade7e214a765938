package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pet-adoption/internal/api/dto"
	"github.com/spec-kit/pet-adoption/internal/auth"
	"github.com/spec-kit/pet-adoption/internal/service"
)

// ResponsibleHandler exposes account registration and profile endpoints.
type ResponsibleHandler struct {
	responsibles *service.ResponsibleService
	sessions     *AuthHandler
}

// NewResponsibleHandler constructs handler. sessions clears the token cookie
// after an account is deleted and may be nil.
func NewResponsibleHandler(responsibles *service.ResponsibleService, sessions *AuthHandler) *ResponsibleHandler {
	return &ResponsibleHandler{responsibles: responsibles, sessions: sessions}
}

// Register handles POST /responsible.
func (h *ResponsibleHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	responsible, err := h.responsibles.Register(c.UserContext(), req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.ResponsibleEnvelope{
		Responsible: dto.NewResponsibleResponse(responsible),
	})
}

// Get handles GET /responsible/:id. Only the account holder sees tax ids and
// address; everyone else gets the public profile.
func (h *ResponsibleHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	responsible, err := h.responsibles.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	if caller, ok := auth.IdentityFromContext(c); ok && caller.SubjectID == responsible.ID {
		return c.JSON(dto.ResponsibleEnvelope{Responsible: dto.NewResponsibleResponse(responsible)})
	}
	return c.JSON(dto.PublicResponsibleEnvelope{Responsible: dto.NewPublicResponsibleResponse(responsible)})
}

// UpdateProfile handles PUT /responsible for the authenticated caller.
func (h *ResponsibleHandler) UpdateProfile(c *fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	var req dto.UpdateResponsibleRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	responsible, err := h.responsibles.UpdateProfile(c.UserContext(), caller, req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(dto.ResponsibleEnvelope{Responsible: dto.NewResponsibleResponse(responsible)})
}

// DeleteAccount handles DELETE /responsible: the caller's account and listings
// are removed and the token cookie is cleared.
func (h *ResponsibleHandler) DeleteAccount(c *fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	if err := h.responsibles.DeleteAccount(c.UserContext(), caller); err != nil {
		return err
	}
	if h.sessions != nil {
		h.sessions.ExpireCookie(c)
	}
	return c.JSON(dto.MessageResponse{Message: "account deleted"})
}
