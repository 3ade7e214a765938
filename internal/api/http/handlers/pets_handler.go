package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pet-adoption/internal/api/dto"
	"github.com/spec-kit/pet-adoption/internal/service"
)

// PetsHandler exposes pet listing endpoints.
type PetsHandler struct {
	pets *service.PetService
}

// NewPetsHandler constructs handler.
func NewPetsHandler(petService *service.PetService) *PetsHandler {
	return &PetsHandler{pets: petService}
}

// Create handles POST /pet. The owner is the authenticated caller.
func (h *PetsHandler) Create(c *fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	var req dto.CreatePetRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	pet, err := h.pets.Create(c.UserContext(), caller, req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPetResponse(pet))
}

// List handles GET /pet with an optional responsible_id filter.
func (h *PetsHandler) List(c *fiber.Ctx) error {
	pets, err := h.pets.List(c.UserContext(), c.Query("responsible_id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPetResponses(pets))
}

// Get handles GET /pet/:id.
func (h *PetsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	detail, err := h.pets.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPetDetailResponse(detail))
}

// Update handles PUT /pet/:id.
func (h *PetsHandler) Update(c *fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.UpdatePetRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	pet, err := h.pets.Update(c.UserContext(), caller, id, req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPetResponse(pet))
}

// Delete handles DELETE /pet/:id.
func (h *PetsHandler) Delete(c *fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.pets.Delete(c.UserContext(), caller, id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "pet deleted"})
}
