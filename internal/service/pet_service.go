package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/pet-adoption/internal/auth"
	"github.com/spec-kit/pet-adoption/internal/cache"
	"github.com/spec-kit/pet-adoption/internal/domain"
	"github.com/spec-kit/pet-adoption/internal/events"
	"github.com/spec-kit/pet-adoption/internal/repository"
	apperrors "github.com/spec-kit/pet-adoption/pkg/util"
)

// PetCreateInput describes a new listing. The owner always comes from the caller's identity.
type PetCreateInput struct {
	PetType            domain.PetType
	Name               string
	Age                *string
	Gender             string
	Size               domain.PetSize
	DescriptionHistory *string
	Breed              *string
	Color              string
	Status             string
	VaccinationHistory *string
	PicturesURL        []string
}

// PetService coordinates listing workflows.
type PetService struct {
	pets       repository.PetRepository
	listings   cache.PetListingCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// PetDependencies bundles collaborators for the pet service.
type PetDependencies struct {
	PetRepo    repository.PetRepository
	Listings   cache.PetListingCache
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewPetService constructs the service.
func NewPetService(deps PetDependencies) *PetService {
	listings := deps.Listings
	if listings == nil {
		listings = cache.NopPetCache{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PetService{
		pets:       deps.PetRepo,
		listings:   listings,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// Create stores a listing owned by the caller.
func (s *PetService) Create(ctx context.Context, identity domain.Identity, input PetCreateInput) (*domain.Pet, error) {
	if identity.SubjectID == "" {
		return nil, apperrors.NewUnauthorized("Unauthorized")
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Gender = strings.TrimSpace(input.Gender)
	input.Color = strings.TrimSpace(input.Color)
	input.Status = strings.TrimSpace(input.Status)
	if err := apperrors.FromValidation(input.Validate()); err != nil {
		return nil, err
	}

	pictures := input.PicturesURL
	if pictures == nil {
		pictures = []string{}
	}
	pet := &domain.Pet{
		PetType:            input.PetType,
		Name:               input.Name,
		Age:                input.Age,
		Gender:             input.Gender,
		Size:               input.Size,
		DescriptionHistory: input.DescriptionHistory,
		Breed:              input.Breed,
		Color:              input.Color,
		Status:             input.Status,
		ResponsibleID:      identity.SubjectID,
		VaccinationHistory: input.VaccinationHistory,
		PicturesURL:        pictures,
	}
	if err := s.pets.Create(ctx, pet); err != nil {
		// a token can outlive its account
		return nil, mapRepoError("responsible", err)
	}

	publish(ctx, s.dispatcher, petEvent(events.EventPetCreated, pet))
	return pet, nil
}

// List returns listings newest first, optionally only those of one responsible.
// The cache generation is read before the database so a concurrent write
// invalidates whatever this call stores.
func (s *PetService) List(ctx context.Context, responsibleID string) ([]domain.Pet, error) {
	responsibleID = strings.TrimSpace(responsibleID)
	gen, genErr := s.listings.Generation(ctx, responsibleID)
	if genErr != nil {
		s.logger.Warn("pet listing cache unavailable", zap.Error(genErr))
	} else if cached, ok, err := s.listings.Get(ctx, responsibleID, gen); err != nil {
		s.logger.Warn("pet listing cache read failed", zap.Error(err))
	} else if ok {
		return cached, nil
	}

	filter := repository.PetFilter{}
	if responsibleID != "" {
		filter.ResponsibleID = &responsibleID
	}
	pets, err := s.pets.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if pets == nil {
		pets = []domain.Pet{}
	}
	if genErr == nil {
		if err := s.listings.Set(ctx, responsibleID, gen, pets); err != nil {
			s.logger.Warn("pet listing cache write failed", zap.Error(err))
		}
	}
	return pets, nil
}

// Get returns a listing with its owner's contact.
func (s *PetService) Get(ctx context.Context, id string) (*domain.PetDetail, error) {
	detail, err := s.pets.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("pet", err)
	}
	return detail, nil
}

// Update applies a partial change. Only the owner may update, and the ownership
// check runs with the row locked.
func (s *PetService) Update(ctx context.Context, identity domain.Identity, id string, patch domain.PetPatch) (*domain.Pet, error) {
	if patch.Empty() {
		return nil, apperrors.NewValidationError("at least one field must be provided", nil)
	}
	patch = normalizePetPatch(patch)
	if err := apperrors.FromValidation(ValidatePetPatch(patch)); err != nil {
		return nil, err
	}

	pet, err := s.pets.UpdateOwned(ctx, id, ownerCheck(identity), patch)
	if err != nil {
		return nil, mapRepoError("pet", err)
	}

	publish(ctx, s.dispatcher, petEvent(events.EventPetUpdated, pet))
	return pet, nil
}

// Delete removes a listing owned by the caller.
func (s *PetService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	if err := s.pets.DeleteOwned(ctx, id, ownerCheck(identity)); err != nil {
		return mapRepoError("pet", err)
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:          events.EventPetDeleted,
		ResourceID:    id,
		ResponsibleID: identity.SubjectID,
	})
	return nil
}

func ownerCheck(identity domain.Identity) repository.OwnerCheck {
	return func(ownerID string) error {
		return auth.Authorize(identity, ownerID)
	}
}

func petEvent(eventType events.EventType, pet *domain.Pet) events.Event {
	return events.Event{
		Type:          eventType,
		ResourceID:    pet.ID,
		ResponsibleID: pet.ResponsibleID,
		Payload: events.PetChangedPayload{
			Name:    pet.Name,
			PetType: pet.PetType,
			Status:  pet.Status,
		},
	}
}
