package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/pet-adoption/internal/auth"
	"github.com/spec-kit/pet-adoption/internal/domain"
	"github.com/spec-kit/pet-adoption/internal/events"
	"github.com/spec-kit/pet-adoption/internal/repository"
	apperrors "github.com/spec-kit/pet-adoption/pkg/util"
)

// RegisterInput describes a new account.
type RegisterInput struct {
	Email       string
	Name        string
	Password    string
	CPF         string
	CNPJ        *string
	Type        domain.ResponsibleType
	PhoneNumber *string
	Address     *string
	PostalCode  *string
	PictureURL  *string
}

// ResponsibleService manages accounts and profiles.
type ResponsibleService struct {
	responsibles repository.ResponsibleRepository
	dispatcher   events.Dispatcher
	bcryptCost   int
	logger       *zap.Logger
}

// ResponsibleDependencies bundles collaborators for the service.
type ResponsibleDependencies struct {
	ResponsibleRepo repository.ResponsibleRepository
	Dispatcher      events.Dispatcher
	BcryptCost      int
	Logger          *zap.Logger
}

// NewResponsibleService constructs the service.
func NewResponsibleService(deps ResponsibleDependencies) *ResponsibleService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResponsibleService{
		responsibles: deps.ResponsibleRepo,
		dispatcher:   deps.Dispatcher,
		bcryptCost:   deps.BcryptCost,
		logger:       logger,
	}
}

// Register creates an account after checking the tax identifiers and email uniqueness.
func (s *ResponsibleService) Register(ctx context.Context, input RegisterInput) (*domain.Responsible, error) {
	input.Email = normalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	input.CPF = strings.TrimSpace(input.CPF)
	if input.CNPJ != nil {
		trimmed := strings.TrimSpace(*input.CNPJ)
		input.CNPJ = &trimmed
	}
	if err := apperrors.FromValidation(input.Validate()); err != nil {
		return nil, err
	}

	if _, err := s.responsibles.GetByEmail(ctx, input.Email); err == nil {
		return nil, mapRepoError("responsible", repository.ErrDuplicateEmail)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	responsible := &domain.Responsible{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		CPF:          input.CPF,
		CNPJ:         input.CNPJ,
		Type:         input.Type,
		PhoneNumber:  input.PhoneNumber,
		Address:      input.Address,
		PostalCode:   input.PostalCode,
		PictureURL:   input.PictureURL,
	}
	if err := s.responsibles.Create(ctx, responsible); err != nil {
		return nil, mapRepoError("responsible", err)
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:          events.EventResponsibleCreated,
		ResourceID:    responsible.ID,
		ResponsibleID: responsible.ID,
		Payload: events.ResponsibleCreatedPayload{
			Email: responsible.Email,
			Type:  responsible.Type,
		},
	})
	s.logger.Info("responsible registered", zap.String("responsible_id", responsible.ID), zap.String("type", string(responsible.Type)))
	return responsible, nil
}

// Get returns a public profile.
func (s *ResponsibleService) Get(ctx context.Context, id string) (*domain.Responsible, error) {
	responsible, err := s.responsibles.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("responsible", err)
	}
	return responsible, nil
}

// UpdateProfile changes the caller's own contact details.
func (s *ResponsibleService) UpdateProfile(ctx context.Context, identity domain.Identity, patch domain.ResponsiblePatch) (*domain.Responsible, error) {
	if patch.Empty() {
		return nil, apperrors.NewValidationError("at least one field must be provided", nil)
	}
	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		patch.Email = &email
	}
	if err := apperrors.FromValidation(ValidateResponsiblePatch(patch)); err != nil {
		return nil, err
	}

	current, err := s.responsibles.GetByID(ctx, identity.SubjectID)
	if err != nil {
		return nil, mapRepoError("responsible", err)
	}
	if err := auth.Authorize(identity, current.ID); err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != current.Email {
		if _, err := s.responsibles.GetByEmail(ctx, *patch.Email); err == nil {
			return nil, mapRepoError("responsible", repository.ErrDuplicateEmail)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	patch.Apply(current)
	if err := s.responsibles.Update(ctx, current); err != nil {
		return nil, mapRepoError("responsible", err)
	}
	return current, nil
}

// DeleteAccount removes the caller's account together with its listings.
func (s *ResponsibleService) DeleteAccount(ctx context.Context, identity domain.Identity) error {
	if identity.SubjectID == "" {
		return apperrors.NewUnauthorized("Unauthorized")
	}
	if err := s.responsibles.Delete(ctx, identity.SubjectID); err != nil {
		return mapRepoError("responsible", err)
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:          events.EventResponsibleDeleted,
		ResourceID:    identity.SubjectID,
		ResponsibleID: identity.SubjectID,
	})
	s.logger.Info("responsible deleted", zap.String("responsible_id", identity.SubjectID))
	return nil
}

func publish(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	_ = dispatcher.Publish(ctx, event)
}
