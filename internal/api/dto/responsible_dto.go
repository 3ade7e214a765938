package dto

import (
	"time"

	"github.com/spec-kit/pet-adoption/internal/domain"
	"github.com/spec-kit/pet-adoption/internal/service"
)

// RegisterRequest payload for POST /responsible.
type RegisterRequest struct {
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Password    string  `json:"password"`
	CPF         string  `json:"cpf"`
	CNPJ        *string `json:"cnpj"`
	Type        string  `json:"type"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	PostalCode  *string `json:"postal_code"`
	PictureURL  *string `json:"picture_url"`
}

func (r RegisterRequest) Validate() error {
	return r.ToInput().Validate()
}

// ToInput maps the body onto the registration use case input.
func (r RegisterRequest) ToInput() service.RegisterInput {
	return service.RegisterInput{
		Email:       r.Email,
		Name:        r.Name,
		Password:    r.Password,
		CPF:         r.CPF,
		CNPJ:        r.CNPJ,
		Type:        domain.ResponsibleType(r.Type),
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		PostalCode:  r.PostalCode,
		PictureURL:  r.PictureURL,
	}
}

// UpdateResponsibleRequest payload for PUT /responsible.
type UpdateResponsibleRequest struct {
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	PostalCode  *string `json:"postal_code"`
	PictureURL  *string `json:"picture_url"`
}

func (r UpdateResponsibleRequest) Validate() error {
	return service.ValidateResponsiblePatch(r.ToPatch())
}

func (r UpdateResponsibleRequest) ToPatch() domain.ResponsiblePatch {
	return domain.ResponsiblePatch{
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		PostalCode:  r.PostalCode,
		PictureURL:  r.PictureURL,
	}
}

// ResponsibleResponse is the account holder's own view; the password hash is never rendered.
type ResponsibleResponse struct {
	ID          string                 `json:"id"`
	Email       string                 `json:"email"`
	Name        string                 `json:"name"`
	CPF         string                 `json:"cpf"`
	CNPJ        *string                `json:"cnpj"`
	Type        domain.ResponsibleType `json:"type"`
	PhoneNumber *string                `json:"phone_number"`
	Address     *string                `json:"address"`
	PostalCode  *string                `json:"postal_code"`
	IsVerified  bool                   `json:"is_verified"`
	PictureURL  *string                `json:"picture_url"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// ResponsibleEnvelope wraps a single account.
type ResponsibleEnvelope struct {
	Responsible ResponsibleResponse `json:"responsible"`
}

func NewResponsibleResponse(r *domain.Responsible) ResponsibleResponse {
	return ResponsibleResponse{
		ID:          r.ID,
		Email:       r.Email,
		Name:        r.Name,
		CPF:         r.CPF,
		CNPJ:        r.CNPJ,
		Type:        r.Type,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		PostalCode:  r.PostalCode,
		IsVerified:  r.IsVerified,
		PictureURL:  r.PictureURL,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// PublicResponsibleResponse is the profile shown to anyone other than the account holder.
type PublicResponsibleResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Type        domain.ResponsibleType `json:"type"`
	Email       string                 `json:"email"`
	PhoneNumber *string                `json:"phone_number"`
	PictureURL  *string                `json:"picture_url"`
	IsVerified  bool                   `json:"is_verified"`
}

// PublicResponsibleEnvelope wraps a public profile.
type PublicResponsibleEnvelope struct {
	Responsible PublicResponsibleResponse `json:"responsible"`
}

func NewPublicResponsibleResponse(r *domain.Responsible) PublicResponsibleResponse {
	return PublicResponsibleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Type:        r.Type,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		PictureURL:  r.PictureURL,
		IsVerified:  r.IsVerified,
	}
}
