package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/spec-kit/pet-adoption/internal/domain"
)

// LoginRequest payload for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// UserSummary is the identity view returned by login and session.
type UserSummary struct {
	ID    string                 `json:"id"`
	Email string                 `json:"email"`
	Name  string                 `json:"name,omitempty"`
	Type  domain.ResponsibleType `json:"type"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      UserSummary `json:"user"`
}

// SessionResponse describes the caller of GET /session.
type SessionResponse struct {
	User UserSummary `json:"user"`
}

// MessageResponse carries a plain confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

func NewUserSummary(r *domain.Responsible) UserSummary {
	return UserSummary{ID: r.ID, Email: r.Email, Name: r.Name, Type: r.Type}
}

func IdentitySummary(identity domain.Identity) UserSummary {
	return UserSummary{ID: identity.SubjectID, Email: identity.Email, Type: identity.Role}
}
