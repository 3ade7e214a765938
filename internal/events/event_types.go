package events

import (
	"time"

	"github.com/spec-kit/pet-adoption/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPetCreated         EventType = "pet_created"
	EventPetUpdated         EventType = "pet_updated"
	EventPetDeleted         EventType = "pet_deleted"
	EventResponsibleCreated EventType = "responsible_created"
	EventResponsibleDeleted EventType = "responsible_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID            string      `json:"id"`
	Type          EventType   `json:"type"`
	ResourceID    string      `json:"resource_id"`
	ResponsibleID string      `json:"responsible_id"`
	Timestamp     time.Time   `json:"timestamp"`
	Payload       interface{} `json:"payload"`
}

// PetChangedPayload accompanies pet_created and pet_updated.
type PetChangedPayload struct {
	Name    string         `json:"name"`
	PetType domain.PetType `json:"pet_type"`
	Status  string         `json:"status"`
}

// ResponsibleCreatedPayload accompanies responsible_created.
type ResponsibleCreatedPayload struct {
	Email string                 `json:"email"`
	Type  domain.ResponsibleType `json:"type"`
}
