package dto

import (
	"time"

	"github.com/spec-kit/pet-adoption/internal/domain"
	"github.com/spec-kit/pet-adoption/internal/service"
)

// CreatePetRequest payload for POST /pet. There is no owner field: the owner is
// always the caller.
type CreatePetRequest struct {
	PetType            domain.PetType `json:"pet_type"`
	Name               string         `json:"name"`
	Age                *string        `json:"age"`
	Gender             string         `json:"gender"`
	Size               domain.PetSize `json:"size"`
	DescriptionHistory *string        `json:"description_history"`
	Breed              *string        `json:"breed"`
	Color              string         `json:"color"`
	Status             string         `json:"status"`
	VaccinationHistory *string        `json:"vaccination_history"`
	PicturesURL        []string       `json:"pictures_url"`
}

func (r CreatePetRequest) Validate() error {
	return r.ToInput().Validate()
}

func (r CreatePetRequest) ToInput() service.PetCreateInput {
	return service.PetCreateInput{
		PetType:            r.PetType,
		Name:               r.Name,
		Age:                r.Age,
		Gender:             r.Gender,
		Size:               r.Size,
		DescriptionHistory: r.DescriptionHistory,
		Breed:              r.Breed,
		Color:              r.Color,
		Status:             r.Status,
		VaccinationHistory: r.VaccinationHistory,
		PicturesURL:        r.PicturesURL,
	}
}

// UpdatePetRequest payload for PUT /pet/:id. Absent fields stay untouched.
type UpdatePetRequest struct {
	PetType            *domain.PetType `json:"pet_type"`
	Name               *string         `json:"name"`
	Age                *string         `json:"age"`
	Gender             *string         `json:"gender"`
	Size               *domain.PetSize `json:"size"`
	DescriptionHistory *string         `json:"description_history"`
	Breed              *string         `json:"breed"`
	Color              *string         `json:"color"`
	Status             *string         `json:"status"`
	VaccinationHistory *string         `json:"vaccination_history"`
	PicturesURL        *[]string       `json:"pictures_url"`
}

func (r UpdatePetRequest) Validate() error {
	return service.ValidatePetPatch(r.ToPatch())
}

func (r UpdatePetRequest) ToPatch() domain.PetPatch {
	return domain.PetPatch{
		PetType:            r.PetType,
		Name:               r.Name,
		Age:                r.Age,
		Gender:             r.Gender,
		Size:               r.Size,
		DescriptionHistory: r.DescriptionHistory,
		Breed:              r.Breed,
		Color:              r.Color,
		Status:             r.Status,
		VaccinationHistory: r.VaccinationHistory,
		PicturesURL:        r.PicturesURL,
	}
}

// PetResponse is the listing view.
type PetResponse struct {
	ID                 string         `json:"id"`
	PetType            domain.PetType `json:"pet_type"`
	Name               string         `json:"name"`
	Age                *string        `json:"age"`
	Gender             string         `json:"gender"`
	Size               domain.PetSize `json:"size"`
	DescriptionHistory *string        `json:"description_history"`
	Breed              *string        `json:"breed"`
	Color              string         `json:"color"`
	Status             string         `json:"status"`
	ResponsibleID      string         `json:"responsible_id"`
	VaccinationHistory *string        `json:"vaccination_history"`
	PicturesURL        []string       `json:"pictures_url"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// ContactResponse is the owner's public contact.
type ContactResponse struct {
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Email       string  `json:"email"`
}

// PetDetailResponse is a listing with its owner's contact.
type PetDetailResponse struct {
	PetResponse
	Responsible *ContactResponse `json:"responsible"`
}

func NewPetResponse(p *domain.Pet) PetResponse {
	pictures := p.PicturesURL
	if pictures == nil {
		pictures = []string{}
	}
	return PetResponse{
		ID:                 p.ID,
		PetType:            p.PetType,
		Name:               p.Name,
		Age:                p.Age,
		Gender:             p.Gender,
		Size:               p.Size,
		DescriptionHistory: p.DescriptionHistory,
		Breed:              p.Breed,
		Color:              p.Color,
		Status:             p.Status,
		ResponsibleID:      p.ResponsibleID,
		VaccinationHistory: p.VaccinationHistory,
		PicturesURL:        pictures,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func NewPetResponses(pets []domain.Pet) []PetResponse {
	out := make([]PetResponse, 0, len(pets))
	for i := range pets {
		out = append(out, NewPetResponse(&pets[i]))
	}
	return out
}

func NewPetDetailResponse(d *domain.PetDetail) PetDetailResponse {
	resp := PetDetailResponse{PetResponse: NewPetResponse(&d.Pet)}
	if d.Responsible != nil {
		resp.Responsible = &ContactResponse{
			Name:        d.Responsible.Name,
			PhoneNumber: d.Responsible.PhoneNumber,
			Email:       d.Responsible.Email,
		}
	}
	return resp
}
