package domain

import "time"

// PetType enumerates the kinds of animals that can be listed.
type PetType string

const (
	PetTypePet        PetType = "PET"
	PetTypeReptile    PetType = "REPTILE"
	PetTypeRodent     PetType = "RODENT"
	PetTypeBird       PetType = "BIRD"
	PetTypeFish       PetType = "FISH"
	PetTypeWildAnimal PetType = "WILD_ANIMAL"
)

// PetTypes lists every accepted PetType.
var PetTypes = []PetType{PetTypePet, PetTypeReptile, PetTypeRodent, PetTypeBird, PetTypeFish, PetTypeWildAnimal}

// PetSize enumerates listing sizes.
type PetSize string

const (
	PetSizeSmall  PetSize = "SMALL"
	PetSizeMedium PetSize = "MEDIUM"
	PetSizeLarge  PetSize = "LARGE"
)

// PetSizes lists every accepted PetSize.
var PetSizes = []PetSize{PetSizeSmall, PetSizeMedium, PetSizeLarge}

// Pet is an adoption listing. ResponsibleID is the owner and never changes.
type Pet struct {
	ID                 string
	PetType            PetType
	Name               string
	Age                *string
	Gender             string
	Size               PetSize
	DescriptionHistory *string
	Breed              *string
	Color              string
	Status             string
	ResponsibleID      string
	VaccinationHistory *string
	PicturesURL        []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PetDetail is a pet together with its owner's contact details.
type PetDetail struct {
	Pet
	Responsible *ResponsibleContact
}

// PetPatch lists listing fields to change. Nil means untouched.
type PetPatch struct {
	PetType            *PetType
	Name               *string
	Age                *string
	Gender             *string
	Size               *PetSize
	DescriptionHistory *string
	Breed              *string
	Color              *string
	Status             *string
	VaccinationHistory *string
	PicturesURL        *[]string
}

// Empty reports whether the patch changes nothing.
func (p PetPatch) Empty() bool {
	return p.PetType == nil && p.Name == nil && p.Age == nil && p.Gender == nil &&
		p.Size == nil && p.DescriptionHistory == nil && p.Breed == nil && p.Color == nil &&
		p.Status == nil && p.VaccinationHistory == nil && p.PicturesURL == nil
}

// Apply copies the set fields onto pet.
func (p PetPatch) Apply(pet *Pet) {
	if p.PetType != nil {
		pet.PetType = *p.PetType
	}
	if p.Name != nil {
		pet.Name = *p.Name
	}
	if p.Age != nil {
		pet.Age = p.Age
	}
	if p.Gender != nil {
		pet.Gender = *p.Gender
	}
	if p.Size != nil {
		pet.Size = *p.Size
	}
	if p.DescriptionHistory != nil {
		pet.DescriptionHistory = p.DescriptionHistory
	}
	if p.Breed != nil {
		pet.Breed = p.Breed
	}
	if p.Color != nil {
		pet.Color = *p.Color
	}
	if p.Status != nil {
		pet.Status = *p.Status
	}
	if p.VaccinationHistory != nil {
		pet.VaccinationHistory = p.VaccinationHistory
	}
	if p.PicturesURL != nil {
		pet.PicturesURL = append([]string{}, (*p.PicturesURL)...)
	}
}
