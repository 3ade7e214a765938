package service

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/spec-kit/pet-adoption/internal/domain"
)

const (
	minCPFLength  = 11
	minCNPJLength = 14
)

var responsibleTypes = []domain.ResponsibleType{domain.ResponsibleIndividual, domain.ResponsibleOrganization}

// Validate checks a registration. Request bodies and the service share these rules.
func (in RegisterInput) Validate() error {
	cnpj := []validation.Rule{validation.RuneLength(minCNPJLength, 0).Error("CNPJ is invalid")}
	if in.Type == domain.ResponsibleOrganization {
		cnpj = append(cnpj, validation.Required.Error("CNPJ is required for organizations"))
	}
	return validation.Errors{
		"email":       validation.Validate(in.Email, validation.Required, validation.Length(3, 254), is.Email),
		"name":        validation.Validate(in.Name, validation.Required, validation.Length(1, 200)),
		"password":    validation.Validate(in.Password, validation.Required, validation.Length(1, 72)),
		"cpf":         validation.Validate(in.CPF, validation.Required, validation.RuneLength(minCPFLength, 0).Error("CPF is invalid")),
		"cnpj":        validation.Validate(in.CNPJ, cnpj...),
		"type":        validation.Validate(in.Type, validation.Required, oneOf(responsibleTypes)),
		"picture_url": validation.Validate(in.PictureURL, is.URL),
	}.Filter()
}

// Validate checks a new listing.
func (in PetCreateInput) Validate() error {
	return validation.Errors{
		"pet_type": validation.Validate(in.PetType, validation.Required, oneOf(domain.PetTypes)),
		"name":     validation.Validate(in.Name, validation.Required, validation.Length(1, 120)),
		"gender":   validation.Validate(in.Gender, validation.Required),
		"size":     validation.Validate(in.Size, validation.Required, oneOf(domain.PetSizes)),
		"color":    validation.Validate(in.Color, validation.Required),
		"status":   validation.Validate(in.Status, validation.Required),
	}.Filter()
}

// ValidatePetPatch checks a listing change. A field that Create requires may
// be omitted but not blanked.
func ValidatePetPatch(patch domain.PetPatch) error {
	return validation.Errors{
		"pet_type": validation.Validate(patch.PetType, validation.NilOrNotEmpty, oneOf(domain.PetTypes)),
		"name":     validation.Validate(patch.Name, validation.NilOrNotEmpty, validation.Length(1, 120)),
		"gender":   validation.Validate(patch.Gender, validation.NilOrNotEmpty),
		"size":     validation.Validate(patch.Size, validation.NilOrNotEmpty, oneOf(domain.PetSizes)),
		"color":    validation.Validate(patch.Color, validation.NilOrNotEmpty),
		"status":   validation.Validate(patch.Status, validation.NilOrNotEmpty),
	}.Filter()
}

// ValidateResponsiblePatch checks a profile change.
func ValidateResponsiblePatch(patch domain.ResponsiblePatch) error {
	return validation.Errors{
		"email":       validation.Validate(patch.Email, validation.NilOrNotEmpty, is.Email),
		"picture_url": validation.Validate(patch.PictureURL, is.URL),
	}.Filter()
}

func oneOf[T ~string](values []T) validation.Rule {
	elements := make([]interface{}, len(values))
	for i, v := range values {
		elements[i] = v
	}
	return validation.In(elements...)
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}

// normalizePetPatch trims the text fields Create trims.
func normalizePetPatch(patch domain.PetPatch) domain.PetPatch {
	patch.Name = trimmed(patch.Name)
	patch.Gender = trimmed(patch.Gender)
	patch.Color = trimmed(patch.Color)
	patch.Status = trimmed(patch.Status)
	return patch
}
