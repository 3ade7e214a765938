package domain

import "time"

// Responsible is an account (person or organization) that owns pet listings.
type Responsible struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CPF          string
	CNPJ         *string
	Type         ResponsibleType
	PhoneNumber  *string
	Address      *string
	PostalCode   *string
	IsVerified   bool
	PictureURL   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ResponsibleContact is the public subset shown next to a pet listing.
type ResponsibleContact struct {
	Name        string
	PhoneNumber *string
	Email       string
}

// ResponsiblePatch lists profile fields a responsible may change. Nil means untouched.
type ResponsiblePatch struct {
	Email       *string
	PhoneNumber *string
	Address     *string
	PostalCode  *string
	PictureURL  *string
}

// Empty reports whether the patch changes nothing.
func (p ResponsiblePatch) Empty() bool {
	return p.Email == nil && p.PhoneNumber == nil && p.Address == nil &&
		p.PostalCode == nil && p.PictureURL == nil
}

// Apply copies the set fields onto r.
func (p ResponsiblePatch) Apply(r *Responsible) {
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		r.PhoneNumber = p.PhoneNumber
	}
	if p.Address != nil {
		r.Address = p.Address
	}
	if p.PostalCode != nil {
		r.PostalCode = p.PostalCode
	}
	if p.PictureURL != nil {
		r.PictureURL = p.PictureURL
	}
}
