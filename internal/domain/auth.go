package domain

// ResponsibleType distinguishes individual from organization accounts. It is
// also the role carried in bearer tokens.
type ResponsibleType string

const (
	ResponsibleIndividual   ResponsibleType = "INDIVIDUAL"
	ResponsibleOrganization ResponsibleType = "ORGANIZATION"
)

// Valid reports whether t is a known account type.
func (t ResponsibleType) Valid() bool {
	return t == ResponsibleIndividual || t == ResponsibleOrganization
}

// Identity is the claim set embedded in a bearer token.
type Identity struct {
	SubjectID string
	Email     string
	Role      ResponsibleType
}
