package models

// Designation is a user's fixed job-role category, chosen at signup and
// immutable afterwards.
type Designation string

const (
	DesignationFrontend  Designation = "Frontend Developer"
	DesignationBackend   Designation = "Backend Developer"
	DesignationFullStack Designation = "Full Stack Developer"
	DesignationUIUX      Designation = "UI/UX Designer"
	DesignationSalesman  Designation = "Salesman"
	DesignationMarketer  Designation = "Marketer"
)

// AllDesignations lists every valid designation value.
var AllDesignations = []Designation{
	DesignationFrontend,
	DesignationBackend,
	DesignationFullStack,
	DesignationUIUX,
	DesignationSalesman,
	DesignationMarketer,
}

// IsValid reports whether d is one of the known designations.
func (d Designation) IsValid() bool {
	for _, v := range AllDesignations {
		if d == v {
			return true
		}
	}
	return false
}

// TeamType is a team's category. Each type maps to the set of designations
// whose holders may join such a team.
type TeamType string

const (
	TeamTypeFrontend  TeamType = "Frontend"
	TeamTypeBackend   TeamType = "Backend"
	TeamTypeUIUX      TeamType = "UI/UX"
	TeamTypeSales     TeamType = "Sales"
	TeamTypeMarketing TeamType = "Marketing"
	TeamTypeFullStack TeamType = "Full Stack"
)

// AllTeamTypes lists every valid team type value.
var AllTeamTypes = []TeamType{
	TeamTypeFrontend,
	TeamTypeBackend,
	TeamTypeUIUX,
	TeamTypeSales,
	TeamTypeMarketing,
	TeamTypeFullStack,
}

// IsValid reports whether t is one of the known team types.
func (t TeamType) IsValid() bool {
	for _, v := range AllTeamTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Designations returns the designations eligible for membership in a team of
// this type. Full Stack teams accept the union of the four development
// designations; every other type maps to exactly one designation.
func (t TeamType) Designations() []Designation {
	switch t {
	case TeamTypeFrontend:
		return []Designation{DesignationFrontend}
	case TeamTypeBackend:
		return []Designation{DesignationBackend}
	case TeamTypeUIUX:
		return []Designation{DesignationUIUX}
	case TeamTypeSales:
		return []Designation{DesignationSalesman}
	case TeamTypeMarketing:
		return []Designation{DesignationMarketer}
	case TeamTypeFullStack:
		return []Designation{
			DesignationFrontend,
			DesignationBackend,
			DesignationFullStack,
			DesignationUIUX,
		}
	default:
		return nil
	}
}

// Accepts reports whether a user with designation d may be a member of a team
// of this type.
func (t TeamType) Accepts(d Designation) bool {
	for _, v := range t.Designations() {
		if d == v {
			return true
		}
	}
	return false
}
