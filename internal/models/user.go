package models

type ProfileType string

const (
	ProfileStudent      ProfileType = "student"
	ProfileProfessional ProfileType = "professional"
	ProfileIndustry     ProfileType = "industry"
)

// IsValid reports whether p is one of the selectable profile types
func (p ProfileType) IsValid() bool {
	switch p {
	case ProfileStudent, ProfileProfessional, ProfileIndustry:
		return true
	}
	return false
}

// UserData accumulates what the onboarding steps collect. Each field is
// written by exactly one step and never cleared afterwards.
type UserData struct {
	Name        string       `json:"name"`
	Contact     string       `json:"contact"`
	ProfileType *ProfileType `json:"profile_type,omitempty"`
	Domain      *string      `json:"domain,omitempty"`
}

// DomainID returns the selected domain or an empty string
func (u UserData) DomainID() string {
	if u.Domain == nil {
		return ""
	}
	return *u.Domain
}

// Clone returns a copy that shares no pointers with u
func (u UserData) Clone() UserData {
	out := UserData{Name: u.Name, Contact: u.Contact}
	if u.ProfileType != nil {
		p := *u.ProfileType
		out.ProfileType = &p
	}
	if u.Domain != nil {
		d := *u.Domain
		out.Domain = &d
	}
	return out
}
