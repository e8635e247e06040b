package models

import "slices"

// UserProfile is the user's editable identity and dietary settings.
// It is always replaced wholesale on update.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	// Phone is optional and omitted from the persisted JSON when empty.
	Phone       string   `json:"phone,omitempty"`
	Allergies   []string `json:"allergies"`
	Preferences []string `json:"preferences"`
}

// DefaultProfile returns the profile used before the user has saved anything.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:        "Usuário",
		Email:       "usuario@email.com",
		Allergies:   []string{"Lactose"},
		Preferences: []string{"Sem Lactose", "Vegano"},
	}
}

// Clone returns a deep copy so callers never share slices with the store.
func (p UserProfile) Clone() UserProfile {
	p.Allergies = cloneStrings(p.Allergies)
	p.Preferences = cloneStrings(p.Preferences)
	return p
}

// WithIdentity returns a copy of the profile with name and email replaced.
func (p UserProfile) WithIdentity(name, email string) UserProfile {
	c := p.Clone()
	c.Name = name
	c.Email = email
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
