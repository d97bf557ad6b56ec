package entity

// Profile is the current account as reported by the profile endpoint.
// It is derived data: it belongs to exactly one credential epoch.
type Profile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	Balance string `json:"balance"`
}

// ProfileState is what the profile cache exposes to its consumers.
type ProfileState struct {
	User      *Profile `json:"user"`
	IsLoading bool     `json:"is_loading"`
}

// RoleOrEmpty returns the resolved role, or "" when no profile is known.
func (s ProfileState) RoleOrEmpty() Role {
	if s.User == nil {
		return ""
	}

	return s.User.Role
}
