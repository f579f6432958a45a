package model

// Identity is the typed, session-derived description of the signed-in user.
// It is immutable for the lifetime of a session except through an explicit
// re-login or refresh.
type Identity struct {
	ID    string `json:"id" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty"`
	Role  Role   `json:"role" validate:"required"`
}

// DisplayName returns the name, falling back to the email address.
func (i *Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Email
}

// Is reports whether the identity holds one of the given roles.
func (i *Identity) Is(roles ...Role) bool {
	if i == nil {
		return false
	}
	return HasRole(i.Role, roles...)
}
