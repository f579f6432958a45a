package model

// User is a GlamGiant user account as returned by the /users endpoints.
type User struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Role              Role     `json:"role"`
	PurchaseHistory   []string `json:"purchase_history,omitempty"`
	TestSubjectStatus bool     `json:"test_subject_status,omitempty"`
	AllergicReactions string   `json:"allergic_reactions,omitempty"`
}

// UserInput is the body of POST /users.
type UserInput struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Password          string `json:"password,omitempty"`
	Role              Role   `json:"role,omitempty"`
	TestSubjectStatus bool   `json:"test_subject_status"`
	AllergicReactions string `json:"allergic_reactions,omitempty"`
}

// UserUpdate is the body of PATCH /users/:id. Nil fields are left unchanged.
type UserUpdate struct {
	Name              *string `json:"name,omitempty"`
	Email             *string `json:"email,omitempty"`
	Password          *string `json:"password,omitempty"`
	Role              *Role   `json:"role,omitempty"`
	TestSubjectStatus *bool   `json:"test_subject_status,omitempty"`
	AllergicReactions *string `json:"allergic_reactions,omitempty"`
}

// Empty reports whether the update changes nothing.
func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Password == nil &&
		u.Role == nil && u.TestSubjectStatus == nil && u.AllergicReactions == nil
}
