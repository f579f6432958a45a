package identity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/me/glamgiant/pkg/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateIdentity(id *model.Identity) error {
	if err := validate.Struct(id); err != nil {
		return err
	}
	if !id.Role.Valid() {
		return fmt.Errorf("unknown role %q", id.Role)
	}
	return nil
}

// ParseIdentity strictly decodes a persisted identity. The role is
// normalized to its canonical lower-case form.
func ParseIdentity(data string) (*model.Identity, error) {
	var raw struct {
		ID    *string `json:"id"`
		Email *string `json:"email"`
		Name  string  `json:"name"`
		Role  *string `json:"role"`
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode identity: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode identity: trailing data")
	}
	if raw.ID == nil || raw.Email == nil || raw.Role == nil {
		return nil, fmt.Errorf("identity is missing required fields")
	}
	role, err := model.ParseRole(*raw.Role)
	if err != nil {
		return nil, err
	}
	id := &model.Identity{ID: *raw.ID, Email: *raw.Email, Name: raw.Name, Role: role}
	if err := validateIdentity(id); err != nil {
		return nil, err
	}
	return id, nil
}
