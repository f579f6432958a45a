package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/me/glamgiant/pkg/model"
)

// tokenClaims is the payload carried by a GlamGiant credential.
type tokenClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// DecodeToken extracts an Identity from a credential without verifying
// its signature; the API server is the authority on validity. The id comes
// from the "id" claim, falling back to "sub".
func DecodeToken(raw string) (*model.Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty token")
	}
	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	id := claims.UserID
	if id == "" {
		id = claims.Subject
	}
	role, err := model.ParseRole(claims.Role)
	if err != nil {
		return nil, fmt.Errorf("token role: %w", err)
	}
	ident := &model.Identity{
		ID:    id,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  role,
	}
	if err := validateIdentity(ident); err != nil {
		return nil, fmt.Errorf("token claims: %w", err)
	}
	return ident, nil
}
