package cli

import (
	"fmt"
	"strings"

	"github.com/me/glamgiant/internal/glamapi"
	"github.com/me/glamgiant/internal/guard"
	"github.com/me/glamgiant/pkg/model"
)

// requireView applies the console's access rules for the view at path to
// the saved identity, so each command is allowed exactly where the
// matching page is.
func requireView(path string) (*model.Identity, error) {
	d := guard.MustLookup(path)
	id := session.Current()
	switch guard.Check(d, id).Outcome {
	case guard.RedirectLogin:
		return nil, ErrNotLoggedIn
	case guard.RedirectUnauthorized:
		roles := make([]string, len(d.AllowedRoles))
		for i, r := range d.AllowedRoles {
			roles[i] = string(r)
		}
		return nil, fmt.Errorf("%w: %s requires role %s, you are %s",
			ErrUnauthorized, d.Title, strings.Join(roles, " or "), id.Role)
	}
	return id, nil
}

// authed returns an API client carrying the saved token.
func authed() *glamapi.Client {
	return api.WithToken(session.Token())
}
