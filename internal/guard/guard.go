// Package guard decides whether the current identity may view a protected
// path, and where to send it if not.
package guard

import (
	"log/slog"
	"net/http"

	"github.com/me/glamgiant/pkg/model"
)

// Public paths the guard redirects to.
const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

// Descriptor names a protected view and the roles allowed to see it.
type Descriptor struct {
	Path         string
	Title        string
	AllowedRoles []model.Role
	// Nav places the view in the role-filtered navigation when set.
	Nav bool
}

// Permits reports whether role may view d.
func (d Descriptor) Permits(role model.Role) bool {
	return model.HasRole(role, d.AllowedRoles...)
}

// Outcome is the result of a guard check.
type Outcome int

const (
	Allow Outcome = iota
	RedirectLogin
	RedirectUnauthorized
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case RedirectUnauthorized:
		return "redirect_unauthorized"
	}
	return "unknown"
}

// Decision is an Outcome plus the redirect target, if any.
type Decision struct {
	Outcome  Outcome
	Location string
}

// Check evaluates identity against d. A nil identity is sent to login; a
// role outside AllowedRoles is sent to the unauthorized page.
func Check(d Descriptor, identity *model.Identity) Decision {
	if identity == nil {
		return Decision{Outcome: RedirectLogin, Location: LoginPath}
	}
	if !d.Permits(identity.Role) {
		return Decision{Outcome: RedirectUnauthorized, Location: UnauthorizedPath}
	}
	return Decision{Outcome: Allow}
}

// IdentityFunc returns the identity for a request, or nil.
type IdentityFunc func(r *http.Request) *model.Identity

// Require returns middleware that admits only requests Check allows and
// redirects the rest with 303 See Other.
func Require(d Descriptor, current IdentityFunc, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := current(r)
			dec := Check(d, id)
			if dec.Outcome == Allow {
				next.ServeHTTP(w, r)
				return
			}
			attrs := []any{"path", r.URL.Path, "view", d.Path, "outcome", dec.Outcome.String()}
			if id != nil {
				attrs = append(attrs, "user_id", id.ID, "role", id.Role)
			}
			logger.Debug("guard redirect", attrs...)
			http.Redirect(w, r, dec.Location, http.StatusSeeOther)
		})
	}
}
