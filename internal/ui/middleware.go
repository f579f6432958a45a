package ui

import (
	"context"
	"net/http"

	"github.com/me/glamgiant/internal/glamapi"
	"github.com/me/glamgiant/internal/guard"
	"github.com/me/glamgiant/internal/identity"
	"github.com/me/glamgiant/pkg/model"
)

type contextKey string

const sessionContextKey contextKey = "session"

// Session is the per-request view of a browser's state.
type Session struct {
	// Browser is nil when the request carries no live session cookie.
	Browser  *model.BrowserSession
	Identity *identity.SessionStore
}

// Current returns the signed-in identity, or nil.
func (s *Session) Current() *model.Identity {
	if s == nil || s.Identity == nil {
		return nil
	}
	return s.Identity.Current()
}

// SessionFromContext retrieves the session from the request context.
func SessionFromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionContextKey).(*Session)
	return sess
}

// IdentityFromRequest returns the signed-in identity for r, or nil.
func IdentityFromRequest(r *http.Request) *model.Identity {
	return SessionFromContext(r.Context()).Current()
}

// SessionMiddleware restores the identity for the request's browser
// session and adds it to the request context. Requests without a session
// get an empty, in-memory identity store. Sessions past half their
// lifetime are extended.
func (ui *UI) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bs, err := ui.sessions.GetSessionFromRequest(r)
		if err != nil {
			ui.logger.Error("session lookup failed", "error", err)
		}

		var storage identity.Storage = identity.NewMemoryStorage()
		if bs != nil {
			storage = ui.sessions.Values(bs)
			if ui.sessions.NeedsExtend(bs) {
				if err := ui.sessions.Extend(r.Context(), bs); err != nil {
					ui.logger.Warn("extend session failed", "error", err)
				} else {
					SetSessionCookie(w, bs, ui.secure)
				}
			}
		}
		ids := identity.NewSessionStore(storage, ui.api, ui.logger)
		if err := ids.Initialize(r.Context()); err != nil {
			ui.logger.Error("restore identity failed", "error", err)
		}

		sess := &Session{Browser: bs, Identity: ids}
		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// protect guards a route with the descriptor registered for path.
// SessionMiddleware has finished restoring the identity by the time the
// guard runs, so the guard never sees a loading store.
func (ui *UI) protect(path string) func(http.Handler) http.Handler {
	return guard.Require(guard.MustLookup(path), IdentityFromRequest, ui.logger)
}

// client returns an API client authenticated as the request's identity.
func (ui *UI) client(r *http.Request) *glamapi.Client {
	sess := SessionFromContext(r.Context())
	if sess == nil {
		return ui.api
	}
	return ui.api.WithToken(sess.Identity.Token())
}
