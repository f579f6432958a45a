package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/me/glamgiant/internal/glamapi"
	"github.com/me/glamgiant/internal/identity"
	"github.com/me/glamgiant/internal/ui"
	"github.com/me/glamgiant/pkg/model"
)

const ctxKeyIdentity ctxKey = "identity"

// IdentityFromContext extracts the authenticated identity from context.
func IdentityFromContext(ctx context.Context) *model.Identity {
	id, _ := ctx.Value(ctxKeyIdentity).(*model.Identity)
	return id
}

// apiAuthMiddleware resolves the caller's identity from a bearer token or,
// failing that, from the browser session cookie. Requests with neither get
// 401. A bearer token is only trusted once the API accepts it for the
// caller's own user record; the role comes from that record, not from the
// token's claims.
func apiAuthMiddleware(api *glamapi.Client, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := RequestIDFromContext(r.Context())

			var id *model.Identity
			if token := extractToken(r); token != "" {
				verified, err := verifyBearer(r.Context(), api, token)
				if err != nil {
					logger.Warn("bearer token rejected", "error", err, "request_id", reqID)
					respondError(w, reqID, http.StatusUnauthorized, &model.APIError{
						Code:    model.ErrUnauthorized,
						Message: "invalid token",
					})
					return
				}
				id = verified
			} else {
				id = ui.IdentityFromRequest(r)
			}

			if id == nil {
				respondError(w, reqID, http.StatusUnauthorized, &model.APIError{
					Code:    model.ErrUnauthorized,
					Message: "authentication required",
				})
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyIdentity, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// verifyBearer fetches the token's own user record from the API with that
// token and builds the identity from the record.
func verifyBearer(ctx context.Context, api *glamapi.Client, token string) (*model.Identity, error) {
	claimed, err := identity.DecodeToken(token)
	if err != nil {
		return nil, err
	}
	u, err := api.WithToken(token).GetUser(ctx, claimed.ID)
	if err != nil {
		return nil, fmt.Errorf("verify token with api: %w", err)
	}
	if u.ID != claimed.ID {
		return nil, fmt.Errorf("api returned user %q for token of %q", u.ID, claimed.ID)
	}
	role, err := model.ParseRole(string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("api user role: %w", err)
	}
	return &model.Identity{ID: u.ID, Email: u.Email, Name: u.Name, Role: role}, nil
}

// extractToken returns the bearer token from the Authorization header, or "".
func extractToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	scheme, token, ok := strings.Cut(auth, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// requireRole is middleware that admits only identities holding one of
// roles.
func requireRole(logger *slog.Logger, roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := RequestIDFromContext(r.Context())
			id := IdentityFromContext(r.Context())

			if id == nil {
				respondError(w, reqID, http.StatusUnauthorized, &model.APIError{
					Code:    model.ErrUnauthorized,
					Message: "authentication required",
				})
				return
			}

			if !id.Is(roles...) {
				logger.Warn("role check failed", "user_id", id.ID, "role", id.Role, "path", r.URL.Path)
				respondError(w, reqID, http.StatusForbidden, &model.APIError{
					Code:    model.ErrForbidden,
					Message: "insufficient role",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
