// Package identity owns the signed-in user's credential and Identity:
// restoring them from durable storage, establishing them through login,
// and clearing them on logout.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/me/glamgiant/pkg/model"
)

// Authenticator exchanges credentials for a token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*model.LoginResponse, error)
}

// UserLookup fetches a user record by id.
type UserLookup interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
}

// AuthenticationError is returned when a login attempt is rejected or the
// returned credential cannot be decoded.
type AuthenticationError struct {
	Reason string
	Err    error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Reason, e.Err)
	}
	return "authentication failed: " + e.Reason
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// ErrNotAuthenticated is returned by operations that need a session.
var ErrNotAuthenticated = errors.New("not authenticated")

// SessionStore holds the current credential and Identity for one client
// (a browser session or a CLI user). It is constructed explicitly and
// passed to whatever needs it.
type SessionStore struct {
	storage Storage
	auth    Authenticator
	logger  *slog.Logger

	mu       sync.RWMutex
	loading  bool
	token    string
	identity *model.Identity
}

// NewSessionStore creates a store over storage. It reports Loading until
// Initialize completes.
func NewSessionStore(storage Storage, auth Authenticator, logger *slog.Logger) *SessionStore {
	return &SessionStore{
		storage: storage,
		auth:    auth,
		logger:  logger.With("component", "identity"),
		loading: true,
	}
}

// Loading reports whether the store is still restoring persisted state.
func (s *SessionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Current returns a copy of the current Identity, or nil.
func (s *SessionStore) Current() *model.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// Token returns the current credential, or "".
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether an Identity is present.
func (s *SessionStore) Authenticated() bool {
	return s.Current() != nil
}

// Initialize restores the session from storage. Corrupt or partial data
// is removed and the store is left empty without an error. An error is
// returned only when the storage itself fails; the store is still empty
// and no longer loading in that case.
func (s *SessionStore) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	s.token, s.identity = "", nil

	values, err := s.storage.Load(ctx, KeyToken, KeyUser)
	if errors.Is(err, ErrCorrupt) {
		s.logger.Warn("persisted session unreadable, clearing", "error", err)
		return s.clearLocked(ctx)
	}
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	token, hasToken := values[KeyToken]
	userJSON, hasUser := values[KeyUser]
	switch {
	case !hasToken && !hasUser:
		return nil
	case !hasToken || !hasUser || token == "":
		s.logger.Warn("partial persisted session, clearing", "has_token", hasToken, "has_user", hasUser)
		return s.clearLocked(ctx)
	}

	ident, err := ParseIdentity(userJSON)
	if err != nil {
		s.logger.Warn("invalid persisted identity, clearing", "error", err)
		return s.clearLocked(ctx)
	}

	s.token, s.identity = token, ident
	s.logger.Debug("session restored", "user_id", ident.ID, "role", ident.Role)
	return nil
}

// Login authenticates against the API, decodes the returned credential and
// persists it before returning. On failure the store is unchanged and the
// error is an *AuthenticationError.
func (s *SessionStore) Login(ctx context.Context, email, password string) (*model.Identity, error) {
	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, &AuthenticationError{Reason: "login rejected", Err: err}
	}
	if resp == nil || resp.Token == "" {
		return nil, &AuthenticationError{Reason: "no token in login response"}
	}
	ident, err := DecodeToken(resp.Token)
	if err != nil {
		return nil, &AuthenticationError{Reason: "malformed token", Err: err}
	}
	if ident.Name == "" && resp.User != nil {
		ident.Name = resp.User.Name
	}

	userJSON, err := json.Marshal(ident)
	if err != nil {
		return nil, fmt.Errorf("marshal identity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Save(ctx, map[string]string{
		KeyToken: resp.Token,
		KeyUser:  string(userJSON),
	}); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	s.token, s.identity = resp.Token, ident
	s.loading = false

	s.logger.Info("logged in", "user_id", ident.ID, "role", ident.Role)
	out := *ident
	return &out, nil
}

// Logout clears the in-memory and persisted session. It is idempotent.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity != nil {
		s.logger.Info("logged out", "user_id", s.identity.ID)
	}
	s.token, s.identity = "", nil
	return s.clearLocked(ctx)
}

// Refresh re-fetches the current user's record and updates the Identity
// from it. The credential is kept as is.
func (s *SessionStore) Refresh(ctx context.Context, lookup UserLookup) (*model.Identity, error) {
	current := s.Current()
	if current == nil {
		return nil, ErrNotAuthenticated
	}
	user, err := lookup.GetUser(ctx, current.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch user %s: %w", current.ID, err)
	}

	next := *current
	if user.Name != "" {
		next.Name = user.Name
	}
	if user.Email != "" {
		next.Email = user.Email
	}
	if user.Role != "" {
		role, err := model.ParseRole(string(user.Role))
		if err != nil {
			return nil, fmt.Errorf("refresh identity: %w", err)
		}
		next.Role = role
	}
	if err := validateIdentity(&next); err != nil {
		return nil, fmt.Errorf("refresh identity: %w", err)
	}
	userJSON, err := json.Marshal(&next)
	if err != nil {
		return nil, fmt.Errorf("marshal identity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil || s.identity.ID != current.ID {
		return nil, ErrNotAuthenticated
	}
	if err := s.storage.Save(ctx, map[string]string{
		KeyToken: s.token,
		KeyUser:  string(userJSON),
	}); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	s.identity = &next
	s.logger.Debug("identity refreshed", "user_id", next.ID)
	out := next
	return &out, nil
}

func (s *SessionStore) clearLocked(ctx context.Context) error {
	if err := s.storage.Remove(ctx, KeyToken, KeyUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
