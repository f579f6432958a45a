package ui

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/me/glamgiant/internal/store"
	"github.com/me/glamgiant/pkg/model"
)

const (
	// SessionCookieName is the name of the browser session cookie.
	SessionCookieName = "glam_session"
	// DefaultSessionTTL is the default browser session lifetime.
	DefaultSessionTTL = 24 * time.Hour
)

// SessionManager creates, looks up and expires browser sessions. A
// browser session only scopes storage; the identity itself lives in the
// session's key/value namespace.
type SessionManager struct {
	store store.Store
	ttl   time.Duration
}

// NewSessionManager creates a new session manager.
func NewSessionManager(st store.Store, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{store: st, ttl: ttl}
}

// CreateSession starts a new browser session.
func (sm *SessionManager) CreateSession(ctx context.Context) (*model.BrowserSession, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}
	now := time.Now()
	sess := &model.BrowserSession{ID: id, CreatedAt: now, ExpiresAt: now.Add(sm.ttl)}
	if err := sm.store.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

// GetSession retrieves a session by ID. Returns nil if the session doesn't
// exist or has expired; expired sessions are deleted.
func (sm *SessionManager) GetSession(ctx context.Context, sessionID string) (*model.BrowserSession, error) {
	sess, err := sm.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess == nil {
		return nil, nil
	}
	if sess.IsExpired() {
		_ = sm.store.DeleteSession(ctx, sessionID)
		return nil, nil
	}
	return sess, nil
}

// Extend pushes the session's expiry one TTL into the future.
func (sm *SessionManager) Extend(ctx context.Context, sess *model.BrowserSession) error {
	sess.ExpiresAt = time.Now().Add(sm.ttl)
	return sm.store.TouchSession(ctx, sess.ID, sess.ExpiresAt.Unix())
}

// NeedsExtend reports whether less than half of the session's TTL remains.
func (sm *SessionManager) NeedsExtend(sess *model.BrowserSession) bool {
	return time.Until(sess.ExpiresAt) < sm.ttl/2
}

// DeleteSession removes a session and its stored values.
func (sm *SessionManager) DeleteSession(ctx context.Context, sessionID string) error {
	return sm.store.DeleteSession(ctx, sessionID)
}

// CleanupExpiredSessions removes all expired sessions from the store.
func (sm *SessionManager) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	return sm.store.DeleteExpiredSessions(ctx)
}

// GetSessionFromRequest extracts the session from the request cookie.
func (sm *SessionManager) GetSessionFromRequest(r *http.Request) (*model.BrowserSession, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, nil
	}
	return sm.GetSession(r.Context(), cookie.Value)
}

// Values returns the key/value namespace of sess.
func (sm *SessionManager) Values(sess *model.BrowserSession) *store.SessionValues {
	return store.NewSessionValues(sm.store, sess.ID)
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, sess *model.BrowserSession, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		Expires:  sess.ExpiresAt,
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// generateSessionID generates a cryptographically secure random session ID.
func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "sess_" + hex.EncodeToString(b), nil
}
