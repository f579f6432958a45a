package ui

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/me/glamgiant/internal/store"
)

func setupTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	st, err := store.NewSQLiteStore(":memory:", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSessionManager_CreateAndGet(t *testing.T) {
	sm := NewSessionManager(setupTestStore(t), time.Hour)
	ctx := context.Background()

	sess, err := sm.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if !strings.HasPrefix(sess.ID, "sess_") {
		t.Errorf("session ID %q lacks sess_ prefix", sess.ID)
	}

	got, err := sm.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got == nil || got.ID != sess.ID {
		t.Fatalf("GetSession = %+v, want %s", got, sess.ID)
	}
}

func TestSessionManager_GetSession_NotFound(t *testing.T) {
	sm := NewSessionManager(setupTestStore(t), time.Hour)
	got, err := sm.GetSession(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got != nil {
		t.Error("expected nil for unknown session")
	}
}

func TestSessionManager_ExpiredSessionIsDeleted(t *testing.T) {
	st := setupTestStore(t)
	sm := NewSessionManager(st, time.Hour)
	ctx := context.Background()

	sess, _ := sm.CreateSession(ctx)
	if err := st.TouchSession(ctx, sess.ID, time.Now().Add(-time.Minute).Unix()); err != nil {
		t.Fatalf("TouchSession: %v", err)
	}

	got, err := sm.GetSession(ctx, sess.ID)
	if err != nil || got != nil {
		t.Fatalf("GetSession(expired) = %v, %v; want nil, nil", got, err)
	}
	if raw, _ := st.GetSession(ctx, sess.ID); raw != nil {
		t.Error("expired session row was not deleted")
	}
}

func TestSessionManager_Extend(t *testing.T) {
	sm := NewSessionManager(setupTestStore(t), time.Hour)
	ctx := context.Background()

	sess, _ := sm.CreateSession(ctx)
	if sm.NeedsExtend(sess) {
		t.Error("fresh session should not need extending")
	}
	sess.ExpiresAt = time.Now().Add(10 * time.Minute)
	if !sm.NeedsExtend(sess) {
		t.Error("session with 10m left of 1h should need extending")
	}
	if err := sm.Extend(ctx, sess); err != nil {
		t.Fatalf("Extend: %v", err)
	}
	got, _ := sm.GetSession(ctx, sess.ID)
	if time.Until(got.ExpiresAt) < 50*time.Minute {
		t.Errorf("ExpiresAt after extend = %v", got.ExpiresAt)
	}
}

func TestSessionManager_CleanupExpired(t *testing.T) {
	st := setupTestStore(t)
	sm := NewSessionManager(st, time.Hour)
	ctx := context.Background()

	live, _ := sm.CreateSession(ctx)
	dead, _ := sm.CreateSession(ctx)
	_ = st.TouchSession(ctx, dead.ID, time.Now().Add(-time.Hour).Unix())

	n, err := sm.CleanupExpiredSessions(ctx)
	if err != nil {
		t.Fatalf("CleanupExpiredSessions: %v", err)
	}
	if n != 1 {
		t.Errorf("cleaned = %d, want 1", n)
	}
	if got, _ := sm.GetSession(ctx, live.ID); got == nil {
		t.Error("live session was removed")
	}
}

func TestSessionManager_Values(t *testing.T) {
	sm := NewSessionManager(setupTestStore(t), time.Hour)
	ctx := context.Background()
	sess, _ := sm.CreateSession(ctx)

	v := sm.Values(sess)
	if err := v.Save(ctx, map[string]string{"token": "t", "user": "{}"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := sm.DeleteSession(ctx, sess.ID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	got, err := v.Load(ctx, "token", "user")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("values survived session delete: %v", got)
	}
}

func TestGetSessionFromRequest(t *testing.T) {
	sm := NewSessionManager(setupTestStore(t), time.Hour)
	sess, _ := sm.CreateSession(context.Background())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got, err := sm.GetSessionFromRequest(req); got != nil || err != nil {
		t.Errorf("no cookie: got %v, %v", got, err)
	}

	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
	got, err := sm.GetSessionFromRequest(req)
	if err != nil || got == nil || got.ID != sess.ID {
		t.Errorf("with cookie: got %v, %v", got, err)
	}
}

func TestSessionCookies(t *testing.T) {
	sm := NewSessionManager(setupTestStore(t), time.Hour)
	sess, _ := sm.CreateSession(context.Background())

	rec := httptest.NewRecorder()
	SetSessionCookie(rec, sess, true)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != SessionCookieName || c.Value != sess.ID || !c.HttpOnly || !c.Secure {
		t.Errorf("cookie = %+v", c)
	}

	rec = httptest.NewRecorder()
	ClearSessionCookie(rec)
	if c := rec.Result().Cookies()[0]; c.MaxAge >= 0 || c.Value != "" {
		t.Errorf("cleared cookie = %+v", c)
	}
}

func TestGenerateSessionID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for range 50 {
		id, err := generateSessionID()
		if err != nil {
			t.Fatalf("generateSessionID: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate session id %s", id)
		}
		seen[id] = true
	}
}
