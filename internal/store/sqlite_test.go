package store

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/me/glamgiant/pkg/model"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	st, err := NewSQLiteStore(":memory:", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleSession(id string, ttl time.Duration) *model.BrowserSession {
	now := time.Now().Truncate(time.Second)
	return &model.BrowserSession{ID: id, CreatedAt: now, ExpiresAt: now.Add(ttl)}
}

func TestMigrate_Idempotent(t *testing.T) {
	st := testStore(t)
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestSessionCRUD(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	sess := sampleSession("sess_abc", time.Hour)
	if err := st.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	got, err := st.GetSession(ctx, "sess_abc")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got == nil {
		t.Fatal("GetSession returned nil")
	}
	if !got.ExpiresAt.Equal(sess.ExpiresAt) {
		t.Errorf("ExpiresAt = %v, want %v", got.ExpiresAt, sess.ExpiresAt)
	}

	later := time.Now().Add(48 * time.Hour).Unix()
	if err := st.TouchSession(ctx, "sess_abc", later); err != nil {
		t.Fatalf("TouchSession: %v", err)
	}
	got, _ = st.GetSession(ctx, "sess_abc")
	if got.ExpiresAt.Unix() != later {
		t.Errorf("ExpiresAt after touch = %d, want %d", got.ExpiresAt.Unix(), later)
	}

	if err := st.DeleteSession(ctx, "sess_abc"); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	got, err = st.GetSession(ctx, "sess_abc")
	if err != nil {
		t.Fatalf("GetSession after delete: %v", err)
	}
	if got != nil {
		t.Error("session still present after delete")
	}
}

func TestGetSession_NotFound(t *testing.T) {
	st := testStore(t)
	got, err := st.GetSession(context.Background(), "missing")
	if err != nil || got != nil {
		t.Errorf("GetSession(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	_ = st.CreateSession(ctx, sampleSession("live", time.Hour))
	_ = st.CreateSession(ctx, sampleSession("dead", -time.Hour))
	_ = st.SaveValues(ctx, "dead", map[string]string{"token": "t"})

	n, err := st.DeleteExpiredSessions(ctx)
	if err != nil {
		t.Fatalf("DeleteExpiredSessions: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}
	if got, _ := st.GetSession(ctx, "live"); got == nil {
		t.Error("live session was deleted")
	}
	values, err := st.LoadValues(ctx, "dead", "token")
	if err != nil {
		t.Fatalf("LoadValues: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("values of expired session survived: %v", values)
	}
}

func TestSessionValues(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	_ = st.CreateSession(ctx, sampleSession("s1", time.Hour))
	_ = st.CreateSession(ctx, sampleSession("s2", time.Hour))

	v := NewSessionValues(st, "s1")
	if err := v.Save(ctx, map[string]string{"token": "abc", "user": `{"id":"1"}`}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := v.Save(ctx, map[string]string{"token": "def"}); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}

	got, err := v.Load(ctx, "token", "user", "other")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got["token"] != "def" || got["user"] != `{"id":"1"}` || len(got) != 2 {
		t.Errorf("Load = %v", got)
	}

	other, _ := NewSessionValues(st, "s2").Load(ctx, "token", "user")
	if len(other) != 0 {
		t.Errorf("values leaked across sessions: %v", other)
	}

	if err := v.Remove(ctx, "token", "user"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := v.Remove(ctx, "token", "user"); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
	got, _ = v.Load(ctx, "token", "user")
	if len(got) != 0 {
		t.Errorf("Load after Remove = %v", got)
	}
}

func TestSaveValues_UnknownSessionFails(t *testing.T) {
	st := testStore(t)
	err := st.SaveValues(context.Background(), "ghost", map[string]string{"token": "x"})
	if err == nil {
		t.Error("expected foreign key violation for unknown session")
	}
}

func TestPing(t *testing.T) {
	if err := testStore(t).Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
}
