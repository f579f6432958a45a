package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/me/glamgiant/pkg/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and returns a Store.
// Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	if dbPath == ":memory:" {
		// Each pooled connection would otherwise get its own database.
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping checks the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate creates all required tables and indexes.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

// --- Browser session operations ---

func (s *SQLiteStore) CreateSession(ctx context.Context, sess *model.BrowserSession) error {
	s.logger.Debug("sql", "op", "insert", "table", "browser_sessions", "id", sess.ID)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO browser_sessions (id, created_at, expires_at, last_seen_at) VALUES (?, ?, ?, ?)`,
		sess.ID, sess.CreatedAt.Unix(), sess.ExpiresAt.Unix(), sess.CreatedAt.Unix(),
	)
	return err
}

// GetSession returns the session with id, or nil if it does not exist.
// Expired rows are returned as is; callers check IsExpired.
func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*model.BrowserSession, error) {
	s.logger.Debug("sql", "op", "select", "table", "browser_sessions", "id", id)

	var sess model.BrowserSession
	var createdAt, expiresAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, expires_at FROM browser_sessions WHERE id = ?`, id,
	).Scan(&sess.ID, &createdAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sess.CreatedAt = time.Unix(createdAt, 0)
	sess.ExpiresAt = time.Unix(expiresAt, 0)
	return &sess, nil
}

// TouchSession extends a session's expiry and records activity.
func (s *SQLiteStore) TouchSession(ctx context.Context, id string, expiresAt int64) error {
	s.logger.Debug("sql", "op", "update", "table", "browser_sessions", "id", id)

	_, err := s.db.ExecContext(ctx,
		`UPDATE browser_sessions SET expires_at = ?, last_seen_at = ? WHERE id = ?`,
		expiresAt, time.Now().Unix(), id)
	return err
}

func (s *SQLiteStore) DeleteSession(ctx context.Context, id string) error {
	s.logger.Debug("sql", "op", "delete", "table", "browser_sessions", "id", id)

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session_values WHERE session_id = ?`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM browser_sessions WHERE id = ?`, id)
		return err
	})
}

func (s *SQLiteStore) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	s.logger.Debug("sql", "op", "delete_expired", "table", "browser_sessions")

	var n int64
	now := time.Now().Unix()
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM session_values WHERE session_id IN (SELECT id FROM browser_sessions WHERE expires_at < ?)`, now); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM browser_sessions WHERE expires_at < ?`, now)
		if err != nil {
			return err
		}
		n, err = result.RowsAffected()
		return err
	})
	return n, err
}

// --- Session values ---

func (s *SQLiteStore) LoadValues(ctx context.Context, sessionID string, keys ...string) (map[string]string, error) {
	s.logger.Debug("sql", "op", "select", "table", "session_values", "session_id", sessionID, "keys", len(keys))

	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	args := make([]any, 0, len(keys)+1)
	args = append(args, sessionID)
	for _, k := range keys {
		args = append(args, k)
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM session_values WHERE session_id = ? AND key IN (`+placeholders(len(keys))+`)`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

// SaveValues upserts all values in one transaction.
func (s *SQLiteStore) SaveValues(ctx context.Context, sessionID string, values map[string]string) error {
	s.logger.Debug("sql", "op", "upsert", "table", "session_values", "session_id", sessionID, "keys", len(values))

	return s.withTx(ctx, func(tx *sql.Tx) error {
		now := time.Now().Unix()
		for k, v := range values {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO session_values (session_id, key, value, updated_at) VALUES (?, ?, ?, ?)
				 ON CONFLICT(session_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
				sessionID, k, v, now,
			); err != nil {
				return fmt.Errorf("upsert %s: %w", k, err)
			}
		}
		return nil
	})
}

// RemoveValues deletes keys in one transaction.
func (s *SQLiteStore) RemoveValues(ctx context.Context, sessionID string, keys ...string) error {
	s.logger.Debug("sql", "op", "delete", "table", "session_values", "session_id", sessionID, "keys", len(keys))

	if len(keys) == 0 {
		return nil
	}
	args := make([]any, 0, len(keys)+1)
	args = append(args, sessionID)
	for _, k := range keys {
		args = append(args, k)
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`DELETE FROM session_values WHERE session_id = ? AND key IN (`+placeholders(len(keys))+`)`,
			args...)
		return err
	})
}

func (s *SQLiteStore) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
