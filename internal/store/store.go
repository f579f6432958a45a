package store

import (
	"context"

	"github.com/me/glamgiant/pkg/model"
)

// Store defines the persistence layer for console browser sessions.
type Store interface {
	// Browser sessions
	CreateSession(ctx context.Context, sess *model.BrowserSession) error
	GetSession(ctx context.Context, id string) (*model.BrowserSession, error)
	TouchSession(ctx context.Context, id string, expiresAt int64) error
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	// Session-scoped key/value pairs
	LoadValues(ctx context.Context, sessionID string, keys ...string) (map[string]string, error)
	SaveValues(ctx context.Context, sessionID string, values map[string]string) error
	RemoveValues(ctx context.Context, sessionID string, keys ...string) error

	// Lifecycle
	Ping(ctx context.Context) error
	Close() error
	Migrate(ctx context.Context) error
}
