package store

import "context"

// SessionValues exposes one browser session's key/value namespace. It
// satisfies identity.Storage.
type SessionValues struct {
	store     Store
	sessionID string
}

// NewSessionValues scopes st to sessionID.
func NewSessionValues(st Store, sessionID string) *SessionValues {
	return &SessionValues{store: st, sessionID: sessionID}
}

func (v *SessionValues) Load(ctx context.Context, keys ...string) (map[string]string, error) {
	return v.store.LoadValues(ctx, v.sessionID, keys...)
}

func (v *SessionValues) Save(ctx context.Context, values map[string]string) error {
	return v.store.SaveValues(ctx, v.sessionID, values)
}

func (v *SessionValues) Remove(ctx context.Context, keys ...string) error {
	return v.store.RemoveValues(ctx, v.sessionID, keys...)
}
