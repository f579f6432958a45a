package model

import "time"

// BrowserSession is a server-side web session keyed by an opaque cookie.
// It owns a small key/value namespace that holds the persisted credential
// and identity for that browser.
type BrowserSession struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has expired.
func (s *BrowserSession) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
