package localdb

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/localbase/internal/record"
)

// sessionKeySuffix is the key (under the DB prefix) holding the
// singleton session record.
const sessionKeySuffix = "session"

// Session is the singleton auth session. At most one exists at a time:
// sign-in replaces any prior session, sign-out removes it.
type Session struct {
	User      record.Object `json:"user"`
	Token     string        `json:"token"`
	ExpiresAt string        `json:"expires_at"`
}

// SessionKey returns the backing-store key for the session record.
func (db *DB) SessionKey() string {
	return db.prefix + sessionKeySuffix
}

// Session returns the current session, or nil when none exists or the
// stored payload is corrupt.
func (db *DB) Session() (*Session, error) {
	raw, ok, err := db.kv.Get(db.SessionKey())
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, nil
	}
	return &sess, nil
}

// SetSession overwrites the session record.
func (db *DB) SetSession(sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := db.kv.Set(db.SessionKey(), string(data)); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// ClearSession removes the session record. Clearing a missing session
// is a no-op.
func (db *DB) ClearSession() error {
	if err := db.kv.Remove(db.SessionKey()); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
