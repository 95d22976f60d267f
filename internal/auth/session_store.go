package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bizdesk/internal/cache"
)

const sessionKeyPrefix = "session:"

// ErrSessionNotFound is returned when no session record exists for an ID.
var ErrSessionNotFound = errors.New("session not found")

// SessionStoreInterface defines the interface for session storage operations.
type SessionStoreInterface interface {
	Save(ctx context.Context, sessionID string, sess *Session, ttl time.Duration) error
	Restore(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// kv is the slice of the cache client the store needs. *cache.Client
// satisfies it; tests substitute an in-memory map.
type kv interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// SessionStore persists session records in Redis.
type SessionStore struct {
	cache kv
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// Save serializes the session record and stores it under the session ID
// with a TTL.
func (s *SessionStore) Save(ctx context.Context, sessionID string, sess *Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, sessionKeyPrefix+sessionID, payload, ttl)
}

// Restore deserializes a previously saved session record. A corrupt record
// is discarded on the spot and reported as not found, so a bad entry can
// never wedge authentication.
func (s *SessionStore) Restore(ctx context.Context, sessionID string) (*Session, error) {
	key := sessionKeyPrefix + sessionID
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil, ErrSessionNotFound
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		_ = s.cache.Delete(ctx, key)
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

// Delete removes a session record. Deleting a missing record is not an error.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+sessionID)
}
