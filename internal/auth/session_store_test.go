package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// memoryKV is an in-memory stand-in for the redis-backed cache client.
type memoryKV struct {
	data map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (m *memoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memoryKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *memoryKV) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func testSession() *Session {
	created := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	return &Session{
		UserID:     42,
		Email:      "driton@bizdesk.local",
		Role:       "technician",
		Name:       "Driton Berisha",
		Department: "Servisi",
		Phone:      "+383 44 300 300",
		CreatedAt:  created,
		UpdatedAt:  created.Add(time.Hour),
	}
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := &SessionStore{cache: newMemoryKV()}
	ctx := context.Background()
	sess := testSession()

	err := store.Save(ctx, "sid-1", sess, time.Hour)
	assert.NoError(t, err)

	restored, err := store.Restore(ctx, "sid-1")
	assert.NoError(t, err)
	assert.Equal(t, sess, restored)
}

func TestSessionStoreRestoreMissing(t *testing.T) {
	store := &SessionStore{cache: newMemoryKV()}

	restored, err := store.Restore(context.Background(), "nope")
	assert.Nil(t, restored)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// A corrupt record is discarded and reported as not found rather than
// surfacing a decode error.
func TestSessionStoreRestoreCorrupt(t *testing.T) {
	kv := newMemoryKV()
	kv.data[sessionKeyPrefix+"sid-2"] = []byte("{not json")
	store := &SessionStore{cache: kv}

	restored, err := store.Restore(context.Background(), "sid-2")
	assert.Nil(t, restored)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, stillThere := kv.data[sessionKeyPrefix+"sid-2"]
	assert.False(t, stillThere, "corrupt entry must be deleted")
}

func TestSessionStoreDeleteIdempotent(t *testing.T) {
	store := &SessionStore{cache: newMemoryKV()}
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, "sid-3", testSession(), time.Hour))
	assert.NoError(t, store.Delete(ctx, "sid-3"))
	// Deleting again is a no-op.
	assert.NoError(t, store.Delete(ctx, "sid-3"))

	_, err := store.Restore(ctx, "sid-3")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
