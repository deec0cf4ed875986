package cache

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	store := New[string](time.Minute, clockwork.NewFakeClock())

	_, ok := store.Get("missing")
	assert.False(t, ok)

	store.Set("key", "value")
	got, ok := store.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestStore_Expiry(t *testing.T) {
	fake := clockwork.NewFakeClock()
	store := New[int](5*time.Minute, fake)

	store.Set("k", 42)

	fake.Advance(5*time.Minute - time.Second)
	got, ok := store.Get("k")
	require.True(t, ok, "entry still live just before the TTL")
	assert.Equal(t, 42, got)

	fake.Advance(time.Second)
	_, ok = store.Get("k")
	assert.False(t, ok, "entry exactly one TTL old answers as a miss")

	// Expired entries are not evicted, only masked.
	assert.Equal(t, 1, store.Len())
}

func TestStore_SetResetsExpiry(t *testing.T) {
	fake := clockwork.NewFakeClock()
	store := New[string](time.Minute, fake)

	store.Set("k", "old")
	fake.Advance(45 * time.Second)
	store.Set("k", "new")
	fake.Advance(30 * time.Second)

	got, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", got)
}

func TestStore_OverwriteExpired(t *testing.T) {
	fake := clockwork.NewFakeClock()
	store := New[string](time.Minute, fake)

	store.Set("k", "stale")
	fake.Advance(2 * time.Minute)
	_, ok := store.Get("k")
	require.False(t, ok)

	store.Set("k", "fresh")
	got, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "fresh", got)
	assert.Equal(t, 1, store.Len())
}

func TestStore_Clear(t *testing.T) {
	store := New[string](time.Minute, clockwork.NewFakeClock())
	store.Set("a", "1")
	store.Set("b", "2")
	require.Equal(t, 2, store.Len())

	store.Clear()
	assert.Equal(t, 0, store.Len())
	_, ok := store.Get("a")
	assert.False(t, ok)
}

func TestNew_Defaults(t *testing.T) {
	store := New[string](0, nil)
	require.NotNil(t, store)
	assert.Equal(t, DefaultTTL, store.ttl)
	assert.NotNil(t, store.clock)
}
