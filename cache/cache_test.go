package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySetGet(t *testing.T) {
	store := NewMemory()

	store.Set("contact:inquiry:1", "value", time.Minute)

	got, ok := store.Get("contact:inquiry:1")
	require.True(t, ok)
	assert.Equal(t, "value", got)

	_, ok = store.Get("contact:inquiry:2")
	assert.False(t, ok)
}

func TestMemoryTTLExpiry(t *testing.T) {
	store := NewMemory()

	store.Set("short-lived", "value", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, ok := store.Get("short-lived")
	assert.False(t, ok, "entry must expire after its TTL")
}

func TestMemoryDelete(t *testing.T) {
	store := NewMemory()

	store.Set("key", "value", time.Minute)
	store.Delete("key")

	_, ok := store.Get("key")
	assert.False(t, ok)
}

func TestMemoryDeletePrefix(t *testing.T) {
	store := NewMemory()

	store.Set(ListKey("", "", 1, 10), "page1", time.Minute)
	store.Set(ListKey("pending", "booking", 2, 10), "page2", time.Minute)
	store.Set(DetailKey(7), "detail", time.Minute)
	store.Set(StatsKey, "stats", time.Minute)

	for _, prefix := range ListFamilyPrefixes() {
		store.DeletePrefix(prefix)
	}

	_, ok := store.Get(ListKey("", "", 1, 10))
	assert.False(t, ok)
	_, ok = store.Get(ListKey("pending", "booking", 2, 10))
	assert.False(t, ok)

	// Detail and stats entries survive a list-family sweep.
	_, ok = store.Get(DetailKey(7))
	assert.True(t, ok)
	_, ok = store.Get(StatsKey)
	assert.True(t, ok)
}

func TestKeyBuilders(t *testing.T) {
	assert.Equal(t, "contact:inquiry:42", DetailKey(42))
	assert.Equal(t, "contact:inquiries:list:pending:booking:2:25", ListKey("pending", "booking", 2, 25))
	assert.Equal(t, "contact:inquiries:recent:10", RecentKey(10))

	// Every list-family key must fall under a sweep prefix.
	matched := false
	for _, prefix := range ListFamilyPrefixes() {
		if len(ListKey("a", "b", 1, 1)) >= len(prefix) && ListKey("a", "b", 1, 1)[:len(prefix)] == prefix {
			matched = true
		}
	}
	assert.True(t, matched)
}
