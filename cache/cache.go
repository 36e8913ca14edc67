package cache

import (
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache TTLs per endpoint family.
const (
	DetailTTL = 5 * time.Minute
	ListTTL   = 5 * time.Minute
	StatsTTL  = 10 * time.Minute
	RecentTTL = 2 * time.Minute
)

const (
	detailPrefix = "contact:inquiry:"
	listPrefix   = "contact:inquiries:list:"
	recentPrefix = "contact:inquiries:recent:"

	// StatsKey caches the aggregate statistics payload.
	StatsKey = "contact:inquiries:stats"
)

// DetailKey returns the cache key for a single inquiry.
func DetailKey(id uint) string {
	return fmt.Sprintf("%s%d", detailPrefix, id)
}

// ListKey returns the cache key for one page of a filtered listing.
// List keys are parameterized by filter and page, so invalidation
// sweeps the whole listPrefix family.
func ListKey(status, inquiryType string, page, pageSize int) string {
	return fmt.Sprintf("%s%s:%s:%d:%d", listPrefix, status, inquiryType, page, pageSize)
}

// RecentKey returns the cache key for the recent-inquiries action.
func RecentKey(limit int) string {
	return fmt.Sprintf("%s%d", recentPrefix, limit)
}

// ListFamilyPrefixes covers every key family derived from the listing
// queries; all of them go stale on any write.
func ListFamilyPrefixes() []string {
	return []string{listPrefix, recentPrefix}
}

// Store is the read-through cache contract. Implementations must be
// safe for concurrent use. A backend that cannot serve a Get reports
// a miss, so callers fall back to the database.
type Store interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Delete(key string)
	DeletePrefix(prefix string)
}

// Memory is the in-process Store backed by go-cache: TTL expiry only,
// no further eviction policy.
type Memory struct {
	backend *gocache.Cache
}

// NewMemory creates an in-memory cache store. Expired entries are
// swept once a minute.
func NewMemory() *Memory {
	return &Memory{
		backend: gocache.New(gocache.NoExpiration, time.Minute),
	}
}

func (m *Memory) Get(key string) (interface{}, bool) {
	return m.backend.Get(key)
}

func (m *Memory) Set(key string, value interface{}, ttl time.Duration) {
	m.backend.Set(key, value, ttl)
}

func (m *Memory) Delete(key string) {
	m.backend.Delete(key)
}

// DeletePrefix drops every live entry whose key starts with prefix.
func (m *Memory) DeletePrefix(prefix string) {
	for key := range m.backend.Items() {
		if strings.HasPrefix(key, prefix) {
			m.backend.Delete(key)
		}
	}
}
