package repository

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero never expires
}

// MemoryCache is an in-process CacheRepository used when no Redis server is
// configured. Entries expire after ttl, like RedisCache, and once capacity
// entries are held the one closest to expiry makes room for the next.
type MemoryCache struct {
	mu       sync.RWMutex
	data     map[string]memoryEntry
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// NewMemoryCache creates a cache holding at most capacity entries for ttl
// each. A ttl of zero keeps entries until they are evicted; a capacity of
// zero means no limit.
func NewMemoryCache(ttl time.Duration, capacity int) *MemoryCache {
	return &MemoryCache{
		data:     make(map[string]memoryEntry),
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.data[key]
	if !ok || m.expired(entry, m.now()) {
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if _, exists := m.data[key]; !exists && m.capacity > 0 && len(m.data) >= m.capacity {
		m.evict(now)
	}

	entry := memoryEntry{value: value}
	if m.ttl > 0 {
		entry.expiresAt = now.Add(m.ttl)
	}
	m.data[key] = entry
	return nil
}

// evict drops every expired entry, or the entry closest to expiry when none
// has expired yet. Callers hold the write lock.
func (m *MemoryCache) evict(now time.Time) {
	var (
		victim   string
		victimAt time.Time
		foundAny bool
		removed  bool
	)
	for key, entry := range m.data {
		if m.expired(entry, now) {
			delete(m.data, key)
			removed = true
			continue
		}
		if !foundAny || entry.expiresAt.Before(victimAt) {
			victim, victimAt, foundAny = key, entry.expiresAt, true
		}
	}
	if !removed && foundAny {
		delete(m.data, victim)
	}
}

func (m *MemoryCache) expired(entry memoryEntry, now time.Time) bool {
	return !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt)
}

// Len returns the number of entries held, including expired ones not yet
// evicted.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
