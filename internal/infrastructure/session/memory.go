package session

import (
	"context"
	"sync"
	"time"

	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
)

// storeItem represents a single entry in the store with expiration
type storeItem struct {
	Value      string
	Expiration time.Time
}

// MemoryStore is a thread-safe in-memory session store with TTL support.
// It backs deployments that run without redis.
type MemoryStore struct {
	data      map[string]storeItem
	mutex     sync.RWMutex
	stop      chan struct{}
	closeOnce sync.Once
}

var _ domain.CacheRepository = (*MemoryStore)(nil)

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		data: make(map[string]storeItem),
		stop: make(chan struct{}),
	}

	// Start cleanup goroutine to remove expired entries every 10 minutes
	go store.cleanupExpired()

	return store
}

// Get retrieves a value from the store
func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, exists := s.data[key]
	if !exists {
		return "", domain.ErrCacheMiss
	}

	// Check if expired
	if time.Now().After(item.Expiration) {
		return "", domain.ErrCacheMiss
	}

	return item.Value, nil
}

// Set stores a value in the store with TTL
func (s *MemoryStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[key] = storeItem{
		Value:      value,
		Expiration: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes a value from the store
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, key)
	return nil
}

// Exists checks if a key exists in the store and is not expired
func (s *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, exists := s.data[key]
	if !exists {
		return false, nil
	}

	// Check if expired
	if time.Now().After(item.Expiration) {
		return false, nil
	}

	return true, nil
}

// cleanupExpired removes expired entries from the store periodically
func (s *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mutex.Lock()
			now := time.Now()
			for key, item := range s.data {
				if now.After(item.Expiration) {
					delete(s.data, key)
				}
			}
			s.mutex.Unlock()
		}
	}
}

// Close stops the cleanup goroutine. The store stays usable afterwards, but
// expired entries are only dropped lazily on reads.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() { close(s.stop) })
	return nil
}

// Size returns the current number of items in the store (for debugging/monitoring)
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// Clear removes all items from the store
func (s *MemoryStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.data = make(map[string]storeItem)
}
