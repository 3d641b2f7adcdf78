package cache

import (
	"sync"
	"time"

	"github.com/joelapexsolutions/lottery-api-service/internal/domain"
)

// memoryStore is the default in-process backend: a mutex-guarded map with
// lazy expiry. Records are stored as-is and treated as immutable by
// callers, so Get hands back the stored pointer without copying.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

type memoryEntry struct {
	record   *domain.LotteryRecord
	storedAt time.Time
}

func newMemoryStore(opts Options) *memoryStore {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     opts.TTL,
		now:     opts.Clock,
	}
}

func (m *memoryStore) Get(id string) (*domain.LotteryRecord, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[id]
	if !ok {
		return nil, false, nil
	}
	if m.now().Sub(entry.storedAt) >= m.ttl {
		delete(m.entries, id)
		return nil, false, nil
	}
	return entry.record, true, nil
}

func (m *memoryStore) Set(id string, rec *domain.LotteryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[id] = memoryEntry{record: rec, storedAt: m.now()}
	return nil
}

func (m *memoryStore) Close() error { return nil }
