package category_cache

import (
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
)

const TTL = 5 * time.Minute

// ── In-process snapshot cache ────────────────────────────────────────────────
// Holds the last catalog snapshot (categories, products, hierarchy).
// Listing, metadata and category handlers all read from it.

type Memory struct {
	mu       sync.RWMutex
	ttl      time.Duration
	snapshot *catalog.Snapshot
	storedAt time.Time
	now      func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = TTL
	}
	return &Memory{ttl: ttl, now: time.Now}
}

func (m *Memory) Get() (*catalog.Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.snapshot != nil && m.now().Sub(m.storedAt) < m.ttl {
		return m.snapshot, true
	}
	return nil, false
}

func (m *Memory) Set(snapshot *catalog.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot = snapshot
	m.storedAt = m.now()
}

// ── Invalidate (call after any catalog write) ───────────────────────────────

func (m *Memory) Invalidate() {
	m.mu.Lock()
	m.snapshot = nil
	m.mu.Unlock()
}
