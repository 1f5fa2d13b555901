package cache

import (
	"context"
	"image"
	"sync"
)

// DefaultMemoryEntries bounds the in-process cache when no limit is
// configured. A 320x180 raster is roughly 230KB, so 128 entries stay
// under 30MB.
const DefaultMemoryEntries = 128

// Memory is a bounded in-process Cache. When full, the entry inserted
// longest ago is evicted.
type Memory struct {
	mu      sync.RWMutex
	max     int
	entries map[string]image.Image
	order   []string
}

// NewMemory creates an in-process cache holding at most maxEntries
// rasters. Non-positive values use DefaultMemoryEntries.
func NewMemory(maxEntries int) *Memory {
	if maxEntries < 1 {
		maxEntries = DefaultMemoryEntries
	}
	return &Memory{
		max:     maxEntries,
		entries: make(map[string]image.Image),
	}
}

// Fetch returns the raster stored under id.
func (m *Memory) Fetch(_ context.Context, id string) (image.Image, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	img, ok := m.entries[id]
	return img, ok
}

// Store commits the raster under id, evicting the oldest entries when
// the cache is full.
func (m *Memory) Store(_ context.Context, id string, img image.Image) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[id]; !exists {
		for len(m.entries) >= m.max && len(m.order) > 0 {
			oldest := m.order[0]
			m.order = m.order[1:]
			delete(m.entries, oldest)
		}
		m.order = append(m.order, id)
	}
	m.entries[id] = img
}

// Len returns the number of cached rasters.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
