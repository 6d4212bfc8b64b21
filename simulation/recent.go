// Package simulation drives the automated purchase simulator and its
// in-memory feed of recent purchases.
package simulation

import (
	"sync"
	"time"
)

// Purchase is one entry in the recent-purchase feed. The feed lives
// only for the lifetime of the process and is reset on restart.
type Purchase struct {
	Barcode     string    `json:"barcode"`
	Name        string    `json:"name"`
	Price       int       `json:"price"`
	PurchasedAt time.Time `json:"purchase_date"`
}

// RecentBuffer is a fixed-capacity ring buffer of purchases. When the
// buffer is full the oldest entry is evicted first.
type RecentBuffer struct {
	mu       sync.RWMutex
	entries  []Purchase
	capacity int
}

// NewRecentBuffer creates a buffer holding at most capacity entries.
func NewRecentBuffer(capacity int) *RecentBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &RecentBuffer{
		entries:  make([]Purchase, 0, capacity),
		capacity: capacity,
	}
}

// Add appends a purchase, evicting the oldest entry when full.
func (b *RecentBuffer) Add(p Purchase) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == b.capacity {
		copy(b.entries, b.entries[1:])
		b.entries = b.entries[:b.capacity-1]
	}
	b.entries = append(b.entries, p)
}

// List returns the buffered purchases, oldest first.
func (b *RecentBuffer) List() []Purchase {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]Purchase, len(b.entries))
	copy(result, b.entries)
	return result
}

// Len returns the number of buffered purchases.
func (b *RecentBuffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}
