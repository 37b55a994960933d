package diet

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo keeps entries in process. Listing is ordered by EatenAt, ties
// keep insertion order.
type MemoryRepo struct {
	mu      sync.RWMutex
	entries []FoodEntry
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Add(_ context.Context, entry *FoodEntry) (*FoodEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return entry, nil
}

func (r *MemoryRepo) List(_ context.Context, from, to time.Time) ([]FoodEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]FoodEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if !e.EatenAt.Before(from) && e.EatenAt.Before(to) {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EatenAt.Before(entries[j].EatenAt)
	})
	return entries, nil
}

func (r *MemoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return ErrFoodEntryNotFound
}
