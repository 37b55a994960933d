package weight

import (
	"context"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	nextID  int64
	samples []Sample
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1}
}

func (r *MemoryRepo) Add(_ context.Context, sample *Sample) (*Sample, error) {
	if err := sample.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	sample.ID = r.nextID
	r.nextID++
	r.samples = append(r.samples, *sample)
	return sample, nil
}

// List returns samples in [from, to), oldest first.
func (r *MemoryRepo) List(_ context.Context, from, to time.Time) ([]Sample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var samples []Sample
	for _, s := range r.samples {
		if !s.Timestamp.Before(from) && s.Timestamp.Before(to) {
			samples = append(samples, s)
		}
	}
	return Ascending(samples), nil
}

func (r *MemoryRepo) Latest(_ context.Context) (*Sample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.samples) == 0 {
		return nil, ErrNoSamples
	}
	latest := r.samples[0]
	for _, s := range r.samples[1:] {
		if !s.Timestamp.Before(latest.Timestamp) {
			latest = s
		}
	}
	return &latest, nil
}
