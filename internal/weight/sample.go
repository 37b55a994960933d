package weight

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

const Unit = "lbs"

var (
	ErrInvalidWeight = errors.New("weight must be a positive number")
	ErrNoSamples     = errors.New("no weight samples")
)

type Sample struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Weight    float64   `json:"weight"`
}

func (s Sample) Validate() error {
	if s.Weight <= 0 || math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, s.Weight)
	}
	return nil
}

func (s Sample) Label() string {
	return FormatWeight(s.Weight)
}

func FormatWeight(w float64) string {
	return fmt.Sprintf("%.1f %s", w, Unit)
}

// Ascending returns a copy of samples ordered oldest first.
func Ascending(samples []Sample) []Sample {
	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// Reversed returns a copy of samples in the opposite order.
func Reversed(samples []Sample) []Sample {
	reversed := make([]Sample, len(samples))
	for i, s := range samples {
		reversed[len(samples)-1-i] = s
	}
	return reversed
}
