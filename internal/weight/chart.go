package weight

import (
	"math"
	"time"
)

const minDomainMargin = 0.5

type Point struct {
	Timestamp time.Time `json:"timestamp"`
	Weight    float64   `json:"weight"`
}

type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether w is drawn inside the chart.
func (d Domain) Contains(w float64) bool {
	return w >= d.Min && w <= d.Max
}

type Chart struct {
	Points []Point `json:"points"`
	Domain Domain  `json:"domain"`
	Empty  bool    `json:"empty"`
	Unit   string  `json:"unit"`
}

// NewChart plots samples oldest first on a Y domain computed from the data.
func NewChart(samples []Sample) Chart {
	chart := Chart{
		Points: make([]Point, 0, len(samples)),
		Unit:   Unit,
	}
	for _, s := range Ascending(samples) {
		chart.Points = append(chart.Points, Point{Timestamp: s.Timestamp, Weight: s.Weight})
	}

	domain, ok := ComputeDomain(samples)
	chart.Domain = domain
	chart.Empty = !ok
	return chart
}

// ComputeDomain returns [floor(min-m), ceil(max+m)] where m is 10% of the
// spread, at least half a unit. ok is false for an empty series.
func ComputeDomain(samples []Sample) (_ Domain, ok bool) {
	if len(samples) == 0 {
		return Domain{}, false
	}

	lo, hi := samples[0].Weight, samples[0].Weight
	for _, s := range samples[1:] {
		lo = math.Min(lo, s.Weight)
		hi = math.Max(hi, s.Weight)
	}

	margin := math.Max((hi-lo)*0.1, minDomainMargin)
	return Domain{
		Min: math.Floor(lo - margin),
		Max: math.Ceil(hi + margin),
	}, true
}
