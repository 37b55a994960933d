// Package progress holds the arithmetic behind gauges, bars and completion
// summaries. Nothing here fails: zero goals and empty collections give
// neutral values.
package progress

import (
	"fmt"
	"math"
)

// GaugeStartAngle is where a gauge sweep begins, in degrees (12 o'clock).
const GaugeStartAngle = 270.0

// Ratio returns value/goal, or 0 when goal is not positive.
func Ratio(value, goal float64) float64 {
	if goal <= 0 || math.IsNaN(value) || math.IsNaN(goal) {
		return 0
	}
	return value / goal
}

// Clamp01 bounds r to [0, 1].
func Clamp01(r float64) float64 {
	switch {
	case math.IsNaN(r), r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}

// Fraction is the clamped ratio used to drive gauges and bars.
func Fraction(value, goal float64) float64 {
	return Clamp01(Ratio(value, goal))
}

// GaugeSweep returns the sweep in degrees for the given fraction.
func GaugeSweep(fraction float64) float64 {
	return Clamp01(fraction) * 360
}

// BarWidth returns the filled width of a bar of the given available width.
func BarWidth(fraction, available float64) float64 {
	if available <= 0 {
		return 0
	}
	return Clamp01(fraction) * available
}

type Gauge struct {
	Value       int     `json:"value"`
	Goal        int     `json:"goal"`
	Ratio       float64 `json:"ratio"`
	Fraction    float64 `json:"fraction"`
	SweepDeg    float64 `json:"sweepDeg"`
	StartDeg    float64 `json:"startDeg"`
	ValueLabel  string  `json:"valueLabel"`
	GoalLabel   string  `json:"goalLabel"`
	OverGoalBy  int     `json:"overGoalBy,omitempty"`
	ReachedGoal bool    `json:"reachedGoal"`
}

func NewGauge(value, goal int, unit string) Gauge {
	ratio := Ratio(float64(value), float64(goal))
	fraction := Clamp01(ratio)
	g := Gauge{
		Value:       value,
		Goal:        goal,
		Ratio:       ratio,
		Fraction:    fraction,
		SweepDeg:    GaugeSweep(fraction),
		StartDeg:    GaugeStartAngle,
		ValueLabel:  fmt.Sprintf("%d", value),
		GoalLabel:   fmt.Sprintf("/ %d %s", goal, unit),
		ReachedGoal: goal > 0 && value >= goal,
	}
	if goal > 0 && value > goal {
		g.OverGoalBy = value - goal
	}
	return g
}

type Bar struct {
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	Consumed int     `json:"consumed"`
	Goal     int     `json:"goal"`
	Fraction float64 `json:"fraction"`
	Label    string  `json:"label"`
}

func NewBar(name, color string, consumed, goal int) Bar {
	return Bar{
		Name:     name,
		Color:    color,
		Consumed: consumed,
		Goal:     goal,
		Fraction: Fraction(float64(consumed), float64(goal)),
		Label:    fmt.Sprintf("%dg / %dg", consumed, goal),
	}
}

// Width is the filled width of the bar within available.
func (b Bar) Width(available float64) float64 {
	return BarWidth(b.Fraction, available)
}

// Completion summarizes how many items of a checklist are done.
type Completion struct {
	Done     int     `json:"done"`
	Total    int     `json:"total"`
	Fraction float64 `json:"fraction"`
}

func NewCompletion(done, total int) Completion {
	if done < 0 {
		done = 0
	}
	if total < 0 {
		total = 0
	}
	if done > total {
		done = total
	}
	return Completion{
		Done:     done,
		Total:    total,
		Fraction: Fraction(float64(done), float64(total)),
	}
}

func (c Completion) Label() string {
	return fmt.Sprintf("%d of %d complete", c.Done, c.Total)
}

func (c Completion) Complete() bool {
	return c.Total > 0 && c.Done == c.Total
}
