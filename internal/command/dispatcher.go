// Package command turns the named actions on every screen into operations.
package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/befit/internal/diet"
	"github.com/2beens/befit/internal/landing"
	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/social"
	"github.com/2beens/befit/internal/telemetry/metrics"
	"github.com/2beens/befit/internal/telemetry/tracing"
	"github.com/2beens/befit/internal/weight"
	"github.com/2beens/befit/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=dispatcher_mocks_test.go -package=command_test

var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrCommandUnavailable = errors.New("command unavailable")
	ErrInvalidPayload     = errors.New("invalid command payload")
)

type foodAdder interface {
	Add(ctx context.Context, entry diet.FoodEntry) (*diet.FoodEntry, error)
}

type weightAdder interface {
	Add(ctx context.Context, value float64, timestamp time.Time) (*weight.Sample, error)
}

type workoutsService interface {
	Workout(ctx context.Context, workoutID string) (*workouts.Detail, error)
	StartSession(ctx context.Context, workoutID string) (*workouts.Detail, error)
}

type themeToggler interface {
	Toggle(ctx context.Context) (screen.Mode, error)
}

// Result tells the client what happened and, optionally, where to go next.
type Result struct {
	Command  string `json:"command"`
	Navigate string `json:"navigate,omitempty"`
	Data     any    `json:"data,omitempty"`
}

type handlerFunc func(ctx context.Context, payload json.RawMessage) (*Result, error)

type Dispatcher struct {
	food           foodAdder
	weights        weightAdder
	workouts       workoutsService
	theme          themeToggler
	metricsManager *metrics.Manager
	handlers       map[string]handlerFunc
}

func NewDispatcher(
	food foodAdder,
	weights weightAdder,
	workoutsSvc workoutsService,
	theme themeToggler,
	metricsManager *metrics.Manager,
) *Dispatcher {
	d := &Dispatcher{
		food:           food,
		weights:        weights,
		workouts:       workoutsSvc,
		theme:          theme,
		metricsManager: metricsManager,
	}
	d.handlers = map[string]handlerFunc{
		screen.CommandLogin:               unavailable("authentication is not supported"),
		screen.CommandToggleTheme:         d.toggleTheme,
		diet.CommandAddFood:               d.addFood,
		weight.CommandAddWeight:           d.addWeight,
		workouts.CommandStartWorkout:      d.startWorkout,
		workouts.CommandOpenCategory:      d.openCategory,
		workouts.CommandViewOtherWorkouts: d.viewOtherWorkouts,
		workouts.CommandAddWorkout:        unavailable("custom workouts are not supported"),
		social.CommandChat:                unavailable("chat is not supported"),
		landing.CommandOpenDocumentation:  navigateTo(landing.DocumentationURL),
		landing.CommandOpenGitHub:         navigateTo(landing.GitHubURL),
	}
	return d
}

// Names lists every known command, sorted.
func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d *Dispatcher) Dispatch(ctx context.Context, name string, payload json.RawMessage) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.command.dispatch")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	name = strings.ToLower(strings.TrimSpace(name))
	handler, ok := d.handlers[name]
	if !ok {
		d.count(name, "unknown")
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	res, err := handler(ctx, payload)
	d.count(name, outcome(err))
	if err != nil {
		return nil, fmt.Errorf("command %s: %w", name, err)
	}
	res.Command = name
	return res, nil
}

func (d *Dispatcher) count(name, result string) {
	if d.metricsManager == nil {
		return
	}
	if result == "unknown" {
		// unknown names are not used as label values
		name = "unknown"
	}
	d.metricsManager.CounterCommands.WithLabelValues(name, result).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrCommandUnavailable):
		return "unavailable"
	case errors.Is(err, ErrInvalidPayload):
		return "invalid"
	default:
		return "error"
	}
}

func unavailable(reason string) handlerFunc {
	return func(context.Context, json.RawMessage) (*Result, error) {
		return nil, fmt.Errorf("%w: %s", ErrCommandUnavailable, reason)
	}
}

func navigateTo(target string) handlerFunc {
	return func(context.Context, json.RawMessage) (*Result, error) {
		return &Result{Navigate: target}, nil
	}
}

// decodePayload accepts an empty payload as the zero value of dst.
func decodePayload(payload json.RawMessage, dst any) error {
	trimmed := strings.TrimSpace(string(payload))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}
	return nil
}

func (d *Dispatcher) toggleTheme(ctx context.Context, _ json.RawMessage) (*Result, error) {
	mode, err := d.theme.Toggle(ctx)
	if err != nil {
		return nil, fmt.Errorf("toggle theme: %w", err)
	}
	return &Result{Data: map[string]any{"mode": mode}}, nil
}

func (d *Dispatcher) addFood(ctx context.Context, payload json.RawMessage) (*Result, error) {
	var entry diet.FoodEntry
	if err := decodePayload(payload, &entry); err != nil {
		return nil, err
	}
	added, err := d.food.Add(ctx, entry)
	if err != nil {
		if errors.Is(err, diet.ErrInvalidFoodEntry) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
		}
		return nil, fmt.Errorf("add food: %w", err)
	}
	return &Result{Navigate: "/screens/diet", Data: added}, nil
}

type addWeightPayload struct {
	Weight    float64   `json:"weight"`
	Timestamp time.Time `json:"timestamp"`
}

func (d *Dispatcher) addWeight(ctx context.Context, payload json.RawMessage) (*Result, error) {
	var p addWeightPayload
	if err := decodePayload(payload, &p); err != nil {
		return nil, err
	}
	added, err := d.weights.Add(ctx, p.Weight, p.Timestamp)
	if err != nil {
		if errors.Is(err, weight.ErrInvalidWeight) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
		}
		return nil, fmt.Errorf("add weight: %w", err)
	}
	return &Result{Navigate: "/screens/weight", Data: added}, nil
}

type workoutPayload struct {
	WorkoutID string `json:"workoutId"`
}

func (d *Dispatcher) startWorkout(ctx context.Context, payload json.RawMessage) (*Result, error) {
	var p workoutPayload
	if err := decodePayload(payload, &p); err != nil {
		return nil, err
	}
	if p.WorkoutID == "" {
		p.WorkoutID = workouts.WorkoutPush
	}

	detail, err := d.workouts.StartSession(ctx, p.WorkoutID)
	if err != nil {
		if errors.Is(err, workouts.ErrWorkoutNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
		}
		return nil, fmt.Errorf("start workout: %w", err)
	}

	navigate := ""
	if detail.SessionID != nil {
		navigate = "/workouts/sessions/" + detail.SessionID.String()
	}
	return &Result{Navigate: navigate, Data: detail}, nil
}

func (d *Dispatcher) openCategory(ctx context.Context, payload json.RawMessage) (*Result, error) {
	var p workoutPayload
	if err := decodePayload(payload, &p); err != nil {
		return nil, err
	}
	if p.WorkoutID == "" {
		return nil, fmt.Errorf("%w: workoutId missing", ErrInvalidPayload)
	}

	detail, err := d.workouts.Workout(ctx, p.WorkoutID)
	if err != nil {
		if errors.Is(err, workouts.ErrWorkoutNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
		}
		return nil, fmt.Errorf("open category: %w", err)
	}
	return &Result{Navigate: "/screens/workouts/" + detail.WorkoutID}, nil
}

func (d *Dispatcher) viewOtherWorkouts(context.Context, json.RawMessage) (*Result, error) {
	return &Result{Navigate: "/screens/workouts"}, nil
}
