package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/befit/internal/diet"
	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/social"
	"github.com/2beens/befit/internal/telemetry/tracing"
	"github.com/2beens/befit/internal/weight"
	"github.com/2beens/befit/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard_test

type weightReader interface {
	Latest(ctx context.Context) (*weight.Sample, error)
	Trend(ctx context.Context) ([]weight.Sample, error)
}

type dietReader interface {
	ConsumedToday(ctx context.Context) (diet.Totals, error)
}

type workoutReader interface {
	LastFinishedMinutes() int
}

type feedReader interface {
	Feed(now time.Time) []social.FeedItem
}

const TitleDashboard = "BeFit Dashboard"

type Tile struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// Body of the Dashboard screen. Every tile is derived from the same data the
// other screens show.
type Body struct {
	StartWorkout screen.Action     `json:"startWorkout"`
	Tiles        []Tile            `json:"tiles"`
	TrendTitle   string            `json:"trendTitle"`
	Trend        weight.Chart      `json:"trend"`
	FeedTitle    string            `json:"feedTitle"`
	Feed         []social.FeedItem `json:"feed"`
}

type Service struct {
	weights  weightReader
	diet     dietReader
	workouts workoutReader
	feed     feedReader
	now      func() time.Time
}

func NewService(
	weights weightReader,
	dietSvc dietReader,
	workoutsSvc workoutReader,
	feed feedReader,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		weights:  weights,
		diet:     dietSvc,
		workouts: workoutsSvc,
		feed:     feed,
		now:      now,
	}
}

func (s *Service) Body(ctx context.Context) (_ *Body, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.body")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	weightValue := "-"
	latest, err := s.weights.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest weight: %w", err)
	}
	if latest != nil {
		weightValue = latest.Label()
	}

	consumed, err := s.diet.ConsumedToday(ctx)
	if err != nil {
		return nil, fmt.Errorf("consumed today: %w", err)
	}

	trend, err := s.weights.Trend(ctx)
	if err != nil {
		return nil, fmt.Errorf("weight trend: %w", err)
	}

	feed := s.feed.Feed(s.now())
	if feed == nil {
		feed = []social.FeedItem{}
	}

	return &Body{
		StartWorkout: screen.Action{
			Label:   "Start Workout",
			Command: workouts.CommandStartWorkout,
			Payload: map[string]any{"workoutId": workouts.WorkoutPush},
		},
		Tiles: []Tile{
			{Title: "Weight", Value: weightValue, Icon: "scalemass.fill"},
			{Title: "Diet", Value: fmt.Sprintf("%d kcal", consumed.Calories), Icon: "fork.knife"},
			{Title: "Workout", Value: fmt.Sprintf("%d min", s.workouts.LastFinishedMinutes()), Icon: "figure.walk"},
		},
		TrendTitle: "Weight Trend",
		Trend:      weight.NewChart(trend),
		FeedTitle:  "Social Feed",
		Feed:       feed,
	}, nil
}
