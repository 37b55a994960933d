package weight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/befit/internal/realtime"
	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/telemetry/metrics"
	"github.com/2beens/befit/internal/telemetry/tracing"
	"github.com/2beens/befit/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=weight_test

type samplesRepo interface {
	Add(ctx context.Context, sample *Sample) (*Sample, error)
	List(ctx context.Context, from, to time.Time) ([]Sample, error)
	Latest(ctx context.Context) (*Sample, error)
}

type eventPublisher interface {
	Publish(eventType realtime.EventType, data any)
}

const (
	CommandAddWeight = "add_weight"
	TitleTracker     = "Weight Tracker"

	DefaultTrendDays = 7
)

type EntryView struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Day       string    `json:"day"`
	Label     string    `json:"label"`
}

func newEntryView(s Sample) EntryView {
	return EntryView{
		ID:        s.ID,
		Timestamp: s.Timestamp,
		Day:       s.Timestamp.Format(pkg.DayLayout),
		Label:     s.Label(),
	}
}

// Tracker is the body of the Weight screen.
type Tracker struct {
	TrendTitle   string        `json:"trendTitle"`
	Chart        Chart         `json:"chart"`
	TodayTitle   string        `json:"todayTitle"`
	Today        *EntryView    `json:"today,omitempty"`
	AddWeight    screen.Action `json:"addWeight"`
	EntriesTitle string        `json:"entriesTitle"`
	Entries      []EntryView   `json:"entries"`
}

type ServiceParams struct {
	Repo           samplesRepo
	TrendDays      int
	Publisher      eventPublisher
	MetricsManager *metrics.Manager
	Location       *time.Location
	Now            func() time.Time
}

type Service struct {
	repo           samplesRepo
	trendDays      int
	publisher      eventPublisher
	metricsManager *metrics.Manager
	loc            *time.Location
	now            func() time.Time
}

func NewService(params ServiceParams) *Service {
	s := &Service{
		repo:           params.Repo,
		trendDays:      params.TrendDays,
		publisher:      params.Publisher,
		metricsManager: params.MetricsManager,
		loc:            params.Location,
		now:            params.Now,
	}
	if s.trendDays <= 0 {
		s.trendDays = DefaultTrendDays
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Add records a sample. A zero timestamp means now.
func (s *Service) Add(ctx context.Context, weight float64, timestamp time.Time) (_ *Sample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weight.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if timestamp.IsZero() {
		timestamp = s.now()
	}
	sample := &Sample{
		Timestamp: timestamp.In(s.loc),
		Weight:    weight,
	}
	if err := sample.Validate(); err != nil {
		return nil, err
	}

	added, err := s.repo.Add(ctx, sample)
	if err != nil {
		return nil, fmt.Errorf("add weight sample: %w", err)
	}

	log.Debugf("weight: sample added [%d] %s", added.ID, added.Label())
	if s.metricsManager != nil {
		s.metricsManager.CounterWeightSamples.Inc()
	}
	if s.publisher != nil {
		s.publisher.Publish(realtime.EventWeightAdded, added)
	}
	return added, nil
}

// Trend returns the samples of the trailing trend window, oldest first.
func (s *Service) Trend(ctx context.Context) (_ []Sample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weight.trend")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	today, err := pkg.ParseDay("", s.now(), s.loc)
	if err != nil {
		return nil, err
	}
	from := today.AddDate(0, 0, -(s.trendDays - 1))
	to := today.AddDate(0, 0, 1)

	samples, err := s.repo.List(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list weight samples: %w", err)
	}
	return Ascending(samples), nil
}

// Latest returns nil without error when nothing was recorded yet.
func (s *Service) Latest(ctx context.Context) (*Sample, error) {
	latest, err := s.repo.Latest(ctx)
	if err != nil {
		if errors.Is(err, ErrNoSamples) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest weight sample: %w", err)
	}
	return latest, nil
}

func (s *Service) Tracker(ctx context.Context) (_ *Tracker, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weight.tracker")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	trend, err := s.Trend(ctx)
	if err != nil {
		return nil, err
	}

	tracker := &Tracker{
		TrendTitle: "Weight Trend",
		Chart:      NewChart(trend),
		TodayTitle: "Today's Weight",
		AddWeight: screen.Action{
			Label:   "Add Weight",
			Command: CommandAddWeight,
		},
		EntriesTitle: "Previous Entries",
		Entries:      make([]EntryView, 0, len(trend)),
	}

	reversed := Reversed(trend)
	for _, sample := range reversed {
		tracker.Entries = append(tracker.Entries, newEntryView(sample))
	}

	today, _ := pkg.ParseDay("", s.now(), s.loc)
	if len(reversed) > 0 && !reversed[0].Timestamp.Before(today) {
		todayView := newEntryView(reversed[0])
		tracker.Today = &todayView
	}

	return tracker, nil
}
