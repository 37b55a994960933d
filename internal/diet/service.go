package diet

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/befit/internal/progress"
	"github.com/2beens/befit/internal/realtime"
	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/telemetry/metrics"
	"github.com/2beens/befit/internal/telemetry/tracing"
	"github.com/2beens/befit/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=diet_test

type foodRepo interface {
	Add(ctx context.Context, entry *FoodEntry) (*FoodEntry, error)
	List(ctx context.Context, from, to time.Time) ([]FoodEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventPublisher interface {
	Publish(eventType realtime.EventType, data any)
}

const (
	CommandAddFood = "add_food"
	TitleOverview  = "Diet Overview"
)

type EntryView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Label   string    `json:"label"`
	EatenAt time.Time `json:"eatenAt"`
}

// Overview is the body of the Diet screen for one day.
type Overview struct {
	Day          string         `json:"day"`
	Calories     progress.Gauge `json:"calories"`
	Macros       []progress.Bar `json:"macros"`
	Totals       Totals         `json:"totals"`
	Goals        Goals          `json:"goals"`
	AddFood      screen.Action  `json:"addFood"`
	EntriesTitle string         `json:"entriesTitle"`
	Entries      []EntryView    `json:"entries"`
}

type ServiceParams struct {
	Repo           foodRepo
	Goals          Goals
	Publisher      eventPublisher
	MetricsManager *metrics.Manager
	Location       *time.Location
	Now            func() time.Time
}

type Service struct {
	repo           foodRepo
	goals          Goals
	publisher      eventPublisher
	metricsManager *metrics.Manager
	loc            *time.Location
	now            func() time.Time
}

func NewService(params ServiceParams) *Service {
	s := &Service{
		repo:           params.Repo,
		goals:          params.Goals,
		publisher:      params.Publisher,
		metricsManager: params.MetricsManager,
		loc:            params.Location,
		now:            params.Now,
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Service) Goals() Goals {
	return s.goals
}

func (s *Service) Add(ctx context.Context, entry FoodEntry) (_ *FoodEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.diet.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := entry.Validate(); err != nil {
		return nil, err
	}
	entry.ID = uuid.New()
	if entry.EatenAt.IsZero() {
		entry.EatenAt = s.now()
	}
	entry.EatenAt = entry.EatenAt.In(s.loc)

	added, err := s.repo.Add(ctx, &entry)
	if err != nil {
		return nil, fmt.Errorf("add food entry: %w", err)
	}

	log.Debugf("diet: food entry added [%s] %s: %d kcal", added.ID, added.Name, added.Calories)
	if s.metricsManager != nil {
		s.metricsManager.CounterFoodEntries.Inc()
	}
	if s.publisher != nil {
		s.publisher.Publish(realtime.EventFoodAdded, added)
	}
	return added, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.diet.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete food entry %s: %w", id, err)
	}
	if s.publisher != nil {
		s.publisher.Publish(realtime.EventFoodDeleted, map[string]string{"id": id.String()})
	}
	return nil
}

// Entries lists the entries of a YYYY-MM-DD day, empty meaning today.
func (s *Service) Entries(ctx context.Context, day string) (_ []FoodEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.diet.entries")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	dayStart, err := pkg.ParseDay(day, s.now(), s.loc)
	if err != nil {
		return nil, err
	}
	return s.entriesOn(ctx, dayStart)
}

// ConsumedToday sums today's entries.
func (s *Service) ConsumedToday(ctx context.Context) (Totals, error) {
	dayStart, err := pkg.ParseDay("", s.now(), s.loc)
	if err != nil {
		return Totals{}, err
	}
	entries, err := s.entriesOn(ctx, dayStart)
	if err != nil {
		return Totals{}, err
	}
	return Sum(entries), nil
}

func (s *Service) Overview(ctx context.Context, day string) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.diet.overview")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	now := s.now()
	dayStart, err := pkg.ParseDay(day, now, s.loc)
	if err != nil {
		return nil, err
	}
	entries, err := s.entriesOn(ctx, dayStart)
	if err != nil {
		return nil, err
	}

	totals := Sum(entries)
	overview := &Overview{
		Day:      dayStart.Format(pkg.DayLayout),
		Calories: progress.NewGauge(totals.Calories, s.goals.Calories, "kcal"),
		Macros: []progress.Bar{
			progress.NewBar("Carbs", screen.ColorMacroCarbs, totals.CarbsG, s.goals.CarbsG),
			progress.NewBar("Protein", screen.ColorMacroProtein, totals.ProteinG, s.goals.ProteinG),
			progress.NewBar("Fat", screen.ColorMacroFat, totals.FatG, s.goals.FatG),
		},
		Totals: totals,
		Goals:  s.goals,
		AddFood: screen.Action{
			Label:   "Add Food",
			Command: CommandAddFood,
			Icon:    "plus.circle.fill",
		},
		EntriesTitle: "Today's Food",
		Entries:      make([]EntryView, 0, len(entries)),
	}
	if today, _ := pkg.ParseDay("", now, s.loc); !today.Equal(dayStart) {
		overview.EntriesTitle = fmt.Sprintf("Food on %s", overview.Day)
	}
	for _, e := range entries {
		overview.Entries = append(overview.Entries, EntryView{
			ID:      e.ID,
			Name:    e.Name,
			Label:   e.Label(),
			EatenAt: e.EatenAt,
		})
	}

	return overview, nil
}

func (s *Service) entriesOn(ctx context.Context, dayStart time.Time) ([]FoodEntry, error) {
	from, to := pkg.DayBounds(dayStart)
	entries, err := s.repo.List(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list food entries: %w", err)
	}
	return entries, nil
}
