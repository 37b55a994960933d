package theme

import (
	"context"
	"fmt"
	"sync"

	"github.com/2beens/befit/internal/realtime"
	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/telemetry/metrics"
	"github.com/2beens/befit/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=theme_test

type modeStore interface {
	Mode(ctx context.Context) (screen.Mode, error)
	SetMode(ctx context.Context, mode screen.Mode) error
}

type eventPublisher interface {
	Publish(eventType realtime.EventType, data any)
}

type ChangedEvent struct {
	Mode screen.Mode `json:"mode"`
}

// Service owns the single app-wide display mode.
type Service struct {
	// serializes toggles so two concurrent toggles never cancel out silently
	mu             sync.Mutex
	store          modeStore
	publisher      eventPublisher
	metricsManager *metrics.Manager
}

func NewService(store modeStore, publisher eventPublisher, metricsManager *metrics.Manager) *Service {
	return &Service{
		store:          store,
		publisher:      publisher,
		metricsManager: metricsManager,
	}
}

// Current never fails for the caller's screen: a store error falls back to
// the default mode.
func (s *Service) Current(ctx context.Context) screen.Mode {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.theme.current")
	defer span.End()

	mode, err := s.store.Mode(ctx)
	if err != nil {
		log.Errorf("theme: read mode: %s", err)
		span.RecordError(err)
		return screen.DefaultMode
	}
	return mode
}

func (s *Service) Set(ctx context.Context, mode screen.Mode) (_ screen.Mode, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.theme.set")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.Mode(ctx)
	if err != nil {
		return "", fmt.Errorf("read mode: %w", err)
	}
	if current == mode {
		return mode, nil
	}
	if err := s.store.SetMode(ctx, mode); err != nil {
		return "", fmt.Errorf("store mode: %w", err)
	}

	s.changed(mode)
	return mode, nil
}

func (s *Service) Toggle(ctx context.Context) (_ screen.Mode, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.theme.toggle")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.Mode(ctx)
	if err != nil {
		return "", fmt.Errorf("read mode: %w", err)
	}
	next := current.Toggled()
	if err := s.store.SetMode(ctx, next); err != nil {
		return "", fmt.Errorf("store mode: %w", err)
	}

	s.changed(next)
	return next, nil
}

func (s *Service) changed(mode screen.Mode) {
	log.Debugf("theme: display mode changed to %s", mode)
	if s.metricsManager != nil {
		s.metricsManager.CounterThemeToggles.Inc()
	}
	if s.publisher != nil {
		s.publisher.Publish(realtime.EventThemeChanged, ChangedEvent{Mode: mode})
	}
}
