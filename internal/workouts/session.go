package workouts

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/befit/internal/telemetry/metrics"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("workout session not found")

// Session is a snapshot of a workout in progress.
type Session struct {
	ID         uuid.UUID       `json:"id"`
	WorkoutID  string          `json:"workoutId"`
	StartedAt  time.Time       `json:"startedAt"`
	FinishedAt *time.Time      `json:"finishedAt,omitempty"`
	Completed  map[string]bool `json:"completed"`
}

func (s Session) Duration() time.Duration {
	if s.FinishedAt == nil {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

type session struct {
	id        uuid.UUID
	workoutID string
	startedAt time.Time
	completed map[string]struct{}
}

func (s *session) snapshot() Session {
	completed := make(map[string]bool, len(s.completed))
	for id := range s.completed {
		completed[id] = true
	}
	return Session{
		ID:        s.id,
		WorkoutID: s.workoutID,
		StartedAt: s.startedAt,
		Completed: completed,
	}
}

// SessionStore holds active sessions and the last finished one.
type SessionStore struct {
	mu           sync.RWMutex
	active       map[uuid.UUID]*session
	lastFinished *Session

	metricsManager *metrics.Manager
}

func NewSessionStore(metricsManager *metrics.Manager) *SessionStore {
	return &SessionStore{
		active:         make(map[uuid.UUID]*session),
		metricsManager: metricsManager,
	}
}

func (st *SessionStore) Start(workoutID string, at time.Time) Session {
	s := &session{
		id:        uuid.New(),
		workoutID: workoutID,
		startedAt: at,
		completed: make(map[string]struct{}),
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.active[s.id] = s
	st.setActiveGauge()
	return s.snapshot()
}

func (st *SessionStore) Get(id uuid.UUID) (Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.active[id]
	if !ok {
		return Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s.snapshot(), nil
}

// Toggle flips the exercise between done and not done. The caller checks
// that the exercise belongs to the session's workout.
func (st *SessionStore) Toggle(id uuid.UUID, exerciseID string) (Session, bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.active[id]
	if !ok {
		return Session{}, false, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	_, done := s.completed[exerciseID]
	if done {
		delete(s.completed, exerciseID)
	} else {
		s.completed[exerciseID] = struct{}{}
	}
	return s.snapshot(), !done, nil
}

func (st *SessionStore) Finish(id uuid.UUID, at time.Time) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.active[id]
	if !ok {
		return Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(st.active, id)
	st.setActiveGauge()

	finished := s.snapshot()
	if at.Before(finished.StartedAt) {
		at = finished.StartedAt
	}
	finished.FinishedAt = &at
	st.lastFinished = &finished
	return finished, nil
}

// Dismiss discards an active session without recording it.
func (st *SessionStore) Dismiss(id uuid.UUID) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.active[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(st.active, id)
	st.setActiveGauge()
	return nil
}

func (st *SessionStore) LastFinished() (Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if st.lastFinished == nil {
		return Session{}, false
	}
	return *st.lastFinished, true
}

// must hold st.mu
func (st *SessionStore) setActiveGauge() {
	if st.metricsManager != nil {
		st.metricsManager.GaugeActiveSessions.Set(float64(len(st.active)))
	}
}
