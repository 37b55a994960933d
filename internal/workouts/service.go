package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/befit/internal/progress"
	"github.com/2beens/befit/internal/realtime"
	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/telemetry/metrics"
	"github.com/2beens/befit/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type eventPublisher interface {
	Publish(eventType realtime.EventType, data any)
}

const (
	CommandOpenCategory      = "open_category"
	CommandAddWorkout        = "add_workout"
	CommandStartWorkout      = "start_workout"
	CommandViewOtherWorkouts = "view_other_workouts"

	TitleWorkouts = "Workouts"

	iconDone    = "checkmark.circle.fill"
	iconNotDone = "circle"
)

type CategoryView struct {
	Category
	Open screen.Action `json:"open"`
}

type SplitView struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Categories []CategoryView `json:"categories"`
}

// Overview is the body of the Workouts screen.
type Overview struct {
	Splits     []SplitView   `json:"splits"`
	AddWorkout screen.Action `json:"addWorkout"`
}

type ExerciseView struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
	Icon        string `json:"icon"`
	IconColor   string `json:"iconColor"`
}

type GroupView struct {
	Title     string         `json:"title"`
	Exercises []ExerciseView `json:"exercises"`
}

// Detail is the body of a workout screen, with or without a session.
type Detail struct {
	WorkoutID     string              `json:"workoutId"`
	SessionID     *uuid.UUID          `json:"sessionId,omitempty"`
	StartedAt     *time.Time          `json:"startedAt,omitempty"`
	Groups        []GroupView         `json:"groups"`
	Progress      progress.Completion `json:"progress"`
	ProgressLabel string              `json:"progressLabel"`
	Start         *screen.Action      `json:"start,omitempty"`
	ViewOther     screen.Action       `json:"viewOther"`
	Title         string              `json:"-"`
}

type ToggleResult struct {
	SessionID  uuid.UUID `json:"sessionId"`
	ExerciseID string    `json:"exerciseId"`
	Done       bool      `json:"done"`
	Detail     *Detail   `json:"detail"`
}

type FinishedSession struct {
	SessionID       uuid.UUID           `json:"sessionId"`
	WorkoutID       string              `json:"workoutId"`
	StartedAt       time.Time           `json:"startedAt"`
	FinishedAt      time.Time           `json:"finishedAt"`
	DurationMinutes int                 `json:"durationMinutes"`
	Progress        progress.Completion `json:"progress"`
}

type Service struct {
	catalog        *Catalog
	sessions       *SessionStore
	publisher      eventPublisher
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(
	catalog *Catalog,
	sessions *SessionStore,
	publisher eventPublisher,
	metricsManager *metrics.Manager,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		catalog:        catalog,
		sessions:       sessions,
		publisher:      publisher,
		metricsManager: metricsManager,
		now:            now,
	}
}

func (s *Service) Overview() *Overview {
	overview := &Overview{
		AddWorkout: screen.Action{
			Label:   "Add Workout",
			Command: CommandAddWorkout,
			Icon:    "plus",
		},
	}
	for _, split := range s.catalog.Splits() {
		sv := SplitView{ID: split.ID, Name: split.Name}
		for _, c := range split.Categories {
			sv.Categories = append(sv.Categories, CategoryView{
				Category: c,
				Open: screen.Action{
					Label:   c.Title,
					Command: CommandOpenCategory,
					Payload: map[string]any{"workoutId": c.WorkoutID},
				},
			})
		}
		overview.Splits = append(overview.Splits, sv)
	}
	return overview
}

// Workout builds the detail of a workout outside any session.
func (s *Service) Workout(ctx context.Context, workoutID string) (_ *Detail, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.workouts.workout")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	w, err := s.catalog.Workout(workoutID)
	if err != nil {
		return nil, err
	}
	detail := buildDetail(w, nil)
	detail.Start = &screen.Action{
		Label:   "Start Workout",
		Command: CommandStartWorkout,
		Payload: map[string]any{"workoutId": w.ID},
	}
	return detail, nil
}

func (s *Service) StartSession(ctx context.Context, workoutID string) (_ *Detail, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.workouts.session.start")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	w, err := s.catalog.Workout(workoutID)
	if err != nil {
		return nil, err
	}
	session := s.sessions.Start(w.ID, s.now())
	log.Debugf("workouts: session %s started for %s", session.ID, w.ID)

	if s.publisher != nil {
		s.publisher.Publish(realtime.EventSessionStarted, map[string]any{
			"sessionId": session.ID,
			"workoutId": w.ID,
		})
	}
	return buildDetail(w, &session), nil
}

func (s *Service) Session(ctx context.Context, sessionID uuid.UUID) (_ *Detail, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.workouts.session.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	w, err := s.catalog.Workout(session.WorkoutID)
	if err != nil {
		return nil, err
	}
	return buildDetail(w, &session), nil
}

func (s *Service) ToggleExercise(ctx context.Context, sessionID uuid.UUID, exerciseID string) (_ *ToggleResult, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.workouts.session.toggle")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	w, err := s.catalog.Workout(session.WorkoutID)
	if err != nil {
		return nil, err
	}
	if !w.HasExercise(exerciseID) {
		return nil, fmt.Errorf("%w: %s in %s", ErrExerciseNotFound, exerciseID, w.ID)
	}

	session, done, err := s.sessions.Toggle(sessionID, exerciseID)
	if err != nil {
		return nil, err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterExerciseToggles.Inc()
	}
	result := &ToggleResult{
		SessionID:  sessionID,
		ExerciseID: exerciseID,
		Done:       done,
		Detail:     buildDetail(w, &session),
	}
	if s.publisher != nil {
		s.publisher.Publish(realtime.EventExerciseToggled, map[string]any{
			"sessionId":  sessionID,
			"exerciseId": exerciseID,
			"done":       done,
			"progress":   result.Detail.Progress,
		})
	}
	return result, nil
}

func (s *Service) FinishSession(ctx context.Context, sessionID uuid.UUID) (_ *FinishedSession, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.workouts.session.finish")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	session, err := s.sessions.Finish(sessionID, s.now())
	if err != nil {
		return nil, err
	}
	w, err := s.catalog.Workout(session.WorkoutID)
	if err != nil {
		return nil, err
	}

	finished := &FinishedSession{
		SessionID:       session.ID,
		WorkoutID:       session.WorkoutID,
		StartedAt:       session.StartedAt,
		FinishedAt:      *session.FinishedAt,
		DurationMinutes: int(session.Duration() / time.Minute),
		Progress:        progress.NewCompletion(len(session.Completed), w.ExerciseCount()),
	}
	log.Debugf("workouts: session %s finished after %d min", session.ID, finished.DurationMinutes)

	if s.publisher != nil {
		s.publisher.Publish(realtime.EventSessionFinished, finished)
	}
	return finished, nil
}

func (s *Service) DismissSession(ctx context.Context, sessionID uuid.UUID) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.workouts.session.dismiss")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return s.sessions.Dismiss(sessionID)
}

// LastFinishedMinutes is the duration of the last finished session, 0 if
// there is none.
func (s *Service) LastFinishedMinutes() int {
	session, ok := s.sessions.LastFinished()
	if !ok {
		return 0
	}
	return int(session.Duration() / time.Minute)
}

func buildDetail(w Workout, session *Session) *Detail {
	detail := &Detail{
		WorkoutID: w.ID,
		Title:     w.Title,
		ViewOther: screen.Action{
			Label:   "View Other Workouts",
			Command: CommandViewOtherWorkouts,
		},
	}
	if session != nil {
		detail.SessionID = &session.ID
		detail.StartedAt = &session.StartedAt
	}

	done := 0
	for _, g := range w.Groups {
		gv := GroupView{Title: g.Title}
		for _, e := range g.Exercises {
			ev := ExerciseView{
				ID:          e.ID,
				Description: e.Description(),
				Icon:        iconNotDone,
				IconColor:   screen.ColorGray,
			}
			if session != nil && session.Completed[e.ID] {
				ev.Done = true
				ev.Icon = iconDone
				ev.IconColor = screen.ColorDone
				done++
			}
			gv.Exercises = append(gv.Exercises, ev)
		}
		detail.Groups = append(detail.Groups, gv)
	}

	detail.Progress = progress.NewCompletion(done, w.ExerciseCount())
	detail.ProgressLabel = detail.Progress.Label()
	return detail
}
