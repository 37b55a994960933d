package workouts

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/telemetry/tracing"
	"github.com/2beens/befit/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	Overview() *Overview
	Workout(ctx context.Context, workoutID string) (*Detail, error)
	StartSession(ctx context.Context, workoutID string) (*Detail, error)
	Session(ctx context.Context, sessionID uuid.UUID) (*Detail, error)
	ToggleExercise(ctx context.Context, sessionID uuid.UUID, exerciseID string) (*ToggleResult, error)
	FinishSession(ctx context.Context, sessionID uuid.UUID) (*FinishedSession, error)
	DismissSession(ctx context.Context, sessionID uuid.UUID) error
}

type framer interface {
	Frame(ctx context.Context) screen.Frame
}

type DismissSessionResponse struct {
	DismissedID uuid.UUID `json:"dismissedId"`
}

type Handler struct {
	service workoutsService
	framer  framer
}

func NewHandler(service workoutsService, framer framer) *Handler {
	return &Handler{
		service: service,
		framer:  framer,
	}
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.overview")
	defer span.End()

	pkg.WriteJSON(w, handler.framer.Frame(ctx).Build(screen.NameWorkouts, TitleWorkouts, handler.service.Overview()), http.StatusOK)
}

func (handler *Handler) HandleWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.workout")
	defer span.End()

	detail, err := handler.service.Workout(ctx, mux.Vars(r)["id"])
	if err != nil {
		handler.writeError(w, "get workout", err)
		return
	}
	handler.writeDetail(ctx, w, detail, http.StatusOK)
}

func (handler *Handler) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.session.start")
	defer span.End()

	detail, err := handler.service.StartSession(ctx, mux.Vars(r)["id"])
	if err != nil {
		handler.writeError(w, "start session", err)
		return
	}
	handler.writeDetail(ctx, w, detail, http.StatusCreated)
}

func (handler *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.session.get")
	defer span.End()

	sessionID, ok := sessionIDFromPath(w, r)
	if !ok {
		return
	}
	detail, err := handler.service.Session(ctx, sessionID)
	if err != nil {
		handler.writeError(w, "get session", err)
		return
	}
	handler.writeDetail(ctx, w, detail, http.StatusOK)
}

func (handler *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.session.toggle")
	defer span.End()

	sessionID, ok := sessionIDFromPath(w, r)
	if !ok {
		return
	}
	result, err := handler.service.ToggleExercise(ctx, sessionID, mux.Vars(r)["exid"])
	if err != nil {
		handler.writeError(w, "toggle exercise", err)
		return
	}
	pkg.WriteJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.session.finish")
	defer span.End()

	sessionID, ok := sessionIDFromPath(w, r)
	if !ok {
		return
	}
	finished, err := handler.service.FinishSession(ctx, sessionID)
	if err != nil {
		handler.writeError(w, "finish session", err)
		return
	}
	pkg.WriteJSON(w, finished, http.StatusOK)
}

func (handler *Handler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.session.dismiss")
	defer span.End()

	sessionID, ok := sessionIDFromPath(w, r)
	if !ok {
		return
	}
	if err := handler.service.DismissSession(ctx, sessionID); err != nil {
		handler.writeError(w, "dismiss session", err)
		return
	}
	pkg.WriteJSON(w, DismissSessionResponse{DismissedID: sessionID}, http.StatusOK)
}

func (handler *Handler) writeDetail(ctx context.Context, w http.ResponseWriter, detail *Detail, status int) {
	pkg.WriteJSON(w, handler.framer.Frame(ctx).Build(screen.NameWorkout, detail.Title, detail), status)
}

func (handler *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrWorkoutNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrExerciseNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("workouts, %s: %s", op, err)
		http.Error(w, "failed to "+op, http.StatusInternalServerError)
	}
}

func sessionIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["sid"])
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
