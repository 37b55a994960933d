package command

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/2beens/befit/internal/telemetry/tracing"
	"github.com/2beens/befit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=command_test

const maxPayloadBytes = 64 << 10

type dispatcher interface {
	Dispatch(ctx context.Context, name string, payload json.RawMessage) (*Result, error)
	Names() []string
}

type Handler struct {
	dispatcher dispatcher
}

func NewHandler(dispatcher dispatcher) *Handler {
	return &Handler{
		dispatcher: dispatcher,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.command.list")
	defer span.End()

	pkg.WriteJSON(w, map[string][]string{"commands": handler.dispatcher.Names()}, http.StatusOK)
}

func (handler *Handler) HandleDispatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.command.dispatch")
	defer span.End()

	name := mux.Vars(r)["name"]
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		http.Error(w, "failed to read payload", http.StatusBadRequest)
		return
	}

	res, err := handler.dispatcher.Dispatch(ctx, name, payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownCommand):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrCommandUnavailable):
			http.Error(w, err.Error(), http.StatusNotImplemented)
		case errors.Is(err, ErrInvalidPayload):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Errorf("dispatch command %s: %s", name, err)
			http.Error(w, "command failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, res, http.StatusOK)
}
