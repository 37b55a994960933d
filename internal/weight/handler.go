package weight

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/telemetry/tracing"
	"github.com/2beens/befit/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=weight_test

type weightService interface {
	Add(ctx context.Context, weight float64, timestamp time.Time) (*Sample, error)
	Trend(ctx context.Context) ([]Sample, error)
	Tracker(ctx context.Context) (*Tracker, error)
}

type framer interface {
	Frame(ctx context.Context) screen.Frame
}

type AddSampleRequest struct {
	Weight    float64   `json:"weight"`
	Timestamp time.Time `json:"timestamp"`
}

type SamplesListResponse struct {
	Samples []Sample `json:"samples"`
	Domain  Domain   `json:"domain"`
	Unit    string   `json:"unit"`
}

type Handler struct {
	service weightService
	framer  framer
}

func NewHandler(service weightService, framer framer) *Handler {
	return &Handler{
		service: service,
		framer:  framer,
	}
}

func (handler *Handler) HandleScreen(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.screen")
	defer span.End()

	tracker, err := handler.service.Tracker(ctx)
	if err != nil {
		log.Errorf("weight screen: %s", err)
		http.Error(w, "failed to build weight screen", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, handler.framer.Frame(ctx).Build(screen.NameWeight, TitleTracker, tracker), http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.list")
	defer span.End()

	samples, err := handler.service.Trend(ctx)
	if err != nil {
		log.Errorf("list weight samples: %s", err)
		http.Error(w, "failed to list weight samples", http.StatusInternalServerError)
		return
	}
	if samples == nil {
		samples = []Sample{}
	}

	domain, _ := ComputeDomain(samples)
	pkg.WriteJSON(w, SamplesListResponse{
		Samples: samples,
		Domain:  domain,
		Unit:    Unit,
	}, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.add")
	defer span.End()

	var req AddSampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add weight sample, unmarshal json: %s", err)
		http.Error(w, "invalid weight sample", http.StatusBadRequest)
		return
	}

	added, err := handler.service.Add(ctx, req.Weight, req.Timestamp)
	if err != nil {
		if errors.Is(err, ErrInvalidWeight) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add weight sample %v: %s", req.Weight, err)
		http.Error(w, "failed to add weight sample", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}
