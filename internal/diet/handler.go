package diet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/telemetry/tracing"
	"github.com/2beens/befit/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=diet_test

type dietService interface {
	Overview(ctx context.Context, day string) (*Overview, error)
	Entries(ctx context.Context, day string) ([]FoodEntry, error)
	Add(ctx context.Context, entry FoodEntry) (*FoodEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type framer interface {
	Frame(ctx context.Context) screen.Frame
}

type EntriesListResponse struct {
	Day     string      `json:"day,omitempty"`
	Entries []FoodEntry `json:"entries"`
	Totals  Totals      `json:"totals"`
}

type DeleteEntryResponse struct {
	DeletedID uuid.UUID `json:"deletedId"`
}

type Handler struct {
	service dietService
	framer  framer
}

func NewHandler(service dietService, framer framer) *Handler {
	return &Handler{
		service: service,
		framer:  framer,
	}
}

func (handler *Handler) HandleScreen(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.screen")
	defer span.End()

	overview, err := handler.service.Overview(ctx, r.URL.Query().Get("day"))
	if err != nil {
		if errors.Is(err, pkg.ErrInvalidDay) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("diet screen: %s", err)
		http.Error(w, "failed to build diet screen", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, handler.framer.Frame(ctx).Build(screen.NameDiet, TitleOverview, overview), http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.list")
	defer span.End()

	day := r.URL.Query().Get("day")
	entries, err := handler.service.Entries(ctx, day)
	if err != nil {
		if errors.Is(err, pkg.ErrInvalidDay) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("list food entries: %s", err)
		http.Error(w, "failed to list food entries", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []FoodEntry{}
	}

	pkg.WriteJSON(w, EntriesListResponse{
		Day:     day,
		Entries: entries,
		Totals:  Sum(entries),
	}, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.add")
	defer span.End()

	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry FoodEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("add food entry, unmarshal json: %s", err)
		http.Error(w, "invalid food entry", http.StatusBadRequest)
		return
	}

	added, err := handler.service.Add(ctx, entry)
	if err != nil {
		if errors.Is(err, ErrInvalidFoodEntry) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add food entry [%s]: %s", entry.Name, err)
		http.Error(w, "failed to add food entry", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.delete")
	defer span.End()

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid food entry id", http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrFoodEntryNotFound) {
			http.Error(w, "food entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete food entry %s: %s", id, err)
		http.Error(w, "failed to delete food entry", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, DeleteEntryResponse{DeletedID: id}, http.StatusOK)
}
