package dashboard

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/telemetry/tracing"
	"github.com/2beens/befit/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type dashboardService interface {
	Body(ctx context.Context) (*Body, error)
}

type framer interface {
	Frame(ctx context.Context) screen.Frame
}

type Handler struct {
	service dashboardService
	framer  framer
	cache   *Cache
}

// NewHandler accepts a nil cache.
func NewHandler(service dashboardService, framer framer, cache *Cache) *Handler {
	return &Handler{
		service: service,
		framer:  framer,
		cache:   cache,
	}
}

func (handler *Handler) HandleScreen(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.screen")
	defer span.End()

	frame := handler.framer.Frame(ctx)
	if cached, ok := handler.cache.Get(frame.Mode); ok {
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	generation := handler.cache.Generation()
	body, err := handler.service.Body(ctx)
	if err != nil {
		log.Errorf("dashboard screen: %s", err)
		http.Error(w, "failed to build dashboard", http.StatusInternalServerError)
		return
	}

	screenBytes, err := json.Marshal(frame.Build(screen.NameDashboard, TitleDashboard, body))
	if err != nil {
		log.Errorf("marshal dashboard screen: %s", err)
		http.Error(w, "failed to build dashboard", http.StatusInternalServerError)
		return
	}
	handler.cache.Set(frame.Mode, generation, screenBytes)

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, screenBytes, http.StatusOK)
}
