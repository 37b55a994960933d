package profile

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/telemetry/tracing"
	"github.com/2beens/befit/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type profileService interface {
	View(ctx context.Context) *View
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (Settings, error)
}

type framer interface {
	Frame(ctx context.Context) screen.Frame
}

type Handler struct {
	service profileService
	framer  framer
}

func NewHandler(service profileService, framer framer) *Handler {
	return &Handler{
		service: service,
		framer:  framer,
	}
}

func (handler *Handler) HandleScreen(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.screen")
	defer span.End()

	view := handler.service.View(ctx)
	pkg.WriteJSON(w, handler.framer.Frame(ctx).Build(screen.NameProfile, TitleProfile, view), http.StatusOK)
}

func (handler *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.settings.update")
	defer span.End()

	var req UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid settings", http.StatusBadRequest)
		return
	}
	if req.NotificationsEnabled == nil && req.DarkMode == nil {
		http.Error(w, "no settings to update", http.StatusBadRequest)
		return
	}

	settings, err := handler.service.UpdateSettings(ctx, req)
	if err != nil {
		log.Errorf("update profile settings: %s", err)
		http.Error(w, "failed to update settings", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, settings, http.StatusOK)
}
