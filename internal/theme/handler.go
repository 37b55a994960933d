package theme

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/telemetry/tracing"
	"github.com/2beens/befit/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=theme_test

type themeService interface {
	Current(ctx context.Context) screen.Mode
	Set(ctx context.Context, mode screen.Mode) (screen.Mode, error)
	Toggle(ctx context.Context) (screen.Mode, error)
}

type ModeResponse struct {
	Mode    screen.Mode    `json:"mode"`
	Palette screen.Palette `json:"palette"`
	TopBar  screen.TopBar  `json:"topBar"`
}

type SetModeRequest struct {
	Mode string `json:"mode"`
}

type Handler struct {
	service themeService
}

func NewHandler(service themeService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.theme.get")
	defer span.End()

	handler.writeMode(w, handler.service.Current(ctx))
}

func (handler *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.theme.set")
	defer span.End()

	var req SetModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	mode, err := screen.ParseMode(req.Mode)
	if err != nil {
		http.Error(w, "mode must be light or dark", http.StatusBadRequest)
		return
	}

	mode, err = handler.service.Set(ctx, mode)
	if err != nil {
		log.Errorf("set theme mode: %s", err)
		http.Error(w, "failed to set mode", http.StatusInternalServerError)
		return
	}

	handler.writeMode(w, mode)
}

func (handler *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.theme.toggle")
	defer span.End()

	mode, err := handler.service.Toggle(ctx)
	if err != nil {
		log.Errorf("toggle theme mode: %s", err)
		http.Error(w, "failed to toggle mode", http.StatusInternalServerError)
		return
	}

	handler.writeMode(w, mode)
}

func (handler *Handler) writeMode(w http.ResponseWriter, mode screen.Mode) {
	pkg.WriteJSON(w, ModeResponse{
		Mode:    mode,
		Palette: screen.PaletteFor(mode),
		TopBar:  screen.NewTopBar(mode, ""),
	}, http.StatusOK)
}
