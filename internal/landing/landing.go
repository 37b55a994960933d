// Package landing serves the screen shown before login.
package landing

import (
	"context"
	"net/http"

	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/telemetry/tracing"
	"github.com/2beens/befit/pkg"
)

const (
	CommandOpenDocumentation = "open_documentation"
	CommandOpenGitHub        = "open_github"

	DocumentationURL = "https://befit.app/docs"
	GitHubURL        = "https://github.com/2beens/befit"

	TitleLanding = "BeFit"
	assetMission = "missionLogin"
)

type Story struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

type Body struct {
	Tagline       string        `json:"tagline"`
	Documentation screen.Action `json:"documentation"`
	GitHub        screen.Action `json:"github"`
	Illustration  string        `json:"illustration"`
	Story         Story         `json:"story"`
}

func NewBody(assets screen.Assets) Body {
	return Body{
		Tagline: "Unlock Your Best Self: Your Ultimate Progress Tracking Companion!",
		Documentation: screen.Action{
			Label:   "Documentation",
			Command: CommandOpenDocumentation,
		},
		GitHub: screen.Action{
			Label:   "GitHub",
			Command: CommandOpenGitHub,
		},
		Illustration: assets.Resolve(assetMission),
		Story: Story{
			Title: "From Doubt to Determination: The BeFit Success Story",
			Text: "In a world where busy schedules, endless distractions, and self-doubt often derail " +
				"our fitness ambitions, there emerged a powerful solution: BeFit. This is the story of how " +
				"one innovative app transformed the lives of countless individuals, empowering them to " +
				"take control of their fitness journey.",
			Color: screen.ColorStoryMuted,
		},
	}
}

type anonymousFramer interface {
	Anonymous(ctx context.Context) screen.Frame
}

type Handler struct {
	framer anonymousFramer
	body   Body
}

func NewHandler(framer anonymousFramer, assets screen.Assets) *Handler {
	return &Handler{
		framer: framer,
		body:   NewBody(assets),
	}
}

func (handler *Handler) HandleScreen(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.landing.screen")
	defer span.End()

	frame := handler.framer.Anonymous(ctx)
	pkg.WriteJSON(w, frame.Build(screen.NameLanding, TitleLanding, handler.body), http.StatusOK)
}
