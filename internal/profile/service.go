package profile

import (
	"context"
	"fmt"
	"sync"

	"github.com/2beens/befit/internal/realtime"
	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=profile_test

type themeService interface {
	Current(ctx context.Context) screen.Mode
	Set(ctx context.Context, mode screen.Mode) (screen.Mode, error)
}

type eventPublisher interface {
	Publish(eventType realtime.EventType, data any)
}

const (
	TitleProfile = "Profile"

	SettingNotifications = "notifications"
	SettingDarkMode      = "dark_mode"
)

type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Settings struct {
	NotificationsEnabled bool `json:"notificationsEnabled"`
	DarkMode             bool `json:"darkMode"`
}

// UpdateSettingsRequest changes only the fields that are set.
type UpdateSettingsRequest struct {
	NotificationsEnabled *bool `json:"notificationsEnabled"`
	DarkMode             *bool `json:"darkMode"`
}

type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Text  string `json:"text"`
}

type Toggle struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	On    bool   `json:"on"`
}

// View is the body of the Profile screen.
type View struct {
	PersonalTitle string   `json:"personalTitle"`
	Fields        []Field  `json:"fields"`
	SettingsTitle string   `json:"settingsTitle"`
	Toggles       []Toggle `json:"toggles"`
	Settings      Settings `json:"settings"`
}

type Service struct {
	identity Identity
	theme    themeService

	publisher eventPublisher

	mu            sync.RWMutex
	notifications bool
}

func NewService(identity Identity, theme themeService, publisher eventPublisher) *Service {
	return &Service{
		identity:      identity,
		theme:         theme,
		publisher:     publisher,
		notifications: true,
	}
}

func (s *Service) Identity() Identity {
	return s.identity
}

// Settings reads dark mode from the app-wide theme.
func (s *Service) Settings(ctx context.Context) Settings {
	s.mu.RLock()
	notifications := s.notifications
	s.mu.RUnlock()

	return Settings{
		NotificationsEnabled: notifications,
		DarkMode:             s.theme.Current(ctx).Dark(),
	}
}

func (s *Service) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (_ Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.settings.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if req.DarkMode != nil {
		if _, err := s.theme.Set(ctx, screen.ModeFromDark(*req.DarkMode)); err != nil {
			return Settings{}, fmt.Errorf("set dark mode: %w", err)
		}
	}
	if req.NotificationsEnabled != nil {
		s.mu.Lock()
		changed := s.notifications != *req.NotificationsEnabled
		s.notifications = *req.NotificationsEnabled
		s.mu.Unlock()

		if changed && s.publisher != nil {
			s.publisher.Publish(realtime.EventSettingsChanged, map[string]bool{
				"notificationsEnabled": *req.NotificationsEnabled,
			})
		}
	}

	return s.Settings(ctx), nil
}

func (s *Service) View(ctx context.Context) *View {
	settings := s.Settings(ctx)
	return &View{
		PersonalTitle: "Personal Information",
		Fields: []Field{
			{Label: "Name", Value: s.identity.Name, Text: "Name: " + s.identity.Name},
			{Label: "Email", Value: s.identity.Email, Text: "Email: " + s.identity.Email},
		},
		SettingsTitle: "Settings",
		Toggles: []Toggle{
			{ID: SettingNotifications, Label: "Enable Notifications", On: settings.NotificationsEnabled},
			{ID: SettingDarkMode, Label: "Dark Mode", On: settings.DarkMode},
		},
		Settings: settings,
	}
}
