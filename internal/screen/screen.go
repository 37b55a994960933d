// Package screen holds what every screen shares: the display mode, the top
// bar, the palette and the envelope screens are served in.
package screen

import "time"

type Name string

const (
	NameLanding   Name = "landing"
	NameDashboard Name = "dashboard"
	NameDiet      Name = "diet"
	NameWeight    Name = "weight"
	NameWorkouts  Name = "workouts"
	NameWorkout   Name = "workout"
	NameProfile   Name = "profile"
)

// Action is a button on a screen bound to a named command.
type Action struct {
	Label   string         `json:"label"`
	Command string         `json:"command"`
	Payload map[string]any `json:"payload,omitempty"`
	Icon    string         `json:"icon,omitempty"`
}

// Screen is the envelope every screen view model is served in.
type Screen struct {
	Name        Name      `json:"name"`
	Title       string    `json:"title"`
	Mode        Mode      `json:"mode"`
	Palette     Palette   `json:"palette"`
	TopBar      TopBar    `json:"topBar"`
	Body        any       `json:"body"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Frame carries the shared inputs for building a screen.
type Frame struct {
	Mode      Mode
	GreetName string
	Now       time.Time
}

func (f Frame) Build(name Name, title string, body any) Screen {
	mode := f.Mode
	if mode == "" {
		mode = DefaultMode
	}
	return Screen{
		Name:        name,
		Title:       title,
		Mode:        mode,
		Palette:     PaletteFor(mode),
		TopBar:      NewTopBar(mode, f.GreetName),
		Body:        body,
		GeneratedAt: f.Now,
	}
}
