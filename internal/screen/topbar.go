package screen

import "fmt"

const (
	AssetLogoDark  = "beFit-dark"
	AssetLogoLight = "beFit-light"

	IconDarkMode  = "moon.fill"
	IconLightMode = "sun.max.fill"

	CommandLogin       = "login"
	CommandToggleTheme = "toggle_theme"
)

type SecondaryKind string

const (
	SecondaryLogin    SecondaryKind = "login"
	SecondaryGreeting SecondaryKind = "greeting"
)

// Secondary is the element on the right of the top bar: a Login button or a
// greeting for the known user.
type Secondary struct {
	Kind       SecondaryKind `json:"kind"`
	Label      string        `json:"label"`
	Command    string        `json:"command,omitempty"`
	Foreground string        `json:"foreground,omitempty"`
	Background string        `json:"background,omitempty"`
}

type TopBar struct {
	Logo            string    `json:"logo"`
	ToggleIcon      string    `json:"toggleIcon"`
	ToggleIconColor string    `json:"toggleIconColor"`
	ToggleCommand   string    `json:"toggleCommand"`
	Secondary       Secondary `json:"secondary"`
}

// NewTopBar builds the bar for the given mode. An empty greetName gives the
// Login button.
func NewTopBar(mode Mode, greetName string) TopBar {
	palette := PaletteFor(mode)
	bar := TopBar{
		Logo:            AssetLogoLight,
		ToggleIcon:      IconLightMode,
		ToggleIconColor: palette.Foreground,
		ToggleCommand:   CommandToggleTheme,
	}
	if mode.Dark() {
		bar.Logo = AssetLogoDark
		bar.ToggleIcon = IconDarkMode
	}

	if greetName == "" {
		// inverted colors so the button stands out from the background
		bar.Secondary = Secondary{
			Kind:       SecondaryLogin,
			Label:      "Login",
			Command:    CommandLogin,
			Foreground: palette.Background,
			Background: palette.Foreground,
		}
	} else {
		bar.Secondary = Secondary{
			Kind:       SecondaryGreeting,
			Label:      fmt.Sprintf("Hi, %s", greetName),
			Foreground: palette.Foreground,
		}
	}

	return bar
}
