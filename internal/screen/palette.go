package screen

// Color names are opaque to this package; the presentation layer maps them.
const (
	ColorBlack        = "black"
	ColorWhite        = "white"
	ColorGray         = "gray"
	ColorPanelDark    = "gray-0.2"
	ColorPanelLight   = "systemGray6"
	ColorAccent       = "blue"
	ColorStoryMuted   = "slate"
	ColorDone         = "green"
	ColorMacroCarbs   = "green"
	ColorMacroProtein = "red"
	ColorMacroFat     = "yellow"
)

type Palette struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Panel      string `json:"panel"`
	Muted      string `json:"muted"`
	Accent     string `json:"accent"`
}

func PaletteFor(mode Mode) Palette {
	if mode.Dark() {
		return Palette{
			Background: ColorBlack,
			Foreground: ColorWhite,
			Panel:      ColorPanelDark,
			Muted:      ColorGray,
			Accent:     ColorAccent,
		}
	}
	return Palette{
		Background: ColorWhite,
		Foreground: ColorBlack,
		Panel:      ColorPanelLight,
		Muted:      ColorGray,
		Accent:     ColorAccent,
	}
}
