package screen

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMode = errors.New("invalid display mode")

// Mode is the app-wide display mode shared by every screen.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// DefaultMode is used until the mode is toggled for the first time.
const DefaultMode = ModeLight

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

func ModeFromDark(dark bool) Mode {
	if dark {
		return ModeDark
	}
	return ModeLight
}

func (m Mode) Dark() bool {
	return m == ModeDark
}

func (m Mode) Toggled() Mode {
	if m.Dark() {
		return ModeLight
	}
	return ModeDark
}
