package theme

import (
	"context"
	"time"

	"github.com/2beens/befit/internal/screen"
)

type currentModeReader interface {
	Current(ctx context.Context) screen.Mode
}

// Framer hands screens the shared frame: the current app-wide mode and the
// greeting for the configured user.
type Framer struct {
	modes     currentModeReader
	greetName string
	now       func() time.Time
}

func NewFramer(modes currentModeReader, greetName string, now func() time.Time) *Framer {
	if now == nil {
		now = time.Now
	}
	return &Framer{
		modes:     modes,
		greetName: greetName,
		now:       now,
	}
}

func (f *Framer) Frame(ctx context.Context) screen.Frame {
	return screen.Frame{
		Mode:      f.modes.Current(ctx),
		GreetName: f.greetName,
		Now:       f.now(),
	}
}

// Anonymous is the frame for screens shown before login.
func (f *Framer) Anonymous(ctx context.Context) screen.Frame {
	frame := f.Frame(ctx)
	frame.GreetName = ""
	return frame
}
