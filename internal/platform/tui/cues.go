package tui

import (
	"io"

	"github.com/vovakirdan/roids-arcade/internal/core"
)

// flashTicks is how long a notable cue keeps the HUD highlighted.
const flashTicks = 20

// cueBanners lists the cues worth a HUD flash and their footer text.
// Shots and thrust are too frequent to flash on.
var cueBanners = map[core.Cue]string{
	core.CueShipHit:   "SHIP HIT",
	core.CueExplosion: "ENEMY DOWN",
	core.CueLevelUp:   "LEVEL UP",
	core.CueGameOver:  "GAME OVER",
}

// CueFeedback turns audio cues into terminal feedback: a HUD flash with a
// short banner and, optionally, the terminal bell.
type CueFeedback struct {
	bell   io.Writer
	flash  int
	banner string
}

// NewCueFeedback creates a feedback sink. A nil bell disables beeping.
func NewCueFeedback(bell io.Writer) *CueFeedback {
	return &CueFeedback{bell: bell}
}

// Observe consumes one tick's cues and advances the flash timer.
func (f *CueFeedback) Observe(cues []core.Cue) {
	if f.flash > 0 {
		f.flash--
	}
	for _, c := range cues {
		banner, ok := cueBanners[c]
		if !ok {
			continue
		}
		f.flash = flashTicks
		f.banner = banner
		if f.bell != nil {
			//nolint:errcheck // Best-effort beep
			f.bell.Write([]byte{'\a'})
		}
	}
	if f.flash == 0 {
		f.banner = ""
	}
}

// Flashing reports whether the HUD should be highlighted.
func (f *CueFeedback) Flashing() bool {
	return f.flash > 0
}

// Banner returns the text for the current flash, or "".
func (f *CueFeedback) Banner() string {
	return f.banner
}

// Reset clears any pending flash.
func (f *CueFeedback) Reset() {
	f.flash = 0
	f.banner = ""
}
