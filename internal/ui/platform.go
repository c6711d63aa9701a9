package ui

import (
	"github.com/tadkalabs/tadka/internal/viewer"
)

var _ viewer.Platform = (*termPlatform)(nil)

// termPlatform adapts the viewer's platform hooks to the terminal.
//
// The TUI already owns the alternate screen, so fullscreen and scroll lock
// reduce to flags the views consult when rendering.
type termPlatform struct {
	fullscreen bool
	scrollLock bool
}

func (p *termPlatform) EnterFullscreen() error {
	p.fullscreen = true
	return nil
}

func (p *termPlatform) ExitFullscreen() error {
	p.fullscreen = false
	return nil
}

func (p *termPlatform) LockScroll() {
	p.scrollLock = true
}

func (p *termPlatform) UnlockScroll() {
	p.scrollLock = false
}
