package viewer

import (
	"github.com/tadkalabs/tadka/internal/models"
	"github.com/tadkalabs/tadka/internal/shared"
)

// State enumerates the viewer's lifecycle states. Fullscreen is an
// orthogonal flag layered on any open state, so the impossible
// "loading and failed at once" combination cannot be expressed.
type State int

const (
	Closed State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Orientation describes the loaded media's natural aspect for sizing. Tall
// media gets a height-constrained rule so it is never letterboxed into a
// landscape frame.
type Orientation int

const (
	OrientationUnknown Orientation = iota
	Landscape
	Portrait
)

// Key enumerates the keyboard events the viewer handles.
type Key int

const (
	KeyEscape Key = iota
	KeyArrowLeft
	KeyArrowRight
)

// SwipeThreshold is the minimum horizontal touch delta, in pixels, that
// counts as a swipe. Smaller deltas are no-ops.
const SwipeThreshold = 50

// Session is the ephemeral state of one viewer opening. Items and their
// order are fixed for the session's lifetime; only the index moves.
type Session struct {
	ID          string
	Items       []models.MediaItem
	Index       int
	Orientation Orientation
}

// Viewer is the lightbox state machine.
type Viewer struct {
	platform   Platform
	state      State
	fullscreen bool
	session    *Session
	generation uint64

	touchStartX int
	touchActive bool
}

// New creates a closed viewer on the given platform. A nil platform gets
// [NoopPlatform].
func New(platform Platform) *Viewer {
	if platform == nil {
		platform = NoopPlatform{}
	}
	return &Viewer{platform: platform}
}

// State returns the current lifecycle state.
func (v *Viewer) State() State { return v.state }

// IsFullscreen reports the orthogonal fullscreen flag.
func (v *Viewer) IsFullscreen() bool { return v.fullscreen }

// Session returns the active session, or nil when closed.
func (v *Viewer) Session() *Session { return v.session }

// Index returns the current item index, or -1 when closed.
func (v *Viewer) Index() int {
	if v.session == nil {
		return -1
	}
	return v.session.Index
}

// Current returns the item at the current index.
func (v *Viewer) Current() (models.MediaItem, bool) {
	if v.session == nil || len(v.session.Items) == 0 {
		return models.MediaItem{}, false
	}
	return v.session.Items[v.session.Index], true
}

// Generation returns the load token for the current frame. Load callbacks
// must present it back; see [Viewer.MediaLoaded].
func (v *Viewer) Generation() uint64 { return v.generation }

// Open starts a session over items at startIndex and locks page scroll.
// Out-of-range start indices are clamped; an empty item list is a no-op.
// Opening over an existing session replaces it without re-acquiring the lock.
func (v *Viewer) Open(items []models.MediaItem, startIndex int) {
	if len(items) == 0 {
		return
	}

	if startIndex < 0 {
		startIndex = 0
	}
	if startIndex >= len(items) {
		startIndex = len(items) - 1
	}

	if v.state == Closed {
		v.platform.LockScroll()
	}

	v.session = &Session{
		ID:    shared.GenerateID(),
		Items: items,
		Index: startIndex,
	}
	v.beginLoad()
}

// Close discards all session state, drops fullscreen if held, and re-enables
// page scroll. Closing a closed viewer is a no-op.
func (v *Viewer) Close() {
	if v.state == Closed {
		return
	}

	if v.fullscreen {
		v.platform.ExitFullscreen()
		v.fullscreen = false
	}

	v.platform.UnlockScroll()
	v.session = nil
	v.state = Closed
	v.clearTouch()
}

// Next advances to the following item, wrapping past the end.
func (v *Viewer) Next() {
	v.step(1)
}

// Prev steps back to the preceding item, wrapping past the start.
func (v *Viewer) Prev() {
	v.step(-1)
}

// Jump moves directly to index, clamped to the valid range.
func (v *Viewer) Jump(index int) {
	if v.state == Closed {
		return
	}

	n := len(v.session.Items)
	if index < 0 {
		index = 0
	}
	if index >= n {
		index = n - 1
	}

	v.session.Index = index
	v.beginLoad()
}

func (v *Viewer) step(delta int) {
	if v.state == Closed {
		return
	}

	n := len(v.session.Items)
	v.session.Index = (v.session.Index + delta + n) % n
	v.beginLoad()
}

// beginLoad optimistically resets the frame to Loading and bumps the load
// generation, invalidating any in-flight callbacks for the previous frame.
func (v *Viewer) beginLoad() {
	v.state = Loading
	v.session.Orientation = OrientationUnknown
	v.generation++
}

// MediaLoaded reports that the frame issued under generation finished
// loading with the given natural dimensions. Stale generations are ignored.
func (v *Viewer) MediaLoaded(generation uint64, width, height int) {
	if v.state == Closed || generation != v.generation {
		return
	}

	if height > width {
		v.session.Orientation = Portrait
	} else {
		v.session.Orientation = Landscape
	}
	v.state = Ready
}

// MediaFailed reports that the frame issued under generation failed to load.
// The viewer shows its error panel and does not advance.
func (v *Viewer) MediaFailed(generation uint64) {
	if v.state == Closed || generation != v.generation {
		return
	}
	v.state = Failed
}

// BeginTouch records the starting x coordinate of a touch gesture.
func (v *Viewer) BeginTouch(x int) {
	if v.state == Closed {
		return
	}
	v.touchStartX = x
	v.touchActive = true
}

// EndTouch completes a touch gesture at x. A leftward drag of at least
// [SwipeThreshold] advances, a rightward one steps back, anything smaller is
// a no-op. Transient coordinates are cleared every gesture.
func (v *Viewer) EndTouch(x int) {
	if v.state == Closed || !v.touchActive {
		return
	}

	delta := x - v.touchStartX
	v.clearTouch()

	switch {
	case delta <= -SwipeThreshold:
		v.Next()
	case delta >= SwipeThreshold:
		v.Prev()
	}
}

func (v *Viewer) clearTouch() {
	v.touchStartX = 0
	v.touchActive = false
}

// HandleKey applies a keyboard event. Escape exits fullscreen when held,
// otherwise closes; the arrow keys navigate.
func (v *Viewer) HandleKey(key Key) {
	if v.state == Closed {
		return
	}

	switch key {
	case KeyEscape:
		if v.fullscreen {
			if err := v.platform.ExitFullscreen(); err == nil {
				v.fullscreen = false
			}
			return
		}
		v.Close()
	case KeyArrowRight:
		v.Next()
	case KeyArrowLeft:
		v.Prev()
	}
}

// ToggleFullscreen flips the fullscreen flag through the platform, keeping
// the current index. The flag only flips when the platform call succeeds.
func (v *Viewer) ToggleFullscreen() {
	if v.state == Closed {
		return
	}

	if v.fullscreen {
		if err := v.platform.ExitFullscreen(); err == nil {
			v.fullscreen = false
		}
		return
	}

	if err := v.platform.EnterFullscreen(); err == nil {
		v.fullscreen = true
	}
}

// SyncFullscreen resyncs the flag after the platform changed fullscreen
// outside the viewer's control (the fullscreenchange listener path).
func (v *Viewer) SyncFullscreen(active bool) {
	if v.state == Closed {
		return
	}
	v.fullscreen = active
}
