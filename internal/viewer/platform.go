package viewer

// Platform abstracts the host environment's fullscreen context and page
// scroll lock. Both are global resources; the viewer acquires and releases
// them in strict open/close pairs with no nesting.
type Platform interface {
	EnterFullscreen() error
	ExitFullscreen() error
	LockScroll()
	UnlockScroll()
}

// NoopPlatform is a Platform that does nothing. Useful for headless contexts
// and tests.
type NoopPlatform struct{}

func (NoopPlatform) EnterFullscreen() error { return nil }
func (NoopPlatform) ExitFullscreen() error  { return nil }
func (NoopPlatform) LockScroll()            {}
func (NoopPlatform) UnlockScroll()          {}
