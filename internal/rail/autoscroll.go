package rail

import (
	"sync"
	"time"
)

// DefaultScrollInterval is the tick interval for auto-scrolling rails.
const DefaultScrollInterval = 50 * time.Millisecond

// AutoScroller advances a scroll offset on a fixed interval for horizontally
// auto-scrolling rails, wrapping at max.
//
// Stop must be called on teardown; after Stop returns, no further callbacks
// fire, so a dismounted rail can never receive a late tick.
type AutoScroller struct {
	interval time.Duration
	step     int
	max      int

	mu     sync.Mutex
	offset int
	onTick func(offset int)

	startOnce sync.Once
	stopOnce  sync.Once
	started   bool
	done      chan struct{}
	stopped   chan struct{}
}

// NewAutoScroller creates a scroller advancing by step up to max each
// interval. An interval of 0 uses [DefaultScrollInterval]. The onTick
// callback receives each new offset; it may be nil.
func NewAutoScroller(interval time.Duration, step, max int, onTick func(offset int)) *AutoScroller {
	if interval <= 0 {
		interval = DefaultScrollInterval
	}
	if step <= 0 {
		step = 1
	}
	if max <= 0 {
		max = 1
	}

	return &AutoScroller{
		interval: interval,
		step:     step,
		max:      max,
		onTick:   onTick,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start launches the tick loop. Subsequent calls are no-ops.
func (a *AutoScroller) Start() {
	a.startOnce.Do(func() {
		a.mu.Lock()
		a.started = true
		a.mu.Unlock()
		go a.loop()
	})
}

func (a *AutoScroller) loop() {
	defer close(a.stopped)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-a.done:
			return
		case <-ticker.C:
			a.tick()
		}
	}
}

func (a *AutoScroller) tick() {
	a.mu.Lock()
	a.offset = (a.offset + a.step) % a.max
	offset := a.offset
	cb := a.onTick
	a.mu.Unlock()

	if cb != nil {
		cb(offset)
	}
}

// Offset returns the current scroll offset.
func (a *AutoScroller) Offset() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.offset
}

// Stop cancels the tick loop and waits for it to drain. Safe to call more
// than once, including before Start.
func (a *AutoScroller) Stop() {
	a.stopOnce.Do(func() {
		close(a.done)
	})

	a.mu.Lock()
	started := a.started
	a.mu.Unlock()
	if started {
		<-a.stopped
	}
}
