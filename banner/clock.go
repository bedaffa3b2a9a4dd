package banner

import (
	"context"
	"sync"
	"time"
)

// Clock is a per-widget periodic tick source. The interval is
// 1000/fps milliseconds (integer division), matching the banner's
// frame-rate setting.
//
// The tick callback runs on the clock's own goroutine; widget code
// wraps it in fyne.Do to hop onto the UI thread.
type Clock struct {
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewClock creates a clock ticking at the given frame rate. A rate
// below 1 produces a disabled clock that refuses to start.
func NewClock(fps int) *Clock {
	c := &Clock{}
	if fps < 1 {
		return c
	}
	ms := 1000 / fps
	if ms < 1 {
		ms = 1
	}
	c.interval = time.Duration(ms) * time.Millisecond
	return c
}

// Start begins ticking, invoking fn once per interval. Starting a
// running or disabled clock does nothing.
func (c *Clock) Start(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.interval <= 0 || c.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
}

// Stop halts the clock and releases its ticker. Stopping an already
// stopped clock does nothing.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Running reports whether the clock is currently ticking.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}
