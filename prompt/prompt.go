// Package prompt implements the countdown-to-auto-confirm state machine
// behind the pre-run warning dialog. It owns its own one-second tick
// source and knows nothing about the dialog widgets; the ui package
// wires a dialog's buttons and label to Confirm/Cancel/OnTick.
package prompt

import (
	"context"
	"sync"
	"time"
)

// Phase is the countdown's lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCounting
	// PhaseConfirmed and PhaseCancelled are terminal.
	PhaseConfirmed
	PhaseCancelled
)

// Result is what Start returns once a terminal phase is reached.
type Result int

const (
	ResultCancelled Result = iota
	ResultConfirmed
)

// DefaultTimeout replaces non-positive timeouts passed to Start.
const DefaultTimeout = 15

// Countdown counts down once per tick and auto-confirms at zero: the
// default outcome of the warning on timeout is proceed, not cancel.
type Countdown struct {
	// Interval is the tick period. Defaults to one second; tests
	// shorten it.
	Interval time.Duration

	// OnTick, if set, is invoked with the remaining seconds: once
	// synchronously from Start and then after every decrement. It runs
	// on the ticker goroutine (or the Start caller for the initial
	// call), so UI updates must hop through fyne.Do.
	OnTick func(remaining int)

	mu        sync.Mutex
	phase     Phase
	remaining int
	done      chan Result
}

// New creates an idle countdown ticking at one-second intervals.
func New() *Countdown {
	return &Countdown{
		Interval: time.Second,
		done:     make(chan Result, 1),
	}
}

// Start transitions Idle to Counting and blocks the caller until a
// terminal phase is reached, returning the result. A timeout of zero
// or less is replaced by DefaultTimeout. The ticker is stopped before
// returning on every path.
//
// Start must not be called from the UI goroutine; the UI stays live
// while the caller waits here.
func (c *Countdown) Start(timeoutSeconds int) Result {
	if timeoutSeconds <= 0 {
		timeoutSeconds = DefaultTimeout
	}

	c.mu.Lock()
	if c.phase != PhaseIdle {
		res := resultFor(c.phase)
		c.mu.Unlock()
		return res
	}
	c.phase = PhaseCounting
	c.remaining = timeoutSeconds
	c.mu.Unlock()

	c.notify(timeoutSeconds)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.run(ctx)

	return <-c.done
}

func (c *Countdown) run(ctx context.Context) {
	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !c.tick() {
				return
			}
		}
	}
}

// tick decrements and notifies; reaching zero confirms immediately.
// It reports whether the countdown is still running.
func (c *Countdown) tick() bool {
	c.mu.Lock()
	if c.phase != PhaseCounting {
		c.mu.Unlock()
		return false
	}
	c.remaining--
	remaining := c.remaining
	c.mu.Unlock()

	c.notify(remaining)
	if remaining <= 0 {
		c.Confirm()
		return false
	}
	return true
}

// Confirm finishes the countdown as Confirmed. It is the user's
// "run now" action and also the timeout outcome.
func (c *Countdown) Confirm() {
	c.finish(PhaseConfirmed, ResultConfirmed)
}

// Cancel finishes the countdown as Cancelled.
func (c *Countdown) Cancel() {
	c.finish(PhaseCancelled, ResultCancelled)
}

func (c *Countdown) finish(p Phase, res Result) {
	c.mu.Lock()
	if c.phase != PhaseCounting {
		c.mu.Unlock()
		return
	}
	c.phase = p
	c.mu.Unlock()
	c.done <- res
}

// Phase returns the current lifecycle state.
func (c *Countdown) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Remaining returns the seconds left on the countdown.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) notify(remaining int) {
	if c.OnTick != nil {
		c.OnTick(remaining)
	}
}

func resultFor(p Phase) Result {
	if p == PhaseConfirmed {
		return ResultConfirmed
	}
	return ResultCancelled
}
