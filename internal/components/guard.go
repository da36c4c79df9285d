package components

import (
	"sync"
	"time"

	"github.com/alexisbeaulieu97/bookmeza/internal/logger"
)

// Timer is a cancellable single-shot timer.
type Timer interface {
	Stop() bool
}

// Scheduler arms single-shot timers. WallClock is the production scheduler;
// tests substitute a manual one.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// WallClock schedules with time.AfterFunc.
type WallClock struct{}

func (WallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ClickResult reports what a guarded click did.
type ClickResult int

const (
	// ClickIgnored means the click was dropped without arming a timer.
	ClickIgnored ClickResult = iota
	// ClickInvoked means the handler ran synchronously.
	ClickInvoked
	// ClickArmed means a timer was armed (or re-armed) to run the handler.
	ClickArmed
)

func (r ClickResult) String() string {
	switch r {
	case ClickInvoked:
		return "invoked"
	case ClickArmed:
		return "armed"
	default:
		return "ignored"
	}
}

// ClickGuard owns the pending-click timer and the submitting flag of one
// control. Rapid clicks within the delay collapse into one invocation carrying
// the last event; with double-click prevention the control stays submitting
// until the handler returns. Handlers always run outside the lock.
type ClickGuard struct {
	mu         sync.Mutex
	scheduler  Scheduler
	timer      Timer
	generation uint64
	submitting bool
	closed     bool
	observer   func()
	log        *logger.Logger
}

// NewClickGuard creates a guard. A nil scheduler means WallClock.
func NewClickGuard(scheduler Scheduler, log *logger.Logger) *ClickGuard {
	if scheduler == nil {
		scheduler = WallClock{}
	}
	return &ClickGuard{scheduler: scheduler, log: log}
}

// OnStateChange registers fn to be called whenever Submitting or Pending flips.
func (g *ClickGuard) OnStateChange(fn func()) {
	g.mu.Lock()
	g.observer = fn
	g.mu.Unlock()
}

// Click handles one click. blocked carries the caller's disabled/loading
// state; delay is the effective delay.
func (g *ClickGuard) Click(ev Event, blocked bool, handler ClickHandler, delay time.Duration, preventDoubleClick bool) ClickResult {
	g.mu.Lock()
	if g.closed || blocked || g.submitting || handler == nil {
		g.mu.Unlock()
		return ClickIgnored
	}

	if delay <= 0 {
		g.mu.Unlock()
		handler(ev)
		return ClickInvoked
	}

	rearmed := g.timer != nil
	if rearmed {
		g.timer.Stop()
	}
	g.generation++
	gen := g.generation
	if preventDoubleClick {
		g.submitting = true
	}
	g.timer = g.scheduler.AfterFunc(delay, func() {
		g.fire(gen, ev, handler, preventDoubleClick)
	})
	observer := g.observer
	g.mu.Unlock()

	g.log.WithFields(map[string]any{
		"delay_ms": delay.Milliseconds(),
		"rearmed":  rearmed,
		"guarded":  preventDoubleClick,
	}).Debug("click armed")

	if observer != nil {
		observer()
	}
	return ClickArmed
}

func (g *ClickGuard) fire(gen uint64, ev Event, handler ClickHandler, preventDoubleClick bool) {
	g.mu.Lock()
	if g.closed || gen != g.generation {
		g.mu.Unlock()
		return
	}
	g.timer = nil
	g.mu.Unlock()

	handler(ev)

	g.mu.Lock()
	if preventDoubleClick && !g.closed && gen == g.generation {
		g.submitting = false
	}
	observer := g.observer
	g.mu.Unlock()

	if observer != nil {
		observer()
	}
}

// Pending reports whether a timer is armed.
func (g *ClickGuard) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.timer != nil
}

// Submitting reports whether the double-click guard is holding the control.
func (g *ClickGuard) Submitting() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.submitting
}

// Close cancels any pending timer. A timer that already started firing
// becomes a no-op, and the guard ignores all later clicks.
func (g *ClickGuard) Close() {
	g.mu.Lock()
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
		g.log.Debug("pending click cancelled")
	}
	g.generation++
	g.closed = true
	g.submitting = false
	g.mu.Unlock()
}
