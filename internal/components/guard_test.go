package components

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualScheduler records armed timers and fires them on demand.
type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer := &manualTimer{delay: d, fn: f}
	s.timers = append(s.timers, timer)
	return timer
}

func (s *manualScheduler) armed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *manualScheduler) last() *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.timers) == 0 {
		return nil
	}
	return s.timers[len(s.timers)-1]
}

// fireAll runs every timer that has not been stopped, like a clock advancing
// past all deadlines.
func (s *manualScheduler) fireAll() {
	s.mu.Lock()
	pending := append([]*manualTimer(nil), s.timers...)
	s.mu.Unlock()
	for _, timer := range pending {
		if timer.stopped || timer.fired {
			continue
		}
		timer.fired = true
		timer.fn()
	}
}

// fireStale runs a timer even if it was stopped, the way a real timer whose
// callback already started can race a Stop call.
func (s *manualScheduler) fireStale(timer *manualTimer) {
	timer.fired = true
	timer.fn()
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) handle(ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestClickGuardZeroDelayInvokesSynchronously(t *testing.T) {
	t.Parallel()

	sched := &manualScheduler{}
	guard := NewClickGuard(sched, nil)
	rec := &recorder{}

	result := guard.Click(Event{Source: "one"}, false, rec.handle, 0, false)

	assert.Equal(t, ClickInvoked, result)
	assert.Equal(t, 1, rec.count())
	assert.Equal(t, 0, sched.armed())
}

func TestClickGuardDebounceFiresOnceWithLastEvent(t *testing.T) {
	t.Parallel()

	sched := &manualScheduler{}
	guard := NewClickGuard(sched, nil)
	rec := &recorder{}

	for _, source := range []string{"first", "second", "third"} {
		result := guard.Click(Event{Source: source}, false, rec.handle, 300*time.Millisecond, false)
		require.Equal(t, ClickArmed, result)
	}
	require.True(t, guard.Pending())
	assert.Equal(t, 300*time.Millisecond, sched.last().delay)

	sched.fireAll()

	require.Equal(t, 1, rec.count())
	assert.Equal(t, "third", rec.events[0].Source)
	assert.False(t, guard.Pending())
}

func TestClickGuardStaleTimerIsNoop(t *testing.T) {
	t.Parallel()

	sched := &manualScheduler{}
	guard := NewClickGuard(sched, nil)
	rec := &recorder{}

	guard.Click(Event{Source: "first"}, false, rec.handle, time.Second, false)
	first := sched.last()
	guard.Click(Event{Source: "second"}, false, rec.handle, time.Second, false)

	sched.fireStale(first)
	assert.Equal(t, 0, rec.count())

	sched.fireAll()
	require.Equal(t, 1, rec.count())
	assert.Equal(t, "second", rec.events[0].Source)
}

func TestClickGuardIgnoresBlockedClicks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		blocked bool
		handler ClickHandler
	}{
		{"disabled or loading", true, func(Event) {}},
		{"no handler", false, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sched := &manualScheduler{}
			guard := NewClickGuard(sched, nil)

			assert.Equal(t, ClickIgnored, guard.Click(Event{}, tt.blocked, tt.handler, time.Second, true))
			assert.Equal(t, ClickIgnored, guard.Click(Event{}, tt.blocked, tt.handler, 0, false))
			assert.Equal(t, 0, sched.armed())
			assert.False(t, guard.Submitting())
		})
	}
}

func TestClickGuardDoubleClickPrevention(t *testing.T) {
	t.Parallel()

	sched := &manualScheduler{}
	guard := NewClickGuard(sched, nil)
	rec := &recorder{}

	var changes atomic.Int32
	guard.OnStateChange(func() { changes.Add(1) })

	require.Equal(t, ClickArmed, guard.Click(Event{Source: "first"}, false, rec.handle, 400*time.Millisecond, true))
	assert.True(t, guard.Submitting())

	// submitting blocks further clicks without touching the timer
	assert.Equal(t, ClickIgnored, guard.Click(Event{Source: "second"}, false, rec.handle, 400*time.Millisecond, true))
	assert.Equal(t, 1, sched.armed())

	sched.fireAll()

	require.Equal(t, 1, rec.count())
	assert.Equal(t, "first", rec.events[0].Source)
	assert.False(t, guard.Submitting())
	assert.EqualValues(t, 2, changes.Load())

	assert.Equal(t, ClickArmed, guard.Click(Event{Source: "third"}, false, rec.handle, 400*time.Millisecond, true))
}

func TestClickGuardCloseCancelsPendingClick(t *testing.T) {
	t.Parallel()

	sched := &manualScheduler{}
	guard := NewClickGuard(sched, nil)
	rec := &recorder{}

	guard.Click(Event{}, false, rec.handle, time.Second, true)
	timer := sched.last()
	guard.Close()

	assert.True(t, timer.stopped)
	assert.False(t, guard.Pending())
	assert.False(t, guard.Submitting())

	sched.fireStale(timer)
	assert.Equal(t, 0, rec.count())

	assert.Equal(t, ClickIgnored, guard.Click(Event{}, false, rec.handle, 0, false))
	assert.Equal(t, 0, rec.count())
}

func TestClickGuardWallClock(t *testing.T) {
	t.Parallel()

	guard := NewClickGuard(nil, nil)
	var calls atomic.Int32
	handler := func(Event) { calls.Add(1) }

	for i := 0; i < 5; i++ {
		guard.Click(Event{}, false, handler, 20*time.Millisecond, false)
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.EqualValues(t, 1, calls.Load())
}

func TestClickGuardWallClockCloseBeforeFire(t *testing.T) {
	t.Parallel()

	guard := NewClickGuard(WallClock{}, nil)
	var calls atomic.Int32

	guard.Click(Event{}, false, func(Event) { calls.Add(1) }, 30*time.Millisecond, false)
	guard.Close()

	time.Sleep(80 * time.Millisecond)
	assert.EqualValues(t, 0, calls.Load())
}
