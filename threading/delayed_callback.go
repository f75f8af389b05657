package threading

import "time"

// pollResolution is the slice the delayed-callback poll loop sleeps between
// checks of the due time.
const pollResolution = time.Millisecond

// DelayedCallback invokes a callback against owned state once a due time
// elapses, re-arming every period when one is given. Delivery is driven by a
// polling wait against the due time on the timer's own goroutine.
//
// Start and Stop may be called from any goroutine, but not concurrently with
// each other on the same timer.
type DelayedCallback[T any] struct {
	core timerCore[T]
}

// NewDelayedCallback creates an idle timer owning state. The callback does
// not run until Start.
func NewDelayedCallback[T any](callback Callback[T], state T) *DelayedCallback[T] {
	return &DelayedCallback[T]{core: newTimerCore("delayed-callback", callback, state)}
}

// Start arms the timer: the callback fires once dueTime elapses and then
// every period. A zero period delivers exactly once. Starting an armed timer
// restarts the countdown. A negative argument returns ErrNegativeDueTime or
// ErrNegativePeriod and leaves the timer in its prior state.
func (d *DelayedCallback[T]) Start(dueTime, period time.Duration) error {
	return d.core.start(dueTime, period, d.run)
}

// Stop disarms the timer. No callback invocation begins after Stop returns;
// an invocation already in flight finishes first. Stopping an idle timer is
// a no-op. Stop must not be called from the callback itself.
func (d *DelayedCallback[T]) Stop() {
	d.core.cancel()
}

// Close stops the timer and releases the owned state for collection. The
// state must not be touched again once Close returns.
func (d *DelayedCallback[T]) Close() {
	d.core.cancel()
}

// IsRunning reports whether a schedule is currently armed.
func (d *DelayedCallback[T]) IsRunning() bool {
	return d.core.isRunning()
}

func (d *DelayedCallback[T]) run(dueTime, period time.Duration, stop <-chan struct{}, exhausted func()) {
	deadline := time.Now().Add(dueTime)
	ticker := time.NewTicker(pollResolution)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			if now.Before(deadline) {
				continue
			}
			d.core.invoke()
			if period == 0 {
				exhausted()
				return
			}
			// Periods missed while the callback ran are skipped, not
			// replayed.
			deadline = time.Now().Add(period)
		}
	}
}
