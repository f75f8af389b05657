package threading

import "time"

// SynchronizationTimer invokes a callback against owned state once a due
// time elapses, re-arming every period when one is given. Delivery is driven
// by the runtime timer behind time.Timer rather than a polling wait; the
// external contract is identical to DelayedCallback.
//
// Start and Stop may be called from any goroutine, but not concurrently with
// each other on the same timer.
type SynchronizationTimer[T any] struct {
	core timerCore[T]
}

// NewSynchronizationTimer creates an idle timer owning state. The callback
// does not run until Start.
func NewSynchronizationTimer[T any](callback Callback[T], state T) *SynchronizationTimer[T] {
	return &SynchronizationTimer[T]{core: newTimerCore("synchronization-timer", callback, state)}
}

// Start arms the timer: the callback fires once dueTime elapses and then
// every period. A zero period delivers exactly once. Starting an armed timer
// restarts the countdown. A negative argument returns ErrNegativeDueTime or
// ErrNegativePeriod and leaves the timer in its prior state.
func (s *SynchronizationTimer[T]) Start(dueTime, period time.Duration) error {
	return s.core.start(dueTime, period, s.run)
}

// Stop disarms the timer. No callback invocation begins after Stop returns;
// an invocation already in flight finishes first. Stopping an idle timer is
// a no-op. Stop must not be called from the callback itself.
func (s *SynchronizationTimer[T]) Stop() {
	s.core.cancel()
}

// Close stops the timer and releases the owned state for collection. The
// state must not be touched again once Close returns.
func (s *SynchronizationTimer[T]) Close() {
	s.core.cancel()
}

// IsRunning reports whether a schedule is currently armed.
func (s *SynchronizationTimer[T]) IsRunning() bool {
	return s.core.isRunning()
}

func (s *SynchronizationTimer[T]) run(dueTime, period time.Duration, stop <-chan struct{}, exhausted func()) {
	timer := time.NewTimer(dueTime)
	defer timer.Stop()
	for {
		select {
		case <-stop:
			return
		case <-timer.C:
			s.core.invoke()
			if period == 0 {
				exhausted()
				return
			}
			// Re-armed after the callback returns, so a period shorter
			// than the callback skips rather than overlaps.
			timer.Reset(period)
		}
	}
}
