package threading

import (
	"errors"
	"sync"
	"time"

	"github.com/Moonlight-Companies/gologger/logger"
)

var (
	// ErrNegativeDueTime is returned by Start when the due time is negative.
	ErrNegativeDueTime = errors.New("due_time must be greater than or equal to zero")

	// ErrNegativePeriod is returned by Start when the period is negative.
	ErrNegativePeriod = errors.New("period must be greater than or equal to zero")
)

// Callback is invoked by a timer with exclusive mutable access to the state
// the timer owns. Invocations of the same timer never overlap.
type Callback[T any] func(state *T)

// runFunc drives one armed schedule on its own goroutine. It must return
// promptly once stop is closed and call exhausted after the single delivery
// of a one-shot schedule.
type runFunc func(dueTime, period time.Duration, stop <-chan struct{}, exhausted func())

// timerCore is the schedule state machine shared by DelayedCallback and
// SynchronizationTimer: argument validation, re-arm on Start, stop-and-join,
// and the panic policy for user callbacks. The two timer kinds differ only
// in the runFunc they arm it with.
type timerCore[T any] struct {
	mu       sync.Mutex
	callback Callback[T]
	state    T
	log      *logger.Logger
	stop     chan struct{}
	done     chan struct{}
	running  bool
}

func newTimerCore[T any](name string, callback Callback[T], state T) timerCore[T] {
	return timerCore[T]{
		callback: callback,
		state:    state,
		log:      logger.NewLogger(name),
	}
}

// start validates the schedule and arms run on a fresh goroutine, tearing
// down any schedule armed before. Validation failure leaves the prior
// schedule untouched.
func (c *timerCore[T]) start(dueTime, period time.Duration, run runFunc) error {
	if dueTime < 0 {
		return ErrNegativeDueTime
	}
	if period < 0 {
		return ErrNegativePeriod
	}

	c.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	stop := make(chan struct{})
	done := make(chan struct{})
	c.stop, c.done = stop, done
	c.running = true
	c.log.Debugln("armed: due ", dueTime, " period ", period)
	go func() {
		defer close(done)
		run(dueTime, period, stop, func() { c.exhausted(done) })
	}()
	return nil
}

// cancel tears down the current schedule and joins the schedule goroutine,
// waiting out an in-flight callback. No invocation begins after cancel
// returns. Safe to call when nothing is armed; must not be called from
// inside the callback.
func (c *timerCore[T]) cancel() {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.running = false
	c.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// exhausted marks a one-shot schedule idle after its single delivery. The
// done comparison keeps a stale goroutine from clearing a newer schedule.
func (c *timerCore[T]) exhausted(done chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done == done {
		c.stop, c.done = nil, nil
		c.running = false
	}
}

// invoke runs the user callback against the owned state. A panicking
// callback is logged and does not take the schedule down with it.
func (c *timerCore[T]) invoke() {
	if c.callback == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.log.Warn("callback panic: ", r)
		}
	}()
	c.callback(&c.state)
}

func (c *timerCore[T]) isRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
