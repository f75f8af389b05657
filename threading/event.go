// Package threading provides the synchronization primitives of this module:
// a manual/auto reset event and callback timers that invoke user code against
// owned state on a timer-owned goroutine.
package threading

import (
	"sync"
	"time"
)

// WaitInfinite requests an unbounded wait.
const WaitInfinite time.Duration = -1

// Event is a signaling primitive. A manual-reset event stays signaled until
// Reset and releases every waiter; an auto-reset event releases a single
// waiter and clears itself.
type Event struct {
	mu       sync.Mutex
	manual   bool
	signaled bool
	ch       chan struct{}
}

// NewManualResetEvent creates a manual-reset event in the given state.
func NewManualResetEvent(signaled bool) *Event {
	e := &Event{manual: true, ch: make(chan struct{})}
	if signaled {
		e.Set()
	}
	return e
}

// NewAutoResetEvent creates an auto-reset event in the given state.
func NewAutoResetEvent(signaled bool) *Event {
	e := &Event{ch: make(chan struct{}, 1)}
	if signaled {
		e.Set()
	}
	return e
}

// Set signals the event. Setting an already-signaled event is a no-op.
func (e *Event) Set() {
	if e.manual {
		e.mu.Lock()
		defer e.mu.Unlock()
		if !e.signaled {
			e.signaled = true
			close(e.ch)
		}
		return
	}
	select {
	case e.ch <- struct{}{}:
	default:
	}
}

// Reset clears the event. Waiters that observed the signal before the reset
// are still released.
func (e *Event) Reset() {
	if e.manual {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.signaled {
			e.signaled = false
			e.ch = make(chan struct{})
		}
		return
	}
	select {
	case <-e.ch:
	default:
	}
}

// WaitOne blocks until the event is signaled or timeout elapses and reports
// whether it was signaled. Pass WaitInfinite to wait without bound. Waiting
// on an auto-reset event consumes its signal.
func (e *Event) WaitOne(timeout time.Duration) bool {
	ch := e.waitChannel()

	// Fast path keeps a zero timeout from racing the timer below.
	select {
	case <-ch:
		return true
	default:
	}

	if timeout < 0 {
		<-ch
		return true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-ch:
		return true
	case <-timer.C:
		return false
	}
}

// IsSignaled reports the current state without waiting or consuming the
// signal of an auto-reset event.
func (e *Event) IsSignaled() bool {
	if e.manual {
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.signaled
	}
	return len(e.ch) > 0
}

func (e *Event) waitChannel() chan struct{} {
	if !e.manual {
		return e.ch
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ch
}
