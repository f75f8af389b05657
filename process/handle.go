package process

import (
	"time"

	"winproc/handle"
)

// handleTraits releases process and thread handles through the active kernel
// surface. Zero marks an empty owner for both handle kinds.
type handleTraits struct{}

func (handleTraits) InvalidValue() HandleValue {
	return 0
}

func (handleTraits) CloseHandle(h HandleValue) error {
	return kernel.CloseHandle(h)
}

// Handle owns a native process handle and answers queries about the process
// behind it. The zero value is an empty owner. Queries against an empty
// owner report absent or false results rather than failing.
type Handle struct {
	handle.Unique[HandleValue, handleTraits]
}

// NewHandle adopts a raw process handle value without validating it.
func NewHandle(value HandleValue) Handle {
	return Handle{handle.New[HandleValue, handleTraits](value)}
}

// Open opens a query/synchronize handle to the process identified by pid.
func Open(pid ProcessID) (Handle, error) {
	raw, err := kernel.OpenProcess(pid)
	if err != nil {
		return Handle{}, err
	}
	return NewHandle(raw), nil
}

// Equal reports whether both owners hold the same raw handle value.
func (h *Handle) Equal(other *Handle) bool {
	return h.NativeHandle() == other.NativeHandle()
}

// Swap exchanges the owned values of h and other.
func (h *Handle) Swap(other *Handle) {
	h.Unique.Swap(&other.Unique)
}

// GetProcessID resolves the id of the owned process. Reports false when the
// owner is empty or the id cannot be resolved.
func (h *Handle) GetProcessID() (ProcessID, bool) {
	if !h.Valid() {
		return 0, false
	}
	pid, err := kernel.ProcessID(h.NativeHandle())
	if err != nil {
		return 0, false
	}
	return pid, true
}

// IsRunning reports whether the owned process is still running. An empty
// owner reports false.
func (h *Handle) IsRunning() bool {
	if !h.Valid() {
		return false
	}
	signaled, err := kernel.Wait(h.NativeHandle(), 0)
	if err != nil {
		return false
	}
	return !signaled
}

// WaitForExit blocks until the owned process terminates. An empty owner
// returns immediately: a process that is not open is not running.
func (h *Handle) WaitForExit() {
	if !h.Valid() {
		return
	}
	_, _ = kernel.Wait(h.NativeHandle(), Infinite)
}

// WaitForExitTimeout blocks until the owned process terminates or timeout
// elapses, reporting whether termination happened within the bound. An empty
// owner reports true immediately, consistent with WaitForExit.
func (h *Handle) WaitForExitTimeout(timeout time.Duration) bool {
	if !h.Valid() {
		return true
	}
	signaled, err := kernel.Wait(h.NativeHandle(), timeout)
	if err != nil {
		return false
	}
	return signaled
}

// ExitCode returns the exit code of the owned process. Reports false while
// the process is still running and when the owner is empty.
func (h *Handle) ExitCode() (uint32, bool) {
	if !h.Valid() {
		return 0, false
	}
	code, err := kernel.ExitCode(h.NativeHandle())
	if err != nil || code == stillActive {
		return 0, false
	}
	return code, true
}

// ThreadHandle owns a native thread handle. Thread handles carry no
// process-level queries. The zero value is an empty owner.
type ThreadHandle struct {
	handle.Unique[HandleValue, handleTraits]
}

// NewThreadHandle adopts a raw thread handle value without validating it.
func NewThreadHandle(value HandleValue) ThreadHandle {
	return ThreadHandle{handle.New[HandleValue, handleTraits](value)}
}

// Equal reports whether both owners hold the same raw handle value.
func (h *ThreadHandle) Equal(other *ThreadHandle) bool {
	return h.NativeHandle() == other.NativeHandle()
}

// Swap exchanges the owned values of h and other.
func (h *ThreadHandle) Swap(other *ThreadHandle) {
	h.Unique.Swap(&other.Unique)
}
