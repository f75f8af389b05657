package process

import "time"

// stillActive is the exit code the OS reports for a process that has not yet
// exited.
const stillActive = 259

// Infinite requests an unbounded wait.
const Infinite time.Duration = -1

// Kernel is the syscall surface the handle types run against. The production
// implementation wraps the native process API; tests substitute a fake.
type Kernel interface {
	// OpenProcess opens a handle to the process identified by pid with
	// rights sufficient for querying and waiting on it.
	OpenProcess(pid ProcessID) (HandleValue, error)

	// ProcessID resolves the id of the process behind an open handle.
	ProcessID(h HandleValue) (ProcessID, error)

	// Wait blocks until the handle is signaled or timeout elapses and
	// reports whether it was signaled. Pass Infinite to wait without bound.
	Wait(h HandleValue, timeout time.Duration) (bool, error)

	// ExitCode returns the raw exit code of the process behind the handle.
	// A process that has not exited reports the still-active sentinel.
	ExitCode(h HandleValue) (uint32, error)

	// CloseHandle releases a native handle.
	CloseHandle(h HandleValue) error
}

var kernel Kernel = platformKernel()
