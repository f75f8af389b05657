// Package process provides move-only ownership of native process and thread
// handles. Handle and ThreadHandle wrap a single raw handle value each;
// Information couples a process handle, the handle of the process's initial
// thread, and that thread's id into one transferable unit, the way the OS
// reports them at process creation.
//
// Ownership moves only through explicit operations (Reset, Release, TakeFrom,
// Swap). Queries against a closed owner degrade to absent or false results
// rather than failing, which keeps polling loops free of error plumbing.
package process

import "errors"

// ErrNotSupported is returned by the native syscall surface on platforms
// where process handles are unavailable. The ownership protocol itself works
// everywhere; only the live queries need the OS.
var ErrNotSupported = errors.New("process handles are not supported on this platform")
