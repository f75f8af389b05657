package process

import "time"

// Information couples a process handle, the handle of the process's initial
// thread, and that thread's id into a single owner. It is open when both
// handles are valid; the defined constructors never produce a half-open
// instance outside of a transfer in progress.
//
// Information is a plain owner with no internal synchronization. Mutating
// the same instance from multiple goroutines without external
// synchronization is a caller error.
type Information struct {
	threadID ThreadID
	process  Handle
	thread   ThreadHandle
}

// NewInformation adopts the handles of a native creation record without
// validating them.
func NewInformation(native NativeInfo) *Information {
	return &Information{
		threadID: native.ThreadID,
		process:  NewHandle(native.Process),
		thread:   NewThreadHandle(native.Thread),
	}
}

// NewInformationFrom moves ownership out of other into a new instance,
// leaving other closed.
func NewInformationFrom(other *Information) *Information {
	p := &Information{}
	p.TakeFrom(other)
	return p
}

// TakeFrom moves ownership out of other into p, releasing whatever p held
// before. other is left closed. Taking from itself, or from an instance with
// the same identity, is a no-op; nothing is released in that case.
func (p *Information) TakeFrom(other *Information) {
	if p == other || p.Identity() == other.Identity() {
		return
	}
	d := other.Release()
	p.threadID = d.ThreadID
	p.process.Reset(d.Process)
	p.thread.Reset(d.Thread)
}

// Reset releases the current resources and adopts the deconstructed record.
// Resetting to the identity already held is a no-op. Reports whether the
// instance is open afterwards.
func (p *Information) Reset(d Deconstructed) bool {
	if p.Identity() == d.Identity() {
		return p.Valid()
	}
	p.Close()
	p.threadID = d.ThreadID
	p.process.Reset(d.Process)
	p.thread.Reset(d.Thread)
	return p.Valid()
}

// ResetNative is Reset for a native creation record.
func (p *Information) ResetNative(native NativeInfo) bool {
	if p.Identity() == native.Identity() {
		return p.Valid()
	}
	p.Close()
	p.threadID = native.ThreadID
	p.process.Reset(native.Process)
	p.thread.Reset(native.Thread)
	return p.Valid()
}

// Release transfers ownership of both handles to the caller and leaves the
// instance closed. The process id in the record is resolved at call time, 0
// when it cannot be. Release is the channel for moving ownership across a
// boundary that cannot hold an Information directly.
func (p *Information) Release() Deconstructed {
	pid, _ := p.process.GetProcessID()
	d := Deconstructed{
		ProcessID: pid,
		ThreadID:  p.threadID,
		Process:   p.process.Release(),
		Thread:    p.thread.Release(),
	}
	p.threadID = 0
	return d
}

// Close releases both handles and zeroes the thread id. Closing an instance
// that is not open is a no-op.
func (p *Information) Close() {
	if !p.Valid() {
		return
	}
	p.threadID = 0
	p.process.Clear()
	p.thread.Clear()
}

// NativeHandle builds a native record snapshot of the current state without
// transferring ownership. The process id is resolved live, 0 when the
// process handle is empty or the id cannot be resolved.
func (p *Information) NativeHandle() NativeInfo {
	pid, _ := p.process.GetProcessID()
	return NativeInfo{
		Process:   p.process.NativeHandle(),
		Thread:    p.thread.NativeHandle(),
		ProcessID: pid,
		ThreadID:  p.threadID,
	}
}

// Identity returns the canonical comparison value for the current state.
func (p *Information) Identity() Identity {
	return Identity{
		ThreadID: p.threadID,
		Process:  p.process.NativeHandle(),
		Thread:   p.thread.NativeHandle(),
	}
}

// Equal reports whether both instances have the same identity. Comparison
// has no ownership side effects.
func (p *Information) Equal(other *Information) bool {
	return p == other || p.Identity() == other.Identity()
}

// EqualNative reports whether the instance has the same identity as a native
// creation record.
func (p *Information) EqualNative(native NativeInfo) bool {
	return p.Identity() == native.Identity()
}

// EqualDeconstructed reports whether the instance has the same identity as a
// deconstructed record.
func (p *Information) EqualDeconstructed(d Deconstructed) bool {
	return p.Identity() == d.Identity()
}

// Valid reports whether the instance is open: both handles valid.
func (p *Information) Valid() bool {
	return p.process.Valid() && p.thread.Valid()
}

// Swap exchanges the full identity of p and other.
func (p *Information) Swap(other *Information) {
	p.threadID, other.threadID = other.threadID, p.threadID
	p.process, other.process = other.process, p.process
	p.thread, other.thread = other.thread, p.thread
}

// Process returns the owned process handle. Ownership stays with p.
func (p *Information) Process() *Handle {
	return &p.process
}

// Thread returns the owned thread handle. Ownership stays with p.
func (p *Information) Thread() *ThreadHandle {
	return &p.thread
}

// NativeProcessHandle returns the raw process handle value without
// transferring ownership.
func (p *Information) NativeProcessHandle() HandleValue {
	return p.process.NativeHandle()
}

// NativeThreadHandle returns the raw thread handle value without
// transferring ownership.
func (p *Information) NativeThreadHandle() HandleValue {
	return p.thread.NativeHandle()
}

// ThreadID returns the raw thread id.
func (p *Information) ThreadID() ThreadID {
	return p.threadID
}

// GetProcessID resolves the id of the owned process. Reports false when the
// instance holds no process handle or the id cannot be resolved.
func (p *Information) GetProcessID() (ProcessID, bool) {
	return p.process.GetProcessID()
}

// IsRunning reports whether the owned process is still running. A closed
// instance reports false.
func (p *Information) IsRunning() bool {
	return p.process.IsRunning()
}

// WaitForExit blocks until the owned process terminates. A closed instance
// returns immediately.
func (p *Information) WaitForExit() {
	p.process.WaitForExit()
}

// WaitForExitTimeout blocks until the owned process terminates or timeout
// elapses, reporting whether termination happened within the bound.
func (p *Information) WaitForExitTimeout(timeout time.Duration) bool {
	return p.process.WaitForExitTimeout(timeout)
}

// ExitCode returns the exit code of the owned process. Reports false while
// the process is running and when the instance is closed.
func (p *Information) ExitCode() (uint32, bool) {
	return p.process.ExitCode()
}
