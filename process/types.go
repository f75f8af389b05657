package process

// ProcessID represents a unique identifier for a process.
type ProcessID uint32

// ThreadID represents a unique identifier for a thread.
type ThreadID uint32

// HandleValue is a raw native handle value with no ownership implication.
type HandleValue uintptr

// NativeInfo mirrors the record native process creation returns: both raw
// handles plus both identifiers, in the order the OS reports them. It carries
// no ownership; adopting one into an Information does.
type NativeInfo struct {
	Process   HandleValue
	Thread    HandleValue
	ProcessID ProcessID
	ThreadID  ThreadID
}

// Identity returns the canonical comparison value for the record.
func (n NativeInfo) Identity() Identity {
	return Identity{
		ThreadID: n.ThreadID,
		Process:  n.Process,
		Thread:   n.Thread,
	}
}

// Deconstructed is the flattened, ownership-relinquishing form of an
// Information, produced by Release and consumed by Reset. Whoever holds it is
// responsible for closing both handle values, typically by handing it to
// another owner.
type Deconstructed struct {
	ProcessID ProcessID
	ThreadID  ThreadID
	Process   HandleValue
	Thread    HandleValue
}

// Identity returns the canonical comparison value for the record.
func (d Deconstructed) Identity() Identity {
	return Identity{
		ThreadID: d.ThreadID,
		Process:  d.Process,
		Thread:   d.Thread,
	}
}

// Identity is the canonical comparison value shared by Information,
// NativeInfo and Deconstructed: the thread id plus both raw handle values.
// The process id does not participate; it is derived from the process handle
// and may be unresolved on either side of a comparison.
type Identity struct {
	ThreadID ThreadID
	Process  HandleValue
	Thread   HandleValue
}
