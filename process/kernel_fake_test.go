package process

import (
	"errors"
	"testing"
	"time"
)

// fakeKernel stands in for the native syscall surface so the ownership
// protocol can be exercised with made-up handle values.
type fakeKernel struct {
	pids     map[HandleValue]ProcessID
	exited   map[HandleValue]bool
	exitCode map[HandleValue]uint32
	closed   []HandleValue
	waitErr  error
}

func newFakeKernel() *fakeKernel {
	return &fakeKernel{
		pids:     map[HandleValue]ProcessID{},
		exited:   map[HandleValue]bool{},
		exitCode: map[HandleValue]uint32{},
	}
}

func (k *fakeKernel) OpenProcess(pid ProcessID) (HandleValue, error) {
	for h, known := range k.pids {
		if known == pid {
			return h, nil
		}
	}
	return 0, errors.New("no such process")
}

func (k *fakeKernel) ProcessID(h HandleValue) (ProcessID, error) {
	pid, ok := k.pids[h]
	if !ok {
		return 0, errors.New("unknown handle")
	}
	return pid, nil
}

func (k *fakeKernel) Wait(h HandleValue, timeout time.Duration) (bool, error) {
	if k.waitErr != nil {
		return false, k.waitErr
	}
	// A process handle is signaled exactly when the process has exited.
	return k.exited[h], nil
}

func (k *fakeKernel) ExitCode(h HandleValue) (uint32, error) {
	if !k.exited[h] {
		return stillActive, nil
	}
	return k.exitCode[h], nil
}

func (k *fakeKernel) CloseHandle(h HandleValue) error {
	k.closed = append(k.closed, h)
	return nil
}

// withKernel swaps the package syscall surface for the duration of a test.
func withKernel(t *testing.T, k Kernel) {
	t.Helper()
	prev := kernel
	kernel = k
	t.Cleanup(func() { kernel = prev })
}
