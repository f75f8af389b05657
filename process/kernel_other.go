//go:build !windows

package process

import "time"

// Non-windows builds carry the full ownership protocol but no live syscall
// surface; queries degrade the same way they do for a closed handle.
type unsupportedKernel struct{}

func platformKernel() Kernel {
	return unsupportedKernel{}
}

func (unsupportedKernel) OpenProcess(ProcessID) (HandleValue, error) {
	return 0, ErrNotSupported
}

func (unsupportedKernel) ProcessID(HandleValue) (ProcessID, error) {
	return 0, ErrNotSupported
}

func (unsupportedKernel) Wait(HandleValue, time.Duration) (bool, error) {
	return false, ErrNotSupported
}

func (unsupportedKernel) ExitCode(HandleValue) (uint32, error) {
	return 0, ErrNotSupported
}

func (unsupportedKernel) CloseHandle(HandleValue) error {
	return nil
}
