//go:build windows

package process

import (
	"time"

	"golang.org/x/sys/windows"
)

type windowsKernel struct{}

func platformKernel() Kernel {
	return windowsKernel{}
}

func (windowsKernel) OpenProcess(pid ProcessID) (HandleValue, error) {
	// Query-limited access works even for processes owned by another user.
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION|windows.SYNCHRONIZE, false, uint32(pid))
	if err != nil {
		return 0, err
	}
	return HandleValue(h), nil
}

func (windowsKernel) ProcessID(h HandleValue) (ProcessID, error) {
	pid, err := windows.GetProcessId(windows.Handle(h))
	if err != nil {
		return 0, err
	}
	return ProcessID(pid), nil
}

func (windowsKernel) Wait(h HandleValue, timeout time.Duration) (bool, error) {
	ms := uint32(windows.INFINITE)
	if timeout >= 0 {
		ms = uint32(timeout / time.Millisecond)
	}
	event, err := windows.WaitForSingleObject(windows.Handle(h), ms)
	if err != nil {
		return false, err
	}
	return event == windows.WAIT_OBJECT_0, nil
}

func (windowsKernel) ExitCode(h HandleValue) (uint32, error) {
	var code uint32
	if err := windows.GetExitCodeProcess(windows.Handle(h), &code); err != nil {
		return 0, err
	}
	return code, nil
}

func (windowsKernel) CloseHandle(h HandleValue) error {
	return windows.CloseHandle(windows.Handle(h))
}
