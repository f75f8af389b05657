//go:build windows

package main

import (
	"fmt"
	"time"

	"winproc/process"
	"winproc/threading"

	"github.com/Moonlight-Companies/gologger/logger"
)

func watch(pid int, timeout, heartbeat time.Duration) error {
	log := logger.NewLogger(fmt.Sprintf("procwait-%d", pid))

	h, err := process.Open(process.ProcessID(pid))
	if err != nil {
		return fmt.Errorf("open process %d: %w", pid, err)
	}
	defer h.Clear()

	ticks := threading.NewSynchronizationTimer(func(state *int) {
		*state++
		log.Infoln("still running, check ", *state)
	}, 0)
	if err := ticks.Start(heartbeat, heartbeat); err != nil {
		return err
	}
	defer ticks.Close()

	log.Infoln("waiting for process to exit")
	if timeout <= 0 {
		h.WaitForExit()
	} else if !h.WaitForExitTimeout(timeout) {
		return fmt.Errorf("process %d still running after %s", pid, timeout)
	}
	ticks.Stop()

	if code, ok := h.ExitCode(); ok {
		log.Infoln("process exited with code ", code)
	} else {
		log.Warn("process exit code unavailable")
	}
	return nil
}
