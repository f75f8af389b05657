//go:build !windows

package main

import (
	"time"

	"winproc/process"
)

func watch(int, time.Duration, time.Duration) error {
	return process.ErrNotSupported
}
