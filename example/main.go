package main

import (
	"fmt"
	"time"

	"winproc/process"
	"winproc/threading"
)

func main() {
	// This example walks the ownership protocol with empty instances so it
	// can run without opening a live process. In a real scenario the native
	// record would come from process creation, e.g.:
	//
	//   info := process.NewInformation(process.NativeInfo{
	//       Process:   created.Process,
	//       Thread:    created.Thread,
	//       ProcessID: created.ProcessID,
	//       ThreadID:  created.ThreadID,
	//   })
	//   defer info.Close()

	// 1. Construct an owner and inspect it. Empty instances answer every
	// query with absent/false results instead of failing.
	info := process.NewInformation(process.NativeInfo{})
	fmt.Printf("open: %v, running: %v\n", info.Valid(), info.IsRunning())

	// 2. Move ownership across a boundary that cannot hold the owner
	// itself: Release flattens to a plain record, Reset adopts it back.
	record := info.Release()
	fmt.Printf("released: %+v, still open: %v\n", record, info.Valid())

	adopted := &process.Information{}
	adopted.Reset(record)

	// 3. Schedule a callback against timer-owned state. The timer goroutine
	// has exclusive access to the counter; the event observes delivery.
	done := threading.NewManualResetEvent(false)
	timer := threading.NewDelayedCallback(func(count *int) {
		*count++
		fmt.Printf("tick %d\n", *count)
		if *count == 3 {
			done.Set()
		}
	}, 0)
	defer timer.Close()

	if err := timer.Start(10*time.Millisecond, 25*time.Millisecond); err != nil {
		fmt.Printf("start failed: %v\n", err)
		return
	}

	if !done.WaitOne(time.Second) {
		fmt.Println("timed out waiting for callbacks")
		return
	}
	timer.Stop()
	fmt.Println("done")
}
