package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

func main() {
	pidFlag := flag.Int("pid", 0, "Process ID to watch")
	timeoutFlag := flag.Duration("timeout", 0, "Give up after this long (0 waits forever)")
	heartbeatFlag := flag.Duration("heartbeat", time.Second, "Interval between still-running log lines")
	flag.Parse()

	if *pidFlag == 0 {
		fmt.Println("Error: --pid is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := watch(*pidFlag, *timeoutFlag, *heartbeatFlag); err != nil {
		fmt.Printf("Error watching process %d: %v\n", *pidFlag, err)
		os.Exit(1)
	}
}
