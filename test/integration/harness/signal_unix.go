//go:build !windows

package harness

import "syscall"

var interruptSignal = syscall.SIGTERM
