//go:build windows

package harness

import "os"

var interruptSignal = os.Kill
