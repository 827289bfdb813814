//go:build !windows

package runner

import (
	"os/exec"
	"syscall"
)

// exitStatus extracts a representable exit code from a finished child.
// A child terminated by a signal has no exit code of its own, so it is
// mapped to 128+signal, the convention shells use for the same case.
func exitStatus(err *exec.ExitError) int {
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return err.ExitCode()
}
