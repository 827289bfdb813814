//go:build windows

package runner

import "os/exec"

// exitStatus returns the child's exit code. Windows has no signal-based
// termination to translate, so the reported code is used as-is.
func exitStatus(err *exec.ExitError) int {
	return err.ExitCode()
}
