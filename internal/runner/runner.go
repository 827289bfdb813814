// Package runner executes a fully built command line in a child process via
// the host's command interpreter and reports the child's exit status.
package runner

import (
	"errors"
	"os"
	"os/exec"

	"setup-launcher/internal/logger"
	"setup-launcher/internal/platform"
)

// Result is the outcome of one child-process execution.
type Result struct {
	ExitCode  int  // the child's reported exit status
	Succeeded bool // true iff ExitCode is 0
}

// Run invokes the given command string through the platform's command
// interpreter (cmd /C on Windows, sh -c elsewhere) and blocks until the
// child terminates. There is no timeout and no retry; a user interrupt
// reaches the whole process group per default signal delivery.
//
// The command string is logged at INFO level immediately before execution so
// the exact invocation is traceable in the day's log file. The child inherits
// the launcher's standard streams so the setup script's own output reaches
// the user directly.
//
// On Unix, a child killed by a signal is reported as 128+signal rather than
// a raw wait status. A command that cannot be started at all (interpreter or
// script not runnable) is reported as 127, the shell's convention for
// "command not found".
func Run(k platform.Kind, commandLine string) Result {
	logger.Info("%s", commandLine)

	var cmd *exec.Cmd
	if k == platform.Windows {
		cmd = exec.Command("cmd", "/C", commandLine)
	} else {
		cmd = exec.Command("sh", "-c", commandLine)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return Result{ExitCode: 0, Succeeded: true}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitStatus(exitErr)
		return Result{ExitCode: code, Succeeded: code == 0}
	}

	// The interpreter itself could not be started. Nothing ran, so there is
	// no child status to mirror.
	logger.Error("Failed to start command: %v", err)
	return Result{ExitCode: 127, Succeeded: false}
}
