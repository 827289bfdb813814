// Package launcher holds the top-level control flow of the setup launcher:
// resolve the working directory and platform, locate the platform's setup
// script, prepare it, invoke it with the forwarded arguments, and map its
// outcome to the launcher's own exit status.
package launcher

import (
	"fmt"
	"io"
	"os"

	"setup-launcher/internal/command"
	"setup-launcher/internal/logger"
	"setup-launcher/internal/platform"
	"setup-launcher/internal/runner"
)

// Launcher drives one setup run. Platform is resolved once by New and
// read-only afterwards; WorkDir is resolved by Run when left empty, so tests
// can point a launcher at a prepared directory. Out receives the user-facing
// banner and summary lines (the leveled progress lines go through the logger
// instead).
type Launcher struct {
	WorkDir  string
	Platform platform.Kind
	Out      io.Writer
}

// New returns a launcher for the detected host platform, writing user-facing
// output to stdout.
func New() *Launcher {
	return &Launcher{
		Platform: platform.Detect(),
		Out:      os.Stdout,
	}
}

// Run executes the launch sequence end to end and returns the exit code the
// launcher should terminate with: 0 on success, 1 when the working directory
// cannot be resolved or the platform's setup script is missing, and otherwise
// the exact exit code reported by the script's process.
//
// args are the launcher's own command-line arguments (without the program
// name), forwarded verbatim to the script with minimal quoting.
func (l *Launcher) Run(args []string) int {
	l.printBanner()

	// An unresolvable working directory is fatal: without it there is no
	// script path to build.
	if l.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			logger.Error("Failed to get current directory")
			return 1
		}
		l.WorkDir = wd
	}

	logger.Info("Starting universal setup program")
	logger.Info("Detected %s operating system", l.Platform)

	// The script path built here is the one string used for both the
	// existence check and the invocation. It is joined with the platform's
	// own separator rather than filepath.Join so the command line handed to
	// the interpreter looks exactly like a native path on every platform.
	scriptPath := l.WorkDir + l.Platform.Separator() + l.Platform.ScriptName()
	logger.Debug("Expected setup script path: %s", scriptPath)

	if !fileExists(scriptPath) {
		logger.Error("%s setup script (%s) not found", l.Platform.Family(), l.Platform.ScriptName())
		return 1
	}

	// Best-effort executable fix-up on Unix-like platforms. A failure here is
	// not checked separately: the invocation below is the real test of
	// whether the script can run.
	if l.Platform.NeedsExecFix() {
		if err := os.Chmod(scriptPath, 0755); err != nil {
			logger.Warn("Could not make %s executable: %v", l.Platform.ScriptName(), err)
		}
	}

	logger.Info("Running %s setup script...", l.Platform.Family())
	result := runner.Run(l.Platform, command.Build(l.baseCommand(scriptPath), args))

	if result.Succeeded {
		logger.Info("Setup completed successfully")
		fmt.Fprintf(l.Out, "\nSetup completed successfully!\n")
		fmt.Fprintf(l.Out, "You can now start using the Infrastructure Automation Framework.\n")
		fmt.Fprintf(l.Out, "Refer to the README.md for next steps.\n")
		return 0
	}

	logger.Error("Setup failed")
	fmt.Fprintf(l.Out, "\nSetup failed with exit code %d\n", result.ExitCode)
	fmt.Fprintf(l.Out, "Check the logs directory for more information.\n")
	return result.ExitCode
}

// baseCommand returns the platform's interpreter invocation for the script.
// On Windows the script runs through PowerShell with the execution policy
// bypassed for this one call; on Unix-like platforms the quoted script path
// is the whole base command.
func (l *Launcher) baseCommand(scriptPath string) string {
	if l.Platform == platform.Windows {
		return fmt.Sprintf(`powershell -ExecutionPolicy Bypass -File "%s"`, scriptPath)
	}
	return `"` + scriptPath + `"`
}

// printBanner writes the framework banner to the user-facing output.
func (l *Launcher) printBanner() {
	fmt.Fprintf(l.Out, "\n-----------------------------------------\n")
	fmt.Fprintf(l.Out, "Infrastructure Automation Framework Setup\n")
	fmt.Fprintf(l.Out, "-----------------------------------------\n\n")
}

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
