package main

import (
	"os"

	"setup-launcher/cmd" // CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() and terminates with the exit code Execute
// reports, which is how the setup script's own exit status propagates out of
// the launcher.
//
// The setup-launcher project is a universal bootstrap for platform-specific
// provisioning scripts:
//   - Detects whether the host is Windows, macOS, or Linux (any other Unix
//     is handled as Linux)
//   - Locates setup.ps1 (Windows) or setup.sh (Unix-like) in the current
//     directory and refuses to guess if it is missing
//   - Forwards the launcher's own command-line arguments to the script,
//     quoting multi-word arguments so they survive word-splitting
//   - Logs progress to the console and to a per-day logs/setup_YYYYMMDD.log
//     file; log-file problems never interrupt a run
//   - Blocks until the script finishes and exits with the script's status
//
// Error handling strategy:
//   - An unresolvable working directory or a missing setup script aborts
//     immediately with exit code 1
//   - A failing setup script is reported once, with its exit code mirrored
//     as the launcher's own; there are no retries
//
// The actual provisioning work lives entirely in the platform scripts; the
// launcher's only contract with them is "executable, accepts forwarded
// arguments, returns a numeric exit status".
func main() {
	os.Exit(cmd.Execute())
}
