package cmd

import (
	"github.com/spf13/cobra"

	"setup-launcher/internal/config"
	"setup-launcher/internal/launcher"
	"setup-launcher/internal/logger"
)

// exitCode is the exit status the launcher terminates with. Commands record
// their outcome here and Execute hands it back to main.
var exitCode int

// rootCmd is the launcher itself. Flag parsing is disabled on purpose: the
// launcher defines no flags of its own, and everything after the program
// name is forwarded verbatim to the platform's setup script. Subcommands
// still resolve on the first argument, so first arguments named `info` or
// `help` address the launcher rather than the script; the default
// `completion` command is disabled to keep that collision surface small.
var rootCmd = &cobra.Command{
	Use:   "setup-launcher [script arguments...]",
	Short: "Cross-platform setup script launcher",
	Long: `setup-launcher detects the host operating system, locates the matching
setup script (setup.ps1 on Windows, setup.sh on Unix-like systems) in the
current directory, and runs it with all given arguments forwarded. The
script's exit status becomes the launcher's own.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},

	Run: func(cmd *cobra.Command, args []string) {
		exitCode = launcher.New().Run(args)
	},
}

// Execute configures logging from the environment, runs the selected command,
// and returns the exit status for main to pass to os.Exit.
func Execute() int {
	settings := config.Load()
	logger.Init(settings.Debug)
	logger.SetDir(settings.LogDir)

	rootCmd.AddCommand(infoCmd)

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return exitCode
}
