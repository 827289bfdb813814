package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"setup-launcher/internal/config"
	"setup-launcher/internal/logger"
	"setup-launcher/internal/platform"
)

// report is the YAML document printed by `setup-launcher info`: the detected
// platform, the setup script the launcher would run, and where today's log
// lines would go.
type report struct {
	Platform     string `yaml:"platform"`
	Script       string `yaml:"script"`
	ScriptPath   string `yaml:"script_path"`
	ScriptExists bool   `yaml:"script_exists"`
	LogFile      string `yaml:"log_file"`
}

// infoCmd reports what a launch would do without running anything.
// It exits 0 when the platform's setup script is present and 1 when it is
// missing, so it doubles as a pre-flight check in automation.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Report the detected platform and setup script status",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		wd, err := os.Getwd()
		if err != nil {
			logger.Error("Failed to get current directory")
			exitCode = 1
			return
		}

		k := platform.Detect()
		scriptPath := wd + k.Separator() + k.ScriptName()
		_, statErr := os.Stat(scriptPath)

		r := report{
			Platform:     k.String(),
			Script:       k.ScriptName(),
			ScriptPath:   scriptPath,
			ScriptExists: statErr == nil,
			LogFile:      config.Load().LogDir + k.Separator() + logger.FileName(time.Now()),
		}

		out, err := yaml.Marshal(r)
		if err != nil {
			logger.Error("Failed to render platform report: %v", err)
			exitCode = 1
			return
		}
		fmt.Print(string(out))

		if !r.ScriptExists {
			exitCode = 1
		}
	},
}
