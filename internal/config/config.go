// Package config resolves the launcher's runtime settings.
//
// The launcher keeps no configuration files of its own; the only persistent
// artifact it writes is the dated log file. Settings therefore come solely
// from the environment, with sensible defaults when nothing is set.
package config

import "github.com/spf13/viper"

// Settings holds the resolved runtime settings for one launcher run.
type Settings struct {
	Debug  bool   // enable debug logging (SETUP_DEBUG)
	LogDir string // logs directory, relative to the working directory (SETUP_LOG_DIR)
}

// Load reads the launcher settings from SETUP_-prefixed environment
// variables. Load is total: unset or unparseable values fall back to the
// defaults (debug off, logs directory "logs").
func Load() Settings {
	v := viper.New()
	v.SetEnvPrefix("setup")
	v.AutomaticEnv()
	v.SetDefault("debug", false)
	v.SetDefault("log_dir", "logs")

	return Settings{
		Debug:  v.GetBool("debug"),
		LogDir: v.GetString("log_dir"),
	}
}
