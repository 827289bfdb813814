package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	s := Load()
	assert.False(t, s.Debug)
	assert.Equal(t, "logs", s.LogDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SETUP_DEBUG", "true")
	t.Setenv("SETUP_LOG_DIR", "build/logs")

	s := Load()
	assert.True(t, s.Debug)
	assert.Equal(t, "build/logs", s.LogDir)
}
