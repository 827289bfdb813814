package logger

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDir points the file sink at a fresh directory for the duration of
// one test. The logger's directory is package state, so these tests must not
// run in parallel.
func useTempDir(t *testing.T) string {
	t.Helper()
	logDir := filepath.Join(t.TempDir(), "logs")
	SetDir(logDir)
	t.Cleanup(func() { SetDir("logs") })
	return logDir
}

func readLogFile(t *testing.T, logDir string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(logDir, FileName(time.Now())))
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestFileName(t *testing.T) {
	ts := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "setup_20260831.log", FileName(ts))
}

func TestInfoAppendsOneLinePerCall(t *testing.T) {
	logDir := useTempDir(t)

	Info("first %s", "message")
	Info("second message")

	lines := readLogFile(t, logDir)
	require.Len(t, lines, 2)

	format := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[INFO\] first message$`)
	assert.Regexp(t, format, lines[0])
	assert.Contains(t, lines[1], "[INFO] second message")
}

func TestErrorLevelInFileLine(t *testing.T) {
	logDir := useTempDir(t)

	Error("something broke: %d", 7)

	lines := readLogFile(t, logDir)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[ERROR] something broke: 7")
}

func TestWarnLevelInFileLine(t *testing.T) {
	logDir := useTempDir(t)

	Warn("could not make %s executable", "setup.sh")

	lines := readLogFile(t, logDir)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[WARN] could not make setup.sh executable")
}

func TestDebugSuppressedUnlessEnabled(t *testing.T) {
	logDir := useTempDir(t)

	Init(false)
	Debug("hidden")
	_, err := os.ReadFile(filepath.Join(logDir, FileName(time.Now())))
	assert.True(t, os.IsNotExist(err))

	Init(true)
	t.Cleanup(func() { Init(false) })
	Debug("visible")
	lines := readLogFile(t, logDir)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[DEBUG] visible")
}

func TestUnwritableLogDirIsSilent(t *testing.T) {
	// Point the file sink at a path that is a regular file: MkdirAll fails,
	// the file write is skipped, and the call must still return normally.
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	SetDir(blocker)
	t.Cleanup(func() { SetDir("logs") })

	assert.NotPanics(t, func() {
		Info("console only")
		Error("still console only")
	})
}

func TestSetDirIgnoresEmptyString(t *testing.T) {
	logDir := useTempDir(t)

	SetDir("")
	Info("after empty SetDir")

	lines := readLogFile(t, logDir)
	require.Len(t, lines, 1)
}
