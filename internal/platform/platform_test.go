package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindConstants(t *testing.T) {
	tests := []struct {
		kind       Kind
		name       string
		family     string
		scriptName string
		separator  string
		execFix    bool
	}{
		{kind: Windows, name: "Windows", family: "Windows", scriptName: "setup.ps1", separator: `\`, execFix: false},
		{kind: MacOS, name: "macOS", family: "Unix", scriptName: "setup.sh", separator: "/", execFix: true},
		{kind: Linux, name: "Linux", family: "Unix", scriptName: "setup.sh", separator: "/", execFix: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.family, tt.kind.Family())
			assert.Equal(t, tt.scriptName, tt.kind.ScriptName())
			assert.Equal(t, tt.separator, tt.kind.Separator())
			assert.Equal(t, tt.execFix, tt.kind.NeedsExecFix())
		})
	}
}

func TestDetectMatchesHost(t *testing.T) {
	k := Detect()
	switch runtime.GOOS {
	case "windows":
		assert.Equal(t, Windows, k)
	case "darwin":
		assert.Equal(t, MacOS, k)
	default:
		// Everything else, including the BSDs, is handled as Linux.
		assert.Equal(t, Linux, k)
	}
}
