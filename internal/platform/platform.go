// Package platform resolves which of the three supported operating system
// families the launcher is running on, and exposes the per-platform constants
// the rest of the launcher needs: the expected setup script name, the path
// separator, and whether the script requires an executable-permission fix-up
// before it can be invoked.
//
// Resolution happens once, is side-effect free, and cannot fail: any GOOS
// outside the recognized set is treated as Linux, i.e. the generic Unix case.
package platform

import "runtime"

// Kind identifies one of the three supported host platform families.
// Exactly one Kind is active per launcher run; it is resolved once by Detect
// and treated as read-only afterwards.
type Kind int

const (
	// Windows covers all Windows hosts; setup runs through PowerShell.
	Windows Kind = iota
	// MacOS covers Darwin hosts; setup runs through the POSIX shell script.
	MacOS
	// Linux covers Linux hosts and doubles as the fallback for any
	// unrecognized GOOS, which is handled as a generic Unix system.
	Linux
)

// traits bundles the constants derived from a Kind. Keeping them in a table
// keyed by Kind (rather than scattering conditionals) means each platform's
// assumptions live in exactly one row.
type traits struct {
	name       string // human-readable platform name for log messages
	family     string // "Windows" or "Unix", used in script-related messages
	scriptName string // setup script expected in the working directory
	separator  string // path separator used when building the script path
	execFix    bool   // whether the script needs chmod +x before running
}

var table = map[Kind]traits{
	Windows: {name: "Windows", family: "Windows", scriptName: "setup.ps1", separator: `\`, execFix: false},
	MacOS:   {name: "macOS", family: "Unix", scriptName: "setup.sh", separator: "/", execFix: true},
	Linux:   {name: "Linux", family: "Unix", scriptName: "setup.sh", separator: "/", execFix: true},
}

// Detect resolves the host platform from the build target.
// Anything that is neither Windows nor Darwin falls through to Linux so the
// launcher keeps working on other Unix-likes (BSDs etc.) instead of refusing.
func Detect() Kind {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	default:
		return Linux
	}
}

// String returns the human-readable platform name, e.g. "macOS".
func (k Kind) String() string { return table[k].name }

// Family returns "Windows" or "Unix", matching how the setup scripts are
// referred to in log and console messages.
func (k Kind) Family() string { return table[k].family }

// ScriptName returns the setup script file name expected for this platform:
// setup.ps1 on Windows, setup.sh everywhere else.
func (k Kind) ScriptName() string { return table[k].scriptName }

// Separator returns the path separator used when joining the working
// directory with the script name.
func (k Kind) Separator() string { return table[k].separator }

// NeedsExecFix reports whether the setup script must be made executable
// before invocation. True on Unix-like platforms, false on Windows.
func (k Kind) NeedsExecFix() bool { return table[k].execFix }
