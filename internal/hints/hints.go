// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"runtime"
	"strings"
)

// pandocInstallURL is the upstream installation guide.
const pandocInstallURL = "https://pandoc.org/installing.html"

// GOOS reports the target platform. Tests override it.
var GOOS = func() string {
	return runtime.GOOS
}

// ForConverterNotFound returns hints for a converter missing from PATH,
// with a package-manager suggestion for the current platform.
func ForConverterNotFound() string {
	hints := []string{"install Pandoc and make sure it is on your PATH: " + pandocInstallURL}

	switch GOOS() {
	case "darwin":
		hints = append(hints, "brew install pandoc")
	case "windows":
		hints = append(hints, "winget install --source winget --exact --id JohnMacFarlane.Pandoc")
	case "linux":
		hints = append(hints, "apt install pandoc, dnf install pandoc, or your distribution's equivalent")
	}

	return formatHints(hints)
}

// ForConverterVersion returns a hint for a converter that is found but does
// not answer --version.
func ForConverterVersion() string {
	return format("run the converter with --version to check the installation")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and creating a config in ~/.config/go-md2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable, or pass --out")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
