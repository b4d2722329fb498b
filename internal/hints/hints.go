// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-pageexport/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for a PDF snapshot whose browser failed
// to start. The HTML export needs no browser, so dropping --pdf always works.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "snapshots in Docker/CI usually need ROD_NO_SANDBOX=1")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "point ROD_BROWSER_BIN at a local Chrome for snapshots")
	}

	hints = append(hints, "omit --pdf to write the HTML page alone")
	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeouts for slow operations.
func ForTimeout() string {
	return format("for pages with many large images, raise --timeout or --fetch-timeout")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-pageexport/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for pages that could not be written.
func ForOutputDirectory() string {
	return format("the --output directory (or the project's directory when unset) must be writable; it is created if missing")
}

// ForProjectDecode returns hints for project files that fail to decode.
func ForProjectDecode() string {
	return format("unknown keys are rejected; check spelling and indentation of each section")
}

// ForAssetPath returns hints for an unusable custom asset directory.
func ForAssetPath() string {
	return format("--asset-path must be an existing directory; files missing there fall back to built-in assets")
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
