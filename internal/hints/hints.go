// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to
// error messages.
package hints

import "strings"

// installCommands maps each required tool to its install command.
var installCommands = map[string]string{
	"mmdc":     "npm install -g @mermaid-js/mermaid-cli",
	"pandoc":   "brew install pandoc (or see pandoc.org/installing)",
	"tectonic": "brew install tectonic (or see tectonic-typesetting.github.io)",
}

// ForMissingTool returns an install hint for a required external binary.
func ForMissingTool(name string) string {
	cmd, ok := installCommands[name]
	if !ok {
		return ""
	}
	return format("install with: " + cmd)
}

// ForTimeout returns a hint about increasing the timeout for slow renders.
func ForTimeout() string {
	return format("large diagrams or documents may need a longer --timeout")
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/pelagia") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// format renders a single hint line.
func format(text string) string {
	return "\n  hint: " + text
}
