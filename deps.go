package pelagia

import (
	"fmt"
	"os/exec"

	"github.com/pelagia-docs/pelagia/internal/hints"
)

// Tool describes a required external binary.
type Tool struct {
	Name string // binary name probed on PATH
	Role string // what the pipeline uses it for
}

// RequiredTools lists the external binaries the pipeline invokes.
func RequiredTools() []Tool {
	return []Tool{
		{Name: "mmdc", Role: "mermaid diagram rendering"},
		{Name: "pandoc", Role: "markdown to PDF conversion"},
		{Name: "tectonic", Role: "PDF typesetting engine"},
	}
}

// lookPath is swapped out by tests.
var lookPath = exec.LookPath

// CheckDependencies probes PATH for every required binary. It runs before
// any rewriting work so a missing tool is reported before side effects.
func CheckDependencies() error {
	for _, tool := range RequiredTools() {
		if _, err := lookPath(tool.Name); err != nil {
			return fmt.Errorf("%w: %q (%s)%s",
				ErrDependencyMissing, tool.Name, tool.Role, hints.ForMissingTool(tool.Name))
		}
	}
	return nil
}
