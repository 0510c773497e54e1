package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	pelagia "github.com/pelagia-docs/pelagia"
	"github.com/pelagia-docs/pelagia/internal/hints"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status string     `json:"status"` // "ready" or "errors"
	Tools  []toolInfo `json:"tools"`
	System systemInfo `json:"system"`
	Errors []string   `json:"errors,omitempty"`
}

// toolInfo holds detection results for one external binary.
type toolInfo struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	TempWritable bool   `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = ready, 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	for _, tool := range pelagia.RequiredTools() {
		info := toolInfo{Name: tool.Name, Role: tool.Role}
		if path, err := exec.LookPath(tool.Name); err == nil {
			info.Found = true
			info.Path = path
			info.Version = toolVersion(path)
		} else {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s not found in PATH%s", tool.Name, hints.ForMissingTool(tool.Name)))
		}
		result.Tools = append(result.Tools, info)
	}

	result.System.TempWritable = tempWritable()
	if !result.System.TempWritable {
		result.Errors = append(result.Errors, "temp directory is not writable")
	}

	if len(result.Errors) > 0 {
		result.Status = "errors"
	}
	return result
}

// toolVersion runs `<tool> --version` and returns the first output line.
func toolVersion(path string) string {
	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- path from LookPath
	if err != nil {
		return ""
	}
	if i := strings.IndexByte(string(out), '\n'); i >= 0 {
		return strings.TrimSpace(string(out[:i]))
	}
	return strings.TrimSpace(string(out))
}

// tempWritable checks that a temp file can be created and removed.
func tempWritable() bool {
	f, err := os.CreateTemp("", "pelagia-doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

// printDoctorResult renders human-readable diagnostics.
func printDoctorResult(w io.Writer, result *doctorResult) {
	fmt.Fprintf(w, "pelagia doctor (%s/%s)\n\n", result.System.OS, result.System.Arch)

	for _, tool := range result.Tools {
		if tool.Found {
			fmt.Fprintf(w, "  ok   %-8s %s", tool.Name, tool.Path)
			if tool.Version != "" {
				fmt.Fprintf(w, " (%s)", tool.Version)
			}
			fmt.Fprintln(w)
		} else {
			fmt.Fprintf(w, "  MISS %-8s %s\n", tool.Name, tool.Role)
		}
	}

	if result.System.TempWritable {
		fmt.Fprintln(w, "  ok   temp dir writable")
	} else {
		fmt.Fprintln(w, "  MISS temp dir not writable")
	}

	fmt.Fprintln(w)
	if result.Status == "ready" {
		fmt.Fprintln(w, "Status: ready")
	} else {
		fmt.Fprintln(w, "Status: errors")
		for _, e := range result.Errors {
			fmt.Fprintf(w, "  - %s\n", e)
		}
	}
}
