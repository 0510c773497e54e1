package main

import (
	"errors"
	"os"

	pelagia "github.com/pelagia-docs/pelagia"
	"github.com/pelagia-docs/pelagia/internal/config"
)

// Exit codes for the pelagia CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Missing folder, start file, or markdown files
	ExitRender  = 4 // External renderer failures and missing tools
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Renderer errors (exit 4)
	if errors.Is(err, pelagia.ErrDependencyMissing) ||
		errors.Is(err, pelagia.ErrDiagramRender) ||
		errors.Is(err, pelagia.ErrPDFRender) ||
		errors.Is(err, pelagia.ErrRenderTimeout) {
		return ExitRender
	}

	// I/O and discovery errors (exit 3)
	if errors.Is(err, pelagia.ErrFolderNotFound) ||
		errors.Is(err, pelagia.ErrNoMarkdownFiles) ||
		errors.Is(err, pelagia.ErrStartFileNotFound) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrMissingFolder) ||
		errors.Is(err, ErrMissingStart) ||
		errors.Is(err, ErrMissingOutput) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, pelagia.ErrMissingInput) ||
		errors.Is(err, pelagia.ErrNotMarkdown) ||
		errors.Is(err, pelagia.ErrInvalidTOCDepth) ||
		errors.Is(err, pelagia.ErrInvalidDiagramOptions) ||
		errors.Is(err, pelagia.ErrUnterminatedFence) ||
		errors.Is(err, pelagia.ErrEmptyAssembly) {
		return ExitUsage
	}

	return ExitGeneral
}
