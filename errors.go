package pelagia

import "errors"

// Sentinel errors for library operations.
var (
	// Discovery errors.
	ErrFolderNotFound    = errors.New("folder does not exist")
	ErrNoMarkdownFiles   = errors.New("no markdown files found")
	ErrStartFileNotFound = errors.New("start file not found in folder scan")
	ErrNotMarkdown       = errors.New("file must have .md or .markdown extension")

	// Rewriting errors.
	ErrUnterminatedFence = errors.New("unterminated ```mermaid block")
	ErrDiagramRender     = errors.New("mermaid diagram rendering failed")

	// Assembly errors.
	ErrEmptyAssembly   = errors.New("no documents to assemble")
	ErrInvalidTOCDepth = errors.New("invalid TOC depth")

	// PDF rendering errors.
	ErrPDFRender     = errors.New("PDF rendering failed")
	ErrRenderTimeout = errors.New("renderer timed out")

	// Environment errors.
	ErrDependencyMissing = errors.New("required tool not found in PATH")

	// Input validation errors.
	ErrMissingInput          = errors.New("missing required input")
	ErrInvalidDiagramOptions = errors.New("invalid diagram options")
)
