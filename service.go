package pelagia

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Service orchestrates the folder-to-PDF pipeline. Processing is strictly
// sequential: discovery, one rewriting pass per file, assembly, then a single
// PDF render.
type Service struct {
	cfg       serviceConfig
	runner    CommandRunner
	checkDeps func() error
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:       serviceConfig{timeout: defaultTimeout},
		checkDeps: CheckDependencies,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runner == nil {
		s.runner = &ExecRunner{}
	}
	return s
}

// Convert runs the full pipeline and writes the PDF to input.OutputPath.
// The context is used for cancellation; each subprocess additionally runs
// under the configured timeout.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkDeps(); err != nil {
		return nil, err
	}

	folder, err := filepath.Abs(input.FolderPath)
	if err != nil {
		return nil, err
	}

	startPath, err := resolveStartPath(folder, input.StartFile)
	if err != nil {
		return nil, err
	}

	files, err := CollectMarkdown(folder)
	if err != nil {
		return nil, err
	}
	files, err = RotateToStart(files, startPath)
	if err != nil {
		return nil, err
	}

	workDir, created, err := resolveWorkDir(input.WorkDir)
	if err != nil {
		return nil, err
	}
	keep := input.KeepArtifacts || input.WorkDir != ""
	defer func() {
		if created && !keep {
			_ = os.RemoveAll(workDir)
		}
	}()

	diagramsDir := filepath.Join(workDir, "diagrams")
	if err := os.MkdirAll(diagramsDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating diagrams directory: %w", err)
	}

	docs, err := readDocuments(files)
	if err != nil {
		return nil, err
	}

	anchors := buildAnchorIndex(docs)
	links := newLinkIndex(folder, anchors, files)

	runner := &timeoutRunner{base: s.runner, d: s.cfg.timeout}
	diagrams := &DiagramRenderer{Runner: runner, Dir: diagramsDir, Options: input.Diagram}

	totalDiagrams := 0
	for i := range docs {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		content, n, err := diagrams.Rewrite(ctx, docs[i].Content, fileSlug(folder, docs[i].Path))
		if err != nil {
			return nil, fmt.Errorf("rewriting diagrams in %s: %w", docs[i].Path, err)
		}
		totalDiagrams += n

		content = links.rewriteLinks(content, docs[i].Path)

		// Files without a top-level heading get an explicit anchor span so
		// inbound links still land somewhere.
		if id, ok := anchors.spans[docs[i].Path]; ok {
			content = "[]{#" + id + "}\n\n" + content
		}
		docs[i].Content = content
	}

	assembled, err := Assemble(docs, input.TOCDepth)
	if err != nil {
		return nil, err
	}

	combinedPath := filepath.Join(workDir, "combined.md")
	if err := os.WriteFile(combinedPath, []byte(assembled), 0o644); err != nil {
		return nil, fmt.Errorf("writing assembled markdown: %w", err)
	}

	if dir := filepath.Dir(input.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	resourcePath := folder + string(os.PathListSeparator) + diagramsDir
	pdf := &PDFRenderer{Runner: runner}
	if err := pdf.Render(ctx, combinedPath, input.OutputPath, resourcePath, input.Title); err != nil {
		return nil, err
	}

	return &Result{
		OutputPath:    input.OutputPath,
		WorkDir:       workDir,
		ArtifactsKept: keep,
		Files:         len(docs),
		Diagrams:      totalDiagrams,
	}, nil
}

// resolveStartPath normalizes the start file to an absolute markdown path.
func resolveStartPath(folder, start string) (string, error) {
	if !isMarkdownPath(start) {
		return "", fmt.Errorf("%w: %s", ErrNotMarkdown, start)
	}
	if filepath.IsAbs(start) {
		return filepath.Clean(start), nil
	}
	return filepath.Join(folder, start), nil
}

// resolveWorkDir returns the working directory, creating a temp dir when none
// is pinned. The second return reports whether this run created it.
func resolveWorkDir(workDir string) (string, bool, error) {
	if workDir != "" {
		if err := os.MkdirAll(workDir, 0o750); err != nil {
			return "", false, fmt.Errorf("creating work directory: %w", err)
		}
		return workDir, false, nil
	}
	dir, err := os.MkdirTemp("", "pelagia-")
	if err != nil {
		return "", false, fmt.Errorf("creating work directory: %w", err)
	}
	return dir, true, nil
}

// readDocuments loads every collected file once, in order.
func readDocuments(files []string) ([]Document, error) {
	docs := make([]Document, 0, len(files))
	for _, f := range files {
		content, err := os.ReadFile(f) // #nosec G304 -- paths come from the folder walk
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		docs = append(docs, Document{Path: f, Content: string(content)})
	}
	return docs, nil
}
