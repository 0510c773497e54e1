package pelagia

import (
	"context"
	"errors"
	"fmt"
)

// PDFRenderer invokes the pandoc/tectonic toolchain to turn assembled
// markdown into a PDF. Responsibility ends at checking the exit status; the
// produced PDF is never parsed or validated.
type PDFRenderer struct {
	Runner CommandRunner
}

// Render converts the markdown file at inputPath to a PDF at outputPath.
// resourcePaths are searched by pandoc for images; title, when non-empty, is
// passed through as document metadata.
func (r *PDFRenderer) Render(ctx context.Context, inputPath, outputPath, resourcePath, title string) error {
	args := []string{
		inputPath,
		"--pdf-engine=tectonic",
		"--resource-path=" + resourcePath,
		"-V", "colorlinks=true",
		"-V", "linkcolor=blue",
		"-V", "urlcolor=blue",
		"-o", outputPath,
	}
	if title != "" {
		args = append(args, "-V", "title="+title)
	}

	_, stderr, err := r.Runner.Run(ctx, "pandoc", args...)
	if err != nil {
		if errors.Is(err, ErrRenderTimeout) {
			return fmt.Errorf("rendering PDF: %w", err)
		}
		if msg := firstLine(stderr); msg != "" {
			return fmt.Errorf("%w: %s: %v", ErrPDFRender, msg, err)
		}
		return fmt.Errorf("%w: %v", ErrPDFRender, err)
	}
	return nil
}
