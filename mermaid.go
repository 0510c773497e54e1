package pelagia

import (
	"context"
	"crypto/sha1" // #nosec G505 -- used for stable naming, not security
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pelagia-docs/pelagia/internal/fileutil"
)

// Precompiled patterns for mermaid fence detection and source normalization.
var (
	mermaidFencePattern = regexp.MustCompile("(?i)^```mermaid\\s*$")
	fenceEndPattern     = regexp.MustCompile("^```\\s*$")

	flowHeaderPattern = regexp.MustCompile(`(?m)^(flowchart|graph)\s+[A-Z]{2}\b`)

	// Literal \n sequences inside labels; mermaid has no line breaks there.
	escapedNewlineParenPattern = regexp.MustCompile(`\\n\s*\(`)
	escapedNewlinePattern      = regexp.MustCompile(`\\n`)

	// Labels containing parentheses must be quoted or mmdc rejects them.
	edgeLabelPattern = regexp.MustCompile(`(--+[->]?)\|([^|]+)\|`)
	nodeLabelPattern = regexp.MustCompile(`(\w+)?\[([^\]]+)\]`)
)

// DiagramRenderer rewrites fenced mermaid blocks into image references,
// rendering each block to a PNG in Dir via the external mmdc binary.
type DiagramRenderer struct {
	Runner  CommandRunner
	Dir     string // diagram output directory, must exist
	Options DiagramOptions
}

// Rewrite replaces every fenced mermaid block in content with a markdown
// image reference to a freshly rendered PNG. keyPrefix namespaces artifact
// names per source file. Returns the rewritten text and the number of
// diagrams rendered.
//
// A renderer failure aborts the run: a silently skipped diagram degrades the
// output in a way readers cannot detect.
func (r *DiagramRenderer) Rewrite(ctx context.Context, content, keyPrefix string) (string, int, error) {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	rendered := 0

	for i := 0; i < len(lines); {
		if !mermaidFencePattern.MatchString(lines[i]) {
			out = append(out, lines[i])
			i++
			continue
		}

		i++ // skip opening fence
		var block []string
		for i < len(lines) && !fenceEndPattern.MatchString(lines[i]) {
			block = append(block, lines[i])
			i++
		}
		if i >= len(lines) {
			return "", rendered, ErrUnterminatedFence
		}
		i++ // skip closing fence

		src := normalizeMermaid(strings.TrimSpace(strings.Join(block, "\n"))+"\n", r.Options.FlowDirection)
		imagePath, err := r.render(ctx, src, keyPrefix, rendered)
		if err != nil {
			return "", rendered, err
		}

		out = append(out, "![]("+filepath.ToSlash(imagePath)+")")
		rendered++
	}

	return strings.Join(out, "\n"), rendered, nil
}

// render writes the block source to disk and invokes mmdc.
func (r *DiagramRenderer) render(ctx context.Context, src, keyPrefix string, idx int) (string, error) {
	sum := sha1.Sum([]byte(src)) // #nosec G401 -- stable naming only
	base := fmt.Sprintf("mermaid-%s-%d-%s", keyPrefix, idx, hex.EncodeToString(sum[:])[:12])
	inPath := filepath.Join(r.Dir, base+".mmd")
	outPath := filepath.Join(r.Dir, base+".png")

	if err := os.WriteFile(inPath, []byte(src), 0o644); err != nil {
		return "", fmt.Errorf("writing diagram source: %w", err)
	}

	width, height := r.Options.effectiveSize()
	_, stderr, err := r.Runner.Run(ctx, "mmdc",
		"-i", inPath,
		"-o", outPath,
		"-w", strconv.Itoa(width),
		"-H", strconv.Itoa(height),
		"-b", "transparent",
	)
	if err != nil {
		if errors.Is(err, ErrRenderTimeout) {
			return "", fmt.Errorf("diagram %d: %w", idx, err)
		}
		if msg := firstLine(stderr); msg != "" {
			return "", fmt.Errorf("%w: diagram %d: %s: %v", ErrDiagramRender, idx, msg, err)
		}
		return "", fmt.Errorf("%w: diagram %d: %v", ErrDiagramRender, idx, err)
	}
	if !fileutil.FileExists(outPath) {
		return "", fmt.Errorf("%w: diagram %d: renderer produced no output file", ErrDiagramRender, idx)
	}

	return outPath, nil
}

// normalizeMermaid repairs common mermaid source issues before rendering and
// applies the flow-direction override.
func normalizeMermaid(src, flowDirection string) string {
	if flowDirection != "" {
		src = flowHeaderPattern.ReplaceAllString(src, "$1 "+flowDirection)
	}

	src = escapedNewlineParenPattern.ReplaceAllString(src, " (")
	src = escapedNewlinePattern.ReplaceAllString(src, " ")

	src = edgeLabelPattern.ReplaceAllStringFunc(src, quoteEdgeLabel)
	src = nodeLabelPattern.ReplaceAllStringFunc(src, quoteNodeLabel)
	return src
}

// quoteEdgeLabel quotes -->|text (parens)| edge labels.
func quoteEdgeLabel(match string) string {
	groups := edgeLabelPattern.FindStringSubmatch(match)
	arrow, label := groups[1], groups[2]
	if strings.HasPrefix(label, `"`) || !strings.ContainsAny(label, "()") {
		return match
	}
	return arrow + `|"` + label + `"|`
}

// quoteNodeLabel quotes ID[text (parens)] node labels.
func quoteNodeLabel(match string) string {
	groups := nodeLabelPattern.FindStringSubmatch(match)
	prefix, label := groups[1], groups[2]
	if strings.HasPrefix(label, `"`) || !strings.ContainsAny(label, "()") {
		return match
	}
	return prefix + `["` + label + `"]`
}
