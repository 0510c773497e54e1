package pelagia

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// heading is one ATX heading extracted from a document.
type heading struct {
	level int
	title string
}

// anchorIndex maps each collected file to the identifier its first top-level
// heading will receive once pandoc generates the assembled document's TOC,
// and records every heading's assigned identifier per file so fragment links
// can be resolved against their target file.
//
// Identifiers are assigned the way pandoc assigns them: every heading of
// every file, in final assembly order, gets the slug of its text, with
// repeated slugs suffixed -1, -2, and so on. Files without a level-1 heading
// fall back to a filename-derived slug and need an explicit anchor span
// injected at the top of their content.
type anchorIndex struct {
	byFile   map[string]string            // abs path -> anchor identifier
	spans    map[string]string            // abs path -> explicit span id to inject
	headings map[string]map[string]string // abs path -> heading slug -> assigned identifier
}

// buildAnchorIndex enumerates headings across all documents in order.
func buildAnchorIndex(docs []Document) *anchorIndex {
	ix := &anchorIndex{
		byFile:   make(map[string]string, len(docs)),
		spans:    make(map[string]string),
		headings: make(map[string]map[string]string, len(docs)),
	}

	counts := make(map[string]int)
	unique := func(base string) string {
		n := counts[base]
		counts[base] = n + 1
		if n == 0 {
			return base
		}
		return fmt.Sprintf("%s-%d", base, n)
	}

	for _, doc := range docs {
		headings := extractHeadings(doc.Content)
		fileIDs := make(map[string]string, len(headings))
		ix.headings[doc.Path] = fileIDs

		hasTopLevel := false
		for _, h := range headings {
			if h.level == 1 {
				hasTopLevel = true
				break
			}
		}
		if !hasTopLevel {
			id := unique(stemSlug(doc.Path))
			ix.byFile[doc.Path] = id
			ix.spans[doc.Path] = id
		}

		for _, h := range headings {
			base := Slugify(h.title)
			id := unique(base)
			// First occurrence wins within a file, matching how pandoc
			// resolves an ambiguous in-document reference.
			if _, taken := fileIDs[base]; !taken {
				fileIDs[base] = id
			}
			if _, seen := ix.byFile[doc.Path]; h.level == 1 && !seen {
				ix.byFile[doc.Path] = id
			}
		}
	}
	return ix
}

// extractHeadings parses content and returns its ATX headings in order.
func extractHeadings(content string) []heading {
	src := []byte(content)
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var headings []heading
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			headings = append(headings, heading{
				level: h.Level,
				title: nodeText(h, src),
			})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return headings
}

// nodeText concatenates the literal text of a node's inline children.
func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	collectText(n, src, &sb)
	return sb.String()
}

func collectText(n ast.Node, src []byte, sb *strings.Builder) {
	switch t := n.(type) {
	case *ast.Text:
		sb.Write(t.Segment.Value(src))
	case *ast.String:
		sb.Write(t.Value)
	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			collectText(c, src, sb)
		}
	}
}
