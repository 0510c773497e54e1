package pelagia

import (
	"fmt"
	"strings"
)

// pageBreak is a raw LaTeX block forcing a page break between documents.
const pageBreak = "```{=latex}\n\\newpage\n```\n"

// Assemble concatenates rewritten documents into one markdown text: a
// table-of-contents directive followed by a page break, then each document in
// order with a page break between consecutive documents (none after the last).
func Assemble(docs []Document, tocDepth int) (string, error) {
	if len(docs) == 0 {
		return "", ErrEmptyAssembly
	}
	if tocDepth == 0 {
		tocDepth = DefaultTOCDepth
	}
	if err := validateTOCDepth(tocDepth); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(tocDirective(tocDepth))

	for i, doc := range docs {
		if i > 0 {
			sb.WriteString("\n")
			sb.WriteString(pageBreak)
			sb.WriteString("\n")
		}
		sb.WriteString(doc.Content)
		if !strings.HasSuffix(doc.Content, "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

// tocDirective emits the TOC at the requested depth and pushes the first
// document onto a fresh page.
func tocDirective(depth int) string {
	return fmt.Sprintf("```{=latex}\n\\setcounter{tocdepth}{%d}\n\\tableofcontents\n\\newpage\n```\n\n", depth)
}
