package pelagia

import (
	"testing"
)

// testLinkIndex builds an index for a small two-level docs tree.
func testLinkIndex() *linkIndex {
	docs := []Document{
		{Path: "/docs/readme.md", Content: "# Intro\n"},
		{Path: "/docs/other.md", Content: "# Other\n\n## Some Section\n"},
		{Path: "/docs/guide/setup.md", Content: "# Setup\n"},
	}
	anchors := buildAnchorIndex(docs)
	files := []string{"/docs/readme.md", "/docs/other.md", "/docs/guide/setup.md"}
	return newLinkIndex("/docs", anchors, files)
}

func TestRewriteLinks(t *testing.T) {
	t.Parallel()

	ix := testLinkIndex()

	tests := []struct {
		name        string
		content     string
		currentFile string
		expected    string
	}{
		{
			name:        "in-set link becomes anchor",
			content:     "see [other](other.md) for details",
			currentFile: "/docs/readme.md",
			expected:    "see [other](#other) for details",
		},
		{
			name:        "nested path from root",
			content:     "[setup](guide/setup.md)",
			currentFile: "/docs/readme.md",
			expected:    "[setup](#setup)",
		},
		{
			name:        "relative link from subdirectory",
			content:     "[back](../readme.md)",
			currentFile: "/docs/guide/setup.md",
			expected:    "[back](#intro)",
		},
		{
			name:        "folder name prefix stripped",
			content:     "[other](docs/other.md)",
			currentFile: "/docs/readme.md",
			expected:    "[other](#other)",
		},
		{
			name:        "unique basename match",
			content:     "[setup](anywhere/setup.md)",
			currentFile: "/docs/readme.md",
			expected:    "[setup](#setup)",
		},
		{
			name:        "fragment resolves to the target's heading",
			content:     "[details](other.md#Some Section)",
			currentFile: "/docs/readme.md",
			expected:    "[details](#some-section)",
		},
		{
			name:        "fragment naming no heading in the target unchanged",
			content:     "[details](other.md#Nonexistent Part)",
			currentFile: "/docs/readme.md",
			expected:    "[details](other.md#Nonexistent Part)",
		},
		{
			name:        "out-of-set link unchanged",
			content:     "[ext](../elsewhere/missing.md)",
			currentFile: "/docs/readme.md",
			expected:    "[ext](../elsewhere/missing.md)",
		},
		{
			name:        "url unchanged",
			content:     "[site](https://example.com/page.md)",
			currentFile: "/docs/readme.md",
			expected:    "[site](https://example.com/page.md)",
		},
		{
			name:        "mailto unchanged",
			content:     "[mail](mailto:docs@example.com)",
			currentFile: "/docs/readme.md",
			expected:    "[mail](mailto:docs@example.com)",
		},
		{
			name:        "pure anchor unchanged",
			content:     "[top](#intro)",
			currentFile: "/docs/readme.md",
			expected:    "[top](#intro)",
		},
		{
			name:        "non-markdown target unchanged",
			content:     "![diagram](images/arch.png)",
			currentFile: "/docs/readme.md",
			expected:    "![diagram](images/arch.png)",
		},
		{
			name:        "multiple links in one line",
			content:     "[a](other.md) and [b](guide/setup.md) and [c](x.txt)",
			currentFile: "/docs/readme.md",
			expected:    "[a](#other) and [b](#setup) and [c](x.txt)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ix.rewriteLinks(tt.content, tt.currentFile)
			if got != tt.expected {
				t.Errorf("rewriteLinks() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRewriteLinksDuplicateHeadingsAcrossFiles(t *testing.T) {
	t.Parallel()

	docs := []Document{
		{Path: "/docs/a.md", Content: "# Alpha\n\n## Setup\n"},
		{Path: "/docs/b.md", Content: "# Beta\n\n## Setup\n"},
	}
	anchors := buildAnchorIndex(docs)
	ix := newLinkIndex("/docs", anchors, []string{"/docs/a.md", "/docs/b.md"})

	t.Run("fragment lands in the linked file, not the first occurrence", func(t *testing.T) {
		t.Parallel()

		got := ix.rewriteLinks("[go](b.md#Setup)", "/docs/a.md")
		if got != "[go](#setup-1)" {
			t.Errorf("rewriteLinks() = %q, want %q", got, "[go](#setup-1)")
		}
	})

	t.Run("fragment into the first file keeps the base identifier", func(t *testing.T) {
		t.Parallel()

		got := ix.rewriteLinks("[back](a.md#Setup)", "/docs/b.md")
		if got != "[back](#setup)" {
			t.Errorf("rewriteLinks() = %q, want %q", got, "[back](#setup)")
		}
	})
}

func TestRewriteLinksUnderscoredHeading(t *testing.T) {
	t.Parallel()

	docs := []Document{
		{Path: "/docs/a.md", Content: "# Index\n"},
		{Path: "/docs/b.md", Content: "# foo_bar\n"},
	}
	anchors := buildAnchorIndex(docs)
	ix := newLinkIndex("/docs", anchors, []string{"/docs/a.md", "/docs/b.md"})

	// Underscores survive identifier assignment, so the rewritten anchor
	// matches what the PDF toolchain emits for the heading.
	got := ix.rewriteLinks("[see](b.md)", "/docs/a.md")
	if got != "[see](#foo_bar)" {
		t.Errorf("rewriteLinks() = %q, want %q", got, "[see](#foo_bar)")
	}
}

func TestRewriteLinksUnresolvedIsByteIdentical(t *testing.T) {
	t.Parallel()

	ix := testLinkIndex()
	content := "prefix [label]( ./missing/thing.md ) suffix [plain](nothing.md#frag)"

	got := ix.rewriteLinks(content, "/docs/readme.md")
	if got != content {
		t.Errorf("unresolved links must pass through unchanged:\n got %q\nwant %q", got, content)
	}
}

func TestLooksLikeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target   string
		expected bool
	}{
		{"https://example.com", true},
		{"http://example.com", true},
		{"ftp://host/file.md", true},
		{"mailto:a@b.c", true},
		{"other.md", false},
		{"../up/other.md", false},
		{"#anchor", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()

			if got := looksLikeURL(tt.target); got != tt.expected {
				t.Errorf("looksLikeURL(%q) = %v, want %v", tt.target, got, tt.expected)
			}
		})
	}
}
