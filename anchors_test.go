package pelagia

import (
	"reflect"
	"testing"
)

func TestBuildAnchorIndex(t *testing.T) {
	t.Parallel()

	t.Run("first top-level heading wins", func(t *testing.T) {
		t.Parallel()

		docs := []Document{
			{Path: "/d/readme.md", Content: "# Intro\n\n## Details\n\n# Second Top\n"},
			{Path: "/d/other.md", Content: "# Other\n"},
		}
		ix := buildAnchorIndex(docs)

		if got := ix.byFile["/d/readme.md"]; got != "intro" {
			t.Errorf("readme anchor = %q, want %q", got, "intro")
		}
		if got := ix.byFile["/d/other.md"]; got != "other" {
			t.Errorf("other anchor = %q, want %q", got, "other")
		}
		if len(ix.spans) != 0 {
			t.Errorf("spans = %v, want none", ix.spans)
		}
	})

	t.Run("repeated headings deduplicated in assembly order", func(t *testing.T) {
		t.Parallel()

		docs := []Document{
			{Path: "/d/a.md", Content: "# Overview\n"},
			{Path: "/d/b.md", Content: "# Overview\n"},
			{Path: "/d/c.md", Content: "# Overview\n"},
		}
		ix := buildAnchorIndex(docs)

		want := map[string]string{
			"/d/a.md": "overview",
			"/d/b.md": "overview-1",
			"/d/c.md": "overview-2",
		}
		if !reflect.DeepEqual(ix.byFile, want) {
			t.Errorf("byFile = %v, want %v", ix.byFile, want)
		}
	})

	t.Run("lower-level headings consume identifiers too", func(t *testing.T) {
		t.Parallel()

		docs := []Document{
			{Path: "/d/a.md", Content: "# Setup\n\n## Usage\n"},
			{Path: "/d/b.md", Content: "# Usage\n"},
		}
		ix := buildAnchorIndex(docs)

		if got := ix.byFile["/d/b.md"]; got != "usage-1" {
			t.Errorf("b.md anchor = %q, want %q (a.md's ## Usage takes the base slug)", got, "usage-1")
		}
	})

	t.Run("per-file heading identifiers recorded", func(t *testing.T) {
		t.Parallel()

		docs := []Document{
			{Path: "/d/a.md", Content: "# Alpha\n\n## Setup\n"},
			{Path: "/d/b.md", Content: "# Beta\n\n## Setup\n"},
		}
		ix := buildAnchorIndex(docs)

		if got := ix.headings["/d/a.md"]["setup"]; got != "setup" {
			t.Errorf("a.md setup id = %q, want %q", got, "setup")
		}
		if got := ix.headings["/d/b.md"]["setup"]; got != "setup-1" {
			t.Errorf("b.md setup id = %q, want %q", got, "setup-1")
		}
	})

	t.Run("repeated heading within one file keeps its first identifier", func(t *testing.T) {
		t.Parallel()

		docs := []Document{
			{Path: "/d/a.md", Content: "# Guide\n\n## Usage\n\n## Usage\n"},
		}
		ix := buildAnchorIndex(docs)

		if got := ix.headings["/d/a.md"]["usage"]; got != "usage" {
			t.Errorf("usage id = %q, want %q", got, "usage")
		}
	})

	t.Run("headingless file falls back to filename and needs a span", func(t *testing.T) {
		t.Parallel()

		docs := []Document{
			{Path: "/d/notes.md", Content: "just prose, no headings\n"},
		}
		ix := buildAnchorIndex(docs)

		if got := ix.byFile["/d/notes.md"]; got != "notes" {
			t.Errorf("anchor = %q, want %q", got, "notes")
		}
		if got := ix.spans["/d/notes.md"]; got != "notes" {
			t.Errorf("span = %q, want %q", got, "notes")
		}
	})

	t.Run("file with only subheadings falls back to filename", func(t *testing.T) {
		t.Parallel()

		docs := []Document{
			{Path: "/d/appendix.md", Content: "## Tables\n\n### Figures\n"},
		}
		ix := buildAnchorIndex(docs)

		if got := ix.byFile["/d/appendix.md"]; got != "appendix" {
			t.Errorf("anchor = %q, want %q", got, "appendix")
		}
		if _, ok := ix.spans["/d/appendix.md"]; !ok {
			t.Error("expected an explicit span for a file without a top-level heading")
		}
	})
}

func TestExtractHeadings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []heading
	}{
		{
			name:     "atx levels",
			content:  "# One\n\n## Two\n\n### Three\n",
			expected: []heading{{1, "One"}, {2, "Two"}, {3, "Three"}},
		},
		{
			name:     "inline markup flattened",
			content:  "# The `Run` *method*\n",
			expected: []heading{{1, "The Run method"}},
		},
		{
			name:     "heading inside code fence ignored",
			content:  "```\n# not a heading\n```\n\n# Real\n",
			expected: []heading{{1, "Real"}},
		},
		{
			name:     "no headings",
			content:  "plain text\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := extractHeadings(tt.content)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("extractHeadings() = %v, want %v", got, tt.expected)
			}
		})
	}
}
