package pelagia

import (
	"crypto/sha1" // #nosec G505 -- used for stable naming, not security
	"encoding/hex"
	"path/filepath"
	"regexp"
	"strings"
)

// Precompiled patterns for slug computation.
var (
	htmlTagPattern          = regexp.MustCompile(`<[^>]+>`)
	inlineMarkupPattern     = regexp.MustCompile("[`*~]")
	nonSlugCharPattern      = regexp.MustCompile(`[^a-z0-9\s_.\-]`)
	whitespaceRunPattern    = regexp.MustCompile(`\s+`)
	leadingNonLetterPattern = regexp.MustCompile(`^[^a-z]+`)
)

// Slugify derives the identifier pandoc's auto_identifiers extension assigns
// to a heading: lowercase, HTML tags and inline markup stripped, everything
// outside letters, digits, underscores, hyphens, and periods removed,
// whitespace runs replaced with a hyphen, and everything before the first
// letter dropped (identifiers may not begin with a digit or punctuation).
// Empty results fall back to "section".
//
// This must mirror the external toolchain's algorithm exactly; a mismatch
// produces links that silently dead-end inside the PDF.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = inlineMarkupPattern.ReplaceAllString(s, "")
	s = nonSlugCharPattern.ReplaceAllString(s, "")
	s = whitespaceRunPattern.ReplaceAllString(s, "-")
	s = leadingNonLetterPattern.ReplaceAllString(s, "")
	if s == "" {
		return "section"
	}
	return s
}

// fileSlug produces a stable, collision-free identifier for a file under
// root, used to namespace diagram artifact names. A short content hash of
// the relative path disambiguates files whose paths slug identically.
func fileSlug(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	posix := filepath.ToSlash(rel)
	stem := strings.TrimSuffix(posix, filepath.Ext(posix))

	sum := sha1.Sum([]byte(posix)) // #nosec G401 -- stable naming only
	return Slugify(strings.ReplaceAll(stem, "/", " ")) + "-" + hex.EncodeToString(sum[:])[:8]
}

// stemSlug slugs a file's base name without its extension, the fallback
// anchor for files that have no top-level heading.
func stemSlug(path string) string {
	base := filepath.Base(path)
	return Slugify(strings.TrimSuffix(base, filepath.Ext(base)))
}
