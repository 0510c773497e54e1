package pelagia

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// Precompiled patterns for link rewriting.
var (
	inlineLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	urlSchemePattern  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+\-.]*://`)
)

// linkIndex resolves markdown link targets against the collected file set.
type linkIndex struct {
	root          string                       // absolute folder root
	anchorByRel   map[string]string            // slash-relative path -> anchor identifier
	headingsByRel map[string]map[string]string // slash-relative path -> heading slug -> identifier
}

// newLinkIndex builds the resolution table from collected files and their
// assigned anchors.
func newLinkIndex(root string, anchors *anchorIndex, files []string) *linkIndex {
	ix := &linkIndex{
		root:          root,
		anchorByRel:   make(map[string]string, len(files)),
		headingsByRel: make(map[string]map[string]string, len(files)),
	}
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		if err != nil {
			continue
		}
		key := filepath.ToSlash(rel)
		ix.anchorByRel[key] = anchors.byFile[f]
		ix.headingsByRel[key] = anchors.headings[f]
	}
	return ix
}

// rewriteLinks rewrites every inline link in content whose target resolves to
// a collected file into a same-document anchor link, preserving the label.
// Targets that do not resolve are left byte-for-byte unchanged: authors may
// legitimately link to files outside the processed set.
func (ix *linkIndex) rewriteLinks(content, currentFile string) string {
	return inlineLinkPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := inlineLinkPattern.FindStringSubmatch(match)
		label, target := groups[1], strings.TrimSpace(groups[2])

		if looksLikeURL(target) {
			return match
		}

		pathPart, fragment := splitFragment(target)
		pathPart = strings.TrimSpace(pathPart)

		// Pure anchors and empty targets are already document-internal.
		if pathPart == "" || strings.HasPrefix(pathPart, "#") {
			return match
		}
		if !isMarkdownPath(pathPart) {
			return match
		}

		rel, ok := ix.resolve(pathPart, currentFile)
		if !ok {
			return match
		}
		anchor := ix.anchorByRel[rel]
		if fragment != "" {
			// A fragment names a heading in the target file. Its identifier
			// must come from that file's own heading map: the same heading
			// text elsewhere in the assembly takes a different deduplicated
			// id, and guessing would land the link in the wrong file.
			id, found := ix.headingsByRel[rel][Slugify(fragment)]
			if !found {
				return match
			}
			anchor = id
		}
		return "[" + label + "](#" + anchor + ")"
	})
}

// resolve maps a link path to the root-relative key of a collected file,
// trying progressively looser strategies: exact root-relative match, relative
// to the linking file, folder-name prefix stripped, and finally a unique
// basename match.
func (ix *linkIndex) resolve(pathPart, currentFile string) (string, bool) {
	normalized := path.Clean(strings.ReplaceAll(pathPart, `\`, "/"))

	// Direct match: path is already relative to the folder root.
	if _, ok := ix.anchorByRel[normalized]; ok {
		return normalized, true
	}

	// Relative to the linking file, as long as it stays inside the root.
	if !filepath.IsAbs(pathPart) {
		resolved := filepath.Join(filepath.Dir(currentFile), filepath.FromSlash(normalized))
		if rel, err := filepath.Rel(ix.root, resolved); err == nil && !strings.HasPrefix(rel, "..") {
			key := filepath.ToSlash(rel)
			if _, ok := ix.anchorByRel[key]; ok {
				return key, true
			}
		}
	}

	// Authors sometimes prefix targets with the folder's own name.
	folderName := filepath.Base(ix.root)
	if trimmed, ok := strings.CutPrefix(normalized, folderName+"/"); ok {
		if _, found := ix.anchorByRel[trimmed]; found {
			return trimmed, true
		}
	}

	// Last resort: a basename that names exactly one collected file.
	if strings.Contains(normalized, "/") {
		base := path.Base(normalized)
		var key string
		matches := 0
		for rel := range ix.anchorByRel {
			if path.Base(rel) == base {
				key = rel
				matches++
			}
		}
		if matches == 1 {
			return key, true
		}
	}

	return "", false
}

// splitFragment splits a link target into its path and fragment parts.
func splitFragment(target string) (pathPart, fragment string) {
	if i := strings.Index(target, "#"); i >= 0 {
		return target[:i], target[i+1:]
	}
	return target, ""
}

// looksLikeURL reports whether the target is an external URL rather than a
// filesystem path.
func looksLikeURL(target string) bool {
	return urlSchemePattern.MatchString(target) || strings.HasPrefix(target, "mailto:")
}
