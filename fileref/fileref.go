// Package fileref detects file references and URLs embedded in query text.
// It recognises the file extensions and URL schemes the example module
// advertises in its capability descriptor.
package fileref

import (
	"regexp"
	"strings"
)

// urlPattern matches http/https URLs up to the next whitespace.
var urlPattern = regexp.MustCompile(`https?://\S+`)

// filePattern matches filename-like tokens with a recognised extension.
// Path separators are allowed so "docs/notes.md" resolves as one token.
var filePattern = regexp.MustCompile(`[\w./\-]+\.(?:txt|json|csv|md)\b`)

// IsURL reports whether token looks like a remote resource.
func IsURL(token string) bool {
	return strings.HasPrefix(token, "http://") || strings.HasPrefix(token, "https://")
}

// Extract returns the first file reference or URL embedded in text.
// URLs take precedence over local filenames so that "analyze:
// https://example.com/data.json" resolves to the URL, not "data.json".
// The second return is false when text contains no reference.
func Extract(text string) (string, bool) {
	if m := urlPattern.FindString(text); m != "" {
		// Trailing punctuation is usually sentence structure, not the URL.
		return strings.TrimRight(m, ".,;:!?"), true
	}
	if m := filePattern.FindString(text); m != "" {
		return m, true
	}
	return "", false
}
