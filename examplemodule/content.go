package examplemodule

import (
	"strings"

	"github.com/wavemaster/wavemod/fileref"
	"github.com/wavemaster/wavemod/workspace"
)

// defaultQuery is used when removing a file reference leaves no query text.
const defaultQuery = "Please process this content"

// sourceDirect labels content that carried no file reference.
const sourceDirect = "direct_input"

// FileReference is the structured record produced when content embeds a
// filename-like or URL-like token.
type FileReference struct {
	FileRef  string // the token as it appeared in the content
	FilePath string // resolved path in the files area ("" for URLs)
	IsURL    bool
	Query    string // content with the reference removed, or defaultQuery
}

// Content is a handler's input: either plain text or text plus a resolved
// file reference. Raw always holds the original content string so handlers
// that parse their own sub-format (save's "name:content") see it untouched.
type Content struct {
	Raw string
	Ref *FileReference
}

// Query returns the effective query text.
func (c Content) Query() string {
	if c.Ref != nil {
		return c.Ref.Query
	}
	return c.Raw
}

// Source returns a label for where the content came from: the file reference
// or URL if one was detected, otherwise direct input.
func (c Content) Source() string {
	if c.Ref != nil {
		return c.Ref.FileRef
	}
	return sourceDirect
}

// Remote reports whether the content references a remote resource.
func (c Content) Remote() bool {
	return c.Ref != nil && c.Ref.IsURL
}

// locality renders Remote as the narrative label used in output files.
func (c Content) locality() string {
	if c.Remote() {
		return "remote"
	}
	return "local"
}

// resolveContent scans raw content for an embedded file reference and, if one
// is found, attaches the structured record. Resolution failures (e.g. a
// traversal-shaped token) degrade to plain content rather than failing the
// whole call.
func (m *Module) resolveContent(raw string) Content {
	ref, ok := fileref.Extract(raw)
	if !ok {
		return Content{Raw: raw}
	}

	var filePath string
	if !fileref.IsURL(ref) {
		path, err := m.ws.Resolve(ref, workspace.AreaFiles)
		if err != nil {
			m.log.Warn("file reference did not resolve", "ref", ref, "error", err)
			return Content{Raw: raw}
		}
		filePath = path
	}

	query := strings.TrimSpace(strings.Replace(raw, ref, "", 1))
	if query == "" {
		query = defaultQuery
	}

	return Content{
		Raw: raw,
		Ref: &FileReference{
			FileRef:  ref,
			FilePath: filePath,
			IsURL:    fileref.IsURL(ref),
			Query:    query,
		},
	}
}
