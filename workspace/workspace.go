// Package workspace resolves logical storage areas to concrete writable
// paths. The host shares one storage root across modules; each module writes
// into the files, temp, or downloads area and never outside the root.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Area is a logical storage area under the workspace root.
type Area string

const (
	// AreaFiles holds durable module output.
	AreaFiles Area = "files"
	// AreaTemp holds scratch output that may be cleaned between runs.
	AreaTemp Area = "temp"
	// AreaDownloads holds content retrieved from remote sources.
	AreaDownloads Area = "downloads"
)

// Valid reports whether a is one of the recognised areas.
func (a Area) Valid() bool {
	switch a {
	case AreaFiles, AreaTemp, AreaDownloads:
		return true
	}
	return false
}

// Workspace maps logical areas to directories under a single root.
type Workspace struct {
	root string
}

// New creates a Workspace rooted at root. The root directory is created on
// first use, not here, so a Workspace can be constructed from config before
// the filesystem is ready.
func New(root string) *Workspace {
	return &Workspace{root: root}
}

// Root returns the workspace root directory.
func (w *Workspace) Root() string { return w.root }

// Resolve returns the absolute path for name inside area, creating the area
// directory if needed. Names that escape the area via traversal are rejected.
func (w *Workspace) Resolve(name string, area Area) (string, error) {
	if w.root == "" {
		return "", fmt.Errorf("no storage root configured")
	}
	if !area.Valid() {
		return "", fmt.Errorf("unknown storage area %q", area)
	}
	if name == "" {
		return "", fmt.Errorf("file name is required")
	}

	dir := filepath.Join(w.root, string(area))
	abs, err := filepath.Abs(filepath.Join(dir, filepath.Clean(name)))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	dirAbs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid storage area: %w", err)
	}
	if !strings.HasPrefix(abs, dirAbs+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", name)
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("create storage area: %w", err)
	}
	return abs, nil
}

// WriteFile resolves name inside area and writes content as UTF-8 text.
// It returns the absolute path written.
func (w *Workspace) WriteFile(name string, area Area, content string) (string, error) {
	path, err := w.Resolve(name, area)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}
