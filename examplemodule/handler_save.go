package examplemodule

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wavemaster/wavemod/hostapi"
	"github.com/wavemaster/wavemod/workspace"
)

// saveFile handles the save operation. Content must be in "name:content"
// form; both parts are required. The body is written verbatim to the files
// area.
func (m *Module) saveFile(_ context.Context, c Content, _ hostapi.Context) (map[string]any, error) {
	m.log.Info("saving file")

	// Parse from the raw content: reference extraction may have fired on the
	// filename, but the name:content split is this operation's own format.
	name, body, ok := strings.Cut(c.Raw, ":")
	if !ok {
		return nil, fmt.Errorf("save operation requires format: filename:content")
	}
	name = strings.TrimSpace(name)
	body = strings.TrimSpace(body)
	if name == "" || body == "" {
		return nil, fmt.Errorf("both filename and content are required")
	}

	path, err := m.ws.WriteFile(name, workspace.AreaFiles, body)
	if err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}

	return map[string]any{
		"output":    fmt.Sprintf("Saved content to %s", filepath.Base(path)),
		"file_path": path,
		"size":      len(body),
	}, nil
}
