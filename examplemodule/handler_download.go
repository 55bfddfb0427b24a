package examplemodule

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/wavemaster/wavemod/fileref"
	"github.com/wavemaster/wavemod/hostapi"
	"github.com/wavemaster/wavemod/workspace"
)

// fallbackDownloadName is used when the URL path yields no usable filename.
const fallbackDownloadName = "downloaded_content.txt"

// downloadContent handles the download operation. No network fetch happens:
// the handler validates the URL, then writes simulated downloaded content to
// the downloads area. It runs asynchronously; the dispatcher drives it to
// completion.
func (m *Module) downloadContent(_ context.Context, c Content, _ hostapi.Context) (map[string]any, error) {
	source := strings.TrimSpace(c.Raw)
	if c.Ref != nil {
		source = c.Ref.FileRef
	}
	if !fileref.IsURL(source) {
		return nil, fmt.Errorf("valid URL is required for download operation")
	}
	m.log.Info("downloading content", "url", source)

	queryLabel := "None"
	if c.Ref != nil {
		queryLabel = c.Ref.Query
	}

	narrative := fmt.Sprintf(
		"Downloaded Content\n----------------\nSource: %s\nTime: %s\nStatus: Success\nQuery: %s",
		source, time.Now().Format(timestampLayout), queryLabel,
	)
	name := fmt.Sprintf("download_%s_%s", uniqueStamp(), downloadName(source))
	downloadPath, err := m.ws.WriteFile(name, workspace.AreaDownloads, narrative)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}

	return map[string]any{
		"output":        fmt.Sprintf("Downloaded content from %s", source),
		"source":        source,
		"download_path": downloadPath,
		"size":          len(narrative),
	}, nil
}

// downloadName derives a filename from the URL path, falling back to a
// generic name when the path has none.
func downloadName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fallbackDownloadName
	}
	base := path.Base(u.Path)
	if base == "" || base == "." || base == "/" {
		return fallbackDownloadName
	}
	return base
}
