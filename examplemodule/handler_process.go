package examplemodule

import (
	"context"
	"fmt"
	"time"

	"github.com/wavemaster/wavemod/hostapi"
	"github.com/wavemaster/wavemod/workspace"
)

// processText handles the process operation: it records the incoming text
// (direct or referenced) to the temp area and reports where it went.
func (m *Module) processText(_ context.Context, c Content, hostCtx hostapi.Context) (map[string]any, error) {
	m.log.Info("processing text", "source", c.Source())

	text := c.Query()

	kind := "text"
	if c.Ref != nil {
		kind = "file"
	}

	narrative := fmt.Sprintf(
		"Processed at %s\nSource: %s\nContent: %s",
		time.Now().Format(timestampLayout), processSource(c), text,
	)
	tempFile, err := m.ws.WriteFile("processed_text.txt", workspace.AreaTemp, narrative)
	if err != nil {
		return nil, fmt.Errorf("process: %w", err)
	}

	return map[string]any{
		"output":       fmt.Sprintf("Processed %s and saved to processed_text.txt", kind),
		"source":       c.Source(),
		"length":       len(text),
		"temp_file":    tempFile,
		"context_used": len(hostCtx) > 0,
	}, nil
}

// processSource renders the narrative source label for the process operation.
func processSource(c Content) string {
	if c.Ref != nil {
		return c.Ref.FileRef
	}
	return "Direct input"
}
