package examplemodule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wavemaster/wavemod/hostapi"
	"github.com/wavemaster/wavemod/workspace"
)

// analyzeData handles the analyze operation. No real data format is parsed;
// the handler writes an analysis narrative annotated with which other
// modules contributed content or metadata.
func (m *Module) analyzeData(_ context.Context, c Content, hostCtx hostapi.Context) (map[string]any, error) {
	m.log.Info("analyzing data", "source", c.Source(), "remote", c.Remote())

	sources := describeAnnotations(
		probeContext(hostCtx, AnnotationContent, AnnotationMetadata),
		"%s from %s",
	)
	sourcesLabel := "None"
	if len(sources) > 0 {
		sourcesLabel = strings.Join(sources, ", ")
	}

	narrative := fmt.Sprintf(
		"Analysis Results\n---------------\nTime: %s\nSource: %s (%s)\nQuery: %s\nContext Sources: %s",
		time.Now().Format(timestampLayout), c.Source(), c.locality(), c.Query(), sourcesLabel,
	)
	resultsFile, err := m.ws.WriteFile("analysis_results.txt", workspace.AreaFiles, narrative)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	return map[string]any{
		"output":          fmt.Sprintf("Analyzed %s data and saved results", c.locality()),
		"source":          c.Source(),
		"query":           c.Query(),
		"context_sources": sources,
		"results_file":    resultsFile,
	}, nil
}
