package examplemodule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wavemaster/wavemod/hostapi"
	"github.com/wavemaster/wavemod/workspace"
)

// extractInfo handles the extract operation. It demonstrates the widest
// context probe: all three recognised annotation keys are checked, and the
// (key, module) pairs are reported back in the result. It runs
// asynchronously; the dispatcher drives it to completion.
func (m *Module) extractInfo(_ context.Context, c Content, hostCtx hostapi.Context) (map[string]any, error) {
	m.log.Info("extracting information", "source", c.Source())

	found := probeContext(hostCtx, AnnotationContent, AnnotationMetadata, AnnotationAnswer)
	if found == nil {
		found = []Annotation{}
	}
	used := make([]string, 0, len(found))
	for _, a := range found {
		used = append(used, fmt.Sprintf("%s from %s", a.Key, a.Module))
	}

	narrative := fmt.Sprintf(
		"Extraction Results\n-----------------\nTime: %s\nSource: %s (%s)\nQuery: %s\nContext Used: %s\n\n"+
			"This is a demonstration of information extraction.\n"+
			"The extraction can be enhanced with context from other modules.",
		time.Now().Format(timestampLayout), c.Source(), c.locality(), c.Query(), strings.Join(used, ", "),
	)
	outputFile, err := m.ws.WriteFile(
		fmt.Sprintf("extracted_%s.txt", uniqueStamp()), workspace.AreaFiles, narrative)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	return map[string]any{
		"output":       fmt.Sprintf("Extracted information from %s", c.Source()),
		"source":       c.Source(),
		"query":        c.Query(),
		"context_data": found,
		"output_file":  outputFile,
	}, nil
}
