package examplemodule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wavemaster/wavemod/hostapi"
	"github.com/wavemaster/wavemod/workspace"
)

// generateContent handles the generate operation. There is no generation
// model behind it; the handler fabricates a content stub about the topic and
// notes which other modules could have enhanced it.
func (m *Module) generateContent(_ context.Context, c Content, hostCtx hostapi.Context) (map[string]any, error) {
	topic := c.Query()
	m.log.Info("generating content", "topic", topic)

	enhancements := make([]string, 0)
	for _, a := range probeContext(hostCtx, AnnotationContent, AnnotationMetadata) {
		switch a.Key {
		case AnnotationContent:
			enhancements = append(enhancements, fmt.Sprintf("Enhanced with content from %s", a.Module))
		case AnnotationMetadata:
			enhancements = append(enhancements, fmt.Sprintf("Using metadata from %s", a.Module))
		}
	}
	enhancementsLabel := "None"
	if len(enhancements) > 0 {
		enhancementsLabel = strings.Join(enhancements, ", ")
	}

	narrative := fmt.Sprintf(
		"Generated Content\n----------------\nTopic: %s\nTime: %s\nEnhancements: %s\n\n"+
			"This is an example of generated content about %s.\n"+
			"The content can be enhanced with context from other modules.",
		topic, time.Now().Format(timestampLayout), enhancementsLabel, topic,
	)
	outputFile, err := m.ws.WriteFile(
		fmt.Sprintf("generated_%s.txt", uniqueStamp()), workspace.AreaFiles, narrative)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	return map[string]any{
		"output":       fmt.Sprintf("Generated content about %s", topic),
		"topic":        topic,
		"enhancements": enhancements,
		"output_file":  outputFile,
	}, nil
}
