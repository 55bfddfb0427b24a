package examplemodule

import (
	"fmt"
	"sort"

	"github.com/wavemaster/wavemod/hostapi"
)

// AnnotationKey is a context payload key this module recognises. Payloads
// from other modules are opaque; only the presence of these keys is probed,
// never the shape of their values.
type AnnotationKey string

const (
	AnnotationContent  AnnotationKey = "content"
	AnnotationMetadata AnnotationKey = "metadata"
	AnnotationAnswer   AnnotationKey = "answer"
)

// Annotation records that a module's payload carried a recognised key.
type Annotation struct {
	Key    AnnotationKey `json:"key"`
	Module string        `json:"module"`
}

// probeContext scans the host context for the given annotation keys and
// returns one Annotation per (key, module) hit. Module names are visited in
// sorted order so output narratives are deterministic.
func probeContext(hostCtx hostapi.Context, keys ...AnnotationKey) []Annotation {
	if len(hostCtx) == 0 {
		return nil
	}
	names := make([]string, 0, len(hostCtx))
	for name := range hostCtx {
		names = append(names, name)
	}
	sort.Strings(names)

	var found []Annotation
	for _, name := range names {
		payload := hostCtx[name]
		for _, key := range keys {
			if _, ok := payload[string(key)]; ok {
				found = append(found, Annotation{Key: key, Module: name})
			}
		}
	}
	return found
}

// describeAnnotations renders annotations as narrative labels, e.g.
// "Content from search" or "Metadata from indexer".
func describeAnnotations(found []Annotation, format string) []string {
	labels := make([]string, 0, len(found))
	for _, a := range found {
		labels = append(labels, fmt.Sprintf(format, titleCase(string(a.Key)), a.Module))
	}
	return labels
}
