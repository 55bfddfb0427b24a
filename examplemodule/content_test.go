package examplemodule

import (
	"strings"
	"testing"

	"github.com/wavemaster/wavemod/workspace"
)

func newContentModule(t *testing.T) *Module {
	t.Helper()
	return New(workspace.New(t.TempDir()), nil)
}

func TestResolveContent(t *testing.T) {
	m := newContentModule(t)

	t.Run("plain text has no reference", func(t *testing.T) {
		c := m.resolveContent("just some words")
		if c.Ref != nil {
			t.Fatalf("expected no reference, got %+v", c.Ref)
		}
		if c.Query() != "just some words" {
			t.Errorf("expected query to be the raw text, got %q", c.Query())
		}
		if c.Source() != "direct_input" {
			t.Errorf("expected source direct_input, got %q", c.Source())
		}
	})

	t.Run("filename reference", func(t *testing.T) {
		c := m.resolveContent("summarize data.txt for me")
		if c.Ref == nil {
			t.Fatal("expected a file reference")
		}
		if c.Ref.FileRef != "data.txt" {
			t.Errorf("expected ref data.txt, got %q", c.Ref.FileRef)
		}
		if c.Ref.IsURL {
			t.Error("expected local reference, got URL")
		}
		if c.Ref.FilePath == "" {
			t.Error("expected resolved file path")
		}
		if c.Ref.Query != "summarize  for me" {
			t.Errorf("expected remainder query, got %q", c.Ref.Query)
		}
	})

	t.Run("url reference", func(t *testing.T) {
		c := m.resolveContent("analyze https://example.com/data.json please")
		if c.Ref == nil {
			t.Fatal("expected a reference")
		}
		if c.Ref.FileRef != "https://example.com/data.json" {
			t.Errorf("expected URL ref, got %q", c.Ref.FileRef)
		}
		if !c.Ref.IsURL {
			t.Error("expected IsURL true")
		}
		if c.Ref.FilePath != "" {
			t.Errorf("expected no local path for URL, got %q", c.Ref.FilePath)
		}
		if !c.Remote() {
			t.Error("expected Remote() true")
		}
	})

	t.Run("reference only falls back to default query", func(t *testing.T) {
		c := m.resolveContent("data.txt")
		if c.Ref == nil {
			t.Fatal("expected a reference")
		}
		if c.Ref.Query != defaultQuery {
			t.Errorf("expected default query, got %q", c.Ref.Query)
		}
	})

	t.Run("traversal-shaped reference degrades to plain content", func(t *testing.T) {
		c := m.resolveContent("../../escape.txt")
		if c.Ref != nil {
			t.Fatalf("expected plain content, got ref %+v", c.Ref)
		}
		if !strings.Contains(c.Raw, "escape.txt") {
			t.Errorf("expected raw content preserved, got %q", c.Raw)
		}
	})
}
