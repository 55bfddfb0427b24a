package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	root := t.TempDir()
	ws := New(root)

	t.Run("resolves into the area directory", func(t *testing.T) {
		path, err := ws.Resolve("output.txt", AreaFiles)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := filepath.Join(root, "files", "output.txt")
		if path != want {
			t.Errorf("expected %q, got %q", want, path)
		}
		if _, err := os.Stat(filepath.Join(root, "files")); err != nil {
			t.Errorf("expected area directory to exist: %v", err)
		}
	})

	t.Run("each area is distinct", func(t *testing.T) {
		for _, area := range []Area{AreaFiles, AreaTemp, AreaDownloads} {
			path, err := ws.Resolve("x.txt", area)
			if err != nil {
				t.Fatalf("area %s: %v", area, err)
			}
			if !strings.Contains(path, string(filepath.Separator)+string(area)+string(filepath.Separator)) {
				t.Errorf("expected %q under area %s", path, area)
			}
		}
	})

	t.Run("nested names create parent directories", func(t *testing.T) {
		path, err := ws.Resolve("sub/dir/deep.txt", AreaFiles)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(filepath.Dir(path)); err != nil {
			t.Errorf("expected parent directory to exist: %v", err)
		}
	})

	t.Run("path traversal rejected", func(t *testing.T) {
		if _, err := ws.Resolve("../../escape.txt", AreaFiles); err == nil {
			t.Fatal("expected error for path traversal")
		}
	})

	t.Run("unknown area rejected", func(t *testing.T) {
		if _, err := ws.Resolve("x.txt", Area("attic")); err == nil {
			t.Fatal("expected error for unknown area")
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		if _, err := ws.Resolve("", AreaFiles); err == nil {
			t.Fatal("expected error for empty name")
		}
	})

	t.Run("empty root rejected", func(t *testing.T) {
		if _, err := New("").Resolve("x.txt", AreaFiles); err == nil {
			t.Fatal("expected error for empty root")
		}
	})
}

func TestWriteFile(t *testing.T) {
	ws := New(t.TempDir())

	path, err := ws.WriteFile("note.txt", AreaTemp, "scratch content")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "scratch content" {
		t.Errorf("expected %q on disk, got %q", "scratch content", string(data))
	}
}

func TestAreaValid(t *testing.T) {
	for _, area := range []Area{AreaFiles, AreaTemp, AreaDownloads} {
		if !area.Valid() {
			t.Errorf("expected %s to be valid", area)
		}
	}
	if Area("attic").Valid() {
		t.Error("expected attic to be invalid")
	}
}
