package render

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-zine/internal/markdown"
	"github.com/goliatone/go-zine/internal/zine"
	"github.com/goliatone/go-zine/pkg/interfaces"
)

// Rendering the same parsed publication into two destinations must produce
// byte-identical trees.
func TestPublicationRenderIsIdempotent(t *testing.T) {
	content := t.TempDir()
	writeFile := func(path, data string) {
		t.Helper()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	writeFile(filepath.Join(content, "s1", "zine.toml"), "[[article]]\nfile = \"a.md\"\ntitle = \"A\"\n")
	writeFile(filepath.Join(content, "s1", "a.md"), "# A")
	writeFile(filepath.Join(content, "pages", "about.md"), "hello")

	templates := t.TempDir()
	writeFile(filepath.Join(templates, "index.jinja"), "home {{ seasons|length }}")
	writeFile(filepath.Join(templates, "season.jinja"), "season {{ season.Slug }}")
	writeFile(filepath.Join(templates, "page.jinja"), "{{ content|safe }}")

	renderer, err := NewPongo2Renderer(templates)
	if err != nil {
		t.Fatalf("NewPongo2Renderer: %v", err)
	}
	sink, err := NewFileSink(renderer)
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}

	pub, err := zine.New(nil, zine.Theme{}, []*zine.Season{{Number: 1, Slug: "s1", Path: "s1"}},
		markdown.NewGoldmarkParser(interfaces.ParseOptions{}), sink)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := pub.Parse(content); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	first := filepath.Join(t.TempDir(), "a")
	second := filepath.Join(t.TempDir(), "b")
	if err := pub.Render(zine.NewContext(), first); err != nil {
		t.Fatalf("first render: %v", err)
	}
	if err := pub.Render(zine.NewContext(), second); err != nil {
		t.Fatalf("second render: %v", err)
	}

	seen := 0
	err = filepath.WalkDir(first, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}
		seen++
		rel, err := filepath.Rel(first, path)
		if err != nil {
			return err
		}
		a, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		b, err := os.ReadFile(filepath.Join(second, rel))
		if err != nil {
			return err
		}
		if string(a) != string(b) {
			t.Fatalf("output differs between renders: %s", rel)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if seen != 3 {
		t.Fatalf("expected 3 rendered documents, got %d", seen)
	}
}
