package builder

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-zine/internal/markdown"
	"github.com/goliatone/go-zine/internal/render"
	"github.com/goliatone/go-zine/internal/zine"
	"github.com/goliatone/go-zine/pkg/interfaces"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// fixtureTree lays out a complete content root plus a templates directory
// and returns both.
func fixtureTree(t *testing.T) (string, string) {
	t.Helper()
	content := t.TempDir()

	writeFile(t, filepath.Join(content, "zine.toml"), `
[site]
title = "Test Zine"

[theme]
primary_color = "#112233"
footer_template = "theme/footer.html"

[[season]]
number = 2
slug = "s2"
path = "seasons/two"

[[season]]
number = 1
slug = "s1"
path = "seasons/one"
`)
	writeFile(t, filepath.Join(content, "seasons", "one", "zine.toml"), `
[[article]]
file = "hi.md"
title = "Hi"
author = "Sam"
date = "2024-03-01"
`)
	writeFile(t, filepath.Join(content, "seasons", "one", "hi.md"), "# Hi")
	writeFile(t, filepath.Join(content, "seasons", "two", "zine.toml"), "")
	writeFile(t, filepath.Join(content, "pages", "about.md"), "*hello*")
	writeFile(t, filepath.Join(content, "theme", "footer.html"), "<footer>fin</footer>")
	writeFile(t, filepath.Join(content, "theme", "static", "css", "site.css"), "body{}")

	templates := t.TempDir()
	writeFile(t, filepath.Join(templates, "index.jinja"), "INDEX {{ site.title }} {{ seasons|length }}")
	writeFile(t, filepath.Join(templates, "season.jinja"), "SEASON {{ season.Slug }} {{ season.Articles|length }}")
	writeFile(t, filepath.Join(templates, "page.jinja"), "PAGE {{ content|safe }}")

	return content, templates
}

func newFixtureService(t *testing.T, cfg Config, templates string) Service {
	t.Helper()
	renderer, err := render.NewPongo2Renderer(templates)
	if err != nil {
		t.Fatalf("NewPongo2Renderer: %v", err)
	}
	sink, err := render.NewFileSink(renderer)
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}
	return NewService(cfg, Dependencies{
		Parser: markdown.NewGoldmarkParser(interfaces.ParseOptions{}),
		Sink:   sink,
	})
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestBuild_EndToEnd(t *testing.T) {
	content, templates := fixtureTree(t)
	output := filepath.Join(t.TempDir(), "out")

	svc := newFixtureService(t, Config{ContentDir: content, OutputDir: output}, templates)

	result, err := svc.Build(context.Background(), BuildOptions{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if result.Seasons != 2 || result.Articles != 1 || result.Pages != 1 {
		t.Fatalf("result = %+v", result)
	}
	if result.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatalf("expected a build id")
	}

	if got := readFile(t, filepath.Join(output, "index.html")); got != "INDEX Test Zine 2" {
		t.Fatalf("index = %q", got)
	}
	if got := readFile(t, filepath.Join(output, "s1", "index.html")); got != "SEASON s1 1" {
		t.Fatalf("season one = %q", got)
	}
	if got := readFile(t, filepath.Join(output, "s2", "index.html")); got != "SEASON s2 0" {
		t.Fatalf("season two = %q", got)
	}
	if got := readFile(t, filepath.Join(output, "page", "about", "index.html")); got != "PAGE <p><em>hello</em></p>\n" {
		t.Fatalf("page = %q", got)
	}
	if got := readFile(t, filepath.Join(output, "static", "css", "site.css")); got != "body{}" {
		t.Fatalf("static asset = %q", got)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	content, templates := fixtureTree(t)
	first := filepath.Join(t.TempDir(), "a")
	second := filepath.Join(t.TempDir(), "b")

	svc := newFixtureService(t, Config{ContentDir: content, OutputDir: first}, templates)

	if _, err := svc.Build(context.Background(), BuildOptions{}); err != nil {
		t.Fatalf("first build: %v", err)
	}
	if _, err := svc.Build(context.Background(), BuildOptions{OutputDir: second}); err != nil {
		t.Fatalf("second build: %v", err)
	}

	err := filepath.WalkDir(first, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}
		rel, err := filepath.Rel(first, path)
		if err != nil {
			return err
		}
		if readFile(t, path) != readFile(t, filepath.Join(second, rel)) {
			t.Fatalf("output differs between builds: %s", rel)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
}

func TestBuild_DryRun(t *testing.T) {
	content, templates := fixtureTree(t)
	output := filepath.Join(t.TempDir(), "out")

	svc := newFixtureService(t, Config{ContentDir: content, OutputDir: output}, templates)

	result, err := svc.Build(context.Background(), BuildOptions{DryRun: true})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !result.DryRun {
		t.Fatalf("expected dry-run result")
	}
	if result.Seasons != 2 || result.Articles != 1 || result.Pages != 1 {
		t.Fatalf("result = %+v", result)
	}
	if _, err := os.Stat(output); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("dry run wrote output: %v", err)
	}
}

func TestBuild_CleanBuildRemovesStaleOutput(t *testing.T) {
	content, templates := fixtureTree(t)
	output := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(output, "stale.html"), "old")

	svc := newFixtureService(t, Config{ContentDir: content, OutputDir: output, CleanBuild: true}, templates)

	if _, err := svc.Build(context.Background(), BuildOptions{}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := os.Stat(filepath.Join(output, "stale.html")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("stale output survived a clean build: %v", err)
	}
	if _, err := os.Stat(filepath.Join(output, "index.html")); err != nil {
		t.Fatalf("expected fresh output: %v", err)
	}
}

func TestBuild_MissingRootMetadata(t *testing.T) {
	_, templates := fixtureTree(t)
	content := t.TempDir()

	svc := newFixtureService(t, Config{ContentDir: content, OutputDir: filepath.Join(t.TempDir(), "out")}, templates)

	if _, err := svc.Build(context.Background(), BuildOptions{}); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestBuild_RequiresCollaborators(t *testing.T) {
	svc := NewService(Config{ContentDir: ".", OutputDir: "out"}, Dependencies{})
	if _, err := svc.Build(context.Background(), BuildOptions{}); !errors.Is(err, zine.ErrParserRequired) {
		t.Fatalf("expected ErrParserRequired, got %v", err)
	}

	svc = NewService(Config{ContentDir: ".", OutputDir: "out"}, Dependencies{
		Parser: markdown.NewGoldmarkParser(interfaces.ParseOptions{}),
	})
	if _, err := svc.Build(context.Background(), BuildOptions{}); !errors.Is(err, zine.ErrSinkRequired) {
		t.Fatalf("expected ErrSinkRequired, got %v", err)
	}
}

func TestBuild_RequiresDirectories(t *testing.T) {
	content, templates := fixtureTree(t)

	svc := newFixtureService(t, Config{}, templates)
	if _, err := svc.Build(context.Background(), BuildOptions{}); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}

	svc = newFixtureService(t, Config{ContentDir: content}, templates)
	if _, err := svc.Build(context.Background(), BuildOptions{}); !errors.Is(err, ErrOutputDirRequired) {
		t.Fatalf("expected ErrOutputDirRequired, got %v", err)
	}
}

func TestBuild_HonorsContextCancellation(t *testing.T) {
	content, templates := fixtureTree(t)

	svc := newFixtureService(t, Config{ContentDir: content, OutputDir: filepath.Join(t.TempDir(), "out")}, templates)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Build(ctx, BuildOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCopyStaticAssets_MissingDirIsValid(t *testing.T) {
	if err := copyStaticAssets(t.TempDir(), t.TempDir()); err != nil {
		t.Fatalf("copyStaticAssets: %v", err)
	}
}
