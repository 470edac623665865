package zine

import (
	"errors"
	"testing"

	"github.com/goliatone/go-zine/internal/markdown"
	"github.com/goliatone/go-zine/pkg/interfaces"
)

type discardSink struct{}

func (discardSink) Render(string, Context, string) error { return nil }

func TestNewService_ValidatesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Build.ContentDir = ""

	_, err := NewService(cfg, Dependencies{})
	if !errors.Is(err, ErrRuntimeContentDirRequired) {
		t.Fatalf("expected ErrRuntimeContentDirRequired, got %v", err)
	}
}

func TestNewService_WiresBuilder(t *testing.T) {
	svc, err := NewService(DefaultConfig(), Dependencies{
		Parser: markdown.NewGoldmarkParser(interfaces.ParseOptions{}),
		Sink:   discardSink{},
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if svc == nil {
		t.Fatal("expected a service")
	}
}

func TestNewPublication_RequiresParser(t *testing.T) {
	_, err := NewPublication(nil, Theme{}, nil, nil, discardSink{})
	if !errors.Is(err, ErrParserRequired) {
		t.Fatalf("expected ErrParserRequired, got %v", err)
	}
}

func TestNewPublication_WithLayout(t *testing.T) {
	pub, err := NewPublication(nil, Theme{}, nil,
		markdown.NewGoldmarkParser(interfaces.ParseOptions{}), discardSink{},
		WithLayout(Layout{SeasonTemplate: "issue.jinja"}))
	if err != nil {
		t.Fatalf("NewPublication: %v", err)
	}
	if pub == nil {
		t.Fatal("expected a publication")
	}
}
