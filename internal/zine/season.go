package zine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Season groups an ordered run of articles under a numbered issue. Path is
// the season's source subdirectory relative to the content root; Slug is
// its output path segment.
type Season struct {
	Number int    `toml:"number"`
	Slug   string `toml:"slug"`
	Path   string `toml:"path"`

	// Articles is empty until Parse replaces it with the declarations from
	// the season's metadata file.
	Articles Collection[*Article] `toml:"-"`

	env *env
}

// seasonFile mirrors the schema of the per-season metadata file.
type seasonFile struct {
	Articles []*Article `toml:"article"`
}

// Parse reads the season's metadata file, adopts the declared article list,
// and parses each article against the season directory. A missing or
// malformed metadata file is a hard failure.
func (s *Season) Parse(source string) error {
	if s.env == nil || s.env.parser == nil {
		return ErrParserRequired
	}

	dir := filepath.Join(source, filepath.FromSlash(s.Path))

	data, err := os.ReadFile(filepath.Join(dir, s.env.layout.MetadataFile))
	if err != nil {
		return fmt.Errorf("zine: season %s: %w", s.Path, err)
	}

	var sf seasonFile
	if err := toml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("zine: season %s: decode %s: %w", s.Path, s.env.layout.MetadataFile, err)
	}

	s.Articles = sf.Articles
	for _, article := range s.Articles {
		article.env = s.env
	}

	return s.Articles.Parse(dir)
}

// Render binds the season, with its parsed article list, into a cloned
// context and emits the season page under the destination joined with the
// season's slug. Individual articles are presented through the season
// binding rather than as standalone pages.
func (s *Season) Render(ctx Context, dest string) error {
	if s.env == nil || s.env.sink == nil {
		return ErrSinkRequired
	}

	ctx = ctx.Clone()
	ctx.Set("season", s)
	return s.env.sink.Render(s.env.layout.SeasonTemplate, ctx, filepath.Join(dest, s.Slug))
}
