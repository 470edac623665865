package zine

import (
	"fmt"
	"path"
	"strings"

	slug "github.com/goliatone/go-slug"
)

// pageSlug maps a pages-root-relative file path to a URL-safe output path.
// The mapping is deterministic: the markdown extension is dropped and every
// remaining segment is normalized with the default slug rules.
func pageSlug(rel string) (string, error) {
	rel = strings.Trim(path.Clean(strings.ReplaceAll(rel, "\\", "/")), "/")
	if rel == "" || rel == "." {
		return "", fmt.Errorf("zine: page path is empty")
	}

	switch strings.ToLower(path.Ext(rel)) {
	case ".md", ".markdown":
		rel = strings.TrimSuffix(rel, path.Ext(rel))
	}

	segments := strings.Split(rel, "/")
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		if slug.IsValid(segment) {
			out = append(out, segment)
			continue
		}
		normalized, err := slug.Normalize(segment)
		if err != nil {
			return "", fmt.Errorf("zine: slug for page %s: %w", rel, err)
		}
		out = append(out, normalized)
	}

	if len(out) == 0 {
		return "", fmt.Errorf("zine: slug for page %s is empty", rel)
	}
	return path.Join(out...), nil
}
