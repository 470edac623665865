package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// SplitFrontMatter extracts an optional metadata block from the provided
// source bytes. It returns the decoded metadata, the body without the
// delimiters, and any error encountered. Sources without a frontmatter
// block come back with empty metadata and an unchanged body.
func SplitFrontMatter(source []byte) (map[string]any, []byte, error) {
	meta := map[string]any{}

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return meta, body, nil
}
