// Package markdown converts authored Markdown into HTML via goldmark and
// splits optional frontmatter blocks from free-form page sources.
package markdown
