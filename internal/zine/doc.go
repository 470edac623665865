// Package zine implements the publication tree and its two-phase entity
// protocol. Every content node (publication root, theme, season, article,
// free-form page) shares the same Parse/Render contract, so one traversal
// ingests the content root bottom-up and one traversal emits the output
// tree top-down with copy-on-branch render contexts.
package zine
