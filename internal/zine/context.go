package zine

import "maps"

// Context is the named mapping of values made visible to the render sink
// for a single output page. Contexts are copy-on-branch: every fan-out
// clones before descending, so extensions never propagate back to the
// caller or across siblings.
type Context map[string]any

// NewContext returns an empty context.
func NewContext() Context {
	return Context{}
}

// Set binds value under key.
func (c Context) Set(key string, value any) {
	c[key] = value
}

// Clone returns an independent shallow copy of the context.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	maps.Copy(out, c)
	return out
}
