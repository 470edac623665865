package zine

import (
	"errors"

	"github.com/goliatone/go-zine/pkg/interfaces"
)

var (
	// ErrParserRequired indicates the publication was constructed without a markdown parser.
	ErrParserRequired = errors.New("zine: markdown parser required")
	// ErrSinkRequired indicates the publication was constructed without a render sink.
	ErrSinkRequired = errors.New("zine: render sink required")
)

// Entity is the capability set shared by every content node in a
// publication tree. Parse walks the node's sources into memory; Render
// emits the node's output pages through the render sink. Nodes that only
// need one of the two phases embed noopEntity for the other.
type Entity interface {
	Parse(source string) error
	Render(ctx Context, dest string) error
}

// noopEntity supplies default no-op halves of the Entity contract.
type noopEntity struct{}

func (noopEntity) Parse(string) error           { return nil }
func (noopEntity) Render(Context, string) error { return nil }

// Collection makes any ordered slice of entities itself an Entity. Parse
// and Render fan out to each member in order and stop at the first
// failure; Render hands every member an independent clone of the incoming
// context so sibling renders cannot observe each other's bindings.
type Collection[T Entity] []T

// Parse applies Parse to every member in order, propagating the first error.
func (c Collection[T]) Parse(source string) error {
	for _, item := range c {
		if err := item.Parse(source); err != nil {
			return err
		}
	}
	return nil
}

// Render applies Render to every member in order with a cloned context,
// propagating the first error.
func (c Collection[T]) Render(ctx Context, dest string) error {
	for _, item := range c {
		if err := item.Render(ctx.Clone(), dest); err != nil {
			return err
		}
	}
	return nil
}

// Sink is the templating collaborator: it renders the named template with
// the supplied context and writes the output beneath dest. The core never
// inspects template contents, only supplies names and data.
type Sink interface {
	Render(name string, ctx Context, dest string) error
}

// env carries the collaborators shared by every node of one publication
// tree. Nodes created during parse (articles, pages) inherit it from their
// owner.
type env struct {
	parser interfaces.MarkdownParser
	sink   Sink
	layout Layout
}
