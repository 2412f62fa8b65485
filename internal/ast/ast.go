// Package ast defines the tree produced by internal/parser: a Program
// rooted forest of Stmt and Expr nodes, each carrying a byte Span into the
// original source. The tree is a pure data structure — no back-edges, no
// shared sub-nodes — and is never mutated once its enclosing construct has
// closed.
package ast

import "github.com/jorgsowa/phpfront/internal/diag"

// Span is a half-open byte range, shared with internal/lexer and
// internal/diag so no conversion is needed at any package boundary.
type Span = diag.Span

// Node is implemented by every Stmt and Expr.
type Node interface {
	Span() Span
}

// Stmt is any top-level or nested statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of the tree: an ordered sequence of top-level
// statements.
type Program struct {
	Stmts    []Stmt
	SpanVal  Span
}

func (p *Program) Span() Span { return p.SpanVal }

// Name is a (possibly namespaced) identifier reference: `Foo`, `Foo\Bar`,
// `\Foo\Bar`, `namespace\Foo`. Qualification is captured structurally
// rather than by re-parsing the joined string later.
type Name struct {
	Parts         []string
	LeadingSlash  bool // \Foo\Bar
	RelativeNs    bool // namespace\Foo
	SpanVal       Span
}

func (n *Name) Span() Span { return n.SpanVal }

// String renders the name back to its canonical PHP source form.
func (n *Name) String() string {
	s := ""
	if n.LeadingSlash {
		s = "\\"
	} else if n.RelativeNs {
		s = "namespace\\"
	}
	for i, p := range n.Parts {
		if i > 0 {
			s += "\\"
		}
		s += p
	}
	return s
}

// Visibility is the accessibility modifier of a class member.
type Visibility int

const (
	VisPublic Visibility = iota
	VisProtected
	VisPrivate
)

// Modifiers is the accumulated modifier run preceding a declaration or
// class member (`abstract final class`, `public readonly function`, …).
// A conflicting combination (e.g. `abstract final`) is recorded with both
// bits set; the parser does not diagnose it.
type Modifiers struct {
	Visibility   Visibility
	HasVisibility bool
	Static       bool
	Abstract     bool
	Final        bool
	Readonly     bool

	// Asymmetric visibility (PHP 8.4): `protected private(set)`.
	SetVisibility    Visibility
	HasSetVisibility bool
}

// Attribute is one `Name(args)` entry inside an attribute group.
type Attribute struct {
	Name      *Name
	Arguments []*Argument
	SpanVal   Span
}

func (a *Attribute) Span() Span { return a.SpanVal }

// AttributeGroup is one `#[...]` block; groups stack above a declaration.
type AttributeGroup struct {
	Attributes []*Attribute
	SpanVal    Span
}

func (g *AttributeGroup) Span() Span { return g.SpanVal }

// Argument is one entry in a call's argument list: positional, named
// (`name: expr`), or spread (`...expr`).
type Argument struct {
	Value   Expr
	Name    string // empty unless named
	Unpack  bool
	SpanVal Span
}

func (a *Argument) Span() Span { return a.SpanVal }

// Parameter is one function/method/closure parameter.
type Parameter struct {
	Name       string
	Type       TypeHint // nil if untyped
	Default    Expr     // nil if no default
	ByRef      bool
	Variadic   bool
	Attributes []*AttributeGroup

	// Non-nil when the parameter carries visibility/readonly modifiers
	// (constructor promotion). The parser accepts them in any parameter
	// list, not only a constructor's.
	Promoted     *Modifiers
	DocComment   string
	SpanVal      Span
}

func (p *Parameter) Span() Span { return p.SpanVal }
