package ast

// TypeHint is the sum type for a parsed type annotation: a simple name, a
// nullable wrapper, or a union/intersection combination. A DNF type (PHP
// 8.2) is structurally just a UnionType whose Members include at least one
// IntersectionType — there is no separate DNF node, matching how the
// grammar in spec.md §4.2.4 folds them.
type TypeHint interface {
	Node
	typeNode()
}

// SimpleType is a bare name: a qualified class name, a builtin
// (`int`, `iterable`, `callable`, …), or `self`/`parent`/`static`.
type SimpleType struct {
	Name    *Name
	SpanVal Span
}

func (t *SimpleType) Span() Span { return t.SpanVal }
func (t *SimpleType) typeNode()  {}

// NullableType is `?T`, sugar for `T|null`; disallowed combined with `|`
// or `&` at the same level (a diagnostic, not a parse failure).
type NullableType struct {
	Inner   TypeHint
	SpanVal Span
}

func (t *NullableType) Span() Span { return t.SpanVal }
func (t *NullableType) typeNode()  {}

// UnionType is `A|B|C`. A member that is itself an *IntersectionType marks
// this union as a DNF type.
type UnionType struct {
	Members []TypeHint
	SpanVal Span
}

func (t *UnionType) Span() Span { return t.SpanVal }
func (t *UnionType) typeNode()  {}

// IsDNF reports whether any member is a parenthesized intersection,
// per spec.md §4.2.4's "a union whose members include at least one
// parenthesized intersection is a DNF type".
func (t *UnionType) IsDNF() bool {
	for _, m := range t.Members {
		if _, ok := m.(*IntersectionType); ok {
			return true
		}
	}
	return false
}

// IntersectionType is `A&B`, optionally parenthesized as a DNF member.
type IntersectionType struct {
	Members []TypeHint
	SpanVal Span
}

func (t *IntersectionType) Span() Span { return t.SpanVal }
func (t *IntersectionType) typeNode()  {}
