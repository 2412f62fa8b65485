package ast

// ClassMember is the sum type for one entry inside a class/interface/
// trait/enum body.
type ClassMember interface {
	Node
	memberNode()
}

// PropertyMember is one `$name (= default)?` declaration, or a group of
// them sharing modifiers/type/attributes (`public int $a, $b = 1;`).
// Properties declared with hooks (PHP 8.4) carry a non-empty Hooks slice;
// a hook block is read only when `{` follows the first name of the
// declaration, so hooked properties are never comma-grouped.
type PropertyMember struct {
	Modifiers  Modifiers
	Type       TypeHint
	Names      []string
	Defaults   []Expr // parallel to Names; nil entry means no default
	Attributes []*AttributeGroup
	Hooks      []*PropertyHook // non-nil only for a single-name hooked property
	DocComment string
	SpanVal    Span
}

func (m *PropertyMember) Span() Span { return m.SpanVal }
func (m *PropertyMember) memberNode() {}

// PropertyHook is one `get => expr;` / `get { ... }` / `set(Type $v) { ... }`
// accessor attached to a property declaration (PHP 8.4).
type PropertyHook struct {
	Name       string // "get" or "set"
	Modifiers  Modifiers
	Param      *Parameter // non-nil only for `set`
	Expr       Expr       // non-nil for the `=> expr` short form
	Body       *BlockStmt // non-nil for the `{ ... }` long form
	ByRef      bool
	SpanVal    Span
}

func (h *PropertyHook) Span() Span { return h.SpanVal }

// MethodMember is a `function name(params): ReturnType { body }` entry.
// Body is nil for abstract methods and interface method declarations.
type MethodMember struct {
	Modifiers  Modifiers
	Name       string
	Params     []*Parameter
	ReturnType TypeHint
	ByRefReturn bool
	Body       *BlockStmt
	Attributes []*AttributeGroup
	DocComment string
	SpanVal    Span
}

func (m *MethodMember) Span() Span { return m.SpanVal }
func (m *MethodMember) memberNode() {}

// ClassConstMember is `const (Type)? NAME = expr, NAME2 = expr2;`.
type ClassConstMember struct {
	Modifiers  Modifiers
	Type       TypeHint
	Names      []string
	Values     []Expr
	Attributes []*AttributeGroup
	DocComment string
	SpanVal    Span
}

func (m *ClassConstMember) Span() Span { return m.SpanVal }
func (m *ClassConstMember) memberNode() {}

// TraitAdaptation is one entry in a `use Trait { ... }` adaptation block.
type TraitAdaptation struct {
	// Method reference this adaptation targets: `Trait::method` or bare
	// `method` when only one trait is named in the use clause.
	Trait  string
	Method string

	// Insteadof lists the traits method resolution is excluded from, when
	// this is a conflict-resolution adaptation (`A::foo insteadof B;`).
	Insteadof []string

	// As, when non-empty, renames/aliases the method (`A::foo as bar;`).
	// AsVisibility/HasAsVis record a visibility given after `as`, with or
	// without a new name (`A::foo as protected;`, `A::foo as protected bar;`).
	As           string
	AsVisibility Modifiers
	HasAsVis     bool

	SpanVal Span
}

func (a *TraitAdaptation) Span() Span { return a.SpanVal }

// UseTraitMember is a `use TraitA, TraitB { adaptations }` entry.
type UseTraitMember struct {
	Traits      []*Name
	Adaptations []*TraitAdaptation
	SpanVal     Span
}

func (m *UseTraitMember) Span() Span { return m.SpanVal }
func (m *UseTraitMember) memberNode() {}

// EnumCaseMember is a `case NAME (= expr)?;` entry inside an enum.
type EnumCaseMember struct {
	Name       string
	Value      Expr // non-nil for backed enums
	Attributes []*AttributeGroup
	DocComment string
	SpanVal    Span
}

func (m *EnumCaseMember) Span() Span { return m.SpanVal }
func (m *EnumCaseMember) memberNode() {}

// ClassLikeKind distinguishes class/interface/trait/enum declarations,
// which otherwise share one body grammar (spec.md §4.2.5).
type ClassLikeKind int

const (
	ClassLikeClass ClassLikeKind = iota
	ClassLikeInterface
	ClassLikeTrait
	ClassLikeEnum
)

// UseClause is one entry of a `use A\B;` / `use function f;` / `use const C;`
// import statement, or one branch of a grouped `use A\{B, C as D};`.
type UseClause struct {
	Kind    UseKind
	Name    *Name
	Alias   string
	SpanVal Span
}

func (u *UseClause) Span() Span { return u.SpanVal }

// UseKind distinguishes plain/function/const imports.
type UseKind int

const (
	UseClass UseKind = iota
	UseFunction
	UseConst
)
