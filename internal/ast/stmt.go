package ast

// ExprStmt wraps a bare expression used as a statement (`foo();`).
type ExprStmt struct {
	X       Expr
	SpanVal Span
}

func (s *ExprStmt) Span() Span { return s.SpanVal }
func (s *ExprStmt) stmtNode()  {}

// EchoStmt is `echo expr, expr, ...;`.
type EchoStmt struct {
	Values  []Expr
	SpanVal Span
}

func (s *EchoStmt) Span() Span { return s.SpanVal }
func (s *EchoStmt) stmtNode()  {}

// ReturnStmt is `return expr?;`.
type ReturnStmt struct {
	Value   Expr // nil for bare `return;`
	SpanVal Span
}

func (s *ReturnStmt) Span() Span { return s.SpanVal }
func (s *ReturnStmt) stmtNode()  {}

// IfStmt covers both brace and alternative (`if: ... endif;`) syntax;
// Alt records which form was parsed purely for round-trip fidelity.
type IfStmt struct {
	Cond     Expr
	Then     Stmt
	ElseIfs  []*ElseIfClause
	Else     Stmt // nil if absent; may itself be another IfStmt for the two-word `else if` form
	Alt      bool
	SpanVal  Span
}

func (s *IfStmt) Span() Span { return s.SpanVal }
func (s *IfStmt) stmtNode()  {}

// ElseIfClause is one `elseif (cond): ...` / `elseif (cond) { ... }` arm.
type ElseIfClause struct {
	Cond    Expr
	Body    Stmt
	SpanVal Span
}

func (c *ElseIfClause) Span() Span { return c.SpanVal }

// WhileStmt is `while (cond) body` / `while (cond): body endwhile;`.
type WhileStmt struct {
	Cond    Expr
	Body    Stmt
	Alt     bool
	SpanVal Span
}

func (s *WhileStmt) Span() Span { return s.SpanVal }
func (s *WhileStmt) stmtNode()  {}

// DoWhileStmt is `do body while (cond);`.
type DoWhileStmt struct {
	Body    Stmt
	Cond    Expr
	SpanVal Span
}

func (s *DoWhileStmt) Span() Span { return s.SpanVal }
func (s *DoWhileStmt) stmtNode()  {}

// ForStmt is the C-style `for (init; cond; step) body`, each clause a
// comma-separated expression list.
type ForStmt struct {
	Init    []Expr
	Cond    []Expr
	Step    []Expr
	Body    Stmt
	Alt     bool
	SpanVal Span
}

func (s *ForStmt) Span() Span { return s.SpanVal }
func (s *ForStmt) stmtNode()  {}

// ForeachStmt is `foreach (expr as [key =>] [&]value) body`.
type ForeachStmt struct {
	Subject  Expr
	Key      Expr // nil unless `as key => value`
	Value    Expr
	ByRef    bool
	Body     Stmt
	Alt      bool
	SpanVal  Span
}

func (s *ForeachStmt) Span() Span { return s.SpanVal }
func (s *ForeachStmt) stmtNode()  {}

// SwitchStmt is `switch (subject) { cases }` / alternative syntax.
type SwitchStmt struct {
	Subject Expr
	Cases   []*SwitchCase
	Alt     bool
	SpanVal Span
}

func (s *SwitchStmt) Span() Span { return s.SpanVal }
func (s *SwitchStmt) stmtNode()  {}

// SwitchCase is one `case expr:` or `default:` arm; Test is nil for default.
type SwitchCase struct {
	Test    Expr
	Body    []Stmt
	SpanVal Span
}

func (c *SwitchCase) Span() Span { return c.SpanVal }

// BreakStmt is `break n?;`.
type BreakStmt struct {
	Level   Expr // nil for bare `break;`
	SpanVal Span
}

func (s *BreakStmt) Span() Span { return s.SpanVal }
func (s *BreakStmt) stmtNode()  {}

// ContinueStmt is `continue n?;`.
type ContinueStmt struct {
	Level   Expr
	SpanVal Span
}

func (s *ContinueStmt) Span() Span { return s.SpanVal }
func (s *ContinueStmt) stmtNode()  {}

// GotoStmt is `goto label;`.
type GotoStmt struct {
	Label   string
	SpanVal Span
}

func (s *GotoStmt) Span() Span { return s.SpanVal }
func (s *GotoStmt) stmtNode()  {}

// LabelStmt is `label:`, a goto target.
type LabelStmt struct {
	Name    string
	SpanVal Span
}

func (s *LabelStmt) Span() Span { return s.SpanVal }
func (s *LabelStmt) stmtNode()  {}

// BlockStmt is a brace-delimited statement list.
type BlockStmt struct {
	Stmts   []Stmt
	SpanVal Span
}

func (s *BlockStmt) Span() Span { return s.SpanVal }
func (s *BlockStmt) stmtNode()  {}

// FunctionDecl is a top-level or nested named function declaration.
// (Closures and arrow functions are expressions; see ClosureExpr/ArrowFnExpr.)
type FunctionDecl struct {
	Name        string
	Params      []*Parameter
	ReturnType  TypeHint
	ByRefReturn bool
	ByRef       bool // `function &foo()`
	Body        *BlockStmt
	Attributes  []*AttributeGroup
	DocComment  string
	SpanVal     Span
}

func (s *FunctionDecl) Span() Span { return s.SpanVal }
func (s *FunctionDecl) stmtNode()  {}

// ClassDecl covers class/interface/trait/enum declarations, which share a
// body grammar per spec.md §4.2.5; Kind distinguishes them.
type ClassDecl struct {
	Kind        ClassLikeKind
	Modifiers   Modifiers
	Name        string
	Extends     []*Name // at most one entry for Kind == ClassLikeClass; may be many for interfaces
	Implements  []*Name
	BackingType TypeHint // non-nil only for a backed enum (`enum P: int`)
	Members     []ClassMember
	Attributes  []*AttributeGroup
	DocComment  string
	SpanVal     Span
}

func (s *ClassDecl) Span() Span { return s.SpanVal }
func (s *ClassDecl) stmtNode()  {}

// NamespaceStmt is `namespace Name;` or `namespace Name { ... }`. Body is
// nil for the semicolon (unbraced) form, which applies to every following
// top-level statement until the next namespace declaration.
type NamespaceStmt struct {
	Name    *Name // nil for the global `namespace;` form
	Body    []Stmt
	SpanVal Span
}

func (s *NamespaceStmt) Span() Span { return s.SpanVal }
func (s *NamespaceStmt) stmtNode()  {}

// UseStmt is `use A\B, C\D as E;` (imports, not trait-use — see
// UseTraitMember for that).
type UseStmt struct {
	Kind    UseKind
	Clauses []*UseClause
	SpanVal Span
}

func (s *UseStmt) Span() Span { return s.SpanVal }
func (s *UseStmt) stmtNode()  {}

// GroupUseStmt is `use Prefix\{A, B as C, function f};`.
type GroupUseStmt struct {
	Prefix  *Name
	Kind    UseKind // the group-level kind; a clause's own Kind overrides it when mixed
	Clauses []*UseClause
	SpanVal Span
}

func (s *GroupUseStmt) Span() Span { return s.SpanVal }
func (s *GroupUseStmt) stmtNode()  {}

// ConstStmt is a top-level `const NAME = expr, NAME2 = expr2;` (distinct
// from ClassConstMember, which lives inside a class-like body).
type ConstStmt struct {
	Names   []string
	Values  []Expr
	SpanVal Span
}

func (s *ConstStmt) Span() Span { return s.SpanVal }
func (s *ConstStmt) stmtNode()  {}

// GlobalStmt is `global $a, $b;`.
type GlobalStmt struct {
	Names   []string
	SpanVal Span
}

func (s *GlobalStmt) Span() Span { return s.SpanVal }
func (s *GlobalStmt) stmtNode()  {}

// StaticVarDecl is one `$name (= default)?` entry in a `static` statement.
type StaticVarDecl struct {
	Name    string
	Default Expr
	SpanVal Span
}

func (d *StaticVarDecl) Span() Span { return d.SpanVal }

// StaticStmt is `static $a = 1, $b;`.
type StaticStmt struct {
	Vars    []*StaticVarDecl
	SpanVal Span
}

func (s *StaticStmt) Span() Span { return s.SpanVal }
func (s *StaticStmt) stmtNode()  {}

// DeclareDirective is one `name=value` entry in a declare statement.
type DeclareDirective struct {
	Name    string
	Value   Expr
	SpanVal Span
}

func (d *DeclareDirective) Span() Span { return d.SpanVal }

// DeclareStmt is `declare(strict_types=1);` or `declare(...) { body }`.
type DeclareStmt struct {
	Directives []*DeclareDirective
	Body       Stmt // nil for the semicolon form
	SpanVal    Span
}

func (s *DeclareStmt) Span() Span { return s.SpanVal }
func (s *DeclareStmt) stmtNode()  {}

// InlineHTMLStmt wraps a run of bytes outside `<?php ... ?>`.
type InlineHTMLStmt struct {
	Text    string
	SpanVal Span
}

func (s *InlineHTMLStmt) Span() Span { return s.SpanVal }
func (s *InlineHTMLStmt) stmtNode()  {}

// CatchClause is one `catch (Type1|Type2 $var?) { body }` arm.
type CatchClause struct {
	Types   []*Name
	Var     string // empty if the exception is not bound
	Body    *BlockStmt
	SpanVal Span
}

func (c *CatchClause) Span() Span { return c.SpanVal }

// TryStmt is `try { } catch (...) { } finally { }`.
type TryStmt struct {
	Body    *BlockStmt
	Catches []*CatchClause
	Finally *BlockStmt // nil if absent
	SpanVal Span
}

func (s *TryStmt) Span() Span { return s.SpanVal }
func (s *TryStmt) stmtNode()  {}

// UnsetStmt is `unset($a, $b);`.
type UnsetStmt struct {
	Vars    []Expr
	SpanVal Span
}

func (s *UnsetStmt) Span() Span { return s.SpanVal }
func (s *UnsetStmt) stmtNode()  {}

// HaltCompilerStmt is `__halt_compiler();`; everything after it in the
// source is not tokenized.
type HaltCompilerStmt struct {
	SpanVal Span
}

func (s *HaltCompilerStmt) Span() Span { return s.SpanVal }
func (s *HaltCompilerStmt) stmtNode()  {}

// ErrorStmt is a panic-mode recovery sentinel: it spans the tokens skipped
// while resynchronizing. Per spec.md's invariant 4, at least one
// diagnostic's span always intersects it.
type ErrorStmt struct {
	SpanVal Span
}

func (s *ErrorStmt) Span() Span { return s.SpanVal }
func (s *ErrorStmt) stmtNode()  {}
