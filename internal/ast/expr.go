package ast

// IntLit is an integer literal; Value is the normalized decimal value,
// Raw the original lexeme (spec.md §4.1: "Payload stores the normalized
// value plus the original lexeme for diagnostics").
type IntLit struct {
	Value   int64
	Raw     string
	SpanVal Span
}

func (e *IntLit) Span() Span { return e.SpanVal }
func (e *IntLit) exprNode()  {}

// FloatLit is a floating-point literal.
type FloatLit struct {
	Value   float64
	Raw     string
	SpanVal Span
}

func (e *FloatLit) Span() Span { return e.SpanVal }
func (e *FloatLit) exprNode()  {}

// StringLit is a fully-resolved single-quoted string (no interpolation).
type StringLit struct {
	Value   string
	SpanVal Span
}

func (e *StringLit) Span() Span { return e.SpanVal }
func (e *StringLit) exprNode()  {}

// InterpStringKind distinguishes the three compound-literal forms that
// share InterpString's segment representation.
type InterpStringKind int

const (
	InterpDoubleQuoted InterpStringKind = iota
	InterpHeredoc
	InterpShellExec
)

// InterpString is a double-quoted string, heredoc, or shell-exec literal
// with one or more interpolated expressions. A literal with zero
// interpolations still uses this node (Segments has exactly one *StringLit
// entry) rather than degrading to a plain StringLit, so heredoc/shell-exec
// origin is never lost.
type InterpString struct {
	Kind     InterpStringKind
	Segments []Expr // *StringLit literal runs (empty runs omitted) and interpolated Expr, in source order
	Label    string // heredoc/nowdoc terminator identifier; empty otherwise
	SpanVal  Span
}

func (e *InterpString) Span() Span { return e.SpanVal }
func (e *InterpString) exprNode()  {}

// NowdocLit is a nowdoc literal: raw text, never interpolated.
type NowdocLit struct {
	Value   string
	Label   string
	SpanVal Span
}

func (e *NowdocLit) Span() Span { return e.SpanVal }
func (e *NowdocLit) exprNode()  {}

// BoolLit is `true` / `false`.
type BoolLit struct {
	Value   bool
	SpanVal Span
}

func (e *BoolLit) Span() Span { return e.SpanVal }
func (e *BoolLit) exprNode()  {}

// NullLit is `null`.
type NullLit struct {
	SpanVal Span
}

func (e *NullLit) Span() Span { return e.SpanVal }
func (e *NullLit) exprNode()  {}

// MagicConstExpr is one of `__LINE__`, `__FILE__`, `__DIR__`, `__FUNCTION__`,
// `__CLASS__`, `__METHOD__`, `__NAMESPACE__`, `__TRAIT__`.
type MagicConstExpr struct {
	Name    string
	SpanVal Span
}

func (e *MagicConstExpr) Span() Span { return e.SpanVal }
func (e *MagicConstExpr) exprNode()  {}

// VariableExpr is `$name`. A dynamic variable (`$$x`, `${expr}`) sets
// NameExpr instead of Name.
type VariableExpr struct {
	Name     string
	NameExpr Expr // non-nil for `$$x` / `${expr}`; Name is empty then
	SpanVal  Span
}

func (e *VariableExpr) Span() Span { return e.SpanVal }
func (e *VariableExpr) exprNode()  {}

// ArrayElement is one entry of an ArrayLit: `key => value`, `...value`
// (unpack), or a by-ref binder when the literal is reused as a
// destructuring assignment target (`[$a, &$b] = $x`).
type ArrayElement struct {
	Key     Expr // nil if positional
	Value   Expr // nil for a skipped slot in `list($a, , $c)`
	ByRef   bool
	Unpack  bool
	SpanVal Span
}

func (el *ArrayElement) Span() Span { return el.SpanVal }

// ArrayLit is `[...]`, `array(...)`, or `list(...)`; the same node is
// reused as an assignment target for destructuring, per the original
// implementation's choice (see SPEC_FULL.md §4).
type ArrayLit struct {
	Elements []*ArrayElement
	IsList   bool // true when written as `list(...)`
	SpanVal  Span
}

func (e *ArrayLit) Span() Span { return e.SpanVal }
func (e *ArrayLit) exprNode()  {}

// BinaryOp identifies a binary operator by its literal spelling, resolved
// against the precedence table of spec.md §4.2.3.
type BinaryOp string

// BinaryExpr is any left/right binary operation other than assignment.
type BinaryExpr struct {
	Op      BinaryOp
	Left    Expr
	Right   Expr
	SpanVal Span
}

func (e *BinaryExpr) Span() Span { return e.SpanVal }
func (e *BinaryExpr) exprNode()  {}

// AssignExpr is `=` or any compound assignment (`+=`, `??=`, …) or the
// by-ref assignment form `=&`.
type AssignExpr struct {
	Op      BinaryOp // "=", "+=", ..., "=&"
	Target  Expr
	Value   Expr
	SpanVal Span
}

func (e *AssignExpr) Span() Span { return e.SpanVal }
func (e *AssignExpr) exprNode()  {}

// UnaryOp identifies a prefix or postfix unary operator.
type UnaryOp string

// UnaryExpr is a prefix or postfix unary operation (`!x`, `-x`, `x++`,
// `--x`, `@x`). `clone x` is a CloneExpr.
type UnaryExpr struct {
	Op       UnaryOp
	Operand  Expr
	Postfix  bool
	SpanVal  Span
}

func (e *UnaryExpr) Span() Span { return e.SpanVal }
func (e *UnaryExpr) exprNode()  {}

// TernaryExpr is `cond ? then : else` or the Elvis form `cond ?: else`
// (Then is nil for Elvis).
type TernaryExpr struct {
	Cond    Expr
	Then    Expr
	Else    Expr
	SpanVal Span
}

func (e *TernaryExpr) Span() Span { return e.SpanVal }
func (e *TernaryExpr) exprNode()  {}

// CoalesceExpr is `a ?? b`.
type CoalesceExpr struct {
	Left    Expr
	Right   Expr
	SpanVal Span
}

func (e *CoalesceExpr) Span() Span { return e.SpanVal }
func (e *CoalesceExpr) exprNode()  {}

// CastKind enumerates the nine PHP cast spellings, including (unset), which
// is diagnosed-but-still-constructed per spec.md §6.
type CastKind string

const (
	CastInt    CastKind = "int"
	CastFloat  CastKind = "float"
	CastString CastKind = "string"
	CastBool   CastKind = "bool"
	CastArray  CastKind = "array"
	CastObject CastKind = "object"
	CastBinary CastKind = "binary"
	CastVoid   CastKind = "void"
	CastUnset  CastKind = "unset" // diagnosed: (unset) cast is invalid PHP, spec.md §6
)

// CastExpr is `(int)expr` and its siblings.
type CastExpr struct {
	Kind    CastKind
	Operand Expr
	SpanVal Span
}

func (e *CastExpr) Span() Span { return e.SpanVal }
func (e *CastExpr) exprNode()  {}

// CallExpr is `callee(args)`. Callee is usually a NameExpr but may be any
// expression (`$fn()`, `(expr)()`, `$obj->prop()` via MethodCall instead).
type CallExpr struct {
	Callee  Expr
	Args    []*Argument
	SpanVal Span
}

func (e *CallExpr) Span() Span { return e.SpanVal }
func (e *CallExpr) exprNode()  {}

// MemberName is the sum of ways a member may be named after `->`/`::`:
// a bare identifier, a braced expression (`{expr}`), or a variable.
type MemberName struct {
	Ident   string
	Expr    Expr // non-nil for `{expr}` or `$var` forms
	SpanVal Span
}

func (m *MemberName) Span() Span { return m.SpanVal }

// MethodCallExpr is `obj->method(args)`.
type MethodCallExpr struct {
	Object  Expr
	Method  *MemberName
	Args    []*Argument
	SpanVal Span
}

func (e *MethodCallExpr) Span() Span { return e.SpanVal }
func (e *MethodCallExpr) exprNode()  {}

// NullsafeMethodCallExpr is `obj?->method(args)`.
type NullsafeMethodCallExpr struct {
	Object  Expr
	Method  *MemberName
	Args    []*Argument
	SpanVal Span
}

func (e *NullsafeMethodCallExpr) Span() Span { return e.SpanVal }
func (e *NullsafeMethodCallExpr) exprNode()  {}

// StaticCallExpr is `Class::method(args)`.
type StaticCallExpr struct {
	Class   Expr // *NameExpr, *VariableExpr, or any expr for `(expr)::method()`
	Method  *MemberName
	Args    []*Argument
	SpanVal Span
}

func (e *StaticCallExpr) Span() Span { return e.SpanVal }
func (e *StaticCallExpr) exprNode()  {}

// PropertyAccessExpr is `obj->prop`.
type PropertyAccessExpr struct {
	Object   Expr
	Property *MemberName
	SpanVal  Span
}

func (e *PropertyAccessExpr) Span() Span { return e.SpanVal }
func (e *PropertyAccessExpr) exprNode()  {}

// NullsafePropertyAccessExpr is `obj?->prop`.
type NullsafePropertyAccessExpr struct {
	Object   Expr
	Property *MemberName
	SpanVal  Span
}

func (e *NullsafePropertyAccessExpr) Span() Span { return e.SpanVal }
func (e *NullsafePropertyAccessExpr) exprNode()  {}

// StaticPropertyAccessExpr is `Class::$prop`.
type StaticPropertyAccessExpr struct {
	Class   Expr
	Prop    *MemberName
	SpanVal Span
}

func (e *StaticPropertyAccessExpr) Span() Span { return e.SpanVal }
func (e *StaticPropertyAccessExpr) exprNode()  {}

// ClassConstAccessExpr is `Class::CONST` or the reserved `Class::class`.
type ClassConstAccessExpr struct {
	Class   Expr
	Const   *MemberName
	SpanVal Span
}

func (e *ClassConstAccessExpr) Span() Span { return e.SpanVal }
func (e *ClassConstAccessExpr) exprNode()  {}

// IndexExpr is `arr[idx]` or, with Index nil, the bare `arr[]` append
// form legal only as an assignment target.
type IndexExpr struct {
	Subject Expr
	Index   Expr // nil for `$a[]`
	SpanVal Span
}

func (e *IndexExpr) Span() Span { return e.SpanVal }
func (e *IndexExpr) exprNode()  {}

// NewExpr is `new Class(args)`, `new $var(args)`, or an anonymous class
// (`new class(args) extends ... implements ... { body }`, AnonClass != nil).
type NewExpr struct {
	Class      Expr // nil when AnonClass != nil
	Args       []*Argument
	AnonClass  *ClassDecl
	SpanVal    Span
}

func (e *NewExpr) Span() Span { return e.SpanVal }
func (e *NewExpr) exprNode()  {}

// CloneExpr is `clone expr`.
type CloneExpr struct {
	Operand Expr
	SpanVal Span
}

func (e *CloneExpr) Span() Span { return e.SpanVal }
func (e *CloneExpr) exprNode()  {}

// InstanceOfExpr is `expr instanceof Class`.
type InstanceOfExpr struct {
	Operand Expr
	Class   Expr // *NameExpr or any expression
	SpanVal Span
}

func (e *InstanceOfExpr) Span() Span { return e.SpanVal }
func (e *InstanceOfExpr) exprNode()  {}

// ClosureUseVar is one `use (&$x)` capture inside a closure's use clause.
type ClosureUseVar struct {
	Name    string
	ByRef   bool
	SpanVal Span
}

func (v *ClosureUseVar) Span() Span { return v.SpanVal }

// ClosureExpr is `function (...) use (...) { body }`, optionally `static`.
type ClosureExpr struct {
	Static      bool
	ByRef       bool
	Params      []*Parameter
	Uses        []*ClosureUseVar
	ReturnType  TypeHint
	Body        *BlockStmt
	Attributes  []*AttributeGroup
	SpanVal     Span
}

func (e *ClosureExpr) Span() Span { return e.SpanVal }
func (e *ClosureExpr) exprNode()  {}

// ArrowFnExpr is `fn(...): RetType => expr`, optionally `static`.
type ArrowFnExpr struct {
	Static     bool
	ByRef      bool
	Params     []*Parameter
	ReturnType TypeHint
	Body       Expr
	Attributes []*AttributeGroup
	SpanVal    Span
}

func (e *ArrowFnExpr) Span() Span { return e.SpanVal }
func (e *ArrowFnExpr) exprNode()  {}

// MatchArm is one `condList => expr` arm; Conds is nil for `default`.
type MatchArm struct {
	Conds   []Expr
	Body    Expr
	SpanVal Span
}

func (a *MatchArm) Span() Span { return a.SpanVal }

// MatchExpr is `match (subject) { arms }`.
type MatchExpr struct {
	Subject Expr
	Arms    []*MatchArm
	SpanVal Span
}

func (e *MatchExpr) Span() Span { return e.SpanVal }
func (e *MatchExpr) exprNode()  {}

// YieldExpr is `yield key? => value?`; both may be nil for bare `yield;`.
type YieldExpr struct {
	Key     Expr
	Value   Expr
	SpanVal Span
}

func (e *YieldExpr) Span() Span { return e.SpanVal }
func (e *YieldExpr) exprNode()  {}

// YieldFromExpr is `yield from expr`.
type YieldFromExpr struct {
	Source  Expr
	SpanVal Span
}

func (e *YieldFromExpr) Span() Span { return e.SpanVal }
func (e *YieldFromExpr) exprNode()  {}

// ThrowExpr is `throw expr`, an expression per PHP 8.0.
type ThrowExpr struct {
	Value   Expr
	SpanVal Span
}

func (e *ThrowExpr) Span() Span { return e.SpanVal }
func (e *ThrowExpr) exprNode()  {}

// FirstClassCallableExpr is `callee(...)`, recognized when the call's
// argument list is exactly `(`, `...`, `)`.
type FirstClassCallableExpr struct {
	Callee  Expr
	SpanVal Span
}

func (e *FirstClassCallableExpr) Span() Span { return e.SpanVal }
func (e *FirstClassCallableExpr) exprNode()  {}

// PipeExpr is `value |> callee` (PHP 8.5).
type PipeExpr struct {
	Value   Expr
	Callee  Expr
	SpanVal Span
}

func (e *PipeExpr) Span() Span { return e.SpanVal }
func (e *PipeExpr) exprNode()  {}

// IncludeKind distinguishes the four include/require variants.
type IncludeKind string

const (
	IncludeInclude     IncludeKind = "include"
	IncludeIncludeOnce IncludeKind = "include_once"
	IncludeRequire     IncludeKind = "require"
	IncludeRequireOnce IncludeKind = "require_once"
)

// IncludeExpr is `include expr` and its three siblings.
type IncludeExpr struct {
	Kind    IncludeKind
	Path    Expr
	SpanVal Span
}

func (e *IncludeExpr) Span() Span { return e.SpanVal }
func (e *IncludeExpr) exprNode()  {}

// PrintExpr is `print expr`, an expression that always evaluates to 1.
type PrintExpr struct {
	Value   Expr
	SpanVal Span
}

func (e *PrintExpr) Span() Span { return e.SpanVal }
func (e *PrintExpr) exprNode()  {}

// IssetExpr is `isset(expr, expr, ...)`.
type IssetExpr struct {
	Vars    []Expr
	SpanVal Span
}

func (e *IssetExpr) Span() Span { return e.SpanVal }
func (e *IssetExpr) exprNode()  {}

// EmptyExpr is `empty(expr)`.
type EmptyExpr struct {
	Value   Expr
	SpanVal Span
}

func (e *EmptyExpr) Span() Span { return e.SpanVal }
func (e *EmptyExpr) exprNode()  {}

// EvalExpr is `eval(expr)`.
type EvalExpr struct {
	Value   Expr
	SpanVal Span
}

func (e *EvalExpr) Span() Span { return e.SpanVal }
func (e *EvalExpr) exprNode()  {}

// ExitExpr is `exit` / `exit(expr)` / `die` / `die(expr)`.
type ExitExpr struct {
	Value   Expr // nil for the bare form
	SpanVal Span
}

func (e *ExitExpr) Span() Span { return e.SpanVal }
func (e *ExitExpr) exprNode()  {}

// NameExpr wraps a Name used in expression position (a function/constant
// reference, a class name before `::`, …).
type NameExpr struct {
	Name    *Name
	SpanVal Span
}

func (e *NameExpr) Span() Span { return e.SpanVal }
func (e *NameExpr) exprNode()  {}

// ErrorExpr is a panic-mode recovery sentinel in expression position.
type ErrorExpr struct {
	SpanVal Span
}

func (e *ErrorExpr) Span() Span { return e.SpanVal }
func (e *ErrorExpr) exprNode()  {}
