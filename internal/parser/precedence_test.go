package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jorgsowa/phpfront/internal/ast"
)

// parseExprSrc wraps src in a minimal PHP script and returns the single
// top-level expression statement's expression.
func parseExprSrc(t *testing.T, src string) ast.Expr {
	t.Helper()
	p := New([]byte("<?php " + src + ";"))
	prog := p.Parse()
	require.Empty(t, p.Diagnostics(), "unexpected diagnostics for %q", src)
	require.Len(t, prog.Stmts, 1)
	stmt, ok := prog.Stmts[0].(*ast.ExprStmt)
	require.True(t, ok, "expected ExprStmt, got %T", prog.Stmts[0])
	return stmt.X
}

func TestPrecedence_MultiplicationBindsTighterThanAddition(t *testing.T) {
	expr := parseExprSrc(t, "1 + 2 * 3")

	bin, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok, "expected top-level BinaryExpr, got %T", expr)
	require.Equal(t, ast.BinaryOp("+"), bin.Op)

	right, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok, "expected right operand to be BinaryExpr, got %T", bin.Right)
	require.Equal(t, ast.BinaryOp("*"), right.Op)
}

func TestPrecedence_PowIsRightAssociative(t *testing.T) {
	expr := parseExprSrc(t, "2 ** 3 ** 2")

	top, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, ast.BinaryOp("**"), top.Op)

	_, leftIsBinary := top.Left.(*ast.BinaryExpr)
	require.False(t, leftIsBinary, "left operand should be the literal 2, not a nested **")

	right, ok := top.Right.(*ast.BinaryExpr)
	require.True(t, ok, "right operand should be the nested 3 ** 2")
	require.Equal(t, ast.BinaryOp("**"), right.Op)
}

func TestPrecedence_AssignmentIsRightAssociative(t *testing.T) {
	expr := parseExprSrc(t, "$a = $b = 1")

	top, ok := expr.(*ast.AssignExpr)
	require.True(t, ok, "expected AssignExpr, got %T", expr)
	require.Equal(t, ast.BinaryOp("="), top.Op)

	_, ok = top.Value.(*ast.AssignExpr)
	require.True(t, ok, "value of outer assignment should itself be an AssignExpr")
}

func TestPrecedence_CoalesceProducesDedicatedNode(t *testing.T) {
	expr := parseExprSrc(t, "$a ?? $b ?? $c")

	top, ok := expr.(*ast.CoalesceExpr)
	require.True(t, ok, "expected CoalesceExpr, got %T", expr)

	_, ok = top.Right.(*ast.CoalesceExpr)
	require.True(t, ok, "?? is right-associative: right should itself be a CoalesceExpr")
}

func TestPrecedence_PipeProducesDedicatedNode(t *testing.T) {
	expr := parseExprSrc(t, "$x |> strtoupper")

	pipe, ok := expr.(*ast.PipeExpr)
	require.True(t, ok, "expected PipeExpr, got %T", expr)
	require.IsType(t, &ast.VariableExpr{}, pipe.Value)
	require.IsType(t, &ast.NameExpr{}, pipe.Callee)
}

func TestPrecedence_TernaryIsLooserThanCoalesce(t *testing.T) {
	expr := parseExprSrc(t, "$a ?? $b ? 1 : 2")

	tern, ok := expr.(*ast.TernaryExpr)
	require.True(t, ok, "expected top-level TernaryExpr, got %T", expr)

	_, ok = tern.Cond.(*ast.CoalesceExpr)
	require.True(t, ok, "ternary condition should be the ?? expression")
}

func TestPrecedence_UnaryNotBindsTighterThanInstanceof(t *testing.T) {
	// Per the binding-power table, unary prefix operators (level 40) bind
	// tighter than instanceof (level 36): `!$x instanceof Foo` groups as
	// `(!$x) instanceof Foo`, not `!($x instanceof Foo)`.
	expr := parseExprSrc(t, "!$x instanceof Foo")

	inst, ok := expr.(*ast.InstanceOfExpr)
	require.True(t, ok, "expected top-level InstanceOfExpr, got %T", expr)

	unary, ok := inst.Operand.(*ast.UnaryExpr)
	require.True(t, ok, "instanceof operand should be the unary !$x expression, got %T", inst.Operand)
	require.Equal(t, ast.UnaryOp("!"), unary.Op)
}

func TestPrecedence_AndKeywordBindsLooserThanAssignment(t *testing.T) {
	// `and` binds looser than assignment.
	expr := parseExprSrc(t, "$a = true and false")

	top, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok, "expected top-level BinaryExpr (and), got %T", expr)
	require.Equal(t, ast.BinaryOp("and"), top.Op)

	_, ok = top.Left.(*ast.AssignExpr)
	require.True(t, ok, "left of 'and' should be the assignment $a = true")
}

func TestPrecedence_CallBindsTighterThanBinary(t *testing.T) {
	expr := parseExprSrc(t, "foo() + 1")

	bin, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	_, ok = bin.Left.(*ast.CallExpr)
	require.True(t, ok, "left operand should be the call foo()")
}

func TestPrecedence_MemberAccessChainsBeforePostfixIncrement(t *testing.T) {
	expr := parseExprSrc(t, "$obj->count++")

	unary, ok := expr.(*ast.UnaryExpr)
	require.True(t, ok, "expected top-level UnaryExpr (postfix ++), got %T", expr)
	require.True(t, unary.Postfix)
	_, ok = unary.Operand.(*ast.PropertyAccessExpr)
	require.True(t, ok, "operand should be the property access $obj->count")
}
