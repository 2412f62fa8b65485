package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jorgsowa/phpfront/internal/ast"
)

func TestDoubleQuoted_SimpleVariableInterpolation(t *testing.T) {
	expr := parseExprSrc(t, `"hello $name!"`)

	str, ok := expr.(*ast.InterpString)
	require.True(t, ok, "expected InterpString, got %T", expr)
	require.Equal(t, ast.InterpDoubleQuoted, str.Kind)
	require.Len(t, str.Segments, 3)

	prefix, ok := str.Segments[0].(*ast.StringLit)
	require.True(t, ok)
	require.Equal(t, "hello ", prefix.Value)

	v, ok := str.Segments[1].(*ast.VariableExpr)
	require.True(t, ok, "expected VariableExpr, got %T", str.Segments[1])
	require.Equal(t, "name", v.Name)

	suffix, ok := str.Segments[2].(*ast.StringLit)
	require.True(t, ok)
	require.Equal(t, "!", suffix.Value)
}

func TestDoubleQuoted_SimplePropertyInterpolation(t *testing.T) {
	expr := parseExprSrc(t, `"value: $obj->prop"`)

	str, ok := expr.(*ast.InterpString)
	require.True(t, ok)
	require.Len(t, str.Segments, 2)

	access, ok := str.Segments[1].(*ast.PropertyAccessExpr)
	require.True(t, ok, "expected PropertyAccessExpr, got %T", str.Segments[1])
	require.IsType(t, &ast.VariableExpr{}, access.Object)
	require.Equal(t, "prop", access.Property.Ident)
}

func TestDoubleQuoted_BraceInterpolationAllowsArbitraryExpr(t *testing.T) {
	expr := parseExprSrc(t, `"total: {$a + $b}"`)

	str, ok := expr.(*ast.InterpString)
	require.True(t, ok)
	require.Len(t, str.Segments, 2)

	_, ok = str.Segments[1].(*ast.BinaryExpr)
	require.True(t, ok, "expected the braced expression to parse as a BinaryExpr, got %T", str.Segments[1])
}

func TestDoubleQuoted_NoInterpolationStillUsesInterpString(t *testing.T) {
	expr := parseExprSrc(t, `"plain text"`)

	str, ok := expr.(*ast.InterpString)
	require.True(t, ok, "plain double-quoted text should still be InterpString, got %T", expr)
	require.Len(t, str.Segments, 1)
	lit, ok := str.Segments[0].(*ast.StringLit)
	require.True(t, ok)
	require.Equal(t, "plain text", lit.Value)
}

func TestHeredoc_WithInterpolation(t *testing.T) {
	src := "<?php $x = <<<EOT\nHello $name\nEOT;\n"
	p := New([]byte(src))
	prog := p.Parse()
	require.Empty(t, p.Diagnostics())
	require.Len(t, prog.Stmts, 1)

	exprStmt, ok := prog.Stmts[0].(*ast.ExprStmt)
	require.True(t, ok)
	assign, ok := exprStmt.X.(*ast.AssignExpr)
	require.True(t, ok, "expected AssignExpr, got %T", exprStmt.X)

	str, ok := assign.Value.(*ast.InterpString)
	require.True(t, ok, "expected InterpString, got %T", assign.Value)
	require.Equal(t, ast.InterpHeredoc, str.Kind)
	require.Equal(t, "EOT", str.Label)

	_, ok = str.Segments[len(str.Segments)-1].(*ast.VariableExpr)
	require.True(t, ok, "expected the interpolated variable as the last heredoc segment")
}

func TestNowdoc_NeverInterpolates(t *testing.T) {
	src := "<?php $x = <<<'EOT'\nRaw $name\nEOT;\n"
	p := New([]byte(src))
	prog := p.Parse()
	require.Empty(t, p.Diagnostics())

	exprStmt := prog.Stmts[0].(*ast.ExprStmt)
	assign := exprStmt.X.(*ast.AssignExpr)

	nowdoc, ok := assign.Value.(*ast.NowdocLit)
	require.True(t, ok, "expected NowdocLit, got %T", assign.Value)
	require.Equal(t, "EOT", nowdoc.Label)
	require.Contains(t, nowdoc.Value, "$name", "nowdoc content must not be interpolated")
}

func TestShellExec_ProducesInterpString(t *testing.T) {
	expr := parseExprSrc(t, "`ls $dir`")

	str, ok := expr.(*ast.InterpString)
	require.True(t, ok, "expected InterpString, got %T", expr)
	require.Equal(t, ast.InterpShellExec, str.Kind)
}
