package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jorgsowa/phpfront/internal/ast"
)

func TestArrayKeywordLit_BuildsArrayLitNotCallExpr(t *testing.T) {
	expr := parseExprSrc(t, "array(1, 2, 3)")

	lit, ok := expr.(*ast.ArrayLit)
	require.True(t, ok, "expected ArrayLit, got %T", expr)
	require.False(t, lit.IsList)
	require.Len(t, lit.Elements, 3)
	for i, want := range []int64{1, 2, 3} {
		il, ok := lit.Elements[i].Value.(*ast.IntLit)
		require.True(t, ok, "element %d: expected IntLit, got %T", i, lit.Elements[i].Value)
		require.Equal(t, want, il.Value)
	}
}

func TestArrayKeywordLit_SameShapeAsBracketLit(t *testing.T) {
	bracket := parseExprSrc(t, "[1, 2]")
	keyword := parseExprSrc(t, "array(1, 2)")

	_, bracketIsArrayLit := bracket.(*ast.ArrayLit)
	_, keywordIsArrayLit := keyword.(*ast.ArrayLit)
	require.True(t, bracketIsArrayLit)
	require.True(t, keywordIsArrayLit)
}

func TestArrayKeywordLit_KeyValueByRefAndUnpack(t *testing.T) {
	expr := parseExprSrc(t, `array("a" => 1, &$b, ...$rest)`)

	lit, ok := expr.(*ast.ArrayLit)
	require.True(t, ok, "expected ArrayLit, got %T", expr)
	require.Len(t, lit.Elements, 3)

	require.NotNil(t, lit.Elements[0].Key)
	require.True(t, lit.Elements[1].ByRef)
	require.True(t, lit.Elements[2].Unpack)
}

func TestArrayKeywordLit_Empty(t *testing.T) {
	expr := parseExprSrc(t, "array()")

	lit, ok := expr.(*ast.ArrayLit)
	require.True(t, ok, "expected ArrayLit, got %T", expr)
	require.Empty(t, lit.Elements)
}
