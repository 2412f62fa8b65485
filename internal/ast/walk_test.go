package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jorgsowa/phpfront/internal/ast"
)

func TestWalk_VisitsEveryNodeInDepthFirstPreOrder(t *testing.T) {
	// if ($a + 1) { return $a; }
	prog := &ast.Program{
		Stmts: []ast.Stmt{
			&ast.IfStmt{
				Cond: &ast.BinaryExpr{
					Left:  &ast.VariableExpr{Name: "a"},
					Right: &ast.IntLit{Value: 1},
					Op:    "+",
				},
				Then: &ast.BlockStmt{
					Stmts: []ast.Stmt{
						&ast.ReturnStmt{Value: &ast.VariableExpr{Name: "a"}},
					},
				},
			},
		},
	}

	var order []string
	ast.Walk(prog, func(n ast.Node) bool {
		order = append(order, nodeKind(n))
		return true
	})

	require.Equal(t, []string{
		"Program", "IfStmt", "BinaryExpr", "VariableExpr", "IntLit",
		"BlockStmt", "ReturnStmt", "VariableExpr",
	}, order)
}

func TestWalk_ReturningFalseSkipsChildren(t *testing.T) {
	prog := &ast.Program{
		Stmts: []ast.Stmt{
			&ast.ExprStmt{X: &ast.BinaryExpr{
				Left:  &ast.VariableExpr{Name: "a"},
				Right: &ast.VariableExpr{Name: "b"},
				Op:    "+",
			}},
		},
	}

	var visited []string
	ast.Walk(prog, func(n ast.Node) bool {
		visited = append(visited, nodeKind(n))
		_, isBinary := n.(*ast.BinaryExpr)
		return !isBinary
	})

	require.Equal(t, []string{"Program", "ExprStmt", "BinaryExpr"}, visited,
		"descending into BinaryExpr's children should have been skipped")
}

func TestWalk_NilNodeIsANoOp(t *testing.T) {
	calls := 0
	ast.Walk(nil, func(ast.Node) bool { calls++; return true })
	require.Zero(t, calls)
}

func TestWalk_NilInterfaceFieldsAreSkipped(t *testing.T) {
	// A bare `return;` has a nil Value; Walk must not panic or visit it.
	stmt := &ast.ReturnStmt{}

	var visited []string
	ast.Walk(stmt, func(n ast.Node) bool {
		visited = append(visited, nodeKind(n))
		return true
	})

	require.Equal(t, []string{"ReturnStmt"}, visited)
}

func nodeKind(n ast.Node) string {
	switch n.(type) {
	case *ast.Program:
		return "Program"
	case *ast.IfStmt:
		return "IfStmt"
	case *ast.BlockStmt:
		return "BlockStmt"
	case *ast.ReturnStmt:
		return "ReturnStmt"
	case *ast.ExprStmt:
		return "ExprStmt"
	case *ast.BinaryExpr:
		return "BinaryExpr"
	case *ast.VariableExpr:
		return "VariableExpr"
	case *ast.IntLit:
		return "IntLit"
	default:
		return "Other"
	}
}
