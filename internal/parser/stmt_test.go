package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jorgsowa/phpfront/internal/ast"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New([]byte(src))
	prog := p.Parse()
	require.Empty(t, p.Diagnostics(), "unexpected diagnostics for %q", src)
	return prog
}

func TestIfStmt_BraceFormWithElseif(t *testing.T) {
	prog := parseProgram(t, `<?php
if ($a) {
	$x = 1;
} elseif ($b) {
	$x = 2;
} else {
	$x = 3;
}`)
	require.Len(t, prog.Stmts, 1)
	ifs := prog.Stmts[0].(*ast.IfStmt)
	require.False(t, ifs.Alt)
	require.Len(t, ifs.ElseIfs, 1)
	require.NotNil(t, ifs.Else)
}

func TestIfStmt_AlternativeSyntax(t *testing.T) {
	prog := parseProgram(t, `<?php
if ($a):
	echo 1;
elseif ($b):
	echo 2;
else:
	echo 3;
endif;`)
	ifs := prog.Stmts[0].(*ast.IfStmt)
	require.True(t, ifs.Alt)
	require.Len(t, ifs.ElseIfs, 1)
	require.NotNil(t, ifs.Else)
}

func TestWhileStmt_AlternativeSyntax(t *testing.T) {
	prog := parseProgram(t, `<?php
while ($i < 10):
	$i++;
endwhile;`)
	w := prog.Stmts[0].(*ast.WhileStmt)
	require.True(t, w.Alt)
}

func TestForStmt_AlternativeSyntax(t *testing.T) {
	prog := parseProgram(t, `<?php
for ($i = 0; $i < 10; $i++):
	echo $i;
endfor;`)
	f := prog.Stmts[0].(*ast.ForStmt)
	require.True(t, f.Alt)
	require.Len(t, f.Init, 1)
	require.Len(t, f.Cond, 1)
	require.Len(t, f.Step, 1)
}

func TestForeachStmt_KeyValueByRefAlternativeSyntax(t *testing.T) {
	prog := parseProgram(t, `<?php
foreach ($items as $k => &$v):
	echo $k;
endforeach;`)
	f := prog.Stmts[0].(*ast.ForeachStmt)
	require.True(t, f.Alt)
	require.True(t, f.ByRef)
	require.NotNil(t, f.Key)
	require.NotNil(t, f.Value)
}

func TestForeachStmt_ValueOnlyBraceForm(t *testing.T) {
	prog := parseProgram(t, `<?php
foreach ($items as $v) {
	echo $v;
}`)
	f := prog.Stmts[0].(*ast.ForeachStmt)
	require.False(t, f.Alt)
	require.False(t, f.ByRef)
	require.Nil(t, f.Key)
	require.NotNil(t, f.Value)
}

func TestSwitchStmt_BraceForm(t *testing.T) {
	prog := parseProgram(t, `<?php
switch ($x) {
case 1:
	echo "one";
	break;
case 2:
case 3:
	echo "two or three";
	break;
default:
	echo "other";
}`)
	sw := prog.Stmts[0].(*ast.SwitchStmt)
	require.False(t, sw.Alt)
	require.Len(t, sw.Cases, 4)
	require.NotNil(t, sw.Cases[0].Test)
	require.Nil(t, sw.Cases[3].Test)
}

func TestSwitchStmt_AlternativeSyntax(t *testing.T) {
	prog := parseProgram(t, `<?php
switch ($x):
case 1:
	echo "one";
endswitch;`)
	sw := prog.Stmts[0].(*ast.SwitchStmt)
	require.True(t, sw.Alt)
	require.Len(t, sw.Cases, 1)
}

func TestMatchExpr_MultiConditionAndDefaultArm(t *testing.T) {
	expr := parseExprSrc(t, `match ($x) {
		1, 2 => "low",
		default => "other",
	}`)
	m, ok := expr.(*ast.MatchExpr)
	require.True(t, ok, "expected MatchExpr, got %T", expr)
	require.Len(t, m.Arms, 2)
	require.Len(t, m.Arms[0].Conds, 2)
	require.Nil(t, m.Arms[1].Conds)
}

func TestTryStmt_MultiCatchWithFinally(t *testing.T) {
	prog := parseProgram(t, `<?php
try {
	doThing();
} catch (TypeError | ValueError $e) {
	handle($e);
} finally {
	cleanup();
}`)
	tr := prog.Stmts[0].(*ast.TryStmt)
	require.Len(t, tr.Catches, 1)
	require.Len(t, tr.Catches[0].Types, 2)
	require.Equal(t, "e", tr.Catches[0].Var)
	require.NotNil(t, tr.Finally)
}

func TestTryStmt_CatchWithoutVariableBinding(t *testing.T) {
	prog := parseProgram(t, `<?php
try {
	doThing();
} catch (RuntimeException) {
	recover();
}`)
	tr := prog.Stmts[0].(*ast.TryStmt)
	require.Len(t, tr.Catches, 1)
	require.Empty(t, tr.Catches[0].Var)
}

func TestDoWhileStmt(t *testing.T) {
	prog := parseProgram(t, `<?php
do {
	$i++;
} while ($i < 10);`)
	dw := prog.Stmts[0].(*ast.DoWhileStmt)
	require.NotNil(t, dw.Body)
	require.NotNil(t, dw.Cond)
}
