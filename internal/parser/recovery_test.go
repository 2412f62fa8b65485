package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jorgsowa/phpfront/internal/ast"
	"github.com/jorgsowa/phpfront/internal/diag"
)

func diagCodes(diags []diag.Diagnostic) []diag.Code {
	codes := make([]diag.Code, len(diags))
	for i, d := range diags {
		codes[i] = d.Code
	}
	return codes
}

func TestRecovery_ModifierRunWithoutClassKeywordProducesErrorStmt(t *testing.T) {
	p := New([]byte("<?php abstract $x;"))
	prog := p.Parse()

	require.NotEmpty(t, p.Diagnostics())
	require.Len(t, prog.Stmts, 2, "the bad modifier run and the following $x; should both surface")

	errStmt, ok := prog.Stmts[0].(*ast.ErrorStmt)
	require.True(t, ok, "expected ErrorStmt, got %T", prog.Stmts[0])

	found := false
	for _, d := range p.Diagnostics() {
		if d.Span.Intersects(errStmt.SpanVal) {
			found = true
		}
	}
	require.True(t, found, "ErrorStmt at %s has no intersecting diagnostic", errStmt.SpanVal)
}

func TestRecovery_AttributeWithoutAttributableDeclProducesErrorStmt(t *testing.T) {
	p := New([]byte("<?php #[Foo] $x;"))
	prog := p.Parse()

	require.NotEmpty(t, p.Diagnostics())
	errStmt, ok := prog.Stmts[0].(*ast.ErrorStmt)
	require.True(t, ok, "expected ErrorStmt, got %T", prog.Stmts[0])

	found := false
	for _, d := range p.Diagnostics() {
		if d.Span.Intersects(errStmt.SpanVal) {
			found = true
		}
	}
	require.True(t, found, "ErrorStmt at %s has no intersecting diagnostic", errStmt.SpanVal)
}

func TestRecovery_TokenThatCannotStartAStatementProducesErrorStmt(t *testing.T) {
	// ')' can neither start a statement nor an expression: parseStmt's
	// default case reports no prefix fn and returns nil, routing it through
	// recoverStatement, which sweeps up to the following ';' as one ErrorStmt.
	p := New([]byte("<?php );"))
	prog := p.Parse()

	require.Contains(t, diagCodes(p.Diagnostics()), diag.CodeUnexpected)
	require.Len(t, prog.Stmts, 1)

	_, ok := prog.Stmts[0].(*ast.ErrorStmt)
	require.True(t, ok, "expected ErrorStmt, got %T", prog.Stmts[0])
}

func TestRecovery_RunOfGarbageTokensBeforeValidStatementIsOneErrorStmt(t *testing.T) {
	// A run of unrecognized tokens collapses into a single ErrorStmt/single
	// diagnostic, rather than one ExprStmt(ErrorExpr) per garbage token.
	p := New([]byte("<?php ) ) ) if (1) {}"))
	prog := p.Parse()

	codes := diagCodes(p.Diagnostics())
	require.Len(t, codes, 1)
	require.Equal(t, diag.CodeUnexpected, codes[0])

	require.Len(t, prog.Stmts, 2)
	_, ok := prog.Stmts[0].(*ast.ErrorStmt)
	require.True(t, ok, "expected ErrorStmt, got %T", prog.Stmts[0])
	_, ok = prog.Stmts[1].(*ast.IfStmt)
	require.True(t, ok, "expected IfStmt, got %T", prog.Stmts[1])
}

func TestRecovery_MissingAssignmentRHSProducesOneDiagnostic(t *testing.T) {
	// parseNud must not consume the ';' itself while diagnosing the missing
	// expression: that leaves consumeSemicolon nothing to find, which would
	// raise a second, spurious diagnostic for the same gap.
	p := New([]byte("<?php $a = ; $b = 2;"))
	prog := p.Parse()

	require.Equal(t, []diag.Code{diag.CodeExpectedExpression}, diagCodes(p.Diagnostics()))
	require.Len(t, prog.Stmts, 2)
}

func TestRecovery_UnclosedBraceDiagnosedAtEOF(t *testing.T) {
	p := New([]byte("<?php function foo() {"))
	p.Parse()

	require.Contains(t, diagCodes(p.Diagnostics()), diag.CodeUnclosedDelimiter)
}

func TestRecovery_UnclosedParenDiagnosedAtEOF(t *testing.T) {
	p := New([]byte("<?php foo(1, 2"))
	p.Parse()

	require.Contains(t, diagCodes(p.Diagnostics()), diag.CodeUnclosedDelimiter)
}

func TestRecovery_MakesForwardProgressOnRepeatedGarbage(t *testing.T) {
	// A long run of tokens that can never start a statement must still
	// terminate: recoverStatement always consumes at least one token and
	// none of them are sync points, so it sweeps the whole run into a
	// single ErrorStmt rather than spinning.
	src := "<?php " + strings.Repeat(")", 500)
	p := New([]byte(src))

	done := make(chan struct{})
	go func() {
		p.Parse()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Parse did not terminate on pathological input; forward-progress guarantee violated")
	}
}
