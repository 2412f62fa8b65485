package phpparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jorgsowa/phpfront/internal/ast"
	"github.com/jorgsowa/phpfront/internal/diag"
)

func TestParse_WellFormedSourceHasNoDiagnostics(t *testing.T) {
	result := Parse([]byte("<?php function add($a, $b) { return $a + $b; }"))

	require.False(t, result.HasErrors())
	require.Empty(t, result.Diagnostics)
	require.NoError(t, result.Err())
	require.NotNil(t, result.Program)
	require.Len(t, result.Program.Stmts, 1)
	_, ok := result.Program.Stmts[0].(*ast.FunctionDecl)
	require.True(t, ok)
}

func TestParse_MalformedSourceStillReturnsATree(t *testing.T) {
	result := Parse([]byte("<?php function ("))

	require.True(t, result.HasErrors())
	require.NotEmpty(t, result.Diagnostics)
	require.Error(t, result.Err())
	require.NotNil(t, result.Program, "the front end must never abort on malformed input")
}

func TestParse_WithFilenameDoesNotAffectDiagnosticContent(t *testing.T) {
	plain := Parse([]byte("<?php )"))
	named := Parse([]byte("<?php )"), WithFilename("broken.php"))

	require.Equal(t, len(plain.Diagnostics), len(named.Diagnostics))
}

func TestParse_WithMaxErrorsCapsDiagnosticCount(t *testing.T) {
	// Each "$a = ;" statement is individually well-formed enough to produce
	// exactly one diagnostic (the missing assignment RHS) and then resync at
	// its own ';', so a run of them produces one diagnostic per repetition;
	// capping should stop accumulation early.
	src := "<?php " + strings.Repeat("$a = ; ", 50)
	capped := Parse([]byte(src), WithMaxErrors(3))
	uncapped := Parse([]byte(src))

	require.LessOrEqual(t, len(capped.Diagnostics), 3)
	require.Greater(t, len(uncapped.Diagnostics), 3)
}

func TestParse_WithTriviaCapturesDocComments(t *testing.T) {
	src := "<?php /** Adds two numbers. */ function add($a, $b) { return $a + $b; }"

	withTrivia := Parse([]byte(src), WithTrivia(true))
	fn := withTrivia.Program.Stmts[0].(*ast.FunctionDecl)
	require.Contains(t, fn.DocComment, "Adds two numbers")
}

func TestResult_ErrFoldsDiagnosticsIntoOneError(t *testing.T) {
	result := Parse([]byte("<?php )"))
	err := result.Err()
	require.Error(t, err)

	var found bool
	for _, d := range result.Diagnostics {
		if d.Code == diag.CodeUnexpected {
			found = true
		}
	}
	require.True(t, found)
}
