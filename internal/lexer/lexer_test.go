package lexer

import (
	"testing"

	"github.com/jorgsowa/phpfront/internal/diag"
)

func newForTest(src string) *Lexer {
	return New([]byte(src), &diag.Bag{})
}

func TestNextToken_OpenTagAndBasicScript(t *testing.T) {
	input := `<?php $x = 10;`

	tests := []struct {
		expectedKind Kind
		expectedText string
	}{
		{OpenTag, ""},
		{Variable, "x"},
		{Assign, ""},
		{IntLit, "10"},
		{Semicolon, ""},
		{EOF, ""},
	}

	l := newForTest(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - kind wrong. expected=%q, got=%q", i, tt.expectedKind, tok.Kind)
		}
		if tt.expectedText != "" && tok.Text() != tt.expectedText {
			t.Fatalf("tests[%d] - text wrong. expected=%q, got=%q", i, tt.expectedText, tok.Text())
		}
	}
}

func TestNextToken_InlineHTMLBeforeOpenTag(t *testing.T) {
	input := "<b>hi</b><?php echo 1;"

	l := newForTest(input)

	tok := l.NextToken()
	if tok.Kind != InlineHTML {
		t.Fatalf("expected InlineHTML, got %q", tok.Kind)
	}
	if tok.Text() != "<b>hi</b>" {
		t.Fatalf("expected inline HTML text, got %q", tok.Text())
	}

	tok = l.NextToken()
	if tok.Kind != OpenTag {
		t.Fatalf("expected OpenTag, got %q", tok.Kind)
	}
}

func TestNextToken_Operators(t *testing.T) {
	input := "<?php = + - * / == != < > <= >= ?? |> <=>"

	tests := []Kind{
		OpenTag, Assign, Plus, Minus, Star, Slash, Eq, NotEq, Lt, Gt, Le, Ge,
		Coalesce, PipeGt, Spaceship, EOF,
	}

	l := newForTest(input)
	for i, expected := range tests {
		tok := l.NextToken()
		if tok.Kind != expected {
			t.Fatalf("tests[%d] - expected token %q, got %q", i, expected, tok.Kind)
		}
	}
}

func TestNextToken_Keywords(t *testing.T) {
	input := "<?php if else elseif while foreach function class interface trait enum"

	tests := []Kind{
		OpenTag, KwIf, KwElse, KwElseif, KwWhile, KwForeach, KwFunction,
		KwClass, KwInterface, KwTrait, KwEnum, EOF,
	}

	l := newForTest(input)
	for i, expected := range tests {
		tok := l.NextToken()
		if tok.Kind != expected {
			t.Fatalf("tests[%d] - expected token %q, got %q", i, expected, tok.Kind)
		}
	}
}

func TestNextToken_ContextualKeywordsStayIdentifiers(t *testing.T) {
	// "from"/"set"/"get" never come back as anything but Identifier; the
	// parser demotes "readonly"/"fn"/"match"/"enum" itself where needed.
	input := "<?php from set get"

	l := newForTest(input)
	l.NextToken() // OpenTag
	for _, word := range []string{"from", "set", "get"} {
		tok := l.NextToken()
		if tok.Kind != Identifier {
			t.Fatalf("expected %q to lex as Identifier, got %q", word, tok.Kind)
		}
		if tok.Text() != word {
			t.Fatalf("expected text %q, got %q", word, tok.Text())
		}
	}
}

func TestNextToken_NumericLiterals(t *testing.T) {
	input := "<?php 10 3.14 0x1A 0b101 0o17 017 1_000_000"

	l := newForTest(input)
	l.NextToken() // OpenTag

	tests := []struct {
		kind Kind
		raw  string
	}{
		{IntLit, "10"},
		{FloatLit, "3.14"},
		{IntLit, "0x1A"},
		{IntLit, "0b101"},
		{IntLit, "0o17"},
		{IntLit, "017"},
		{IntLit, "1_000_000"},
	}
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d] - expected kind %q, got %q", i, tt.kind, tok.Kind)
		}
		if tok.Text() != tt.raw {
			t.Fatalf("tests[%d] - expected raw %q, got %q", i, tt.raw, tok.Text())
		}
	}
}

func TestNextToken_SingleQuotedString(t *testing.T) {
	input := `<?php 'hello world'`

	l := newForTest(input)
	l.NextToken() // OpenTag
	tok := l.NextToken()
	if tok.Kind != StringLit {
		t.Fatalf("expected StringLit, got %q", tok.Kind)
	}
	if tok.Text() != "hello world" {
		t.Fatalf("expected decoded text, got %q", tok.Text())
	}
}

func TestNextToken_Variable(t *testing.T) {
	input := `<?php $name`

	l := newForTest(input)
	l.NextToken() // OpenTag
	tok := l.NextToken()
	if tok.Kind != Variable {
		t.Fatalf("expected Variable, got %q", tok.Kind)
	}
	if tok.Text() != "name" {
		t.Fatalf("expected name without '$', got %q", tok.Text())
	}
}

func TestNextToken_CloseTagEmitsSemicolonBoundary(t *testing.T) {
	input := "<?php echo 1 ?>after"

	l := newForTest(input)
	kinds := []Kind{OpenTag, KwEcho, IntLit, CloseTag, InlineHTML, EOF}
	for i, expected := range kinds {
		tok := l.NextToken()
		if tok.Kind != expected {
			t.Fatalf("tests[%d] - expected %q, got %q", i, expected, tok.Kind)
		}
	}
}

func TestNextToken_ShebangIsSkipped(t *testing.T) {
	input := "#!/usr/bin/env php\n<?php $x;"

	l := newForTest(input)
	tok := l.NextToken()
	if tok.Kind != OpenTag {
		t.Fatalf("expected shebang to be skipped straight to OpenTag, got %q", tok.Kind)
	}
}

func TestPendingDocComment(t *testing.T) {
	input := "<?php /** does a thing */ function foo() {}"

	l := newForTest(input)
	l.NextToken() // OpenTag
	if d := l.PendingDocComment(); d != "" {
		t.Fatalf("expected no pending doc yet, got %q", d)
	}
	tok := l.NextToken() // function, after consuming the doc comment as trivia
	if tok.Kind != KwFunction {
		t.Fatalf("expected KwFunction, got %q", tok.Kind)
	}
	if d := l.PendingDocComment(); d == "" {
		t.Fatal("expected a pending doc comment to have been captured")
	}
}
