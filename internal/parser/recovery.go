package parser

import (
	"github.com/jorgsowa/phpfront/internal/ast"
	"github.com/jorgsowa/phpfront/internal/diag"
	"github.com/jorgsowa/phpfront/internal/lexer"
)

// syncKinds are statement-starting tokens panic-mode recovery treats as
// resynchronization points: once curTok reaches one of these (or a `;`, or
// EOF), recovery stops discarding tokens and normal parsing resumes.
var syncKinds = map[lexer.Kind]bool{
	lexer.KwIf: true, lexer.KwWhile: true, lexer.KwDo: true, lexer.KwFor: true,
	lexer.KwForeach: true, lexer.KwSwitch: true, lexer.KwReturn: true,
	lexer.KwBreak: true, lexer.KwContinue: true, lexer.KwEcho: true,
	lexer.KwFunction: true, lexer.KwClass: true, lexer.KwInterface: true,
	lexer.KwTrait: true, lexer.KwEnum: true, lexer.KwTry: true,
	lexer.KwThrow: true, lexer.KwGlobal: true, lexer.KwStatic: true,
	lexer.KwNamespace: true, lexer.KwUse: true, lexer.KwConst: true,
	lexer.KwUnset: true, lexer.KwGoto: true, lexer.KwDeclare: true,
	lexer.LBrace: true, lexer.RBrace: true, lexer.CloseTag: true,
}

// recoverStatement implements panic-mode recovery (spec.md §4.2.6,
// invariant 4): it discards tokens starting at badTok until it reaches a
// synchronization point, then records one ErrorStmt spanning what was
// skipped so every discarded run is visible in the tree. It always
// consumes at least one token so the main loop in Parse/parseAltBody can
// never spin without progress.
func (p *Parser) recoverStatement(badTok lexer.Token) *ast.ErrorStmt {
	start := badTok.Span
	end := badTok.Span
	if p.curTok.Span == badTok.Span {
		p.nextToken()
	}
	for !p.atEOF() && !p.curIs(lexer.Semicolon) && !syncKinds[p.curTok.Kind] {
		end = p.curTok.Span
		p.nextToken()
	}
	if p.curIs(lexer.Semicolon) {
		end = p.curTok.Span
		p.nextToken()
	}
	span := mergeSpan(start, end)
	p.addDiag(diag.CodeUnexpected, span, "unexpected token; skipping to next statement")
	return &ast.ErrorStmt{SpanVal: span}
}
