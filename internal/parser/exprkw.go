package parser

import (
	"github.com/jorgsowa/phpfront/internal/ast"
	"github.com/jorgsowa/phpfront/internal/lexer"
)

func (p *Parser) parseNewExpr() ast.Expr {
	start := p.curTok.Span
	p.nextToken() // 'new'

	if p.curIs(lexer.KwClass) {
		anon := p.parseClassBodyAsAnon(start)
		return &ast.NewExpr{AnonClass: anon.ClassDecl, Args: anon.attachedArgs, SpanVal: mergeSpan(start, anon.Span())}
	}

	class := p.parseExpr(bpPostfix)
	var args []*ast.Argument
	if call, ok := class.(*ast.CallExpr); ok {
		// `new Foo(...)` parses its callee+args as one CallExpr through the
		// ordinary postfix chain; unwrap it back into NewExpr's own shape.
		class = call.Callee
		args = call.Args
	}
	return &ast.NewExpr{Class: class, Args: args, SpanVal: mergeSpan(start, p.prevEndSpan())}
}

// anonClassResult bundles the parsed anonymous-class body together with the
// constructor arguments that may follow `new class(...)`.
type anonClassResult struct {
	*ast.ClassDecl
	attachedArgs []*ast.Argument
}

func (p *Parser) parseClassBodyAsAnon(start ast.Span) *anonClassResult {
	p.nextToken() // 'class'
	var args []*ast.Argument
	if p.curIs(lexer.LParen) {
		args = p.parseArgumentList()
	}
	decl := p.parseClassLikeTail(start, ast.ClassLikeClass, ast.Modifiers{}, nil, "")
	return &anonClassResult{ClassDecl: decl, attachedArgs: args}
}

func (p *Parser) parseThrowExpr() ast.Expr {
	start := p.curTok.Span
	p.nextToken()
	v := p.parseExpr(bpAssign)
	return &ast.ThrowExpr{Value: v, SpanVal: mergeSpan(start, v.Span())}
}

func (p *Parser) parseYieldExpr() ast.Expr {
	start := p.curTok.Span
	p.nextToken() // 'yield'

	if p.curTok.Text() == "from" && p.curIs(lexer.Identifier) {
		p.nextToken()
		src := p.parseExpr(bpAssign)
		return &ast.YieldFromExpr{Source: src, SpanVal: mergeSpan(start, src.Span())}
	}

	if p.isStatementTerminator() {
		return &ast.YieldExpr{SpanVal: start}
	}

	first := p.parseExpr(bpAssign)
	if p.curIs(lexer.FatArrow) {
		p.nextToken()
		val := p.parseExpr(bpAssign)
		return &ast.YieldExpr{Key: first, Value: val, SpanVal: mergeSpan(start, val.Span())}
	}
	return &ast.YieldExpr{Value: first, SpanVal: mergeSpan(start, first.Span())}
}

func (p *Parser) isStatementTerminator() bool {
	switch p.curTok.Kind {
	case lexer.Semicolon, lexer.RParen, lexer.RBracket, lexer.RBrace, lexer.Comma, lexer.EOF:
		return true
	default:
		return false
	}
}

func (p *Parser) parseMatchExpr() ast.Expr {
	start := p.curTok.Span
	p.nextToken() // 'match'
	if !p.curIs(lexer.LParen) {
		p.errExpected("'(' after match", p.curTok.Span)
	}
	p.pushDelim(delimParen, p.curTok.Span)
	p.nextToken()
	subject := p.parseExpr(bpNone)
	if p.curIs(lexer.RParen) {
		p.popDelim(delimParen)
		p.nextToken()
	} else {
		p.errExpectedAfter("')'", "match subject", p.curTok.Span)
	}

	if !p.curIs(lexer.LBrace) {
		p.errExpected("'{' for match arms", p.curTok.Span)
		return &ast.MatchExpr{Subject: subject, SpanVal: mergeSpan(start, p.prevEndSpan())}
	}
	p.pushDelim(delimBrace, p.curTok.Span)
	p.nextToken()

	prevInMatch := p.ctx.InMatchArms
	p.ctx.InMatchArms = true
	var arms []*ast.MatchArm
	for !p.curIs(lexer.RBrace) && !p.atEOF() {
		arms = append(arms, p.parseMatchArm())
		if p.curIs(lexer.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	p.ctx.InMatchArms = prevInMatch

	end := p.curTok.Span
	if p.curIs(lexer.RBrace) {
		p.popDelim(delimBrace)
		p.nextToken()
	} else {
		p.errExpectedAfter("'}'", "match arms", p.curTok.Span)
	}
	return &ast.MatchExpr{Subject: subject, Arms: arms, SpanVal: mergeSpan(start, end)}
}

func (p *Parser) parseMatchArm() *ast.MatchArm {
	start := p.curTok.Span
	var conds []ast.Expr
	if p.curIs(lexer.KwDefault) {
		p.nextToken()
	} else {
		conds = append(conds, p.parseExpr(bpAssign))
		for p.curIs(lexer.Comma) && !p.peekIs(lexer.FatArrow) {
			p.nextToken()
			conds = append(conds, p.parseExpr(bpAssign))
		}
	}
	if p.curIs(lexer.FatArrow) {
		p.nextToken()
	} else {
		p.errExpected("'=>' in match arm", p.curTok.Span)
	}
	body := p.parseExpr(bpAssign)
	return &ast.MatchArm{Conds: conds, Body: body, SpanVal: mergeSpan(start, body.Span())}
}

func (p *Parser) parseCloneExpr() ast.Expr {
	start := p.curTok.Span
	p.nextToken()
	v := p.parseExpr(bpUnary)
	return &ast.CloneExpr{Operand: v, SpanVal: mergeSpan(start, v.Span())}
}

func (p *Parser) parsePrintExpr() ast.Expr {
	start := p.curTok.Span
	p.nextToken()
	v := p.parseExpr(bpAssign)
	return &ast.PrintExpr{Value: v, SpanVal: mergeSpan(start, v.Span())}
}

func (p *Parser) parseIssetExpr() ast.Expr {
	start := p.curTok.Span
	p.nextToken() // 'isset'
	if !p.curIs(lexer.LParen) {
		p.errExpected("'(' after isset", p.curTok.Span)
		return &ast.IssetExpr{SpanVal: start}
	}
	p.pushDelim(delimParen, p.curTok.Span)
	p.nextToken()
	var vars []ast.Expr
	for !p.curIs(lexer.RParen) && !p.atEOF() {
		vars = append(vars, p.parseExpr(bpAssign))
		if p.curIs(lexer.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	end := p.curTok.Span
	if p.curIs(lexer.RParen) {
		p.popDelim(delimParen)
		p.nextToken()
	} else {
		p.errExpectedAfter("')'", "isset()", p.curTok.Span)
	}
	return &ast.IssetExpr{Vars: vars, SpanVal: mergeSpan(start, end)}
}

func (p *Parser) parseEmptyExpr() ast.Expr {
	start := p.curTok.Span
	p.nextToken()
	if !p.curIs(lexer.LParen) {
		p.errExpected("'(' after empty", p.curTok.Span)
		return &ast.EmptyExpr{SpanVal: start}
	}
	p.pushDelim(delimParen, p.curTok.Span)
	p.nextToken()
	v := p.parseExpr(bpNone)
	end := p.curTok.Span
	if p.curIs(lexer.RParen) {
		p.popDelim(delimParen)
		p.nextToken()
	} else {
		p.errExpectedAfter("')'", "empty()", p.curTok.Span)
	}
	return &ast.EmptyExpr{Value: v, SpanVal: mergeSpan(start, end)}
}

func (p *Parser) parseEvalExpr() ast.Expr {
	start := p.curTok.Span
	p.nextToken()
	if !p.curIs(lexer.LParen) {
		p.errExpected("'(' after eval", p.curTok.Span)
		return &ast.EvalExpr{SpanVal: start}
	}
	p.pushDelim(delimParen, p.curTok.Span)
	p.nextToken()
	v := p.parseExpr(bpNone)
	end := p.curTok.Span
	if p.curIs(lexer.RParen) {
		p.popDelim(delimParen)
		p.nextToken()
	} else {
		p.errExpectedAfter("')'", "eval()", p.curTok.Span)
	}
	return &ast.EvalExpr{Value: v, SpanVal: mergeSpan(start, end)}
}

func (p *Parser) parseExitExpr() ast.Expr {
	start := p.curTok.Span
	p.nextToken() // 'exit' / 'die'
	var v ast.Expr
	if p.curIs(lexer.LParen) {
		p.pushDelim(delimParen, p.curTok.Span)
		p.nextToken()
		if !p.curIs(lexer.RParen) {
			v = p.parseExpr(bpNone)
		}
		if p.curIs(lexer.RParen) {
			p.popDelim(delimParen)
			p.nextToken()
		} else {
			p.errExpectedAfter("')'", "exit()", p.curTok.Span)
		}
	}
	return &ast.ExitExpr{Value: v, SpanVal: mergeSpan(start, p.prevEndSpan())}
}

var includeKinds = map[lexer.Kind]ast.IncludeKind{
	lexer.KwInclude:     ast.IncludeInclude,
	lexer.KwIncludeOnce: ast.IncludeIncludeOnce,
	lexer.KwRequire:     ast.IncludeRequire,
	lexer.KwRequireOnce: ast.IncludeRequireOnce,
}

func (p *Parser) parseIncludeExpr() ast.Expr {
	start := p.curTok.Span
	kind := includeKinds[p.curTok.Kind]
	p.nextToken()
	path := p.parseExpr(bpAssign)
	return &ast.IncludeExpr{Kind: kind, Path: path, SpanVal: mergeSpan(start, path.Span())}
}

func (p *Parser) parseClosureExpr() ast.Expr {
	start := p.curTok.Span
	static := false
	if p.curIs(lexer.KwStatic) {
		static = true
		p.nextToken()
	}
	p.nextToken() // 'function'

	byRef := false
	if p.curIs(lexer.Amp) {
		byRef = true
		p.nextToken()
	}

	params := p.parseParamList()

	var uses []*ast.ClosureUseVar
	if p.curIs(lexer.KwUse) {
		p.nextToken()
		p.pushDelim(delimParen, p.curTok.Span)
		p.nextToken() // '('
		for !p.curIs(lexer.RParen) && !p.atEOF() {
			uStart := p.curTok.Span
			uByRef := false
			if p.curIs(lexer.Amp) {
				uByRef = true
				p.nextToken()
			}
			name := ""
			if p.curIs(lexer.Variable) {
				name = p.curTok.Text()
				p.nextToken()
			}
			uses = append(uses, &ast.ClosureUseVar{Name: name, ByRef: uByRef, SpanVal: mergeSpan(uStart, p.prevEndSpan())})
			if p.curIs(lexer.Comma) {
				p.nextToken()
				continue
			}
			break
		}
		if p.curIs(lexer.RParen) {
			p.popDelim(delimParen)
			p.nextToken()
		} else {
			p.errExpectedAfter("')'", "use clause", p.curTok.Span)
		}
	}

	var ret ast.TypeHint
	if p.curIs(lexer.Colon) {
		p.nextToken()
		ret = p.parseTypeHint()
	}

	body := p.parseBlockStmt()
	return &ast.ClosureExpr{
		Static: static, ByRef: byRef, Params: params, Uses: uses, ReturnType: ret,
		Body: body, SpanVal: mergeSpan(start, body.Span()),
	}
}

func (p *Parser) parseArrowFnExpr() ast.Expr {
	start := p.curTok.Span
	static := false
	if p.curIs(lexer.KwStatic) {
		static = true
		p.nextToken()
	}
	p.nextToken() // 'fn'

	byRef := false
	if p.curIs(lexer.Amp) {
		byRef = true
		p.nextToken()
	}

	params := p.parseParamList()

	var ret ast.TypeHint
	if p.curIs(lexer.Colon) {
		p.nextToken()
		ret = p.parseTypeHint()
	}

	if p.curIs(lexer.FatArrow) {
		p.nextToken()
	} else {
		p.errExpected("'=>' after fn parameter list", p.curTok.Span)
	}
	body := p.parseExpr(bpAssign)
	return &ast.ArrowFnExpr{Static: static, ByRef: byRef, Params: params, ReturnType: ret, Body: body, SpanVal: mergeSpan(start, body.Span())}
}
