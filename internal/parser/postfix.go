package parser

import (
	"github.com/jorgsowa/phpfront/internal/ast"
	"github.com/jorgsowa/phpfront/internal/lexer"
)

// parsePostfixChain applies every `(...)`, `[...]`, `->`, `?->`, `::`, `++`,
// `--` that immediately follows an already-parsed expression. These all
// bind tighter than any binary operator (bpPostfix in precedence.go), so
// they are applied in a dedicated loop rather than through infixFns.
func (p *Parser) parsePostfixChain(left ast.Expr) ast.Expr {
	for {
		switch p.curTok.Kind {
		case lexer.LParen:
			left = p.parseCallOn(left)
		case lexer.LBracket:
			left = p.parseIndexOn(left)
		case lexer.Arrow:
			left = p.parseMemberAccessOn(left, false)
		case lexer.NullsafeArr:
			left = p.parseMemberAccessOn(left, true)
		case lexer.DoubleColon:
			left = p.parseStaticAccessOn(left)
		case lexer.PlusPlus, lexer.MinusMinus:
			tok := p.curTok
			p.nextToken()
			left = &ast.UnaryExpr{Op: ast.UnaryOp(string(tok.Kind)), Operand: left, Postfix: true, SpanVal: mergeSpan(left.Span(), tok.Span)}
		default:
			return left
		}
	}
}

func (p *Parser) parseCallOn(callee ast.Expr) ast.Expr {
	if p.isFirstClassCallableArgs() {
		start := p.curTok.Span
		p.nextToken() // '('
		p.nextToken() // '...'
		end := p.curTok.Span
		if p.curIs(lexer.RParen) {
			p.nextToken()
		}
		_ = start
		return &ast.FirstClassCallableExpr{Callee: callee, SpanVal: mergeSpan(callee.Span(), end)}
	}
	args := p.parseArgumentList()
	end := p.prevEndSpan()
	return &ast.CallExpr{Callee: callee, Args: args, SpanVal: mergeSpan(callee.Span(), end)}
}

func (p *Parser) parseIndexOn(subject ast.Expr) ast.Expr {
	start := p.curTok.Span
	p.pushDelim(delimBracket, start)
	p.nextToken() // '['
	var idx ast.Expr
	if !p.curIs(lexer.RBracket) {
		idx = p.parseExpr(bpNone)
	}
	end := p.curTok.Span
	if p.curIs(lexer.RBracket) {
		p.popDelim(delimBracket)
		p.nextToken()
	} else {
		p.errExpectedAfter("']'", "index expression", p.curTok.Span)
	}
	return &ast.IndexExpr{Subject: subject, Index: idx, SpanVal: mergeSpan(subject.Span(), end)}
}

// parseMemberName consumes the name following `->`/`?->`/`::`: a bare
// identifier (including otherwise-reserved words), a `{expr}` computed
// name, or a `$var`/`$$var`/`${expr}` dynamic name.
func (p *Parser) parseMemberName() *ast.MemberName {
	start := p.curTok.Span
	switch p.curTok.Kind {
	case lexer.LBrace:
		p.nextToken()
		inner := p.parseExpr(bpNone)
		end := p.curTok.Span
		if p.curIs(lexer.RBrace) {
			p.nextToken()
		} else {
			p.errExpected("'}'", p.curTok.Span)
		}
		return &ast.MemberName{Expr: inner, SpanVal: mergeSpan(start, end)}
	case lexer.Variable:
		v := p.parseVariable()
		return &ast.MemberName{Expr: v, SpanVal: v.Span()}
	case lexer.Dollar:
		v := p.parseDollarVariable()
		return &ast.MemberName{Expr: v, SpanVal: v.Span()}
	default:
		text := p.identifierLikeText()
		p.nextToken()
		return &ast.MemberName{Ident: text, SpanVal: start}
	}
}

func (p *Parser) parseMemberAccessOn(object ast.Expr, nullsafe bool) ast.Expr {
	p.nextToken() // '->' or '?->'
	member := p.parseMemberName()

	if p.curIs(lexer.LParen) {
		if p.isFirstClassCallableArgs() {
			p.nextToken()
			p.nextToken()
			end := p.curTok.Span
			if p.curIs(lexer.RParen) {
				p.nextToken()
			}
			var call ast.Expr
			if nullsafe {
				call = &ast.NullsafeMethodCallExpr{Object: object, Method: member, SpanVal: mergeSpan(object.Span(), end)}
			} else {
				call = &ast.MethodCallExpr{Object: object, Method: member, SpanVal: mergeSpan(object.Span(), end)}
			}
			return &ast.FirstClassCallableExpr{Callee: call, SpanVal: call.Span()}
		}
		args := p.parseArgumentList()
		end := p.prevEndSpan()
		if nullsafe {
			return &ast.NullsafeMethodCallExpr{Object: object, Method: member, Args: args, SpanVal: mergeSpan(object.Span(), end)}
		}
		return &ast.MethodCallExpr{Object: object, Method: member, Args: args, SpanVal: mergeSpan(object.Span(), end)}
	}

	if nullsafe {
		return &ast.NullsafePropertyAccessExpr{Object: object, Property: member, SpanVal: mergeSpan(object.Span(), member.Span())}
	}
	return &ast.PropertyAccessExpr{Object: object, Property: member, SpanVal: mergeSpan(object.Span(), member.Span())}
}

func (p *Parser) parseStaticAccessOn(class ast.Expr) ast.Expr {
	p.nextToken() // '::'

	if p.curIs(lexer.Variable) || p.curIs(lexer.Dollar) {
		member := p.parseMemberName()
		if p.curIs(lexer.LParen) {
			args := p.parseArgumentList()
			end := p.prevEndSpan()
			return &ast.StaticCallExpr{Class: class, Method: member, Args: args, SpanVal: mergeSpan(class.Span(), end)}
		}
		return &ast.StaticPropertyAccessExpr{Class: class, Prop: member, SpanVal: mergeSpan(class.Span(), member.Span())}
	}

	member := p.parseMemberName()
	if p.curIs(lexer.LParen) {
		if p.isFirstClassCallableArgs() {
			p.nextToken()
			p.nextToken()
			end := p.curTok.Span
			if p.curIs(lexer.RParen) {
				p.nextToken()
			}
			call := &ast.StaticCallExpr{Class: class, Method: member, SpanVal: mergeSpan(class.Span(), end)}
			return &ast.FirstClassCallableExpr{Callee: call, SpanVal: call.Span()}
		}
		args := p.parseArgumentList()
		end := p.prevEndSpan()
		return &ast.StaticCallExpr{Class: class, Method: member, Args: args, SpanVal: mergeSpan(class.Span(), end)}
	}

	return &ast.ClassConstAccessExpr{Class: class, Const: member, SpanVal: mergeSpan(class.Span(), member.Span())}
}
