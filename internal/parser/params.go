package parser

import (
	"github.com/jorgsowa/phpfront/internal/ast"
	"github.com/jorgsowa/phpfront/internal/lexer"
)

// parseParamList parses a `(` ... `)` parameter list, including
// constructor-promotion modifiers. Promotion modifiers are accepted in every
// parameter list, not only a `__construct`'s; nothing here diagnoses them.
func (p *Parser) parseParamList() []*ast.Parameter {
	p.pushDelim(delimParen, p.curTok.Span)
	p.nextToken() // '('
	var params []*ast.Parameter
	for !p.curIs(lexer.RParen) && !p.atEOF() {
		params = append(params, p.parseParam())
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
		p.errExpectedAfter("')'", "parameter list", p.curTok.Span)
	}
	return params
}

func (p *Parser) parseParam() *ast.Parameter {
	start := p.curTok.Span
	var attrs []*ast.AttributeGroup
	for p.curIs(lexer.AttrOpen) {
		attrs = append(attrs, p.parseAttributeGroup())
	}

	var promo *ast.Modifiers
	mods := ast.Modifiers{}
	sawMod := false
	for {
		switch p.curTok.Kind {
		case lexer.KwPublic:
			mods.Visibility, mods.HasVisibility, sawMod = ast.VisPublic, true, true
			p.nextToken()
		case lexer.KwProtected:
			mods.Visibility, mods.HasVisibility, sawMod = ast.VisProtected, true, true
			p.nextToken()
		case lexer.KwPrivate:
			mods.Visibility, mods.HasVisibility, sawMod = ast.VisPrivate, true, true
			p.nextToken()
		case lexer.KwReadonly:
			mods.Readonly, sawMod = true, true
			p.nextToken()
		default:
			goto modsDone
		}
	}
modsDone:
	if sawMod {
		promo = &mods
	}

	var typ ast.TypeHint
	if !p.curIs(lexer.Amp) && !p.curIs(lexer.Ellipsis) && !p.curIs(lexer.Variable) {
		typ = p.parseTypeHint()
	}

	byRef := false
	if p.curIs(lexer.Amp) {
		byRef = true
		p.nextToken()
	}
	variadic := false
	if p.curIs(lexer.Ellipsis) {
		variadic = true
		p.nextToken()
	}

	name := ""
	if p.curIs(lexer.Variable) {
		name = p.curTok.Text()
		p.nextToken()
	} else {
		p.errExpected("parameter name", p.curTok.Span)
	}

	var def ast.Expr
	if p.curIs(lexer.Assign) {
		p.nextToken()
		def = p.parseExpr(bpAssign)
	}

	end := p.prevEndSpan()
	return &ast.Parameter{
		Name: name, Type: typ, Default: def, ByRef: byRef, Variadic: variadic,
		Attributes: attrs, Promoted: promo, DocComment: p.takeDoc(),
		SpanVal: mergeSpan(start, end),
	}
}

// parseTypeHint parses the type-hint grammar of spec.md §4.2.4: an optional
// leading `?`, then a name or a `&`/`|`-joined combination, with
// parenthesized intersection members folding a DNF union. A `|` or `&`
// after a nullable atom is diagnosed and the combination is still built.
func (p *Parser) parseTypeHint() ast.TypeHint {
	start := p.curTok.Span
	var first ast.TypeHint
	if p.curIs(lexer.Question) {
		p.nextToken()
		inner := p.parseTypeHintAtom()
		first = &ast.NullableType{Inner: inner, SpanVal: mergeSpan(start, inner.Span())}
		if !p.curIs(lexer.Pipe) && !(p.curIs(lexer.Amp) && isTypeHintStart(p.peekTok.Kind)) {
			return first
		}
		p.errUnexpected(p.curTok.Span, "'"+string(p.curTok.Kind)+"' after a nullable type")
	} else {
		first = p.parseTypeHintAtom()
	}

	if p.curIs(lexer.Pipe) {
		members := []ast.TypeHint{first}
		for p.curIs(lexer.Pipe) {
			p.nextToken()
			members = append(members, p.parseTypeHintAtom())
		}
		return &ast.UnionType{Members: members, SpanVal: mergeSpan(start, p.prevEndSpan())}
	}

	if p.curIs(lexer.Amp) && isTypeHintStart(p.peekTok.Kind) {
		members := []ast.TypeHint{first}
		for p.curIs(lexer.Amp) && isTypeHintStart(p.peekTok.Kind) {
			p.nextToken()
			members = append(members, p.parseTypeHintAtom())
		}
		return &ast.IntersectionType{Members: members, SpanVal: mergeSpan(start, p.prevEndSpan())}
	}

	return first
}

// parseTypeHintAtom parses one non-union, non-top-level-nullable member: a
// simple name, or a parenthesized intersection inside a DNF union.
func (p *Parser) parseTypeHintAtom() ast.TypeHint {
	start := p.curTok.Span
	if p.curIs(lexer.LParen) {
		p.nextToken()
		first := p.simpleTypeAtom()
		members := []ast.TypeHint{first}
		for p.curIs(lexer.Amp) {
			p.nextToken()
			members = append(members, p.simpleTypeAtom())
		}
		end := p.curTok.Span
		if p.curIs(lexer.RParen) {
			p.nextToken()
		} else {
			p.errExpected("')'", p.curTok.Span)
		}
		return &ast.IntersectionType{Members: members, SpanVal: mergeSpan(start, end)}
	}
	return p.simpleTypeAtom()
}

func (p *Parser) simpleTypeAtom() ast.TypeHint {
	name := p.parseName()
	return &ast.SimpleType{Name: name, SpanVal: name.Span()}
}

func isTypeHintStart(kind lexer.Kind) bool {
	switch kind {
	case lexer.Identifier, lexer.Backslash, lexer.KwNamespace, lexer.KwArray,
		lexer.KwStatic, lexer.KwSelf, lexer.KwParent, lexer.KwCallable, lexer.LParen:
		return true
	default:
		return false
	}
}

func (p *Parser) parseAttributeGroup() *ast.AttributeGroup {
	start := p.curTok.Span
	p.nextToken() // '#['
	var attrs []*ast.Attribute
	for !p.curIs(lexer.RBracket) && !p.atEOF() {
		attrs = append(attrs, p.parseAttribute())
		if p.curIs(lexer.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	end := p.curTok.Span
	if p.curIs(lexer.RBracket) {
		p.nextToken()
	} else {
		p.errExpectedAfter("']'", "attribute group", p.curTok.Span)
	}
	return &ast.AttributeGroup{Attributes: attrs, SpanVal: mergeSpan(start, end)}
}

func (p *Parser) parseAttribute() *ast.Attribute {
	start := p.curTok.Span
	name := p.parseName()
	var args []*ast.Argument
	if p.curIs(lexer.LParen) {
		args = p.parseArgumentList()
	}
	return &ast.Attribute{Name: name, Arguments: args, SpanVal: mergeSpan(start, p.prevEndSpan())}
}
