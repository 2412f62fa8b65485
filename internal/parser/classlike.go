package parser

import (
	"github.com/jorgsowa/phpfront/internal/ast"
	"github.com/jorgsowa/phpfront/internal/diag"
	"github.com/jorgsowa/phpfront/internal/lexer"
)

// parseClassLikeDecl handles class/interface/trait/enum declarations at
// statement position: modifiers and attributes have already been
// accumulated by the caller (parseModifiedDecl or parseAttributedDecl).
func (p *Parser) parseClassLikeDecl(start ast.Span, mods ast.Modifiers, attrs []*ast.AttributeGroup, doc string) ast.Stmt {
	var kind ast.ClassLikeKind
	switch p.curTok.Kind {
	case lexer.KwInterface:
		kind = ast.ClassLikeInterface
	case lexer.KwTrait:
		kind = ast.ClassLikeTrait
	case lexer.KwEnum:
		kind = ast.ClassLikeEnum
	default:
		kind = ast.ClassLikeClass
	}
	p.nextToken() // 'class' / 'interface' / 'trait' / 'enum'
	return p.parseClassLikeTail(start, kind, mods, attrs, doc)
}

// parseClassLikeTail parses the name (if any — anonymous classes omit it),
// backing type, extends/implements clauses, and body. Shared by named
// declarations and `new class { ... }` anonymous classes.
func (p *Parser) parseClassLikeTail(start ast.Span, kind ast.ClassLikeKind, mods ast.Modifiers, attrs []*ast.AttributeGroup, doc string) *ast.ClassDecl {
	decl := &ast.ClassDecl{Kind: kind, Modifiers: mods, Attributes: attrs, DocComment: doc}

	if p.curIs(lexer.Identifier) {
		decl.Name = p.curTok.Text()
		p.nextToken()
	}

	if kind == ast.ClassLikeEnum && p.curIs(lexer.Colon) {
		p.nextToken()
		decl.BackingType = p.parseTypeHint()
	}

	if p.curIs(lexer.KwExtends) {
		p.nextToken()
		decl.Extends = append(decl.Extends, p.parseName())
		for p.curIs(lexer.Comma) {
			p.nextToken()
			decl.Extends = append(decl.Extends, p.parseName())
		}
	}

	if p.curIs(lexer.KwImplements) {
		p.nextToken()
		decl.Implements = append(decl.Implements, p.parseName())
		for p.curIs(lexer.Comma) {
			p.nextToken()
			decl.Implements = append(decl.Implements, p.parseName())
		}
	}

	if !p.curIs(lexer.LBrace) {
		p.errExpected("'{' for class body", p.curTok.Span)
		decl.SpanVal = mergeSpan(start, p.prevEndSpan())
		return decl
	}
	p.pushDelim(delimBrace, p.curTok.Span)
	p.nextToken()

	prevInClass, prevInEnum := p.ctx.InClass, p.ctx.InEnum
	p.ctx.InClass = true
	p.ctx.InEnum = kind == ast.ClassLikeEnum
	for !p.curIs(lexer.RBrace) && !p.atEOF() {
		m := p.parseClassMember()
		if m != nil {
			decl.Members = append(decl.Members, m)
		}
	}
	p.ctx.InClass, p.ctx.InEnum = prevInClass, prevInEnum

	end := p.curTok.Span
	if p.curIs(lexer.RBrace) {
		p.popDelim(delimBrace)
		p.nextToken()
	} else {
		p.errExpectedAfter("'}'", "class body", p.curTok.Span)
	}
	decl.SpanVal = mergeSpan(start, end)
	return decl
}

// parseClassMember parses one member declaration: a modifier run followed
// by const/property/method/use/case, or a bare `use` trait import.
func (p *Parser) parseClassMember() ast.ClassMember {
	start := p.curTok.Span
	doc := p.takeDoc()

	var attrs []*ast.AttributeGroup
	for p.curIs(lexer.AttrOpen) {
		attrs = append(attrs, p.parseAttributeGroup())
	}

	if p.curIs(lexer.KwUse) {
		return p.parseUseTraitMember(start)
	}
	if p.curIs(lexer.KwCase) {
		return p.parseEnumCaseMember(start, attrs, doc)
	}

	mods := ast.Modifiers{}
	for {
		switch p.curTok.Kind {
		case lexer.KwPublic:
			p.applyVisibility(&mods, ast.VisPublic)
		case lexer.KwProtected:
			p.applyVisibility(&mods, ast.VisProtected)
		case lexer.KwPrivate:
			p.applyVisibility(&mods, ast.VisPrivate)
		case lexer.KwStatic:
			mods.Static = true
			p.nextToken()
		case lexer.KwAbstract:
			mods.Abstract = true
			p.nextToken()
		case lexer.KwFinal:
			mods.Final = true
			p.nextToken()
		case lexer.KwReadonly:
			mods.Readonly = true
			p.nextToken()
		case lexer.KwVar:
			mods.HasVisibility = true
			mods.Visibility = ast.VisPublic
			p.nextToken()
		default:
			goto modsDone
		}
	}
modsDone:

	switch p.curTok.Kind {
	case lexer.KwConst:
		return p.parseClassConstMember(start, mods, attrs, doc)
	case lexer.KwFunction:
		return p.parseMethodMember(start, mods, attrs, doc)
	case lexer.Variable:
		return p.parsePropertyMember(start, mods, nil, attrs, doc)
	default:
		if isTypeHintStart(p.curTok.Kind) && p.curTok.Kind != lexer.LParen {
			typ := p.parseTypeHint()
			return p.parsePropertyMember(start, mods, typ, attrs, doc)
		}
		p.errUnexpected(p.curTok.Span, "token in class body")
		p.nextToken()
		return nil
	}
}

// applyVisibility handles plain visibility and asymmetric `private(set)`
// (PHP 8.4): the `(set)` suffix only narrows the setter, not the getter.
func (p *Parser) applyVisibility(mods *ast.Modifiers, vis ast.Visibility) {
	p.nextToken()
	if p.curIs(lexer.LParen) && p.peekTok.Kind == lexer.Identifier && p.peekTok.Text() == "set" {
		p.nextToken() // '('
		p.nextToken() // 'set'
		mods.SetVisibility, mods.HasSetVisibility = vis, true
		if p.curIs(lexer.RParen) {
			p.nextToken()
		}
		return
	}
	mods.Visibility, mods.HasVisibility = vis, true
}

func (p *Parser) parseClassConstMember(start ast.Span, mods ast.Modifiers, attrs []*ast.AttributeGroup, doc string) ast.ClassMember {
	p.nextToken() // 'const'
	var typ ast.TypeHint
	if isTypeHintStart(p.curTok.Kind) && p.peekTok.Kind == lexer.Identifier {
		typ = p.parseTypeHint()
	}
	m := &ast.ClassConstMember{Modifiers: mods, Type: typ, Attributes: attrs, DocComment: doc}
	for {
		name := p.curTok.Text()
		p.nextToken()
		m.Names = append(m.Names, name)
		if p.curIs(lexer.Assign) {
			p.nextToken()
			m.Values = append(m.Values, p.parseExpr(bpAssign))
		} else {
			p.errExpected("'=' in constant declaration", p.curTok.Span)
			m.Values = append(m.Values, &ast.ErrorExpr{SpanVal: p.curTok.Span})
		}
		if p.curIs(lexer.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	p.consumeSemicolon()
	m.SpanVal = mergeSpan(start, p.prevEndSpan())
	return m
}

func (p *Parser) parseMethodMember(start ast.Span, mods ast.Modifiers, attrs []*ast.AttributeGroup, doc string) ast.ClassMember {
	p.nextToken() // 'function'
	byRefReturn := false
	if p.curIs(lexer.Amp) {
		byRefReturn = true
		p.nextToken()
	}
	name := p.identifierLikeText()
	p.nextToken()

	params := p.parseParamList()

	var ret ast.TypeHint
	if p.curIs(lexer.Colon) {
		p.nextToken()
		ret = p.parseTypeHint()
	}

	var body *ast.BlockStmt
	if p.curIs(lexer.LBrace) {
		body = p.parseBlockStmt()
	} else {
		p.consumeSemicolon()
	}

	return &ast.MethodMember{
		Modifiers: mods, Name: name, Params: params, ReturnType: ret, ByRefReturn: byRefReturn,
		Body: body, Attributes: attrs, DocComment: doc, SpanVal: mergeSpan(start, p.prevEndSpan()),
	}
}

func (p *Parser) parsePropertyMember(start ast.Span, mods ast.Modifiers, typ ast.TypeHint, attrs []*ast.AttributeGroup, doc string) ast.ClassMember {
	m := &ast.PropertyMember{Modifiers: mods, Type: typ, Attributes: attrs, DocComment: doc}
	for {
		name := p.curTok.Text()
		p.nextToken()
		m.Names = append(m.Names, name)

		var def ast.Expr
		if p.curIs(lexer.Assign) {
			p.nextToken()
			def = p.parseExpr(bpAssign)
		}
		m.Defaults = append(m.Defaults, def)

		if p.curIs(lexer.LBrace) && len(m.Names) == 1 {
			m.Hooks = p.parsePropertyHooks()
			m.SpanVal = mergeSpan(start, p.prevEndSpan())
			return m
		}

		if p.curIs(lexer.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	p.consumeSemicolon()
	m.SpanVal = mergeSpan(start, p.prevEndSpan())
	return m
}

// parsePropertyHooks parses the PHP 8.4 `{ get => expr; set(Type $v) { ... } }`
// block following a hooked property's name/default.
func (p *Parser) parsePropertyHooks() []*ast.PropertyHook {
	p.pushDelim(delimBrace, p.curTok.Span)
	p.nextToken() // '{'
	var hooks []*ast.PropertyHook
	for !p.curIs(lexer.RBrace) && !p.atEOF() {
		hooks = append(hooks, p.parsePropertyHook())
	}
	if p.curIs(lexer.RBrace) {
		p.popDelim(delimBrace)
		p.nextToken()
	} else {
		p.errExpectedAfter("'}'", "property hooks", p.curTok.Span)
	}
	return hooks
}

func (p *Parser) parsePropertyHook() *ast.PropertyHook {
	start := p.curTok.Span
	mods := ast.Modifiers{}
	if p.curIs(lexer.KwFinal) {
		mods.Final = true
		p.nextToken()
	}
	byRef := false
	if p.curIs(lexer.Amp) {
		byRef = true
		p.nextToken()
	}
	name := p.identifierLikeText() // "get" or "set"
	p.nextToken()

	var param *ast.Parameter
	if p.curIs(lexer.LParen) {
		params := p.parseParamList()
		if len(params) > 0 {
			param = params[0]
		}
	}

	h := &ast.PropertyHook{Name: name, Modifiers: mods, Param: param, ByRef: byRef}
	switch p.curTok.Kind {
	case lexer.FatArrow:
		p.nextToken()
		h.Expr = p.parseExpr(bpAssign)
		p.consumeSemicolon()
	case lexer.LBrace:
		h.Body = p.parseBlockStmt()
	default:
		p.consumeSemicolon()
	}
	h.SpanVal = mergeSpan(start, p.prevEndSpan())
	return h
}

func (p *Parser) parseUseTraitMember(start ast.Span) ast.ClassMember {
	p.nextToken() // 'use'
	m := &ast.UseTraitMember{}
	m.Traits = append(m.Traits, p.parseName())
	for p.curIs(lexer.Comma) {
		p.nextToken()
		m.Traits = append(m.Traits, p.parseName())
	}

	if p.curIs(lexer.LBrace) {
		p.pushDelim(delimBrace, p.curTok.Span)
		p.nextToken()
		for !p.curIs(lexer.RBrace) && !p.atEOF() {
			m.Adaptations = append(m.Adaptations, p.parseTraitAdaptation())
		}
		if p.curIs(lexer.RBrace) {
			p.popDelim(delimBrace)
			p.nextToken()
		} else {
			p.errExpectedAfter("'}'", "trait adaptation block", p.curTok.Span)
		}
	} else {
		p.consumeSemicolon()
	}
	m.SpanVal = mergeSpan(start, p.prevEndSpan())
	return m
}

func (p *Parser) parseTraitAdaptation() *ast.TraitAdaptation {
	start := p.curTok.Span
	first := p.identifierLikeText()
	p.nextToken()

	a := &ast.TraitAdaptation{}
	if p.curIs(lexer.DoubleColon) {
		p.nextToken()
		a.Trait = first
		a.Method = p.identifierLikeText()
		p.nextToken()
	} else {
		a.Method = first
	}

	if p.curIs(lexer.KwInsteadof) {
		p.nextToken()
		a.Insteadof = append(a.Insteadof, p.identifierLikeText())
		p.nextToken()
		for p.curIs(lexer.Comma) {
			p.nextToken()
			a.Insteadof = append(a.Insteadof, p.identifierLikeText())
			p.nextToken()
		}
	} else if p.curIs(lexer.KwAs) {
		p.nextToken()
		switch p.curTok.Kind {
		case lexer.KwPublic:
			a.AsVisibility, a.HasAsVis = ast.Modifiers{Visibility: ast.VisPublic, HasVisibility: true}, true
			p.nextToken()
		case lexer.KwProtected:
			a.AsVisibility, a.HasAsVis = ast.Modifiers{Visibility: ast.VisProtected, HasVisibility: true}, true
			p.nextToken()
		case lexer.KwPrivate:
			a.AsVisibility, a.HasAsVis = ast.Modifiers{Visibility: ast.VisPrivate, HasVisibility: true}, true
			p.nextToken()
		}
		if p.curIs(lexer.Identifier) {
			a.As = p.curTok.Text()
			p.nextToken()
		}
	}

	p.consumeSemicolon()
	a.SpanVal = mergeSpan(start, p.prevEndSpan())
	return a
}

func (p *Parser) parseEnumCaseMember(start ast.Span, attrs []*ast.AttributeGroup, doc string) ast.ClassMember {
	p.nextToken() // 'case'
	if p.curIs(lexer.KwClass) {
		p.addDiag(diag.CodeReservedName, p.curTok.Span, "'class' is reserved and cannot name an enum case")
	}
	name := p.identifierLikeText()
	p.nextToken()
	var val ast.Expr
	if p.curIs(lexer.Assign) {
		p.nextToken()
		val = p.parseExpr(bpAssign)
	}
	p.consumeSemicolon()
	return &ast.EnumCaseMember{Name: name, Value: val, Attributes: attrs, DocComment: doc, SpanVal: mergeSpan(start, p.prevEndSpan())}
}
