package parser

import (
	"github.com/jorgsowa/phpfront/internal/ast"
	"github.com/jorgsowa/phpfront/internal/diag"
	"github.com/jorgsowa/phpfront/internal/lexer"
)

// consumeSemicolon eats a trailing `;`, or a `?>` (PHP treats the closing
// tag as an implicit statement terminator), diagnosing and continuing
// otherwise — the caller's already-built node is never discarded for a
// missing terminator.
func (p *Parser) consumeSemicolon() {
	switch p.curTok.Kind {
	case lexer.Semicolon:
		p.nextToken()
	case lexer.CloseTag, lexer.EOF:
		// implicit terminator; CloseTag itself advances the lexer back to
		// HTML mode on the next token pull.
	default:
		p.errExpectedAfter("';'", "statement", p.curTok.Span)
	}
}

// parseStmt dispatches on curTok. Returning nil (with no diagnostic of its
// own beyond what the sub-parser already added) signals the caller to
// invoke recoverStatement.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.curTok.Kind {
	case lexer.InlineHTML:
		return p.parseInlineHTML()
	case lexer.OpenTag, lexer.OpenTagEcho:
		p.nextToken()
		return p.parseStmt()
	case lexer.CloseTag:
		p.nextToken()
		return p.parseStmt()
	case lexer.Semicolon:
		start := p.curTok.Span
		p.nextToken()
		return &ast.BlockStmt{SpanVal: start}
	case lexer.LBrace:
		return p.parseBlockStmt()
	case lexer.KwEcho:
		return p.parseEchoStmt()
	case lexer.KwReturn:
		return p.parseReturnStmt()
	case lexer.KwIf:
		return p.parseIfStmt()
	case lexer.KwWhile:
		return p.parseWhileStmt()
	case lexer.KwDo:
		return p.parseDoWhileStmt()
	case lexer.KwFor:
		return p.parseForStmt()
	case lexer.KwForeach:
		return p.parseForeachStmt()
	case lexer.KwSwitch:
		return p.parseSwitchStmt()
	case lexer.KwBreak:
		return p.parseBreakStmt()
	case lexer.KwContinue:
		return p.parseContinueStmt()
	case lexer.KwGoto:
		return p.parseGotoStmt()
	case lexer.KwFunction:
		if isNamedFunctionDecl(p.peekTok.Kind) {
			return p.parseFunctionDecl(nil, p.takeDoc())
		}
		return p.parseExprStmt()
	case lexer.KwAbstract, lexer.KwFinal, lexer.KwReadonly:
		return p.parseModifiedDecl()
	case lexer.KwClass, lexer.KwInterface, lexer.KwTrait, lexer.KwEnum:
		start := p.curTok.Span
		return p.parseClassLikeDecl(start, ast.Modifiers{}, nil, p.takeDoc())
	case lexer.AttrOpen:
		return p.parseAttributedDecl()
	case lexer.KwNamespace:
		return p.parseNamespaceStmt()
	case lexer.KwUse:
		return p.parseUseStmt()
	case lexer.KwConst:
		return p.parseConstStmt()
	case lexer.KwGlobal:
		return p.parseGlobalStmt()
	case lexer.KwStatic:
		if p.peekTok.Kind == lexer.Variable {
			return p.parseStaticStmt()
		}
		return p.parseExprStmt()
	case lexer.KwDeclare:
		return p.parseDeclareStmt()
	case lexer.KwTry:
		return p.parseTryStmt()
	case lexer.KwUnset:
		return p.parseUnsetStmt()
	case lexer.KwHaltCompiler:
		return p.parseHaltCompilerStmt()
	case lexer.Identifier:
		if p.peekTok.Kind == lexer.Colon {
			return p.parseLabelStmt()
		}
		return p.parseExprStmt()
	default:
		if _, ok := p.prefixFns[p.curTok.Kind]; ok {
			return p.parseExprStmt()
		}
		return nil
	}
}

// parseStmtOrRecover parses a single required statement — the un-braced
// body of an if/while/for/foreach/do — routing a token that cannot start
// a statement through recoverStatement instead of leaving the slot nil.
func (p *Parser) parseStmtOrRecover() ast.Stmt {
	prevTok := p.curTok
	s := p.parseStmt()
	if s != nil {
		return s
	}
	if p.atEOF() {
		return nil
	}
	return p.recoverStatement(prevTok)
}

func isNamedFunctionDecl(peek lexer.Kind) bool {
	return peek == lexer.Identifier || peek == lexer.Amp
}

func (p *Parser) parseInlineHTML() ast.Stmt {
	tok := p.curTok
	p.nextToken()
	return &ast.InlineHTMLStmt{Text: tok.Text(), SpanVal: tok.Span}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	start := p.curTok.Span
	x := p.parseExpr(bpNone)
	p.consumeSemicolon()
	return &ast.ExprStmt{X: x, SpanVal: mergeSpan(start, p.prevEndSpan())}
}

func (p *Parser) parseEchoStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken()
	vals := []ast.Expr{p.parseExpr(bpAssign)}
	for p.curIs(lexer.Comma) {
		p.nextToken()
		vals = append(vals, p.parseExpr(bpAssign))
	}
	p.consumeSemicolon()
	return &ast.EchoStmt{Values: vals, SpanVal: mergeSpan(start, p.prevEndSpan())}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken()
	var v ast.Expr
	if !p.isStatementTerminator() {
		v = p.parseExpr(bpNone)
	}
	p.consumeSemicolon()
	return &ast.ReturnStmt{Value: v, SpanVal: mergeSpan(start, p.prevEndSpan())}
}

// parseAltBody parses the statement list of an alternative-syntax body up
// to one of the given closing keywords (not consumed).
func (p *Parser) parseAltBody(enders ...lexer.Kind) []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEOF() && !p.curIsAny(enders...) {
		prevTok := p.curTok
		s := p.parseStmt()
		if s != nil {
			stmts = append(stmts, s)
			continue
		}
		if p.atEOF() {
			break
		}
		stmts = append(stmts, p.recoverStatement(prevTok))
	}
	return stmts
}

func (p *Parser) curIsAny(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.curTok.Kind == k {
			return true
		}
	}
	return false
}

func (p *Parser) parseCondInParens() ast.Expr {
	if !p.curIs(lexer.LParen) {
		p.errExpected("'('", p.curTok.Span)
		return &ast.ErrorExpr{SpanVal: p.curTok.Span}
	}
	p.pushDelim(delimParen, p.curTok.Span)
	p.nextToken()
	cond := p.parseExpr(bpNone)
	if p.curIs(lexer.RParen) {
		p.popDelim(delimParen)
		p.nextToken()
	} else {
		p.errExpectedAfter("')'", "condition", p.curTok.Span)
	}
	return cond
}

func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // 'if'
	cond := p.parseCondInParens()

	if p.curIs(lexer.Colon) {
		p.nextToken()
		body := &ast.BlockStmt{Stmts: p.parseAltBody(lexer.KwElseif, lexer.KwElse, lexer.KwEndif)}
		ifs := &ast.IfStmt{Cond: cond, Then: body, Alt: true}
		for p.curIs(lexer.KwElseif) {
			eStart := p.curTok.Span
			p.nextToken()
			eCond := p.parseCondInParens()
			if p.curIs(lexer.Colon) {
				p.nextToken()
			}
			eBody := &ast.BlockStmt{Stmts: p.parseAltBody(lexer.KwElseif, lexer.KwElse, lexer.KwEndif)}
			ifs.ElseIfs = append(ifs.ElseIfs, &ast.ElseIfClause{Cond: eCond, Body: eBody, SpanVal: mergeSpan(eStart, p.prevEndSpan())})
		}
		if p.curIs(lexer.KwElse) {
			p.nextToken()
			if p.curIs(lexer.Colon) {
				p.nextToken()
			}
			ifs.Else = &ast.BlockStmt{Stmts: p.parseAltBody(lexer.KwEndif)}
		}
		end := p.curTok.Span
		if p.curIs(lexer.KwEndif) {
			p.nextToken()
			p.consumeSemicolon()
		} else {
			p.errExpected("'endif'", p.curTok.Span)
		}
		ifs.SpanVal = mergeSpan(start, end)
		return ifs
	}

	then := p.parseStmtOrRecover()
	ifs := &ast.IfStmt{Cond: cond, Then: then}
	for p.curIs(lexer.KwElseif) {
		eStart := p.curTok.Span
		p.nextToken()
		eCond := p.parseCondInParens()
		eBody := p.parseStmtOrRecover()
		ifs.ElseIfs = append(ifs.ElseIfs, &ast.ElseIfClause{Cond: eCond, Body: eBody, SpanVal: mergeSpan(eStart, p.prevEndSpan())})
	}
	if p.curIs(lexer.KwElse) {
		p.nextToken()
		ifs.Else = p.parseStmtOrRecover()
	}
	ifs.SpanVal = mergeSpan(start, p.prevEndSpan())
	return ifs
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken()
	cond := p.parseCondInParens()
	if p.curIs(lexer.Colon) {
		p.nextToken()
		body := &ast.BlockStmt{Stmts: p.parseAltBody(lexer.KwEndwhile)}
		if p.curIs(lexer.KwEndwhile) {
			p.nextToken()
			p.consumeSemicolon()
		}
		return &ast.WhileStmt{Cond: cond, Body: body, Alt: true, SpanVal: mergeSpan(start, p.prevEndSpan())}
	}
	body := p.parseStmtOrRecover()
	return &ast.WhileStmt{Cond: cond, Body: body, SpanVal: mergeSpan(start, p.prevEndSpan())}
}

func (p *Parser) parseDoWhileStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // 'do'
	body := p.parseStmtOrRecover()
	if p.curIs(lexer.KwWhile) {
		p.nextToken()
	} else {
		p.errExpected("'while'", p.curTok.Span)
	}
	cond := p.parseCondInParens()
	p.consumeSemicolon()
	return &ast.DoWhileStmt{Body: body, Cond: cond, SpanVal: mergeSpan(start, p.prevEndSpan())}
}

func (p *Parser) parseExprListUntil(closing lexer.Kind) []ast.Expr {
	var exprs []ast.Expr
	for !p.curIs(closing) && !p.curIs(lexer.Semicolon) && !p.atEOF() {
		exprs = append(exprs, p.parseExpr(bpAssign))
		if p.curIs(lexer.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	return exprs
}

func (p *Parser) parseForStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // 'for'
	if !p.curIs(lexer.LParen) {
		p.errExpected("'('", p.curTok.Span)
	}
	p.pushDelim(delimParen, p.curTok.Span)
	p.nextToken()

	f := &ast.ForStmt{}
	f.Init = p.parseExprListUntil(lexer.Semicolon)
	if p.curIs(lexer.Semicolon) {
		p.nextToken()
	}
	f.Cond = p.parseExprListUntil(lexer.Semicolon)
	if p.curIs(lexer.Semicolon) {
		p.nextToken()
	}
	f.Step = p.parseExprListUntil(lexer.RParen)
	if p.curIs(lexer.RParen) {
		p.popDelim(delimParen)
		p.nextToken()
	} else {
		p.errExpectedAfter("')'", "for clauses", p.curTok.Span)
	}

	if p.curIs(lexer.Colon) {
		p.nextToken()
		f.Alt = true
		f.Body = &ast.BlockStmt{Stmts: p.parseAltBody(lexer.KwEndfor)}
		if p.curIs(lexer.KwEndfor) {
			p.nextToken()
			p.consumeSemicolon()
		}
	} else {
		f.Body = p.parseStmtOrRecover()
	}
	f.SpanVal = mergeSpan(start, p.prevEndSpan())
	return f
}

func (p *Parser) parseForeachStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // 'foreach'
	if !p.curIs(lexer.LParen) {
		p.errExpected("'('", p.curTok.Span)
	}
	p.pushDelim(delimParen, p.curTok.Span)
	p.nextToken()

	subject := p.parseExpr(bpAssign)
	if p.curIs(lexer.KwAs) {
		p.nextToken()
	} else {
		p.errExpected("'as'", p.curTok.Span)
	}

	byRef := false
	if p.curIs(lexer.Amp) {
		byRef = true
		p.nextToken()
	}
	first := p.parseExpr(bpAssign)

	f := &ast.ForeachStmt{Subject: subject}
	if p.curIs(lexer.FatArrow) {
		p.nextToken()
		f.Key = first
		if p.curIs(lexer.Amp) {
			byRef = true
			p.nextToken()
		}
		f.Value = p.parseExpr(bpAssign)
	} else {
		f.Value = first
	}
	f.ByRef = byRef

	if p.curIs(lexer.RParen) {
		p.popDelim(delimParen)
		p.nextToken()
	} else {
		p.errExpectedAfter("')'", "foreach clause", p.curTok.Span)
	}

	if p.curIs(lexer.Colon) {
		p.nextToken()
		f.Alt = true
		f.Body = &ast.BlockStmt{Stmts: p.parseAltBody(lexer.KwEndforeach)}
		if p.curIs(lexer.KwEndforeach) {
			p.nextToken()
			p.consumeSemicolon()
		}
	} else {
		f.Body = p.parseStmtOrRecover()
	}
	f.SpanVal = mergeSpan(start, p.prevEndSpan())
	return f
}

func (p *Parser) parseSwitchStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // 'switch'
	subject := p.parseCondInParens()

	alt := false
	var closeKind lexer.Kind
	if p.curIs(lexer.Colon) {
		alt, closeKind = true, lexer.KwEndswitch
		p.nextToken()
	} else if p.curIs(lexer.LBrace) {
		closeKind = lexer.RBrace
		p.pushDelim(delimBrace, p.curTok.Span)
		p.nextToken()
	} else {
		p.errExpected("'{' or ':' for switch body", p.curTok.Span)
	}

	var cases []*ast.SwitchCase
	for !p.curIs(closeKind) && !p.atEOF() {
		cStart := p.curTok.Span
		var test ast.Expr
		if p.curIs(lexer.KwCase) {
			p.nextToken()
			test = p.parseExpr(bpAssign)
		} else if p.curIs(lexer.KwDefault) {
			p.nextToken()
		} else {
			p.errExpected("'case' or 'default'", p.curTok.Span)
			p.nextToken()
			continue
		}
		if p.curIs(lexer.Colon) || p.curIs(lexer.Semicolon) {
			p.nextToken()
		} else {
			p.errExpected("':'", p.curTok.Span)
		}
		var body []ast.Stmt
		for !p.curIs(lexer.KwCase) && !p.curIs(lexer.KwDefault) && !p.curIs(closeKind) && !p.atEOF() {
			prevTok := p.curTok
			s := p.parseStmt()
			if s != nil {
				body = append(body, s)
				continue
			}
			if p.atEOF() {
				break
			}
			body = append(body, p.recoverStatement(prevTok))
		}
		cases = append(cases, &ast.SwitchCase{Test: test, Body: body, SpanVal: mergeSpan(cStart, p.prevEndSpan())})
	}

	end := p.curTok.Span
	if p.curIs(closeKind) {
		if closeKind == lexer.RBrace {
			p.popDelim(delimBrace)
		}
		p.nextToken()
		if alt {
			p.consumeSemicolon()
		}
	} else {
		p.errExpectedAfter("closing of switch body", "case list", p.curTok.Span)
	}
	return &ast.SwitchStmt{Subject: subject, Cases: cases, Alt: alt, SpanVal: mergeSpan(start, end)}
}

func (p *Parser) parseBreakStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken()
	var lvl ast.Expr
	if !p.isStatementTerminator() {
		lvl = p.parseExpr(bpAssign)
	}
	p.consumeSemicolon()
	return &ast.BreakStmt{Level: lvl, SpanVal: mergeSpan(start, p.prevEndSpan())}
}

func (p *Parser) parseContinueStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken()
	var lvl ast.Expr
	if !p.isStatementTerminator() {
		lvl = p.parseExpr(bpAssign)
	}
	p.consumeSemicolon()
	return &ast.ContinueStmt{Level: lvl, SpanVal: mergeSpan(start, p.prevEndSpan())}
}

func (p *Parser) parseGotoStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken()
	label := ""
	if p.curIs(lexer.Identifier) {
		label = p.curTok.Text()
		p.nextToken()
	} else {
		p.errExpected("label", p.curTok.Span)
	}
	p.consumeSemicolon()
	return &ast.GotoStmt{Label: label, SpanVal: mergeSpan(start, p.prevEndSpan())}
}

func (p *Parser) parseLabelStmt() ast.Stmt {
	start := p.curTok.Span
	name := p.curTok.Text()
	p.nextToken() // identifier
	p.nextToken() // ':'
	return &ast.LabelStmt{Name: name, SpanVal: mergeSpan(start, p.prevEndSpan())}
}

func (p *Parser) parseBlockStmt() *ast.BlockStmt {
	start := p.curTok.Span
	p.pushDelim(delimBrace, start)
	p.nextToken() // '{'
	var stmts []ast.Stmt
	for !p.curIs(lexer.RBrace) && !p.atEOF() {
		prevTok := p.curTok
		s := p.parseStmt()
		if s != nil {
			stmts = append(stmts, s)
			continue
		}
		if p.atEOF() {
			break
		}
		stmts = append(stmts, p.recoverStatement(prevTok))
	}
	end := p.curTok.Span
	if p.curIs(lexer.RBrace) {
		p.popDelim(delimBrace)
		p.nextToken()
	} else {
		p.errExpectedAfter("'}'", "block", p.curTok.Span)
	}
	return &ast.BlockStmt{Stmts: stmts, SpanVal: mergeSpan(start, end)}
}

func (p *Parser) parseFunctionDecl(attrs []*ast.AttributeGroup, doc string) ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // 'function'
	byRef := false
	if p.curIs(lexer.Amp) {
		byRef = true
		p.nextToken()
	}
	name := p.curTok.Text()
	p.nextToken()

	prevInFn := p.ctx.InFunction
	p.ctx.InFunction = true
	params := p.parseParamList()

	var ret ast.TypeHint
	if p.curIs(lexer.Colon) {
		p.nextToken()
		ret = p.parseTypeHint()
	}

	body := p.parseBlockStmt()
	p.ctx.InFunction = prevInFn

	return &ast.FunctionDecl{
		Name: name, Params: params, ReturnType: ret, ByRef: byRef, Body: body,
		Attributes: attrs, DocComment: doc, SpanVal: mergeSpan(start, body.Span()),
	}
}

// parseModifiedDecl handles a leading `abstract`/`final`/`readonly` run
// before a class declaration at statement position.
func (p *Parser) parseModifiedDecl() ast.Stmt {
	start := p.curTok.Span
	doc := p.takeDoc()
	mods := ast.Modifiers{}
	for {
		switch p.curTok.Kind {
		case lexer.KwAbstract:
			mods.Abstract = true
			p.nextToken()
		case lexer.KwFinal:
			mods.Final = true
			p.nextToken()
		case lexer.KwReadonly:
			mods.Readonly = true
			p.nextToken()
		default:
			goto done
		}
	}
done:
	if !p.curIsAny(lexer.KwClass, lexer.KwInterface, lexer.KwTrait, lexer.KwEnum) {
		p.errExpected("class declaration", p.curTok.Span)
		return &ast.ErrorStmt{SpanVal: mergeSpan(start, p.curTok.Span)}
	}
	return p.parseClassLikeDecl(start, mods, nil, doc)
}

// parseAttributedDecl handles a `#[...]` attribute run preceding a
// function, class, or other attributable declaration at statement position.
func (p *Parser) parseAttributedDecl() ast.Stmt {
	start := p.curTok.Span
	doc := p.takeDoc()
	var attrs []*ast.AttributeGroup
	for p.curIs(lexer.AttrOpen) {
		attrs = append(attrs, p.parseAttributeGroup())
	}
	switch {
	case p.curIs(lexer.KwFunction):
		return p.parseFunctionDeclWithAttrs(attrs, doc)
	case p.curIsAny(lexer.KwClass, lexer.KwInterface, lexer.KwTrait, lexer.KwEnum):
		return p.parseClassLikeDecl(start, ast.Modifiers{}, attrs, doc)
	case p.curIsAny(lexer.KwAbstract, lexer.KwFinal, lexer.KwReadonly):
		mods := ast.Modifiers{}
		for {
			switch p.curTok.Kind {
			case lexer.KwAbstract:
				mods.Abstract = true
				p.nextToken()
			case lexer.KwFinal:
				mods.Final = true
				p.nextToken()
			case lexer.KwReadonly:
				mods.Readonly = true
				p.nextToken()
			default:
				return p.parseClassLikeDecl(start, mods, attrs, doc)
			}
		}
	default:
		p.errExpected("declaration after attribute", p.curTok.Span)
		return &ast.ErrorStmt{SpanVal: mergeSpan(start, p.prevEndSpan())}
	}
}

func (p *Parser) parseFunctionDeclWithAttrs(attrs []*ast.AttributeGroup, doc string) ast.Stmt {
	return p.parseFunctionDecl(attrs, doc)
}

func (p *Parser) parseNamespaceStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken()
	var name *ast.Name
	if !p.curIs(lexer.Semicolon) && !p.curIs(lexer.LBrace) {
		name = p.parseName()
	}
	n := &ast.NamespaceStmt{Name: name}
	if p.curIs(lexer.LBrace) {
		block := p.parseBlockStmt()
		n.Body = block.Stmts
		n.SpanVal = mergeSpan(start, block.Span())
		return n
	}
	p.consumeSemicolon()
	n.SpanVal = mergeSpan(start, p.prevEndSpan())
	return n
}

func useKindFromKeyword(p *Parser) (ast.UseKind, bool) {
	switch p.curTok.Kind {
	case lexer.KwFunction:
		p.nextToken()
		return ast.UseFunction, true
	case lexer.KwConst:
		p.nextToken()
		return ast.UseConst, true
	default:
		return ast.UseClass, false
	}
}

func (p *Parser) parseUseStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // 'use'
	kind, _ := useKindFromKeyword(p)

	name := p.parseName()
	if p.curIs(lexer.Backslash) && p.peekTok.Kind == lexer.LBrace {
		p.nextToken() // '\'
		return p.parseGroupUseStmt(start, kind, name)
	}

	clauses := []*ast.UseClause{p.parseUseClauseTail(name, kind)}
	for p.curIs(lexer.Comma) {
		p.nextToken()
		clauses = append(clauses, p.parseUseClauseTail(p.parseName(), kind))
	}
	p.consumeSemicolon()
	return &ast.UseStmt{Kind: kind, Clauses: clauses, SpanVal: mergeSpan(start, p.prevEndSpan())}
}

func (p *Parser) parseUseClauseTail(name *ast.Name, kind ast.UseKind) *ast.UseClause {
	alias := ""
	if p.curIs(lexer.KwAs) {
		p.nextToken()
		alias = p.curTok.Text()
		p.nextToken()
	}
	return &ast.UseClause{Kind: kind, Name: name, Alias: alias, SpanVal: mergeSpan(name.Span(), p.prevEndSpan())}
}

func (p *Parser) parseGroupUseStmt(start ast.Span, kind ast.UseKind, prefix *ast.Name) ast.Stmt {
	p.pushDelim(delimBrace, p.curTok.Span)
	p.nextToken() // '{'
	var clauses []*ast.UseClause
	for !p.curIs(lexer.RBrace) && !p.atEOF() {
		memberKind, sawKw := useKindFromKeyword(p)
		if !sawKw {
			memberKind = kind
		}
		clauses = append(clauses, p.parseUseClauseTail(p.parseName(), memberKind))
		if p.curIs(lexer.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	if len(clauses) == 0 {
		p.errExpected("at least one name in group use", p.curTok.Span)
	}
	if p.curIs(lexer.RBrace) {
		p.popDelim(delimBrace)
		p.nextToken()
	} else {
		p.errExpectedAfter("'}'", "group use list", p.curTok.Span)
	}
	p.consumeSemicolon()
	return &ast.GroupUseStmt{Prefix: prefix, Kind: kind, Clauses: clauses, SpanVal: mergeSpan(start, p.prevEndSpan())}
}

func (p *Parser) parseConstStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken()
	c := &ast.ConstStmt{}
	for {
		name := p.curTok.Text()
		p.nextToken()
		c.Names = append(c.Names, name)
		if p.curIs(lexer.Assign) {
			p.nextToken()
			c.Values = append(c.Values, p.parseExpr(bpAssign))
		} else {
			p.errExpected("'='", p.curTok.Span)
			c.Values = append(c.Values, &ast.ErrorExpr{SpanVal: p.curTok.Span})
		}
		if p.curIs(lexer.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	p.consumeSemicolon()
	c.SpanVal = mergeSpan(start, p.prevEndSpan())
	return c
}

func (p *Parser) parseGlobalStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken()
	g := &ast.GlobalStmt{}
	for p.curIs(lexer.Variable) {
		g.Names = append(g.Names, p.curTok.Text())
		p.nextToken()
		if p.curIs(lexer.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	p.consumeSemicolon()
	g.SpanVal = mergeSpan(start, p.prevEndSpan())
	return g
}

func (p *Parser) parseStaticStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken()
	s := &ast.StaticStmt{}
	for p.curIs(lexer.Variable) {
		vStart := p.curTok.Span
		name := p.curTok.Text()
		p.nextToken()
		var def ast.Expr
		if p.curIs(lexer.Assign) {
			p.nextToken()
			def = p.parseExpr(bpAssign)
		}
		s.Vars = append(s.Vars, &ast.StaticVarDecl{Name: name, Default: def, SpanVal: mergeSpan(vStart, p.prevEndSpan())})
		if p.curIs(lexer.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	p.consumeSemicolon()
	s.SpanVal = mergeSpan(start, p.prevEndSpan())
	return s
}

func (p *Parser) parseDeclareStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // 'declare'
	if !p.curIs(lexer.LParen) {
		p.errExpected("'('", p.curTok.Span)
	}
	p.pushDelim(delimParen, p.curTok.Span)
	p.nextToken()
	d := &ast.DeclareStmt{}
	for !p.curIs(lexer.RParen) && !p.atEOF() {
		dStart := p.curTok.Span
		name := p.curTok.Text()
		p.nextToken()
		if p.curIs(lexer.Assign) {
			p.nextToken()
		} else {
			p.errExpected("'='", p.curTok.Span)
		}
		val := p.parseExpr(bpAssign)
		d.Directives = append(d.Directives, &ast.DeclareDirective{Name: name, Value: val, SpanVal: mergeSpan(dStart, p.prevEndSpan())})
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
		p.errExpectedAfter("')'", "declare directives", p.curTok.Span)
	}

	if p.curIs(lexer.LBrace) {
		d.Body = p.parseBlockStmt()
	} else if p.curIs(lexer.Colon) {
		p.nextToken()
		d.Body = &ast.BlockStmt{Stmts: p.parseAltBody(lexer.KwEnddeclare)}
		if p.curIs(lexer.KwEnddeclare) {
			p.nextToken()
			p.consumeSemicolon()
		}
	} else {
		p.consumeSemicolon()
	}
	d.SpanVal = mergeSpan(start, p.prevEndSpan())
	return d
}

func (p *Parser) parseTryStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // 'try'
	body := p.parseBlockStmt()
	t := &ast.TryStmt{Body: body}
	for p.curIs(lexer.KwCatch) {
		t.Catches = append(t.Catches, p.parseCatchClause())
	}
	if p.curIs(lexer.KwFinally) {
		p.nextToken()
		t.Finally = p.parseBlockStmt()
	}
	if len(t.Catches) == 0 && t.Finally == nil {
		p.addDiag(diag.CodeExpected, p.curTok.Span, "expected catch or finally")
	}
	t.SpanVal = mergeSpan(start, p.prevEndSpan())
	return t
}

func (p *Parser) parseCatchClause() *ast.CatchClause {
	start := p.curTok.Span
	p.nextToken() // 'catch'
	if !p.curIs(lexer.LParen) {
		p.errExpected("'('", p.curTok.Span)
	}
	p.pushDelim(delimParen, p.curTok.Span)
	p.nextToken()

	c := &ast.CatchClause{}
	c.Types = append(c.Types, p.parseName())
	for p.curIs(lexer.Pipe) {
		p.nextToken()
		c.Types = append(c.Types, p.parseName())
	}
	if p.curIs(lexer.Variable) {
		c.Var = p.curTok.Text()
		p.nextToken()
	}
	if p.curIs(lexer.RParen) {
		p.popDelim(delimParen)
		p.nextToken()
	} else {
		p.errExpectedAfter("')'", "catch clause", p.curTok.Span)
	}
	c.Body = p.parseBlockStmt()
	c.SpanVal = mergeSpan(start, c.Body.Span())
	return c
}

func (p *Parser) parseUnsetStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken()
	if !p.curIs(lexer.LParen) {
		p.errExpected("'('", p.curTok.Span)
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
	if p.curIs(lexer.RParen) {
		p.popDelim(delimParen)
		p.nextToken()
	} else {
		p.errExpectedAfter("')'", "unset()", p.curTok.Span)
	}
	p.consumeSemicolon()
	return &ast.UnsetStmt{Vars: vars, SpanVal: mergeSpan(start, p.prevEndSpan())}
}

func (p *Parser) parseHaltCompilerStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken()
	if p.curIs(lexer.LParen) {
		p.nextToken()
		if p.curIs(lexer.RParen) {
			p.nextToken()
		}
	}
	p.consumeSemicolon()
	return &ast.HaltCompilerStmt{SpanVal: mergeSpan(start, p.prevEndSpan())}
}
