package parser

import (
	"strconv"
	"strings"

	"github.com/jorgsowa/phpfront/internal/ast"
	"github.com/jorgsowa/phpfront/internal/diag"
	"github.com/jorgsowa/phpfront/internal/lexer"
)

// registerExprGrammar wires every nud (prefix) starter into prefixFns, per
// the list in spec.md §4.2.3. Binary/assignment/ternary/instanceof operators
// are dispatched through infixBindingPowers + parseLed instead of a second
// map, since their behavior is uniform enough to not need one function per
// token the way the nuds do.
func (p *Parser) registerExprGrammar() {
	p.registerPrefix(lexer.IntLit, p.parseIntLit)
	p.registerPrefix(lexer.FloatLit, p.parseFloatLit)
	p.registerPrefix(lexer.StringLit, p.parseSingleQuotedLit)
	p.registerPrefix(lexer.DqStringStart, p.parseDoubleQuoted)
	p.registerPrefix(lexer.HeredocStart, p.parseHeredocOrNowdoc)
	p.registerPrefix(lexer.ShellStart, p.parseShellExec)

	p.registerPrefix(lexer.Variable, p.parseVariable)
	p.registerPrefix(lexer.Dollar, p.parseDollarVariable)

	p.registerPrefix(lexer.KwTrue, p.parseBoolLit)
	p.registerPrefix(lexer.KwFalse, p.parseBoolLit)
	p.registerPrefix(lexer.KwNull, p.parseNullLit)

	p.registerPrefix(lexer.Identifier, p.parseNameExpr)
	p.registerPrefix(lexer.Backslash, p.parseNameExpr)
	p.registerPrefix(lexer.KwNamespace, p.parseNameExpr)
	p.registerPrefix(lexer.KwSelf, p.parseNameExpr)
	p.registerPrefix(lexer.KwParent, p.parseNameExpr)
	p.registerPrefix(lexer.KwStatic, p.parseStaticStartExpr)
	p.registerPrefix(lexer.KwArray, p.parseArrayKeywordLit)
	p.registerPrefix(lexer.KwList, p.parseListExpr)

	p.registerPrefix(lexer.LParen, p.parseParenOrCast)
	p.registerPrefix(lexer.LBracket, p.parseArrayLit)

	p.registerPrefix(lexer.KwFunction, p.parseClosureExpr)
	p.registerPrefix(lexer.KwFn, p.parseArrowFnExpr)
	p.registerPrefix(lexer.KwNew, p.parseNewExpr)
	p.registerPrefix(lexer.KwThrow, p.parseThrowExpr)
	p.registerPrefix(lexer.KwYield, p.parseYieldExpr)
	p.registerPrefix(lexer.KwMatch, p.parseMatchExpr)
	p.registerPrefix(lexer.KwClone, p.parseCloneExpr)
	p.registerPrefix(lexer.KwPrint, p.parsePrintExpr)
	p.registerPrefix(lexer.KwIsset, p.parseIssetExpr)
	p.registerPrefix(lexer.KwEmpty, p.parseEmptyExpr)
	p.registerPrefix(lexer.KwEval, p.parseEvalExpr)
	p.registerPrefix(lexer.KwExit, p.parseExitExpr)

	p.registerPrefix(lexer.KwInclude, p.parseIncludeExpr)
	p.registerPrefix(lexer.KwIncludeOnce, p.parseIncludeExpr)
	p.registerPrefix(lexer.KwRequire, p.parseIncludeExpr)
	p.registerPrefix(lexer.KwRequireOnce, p.parseIncludeExpr)

	for _, k := range []lexer.Kind{lexer.Minus, lexer.Plus, lexer.Bang, lexer.Tilde, lexer.At, lexer.PlusPlus, lexer.MinusMinus} {
		p.registerPrefix(k, p.parseUnaryPrefix)
	}
}

func (p *Parser) registerPrefix(kind lexer.Kind, fn prefixParseFn) {
	p.prefixFns[kind] = fn
}

func (p *Parser) registerInfix(kind lexer.Kind, fn infixParseFn) {
	p.infixFns[kind] = fn
}

// parseExpr is the Pratt climb: it parses a nud, applies the postfix chain,
// then repeatedly applies led handlers whose left binding power exceeds
// minBP.
func (p *Parser) parseExpr(minBP int) ast.Expr {
	left := p.parseNud()
	if left == nil {
		return &ast.ErrorExpr{SpanVal: p.curTok.Span}
	}
	left = p.parsePostfixChain(left)

	chained := 0 // level of the non-associative operator just applied, if any
	for {
		bp, ok := lookupInfixBP(p.curTok.Kind)
		if !ok || bp.left <= minBP {
			break
		}
		if bp.left == chained {
			p.errUnexpected(p.curTok.Span, "'"+string(p.curTok.Kind)+"': non-associative operators cannot be chained")
		}
		chained = 0
		if bp.left == bp.right {
			chained = bp.left
		}
		left = p.parseLed(left, bp)
		left = p.parsePostfixChain(left)
	}
	return left
}

// parseNud dispatches the current token to its null-denotation handler.
func (p *Parser) parseNud() ast.Expr {
	if fn, ok := p.prefixFns[p.curTok.Kind]; ok {
		return fn()
	}
	p.addDiag(diag.CodeExpectedExpression, p.curTok.Span, "expected expression")
	span := p.curTok.Span
	if !p.atEOF() && !isExprSyncPoint(p.curTok.Kind) {
		p.nextToken()
	}
	return &ast.ErrorExpr{SpanVal: span}
}

// isExprSyncPoint reports whether kind is a token a caller is already
// expecting to consume itself (a statement terminator or closing
// delimiter). parseNud's fallback must leave these alone rather than
// eating them as its "one token of progress," or the caller ends up
// looking for them past where they were and raises a second diagnostic.
func isExprSyncPoint(kind lexer.Kind) bool {
	switch kind {
	case lexer.Semicolon, lexer.RParen, lexer.RBracket, lexer.RBrace:
		return true
	default:
		return false
	}
}

// parseLed applies one infix/assignment/ternary/instanceof operator. curTok
// is the operator on entry.
func (p *Parser) parseLed(left ast.Expr, bp bindingPower) ast.Expr {
	switch {
	case p.curTok.Kind == lexer.Question:
		return p.parseTernary(left, bp)
	case isAssignOp(p.curTok.Kind):
		return p.parseAssign(left, bp)
	case p.curTok.Kind == lexer.KwInstanceof:
		return p.parseInstanceOf(left)
	case p.curTok.Kind == lexer.Coalesce:
		return p.parseCoalesce(left, bp)
	case p.curTok.Kind == lexer.PipeGt:
		return p.parsePipe(left, bp)
	default:
		return p.parseBinary(left, bp)
	}
}

func (p *Parser) parseCoalesce(left ast.Expr, bp bindingPower) ast.Expr {
	p.nextToken()
	right := p.parseExpr(bp.right)
	return &ast.CoalesceExpr{Left: left, Right: right, SpanVal: mergeSpan(left.Span(), right.Span())}
}

func (p *Parser) parsePipe(left ast.Expr, bp bindingPower) ast.Expr {
	p.nextToken()
	callee := p.parseExpr(bp.right)
	return &ast.PipeExpr{Value: left, Callee: callee, SpanVal: mergeSpan(left.Span(), callee.Span())}
}

func (p *Parser) parseBinary(left ast.Expr, bp bindingPower) ast.Expr {
	op := ast.BinaryOp(string(p.curTok.Kind))
	opSpan := p.curTok.Span
	p.nextToken()
	right := p.parseExpr(bp.right)
	return &ast.BinaryExpr{Op: op, Left: left, Right: right, SpanVal: mergeSpan(left.Span(), mergeSpan(opSpan, right.Span()))}
}

func (p *Parser) parseAssign(left ast.Expr, bp bindingPower) ast.Expr {
	op := ast.BinaryOp(string(p.curTok.Kind))
	p.nextToken()
	value := p.parseExpr(bp.right)
	return &ast.AssignExpr{Op: op, Target: left, Value: value, SpanVal: mergeSpan(left.Span(), value.Span())}
}

func (p *Parser) parseTernary(cond ast.Expr, bp bindingPower) ast.Expr {
	p.nextToken() // consume '?'
	var thenExpr ast.Expr
	if !p.curIs(lexer.Colon) {
		thenExpr = p.parseExpr(bp.right)
	}
	if !p.curIs(lexer.Colon) {
		p.errExpected("':' in ternary expression", p.curTok.Span)
	} else {
		p.nextToken()
	}
	elseExpr := p.parseExpr(bp.right)
	return &ast.TernaryExpr{Cond: cond, Then: thenExpr, Else: elseExpr, SpanVal: mergeSpan(cond.Span(), elseExpr.Span())}
}

func (p *Parser) parseInstanceOf(left ast.Expr) ast.Expr {
	p.nextToken()
	class := p.parseExpr(bpInstanceOf)
	return &ast.InstanceOfExpr{Operand: left, Class: class, SpanVal: mergeSpan(left.Span(), class.Span())}
}

// --- literal nuds ---

func (p *Parser) parseIntLit() ast.Expr {
	tok := p.curTok
	v := parseIntLiteralValue(tok.Text())
	p.nextToken()
	return &ast.IntLit{Value: v, Raw: tok.Text(), SpanVal: tok.Span}
}

func parseIntLiteralValue(raw string) int64 {
	clean := strings.ReplaceAll(raw, "_", "")
	base := 10
	switch {
	case strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0X"):
		base, clean = 16, clean[2:]
	case strings.HasPrefix(clean, "0b") || strings.HasPrefix(clean, "0B"):
		base, clean = 2, clean[2:]
	case strings.HasPrefix(clean, "0o") || strings.HasPrefix(clean, "0O"):
		base, clean = 8, clean[2:]
	case strings.HasPrefix(clean, "0") && len(clean) > 1:
		base, clean = 8, clean[1:]
	}
	v, _ := strconv.ParseInt(clean, base, 64)
	return v
}

func (p *Parser) parseFloatLit() ast.Expr {
	tok := p.curTok
	clean := strings.ReplaceAll(tok.Text(), "_", "")
	v, _ := strconv.ParseFloat(clean, 64)
	p.nextToken()
	return &ast.FloatLit{Value: v, Raw: tok.Text(), SpanVal: tok.Span}
}

func (p *Parser) parseSingleQuotedLit() ast.Expr {
	tok := p.curTok
	p.nextToken()
	return &ast.StringLit{Value: tok.Text(), SpanVal: tok.Span}
}

func (p *Parser) parseBoolLit() ast.Expr {
	tok := p.curTok
	p.nextToken()
	return &ast.BoolLit{Value: tok.Kind == lexer.KwTrue, SpanVal: tok.Span}
}

func (p *Parser) parseNullLit() ast.Expr {
	span := p.curTok.Span
	p.nextToken()
	return &ast.NullLit{SpanVal: span}
}

// parseStringSegments assembles the segment list of a compound literal.
// p.curTok must be the first literal-run token; it is consumed along with
// every following segment/interpolation token up to and including the
// closing End-kind token. Empty literal runs are left out, except that a
// literal with no text and no interpolation keeps one empty *StringLit.
func (p *Parser) parseStringSegments(midKind, endKind lexer.Kind) ([]ast.Expr, ast.Span) {
	var segs []ast.Expr
	addRun := func(t lexer.Token) {
		if t.Text() != "" {
			segs = append(segs, &ast.StringLit{Value: t.Text(), SpanVal: t.Span})
		}
	}
	tok := p.curTok
	addRun(tok)
	endSpan := tok.Span
	isEnd := tok.Kind == endKind
	p.nextToken()

	for !isEnd {
		if p.curTok.Kind == midKind || p.curTok.Kind == endKind {
			addRun(p.curTok)
			endSpan = p.curTok.Span
			isEnd = p.curTok.Kind == endKind
			p.nextToken()
			continue
		}
		if p.atEOF() {
			break
		}
		before := p.curTok.Span
		expr := p.parseExpr(bpNone)
		segs = append(segs, expr)
		endSpan = expr.Span()
		if p.curTok.Span == before {
			p.nextToken() // no expression starts here; step past the token
		}
	}
	if len(segs) == 0 {
		segs = append(segs, &ast.StringLit{SpanVal: tok.Span})
	}
	return segs, endSpan
}

func (p *Parser) parseDoubleQuoted() ast.Expr {
	start := p.curTok.Span
	segs, end := p.parseStringSegments(lexer.DqStringMid, lexer.DqStringEnd)
	return &ast.InterpString{Kind: ast.InterpDoubleQuoted, Segments: segs, SpanVal: mergeSpan(start, end)}
}

func (p *Parser) parseShellExec() ast.Expr {
	start := p.curTok.Span
	segs, end := p.parseStringSegments(lexer.ShellMid, lexer.ShellEnd)
	return &ast.InterpString{Kind: ast.InterpShellExec, Segments: segs, SpanVal: mergeSpan(start, end)}
}

func (p *Parser) parseHeredocOrNowdoc() ast.Expr {
	start := p.curTok.Span
	label := p.curTok.Payload.HeredocLabel
	p.nextToken() // consume HeredocStart

	if p.curTok.Kind == lexer.NowdocContent {
		tok := p.curTok
		p.nextToken()
		return &ast.NowdocLit{Value: tok.Text(), Label: label, SpanVal: mergeSpan(start, tok.Span)}
	}

	segs, end := p.parseStringSegments(lexer.HeredocMid, lexer.HeredocEnd)
	return &ast.InterpString{Kind: ast.InterpHeredoc, Segments: segs, Label: label, SpanVal: mergeSpan(start, end)}
}

// --- variables, names ---

func (p *Parser) parseVariable() ast.Expr {
	tok := p.curTok
	p.nextToken()
	return &ast.VariableExpr{Name: tok.Text(), SpanVal: tok.Span}
}

// parseDollarVariable handles `$$name` and `${expr}` variable-variables.
func (p *Parser) parseDollarVariable() ast.Expr {
	start := p.curTok.Span
	p.nextToken() // consume '$'

	if p.curIs(lexer.LBrace) {
		p.nextToken()
		inner := p.parseExpr(bpNone)
		end := p.curTok.Span
		if p.curIs(lexer.RBrace) {
			p.nextToken()
		} else {
			p.errExpected("'}'", p.curTok.Span)
		}
		return &ast.VariableExpr{NameExpr: inner, SpanVal: mergeSpan(start, end)}
	}

	inner := p.parseExpr(bpUnary)
	return &ast.VariableExpr{NameExpr: inner, SpanVal: mergeSpan(start, inner.Span())}
}

func (p *Parser) parseNameExpr() ast.Expr {
	name := p.parseName()
	return &ast.NameExpr{Name: name, SpanVal: name.Span()}
}

// parseName consumes a (possibly namespaced) name starting at curTok,
// which must be Backslash, KwNamespace, or an Identifier/keyword-as-name.
func (p *Parser) parseName() *ast.Name {
	start := p.curTok.Span
	n := &ast.Name{SpanVal: start}

	if p.curIs(lexer.Backslash) {
		n.LeadingSlash = true
		p.nextToken()
	} else if p.curIs(lexer.KwNamespace) {
		n.RelativeNs = true
		p.nextToken()
		if p.curIs(lexer.Backslash) {
			p.nextToken()
		}
	}

	n.Parts = append(n.Parts, p.identifierLikeText())
	p.nextToken()

	for p.curIs(lexer.Backslash) && isIdentifierLike(p.peekTok.Kind) {
		p.nextToken()
		n.Parts = append(n.Parts, p.identifierLikeText())
		p.nextToken()
	}

	n.SpanVal = mergeSpan(start, p.prevEndSpan())
	return n
}

// prevEndSpan approximates the span of the token just consumed, since the
// cursor has already advanced past it onto curTok by the time callers want
// to close out a merged span.
func (p *Parser) prevEndSpan() ast.Span {
	return p.curTok.Span
}

func (p *Parser) identifierLikeText() string {
	if p.curTok.Text() != "" {
		return p.curTok.Text()
	}
	return string(p.curTok.Kind)
}

func isIdentifierLike(kind lexer.Kind) bool {
	if kind == lexer.Identifier {
		return true
	}
	_, isKeyword := lexer.LookupIdent(string(kind))
	return isKeyword
}

// parseStaticStartExpr disambiguates `static` as a name (`static::foo()`,
// `static::class`) from `static function`/`static fn` closures.
func (p *Parser) parseStaticStartExpr() ast.Expr {
	if p.peekTok.Kind == lexer.KwFunction {
		return p.parseClosureExpr()
	}
	if p.peekTok.Kind == lexer.KwFn {
		return p.parseArrowFnExpr()
	}
	return p.parseNameExpr()
}

// --- unary, cast, grouping ---

func (p *Parser) parseUnaryPrefix() ast.Expr {
	tok := p.curTok
	p.nextToken()
	operand := p.parseExpr(bpUnary)
	return &ast.UnaryExpr{Op: ast.UnaryOp(string(tok.Kind)), Operand: operand, SpanVal: mergeSpan(tok.Span, operand.Span())}
}

var castKeywords = map[string]ast.CastKind{
	"int": ast.CastInt, "integer": ast.CastInt,
	"float": ast.CastFloat, "double": ast.CastFloat, "real": ast.CastFloat,
	"string": ast.CastString,
	"bool": ast.CastBool, "boolean": ast.CastBool,
	"array":  ast.CastArray,
	"object": ast.CastObject,
	"binary": ast.CastBinary,
	"unset":  ast.CastUnset,
	"void":   ast.CastVoid,
}

// parseParenOrCast disambiguates a cast `(int)expr` from a parenthesized
// expression by trial: `(` known-cast-keyword `)` is a cast.
func (p *Parser) parseParenOrCast() ast.Expr {
	start := p.curTok.Span
	if p.peekTok.Kind == lexer.Identifier || isKeywordCastCandidate(p.peekTok.Kind) {
		if kind, ok := castKeywords[strings.ToLower(p.peekTok.Text())]; ok {
			savedCur, savedPeek := p.curTok, p.peekTok
			p.nextToken() // consume '('
			castTok := p.curTok
			p.nextToken() // consume cast keyword
			if p.curIs(lexer.RParen) {
				p.nextToken() // consume ')'
				if kind == ast.CastUnset {
					p.addDiag(diag.CodeDisallowedConstruct, mergeSpan(start, castTok.Span), "(unset) cast is not valid PHP")
				}
				operand := p.parseExpr(bpUnary)
				return &ast.CastExpr{Kind: kind, Operand: operand, SpanVal: mergeSpan(start, operand.Span())}
			}
			// Not actually a cast; rewind and fall through to grouping.
			p.curTok, p.peekTok = savedCur, savedPeek
		}
	}
	return p.parseGrouped()
}

func isKeywordCastCandidate(kind lexer.Kind) bool {
	_, ok := castKeywords[strings.ToLower(string(kind))]
	return ok
}

func (p *Parser) parseGrouped() ast.Expr {
	start := p.curTok.Span
	p.pushDelim(delimParen, start)
	p.nextToken() // consume '('
	inner := p.parseExpr(bpNone)
	end := p.curTok.Span
	if p.curIs(lexer.RParen) {
		p.popDelim(delimParen)
		p.nextToken()
	} else {
		p.errExpectedAfter("')'", "expression", p.curTok.Span)
	}
	_ = end
	return inner
}

// --- arrays, list() ---

func (p *Parser) parseArrayLit() ast.Expr {
	start := p.curTok.Span
	p.pushDelim(delimBracket, start)
	p.nextToken() // consume '['
	elems := p.parseArrayElements(lexer.RBracket)
	end := p.curTok.Span
	if p.curIs(lexer.RBracket) {
		p.popDelim(delimBracket)
		p.nextToken()
	} else {
		p.errExpectedAfter("']'", "array literal", p.curTok.Span)
	}
	return &ast.ArrayLit{Elements: elems, SpanVal: mergeSpan(start, end)}
}

// parseArrayKeywordLit handles the legacy `array(...)` constructor form,
// which shares ArrayLit's element grammar with `[...]` but closes on ')'.
func (p *Parser) parseArrayKeywordLit() ast.Expr {
	start := p.curTok.Span
	p.nextToken() // consume 'array'
	if !p.curIs(lexer.LParen) {
		p.errExpected("'(' after array", p.curTok.Span)
		return &ast.ErrorExpr{SpanVal: start}
	}
	p.pushDelim(delimParen, p.curTok.Span)
	p.nextToken()
	elems := p.parseArrayElements(lexer.RParen)
	end := p.curTok.Span
	if p.curIs(lexer.RParen) {
		p.popDelim(delimParen)
		p.nextToken()
	} else {
		p.errExpectedAfter("')'", "array(", p.curTok.Span)
	}
	return &ast.ArrayLit{Elements: elems, SpanVal: mergeSpan(start, end)}
}

func (p *Parser) parseListExpr() ast.Expr {
	start := p.curTok.Span
	p.nextToken() // consume 'list'
	if !p.curIs(lexer.LParen) {
		p.errExpected("'(' after list", p.curTok.Span)
		return &ast.ErrorExpr{SpanVal: start}
	}
	p.pushDelim(delimParen, p.curTok.Span)
	p.nextToken()
	elems := p.parseArrayElements(lexer.RParen)
	end := p.curTok.Span
	if p.curIs(lexer.RParen) {
		p.popDelim(delimParen)
		p.nextToken()
	} else {
		p.errExpectedAfter("')'", "list()", p.curTok.Span)
	}
	return &ast.ArrayLit{Elements: elems, IsList: true, SpanVal: mergeSpan(start, end)}
}

func (p *Parser) parseArrayElements(closing lexer.Kind) []*ast.ArrayElement {
	var elems []*ast.ArrayElement
	for !p.curIs(closing) && !p.atEOF() {
		if p.curIs(lexer.Comma) {
			// Skipped slot, legal only in list()/[] destructuring: `[$a, , $c]`.
			elems = append(elems, &ast.ArrayElement{SpanVal: p.curTok.Span})
			p.nextToken()
			continue
		}
		elems = append(elems, p.parseArrayElement())
		if p.curIs(lexer.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	return elems
}

func (p *Parser) parseArrayElement() *ast.ArrayElement {
	start := p.curTok.Span
	if p.curIs(lexer.Ellipsis) {
		p.nextToken()
		v := p.parseExpr(bpAssign)
		return &ast.ArrayElement{Value: v, Unpack: true, SpanVal: mergeSpan(start, v.Span())}
	}

	byRef := false
	if p.curIs(lexer.Amp) {
		byRef = true
		p.nextToken()
	}

	first := p.parseExpr(bpAssign)
	if p.curIs(lexer.FatArrow) {
		p.nextToken()
		valByRef := false
		if p.curIs(lexer.Amp) {
			valByRef = true
			p.nextToken()
		}
		val := p.parseExpr(bpAssign)
		_ = byRef
		return &ast.ArrayElement{Key: first, Value: val, ByRef: valByRef, SpanVal: mergeSpan(start, val.Span())}
	}

	return &ast.ArrayElement{Value: first, ByRef: byRef, SpanVal: mergeSpan(start, first.Span())}
}

// --- argument lists ---

func (p *Parser) parseArgumentList() []*ast.Argument {
	p.pushDelim(delimParen, p.curTok.Span)
	p.nextToken() // consume '('
	var args []*ast.Argument
	for !p.curIs(lexer.RParen) && !p.atEOF() {
		args = append(args, p.parseArgument())
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
		p.errExpectedAfter("')'", "argument list", p.curTok.Span)
	}
	return args
}

func (p *Parser) parseArgument() *ast.Argument {
	start := p.curTok.Span
	if p.curIs(lexer.Ellipsis) {
		p.nextToken()
		v := p.parseExpr(bpAssign)
		return &ast.Argument{Value: v, Unpack: true, SpanVal: mergeSpan(start, v.Span())}
	}
	if p.curIs(lexer.Identifier) && p.peekTok.Kind == lexer.Colon {
		name := p.curTok.Text()
		p.nextToken()
		p.nextToken() // consume ':'
		v := p.parseExpr(bpAssign)
		return &ast.Argument{Value: v, Name: name, SpanVal: mergeSpan(start, v.Span())}
	}
	v := p.parseExpr(bpAssign)
	return &ast.Argument{Value: v, SpanVal: mergeSpan(start, v.Span())}
}

// isFirstClassCallableArgs reports whether curTok/peekTok/peekTok2 form the
// exact `(`, `...`, `)` sequence that marks first-class callable syntax.
func (p *Parser) isFirstClassCallableArgs() bool {
	return p.curIs(lexer.LParen) && p.peekTok.Kind == lexer.Ellipsis
}
