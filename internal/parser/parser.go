// Package parser implements the Pratt-based recursive-descent parser
// described in spec.md §4.2: it consumes the token stream produced by
// internal/lexer and produces an *ast.Program plus an ordered diagnostic
// list, never aborting on malformed input.
package parser

import (
	"github.com/jorgsowa/phpfront/internal/ast"
	"github.com/jorgsowa/phpfront/internal/diag"
	"github.com/jorgsowa/phpfront/internal/lexer"
)

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

// Option configures a Parser at construction time.
type Option func(*options)

type options struct {
	filename  string
	maxErrors int
	trivia    bool
}

// WithFilename records name on the parser and its lexer. Diagnostics and
// spans do not carry a filename.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithMaxErrors caps the number of diagnostics the parser records: once the
// shared bag holds n entries, further parser diagnostics are dropped.
// Parsing itself still runs to the end of the input, and lexer diagnostics
// and the end-of-input unclosed-delimiter diagnostics are not capped.
// Zero (the default) means unlimited.
func WithMaxErrors(n int) Option {
	return func(o *options) { o.maxErrors = n }
}

// WithTrivia enables doc-comment capture: FunctionDecl, ClassDecl, and
// class members receive their preceding `/** ... */` text in DocComment.
// Per spec.md §4.1, the AST never surfaces ordinary comments either way.
func WithTrivia(enabled bool) Option {
	return func(o *options) { o.trivia = enabled }
}

// delimKind identifies which of `(`, `[`, `{` opened a tracked delimiter.
type delimKind int

const (
	delimParen delimKind = iota
	delimBracket
	delimBrace
)

type openDelim struct {
	kind delimKind
	span ast.Span
}

// Context records the small amount of ambient parsing state spec.md §9
// calls for ("we are inside a class body", "we are in an expression list
// of a match") instead of threading extra parameters through every
// sub-parser.
type Context struct {
	InClass     bool
	InEnum      bool
	InFunction  bool
	InMatchArms bool
}

// Parser is single-use: one instance is constructed per parse and driven
// to completion, matching spec.md §5's synchronous, single-threaded model.
type Parser struct {
	lx      *lexer.Lexer
	curTok  lexer.Token
	peekTok lexer.Token

	diags    *diag.Bag
	filename string
	maxErrors int
	trivia    bool

	prefixFns map[lexer.Kind]prefixParseFn
	infixFns  map[lexer.Kind]infixParseFn

	delims []openDelim
	ctx    Context

	pendingDoc string
}

// New constructs a parser over src, seeding its two-token lookahead window.
func New(src []byte, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	bag := &diag.Bag{}
	lx := lexer.New(src, bag)
	if cfg.filename != "" {
		lx.SetFilename(cfg.filename)
	}

	p := &Parser{
		lx:        lx,
		diags:     bag,
		filename:  cfg.filename,
		maxErrors: cfg.maxErrors,
		trivia:    cfg.trivia,
		prefixFns: make(map[lexer.Kind]prefixParseFn),
		infixFns:  make(map[lexer.Kind]infixParseFn),
	}

	p.registerGrammar()

	p.nextToken()
	p.nextToken()

	return p
}

// Diagnostics returns every diagnostic recorded so far, in order.
func (p *Parser) Diagnostics() []diag.Diagnostic {
	return p.diags.All()
}

// nextToken advances the lookahead window by one token, pulling a fresh
// token from the lexer. This is the only place the lexer is queried, so
// lookahead bookkeeping stays centralized (mirrors the teacher's
// curTok/peekTok contract).
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.lx.NextToken()
	if p.trivia {
		if d := p.lx.PendingDocComment(); d != "" {
			p.pendingDoc = d
		}
	}
}

// takeDoc consumes and clears any pending doc-comment text, for attaching
// to the declaration node currently under construction.
func (p *Parser) takeDoc() string {
	d := p.pendingDoc
	p.pendingDoc = ""
	return d
}

func (p *Parser) atEOF() bool {
	return p.curTok.Kind == lexer.EOF
}

// curIs and peekIs report whether the current or lookahead token is kind,
// without advancing.
func (p *Parser) curIs(kind lexer.Kind) bool  { return p.curTok.Kind == kind }
func (p *Parser) peekIs(kind lexer.Kind) bool { return p.peekTok.Kind == kind }

// expectPeek requires peekTok to be kind; on success it advances and
// returns true, on failure it reports Expected and returns false without
// advancing.
func (p *Parser) expectPeek(kind lexer.Kind, what string) bool {
	if p.peekTok.Kind == kind {
		p.nextToken()
		return true
	}
	p.errExpected(what, p.peekTok.Span)
	return false
}

func (p *Parser) errExpected(what string, span ast.Span) {
	p.addDiag(diag.CodeExpected, span, "expected "+what)
}

func (p *Parser) errExpectedAfter(what, after string, span ast.Span) {
	p.addDiag(diag.CodeExpectedAfter, span, "expected "+what+" after "+after)
}

func (p *Parser) errUnexpected(span ast.Span, text string) {
	p.addDiag(diag.CodeUnexpected, span, "unexpected "+text)
}

func (p *Parser) addDiag(code diag.Code, span ast.Span, msg string) {
	if p.maxErrors > 0 && p.diags.Len() >= p.maxErrors {
		return
	}
	p.diags.Add(diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     code,
		Message:  msg,
		Span:     span,
	})
}

// mergeSpan returns the smallest span covering both a and b.
func mergeSpan(a, b ast.Span) ast.Span {
	return a.Merge(b)
}

func (p *Parser) registerGrammar() {
	p.registerExprGrammar()
}

// Parse runs the parser to completion and returns the resulting program.
// Diagnostics accumulated along the way are available via Diagnostics.
func (p *Parser) Parse() *ast.Program {
	start := p.curTok.Span
	prog := &ast.Program{}

	p.parseTopLevelEntry()

	for !p.atEOF() {
		prevTok := p.curTok
		stmt := p.parseStmt()
		if stmt != nil {
			prog.Stmts = append(prog.Stmts, stmt)
			continue
		}
		if p.atEOF() {
			break
		}
		prog.Stmts = append(prog.Stmts, p.recoverStatement(prevTok))
	}

	p.closeDanglingDelimiters()

	end := p.curTok.Span
	prog.SpanVal = mergeSpan(start, end)
	return prog
}

// parseTopLevelEntry implements spec.md §4.2.1: the source may open with
// InlineHTML, an OpenTag, or OpenTagEcho; anything else is diagnosed but
// parsing still proceeds from the current position in Script mode.
func (p *Parser) parseTopLevelEntry() {
	switch p.curTok.Kind {
	case lexer.InlineHTML, lexer.OpenTag, lexer.OpenTagEcho:
		return
	case lexer.EOF:
		return
	default:
		p.addDiag(diag.CodeExpectedOpenTag, p.curTok.Span, "expected <?php or <?=")
	}
}

func (p *Parser) pushDelim(kind delimKind, span ast.Span) {
	p.delims = append(p.delims, openDelim{kind: kind, span: span})
}

func (p *Parser) popDelim(kind delimKind) {
	for i := len(p.delims) - 1; i >= 0; i-- {
		if p.delims[i].kind == kind {
			p.delims = append(p.delims[:i], p.delims[i+1:]...)
			return
		}
	}
}

// closeDanglingDelimiters emits one UnclosedDelimiter diagnostic per entry
// still on the stack at EOF, each citing its opening span (spec.md §4.2.6).
func (p *Parser) closeDanglingDelimiters() {
	for _, d := range p.delims {
		p.diags.Add(diag.Diagnostic{
			Stage:    diag.StageParser,
			Severity: diag.SeverityError,
			Code:     diag.CodeUnclosedDelimiter,
			Message:  "unclosed delimiter",
			Span:     d.span,
		}.WithRelated(d.span))
	}
	p.delims = nil
}
