package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/jorgsowa/phpfront/internal/diag"
)

// scanQuotedSegment scans the literal text of a double-quoted or shell-exec
// string starting at the current byte, stopping at the closing quote or at
// an interpolation sigil (`$name`, `${`, `{$`). On an interpolation sigil it
// pushes the follow-up tokens onto the pending queue (simple form) or
// switches back into Script mode (complex form) per spec.md §4.1's
// "strictly limited sub-grammar" rule for the lexer-handled cases.
func (l *Lexer) scanQuotedSegment(quote byte, mode Mode) Token {
	start := l.pos
	startLine, startCol := l.line, l.col
	first := true
	if n := len(l.quoteFirst); n > 0 {
		first = l.quoteFirst[n-1]
	}
	markNotFirst := func() {
		if n := len(l.quoteFirst); n > 0 {
			l.quoteFirst[n-1] = false
		}
	}

	var out []byte
	for {
		c := l.cur()
		switch {
		case c == 0:
			l.errAt(diag.CodeUnterminatedString, l.span(start, startLine, startCol), "unterminated string literal")
			kind := quotedSegmentKind(mode, first, true)
			l.popQuoted()
			return Token{Kind: kind, Span: l.span(start, startLine, startCol), Payload: Payload{Text: string(out)}}

		case c == quote:
			l.advance()
			kind := quotedSegmentKind(mode, first, true)
			l.popQuoted()
			if first {
				// A literal with no interpolation is a lone Start segment;
				// an empty End follows it so the parser sees the close.
				l.pending = append(l.pending, Token{Kind: quotedSegmentKind(mode, false, true), Span: l.here()})
			}
			return Token{Kind: kind, Span: l.span(start, startLine, startCol), Payload: Payload{Text: string(out)}}

		case c == '\\':
			out = l.appendEscape(out)

		case c == '$' && isIdentStart(l.peek(1)):
			kind := quotedSegmentKind(mode, first, false)
			segTok := Token{Kind: kind, Span: l.span(start, startLine, startCol), Payload: Payload{Text: string(out)}}
			markNotFirst()
			l.queueSimpleInterpolation()
			return segTok

		case c == '$' && l.peek(1) == '{':
			kind := quotedSegmentKind(mode, first, false)
			segTok := Token{Kind: kind, Span: l.span(start, startLine, startCol), Payload: Payload{Text: string(out)}}
			markNotFirst()
			l.advance()
			l.advance()
			l.pushMode(ModeScript)
			l.interps = append(l.interps, interpFrame{braceDepth: 1})
			return segTok

		case c == '{' && l.peek(1) == '$':
			kind := quotedSegmentKind(mode, first, false)
			segTok := Token{Kind: kind, Span: l.span(start, startLine, startCol), Payload: Payload{Text: string(out)}}
			markNotFirst()
			l.advance()
			l.pushMode(ModeScript)
			l.interps = append(l.interps, interpFrame{braceDepth: 1})
			return segTok

		default:
			out = append(out, c)
			l.advance()
		}
	}
}

// quotedSegmentKind picks the Dq*/Shell* variant for a segment: the first
// segment is always a Start kind (even when it also reaches the closing
// quote, in which case scanQuotedSegment queues an empty End after it), a
// segment that closes the literal but isn't first is an End kind, and any
// other segment is Mid.
func quotedSegmentKind(mode Mode, first, closing bool) Kind {
	if mode == ModeShellExec {
		switch {
		case first:
			return ShellStart
		case closing:
			return ShellEnd
		default:
			return ShellMid
		}
	}
	switch {
	case first:
		return DqStringStart
	case closing:
		return DqStringEnd
	default:
		return DqStringMid
	}
}

// queueSimpleInterpolation recognizes the limited `$var`, `$var->ident`,
// and `$var[idx]` forms directly, per spec.md §4.1, pushing their tokens
// onto the pending queue so NextToken can return them one at a time.
func (l *Lexer) queueSimpleInterpolation() {
	varStart := l.pos
	varLine, varCol := l.line, l.col
	l.advance() // '$'
	nameStart := l.pos
	for isIdentCont(l.cur()) {
		l.advance()
	}
	l.pending = append(l.pending, Token{
		Kind: Variable, Span: l.span(varStart, varLine, varCol),
		Payload: Payload{Text: string(l.src[nameStart:l.pos])},
	})

	if l.cur() == '-' && l.peek(1) == '>' && isIdentStart(l.peek(2)) {
		arrowStart := l.pos
		arrowLine, arrowCol := l.line, l.col
		l.advance()
		l.advance()
		l.pending = append(l.pending, Token{Kind: Arrow, Span: l.span(arrowStart, arrowLine, arrowCol)})

		identStart := l.pos
		identLine, identCol := l.line, l.col
		for isIdentCont(l.cur()) {
			l.advance()
		}
		l.pending = append(l.pending, Token{
			Kind: Identifier, Span: l.span(identStart, identLine, identCol),
			Payload: Payload{Text: string(l.src[identStart:l.pos])},
		})
		return
	}

	if l.cur() != '[' {
		return
	}

	lbStart := l.pos
	lbLine, lbCol := l.line, l.col
	l.advance()
	l.pending = append(l.pending, Token{Kind: LBracket, Span: l.span(lbStart, lbLine, lbCol)})

	switch {
	case isDigit(l.cur()) || (l.cur() == '-' && isDigit(l.peek(1))):
		idxStart := l.pos
		idxLine, idxCol := l.line, l.col
		if l.cur() == '-' {
			l.advance()
		}
		l.scanDigitRun(isDigit)
		l.pending = append(l.pending, Token{
			Kind: IntLit, Span: l.span(idxStart, idxLine, idxCol),
			Payload: Payload{Text: string(l.src[idxStart:l.pos])},
		})
	case l.cur() == '$' && isIdentStart(l.peek(1)):
		vStart := l.pos
		vLine, vCol := l.line, l.col
		l.advance()
		nStart := l.pos
		for isIdentCont(l.cur()) {
			l.advance()
		}
		l.pending = append(l.pending, Token{
			Kind: Variable, Span: l.span(vStart, vLine, vCol),
			Payload: Payload{Text: string(l.src[nStart:l.pos])},
		})
	default:
		idStart := l.pos
		idLine, idCol := l.line, l.col
		for isIdentCont(l.cur()) {
			l.advance()
		}
		l.pending = append(l.pending, Token{
			Kind: Identifier, Span: l.span(idStart, idLine, idCol),
			Payload: Payload{Text: string(l.src[idStart:l.pos])},
		})
	}

	if l.cur() == ']' {
		rbStart := l.pos
		rbLine, rbCol := l.line, l.col
		l.advance()
		l.pending = append(l.pending, Token{Kind: RBracket, Span: l.span(rbStart, rbLine, rbCol)})
	}
}

// appendEscape decodes one backslash escape sequence starting at the
// current byte (known to be '\\') and appends its decoded bytes to out.
// Unrecognized escapes keep the backslash literally, matching PHP's
// double-quoted-string behavior.
func (l *Lexer) appendEscape(out []byte) []byte {
	start := l.pos
	startLine, startCol := l.line, l.col
	l.advance() // backslash
	c := l.cur()

	switch c {
	case 'n':
		l.advance()
		return append(out, '\n')
	case 'r':
		l.advance()
		return append(out, '\r')
	case 't':
		l.advance()
		return append(out, '\t')
	case 'v':
		l.advance()
		return append(out, '\v')
	case 'f':
		l.advance()
		return append(out, '\f')
	case 'e':
		l.advance()
		return append(out, 0x1b)
	case '\\':
		l.advance()
		return append(out, '\\')
	case '$':
		l.advance()
		return append(out, '$')
	case '"':
		l.advance()
		return append(out, '"')
	case '`':
		l.advance()
		return append(out, '`')
	case 'x':
		l.advance()
		hexStart := l.pos
		for n := 0; n < 2 && isHexDigit(l.cur()); n++ {
			l.advance()
		}
		if l.pos == hexStart {
			return append(out, '\\', 'x')
		}
		v, _ := strconv.ParseUint(string(l.src[hexStart:l.pos]), 16, 8)
		return append(out, byte(v))
	case 'u':
		if l.peek(1) == '{' {
			l.advance() // u
			l.advance() // {
			hexStart := l.pos
			for l.cur() != '}' && l.cur() != 0 {
				l.advance()
			}
			hex := string(l.src[hexStart:l.pos])
			if l.cur() == '}' {
				l.advance()
			}
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				l.errAt(diag.CodeInvalidEscape, l.span(start, startLine, startCol), "invalid unicode escape")
				return out
			}
			return appendRune(out, rune(v))
		}
		l.advance()
		return append(out, '\\', 'u')
	default:
		if c >= '0' && c <= '7' {
			octStart := l.pos
			for n := 0; n < 3 && l.cur() >= '0' && l.cur() <= '7'; n++ {
				l.advance()
			}
			v, _ := strconv.ParseUint(string(l.src[octStart:l.pos]), 8, 16)
			return append(out, byte(v))
		}
		l.advance()
		return append(out, '\\', c)
	}
}

func appendRune(out []byte, r rune) []byte {
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	return append(out, buf[:n]...)
}
