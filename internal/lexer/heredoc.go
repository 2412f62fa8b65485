package lexer

import "github.com/jorgsowa/phpfront/internal/diag"

// scanHeredocStart consumes the `<<<LABEL` (or `<<<'LABEL'`/`<<<"LABEL"`)
// opener and the newline that follows it, computes the closing
// terminator's indentation by scanning ahead without mutating lexer state,
// and pushes a heredoc frame so scanHeredocSegment can strip that
// indentation from every content line (PHP 7.3+ flexible heredoc syntax).
func (l *Lexer) scanHeredocStart(start, startLine, startCol uint32) Token {
	l.advance()
	l.advance()
	l.advance() // "<<<"
	for l.cur() == ' ' || l.cur() == '\t' {
		l.advance()
	}

	isNowdoc := false
	var label string
	switch l.cur() {
	case '\'':
		isNowdoc = true
		l.advance()
		labelStart := l.pos
		for l.cur() != '\'' && l.cur() != 0 {
			l.advance()
		}
		label = string(l.src[labelStart:l.pos])
		if l.cur() == '\'' {
			l.advance()
		}
	case '"':
		l.advance()
		labelStart := l.pos
		for l.cur() != '"' && l.cur() != 0 {
			l.advance()
		}
		label = string(l.src[labelStart:l.pos])
		if l.cur() == '"' {
			l.advance()
		}
	default:
		labelStart := l.pos
		for isIdentCont(l.cur()) {
			l.advance()
		}
		label = string(l.src[labelStart:l.pos])
	}

	if label == "" {
		l.errAt(diag.CodeExpected, l.span(start, startLine, startCol), "expected heredoc label after <<<")
	}

	if l.cur() == '\r' {
		l.advance()
	}
	if l.cur() == '\n' {
		l.advance()
	} else {
		l.errAt(diag.CodeExpected, l.span(start, startLine, startCol), "expected newline after heredoc opener")
	}

	indent := l.lookaheadHeredocIndent(label)

	l.heredocs = append(l.heredocs, heredocFrame{
		label: label, isNowdoc: isNowdoc, indent: indent, atLineStart: true,
	})
	l.pushMode(ModeHeredoc)

	return Token{Kind: HeredocStart, Span: l.span(start, startLine, startCol), Payload: Payload{HeredocLabel: label}}
}

// lookaheadHeredocIndent scans forward from the current position, line by
// line, until it finds the line whose (post-indent) content matches label
// as a whole identifier, and returns that line's leading whitespace width.
// Lexer position/line/column are restored before returning; this is a pure
// lookahead.
func (l *Lexer) lookaheadHeredocIndent(label string) int {
	savePos, saveLine, saveCol := l.pos, l.line, l.col
	defer func() { l.pos, l.line, l.col = savePos, saveLine, saveCol }()

	for l.pos < uint32(len(l.src)) {
		lineStart := l.pos
		ws := 0
		for l.cur() == ' ' || l.cur() == '\t' {
			l.advance()
			ws++
		}
		if l.matchesLabelHere(label) {
			return ws
		}
		l.pos = lineStart
		for l.cur() != '\n' && l.cur() != 0 {
			l.advance()
		}
		if l.cur() == '\n' {
			l.advance()
		}
	}
	return 0
}

func (l *Lexer) matchesLabelHere(label string) bool {
	if label == "" {
		return false
	}
	end := int(l.pos) + len(label)
	if end > len(l.src) {
		return false
	}
	if string(l.src[l.pos:end]) != label {
		return false
	}
	var next byte
	if end < len(l.src) {
		next = l.src[end]
	}
	return !isIdentCont(next)
}

// scanHeredocSegment scans heredoc/nowdoc content up to the next
// interpolation sigil or the closing terminator, stripping the frame's
// indent from the start of every content line as it goes.
func (l *Lexer) scanHeredocSegment() Token {
	start := l.pos
	startLine, startCol := l.line, l.col

	if len(l.heredocs) == 0 {
		l.popMode()
		return Token{Kind: HeredocEnd, Span: l.span(start, startLine, startCol)}
	}
	frame := &l.heredocs[len(l.heredocs)-1]

	var out []byte
	for {
		if frame.atLineStart {
			for i := 0; i < frame.indent && (l.cur() == ' ' || l.cur() == '\t'); i++ {
				l.advance()
			}
			if l.matchesLabelHere(frame.label) {
				for i := 0; i < len(frame.label); i++ {
					l.advance()
				}
				out = trimTrailingNewline(out)
				kind := heredocSegmentKind(frame, true)
				l.heredocs = l.heredocs[:len(l.heredocs)-1]
				l.popMode()
				return Token{Kind: kind, Span: l.span(start, startLine, startCol), Payload: Payload{Text: string(out)}}
			}
			frame.atLineStart = false
		}

		c := l.cur()
		if c == 0 {
			l.errAt(diag.CodeUnterminatedString, l.span(start, startLine, startCol), "unterminated heredoc, expected terminator "+frame.label)
			kind := heredocSegmentKind(frame, true)
			l.heredocs = l.heredocs[:len(l.heredocs)-1]
			l.popMode()
			return Token{Kind: kind, Span: l.span(start, startLine, startCol), Payload: Payload{Text: string(out)}}
		}

		if c == '\n' {
			out = append(out, '\n')
			l.advance()
			frame.atLineStart = true
			continue
		}

		if !frame.isNowdoc {
			if c == '\\' {
				out = l.appendEscape(out)
				continue
			}
			if c == '$' && isIdentStart(l.peek(1)) {
				kind := heredocSegmentKind(frame, false)
				segTok := Token{Kind: kind, Span: l.span(start, startLine, startCol), Payload: Payload{Text: string(out)}}
				l.queueSimpleInterpolation()
				return segTok
			}
			if c == '$' && l.peek(1) == '{' {
				kind := heredocSegmentKind(frame, false)
				segTok := Token{Kind: kind, Span: l.span(start, startLine, startCol), Payload: Payload{Text: string(out)}}
				l.advance()
				l.advance()
				l.pushMode(ModeScript)
				l.interps = append(l.interps, interpFrame{braceDepth: 1})
				return segTok
			}
			if c == '{' && l.peek(1) == '$' {
				kind := heredocSegmentKind(frame, false)
				segTok := Token{Kind: kind, Span: l.span(start, startLine, startCol), Payload: Payload{Text: string(out)}}
				l.advance()
				l.pushMode(ModeScript)
				l.interps = append(l.interps, interpFrame{braceDepth: 1})
				return segTok
			}
		}

		out = append(out, c)
		l.advance()
	}
}

// heredocSegmentKind: nowdoc content is always a single opaque chunk;
// heredoc content chunks are Mid until the one that reaches the
// terminator, which is End.
func heredocSegmentKind(frame *heredocFrame, closing bool) Kind {
	if frame.isNowdoc {
		return NowdocContent
	}
	if closing {
		return HeredocEnd
	}
	return HeredocMid
}

func trimTrailingNewline(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
		if n := len(b); n > 0 && b[n-1] == '\r' {
			b = b[:n-1]
		}
	}
	return b
}
