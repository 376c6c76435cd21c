package syntax

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type tokKind int8

const (
	tEOF tokKind = iota
	tIdent
	tConst
	tInt
	tFloat
	tString
	tSymbol
	tLBracket
	tRBracket
	tLParen
	tRParen
	tComma
	tStar
	tAt
	tColon
)

var tokNames = [...]string{
	tEOF:      "end of pattern",
	tIdent:    "identifier",
	tConst:    "type name",
	tInt:      "integer",
	tFloat:    "float",
	tString:   "string",
	tSymbol:   "symbol",
	tLBracket: "'['",
	tRBracket: "']'",
	tLParen:   "'('",
	tRParen:   "')'",
	tComma:    "','",
	tStar:     "'*'",
	tAt:       "'@'",
	tColon:    "':'",
}

func (k tokKind) String() string {
	return tokNames[k]
}

type token struct {
	kind  tokKind
	span  Span
	text  string // raw text
	value any    // decoded value for literals
}

// lexer splits pattern text into tokens. It tracks line and column while
// advancing, so every token carries a complete Span.
type lexer struct {
	src    string
	pos    int
	line   int
	col    int
	prev   tokKind
	tokens []token
}

func tokenize(src string) ([]token, error) {
	lx := &lexer{src: src, line: 1, col: 1, prev: tEOF}
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		lx.tokens = append(lx.tokens, tok)
		lx.prev = tok.kind
		if tok.kind == tEOF {
			return lx.tokens, nil
		}
	}
}

func (lx *lexer) peekByte(ahead int) byte {
	if lx.pos+ahead < len(lx.src) {
		return lx.src[lx.pos+ahead]
	}
	return 0
}

func (lx *lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
	lx.pos += size
	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r
}

func (lx *lexer) mark() Span {
	return Span{Offset: lx.pos, Line: lx.line, Column: lx.col}
}

func (lx *lexer) emit(kind tokKind, start Span, value any) token {
	start.Length = lx.pos - start.Offset
	return token{kind: kind, span: start, text: start.Text(lx.src), value: value}
}

func (lx *lexer) errorAt(start Span, msg string) error {
	if start.Length == 0 && start.Offset < len(lx.src) {
		_, size := utf8.DecodeRuneInString(lx.src[start.Offset:])
		start.Length = size
	}
	return Errorf(lx.src, start, "%s", msg)
}

func (lx *lexer) skipSpace() {
	for lx.pos < len(lx.src) {
		switch lx.src[lx.pos] {
		case ' ', '\t', '\r', '\n':
			lx.advance()
		default:
			return
		}
	}
}

func (lx *lexer) next() (token, error) {
	lx.skipSpace()
	start := lx.mark()
	if lx.pos >= len(lx.src) {
		return lx.emit(tEOF, start, nil), nil
	}
	c := lx.src[lx.pos]
	switch {
	case c == '[':
		lx.advance()
		return lx.emit(tLBracket, start, nil), nil
	case c == ']':
		lx.advance()
		return lx.emit(tRBracket, start, nil), nil
	case c == '(':
		lx.advance()
		return lx.emit(tLParen, start, nil), nil
	case c == ')':
		lx.advance()
		return lx.emit(tRParen, start, nil), nil
	case c == ',':
		lx.advance()
		return lx.emit(tComma, start, nil), nil
	case c == '*':
		lx.advance()
		return lx.emit(tStar, start, nil), nil
	case c == '@':
		lx.advance()
		return lx.emit(tAt, start, nil), nil
	case c == ':':
		return lx.colonOrSymbol(start)
	case c == '"' || c == '\'':
		return lx.quoted(start, c)
	case c == '-' || isDigit(c):
		return lx.number(start)
	case isLower(c):
		lx.word()
		return lx.emit(tIdent, start, nil), nil
	case isUpper(c):
		if err := lx.typeName(start); err != nil {
			return token{}, err
		}
		return lx.emit(tConst, start, nil), nil
	}
	return token{}, lx.errorAt(start, "unexpected character")
}

// A colon directly following an identifier introduces a type annotation.
// Anywhere else, a colon immediately followed by a name starts a symbol.
func (lx *lexer) colonOrSymbol(start Span) (token, error) {
	lx.advance()
	if lx.prev == tIdent {
		return lx.emit(tColon, start, nil), nil
	}
	c := lx.peekByte(0)
	switch {
	case isLower(c):
		lx.word()
	case isUpper(c):
		if err := lx.typeName(start); err != nil {
			return token{}, err
		}
	default:
		return lx.emit(tColon, start, nil), nil
	}
	tok := lx.emit(tSymbol, start, nil)
	tok.value = tok.text[1:]
	return tok, nil
}

func (lx *lexer) word() {
	for lx.pos < len(lx.src) && isWordChar(lx.src[lx.pos]) {
		lx.advance()
	}
}

func (lx *lexer) typeName(start Span) error {
	lx.word()
	for lx.peekByte(0) == ':' && lx.peekByte(1) == ':' {
		if !isUpper(lx.peekByte(2)) {
			lx.advance()
			lx.advance()
			return lx.errorAt(lx.mark(), "expected type name after '::'")
		}
		lx.advance()
		lx.advance()
		lx.word()
	}
	return nil
}

func (lx *lexer) digits() int {
	n := 0
	for lx.pos < len(lx.src) && (isDigit(lx.src[lx.pos]) || (n > 0 && lx.src[lx.pos] == '_')) {
		lx.advance()
		n++
	}
	return n
}

func (lx *lexer) number(start Span) (token, error) {
	if lx.src[lx.pos] == '-' {
		lx.advance()
		if !isDigit(lx.peekByte(0)) {
			return token{}, lx.errorAt(start, "expected digit after '-'")
		}
	}
	lx.digits()
	kind := tInt
	if lx.peekByte(0) == '.' && isDigit(lx.peekByte(1)) {
		kind = tFloat
		lx.advance()
		lx.digits()
		if e := lx.peekByte(0); e == 'e' || e == 'E' {
			lx.advance()
			if s := lx.peekByte(0); s == '+' || s == '-' {
				lx.advance()
			}
			if lx.digits() == 0 {
				return token{}, lx.errorAt(lx.mark(), "malformed exponent")
			}
		}
	}
	if isWordChar(lx.peekByte(0)) {
		return token{}, lx.errorAt(lx.mark(), "unexpected character in number")
	}
	tok := lx.emit(kind, start, nil)
	text := strings.ReplaceAll(tok.text, "_", "")
	if kind == tInt {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return token{}, Errorf(lx.src, tok.span, "integer out of range")
		}
		tok.value = n
	} else {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token{}, Errorf(lx.src, tok.span, "float out of range")
		}
		tok.value = f
	}
	return tok, nil
}

// quoted lexes a string literal. A backslash escapes the delimiting quote and
// the backslash itself; any other backslash pair is taken literally.
func (lx *lexer) quoted(start Span, quote byte) (token, error) {
	lx.advance()
	var sb strings.Builder
	for {
		if lx.pos >= len(lx.src) {
			start.Length = lx.pos - start.Offset
			return token{}, Errorf(lx.src, start, "unterminated string")
		}
		c := lx.src[lx.pos]
		switch {
		case c == quote:
			lx.advance()
			return lx.emit(tString, start, sb.String()), nil
		case c == '\\' && (lx.peekByte(1) == quote || lx.peekByte(1) == '\\'):
			lx.advance()
			sb.WriteByte(lx.src[lx.pos])
			lx.advance()
		default:
			sb.WriteRune(lx.advance())
		}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' || c == '_' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isWordChar(c byte) bool {
	return isLower(c) || isUpper(c) || isDigit(c)
}
