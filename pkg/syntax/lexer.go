package syntax

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Lexer holds all mutable state for a single scanning pass over src.
// It never fails: unknown characters become INVALID tokens.
type Lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), pos: 0, line: 1}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the rune one position ahead of the current position.
func (l *Lexer) peek2() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) token(tt TokenType, start, line int, value any) Token {
	return Token{Type: tt, Lexeme: string(l.src[start:l.pos]), Pos: start, Line: line, Value: value}
}

func (l *Lexer) scanWhitespace() Token {
	start, line := l.pos, l.line
	for !l.atEnd() && unicode.IsSpace(l.peek()) {
		l.advance()
	}
	return l.token(WHITESPACE, start, line, nil)
}

// scanLineComment consumes "//" and everything up to, but not including, the
// next newline.
func (l *Lexer) scanLineComment() Token {
	start, line := l.pos, l.line
	for !l.atEnd() && l.peek() != '\n' {
		l.advance()
	}
	return l.token(LINE_COMMENT, start, line, nil)
}

// scanBlockComment consumes "/*" through the closing "*/". An unterminated
// comment runs to end of input.
func (l *Lexer) scanBlockComment() Token {
	start, line := l.pos, l.line
	l.advance() // /
	l.advance() // *
	for !l.atEnd() {
		if l.peek() == '*' && l.peek2() == '/' {
			l.advance() // *
			l.advance() // /
			break
		}
		l.advance()
	}
	return l.token(BLOCK_COMMENT, start, line, nil)
}

// scanIdent collects an identifier or keyword. Identifiers are runs of
// letters and underscores; digits end them.
func (l *Lexer) scanIdent() Token {
	start, line := l.pos, l.line
	for !l.atEnd() {
		r := l.peek()
		if !unicode.IsLetter(r) && r != '_' {
			break
		}
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	switch tt := KeywordType(lexeme); tt {
	case TRUE:
		return l.token(TRUE, start, line, true)
	case FALSE:
		return l.token(FALSE, start, line, false)
	case IDENTIFIER:
		return l.token(IDENTIFIER, start, line, lexeme)
	default:
		return l.token(tt, start, line, nil)
	}
}

// scanNumber collects a run of digits and decimal points. The scan does not
// check that at most one point appears; see numberValue.
func (l *Lexer) scanNumber() Token {
	start, line := l.pos, l.line
	for !l.atEnd() && (unicode.IsDigit(l.peek()) || l.peek() == '.') {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	return l.token(NUMBER, start, line, numberValue(lexeme))
}

// numberValue parses a scanned numeric lexeme. When the full text is not a
// valid float (e.g. "1.2.3"), the prefix before the second decimal point is
// used instead.
func numberValue(text string) float64 {
	if v, ok := parseFloat(text); ok {
		return v
	}
	if i := strings.IndexByte(text, '.'); i >= 0 {
		if j := strings.IndexByte(text[i+1:], '.'); j >= 0 {
			if v, ok := parseFloat(text[:i+1+j]); ok {
				return v
			}
		}
	}
	return 0
}

func parseFloat(text string) (float64, bool) {
	v, err := strconv.ParseFloat(text, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return v, true
	}
	return 0, false
}

// NextToken returns exactly one token and advances past it. Once the input is
// exhausted every call returns an EOF token at the end position.
func (l *Lexer) NextToken() Token {
	if l.atEnd() {
		return Token{Type: EOF, Lexeme: "", Pos: len(l.src), Line: l.line}
	}

	ch := l.peek()
	switch {
	case unicode.IsDigit(ch):
		return l.scanNumber()
	case unicode.IsSpace(ch):
		return l.scanWhitespace()
	case unicode.IsLetter(ch) || ch == '_':
		return l.scanIdent()
	case ch == '/' && l.peek2() == '/':
		return l.scanLineComment()
	case ch == '/' && l.peek2() == '*':
		return l.scanBlockComment()
	}

	start, line := l.pos, l.line
	l.advance() // consume the character before the switch
	switch ch {
	case '(':
		return l.token(LPAREN, start, line, nil)
	case ')':
		return l.token(RPAREN, start, line, nil)
	case '{':
		return l.token(LBRACE, start, line, nil)
	case '}':
		return l.token(RBRACE, start, line, nil)
	case ';':
		return l.token(SEMICOLON, start, line, nil)
	case '+':
		return l.token(PLUS, start, line, nil)
	case '-':
		return l.token(MINUS, start, line, nil)
	case '/':
		return l.token(SLASH, start, line, nil)
	case '*':
		if l.peek() == '*' {
			l.advance()
			return l.token(STAR_STAR, start, line, nil)
		}
		return l.token(STAR, start, line, nil)
	case '=':
		if l.peek() == '=' { // lookahead: distinguish = vs ==
			l.advance()
			return l.token(EQUALS, start, line, nil)
		}
		return l.token(ASSIGN, start, line, nil)
	case '!':
		if l.peek() == '=' {
			l.advance()
			return l.token(NOT_EQ, start, line, nil)
		}
	case '<':
		if l.peek() == '=' {
			l.advance()
			return l.token(LESS_EQ, start, line, nil)
		}
		return l.token(LESS, start, line, nil)
	case '>':
		if l.peek() == '=' {
			l.advance()
			return l.token(GREATER_EQ, start, line, nil)
		}
		return l.token(GREATER, start, line, nil)
	}
	return l.token(INVALID, start, line, nil)
}

// Lex tokenises src and returns all tokens, trivia included, ending with the
// EOF token.
func Lex(src string) []Token {
	l := NewLexer(src)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}
