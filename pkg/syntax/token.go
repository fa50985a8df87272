package syntax

import (
	"fmt"
	"strconv"
)

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF     TokenType = iota // sentinel: end of input
	INVALID                  // any character the lexer does not recognise

	// Trivia, filtered out before parsing
	WHITESPACE
	LINE_COMMENT  // // ...
	BLOCK_COMMENT // /* ... */

	// Literals
	NUMBER     // 12, 1.5
	IDENTIFIER // variable name

	// Keywords
	IF    // "if"
	ELSE  // "else"
	TRUE  // "true"
	FALSE // "false"

	// Paired delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	SEMICOLON // ;

	// Arithmetic operators
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	STAR_STAR // **

	// Assignment and comparison
	ASSIGN     // =
	EQUALS     // ==
	NOT_EQ     // !=
	LESS       // <
	GREATER    // >
	LESS_EQ    // <=
	GREATER_EQ // >=
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:           "EOF",
	INVALID:       "INVALID",
	WHITESPACE:    "WHITESPACE",
	LINE_COMMENT:  "LINE_COMMENT",
	BLOCK_COMMENT: "BLOCK_COMMENT",
	NUMBER:        "NUMBER",
	IDENTIFIER:    "IDENTIFIER",
	IF:            "IF",
	ELSE:          "ELSE",
	TRUE:          "TRUE",
	FALSE:         "FALSE",
	LPAREN:        "LPAREN",
	RPAREN:        "RPAREN",
	LBRACE:        "LBRACE",
	RBRACE:        "RBRACE",
	SEMICOLON:     "SEMICOLON",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	STAR:          "STAR",
	SLASH:         "SLASH",
	STAR_STAR:     "STAR_STAR",
	ASSIGN:        "ASSIGN",
	EQUALS:        "EQUALS",
	NOT_EQ:        "NOT_EQ",
	LESS:          "LESS",
	GREATER:       "GREATER",
	LESS_EQ:       "LESS_EQ",
	GREATER_EQ:    "GREATER_EQ",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// IsTrivia reports whether tokens of this type carry no meaning for the parser.
func (tt TokenType) IsTrivia() bool {
	switch tt {
	case WHITESPACE, LINE_COMMENT, BLOCK_COMMENT, INVALID:
		return true
	}
	return false
}

// Token is a single lexical unit produced by the Lexer. Tokens are values and
// are never modified after they are produced.
//
// Value holds the literal payload: a float64 for NUMBER, a bool for TRUE and
// FALSE, the identifier text for IDENTIFIER, and nil for everything else.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Pos    int    // 0-based rune offset of the first character
	Line   int    // 1-based source line
	Value  any
}

// Missing reports whether the token was fabricated by the parser during error
// recovery rather than read from the source.
func (t Token) Missing() bool {
	return t.Lexeme == "" && t.Type != EOF
}

func (t Token) String() string {
	switch v := t.Value.(type) {
	case float64:
		return fmt.Sprintf("%-10s %-14q  line %d  value %s", t.Type, t.Lexeme, t.Line, strconv.FormatFloat(v, 'g', -1, 64))
	case nil:
		return fmt.Sprintf("%-10s %-14q  line %d", t.Type, t.Lexeme, t.Line)
	default:
		return fmt.Sprintf("%-10s %-14q  line %d  value %v", t.Type, t.Lexeme, t.Line, v)
	}
}
