package syntax

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextToken_Single(t *testing.T) {
	tests := []struct {
		input     string
		wantType  TokenType
		wantValue any
	}{
		{"1", NUMBER, 1.0},
		{"123", NUMBER, 123.0},
		{"1.23", NUMBER, 1.23},
		{"1.2.3", NUMBER, 1.2},
		{"1..2", NUMBER, 1.0},
		{"+", PLUS, nil},
		{"-", MINUS, nil},
		{"*", STAR, nil},
		{"/", SLASH, nil},
		{"**", STAR_STAR, nil},
		{"(", LPAREN, nil},
		{")", RPAREN, nil},
		{"{", LBRACE, nil},
		{"}", RBRACE, nil},
		{"=", ASSIGN, nil},
		{"==", EQUALS, nil},
		{"!=", NOT_EQ, nil},
		{"<", LESS, nil},
		{">", GREATER, nil},
		{"<=", LESS_EQ, nil},
		{">=", GREATER_EQ, nil},
		{";", SEMICOLON, nil},
		{"abc", IDENTIFIER, "abc"},
		{"_var", IDENTIFIER, "_var"},
		{"if", IF, nil},
		{"else", ELSE, nil},
		{"true", TRUE, true},
		{"false", FALSE, false},
		{"  \t\n", WHITESPACE, nil},
		{"// comment", LINE_COMMENT, nil},
		{"/* comment */", BLOCK_COMMENT, nil},
		{"?", INVALID, nil},
		{"!", INVALID, nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewLexer(tt.input).NextToken()
			assert.Equal(t, tt.wantType, tok.Type)
			assert.Equal(t, tt.wantValue, tok.Value)
		})
	}
}

func TestNextToken_NumberValueMatchesParseFloat(t *testing.T) {
	for _, n := range []string{"0", "7", "42", "1000000", "9007199254740993", "000123"} {
		want, err := strconv.ParseFloat(n, 64)
		require.NoError(t, err)

		tok := NewLexer(n).NextToken()
		assert.Equal(t, NUMBER, tok.Type, n)
		assert.Equal(t, n, tok.Lexeme, "the whole run is one token")
		assert.Equal(t, want, tok.Value, n)
	}
}

func TestNextToken_MalformedNumberKeepsWholeLexeme(t *testing.T) {
	l := NewLexer("1.2.3+")
	tok := l.NextToken()
	assert.Equal(t, "1.2.3", tok.Lexeme)
	assert.Equal(t, 1.2, tok.Value)
	assert.Equal(t, PLUS, l.NextToken().Type)
}

func TestNextToken_EOFIsIdempotent(t *testing.T) {
	l := NewLexer("ab")
	require.Equal(t, IDENTIFIER, l.NextToken().Type)
	for i := 0; i < 3; i++ {
		tok := l.NextToken()
		assert.Equal(t, EOF, tok.Type)
		assert.Equal(t, 2, tok.Pos)
	}
}

func TestLex(t *testing.T) {
	type tokenSummary struct {
		Type   TokenType
		Lexeme string
		Line   int
	}
	tests := []struct {
		name     string
		input    string
		expected []tokenSummary
	}{
		{
			name:     "Empty",
			input:    "",
			expected: []tokenSummary{{EOF, "", 1}},
		},
		{
			name:  "Greedy two-character operators",
			input: "a**b<=c>=d==e!=f=g",
			expected: []tokenSummary{
				{IDENTIFIER, "a", 1}, {STAR_STAR, "**", 1},
				{IDENTIFIER, "b", 1}, {LESS_EQ, "<=", 1},
				{IDENTIFIER, "c", 1}, {GREATER_EQ, ">=", 1},
				{IDENTIFIER, "d", 1}, {EQUALS, "==", 1},
				{IDENTIFIER, "e", 1}, {NOT_EQ, "!=", 1},
				{IDENTIFIER, "f", 1}, {ASSIGN, "=", 1},
				{IDENTIFIER, "g", 1}, {EOF, "", 1},
			},
		},
		{
			name:  "Comments",
			input: "x // comment\ny /* block\n */ z",
			expected: []tokenSummary{
				{IDENTIFIER, "x", 1}, {WHITESPACE, " ", 1},
				{LINE_COMMENT, "// comment", 1}, {WHITESPACE, "\n", 1},
				{IDENTIFIER, "y", 2}, {WHITESPACE, " ", 2},
				{BLOCK_COMMENT, "/* block\n */", 2}, {WHITESPACE, " ", 3},
				{IDENTIFIER, "z", 3}, {EOF, "", 3},
			},
		},
		{
			name:  "Unterminated block comment runs to end of input",
			input: "1 /* never closed",
			expected: []tokenSummary{
				{NUMBER, "1", 1}, {WHITESPACE, " ", 1},
				{BLOCK_COMMENT, "/* never closed", 1}, {EOF, "", 1},
			},
		},
		{
			name:  "Identifiers stop at digits",
			input: "ab1",
			expected: []tokenSummary{
				{IDENTIFIER, "ab", 1}, {NUMBER, "1", 1}, {EOF, "", 1},
			},
		},
		{
			name:  "Invalid characters are tagged, not fatal",
			input: "1 @ 2",
			expected: []tokenSummary{
				{NUMBER, "1", 1}, {WHITESPACE, " ", 1},
				{INVALID, "@", 1}, {WHITESPACE, " ", 1},
				{NUMBER, "2", 1}, {EOF, "", 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []tokenSummary
			for _, tok := range Lex(tt.input) {
				got = append(got, tokenSummary{tok.Type, tok.Lexeme, tok.Line})
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Lex(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestLex_Positions(t *testing.T) {
	tokens := Lex("ab + 12")
	var got []int
	for _, tok := range tokens {
		got = append(got, tok.Pos)
	}
	if diff := cmp.Diff([]int{0, 2, 3, 4, 5, 7}, got); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}
