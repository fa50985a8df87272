package syntax

// keywords maps source text to its keyword TokenType.
var keywords = map[string]TokenType{
	"if":    IF,
	"else":  ELSE,
	"true":  TRUE,
	"false": FALSE,
}

// KeywordType returns the keyword TokenType for text, or IDENTIFIER when text
// is not reserved.
func KeywordType(text string) TokenType {
	if kw, ok := keywords[text]; ok {
		return kw
	}
	return IDENTIFIER
}

// BinaryPrecedence returns the binding power of tt as a binary operator, or 0
// when tt cannot appear between two operands.
//
//	4  **
//	3  *  /
//	2  +  -
//	1  == != < > <= >=
func BinaryPrecedence(tt TokenType) int {
	switch tt {
	case STAR_STAR:
		return 4
	case STAR, SLASH:
		return 3
	case PLUS, MINUS:
		return 2
	case EQUALS, NOT_EQ, LESS, GREATER, LESS_EQ, GREATER_EQ:
		return 1
	}
	return 0
}

// UnaryPrecedence returns the binding power of tt as a prefix operator, or 0.
// Prefix operators bind tighter than every binary operator, so -2 ** 2 is 4.
func UnaryPrecedence(tt TokenType) int {
	switch tt {
	case PLUS, MINUS:
		return 5
	}
	return 0
}

// OperatorText returns the source spelling of an operator token type.
func OperatorText(tt TokenType) string {
	switch tt {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case STAR_STAR:
		return "**"
	case ASSIGN:
		return "="
	case EQUALS:
		return "=="
	case NOT_EQ:
		return "!="
	case LESS:
		return "<"
	case GREATER:
		return ">"
	case LESS_EQ:
		return "<="
	case GREATER_EQ:
		return ">="
	}
	return tt.String()
}
