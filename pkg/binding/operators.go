package binding

import (
	"calclang/pkg/syntax"
	"calclang/pkg/value"
)

// UnaryOperator is one declared signature: Syntax applied to Operand yields
// Result.
type UnaryOperator struct {
	Syntax  syntax.TokenType
	Kind    OperatorKind
	Operand value.Type
	Result  value.Type
}

// BinaryOperator is one declared signature: Left Syntax Right yields Result.
type BinaryOperator struct {
	Syntax syntax.TokenType
	Kind   OperatorKind
	Left   value.Type
	Right  value.Type
	Result value.Type
}

var unaryOperators = [...]UnaryOperator{
	{syntax.PLUS, Identity, value.NumberType, value.NumberType},
	{syntax.MINUS, Negation, value.NumberType, value.NumberType},
}

var binaryOperators = [...]BinaryOperator{
	{syntax.PLUS, Addition, value.NumberType, value.NumberType, value.NumberType},
	{syntax.MINUS, Subtraction, value.NumberType, value.NumberType, value.NumberType},
	{syntax.STAR, Multiplication, value.NumberType, value.NumberType, value.NumberType},
	{syntax.SLASH, Division, value.NumberType, value.NumberType, value.NumberType},
	{syntax.STAR_STAR, Power, value.NumberType, value.NumberType, value.NumberType},

	{syntax.EQUALS, Equals, value.NumberType, value.NumberType, value.BooleanType},
	{syntax.NOT_EQ, NotEquals, value.NumberType, value.NumberType, value.BooleanType},
	{syntax.LESS, LessThan, value.NumberType, value.NumberType, value.BooleanType},
	{syntax.GREATER, GreaterThan, value.NumberType, value.NumberType, value.BooleanType},
	{syntax.LESS_EQ, LessOrEquals, value.NumberType, value.NumberType, value.BooleanType},
	{syntax.GREATER_EQ, GreaterOrEquals, value.NumberType, value.NumberType, value.BooleanType},

	{syntax.EQUALS, Equals, value.BooleanType, value.BooleanType, value.BooleanType},
	{syntax.NOT_EQ, NotEquals, value.BooleanType, value.BooleanType, value.BooleanType},
}

// LookupUnaryOperator scans the unary signature table. It returns nil when no
// signature accepts the operand type.
func LookupUnaryOperator(tt syntax.TokenType, operand value.Type) *UnaryOperator {
	for i := range unaryOperators {
		op := &unaryOperators[i]
		if op.Syntax == tt && op.Operand == operand {
			return op
		}
	}
	return nil
}

// LookupBinaryOperator scans the binary signature table. It returns nil when
// no signature accepts the operand types.
func LookupBinaryOperator(tt syntax.TokenType, left, right value.Type) *BinaryOperator {
	for i := range binaryOperators {
		op := &binaryOperators[i]
		if op.Syntax == tt && op.Left == left && op.Right == right {
			return op
		}
	}
	return nil
}
