// Package value defines the runtime values of the language and the variable
// environment shared between the binder and the evaluator.
package value

import (
	"fmt"
	"math"
	"strconv"
)

// Type is the static type of an expression.
type Type int

const (
	// Error marks an expression that failed to bind.
	Error Type = iota
	NumberType
	BooleanType
)

func (t Type) String() string {
	switch t {
	case NumberType:
		return "number"
	case BooleanType:
		return "boolean"
	}
	return "?"
}

// Value is a runtime value: Number or Bool.
type Value interface {
	Type() Type
	String() string
	value()
}

// Number is a numeric value. All numeric literals are floating point.
type Number float64

func (Number) Type() Type { return NumberType }
func (Number) value()     {}
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Bool is a boolean value.
type Bool bool

func (Bool) Type() Type       { return BooleanType }
func (Bool) value()           {}
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Zero is the value produced where the language has nothing better to offer:
// invalid nodes, empty blocks and an if without else whose condition is false.
var Zero Value = Number(0)

// Equal reports whether a and b hold the same type and value. NaN is not
// equal to itself.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	}
	return false
}

// Pow raises base to exp using real exponents.
func Pow(base, exp Number) Number {
	return Number(math.Pow(float64(base), float64(exp)))
}

// FromAny converts a decoded Go value (as produced by a YAML or JSON decoder)
// into a Value. Integers are widened to Number.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(x), nil
	case int:
		return Number(x), nil
	case int64:
		return Number(x), nil
	case uint64:
		return Number(x), nil
	}
	return nil, fmt.Errorf("unsupported value %v (%T): want number or boolean", v, v)
}
