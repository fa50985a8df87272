package binding

import "fmt"

// OperatorKind is the resolved meaning of an operator after overload
// resolution. It is distinct from the syntax token: "==" on numbers and on
// booleans both resolve to Equals, "-" prefix resolves to Negation.
type OperatorKind int

const (
	// Unary
	Identity OperatorKind = iota
	Negation

	// Binary arithmetic
	Addition
	Subtraction
	Multiplication
	Division
	Power

	// Binary comparison
	Equals
	NotEquals
	LessThan
	GreaterThan
	LessOrEquals
	GreaterOrEquals
)

var operatorKindNames = [...]string{
	Identity:        "Identity",
	Negation:        "Negation",
	Addition:        "Addition",
	Subtraction:     "Subtraction",
	Multiplication:  "Multiplication",
	Division:        "Division",
	Power:           "Power",
	Equals:          "Equals",
	NotEquals:       "NotEquals",
	LessThan:        "LessThan",
	GreaterThan:     "GreaterThan",
	LessOrEquals:    "LessOrEquals",
	GreaterOrEquals: "GreaterOrEquals",
}

func (k OperatorKind) String() string {
	if int(k) >= 0 && int(k) < len(operatorKindNames) {
		return operatorKindNames[k]
	}
	return fmt.Sprintf("OperatorKind(%d)", int(k))
}
