// Package diagnostics collects the non-fatal messages reported while parsing,
// binding and evaluating a program.
package diagnostics

import "fmt"

// Bag is an append-only, ordered list of diagnostic messages. Messages are
// never deduplicated. A Bag is not safe for concurrent use.
type Bag struct {
	messages []string
}

// New returns an empty Bag.
func New() *Bag {
	return &Bag{}
}

// Report appends message to the bag.
func (b *Bag) Report(message string) {
	b.messages = append(b.messages, message)
}

// Reportf formats according to a format specifier and appends the result.
func (b *Bag) Reportf(format string, args ...any) {
	b.Report(fmt.Sprintf(format, args...))
}

// Messages returns a snapshot of the accumulated messages in insertion order.
// Later reports do not affect a snapshot already taken. An empty bag yields
// nil.
func (b *Bag) Messages() []string {
	if len(b.messages) == 0 {
		return nil
	}
	out := make([]string, len(b.messages))
	copy(out, b.messages)
	return out
}

// Len returns the number of messages reported so far.
func (b *Bag) Len() int {
	return len(b.messages)
}

// Empty reports whether nothing has been reported.
func (b *Bag) Empty() bool {
	return len(b.messages) == 0
}

// AddAll appends every message of other, preserving order.
func (b *Bag) AddAll(other []string) {
	b.messages = append(b.messages, other...)
}

func (b *Bag) ReportUnexpectedToken(line int, got, want string) {
	b.Reportf("line %d: Unexpected token <%s>, expected <%s>.", line, got, want)
}

func (b *Bag) ReportUndefinedVariable(name string) {
	b.Reportf("Variable '%s' is not defined.", name)
}

func (b *Bag) ReportInvalidBinaryOperator(op, leftType, rightType string) {
	b.Reportf("Operator '%s' is not defined for types '%s' and '%s'.", op, leftType, rightType)
}

func (b *Bag) ReportInvalidUnaryOperator(op, operandType string) {
	b.Reportf("Unary operator '%s' is not defined for type '%s'.", op, operandType)
}

func (b *Bag) ReportNonBooleanCondition(got string) {
	b.Reportf("Condition must be of type 'boolean', got '%s'.", got)
}

func (b *Bag) ReportConstantAssignment(name string) {
	b.Reportf("Cannot assign to constant '%s'.", name)
}

// ReportInvalidExpression is used by the evaluator when it meets a node that
// failed to bind.
func (b *Bag) ReportInvalidExpression() {
	b.Report("Cannot evaluate invalid expression.")
}

func (b *Bag) ReportInvalidStatement() {
	b.Report("Cannot execute invalid statement.")
}
