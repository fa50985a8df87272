// Package evaluator executes bound trees against a variable environment.
package evaluator

import (
	"calclang/pkg/binding"
	"calclang/pkg/diagnostics"
	"calclang/pkg/syntax"
	"calclang/pkg/value"
)

// Evaluator walks a bound tree and computes its value. It is total: bad
// nodes, and values whose runtime type no longer matches the bound operator,
// are reported to diags and evaluate to value.Zero.
type Evaluator struct {
	root  binding.Stmt
	diags *diagnostics.Bag
	env   *value.Environment
}

func New(root binding.Stmt, diags *diagnostics.Bag, env *value.Environment) *Evaluator {
	return &Evaluator{root: root, diags: diags, env: env}
}

// Evaluate runs root against env and returns the value of the last executed
// statement.
func Evaluate(root binding.Stmt, diags *diagnostics.Bag, env *value.Environment) value.Value {
	return New(root, diags, env).Evaluate()
}

func (ev *Evaluator) Evaluate() value.Value {
	return ev.evalStmt(ev.root)
}

func (ev *Evaluator) evalStmt(s binding.Stmt) value.Value {
	switch n := s.(type) {
	case *binding.ExprStmt:
		return ev.evalExpr(n.Expr)

	case *binding.BlockStmt:
		// An empty block yields Zero; otherwise the last statement's value.
		result := value.Zero
		for _, child := range n.Stmts {
			result = ev.evalStmt(child)
		}
		return result

	case *binding.IfStmt:
		cond := ev.evalExpr(n.Condition)
		b, ok := cond.(value.Bool)
		if !ok {
			// A condition bound as non-boolean was reported by the binder.
			if n.Condition.Type() == value.BooleanType {
				ev.diags.ReportNonBooleanCondition(cond.Type().String())
			}
			return value.Zero
		}
		if b {
			return ev.evalStmt(n.Body)
		}
		if n.ElseBody != nil {
			return ev.evalStmt(n.ElseBody)
		}
		return value.Zero

	default:
		ev.diags.ReportInvalidStatement()
		return value.Zero
	}
}

func (ev *Evaluator) evalExpr(e binding.Expr) value.Value {
	switch n := e.(type) {
	case *binding.LiteralExpr:
		return n.Value

	case *binding.ConstantExpr:
		return n.Value

	case *binding.VariableExpr:
		v, ok := ev.env.Lookup(n.Name)
		if !ok {
			ev.diags.ReportUndefinedVariable(n.Name)
			return value.Zero
		}
		return v

	case *binding.AssignmentExpr:
		v := ev.evalExpr(n.Value)
		ev.env.Assign(n.Name, v)
		return v

	case *binding.UnaryExpr:
		return ev.evalUnary(n)

	case *binding.BinaryExpr:
		return ev.evalBinary(n)

	default:
		ev.diags.ReportInvalidExpression()
		return value.Zero
	}
}

func (ev *Evaluator) evalUnary(n *binding.UnaryExpr) value.Value {
	operand := ev.evalExpr(n.Operand)
	x, ok := operand.(value.Number)
	if !ok {
		ev.diags.ReportInvalidUnaryOperator(syntax.OperatorText(n.Op.Syntax), operand.Type().String())
		return value.Zero
	}
	switch n.Op.Kind {
	case binding.Identity:
		return x
	case binding.Negation:
		return -x
	}
	ev.diags.ReportInvalidExpression()
	return value.Zero
}

func (ev *Evaluator) evalBinary(n *binding.BinaryExpr) value.Value {
	left := ev.evalExpr(n.Left)
	right := ev.evalExpr(n.Right)

	// Equality is decided by value, whatever the operand types.
	switch n.Op.Kind {
	case binding.Equals:
		return value.Bool(value.Equal(left, right))
	case binding.NotEquals:
		return value.Bool(!value.Equal(left, right))
	}

	x, lok := left.(value.Number)
	y, rok := right.(value.Number)
	if !lok || !rok {
		ev.diags.ReportInvalidBinaryOperator(syntax.OperatorText(n.Op.Syntax), left.Type().String(), right.Type().String())
		return value.Zero
	}

	switch n.Op.Kind {
	case binding.Addition:
		return x + y
	case binding.Subtraction:
		return x - y
	case binding.Multiplication:
		return x * y
	case binding.Division:
		return x / y
	case binding.Power:
		return value.Pow(x, y)
	case binding.LessThan:
		return value.Bool(x < y)
	case binding.GreaterThan:
		return value.Bool(x > y)
	case binding.LessOrEquals:
		return value.Bool(x <= y)
	case binding.GreaterOrEquals:
		return value.Bool(x >= y)
	}
	ev.diags.ReportInvalidExpression()
	return value.Zero
}
