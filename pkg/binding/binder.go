// Package binding resolves the static types and operator meanings of a
// syntax tree, producing a bound tree for the evaluator.
package binding

import (
	"calclang/pkg/diagnostics"
	"calclang/pkg/syntax"
	"calclang/pkg/value"
)

// Binder walks a syntax tree and builds the matching bound tree. Problems are
// reported to diags; a node that cannot be bound becomes BadExpr or BadStmt
// and binding carries on with its siblings.
//
// The environment is only read. Variables are typed by the value they hold at
// bind time, so binding the same text again after an assignment may resolve
// differently. Assignments seen earlier in the same tree also count as
// definitions, typed by their right-hand side.
type Binder struct {
	diags    *diagnostics.Bag
	env      *value.Environment
	assigned map[string]value.Type
}

func NewBinder(diags *diagnostics.Bag, env *value.Environment) *Binder {
	return &Binder{diags: diags, env: env, assigned: make(map[string]value.Type)}
}

// Bind binds root against env, reporting problems to diags.
func Bind(diags *diagnostics.Bag, env *value.Environment, root syntax.Stmt) Stmt {
	return NewBinder(diags, env).BindStatement(root)
}

// BindStatement binds one statement and everything below it.
func (b *Binder) BindStatement(s syntax.Stmt) Stmt {
	switch n := s.(type) {
	case *syntax.ExprStmt:
		return &ExprStmt{Expr: b.BindExpression(n.Expr)}
	case *syntax.BlockStmt:
		return b.bindBlock(n)
	case *syntax.IfStmt:
		return b.bindIf(n)
	default:
		b.diags.Reportf("Unexpected statement %T.", s)
		return &BadStmt{}
	}
}

func (b *Binder) bindBlock(n *syntax.BlockStmt) Stmt {
	stmts := make([]Stmt, 0, len(n.Stmts))
	for _, child := range n.Stmts {
		stmts = append(stmts, b.BindStatement(child))
	}
	return &BlockStmt{Stmts: stmts}
}

func (b *Binder) bindIf(n *syntax.IfStmt) Stmt {
	cond := b.BindExpression(n.Condition)
	if t := cond.Type(); t != value.BooleanType && t != value.Error {
		b.diags.ReportNonBooleanCondition(t.String())
	}
	stmt := &IfStmt{Condition: cond, Body: b.BindStatement(n.Body)}
	if n.ElseBody != nil {
		stmt.ElseBody = b.BindStatement(n.ElseBody.Body)
	}
	return stmt
}

// BindExpression binds one expression and everything below it.
func (b *Binder) BindExpression(e syntax.Expr) Expr {
	switch n := e.(type) {
	case *syntax.LiteralExpr:
		return b.bindLiteral(n)
	case *syntax.ParenExpr:
		return b.BindExpression(n.Expr)
	case *syntax.VariableExpr:
		return b.bindVariable(n)
	case *syntax.AssignmentExpr:
		return b.bindAssignment(n)
	case *syntax.UnaryExpr:
		return b.bindUnary(n)
	case *syntax.BinaryExpr:
		return b.bindBinary(n)
	default:
		b.diags.Reportf("Unexpected expression %T.", e)
		return &BadExpr{}
	}
}

// bindLiteral takes the literal's type from its scanned value. A placeholder
// literal fabricated by the parser has no value and was already reported.
func (b *Binder) bindLiteral(n *syntax.LiteralExpr) Expr {
	switch v := n.Token.Value.(type) {
	case float64:
		return &LiteralExpr{Value: value.Number(v)}
	case bool:
		return &LiteralExpr{Value: value.Bool(v)}
	}
	return &BadExpr{}
}

func (b *Binder) bindVariable(n *syntax.VariableExpr) Expr {
	name := n.Name.Lexeme
	if c, ok := LookupConstant(name); ok {
		return &ConstantExpr{Name: name, Value: c}
	}
	if t, ok := b.assigned[name]; ok {
		return &VariableExpr{Name: name, Typ: t}
	}
	if v, ok := b.env.Lookup(name); ok {
		return &VariableExpr{Name: name, Typ: v.Type()}
	}
	b.diags.ReportUndefinedVariable(name)
	return &BadExpr{}
}

func (b *Binder) bindAssignment(n *syntax.AssignmentExpr) Expr {
	name := n.Name.Lexeme
	bound := b.BindExpression(n.Value)
	if IsConstant(name) {
		b.diags.ReportConstantAssignment(name)
		return &BadExpr{}
	}
	b.assigned[name] = bound.Type()
	return &AssignmentExpr{Name: name, Value: bound}
}

// bindUnary resolves the operator against the operand type. An operand that
// already failed to bind is not reported a second time.
func (b *Binder) bindUnary(n *syntax.UnaryExpr) Expr {
	operand := b.BindExpression(n.Operand)
	if operand.Type() == value.Error {
		return &BadExpr{}
	}
	op := LookupUnaryOperator(n.Op.Type, operand.Type())
	if op == nil {
		b.diags.ReportInvalidUnaryOperator(syntax.OperatorText(n.Op.Type), operand.Type().String())
		return &BadExpr{}
	}
	return &UnaryExpr{Op: op, Operand: operand}
}

func (b *Binder) bindBinary(n *syntax.BinaryExpr) Expr {
	left := b.BindExpression(n.Left)
	right := b.BindExpression(n.Right)
	if left.Type() == value.Error || right.Type() == value.Error {
		return &BadExpr{}
	}
	op := LookupBinaryOperator(n.Op.Type, left.Type(), right.Type())
	if op == nil {
		b.diags.ReportInvalidBinaryOperator(syntax.OperatorText(n.Op.Type), left.Type().String(), right.Type().String())
		return &BadExpr{}
	}
	return &BinaryExpr{Left: left, Op: op, Right: right}
}
