package binding

import (
	"fmt"
	"strings"

	"calclang/pkg/syntax"
	"calclang/pkg/value"
)

//  Bound expressions

// Expr is a typed, operator-resolved expression. The set of implementations
// is closed.
type Expr interface {
	boundExpr()
	Type() value.Type
	String() string
}

// LiteralExpr is a number or boolean constant from the source.
type LiteralExpr struct {
	Value value.Value
}

func (*LiteralExpr) boundExpr()         {}
func (l *LiteralExpr) Type() value.Type { return l.Value.Type() }
func (l *LiteralExpr) String() string   { return l.Value.String() }

// ConstantExpr is a reference to a named constant such as PI.
type ConstantExpr struct {
	Name  string
	Value value.Value
}

func (*ConstantExpr) boundExpr()         {}
func (c *ConstantExpr) Type() value.Type { return c.Value.Type() }
func (c *ConstantExpr) String() string   { return c.Name }

// VariableExpr reads a variable. Its type is the type of the value the
// variable held when the tree was bound.
type VariableExpr struct {
	Name string
	Typ  value.Type
}

func (*VariableExpr) boundExpr()         {}
func (v *VariableExpr) Type() value.Type { return v.Typ }
func (v *VariableExpr) String() string   { return v.Name }

// AssignmentExpr stores Value into Name and yields it.
type AssignmentExpr struct {
	Name  string
	Value Expr
}

func (*AssignmentExpr) boundExpr()         {}
func (a *AssignmentExpr) Type() value.Type { return a.Value.Type() }
func (a *AssignmentExpr) String() string {
	return fmt.Sprintf("(%s = %s)", a.Name, a.Value)
}

// UnaryExpr applies a resolved unary operator.
type UnaryExpr struct {
	Op      *UnaryOperator
	Operand Expr
}

func (*UnaryExpr) boundExpr()         {}
func (u *UnaryExpr) Type() value.Type { return u.Op.Result }
func (u *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", syntax.OperatorText(u.Op.Syntax), u.Operand)
}

// BinaryExpr applies a resolved binary operator.
type BinaryExpr struct {
	Left  Expr
	Op    *BinaryOperator
	Right Expr
}

func (*BinaryExpr) boundExpr()         {}
func (b *BinaryExpr) Type() value.Type { return b.Op.Result }
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, syntax.OperatorText(b.Op.Syntax), b.Right)
}

// BadExpr stands in for an expression that failed to bind. The failure has
// already been reported; consumers treat it as an inert leaf.
type BadExpr struct{}

func (*BadExpr) boundExpr()       {}
func (*BadExpr) Type() value.Type { return value.Error }
func (*BadExpr) String() string   { return "<bad>" }

//  Bound statements

// Stmt is a bound statement. The set of implementations is closed.
type Stmt interface {
	boundStmt()
	String() string
}

type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) boundStmt()       {}
func (e *ExprStmt) String() string { return e.Expr.String() }

type BlockStmt struct {
	Stmts []Stmt
}

func (*BlockStmt) boundStmt() {}
func (b *BlockStmt) String() string {
	parts := make([]string, len(b.Stmts))
	for i, s := range b.Stmts {
		parts[i] = s.String()
	}
	return "{" + strings.Join(parts, "; ") + "}"
}

// IfStmt is bound even when its condition is not boolean; the mismatch is
// reported as a diagnostic.
type IfStmt struct {
	Condition Expr
	Body      Stmt
	ElseBody  Stmt // may be nil
}

func (*IfStmt) boundStmt() {}
func (i *IfStmt) String() string {
	if i.ElseBody != nil {
		return fmt.Sprintf("if %s then %s else %s", i.Condition, i.Body, i.ElseBody)
	}
	return fmt.Sprintf("if %s then %s", i.Condition, i.Body)
}

// BadStmt stands in for a statement that failed to bind.
type BadStmt struct{}

func (*BadStmt) boundStmt()     {}
func (*BadStmt) String() string { return "<bad>" }
