package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

//  Expression nodes

// Expr is implemented by every syntax node that produces a value. The set of
// implementations is closed: only this package can add one.
type Expr interface {
	exprNode()
	String() string
}

// LiteralExpr is a number or boolean literal.
//
//	x = 10
//	    ^^  LiteralExpr{Token: NUMBER "10"}
type LiteralExpr struct {
	Token Token
}

func (*LiteralExpr) exprNode() {}
func (l *LiteralExpr) String() string {
	switch v := l.Token.Value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return "<missing>"
}

// UnaryExpr represents Op Operand (e.g. -x).
type UnaryExpr struct {
	Op      Token
	Operand Expr
}

func (*UnaryExpr) exprNode() {}
func (u *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", OperatorText(u.Op.Type), u.Operand)
}

// BinaryExpr represents a binary operation: Left Op Right.
//
//	x + 1
//	^ ^ ^
//	| | |
//	| | Right
//	| Op
//	Left
type BinaryExpr struct {
	Left  Expr
	Op    Token
	Right Expr
}

func (*BinaryExpr) exprNode() {}
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, OperatorText(b.Op.Type), b.Right)
}

// ParenExpr is an expression wrapped in parentheses. The parser keeps it so
// that the tree mirrors the source; the binder unwraps it.
type ParenExpr struct {
	Open  Token
	Expr  Expr
	Close Token
}

func (*ParenExpr) exprNode()        {}
func (p *ParenExpr) String() string { return fmt.Sprintf("[%s]", p.Expr) }

// VariableExpr is a read of a named variable or constant.
type VariableExpr struct {
	Name Token
}

func (*VariableExpr) exprNode()        {}
func (v *VariableExpr) String() string { return v.Name.Lexeme }

// AssignmentExpr represents Name = Value. Assignment is an expression whose
// value is the assigned value, so a = b = 1 nests to the right.
type AssignmentExpr struct {
	Name   Token
	Equals Token
	Value  Expr
}

func (*AssignmentExpr) exprNode() {}
func (a *AssignmentExpr) String() string {
	return fmt.Sprintf("(%s = %s)", a.Name.Lexeme, a.Value)
}

//  Statement nodes

// Stmt is implemented by every syntax node that is executed for its effect.
type Stmt interface {
	stmtNode()
	String() string
}

// ExprStmt is an expression evaluated as a statement, optionally followed by
// a semicolon.
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) stmtNode()        {}
func (e *ExprStmt) String() string { return e.Expr.String() }

// BlockStmt represents { statement ... }. A block synthesised around several
// top-level statements has zero-value brace tokens.
type BlockStmt struct {
	Open  Token
	Stmts []Stmt
	Close Token
}

func (*BlockStmt) stmtNode() {}
func (b *BlockStmt) String() string {
	parts := make([]string, len(b.Stmts))
	for i, s := range b.Stmts {
		parts[i] = s.String()
	}
	return "{" + strings.Join(parts, "; ") + "}"
}

// ElseClause is the optional else branch of an IfStmt.
type ElseClause struct {
	Else Token
	Body Stmt
}

// IfStmt represents if (cond) body [else elseBody]
type IfStmt struct {
	If        Token
	Open      Token
	Condition Expr
	Close     Token
	Body      Stmt
	ElseBody  *ElseClause // may be nil
}

func (*IfStmt) stmtNode() {}
func (i *IfStmt) String() string {
	if i.ElseBody != nil {
		return fmt.Sprintf("if %s then %s else %s", i.Condition, i.Body, i.ElseBody.Body)
	}
	return fmt.Sprintf("if %s then %s", i.Condition, i.Body)
}
