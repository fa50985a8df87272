package syntax

import "calclang/pkg/diagnostics"

// Parser consumes the token slice produced by the Lexer and builds a syntax
// tree. It never stops at the first problem: a missing token is reported and
// fabricated so that parsing always completes.
//
// Grammar:
//
//	program    = statement* EOF
//	statement  = block | if | exprStmt
//	block      = "{" statement* "}"
//	if         = "if" "(" expression ")" statement ("else" statement)?
//	exprStmt   = expression ";"?
//	expression = IDENTIFIER "=" expression | binary
//	binary     = unary (binop binary)*        precedence climbing, see BinaryPrecedence
//	unary      = ("+" | "-") unary | primary
//	primary    = "(" expression ")" | IDENTIFIER | "true" | "false" | NUMBER
type Parser struct {
	tokens []Token
	pos    int
	diags  *diagnostics.Bag
}

// NewParser drops trivia (whitespace, comments, invalid characters) from
// tokens and returns a Parser over the rest. The slice is terminated with an
// EOF token if it does not already end with one.
func NewParser(tokens []Token) *Parser {
	filtered := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type.IsTrivia() {
			continue
		}
		filtered = append(filtered, tok)
	}
	if len(filtered) == 0 || filtered[len(filtered)-1].Type != EOF {
		end := Token{Type: EOF, Line: 1}
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			end.Pos, end.Line = last.Pos+len([]rune(last.Lexeme)), last.Line
		}
		filtered = append(filtered, end)
	}
	return &Parser{tokens: filtered, diags: diagnostics.New()}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	return p.peekAt(0)
}

// peekAt returns the token at the given offset from the current position.
// Past the end it keeps returning the final EOF token.
func (p *Parser) peekAt(offset int) Token {
	if p.pos+offset >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+offset]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// match consumes the current token if it has type tt. Otherwise it reports
// the mismatch and returns a fabricated, empty token of type tt without
// consuming anything.
func (p *Parser) match(tt TokenType) Token {
	if p.peek().Type == tt {
		return p.advance()
	}
	cur := p.peek()
	p.diags.ReportUnexpectedToken(cur.Line, cur.Type.String(), tt.String())
	return Token{Type: tt, Pos: cur.Pos, Line: cur.Line}
}

// Parse consumes the whole token stream. A single statement becomes the root
// directly; zero or several are wrapped in a BlockStmt with no brace tokens.
func (p *Parser) Parse() *SyntaxTree {
	stmts := p.parseStatementsUntil(EOF)
	eof := p.match(EOF)

	var root Stmt
	if len(stmts) == 1 {
		root = stmts[0]
	} else {
		root = &BlockStmt{Stmts: stmts}
	}
	return &SyntaxTree{Root: root, Diagnostics: p.diags.Messages(), EOF: eof}
}

// parseStatementsUntil parses statements until the current token is end or
// EOF. A statement that consumed nothing has already been reported; its
// offending token is skipped so the loop always makes progress.
func (p *Parser) parseStatementsUntil(end TokenType) []Stmt {
	var stmts []Stmt
	for p.peek().Type != end && p.peek().Type != EOF {
		start := p.pos
		stmts = append(stmts, p.parseStatement())
		if p.pos == start {
			p.advance()
		}
	}
	return stmts
}

func (p *Parser) parseStatement() Stmt {
	switch p.peek().Type {
	case LBRACE:
		return p.parseBlock()
	case IF:
		return p.parseIf()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseBlock() Stmt {
	open := p.match(LBRACE)
	stmts := p.parseStatementsUntil(RBRACE)
	closing := p.match(RBRACE)
	return &BlockStmt{Open: open, Stmts: stmts, Close: closing}
}

func (p *Parser) parseIf() Stmt {
	ifTok := p.match(IF)
	open := p.match(LPAREN)
	cond := p.parseExpression()
	closing := p.match(RPAREN)
	body := p.parseStatement()

	stmt := &IfStmt{If: ifTok, Open: open, Condition: cond, Close: closing, Body: body}
	if p.peek().Type == ELSE {
		elseTok := p.advance()
		stmt.ElseBody = &ElseClause{Else: elseTok, Body: p.parseStatement()}
	}
	return stmt
}

func (p *Parser) parseExprStmt() Stmt {
	expr := p.parseExpression()
	if p.peek().Type == SEMICOLON {
		p.advance()
	}
	return &ExprStmt{Expr: expr}
}

// parseExpression is the entry point for expression parsing.
func (p *Parser) parseExpression() Expr {
	return p.parseAssignment()
}

// parseAssignment recognises IDENTIFIER "=" with one token of lookahead. The
// right-hand side is parsed as another assignment, so a = b = 1 is a = (b = 1).
func (p *Parser) parseAssignment() Expr {
	if p.peek().Type == IDENTIFIER && p.peekAt(1).Type == ASSIGN {
		name := p.advance()
		equals := p.advance()
		value := p.parseAssignment()
		return &AssignmentExpr{Name: name, Equals: equals, Value: value}
	}
	return p.parseBinary(0)
}

// parseBinary parses operators that bind tighter than parent. Operators of
// equal precedence are folded iteratively, which makes them left-associative:
// 1 - 2 - 3 is (1 - 2) - 3.
func (p *Parser) parseBinary(parent int) Expr {
	var left Expr
	if prec := UnaryPrecedence(p.peek().Type); prec != 0 && prec >= parent {
		op := p.advance()
		operand := p.parseBinary(prec)
		left = &UnaryExpr{Op: op, Operand: operand}
	} else {
		left = p.parsePrimary()
	}

	for {
		prec := BinaryPrecedence(p.peek().Type)
		if prec == 0 || prec <= parent {
			break
		}
		op := p.advance()
		right := p.parseBinary(prec)
		left = &BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left
}

// parsePrimary handles literals, variables, and parenthesised expressions.
// Anything else is expected to be a number; a mismatch is reported and a
// placeholder literal returned.
func (p *Parser) parsePrimary() Expr {
	switch p.peek().Type {
	case LPAREN:
		open := p.advance()
		expr := p.parseExpression()
		closing := p.match(RPAREN)
		return &ParenExpr{Open: open, Expr: expr, Close: closing}

	case IDENTIFIER:
		return &VariableExpr{Name: p.advance()}

	case TRUE, FALSE:
		return &LiteralExpr{Token: p.advance()}

	default:
		return &LiteralExpr{Token: p.match(NUMBER)}
	}
}
