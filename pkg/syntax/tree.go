// Package syntax turns source text into an untyped syntax tree.
//
// Pipeline: source → Lex → NewParser (drops trivia) → Parse → SyntaxTree
package syntax

// SyntaxTree is the result of parsing one source text.
type SyntaxTree struct {
	Root        Stmt
	Diagnostics []string // lexical and syntactic problems, in report order
	EOF         Token
}

// Parse lexes and parses src. It always returns a tree; problems are listed
// in the tree's Diagnostics.
func Parse(src string) *SyntaxTree {
	return NewParser(Lex(src)).Parse()
}
