/*
File   : oxa/ast/expr.go
Package: ast
*/

// Package ast defines Oxa's expression and statement trees as tagged
// variants, plus their String() display forms. This replaces the
// three-parameter-generic Visitor pattern the original source used: each
// node is a plain struct, and callers type-switch on the Expr/Stmt
// interface rather than double-dispatching through an Accept method.
package ast

import (
	"fmt"

	"github.com/akashmaji946/oxa/token"
)

// Expr is implemented by every expression node variant: Assign, Binary,
// Grouping, Literal, Unary, Variable. It carries no behaviour beyond marking
// membership and display; evaluation lives in the interpreter package as a
// single type switch over these concrete types.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// Assign is `name = value`. The interpreter looks up name.Lexeme in the
// environment and overwrites its cell with value's evaluation.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (*Assign) exprNode() {}
func (e *Assign) String() string {
	return fmt.Sprintf("(= %s %s)", e.Name.Lexeme, e.Value)
}

// Binary is `left operator right`.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (*Binary) exprNode() {}
func (e *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Operator.Lexeme, e.Left, e.Right)
}

// Grouping is a parenthesized expression, `( expression )`.
type Grouping struct {
	Expression Expr
}

func (*Grouping) exprNode() {}
func (e *Grouping) String() string {
	return fmt.Sprintf("(group %s)", e.Expression)
}

// Literal wraps a scanned token.Literal value directly in the tree.
type Literal struct {
	Value token.Literal
}

func (*Literal) exprNode() {}
func (e *Literal) String() string {
	return e.Value.String()
}

// Unary is `operator right`, i.e. `-right` or `!right`.
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (*Unary) exprNode() {}
func (e *Unary) String() string {
	return fmt.Sprintf("(%s %s)", e.Operator.Lexeme, e.Right)
}

// Variable is a bare identifier reference, looked up by name in the
// environment at evaluation time.
type Variable struct {
	Name token.Token
}

func (*Variable) exprNode() {}
func (e *Variable) String() string { return e.Name.Lexeme }
