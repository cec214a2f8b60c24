/*
File   : oxa/ast/stmt.go
Package: ast
*/

package ast

import (
	"fmt"

	"github.com/akashmaji946/oxa/token"
)

// Stmt is implemented by every statement node variant: Expression, Print,
// Let, Const. Statements are consumed in order by the interpreter; each owns
// its expression(s).
type Stmt interface {
	fmt.Stringer
	stmtNode()
}

// Expression is a bare expression statement, `expression ;`.
type Expression struct {
	Expression Expr
}

func (*Expression) stmtNode() {}
func (s *Expression) String() string { return fmt.Sprintf("%s;", s.Expression) }

// Print is `print expression ;`.
type Print struct {
	Expression Expr
}

func (*Print) stmtNode() {}
func (s *Print) String() string { return fmt.Sprintf("(print %s);", s.Expression) }

// Let is `let name (= initializer)? ;`. A missing initializer is represented
// by Initializer being a Literal wrapping token.NilLiteral, per spec.md §4.2's
// missing-initializer rule.
type Let struct {
	Name        token.Token
	Initializer Expr
}

func (*Let) stmtNode() {}
func (s *Let) String() string { return fmt.Sprintf("(let %s %s);", s.Name.Lexeme, s.Initializer) }

// Const is `const name (= initializer)? ;`. It is evaluated identically to
// Let; true immutability enforcement is a future non-goal (spec.md §9).
type Const struct {
	Name        token.Token
	Initializer Expr
}

func (*Const) stmtNode() {}
func (s *Const) String() string { return fmt.Sprintf("(const %s %s);", s.Name.Lexeme, s.Initializer) }
