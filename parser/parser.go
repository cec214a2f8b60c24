/*
File   : oxa/parser/parser.go
Package: parser
*/

// Package parser implements Oxa's recursive-descent parser: a classic
// precedence ladder (declaration -> statement -> expression -> assignment ->
// equality -> comparison -> term -> factor -> unary -> primary), not a
// Pratt/precedence-climbing parser — spec.md §4.2 is explicit about this,
// unlike the teacher's function-table Pratt parser.
package parser

import (
	"strconv"

	"github.com/akashmaji946/oxa/ast"
	"github.com/akashmaji946/oxa/token"
)

// Parser turns a token stream into a list of statement trees. It collects
// diagnostics instead of stopping at the first error, recovering via
// synchronize so one bad statement does not hide later ones.
type Parser struct {
	tokens  []token.Token
	current int
	errors  []string
}

// New creates a Parser over tokens, as produced by lexer.Scan.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes tokens until Eof, returning every top-level statement
// parsed plus any diagnostics collected along the way.
func Parse(tokens []token.Token) ([]ast.Stmt, []string) {
	p := New(tokens)
	return p.Parse()
}

// Parse is the instance form of the package-level Parse function.
func (p *Parser) Parse() ([]ast.Stmt, []string) {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements, p.errors
}

// HasErrors reports whether parsing collected any diagnostics.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

// GetErrors returns every diagnostic collected during parsing.
func (p *Parser) GetErrors() []string { return p.errors }

// parseError unwinds a single statement's recursive-descent call stack back
// to declaration(), where synchronize() takes over. It carries no payload;
// the diagnostic is already recorded in p.errors at the point of failure.
type parseError struct{}

// declaration parses one of:
//
//	"let"   IDENT ("=" expression)? ";"
//	"const" IDENT ("=" expression)? ";"
//	statement
//
// On failure it synchronizes and returns nil so the caller simply skips this
// statement.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	if p.match(token.Let) {
		return p.varDeclaration(false)
	}
	if p.match(token.Const) {
		return p.varDeclaration(true)
	}
	return p.statement()
}

// varDeclaration parses the body of a let/const declaration after the
// keyword has been consumed. A missing initializer defaults to literal Nil,
// per spec.md §4.2.
func (p *Parser) varDeclaration(isConst bool) ast.Stmt {
	name := p.consume(token.Identifier, "Expect variable name.")

	var initializer ast.Expr = &ast.Literal{Value: token.NilLiteral}
	if p.match(token.Equal) {
		initializer = p.expression()
	}

	p.consume(token.Semicolon, "Expect ';' after expression.")

	if isConst {
		return &ast.Const{Name: name, Initializer: initializer}
	}
	return &ast.Let{Name: name, Initializer: initializer}
}

// statement parses:
//
//	"print" expression ";"
//	expression ";"
func (p *Parser) statement() ast.Stmt {
	if p.match(token.Print) {
		return p.printStatement()
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return &ast.Print{Expression: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return &ast.Expression{Expression: expr}
}

// expression -> assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment -> equality ( "=" assignment )?      ; right-associative
//
// After parsing the left-hand equality, if "=" follows, the right-hand
// assignment is parsed recursively and the left-hand side must be a
// Variable node, per spec.md's assignment-target rule. The left-hand side
// is not re-evaluated; its identifier token is reused. A non-Variable
// left-hand side reports "Invalid assignment target." and is returned
// unchanged.
func (p *Parser) assignment() ast.Expr {
	expr := p.equality()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: variable.Name, Value: value}
		}

		p.parseErrorAt(equals, "Invalid assignment target.")
		return expr
	}

	return expr
}

// equality -> comparison ( ("==") comparison )*
//
// This checks EqualEqual twice rather than EqualEqual then BangEqual,
// preserving a bug in the upstream source verbatim: BangEqual is never
// matched here. See SPEC_FULL.md §4 for why this is preserved rather than
// fixed.
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()

	for p.match(token.EqualEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	for p.match(token.EqualEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

// comparison -> term ( (">"|">="|"<"|"<=") term )*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()

	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		operator := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

// term -> factor ( ("+"|"-") factor )*
func (p *Parser) term() ast.Expr {
	expr := p.factor()

	for p.match(token.Plus, token.Minus) {
		operator := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

// factor -> unary ( ("*"|"/") unary )*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()

	for p.match(token.Star, token.Slash) {
		operator := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

// unary -> ("!"|"-") unary | primary
func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		operator := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: operator, Right: right}
	}
	return p.primary()
}

// primary -> NUMBER | STRING | "true" | "false" | "nil"
//
//	| IDENT | "(" expression ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: token.NewBoolLiteral(false)}
	case p.match(token.True):
		return &ast.Literal{Value: token.NewBoolLiteral(true)}
	case p.match(token.Nil):
		return &ast.Literal{Value: token.NilLiteral}
	case p.match(token.Number, token.String):
		tok := p.previous()
		if tok.Literal == nil {
			p.parseErrorAt(tok, "Expect literal value.")
			panic(parseError{})
		}
		return &ast.Literal{Value: *tok.Literal}
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Expression: expr}
	}

	p.parseErrorAt(p.peek(), "Expect expression.")
	panic(parseError{})
}

// synchronize implements spec.md §4.2's panic-mode recovery: advance one
// token, then repeatedly advance until the previously consumed token was a
// Semicolon or the current token starts a new statement.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}

		switch p.peek().Kind {
		case token.Class, token.Fun, token.Let, token.Const, token.For,
			token.If, token.While, token.Print, token.Return:
			return
		}

		p.advance()
	}
}

// --- token cursor helpers ---

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has kind, reporting a
// parser error and returning the current (unconsumed) token otherwise. The
// statement-terminator rule (spec.md §4.2) treats a missing ";" as
// non-fatal: callers of consume(Semicolon, ...) continue regardless.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.parseErrorAt(p.peek(), message)
	if kind == token.Semicolon {
		return p.peek()
	}
	panic(parseError{})
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool { return p.peek().Kind == token.Eof }

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

// parseErrorAt records a token-scoped diagnostic in the shape spec.md §4.2
// mandates: at Eof it reads "LINE at end MESSAGE", otherwise "LINE at
// 'LEXEME' MESSAGE".
func (p *Parser) parseErrorAt(tok token.Token, message string) {
	var where string
	if tok.Kind == token.Eof {
		where = "at end"
	} else {
		where = "at '" + tok.Lexeme + "'"
	}
	p.errors = append(p.errors, strconv.Itoa(tok.Line)+" "+where+" "+message)
}
