/*
File   : oxa/interpreter/interpreter.go
Package: interpreter
*/

// Package interpreter walks Oxa's AST and produces side effects and values,
// dispatching on the ast.Expr/ast.Stmt concrete types through a single type
// switch rather than the visitor double-dispatch the original source used
// (spec.md §9's Design Notes directive).
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/oxa/ast"
	"github.com/akashmaji946/oxa/environment"
	"github.com/akashmaji946/oxa/oerrors"
	"github.com/akashmaji946/oxa/object"
	"github.com/akashmaji946/oxa/token"
)

// Interpreter executes a program against a single flat environment.
type Interpreter struct {
	env               *environment.Environment
	out               io.Writer
	diagnostics       io.Writer
	evaluateLeftFirst bool
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// EvaluateLeftFirst switches binary-expression evaluation to left-then-right.
// Left-omitted, the default matches the upstream Rust source's
// right-before-left order (see SPEC_FULL.md §6.3).
func EvaluateLeftFirst() Option {
	return func(i *Interpreter) { i.evaluateLeftFirst = true }
}

// WithOutput directs Print statements to out instead of os.Stdout.
func WithOutput(out io.Writer) Option {
	return func(i *Interpreter) { i.out = out }
}

// WithDiagnostics directs runtime-error reports to diagnostics instead of
// os.Stderr.
func WithDiagnostics(diagnostics io.Writer) Option {
	return func(i *Interpreter) { i.diagnostics = diagnostics }
}

// New builds an Interpreter over env, applying opts in order.
func New(env *environment.Environment, opts ...Option) *Interpreter {
	i := &Interpreter{env: env, out: os.Stdout, diagnostics: os.Stderr}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Interpret executes every statement in order. A runtime error in one
// statement is reported and the next statement still runs — spec.md §4.5's
// state machine has no ABORT transition for runtime errors. Interpret
// returns the first runtime error seen (nil if none), once the whole
// program has run, so the driver can still choose an exit code per spec.md
// §7's propagation policy.
func (i *Interpreter) Interpret(statements []ast.Stmt) error {
	reporter := oerrors.NewReporter(i.diagnostics)

	var firstErr error
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			if oe, ok := err.(*oerrors.Error); ok {
				reporter.RuntimeError(oe)
			}
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// execute runs a single statement.
func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := i.evaluate(s.Expression)
		return err

	case *ast.Print:
		value, err := i.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, value.String())
		return nil

	case *ast.Let:
		value, err := i.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		i.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.Const:
		value, err := i.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		i.env.Define(s.Name.Lexeme, value)
		return nil

	default:
		return oerrors.NewProcessError()
	}
}

// evaluate computes the value of a single expression.
func (i *Interpreter) evaluate(expr ast.Expr) (object.Object, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return object.FromLiteral(e.Value), nil

	case *ast.Grouping:
		return i.evaluate(e.Expression)

	case *ast.Variable:
		cell, ok := i.env.Get(e.Name.Lexeme)
		if !ok {
			return object.NilObject, oerrors.NewRuntimeError(e.Name, "Undefined variable '"+e.Name.Lexeme+"'.")
		}
		return *cell, nil

	case *ast.Assign:
		value, err := i.evaluate(e.Value)
		if err != nil {
			return object.NilObject, err
		}
		if _, ok := i.env.Assign(e.Name.Lexeme, value); !ok {
			return object.NilObject, oerrors.NewRuntimeError(e.Name, "Undefined variable '"+e.Name.Lexeme+"'.")
		}
		return value, nil

	case *ast.Unary:
		return i.evaluateUnary(e)

	case *ast.Binary:
		return i.evaluateBinary(e)

	default:
		return object.NilObject, oerrors.NewProcessError()
	}
}

func (i *Interpreter) evaluateUnary(e *ast.Unary) (object.Object, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return object.NilObject, err
	}

	switch e.Operator.Kind {
	case token.Bang:
		return object.FromBool(!right.IsTruthy()), nil
	case token.Minus:
		if !right.IsNumeric() {
			return object.NilObject, oerrors.NewRuntimeError(e.Operator, "Operand must be a number: "+right.String())
		}
		// Unary minus always promotes to Float, matching the upstream Rust
		// source's `-n as f32` cast regardless of the operand's original kind.
		if right.Kind == object.Number {
			return object.FromFloat(-float32(right.NumberVal)), nil
		}
		return object.FromFloat(-right.FloatVal), nil
	default:
		return object.NilObject, oerrors.NewRuntimeError(e.Operator, "Unknown unary operator.")
	}
}

// evaluateBinary evaluates the right operand before the left, preserving
// the upstream Rust source's order exactly (see SPEC_FULL.md §4) unless the
// Interpreter was built with EvaluateLeftFirst.
func (i *Interpreter) evaluateBinary(e *ast.Binary) (object.Object, error) {
	var left, right object.Object
	var err error

	if i.evaluateLeftFirst {
		if left, err = i.evaluate(e.Left); err != nil {
			return object.NilObject, err
		}
		if right, err = i.evaluate(e.Right); err != nil {
			return object.NilObject, err
		}
	} else {
		if right, err = i.evaluate(e.Right); err != nil {
			return object.NilObject, err
		}
		if left, err = i.evaluate(e.Left); err != nil {
			return object.NilObject, err
		}
	}

	switch e.Operator.Kind {
	case token.Plus:
		return i.arith(e.Operator, object.Add(left, right))
	case token.Minus:
		return i.arith(e.Operator, object.Sub(left, right))
	case token.Star:
		return i.arith(e.Operator, object.Mul(left, right))
	case token.Slash:
		return i.arith(e.Operator, object.Div(left, right))

	case token.Greater:
		return i.compare(e.Operator, left, ">", right)
	case token.GreaterEqual:
		return i.compare(e.Operator, left, ">=", right)
	case token.Less:
		return i.compare(e.Operator, left, "<", right)
	case token.LessEqual:
		return i.compare(e.Operator, left, "<=", right)

	case token.EqualEqual:
		return object.FromBool(left.Equal(right)), nil
	case token.BangEqual:
		return object.FromBool(!left.Equal(right)), nil

	default:
		return object.NilObject, oerrors.NewRuntimeError(e.Operator, "Unknown binary operator.")
	}
}

func (i *Interpreter) arith(op token.Token, result object.ArithResult) (object.Object, error) {
	if result.Diagnostic != "" {
		return object.NilObject, oerrors.NewRuntimeError(op, "cannot perform arithmetic operation: "+result.Diagnostic)
	}
	return result.Value, nil
}

func (i *Interpreter) compare(op token.Token, left object.Object, operator string, right object.Object) (object.Object, error) {
	value, diagnostic := object.Compare(left, operator, right)
	if diagnostic != "" {
		return object.FromBool(false), oerrors.NewRuntimeError(op, "cannot perform arithmetic operation: "+diagnostic)
	}
	return object.FromBool(value), nil
}
