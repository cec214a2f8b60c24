/*
File   : oxa/oxa.go
Package: oxa
*/

// Package oxa wires the scanner, parser and interpreter into the handful of
// entry points cmd/oxa and repl call: running a whole source string and
// running one REPL line against a persisted environment.
package oxa

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/oxa/environment"
	"github.com/akashmaji946/oxa/interpreter"
	"github.com/akashmaji946/oxa/lexer"
	"github.com/akashmaji946/oxa/oerrors"
	"github.com/akashmaji946/oxa/parser"
)

// Run scans, parses and interprets source in one shot against a fresh
// environment, writing Print output to out and diagnostics to diagnostics.
// Every scanner and parser diagnostic is written to diagnostics. An
// unrecognized character or any parse error ends the run before
// interpretation; other scanner diagnostics, such as an unterminated string,
// do not. Once interpretation begins every statement runs: a runtime error is reported and execution
// continues with the next statement, per spec.md §4.5/§7. Run returns the
// first error encountered overall, already shaped as an *oerrors.Error so
// callers can feed it straight to oerrors.ExitCode.
func Run(source string, out, diagnostics io.Writer) error {
	env := environment.New()
	return RunWithEnvironment(source, env, out, diagnostics)
}

// RunWithEnvironment is Run against an existing Environment, so a REPL can
// thread variable bindings across lines.
func RunWithEnvironment(source string, env *environment.Environment, out, diagnostics io.Writer) error {
	lex := lexer.New(source)
	tokens, lexErrs := lex.Run()
	for _, msg := range lexErrs {
		fmt.Fprintln(diagnostics, msg)
	}
	if lex.HasInvalidCharacter() {
		return oerrors.NewInvalidTokenKey(lex.InvalidCharacter())
	}

	statements, parseErrs := parser.Parse(tokens)
	if len(parseErrs) > 0 {
		for _, msg := range parseErrs {
			fmt.Fprintln(diagnostics, msg)
		}
		return oerrors.NewParserError(tokens[0], parseErrs[0])
	}

	interp := interpreter.New(env, interpreter.WithOutput(out), interpreter.WithDiagnostics(diagnostics))
	return interp.Interpret(statements)
}

// RunFile reads path and runs it, mapping a failed read to FileError per
// spec.md's Open Question decision to keep file and stdin failures distinct
// error kinds.
func RunFile(path string, out, diagnostics io.Writer) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return oerrors.NewFileError(err)
	}
	return Run(string(source), out, diagnostics)
}
