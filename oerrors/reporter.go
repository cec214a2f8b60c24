/*
File   : oxa/oerrors/reporter.go
Package: oerrors
*/

package oerrors

import (
	"fmt"
	"io"

	"github.com/akashmaji946/oxa/token"
)

// Reporter writes Oxa's three diagnostic forms (line-scoped, token-scoped,
// and arithmetic) plus runtime-error reports. It is stateless beyond the writer it was built with, and
// is safe to share across a whole run.
type Reporter struct {
	out io.Writer
}

// NewReporter builds a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// LineError reports a diagnostic attributed to a line counter rather than a
// specific token, e.g. for scanner failures: "[line N Error: MSG]".
func (r *Reporter) LineError(line int, message string) {
	fmt.Fprintf(r.out, "[line %d Error: %s]\n", line, message)
}

// TokenError reports a diagnostic attributed to tok: "LINE at end MESSAGE"
// at Eof, otherwise "LINE at 'LEXEME' MESSAGE".
func (r *Reporter) TokenError(tok token.Token, message string) {
	if tok.Kind == token.Eof {
		fmt.Fprintf(r.out, "%d at end %s\n", tok.Line, message)
	} else {
		fmt.Fprintf(r.out, "%d at '%s' %s\n", tok.Line, tok.Lexeme, message)
	}
}

// ArithmeticError reports a failed arithmetic/comparison operation, where
// ops is the "L OP R" operand description.
func (r *Reporter) ArithmeticError(ops string) {
	fmt.Fprintf(r.out, "cannot perform arithmetic operation: %s\n", ops)
}

// RuntimeError reports err, which must carry Code RuntimeError.
func (r *Reporter) RuntimeError(err *Error) {
	fmt.Fprintf(r.out, "Runtime error: %s\n", err.Error())
}
