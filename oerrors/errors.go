/*
File   : oxa/oerrors/errors.go
Package: oerrors
*/

// Package oerrors is Oxa's shared error taxonomy, reporter, and exit-code
// mapping. Grounded on the upstream Rust source's errors/mod.rs and
// errors/reporter.rs: the same six error kinds, the same return-code table,
// and the same three diagnostic message shapes.
package oerrors

import (
	"fmt"

	"github.com/akashmaji946/oxa/token"
)

// Code distinguishes the kind of failure that ended an Oxa invocation.
type Code int

const (
	// Unknown is the catch-all: "anything else non-zero" per spec.md §6.
	Unknown Code = iota
	FileError
	IO
	InvalidTokenKey
	ParserError
	RuntimeError
	ProcessError
)

// Error is the single error type Oxa's driver, parser and interpreter
// return. Only the fields relevant to Code are meaningful.
type Error struct {
	Code    Code
	Char    rune
	Token   token.Token
	Message string
	Cause   error
}

func (e *Error) Error() string {
	switch e.Code {
	case FileError:
		return fmt.Sprintf("file processing error: %v", e.Cause)
	case IO:
		return fmt.Sprintf("io error: %v", e.Cause)
	case InvalidTokenKey:
		return fmt.Sprintf("invalid token: %c", e.Char)
	case ParserError:
		return fmt.Sprintf("%s: %s", e.Message, e.Token)
	case RuntimeError:
		return fmt.Sprintf("%s %s \n [line %d]", e.Message, e.Token, e.Token.Line)
	case ProcessError:
		return "process error"
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewFileError wraps a failed source-file read.
func NewFileError(cause error) *Error { return &Error{Code: FileError, Cause: cause} }

// NewIOError wraps a failed stdin read.
func NewIOError(cause error) *Error { return &Error{Code: IO, Cause: cause} }

// NewInvalidTokenKey reports a scanner character the lexical grammar does
// not recognize.
func NewInvalidTokenKey(c rune) *Error { return &Error{Code: InvalidTokenKey, Char: c} }

// NewParserError reports a syntactic failure at or near tok.
func NewParserError(tok token.Token, message string) *Error {
	return &Error{Code: ParserError, Token: tok, Message: message}
}

// NewRuntimeError reports a semantic failure during evaluation of tok's
// surrounding expression or statement.
func NewRuntimeError(tok token.Token, message string) *Error {
	return &Error{Code: RuntimeError, Token: tok, Message: message}
}

// NewProcessError reports an unrecoverable internal condition.
func NewProcessError() *Error { return &Error{Code: ProcessError} }

// ExitCode implements the exact mapping from spec.md §6: 0 success, 2
// runtime error, 3 parser error, 4 invalid token char, 10 file error, 11 I/O
// error, 12 process error, 1 anything else non-zero.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var oe *Error
	if e, ok := err.(*Error); ok {
		oe = e
	} else {
		return 1
	}
	switch oe.Code {
	case InvalidTokenKey:
		return 4
	case FileError:
		return 10
	case IO:
		return 11
	case ProcessError:
		return 12
	case ParserError:
		return 3
	case RuntimeError:
		return 2
	default:
		return 1
	}
}
