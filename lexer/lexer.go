/*
File   : oxa/lexer/lexer.go
Package: lexer
*/

// Package lexer turns Oxa source text into a flat token sequence. Scanning is
// pure: given source text it yields tokens and diagnostics, never mutating
// anything outside itself.
package lexer

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/oxa/token"
)

// Lexer scans a rune sequence into tokens. It operates on a codepoint
// sequence rather than raw bytes so multi-byte UTF-8 input scans correctly;
// start/current form the cursor pair spec.md describes, with line tracking
// for diagnostics.
type Lexer struct {
	src     []rune
	start   int
	current int
	line    int

	tokens      []token.Token
	diagnostics []string
	invalid     bool
	invalidChar rune
}

// New creates a Lexer over source. Call Scan to run it to completion.
func New(source string) *Lexer {
	return &Lexer{
		src:  []rune(source),
		line: 1,
	}
}

// Scan tokenizes source, returning every emitted token (terminated by a
// synthetic Eof token) plus any diagnostics collected along the way.
// Scanning always terminates. An unrecognized character is recorded as a
// diagnostic and, per spec.md §7, short-circuits the remainder of the batch:
// Scan stops emitting further tokens but still appends the closing Eof.
func Scan(source string) ([]token.Token, []string) {
	lex := New(source)
	return lex.Run()
}

// Run scans the Lexer's source to completion, returning its tokens and
// diagnostics. Use it instead of the package-level Scan when the caller also
// needs HasInvalidCharacter afterward.
func (l *Lexer) Run() ([]token.Token, []string) {
	for !l.isAtEnd() && !l.invalid {
		l.start = l.current
		l.scanToken()
	}
	l.tokens = append(l.tokens, token.New(token.Eof, "", l.line))
	return l.tokens, l.diagnostics
}

// HasInvalidCharacter reports whether scanning stopped early because of an
// unrecognized character.
func (l *Lexer) HasInvalidCharacter() bool { return l.invalid }

// InvalidCharacter returns the unrecognized character that stopped scanning,
// or the zero rune if HasInvalidCharacter is false.
func (l *Lexer) InvalidCharacter() rune { return l.invalidChar }

func (l *Lexer) scanToken() {
	c := l.advance()

	switch {
	case c == '!':
		l.addSingleOrDouble('=', token.Bang, token.BangEqual)
	case c == '=':
		l.addSingleOrDouble('=', token.Equal, token.EqualEqual)
	case c == '<':
		l.addSingleOrDouble('=', token.Less, token.LessEqual)
	case c == '>':
		l.addSingleOrDouble('=', token.Greater, token.GreaterEqual)
	case c == '/':
		if l.peek() == '/' {
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else {
			l.addToken(token.Slash)
		}
	case isAlpha(c):
		l.identifier()
	case isDigit(c):
		l.number()
	case c == '"' || c == '\'':
		l.string(c)
	case strings.ContainsRune("(){},.-+*;", c):
		l.addToken(singleCharKind(c))
	case c == ' ' || c == '\t' || c == '\r':
		// ignored
	case c == '\n':
		l.line++
	default:
		l.diagnostics = append(l.diagnostics, l.lineError("Unexpected character."))
		l.invalid = true
		l.invalidChar = c
	}
}

func singleCharKind(c rune) token.Kind {
	switch c {
	case '(':
		return token.LeftParen
	case ')':
		return token.RightParen
	case '{':
		return token.LeftBrace
	case '}':
		return token.RightBrace
	case ',':
		return token.Comma
	case '.':
		return token.Dot
	case '-':
		return token.Minus
	case '+':
		return token.Plus
	case '*':
		return token.Star
	case ';':
		return token.Semicolon
	default:
		return token.Eof
	}
}

// addSingleOrDouble checks the next character for expected; if it matches,
// the compound kind is emitted and the character consumed, else the single
// kind is emitted.
func (l *Lexer) addSingleOrDouble(expected rune, single, double token.Kind) {
	if l.match(expected) {
		l.addToken(double)
	} else {
		l.addToken(single)
	}
}

func (l *Lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	text := string(l.src[l.start:l.current])
	l.addToken(token.LookupIdentifier(text))
}

func (l *Lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	isFloat := false
	if l.peek() == '.' && isDigit(l.peekNext()) {
		isFloat = true
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	text := string(l.src[l.start:l.current])
	if isFloat {
		f, _ := strconv.ParseFloat(text, 32)
		l.addLiteralToken(token.Number, token.NewFloatLiteral(float32(f)))
	} else {
		n, _ := strconv.ParseInt(text, 10, 32)
		l.addLiteralToken(token.Number, token.NewNumberLiteral(int32(n)))
	}
}

func (l *Lexer) string(quote rune) {
	for l.peek() != quote && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.diagnostics = append(l.diagnostics, l.lineError("Unterminated string."))
		return
	}

	content := string(l.src[l.start+1 : l.current])
	l.advance() // closing quote
	l.addLiteralToken(token.String, token.NewStringLiteral(content))
}

func (l *Lexer) addToken(kind token.Kind) {
	lexeme := string(l.src[l.start:l.current])
	l.tokens = append(l.tokens, token.New(kind, lexeme, l.line))
}

func (l *Lexer) addLiteralToken(kind token.Kind, literal token.Literal) {
	lexeme := string(l.src[l.start:l.current])
	l.tokens = append(l.tokens, token.NewWithLiteral(kind, lexeme, literal, l.line))
}

func (l *Lexer) lineError(message string) string {
	return "[line " + strconv.Itoa(l.line) + " Error: " + message + "]"
}

func (l *Lexer) isAtEnd() bool { return l.current >= len(l.src) }

func (l *Lexer) advance() rune {
	c := l.src[l.current]
	l.current++
	return c
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.current]
}

func (l *Lexer) peekNext() rune {
	if l.current+1 >= len(l.src) {
		return 0
	}
	return l.src[l.current+1]
}

func (l *Lexer) match(expected rune) bool {
	if l.isAtEnd() || l.src[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isAlpha(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c rune) bool { return isAlpha(c) || isDigit(c) }
