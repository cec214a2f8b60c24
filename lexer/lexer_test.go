package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/oxa/token"
)

// represents a test case for Scan
// Input: source code
// ExpectedKinds: list of expected token kinds, excluding the trailing Eof
type scanCase struct {
	Input         string
	ExpectedKinds []token.Kind
}

func TestScan_Punctuation(t *testing.T) {
	tests := []scanCase{
		{
			Input: `(){},.-+*;`,
			ExpectedKinds: []token.Kind{
				token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
				token.Comma, token.Dot, token.Minus, token.Plus, token.Star, token.Semicolon,
			},
		},
		{
			Input: `! != = == < <= > >=`,
			ExpectedKinds: []token.Kind{
				token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
				token.Less, token.LessEqual, token.Greater, token.GreaterEqual,
			},
		},
	}

	for _, tt := range tests {
		tokens, diagnostics := Scan(tt.Input)
		assert.Empty(t, diagnostics)
		assert.Equal(t, len(tt.ExpectedKinds)+1, len(tokens))
		for i, kind := range tt.ExpectedKinds {
			assert.Equal(t, kind, tokens[i].Kind)
		}
		assert.Equal(t, token.Eof, tokens[len(tokens)-1].Kind)
	}
}

func TestScan_KeywordsAndIdentifiers(t *testing.T) {
	tests := []scanCase{
		{
			Input: `let const var for while if else true false nil print return`,
			ExpectedKinds: []token.Kind{
				token.Let, token.Const, token.Identifier, token.For, token.While,
				token.If, token.Else, token.True, token.False, token.Nil,
				token.Print, token.Return,
			},
		},
		{
			Input:         `foo bar_baz _leading camelCase123`,
			ExpectedKinds: []token.Kind{token.Identifier, token.Identifier, token.Identifier, token.Identifier},
		},
	}

	for _, tt := range tests {
		tokens, diagnostics := Scan(tt.Input)
		assert.Empty(t, diagnostics)
		assert.Equal(t, len(tt.ExpectedKinds)+1, len(tokens))
		for i, kind := range tt.ExpectedKinds {
			assert.Equal(t, kind, tokens[i].Kind)
		}
	}
}

func TestScan_NumberLiterals(t *testing.T) {
	tokens, diagnostics := Scan(`1 2.5 100`)
	assert.Empty(t, diagnostics)
	assert.Len(t, tokens, 4)

	assert.Equal(t, token.Number, tokens[0].Kind)
	assert.Equal(t, token.LiteralNumber, tokens[0].Literal.Kind)
	assert.Equal(t, int32(1), tokens[0].Literal.Number)

	assert.Equal(t, token.Number, tokens[1].Kind)
	assert.Equal(t, token.LiteralFloat, tokens[1].Literal.Kind)
	assert.InDelta(t, float32(2.5), tokens[1].Literal.Float, 0.0001)

	assert.Equal(t, token.Number, tokens[2].Kind)
	assert.Equal(t, token.LiteralNumber, tokens[2].Literal.Kind)
	assert.Equal(t, int32(100), tokens[2].Literal.Number)
}

func TestScan_StringLiterals(t *testing.T) {
	tokens, diagnostics := Scan(`"hello" 'world'`)
	assert.Empty(t, diagnostics)
	assert.Len(t, tokens, 3)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "hello", tokens[0].Literal.Str)
	assert.Equal(t, token.String, tokens[1].Kind)
	assert.Equal(t, "world", tokens[1].Literal.Str)
}

func TestScan_UnterminatedString(t *testing.T) {
	tokens, diagnostics := Scan(`"abc`)
	assert.Len(t, diagnostics, 1)
	assert.Contains(t, diagnostics[0], "Unterminated string.")
	// no token is emitted for the unterminated string, just the trailing Eof
	assert.Len(t, tokens, 1)
	assert.Equal(t, token.Eof, tokens[0].Kind)
}

func TestScan_LineComment(t *testing.T) {
	tokens, diagnostics := Scan("1 + 2 // this is a comment\n+ 3")
	assert.Empty(t, diagnostics)
	var kinds []token.Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.Number, token.Plus, token.Number, token.Plus, token.Number, token.Eof,
	}, kinds)
}

func TestScan_LineNumbersAdvanceOnNewline(t *testing.T) {
	tokens, diagnostics := Scan("1\n2\n\n3")
	assert.Empty(t, diagnostics)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 4, tokens[2].Line)
	assert.Equal(t, 4, tokens[3].Line) // Eof carries the final line
}

func TestScan_UnknownCharacterShortCircuits(t *testing.T) {
	tokens, diagnostics := Scan("1 + @ + 2")
	assert.Len(t, diagnostics, 1)
	assert.Contains(t, diagnostics[0], "Unexpected character.")
	// scanning stops at the bad character; only tokens before it are kept,
	// plus the closing Eof
	var kinds []token.Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{token.Number, token.Plus, token.Eof}, kinds)
}

func TestScan_EmptyInputYieldsOnlyEof(t *testing.T) {
	tokens, diagnostics := Scan("")
	assert.Empty(t, diagnostics)
	assert.Len(t, tokens, 1)
	assert.Equal(t, token.Eof, tokens[0].Kind)
}
