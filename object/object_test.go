package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObject_DisplayForm(t *testing.T) {
	tests := []struct {
		Object   Object
		Expected string
	}{
		{FromNumber(42), "42"},
		{FromFloat(3.5), "3.5"},
		{FromString("hello"), "hello"},
		{FromBool(true), "true"},
		{NilObject, "Nil"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.Expected, tt.Object.String())
	}
}

func TestObject_Truthiness(t *testing.T) {
	tests := []struct {
		Object  Object
		Truthy  bool
	}{
		{NilObject, false},
		{FromBool(false), false},
		{FromBool(true), true},
		{FromNumber(0), true},
		{FromString(""), true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.Truthy, tt.Object.IsTruthy())
	}
}

func TestObject_Equal(t *testing.T) {
	assert.True(t, NilObject.Equal(NilObject))
	assert.True(t, FromNumber(1).Equal(FromNumber(1)))
	assert.False(t, FromNumber(1).Equal(FromFloat(1)))
	assert.False(t, FromString("a").Equal(FromNumber(0)))
	assert.True(t, FromString("a").Equal(FromString("a")))
}

func TestAdd_SameTypeArithmetic(t *testing.T) {
	result := Add(FromNumber(10), FromNumber(5))
	assert.Empty(t, result.Diagnostic)
	assert.Equal(t, FromNumber(15), result.Value)
}

func TestAdd_PromotesNumberToFloat(t *testing.T) {
	result := Add(FromNumber(10), FromFloat(0.5))
	assert.Empty(t, result.Diagnostic)
	assert.Equal(t, Float, result.Value.Kind)
	assert.InDelta(t, 10.5, result.Value.FloatVal, 0.0001)
}

func TestAdd_ConcatenatesStringWithOtherTypes(t *testing.T) {
	result := Add(FromString("x = "), FromNumber(10))
	assert.Empty(t, result.Diagnostic)
	assert.Equal(t, FromString("x = 10"), result.Value)

	result = Add(FromNumber(10), FromString(" apples"))
	assert.Empty(t, result.Diagnostic)
	assert.Equal(t, FromString("10 apples"), result.Value)
}

func TestAdd_ReturnsNilForUnsupportedOperation(t *testing.T) {
	result := Add(FromBool(true), FromNumber(1))
	assert.NotEmpty(t, result.Diagnostic)
	assert.Equal(t, NilObject, result.Value)
}

func TestDiv_IntegerDivisionTruncates(t *testing.T) {
	result := Div(FromNumber(10), FromNumber(3))
	assert.Empty(t, result.Diagnostic)
	assert.Equal(t, FromNumber(3), result.Value)
}

func TestDiv_ByZeroReportsRatherThanTraps(t *testing.T) {
	result := Div(FromNumber(1), FromNumber(0))
	assert.NotEmpty(t, result.Diagnostic)
	assert.Equal(t, NilObject, result.Value)
}

func TestCompare_NumericOnly(t *testing.T) {
	less, diag := Compare(FromNumber(1), "<", FromNumber(2))
	assert.True(t, less)
	assert.Empty(t, diag)

	_, diag = Compare(FromString("a"), "<", FromNumber(2))
	assert.NotEmpty(t, diag)
}
