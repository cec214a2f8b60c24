/*
File   : oxa/object/object.go
Package: object
*/

// Package object implements Oxa's runtime value model: a tagged value
// {Kind, ...} rather than an interface hierarchy, per spec.md §3. Arithmetic,
// comparison, and display all dispatch on Kind.
package object

import (
	"strconv"

	"github.com/akashmaji946/oxa/token"
)

// Kind tags the variant held by an Object.
type Kind int

const (
	Nil Kind = iota
	Number
	Float
	String
	Bool
)

// Object is a runtime value: kind and value are always consistent — only the
// field(s) matching Kind are meaningful. The zero Object is Nil, matching
// spec.md §3's "Default is Nil".
type Object struct {
	Kind      Kind
	NumberVal int32
	FloatVal  float32
	StringVal string
	BoolVal   bool
}

// NilObject is the single Nil-kinded value.
var NilObject = Object{Kind: Nil}

// FromLiteral builds the Object corresponding to a scanned/parsed
// token.Literal: Number, Float, String, Bool and Nil map to the
// identically-named Object kinds.
func FromLiteral(lit token.Literal) Object {
	switch lit.Kind {
	case token.LiteralNumber:
		return Object{Kind: Number, NumberVal: lit.Number}
	case token.LiteralFloat:
		return Object{Kind: Float, FloatVal: lit.Float}
	case token.LiteralString:
		return Object{Kind: String, StringVal: lit.Str}
	case token.LiteralBool:
		return Object{Kind: Bool, BoolVal: lit.Bool}
	default:
		return NilObject
	}
}

// FromNumber, FromFloat, FromString and FromBool construct Objects of the
// matching kind directly, for values produced inside the interpreter rather
// than scanned from source.
func FromNumber(n int32) Object  { return Object{Kind: Number, NumberVal: n} }
func FromFloat(f float32) Object { return Object{Kind: Float, FloatVal: f} }
func FromString(s string) Object { return Object{Kind: String, StringVal: s} }
func FromBool(b bool) Object     { return Object{Kind: Bool, BoolVal: b} }

// String renders the object's natural display form: numbers, floats,
// strings and booleans render naturally, Nil renders as "Nil".
func (o Object) String() string {
	switch o.Kind {
	case Number:
		return strconv.FormatInt(int64(o.NumberVal), 10)
	case Float:
		return strconv.FormatFloat(float64(o.FloatVal), 'g', -1, 32)
	case String:
		return o.StringVal
	case Bool:
		return strconv.FormatBool(o.BoolVal)
	default:
		return "Nil"
	}
}

// IsTruthy implements Oxa's truthiness rule: only Nil and Bool(false) are
// falsy; everything else, including Number(0) and the empty string, is
// truthy.
func (o Object) IsTruthy() bool {
	switch o.Kind {
	case Nil:
		return false
	case Bool:
		return o.BoolVal
	default:
		return true
	}
}

// Equal implements Oxa's `==`/`!=` semantics: equal only if kind and value
// match exactly; Nil == Nil is true.
func (o Object) Equal(other Object) bool {
	if o.Kind != other.Kind {
		return false
	}
	switch o.Kind {
	case Number:
		return o.NumberVal == other.NumberVal
	case Float:
		return o.FloatVal == other.FloatVal
	case String:
		return o.StringVal == other.StringVal
	case Bool:
		return o.BoolVal == other.BoolVal
	default:
		return true // Nil == Nil
	}
}

// IsNumeric reports whether o is Number or Float.
func (o Object) IsNumeric() bool { return o.Kind == Number || o.Kind == Float }

func (o Object) asFloat() float32 {
	if o.Kind == Number {
		return float32(o.NumberVal)
	}
	return o.FloatVal
}

// ArithResult is the outcome of an arithmetic operator (Add, Sub, Mul, Div):
// either a value, or a non-fatal diagnostic of the form "L OP R" with Nil
// substituted for the result, per spec.md §4.3.
type ArithResult struct {
	Value      Object
	Diagnostic string // empty if the operation succeeded
}

func ok(v Object) ArithResult { return ArithResult{Value: v} }

func arithError(left Object, op string, right Object) ArithResult {
	return ArithResult{
		Value:      NilObject,
		Diagnostic: left.String() + " " + op + " " + right.String(),
	}
}

// Add implements binary `+` per the promotion table in spec.md §4.3: same-kind
// numeric arithmetic, Number/Float promotion to Float, and string
// concatenation when one side is a String and the other is a Number, Float
// or String (the non-string side coerced to text). A String paired with a
// Bool or Nil is an arithmetic error.
func Add(left, right Object) ArithResult {
	switch left.Kind {
	case Number:
		switch right.Kind {
		case Number:
			return ok(FromNumber(left.NumberVal + right.NumberVal))
		case Float:
			return ok(FromFloat(left.asFloat() + right.FloatVal))
		case String:
			return ok(FromString(left.String() + right.StringVal))
		default:
			return arithError(left, "+", right)
		}
	case Float:
		switch right.Kind {
		case Number:
			return ok(FromFloat(left.FloatVal + right.asFloat()))
		case Float:
			return ok(FromFloat(left.FloatVal + right.FloatVal))
		case String:
			return ok(FromString(left.String() + right.StringVal))
		default:
			return arithError(left, "+", right)
		}
	case String:
		switch right.Kind {
		case Number, Float, String:
			return ok(FromString(left.StringVal + right.String()))
		default:
			return arithError(left, "+", right)
		}
	default:
		return arithError(left, "+", right)
	}
}

// Sub implements binary `-`: numeric only, same promotion rule as Add.
func Sub(left, right Object) ArithResult {
	return numericOp(left, right, "-",
		func(l, r int32) int32 { return l - r },
		func(l, r float32) float32 { return l - r },
	)
}

// Mul implements binary `*`: numeric only, same promotion rule as Add.
func Mul(left, right Object) ArithResult {
	return numericOp(left, right, "*",
		func(l, r int32) int32 { return l * r },
		func(l, r float32) float32 { return l * r },
	)
}

// Div implements binary `/`: numeric only. Number/Number uses truncating
// integer division; division by zero is reported as an arithmetic
// diagnostic rather than trapping (see SPEC_FULL.md §4 on this choice).
func Div(left, right Object) ArithResult {
	if left.Kind == Number && right.Kind == Number {
		if right.NumberVal == 0 {
			return ArithResult{
				Value:      NilObject,
				Diagnostic: "division by zero: " + left.String() + " / " + right.String(),
			}
		}
		return ok(FromNumber(left.NumberVal / right.NumberVal))
	}
	return numericOp(left, right, "/",
		nil,
		func(l, r float32) float32 { return l / r },
	)
}

func numericOp(left, right Object, op string, intOp func(int32, int32) int32, floatOp func(float32, float32) float32) ArithResult {
	if !left.IsNumeric() || !right.IsNumeric() {
		return arithError(left, op, right)
	}
	if left.Kind == Number && right.Kind == Number && intOp != nil {
		return ok(FromNumber(intOp(left.NumberVal, right.NumberVal)))
	}
	return ok(FromFloat(floatOp(left.asFloat(), right.asFloat())))
}

// Compare implements `<`, `<=`, `>`, `>=`: numeric only (with the
// non-matching side promoted to Float); a non-numeric operand yields false
// plus an arithmetic diagnostic.
func Compare(left Object, op string, right Object) (bool, string) {
	if !left.IsNumeric() || !right.IsNumeric() {
		return false, left.String() + " " + op + " " + right.String()
	}
	l, r := left.asFloat(), right.asFloat()
	switch op {
	case "<":
		return l < r, ""
	case "<=":
		return l <= r, ""
	case ">":
		return l > r, ""
	case ">=":
		return l >= r, ""
	default:
		return false, ""
	}
}
