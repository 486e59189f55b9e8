package charstream

import (
	"bytes"
	"fmt"
)

// Static strings handed to the engine for boolean values.
const (
	StringTrue  = "true"
	StringFalse = "false"
)

// Specifier identifies how a single value is rendered.
type Specifier uint8

const (
	SpecFloat Specifier = iota + 1
	SpecString
	SpecChar
	SpecUint
	SpecUintLong
	SpecInt
	SpecIntLong
)

var specifiers = []Specifier{SpecFloat, SpecString, SpecChar, SpecUint, SpecUintLong, SpecInt, SpecIntLong}

// Specifiers returns every specifier the dispatcher can produce.
func Specifiers() []Specifier {
	out := make([]Specifier, len(specifiers))
	copy(out, specifiers)
	return out
}

// String returns the specifier name.
func (s Specifier) String() string {
	switch s {
	case SpecFloat:
		return "float"
	case SpecString:
		return "string"
	case SpecChar:
		return "char"
	case SpecUint:
		return "uint"
	case SpecUintLong:
		return "long uint"
	case SpecInt:
		return "int"
	case SpecIntLong:
		return "long int"
	default:
		return fmt.Sprintf("Specifier(%d)", uint8(s))
	}
}

// Verb returns the fmt verb written after '%' in a synthesized format.
// Long variants share the decimal verb: fmt sizes integers from the
// operand's type.
func (s Specifier) Verb() string {
	switch s {
	case SpecFloat:
		return "f"
	case SpecString:
		return "s"
	case SpecChar:
		return "c"
	case SpecUint, SpecUintLong, SpecInt, SpecIntLong:
		return "d"
	default:
		return "v"
	}
}

// Long reports whether s is the widest-integer variant of its family.
func (s Specifier) Long() bool { return s == SpecUintLong || s == SpecIntLong }

// Char is a single character. It is distinct from rune and byte, which
// are integers and render as decimals.
type Char rune

// Text is a rendered span of bytes, typically a slot claimed from a [Ring].
// It renders with the string specifier without being copied.
type Text []byte

// String returns the text up to its first NUL byte.
func (t Text) String() string { return string(t.span()) }

// span is t up to its first NUL byte, without copying.
func (t Text) span() []byte {
	if i := bytes.IndexByte(t, 0); i >= 0 {
		return t[:i]
	}
	return t
}

// Primitive is the closed set of types accepted by [V]. The union uses
// exact types, so a named type such as Char never matches the int32 rule
// and any type outside the list fails to compile.
type Primitive interface {
	float32 | float64 | bool | Char |
		uint8 | uint16 | uint32 | uint | uint64 | uintptr |
		int8 | int16 | int32 | int | int64 |
		string | Text
}

// Arg is one classified value: its specifier and the value handed to the
// engine. Construct it with [V] or [Str].
type Arg struct {
	spec Specifier
	val  any
}

// V classifies a primitive value.
func V[T Primitive](v T) Arg {
	switch x := any(v).(type) {
	case float32, float64:
		return Arg{spec: SpecFloat, val: x}
	case bool:
		return Arg{spec: SpecString, val: x}
	case Char:
		return Arg{spec: SpecChar, val: x}
	case uint8, uint16, uint32:
		return Arg{spec: SpecUint, val: x}
	case uint, uint64, uintptr:
		return Arg{spec: SpecUintLong, val: x}
	case int8, int16, int32:
		return Arg{spec: SpecInt, val: x}
	case int, int64:
		return Arg{spec: SpecIntLong, val: x}
	case string, Text:
		return Arg{spec: SpecString, val: x}
	}
	// Unreachable: the Primitive union is exhausted above.
	panic(fmt.Sprintf("charstream: unclassified type %T", v))
}

// Str classifies a user value that knows how to render itself as a string.
func Str(s fmt.Stringer) Arg {
	return Arg{spec: SpecString, val: s}
}

// Spec returns the value's specifier.
func (a Arg) Spec() Specifier { return a.spec }

// Value returns the coerced value passed to the engine. Stringers are
// passed through so the engine calls String and handles nil receivers
// and panics itself.
func (a Arg) Value() any {
	switch x := a.val.(type) {
	case bool:
		if x {
			return StringTrue
		}
		return StringFalse
	case Char:
		return rune(x)
	case Text:
		return x.span()
	default:
		return x
	}
}

// IsSupported reports whether T is one of the [Primitive] types accepted
// by [V]. Types implementing fmt.Stringer go through [Str] instead.
func IsSupported[T any]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64, bool, Char,
		uint8, uint16, uint32, uint, uint64, uintptr,
		int8, int16, int32, int, int64,
		string, Text:
		return true
	default:
		return false
	}
}
