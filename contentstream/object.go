package contentstream

import (
	"strconv"
	"strings"
)

// Object represents a value scanned from a content stream. Only the value
// kinds that can reach the interpreter exist: numbers, strings, names, and
// arrays. Dictionaries are skipped as opaque spans and never become objects.
type Object interface {
	Type() ObjectType
	String() string
}

// ObjectType represents the kind of a scanned value
type ObjectType int

const (
	ObjInt ObjectType = iota
	ObjReal
	ObjString
	ObjName
	ObjArray
)

// String returns the string representation of the object type
func (t ObjectType) String() string {
	switch t {
	case ObjInt:
		return "Int"
	case ObjReal:
		return "Real"
	case ObjString:
		return "String"
	case ObjName:
		return "Name"
	case ObjArray:
		return "Array"
	default:
		return "Unknown"
	}
}

// Int represents an integer-valued number
type Int int64

func (i Int) Type() ObjectType { return ObjInt }
func (i Int) String() string   { return strconv.FormatInt(int64(i), 10) }

// Real represents a number with a fractional part
type Real float64

func (r Real) Type() ObjectType { return ObjReal }
func (r Real) String() string   { return strconv.FormatFloat(float64(r), 'f', -1, 64) }

// String represents decoded string text, from a literal string, a hex
// string, or a bare token that failed numeric parsing inside an array
type String string

func (s String) Type() ObjectType { return ObjString }
func (s String) String() string   { return string(s) }

// Name represents a name token. Slash names keep their leading '/', which
// also keeps them from ever matching a text-showing operator.
type Name string

func (n Name) Type() ObjectType { return ObjName }
func (n Name) String() string   { return string(n) }

// Array represents an ordered sequence of numbers, strings, and nested
// arrays. Names and dictionaries encountered inside an array are consumed
// but never stored.
type Array []Object

func (a Array) Type() ObjectType { return ObjArray }
func (a Array) String() string {
	parts := make([]string, len(a))
	for i, obj := range a {
		parts[i] = obj.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
