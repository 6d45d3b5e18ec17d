package cvar

import (
	"fmt"
	"strconv"
	"unsafe"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Var is one typed variable record: an optional name, a type tag, a payload
// and a marker telling a fixed keyword occurrence apart from a bound
// variable occurrence. The zero value is an unset record of type Err.
//
// Vars are value types owned by their vector; pointers to them are only
// valid until the next structural mutation of that vector.
type Var struct {
	name  string
	typ   Type
	val   cty.Value
	konst bool
}

// Name returns the record's name, or "" when unnamed.
func (cv *Var) Name() string { return cv.name }

// SetName names the record. Names are unique only by convention; nothing
// enforces uniqueness within a vector.
func (cv *Var) SetName(name string) { cv.name = name }

// Type returns the record's type tag.
func (cv *Var) Type() Type { return cv.typ }

// SetType retags the record without touching the payload.
func (cv *Var) SetType(t Type) { cv.typ = t }

// IsConst reports whether the record is a fixed keyword occurrence.
func (cv *Var) IsConst() bool { return cv.konst }

// SetConst marks the record as a keyword (true) or bound variable (false).
func (cv *Var) SetConst(konst bool) { cv.konst = konst }

// Value returns the raw payload. It is cty.NilVal while the record is unset.
func (cv *Var) Value() cty.Value { return cv.val }

// SetValue stores val, converting it to the representation the record's
// type requires. Conversion failure leaves the record unchanged.
func (cv *Var) SetValue(val cty.Value) error {
	want := cv.typ.CtyType()
	if want == cty.NilType {
		return fmt.Errorf("type %s holds no value", cv.typ)
	}
	got, err := convert.Convert(val, want)
	if err != nil {
		return fmt.Errorf("value for %s: %w", cv.typ, err)
	}
	cv.val = got
	return nil
}

// SetString stores a string payload. Fails when the record's type is not
// string-backed.
func (cv *Var) SetString(s string) error {
	if cv.typ.CtyType() != cty.String {
		return fmt.Errorf("type %s cannot hold a string", cv.typ)
	}
	cv.val = cty.StringVal(s)
	return nil
}

// StringVal returns the string payload, or "" when the record holds none.
func (cv *Var) StringVal() string {
	if cv.val == cty.NilVal || cv.val.IsNull() || cv.val.Type() != cty.String {
		return ""
	}
	return cv.val.AsString()
}

// SetInt64 stores an integer payload. Fails on non-numeric types.
func (cv *Var) SetInt64(i int64) error {
	if cv.typ.CtyType() != cty.Number {
		return fmt.Errorf("type %s cannot hold a number", cv.typ)
	}
	cv.val = cty.NumberIntVal(i)
	return nil
}

// Int64 returns the integer payload, or 0 when the record holds none.
func (cv *Var) Int64() int64 {
	if cv.val == cty.NilVal || cv.val.IsNull() || cv.val.Type() != cty.Number {
		return 0
	}
	i, _ := cv.val.AsBigFloat().Int64()
	return i
}

// SetBool stores a boolean payload. Fails on non-boolean types.
func (cv *Var) SetBool(b bool) error {
	if cv.typ.CtyType() != cty.Bool {
		return fmt.Errorf("type %s cannot hold a bool", cv.typ)
	}
	cv.val = cty.BoolVal(b)
	return nil
}

// BoolVal returns the boolean payload, or false when the record holds none.
func (cv *Var) BoolVal() bool {
	if cv.val == cty.NilVal || cv.val.IsNull() || cv.val.Type() != cty.Bool {
		return false
	}
	return cv.val.True()
}

// CopyFrom deep-copies src into cv. cty values are immutable, so sharing
// the payload is a true copy.
func (cv *Var) CopyFrom(src *Var) {
	cv.name = src.name
	cv.typ = src.typ
	cv.val = src.val
	cv.konst = src.konst
}

// Reset returns the record to the zero unset state.
func (cv *Var) Reset() { *cv = Var{} }

// ValueString renders the payload the way the serializer and vector pretty
// printers expect: numbers in decimal, bools as true/false, strings as-is.
// Unset and valueless records render as "".
func (cv *Var) ValueString() string {
	if cv.val == cty.NilVal || cv.val.IsNull() {
		return ""
	}
	switch cv.val.Type() {
	case cty.String:
		return cv.val.AsString()
	case cty.Number:
		if cv.typ.IsInt() {
			i, _ := cv.val.AsBigFloat().Int64()
			return strconv.FormatInt(i, 10)
		}
		return cv.val.AsBigFloat().Text('f', -1)
	case cty.Bool:
		return strconv.FormatBool(cv.val.True())
	}
	return ""
}

// Size returns the approximate number of bytes the record owns, for the
// vector's memory accounting.
func (cv *Var) Size() int {
	sz := int(unsafe.Sizeof(*cv))
	sz += len(cv.name)
	if cv.val != cty.NilVal && !cv.val.IsNull() && cv.val.Type() == cty.String {
		sz += len(cv.val.AsString())
	}
	return sz
}
