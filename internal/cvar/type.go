package cvar

import "github.com/zclconf/go-cty/cty"

// Type is the closed set of variable kinds a record can carry. The zero
// value is Err, the unset type every freshly allocated record starts with.
type Type int

const (
	// Err marks an unset record.
	Err Type = iota
	Int8
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	// Dec64 is a 64-bit decimal number with a fixed fraction.
	Dec64
	Bool
	// Rest is a string running to the end of the command line.
	Rest
	String
	Interface
	IPv4Addr
	IPv4Pfx
	IPv6Addr
	IPv6Pfx
	Mac
	URL
	UUID
	Time
	Void
	// Empty is the sentinel type used for absent range bounds.
	Empty
)

// typeNames are the canonical lowercase names emitted by the serializer,
// e.g. in `<x:int32>`.
var typeNames = map[Type]string{
	Err:       "err",
	Int8:      "int8",
	Int16:     "int16",
	Int32:     "int32",
	Int64:     "int64",
	UInt8:     "uint8",
	UInt16:    "uint16",
	UInt32:    "uint32",
	UInt64:    "uint64",
	Dec64:     "decimal64",
	Bool:      "bool",
	Rest:      "rest",
	String:    "string",
	Interface: "interface",
	IPv4Addr:  "ipv4addr",
	IPv4Pfx:   "ipv4prefix",
	IPv6Addr:  "ipv6addr",
	IPv6Pfx:   "ipv6prefix",
	Mac:       "macaddr",
	URL:       "url",
	UUID:      "uuid",
	Time:      "time",
	Void:      "void",
	Empty:     "empty",
}

// String returns the canonical name of the type.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "err"
}

// IsInt reports whether t is one of the integer widths. The serializer uses
// this to choose between `range[...]` and `length[...]` constraint syntax.
func (t Type) IsInt() bool {
	switch t {
	case Int8, Int16, Int32, Int64, UInt8, UInt16, UInt32, UInt64:
		return true
	}
	return false
}

// IsString reports whether t carries free text. String lookups such as
// cvec.FindStr only succeed on these types.
func (t Type) IsString() bool {
	switch t {
	case Rest, String, Interface, URL:
		return true
	}
	return false
}

// CtyType maps t onto the cty type its payload is stored as. Err, Void and
// Empty carry no payload and map to cty.NilType.
func (t Type) CtyType() cty.Type {
	switch {
	case t.IsInt() || t == Dec64:
		return cty.Number
	case t == Bool:
		return cty.Bool
	case t == Err || t == Void || t == Empty:
		return cty.NilType
	default:
		return cty.String
	}
}
