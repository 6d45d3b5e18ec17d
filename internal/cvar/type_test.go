package cvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func TestTypeString(t *testing.T) {
	testCases := []struct {
		name     string
		typ      Type
		expected string
	}{
		{name: "unset", typ: Err, expected: "err"},
		{name: "int32", typ: Int32, expected: "int32"},
		{name: "uint64", typ: UInt64, expected: "uint64"},
		{name: "decimal", typ: Dec64, expected: "decimal64"},
		{name: "string", typ: String, expected: "string"},
		{name: "rest of line", typ: Rest, expected: "rest"},
		{name: "ipv4 address", typ: IPv4Addr, expected: "ipv4addr"},
		{name: "sentinel", typ: Empty, expected: "empty"},
		{name: "out of range tag", typ: Type(999), expected: "err"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.typ.String())
		})
	}
}

func TestTypePredicates(t *testing.T) {
	testCases := []struct {
		name     string
		typ      Type
		isInt    bool
		isString bool
	}{
		{name: "int8", typ: Int8, isInt: true},
		{name: "uint64", typ: UInt64, isInt: true},
		{name: "decimal is not integer", typ: Dec64},
		{name: "bool", typ: Bool},
		{name: "string", typ: String, isString: true},
		{name: "rest", typ: Rest, isString: true},
		{name: "interface", typ: Interface, isString: true},
		{name: "url", typ: URL, isString: true},
		{name: "ipv4addr is not free text", typ: IPv4Addr},
		{name: "unset", typ: Err},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.isInt, tc.typ.IsInt())
			assert.Equal(t, tc.isString, tc.typ.IsString())
		})
	}
}

func TestTypeCtyType(t *testing.T) {
	assert.Equal(t, cty.Number, Int32.CtyType())
	assert.Equal(t, cty.Number, Dec64.CtyType())
	assert.Equal(t, cty.Bool, Bool.CtyType())
	assert.Equal(t, cty.String, String.CtyType())
	assert.Equal(t, cty.String, IPv6Pfx.CtyType())
	assert.Equal(t, cty.NilType, Err.CtyType())
	assert.Equal(t, cty.NilType, Empty.CtyType())
	assert.Equal(t, cty.NilType, Void.CtyType())
}
