// Package jsonvalue implements a small JSON value tree whose objects keep
// keys in insertion order. It is the output of the schema serializer and
// the input every provider envelope embeds.
package jsonvalue

import (
	"encoding/json"
	"fmt"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Value is one of String, Bool, Number, Array or Object
type Value interface {
	// Kind returns the variant of the value
	Kind() Kind
}

// Kind enumerates the variants of Value
type Kind int

// String is a JSON string
type String string

// Bool is a JSON boolean
type Bool bool

// Number is a JSON number
type Number float64

// Array is an ordered list of values
type Array []Value

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	KindString Kind = iota
	KindBool
	KindNumber
	KindArray
	KindObject
)

var _ Value = String("")
var _ Value = Bool(false)
var _ Value = Number(0)
var _ Value = Array(nil)
var _ Value = Object{}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Strings returns an array of string values, in the order given. The result
// is never nil, so an empty input marshals as [].
func Strings(values ...string) Array {
	result := make(Array, 0, len(values))
	for _, v := range values {
		result = append(result, String(v))
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// KIND

func (String) Kind() Kind { return KindString }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (Array) Kind() Kind  { return KindArray }

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

///////////////////////////////////////////////////////////////////////////////
// JSON MARSHALLING

// MarshalJSON encodes a nil array as [] rather than null
func (a Array) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Value(a))
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Strings returns the string members of the array, skipping any other kind
func (a Array) Strings() []string {
	result := make([]string, 0, len(a))
	for _, v := range a {
		if s, ok := v.(String); ok {
			result = append(result, string(s))
		}
	}
	return result
}
