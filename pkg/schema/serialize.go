package schema

import (
	"encoding/json"

	// Packages
	jsonvalue "github.com/mutablelogic/go-toolschema/pkg/jsonvalue"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	keyType        = "type"
	keyFormat      = "format"
	keyDescription = "description"
	keyNullable    = "nullable"
	keyEnum        = "enum"
	keyItems       = "items"
	keyProperties  = "properties"
	keyRequired    = "required"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Serialize lowers a schema tree into a JSON object. Keys are only emitted
// for fields which are present, in the order type, format, description,
// nullable, enum, items, properties, required. Properties keep their
// insertion order. The result shares no memory with the input. A nil
// schema returns an empty object.
func Serialize(s *Schema) jsonvalue.Object {
	result := jsonvalue.NewObject()
	if s == nil {
		return result
	}

	result.Set(keyType, jsonvalue.String(s.Type))
	if s.Format != nil {
		result.Set(keyFormat, jsonvalue.String(*s.Format))
	}
	if s.Description != nil {
		result.Set(keyDescription, jsonvalue.String(*s.Description))
	}
	if s.Nullable != nil {
		result.Set(keyNullable, jsonvalue.Bool(*s.Nullable))
	}
	if s.Enum != nil {
		result.Set(keyEnum, jsonvalue.Strings(s.Enum...))
	}
	if s.Items != nil {
		result.Set(keyItems, Serialize(s.Items))
	}
	if s.Properties != nil {
		properties := jsonvalue.NewObject()
		s.Properties.Range(func(name string, child *Schema) bool {
			properties.Set(name, Serialize(child))
			return true
		})
		result.Set(keyProperties, properties)
	}
	if s.Required != nil {
		result.Set(keyRequired, jsonvalue.Strings(s.Required...))
	}

	return result
}

// JSONValue returns the serialized form of the schema
func (s *Schema) JSONValue() jsonvalue.Object {
	return Serialize(s)
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHALLING

// MarshalJSON encodes the serialized form, so that a schema decoded from
// JSON encodes back to the same document
func (s Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(Serialize(&s))
}
