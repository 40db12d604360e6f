// Package schema describes the typed input of a tool as a tree of Schema
// nodes, and lowers that tree into the reduced JSON Schema vocabulary
// (type, format, description, nullable, enum, items, properties, required)
// which every supported provider accepts.
package schema

import (
	"slices"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Type is the primitive type of a schema node
type Type string

// Schema is a node in a tool input schema. Optional fields are nil when
// absent. Items is only meaningful for arrays, Properties and Required
// only for objects, and every name in Required should be a key of
// Properties (see Validate).
type Schema struct {
	Type        Type        `json:"type" yaml:"type"`
	Format      *string     `json:"format,omitempty" yaml:"format,omitempty"`
	Description *string     `json:"description,omitempty" yaml:"description,omitempty"`
	Nullable    *bool       `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Enum        []string    `json:"enum,omitempty" yaml:"enum,omitempty"`
	Items       *Schema     `json:"items,omitempty" yaml:"items,omitempty"`
	Properties  *Properties `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required    []string    `json:"required,omitempty" yaml:"required,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeNull    Type = "null"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a schema node of the given type with no optional fields set
func New(t Type) *Schema {
	return &Schema{Type: t}
}

// String returns a string schema with an optional description
func String(description ...string) *Schema {
	return New(TypeString).withDescription(description)
}

// Number returns a number schema with an optional description
func Number(description ...string) *Schema {
	return New(TypeNumber).withDescription(description)
}

// Integer returns an integer schema with an optional description
func Integer(description ...string) *Schema {
	return New(TypeInteger).withDescription(description)
}

// Boolean returns a boolean schema with an optional description
func Boolean(description ...string) *Schema {
	return New(TypeBoolean).withDescription(description)
}

// Array returns an array schema whose members are described by items
func Array(items *Schema, description ...string) *Schema {
	return New(TypeArray).WithItems(items).withDescription(description)
}

// Object returns an object schema with an empty set of properties
func Object(description ...string) *Schema {
	s := New(TypeObject).withDescription(description)
	s.Properties = NewProperties()
	return s
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithFormat sets the format, for example "date-time"
func (s *Schema) WithFormat(format string) *Schema {
	s.Format = types.Ptr(format)
	return s
}

// WithDescription sets the description
func (s *Schema) WithDescription(description string) *Schema {
	s.Description = types.Ptr(description)
	return s
}

// WithNullable sets the nullable flag
func (s *Schema) WithNullable(nullable bool) *Schema {
	s.Nullable = types.Ptr(nullable)
	return s
}

// WithEnum sets the enumerated values, in order. Calling it with no values
// still marks the enum as present.
func (s *Schema) WithEnum(values ...string) *Schema {
	s.Enum = append(make([]string, 0, len(values)), values...)
	return s
}

// WithItems sets the schema of array members
func (s *Schema) WithItems(items *Schema) *Schema {
	s.Items = items
	return s
}

// WithProperty adds a named property, and appends it to the required list
// when required is true
func (s *Schema) WithProperty(name string, property *Schema, required bool) *Schema {
	if s.Properties == nil {
		s.Properties = NewProperties()
	}
	s.Properties.Set(name, property)
	if required {
		s.WithRequired(name)
	}
	return s
}

// WithRequired appends names to the required list
func (s *Schema) WithRequired(names ...string) *Schema {
	if s.Required == nil {
		s.Required = make([]string, 0, len(names))
	}
	s.Required = append(s.Required, names...)
	return s
}

// IsRequired returns true if name is in the required list
func (s *Schema) IsRequired(name string) bool {
	return s != nil && slices.Contains(s.Required, name)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s Schema) String() string {
	return types.Stringify(s)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (s *Schema) withDescription(description []string) *Schema {
	if len(description) > 0 {
		s.WithDescription(description[0])
	}
	return s
}
