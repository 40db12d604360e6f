package tool

import (
	// Packages
	jsonvalue "github.com/mutablelogic/go-toolschema/pkg/jsonvalue"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Tool describes a callable tool: a name, a description and the schema of
// its input. Implementations must return the same values on every call.
type Tool interface {
	// Return the name of the tool
	Name() string

	// Return the description of the tool
	Description() string

	// Return the schema for the tool input, which is conventionally an
	// object. May be nil when the tool takes no input.
	InputSchema() *schema.Schema
}

// definition is the Tool implementation returned by New
type definition struct {
	def schema.ToolDefinition
}

var _ Tool = (*definition)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a tool with the given name, description and input schema
func New(name, description string, input *schema.Schema) Tool {
	return &definition{def: schema.ToolDefinition{
		Name:        name,
		Description: description,
		InputSchema: input,
	}}
}

// FromDefinition returns a tool for a definition
func FromDefinition(def schema.ToolDefinition) Tool {
	return &definition{def: def}
}

// Definition returns the provider-agnostic definition of a tool
func Definition(t Tool) schema.ToolDefinition {
	return schema.ToolDefinition{
		Name:        t.Name(),
		Description: t.Description(),
		InputSchema: t.InputSchema(),
	}
}

// Parameters returns the serialized input schema of a tool. A tool without
// an input schema takes an empty object.
func Parameters(t Tool) jsonvalue.Object {
	if s := t.InputSchema(); s != nil {
		return schema.Serialize(s)
	}
	return schema.Serialize(schema.New(schema.TypeObject))
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (d *definition) Name() string {
	return d.def.Name
}

func (d *definition) Description() string {
	return d.def.Description
}

func (d *definition) InputSchema() *schema.Schema {
	return d.def.InputSchema
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (d *definition) String() string {
	return types.Stringify(d.def)
}
