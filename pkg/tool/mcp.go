package tool

import (
	"encoding/json"
	"fmt"
	"log/slog"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	toolschema "github.com/mutablelogic/go-toolschema"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// FromMCP converts tools advertised by an MCP server. Input schemas are
// lowered with schema.FromJSONSchema, so properties are ordered by name, a
// "null" type member marks the schema nullable, and references or
// combinators return ErrNotImplemented. Other keywords outside the
// supported vocabulary are dropped. When a tool has no description its
// title is used instead.
func FromMCP(tools ...*mcp.Tool) ([]Tool, error) {
	result := make([]Tool, 0, len(tools))
	for _, t := range tools {
		if t == nil {
			continue
		}
		input, err := mcpInputSchema(t)
		if err != nil {
			return nil, err
		}
		description := t.Description
		if description == "" {
			description = t.Title
		}
		result = append(result, New(t.Name, description, input))
	}
	slog.Debug("converted mcp tools", "count", len(result))
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func mcpInputSchema(t *mcp.Tool) (*schema.Schema, error) {
	var js *jsonschema.Schema
	switch v := t.InputSchema.(type) {
	case nil:
		return nil, nil
	case *jsonschema.Schema:
		js = v
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, toolschema.ErrBadParameter.Withf("tool %q: %v", t.Name, err)
		}
		if string(data) == "null" {
			return nil, nil
		}
		js = new(jsonschema.Schema)
		if err := json.Unmarshal(data, js); err != nil {
			return nil, toolschema.ErrBadParameter.Withf("tool %q: %v", t.Name, err)
		}
	}
	if js == nil {
		return nil, nil
	}
	s, err := schema.FromJSONSchema(js)
	if err != nil {
		return nil, fmt.Errorf("tool %q: %w", t.Name, err)
	}
	return s, nil
}
