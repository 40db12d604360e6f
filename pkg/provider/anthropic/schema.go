package anthropic

import (
	// Packages
	jsonvalue "github.com/mutablelogic/go-toolschema/pkg/jsonvalue"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - Anthropic REST API wire format
//
// Reference: https://docs.anthropic.com/en/api/messages#body-tools

// Tool is an entry in the tools array of a messages request. Anthropic has
// no function wrapper and no strict flag.
type Tool struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	InputSchema jsonvalue.Object `json:"input_schema"`
}
