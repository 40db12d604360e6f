package togetherai

import (
	// Packages
	jsonvalue "github.com/mutablelogic/go-toolschema/pkg/jsonvalue"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - Together AI chat completions wire format
//
// Reference: https://docs.together.ai/docs/function-calling

// Tool is an entry in the tools array of a chat completion request
type Tool struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// Function describes the signature of a function tool. Together AI does
// not accept a strict flag.
type Function struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Parameters  jsonvalue.Object `json:"parameters"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	toolTypeFunction = "function"
)
