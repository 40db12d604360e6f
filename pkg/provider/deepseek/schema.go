package deepseek

import (
	// Packages
	jsonvalue "github.com/mutablelogic/go-toolschema/pkg/jsonvalue"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - DeepSeek chat completions wire format
//
// Reference: https://api-docs.deepseek.com/guides/function_calling

// Tool is an entry in the tools array of a chat completion request
type Tool struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// Function describes the signature of a function tool. Strict mode is
// a beta feature of the DeepSeek API.
type Function struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Parameters  jsonvalue.Object `json:"parameters"`
	Strict      bool             `json:"strict"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	toolTypeFunction = "function"
)
