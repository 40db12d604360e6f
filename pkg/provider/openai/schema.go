package openai

import (
	// Packages
	jsonvalue "github.com/mutablelogic/go-toolschema/pkg/jsonvalue"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - OpenAI chat completions wire format
//
// Reference: https://platform.openai.com/docs/api-reference/chat/create#chat-create-tools

// Tool is an entry in the tools array of a chat completion request
type Tool struct {
	Type     string   `json:"type"` // always "function"
	Function Function `json:"function"`
}

// Function describes the signature of a function tool. Strict enables
// structured outputs, where the model's arguments always match Parameters.
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
