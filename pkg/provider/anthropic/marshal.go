package anthropic

import (
	// Packages
	tool "github.com/mutablelogic/go-toolschema/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TOOLS CONVERSION

// Tools converts tools to Anthropic tool definitions, in the same order.
// Duplicate names are passed through.
func Tools(tools []tool.Tool) []Tool {
	result := make([]Tool, 0, len(tools))
	for _, t := range tools {
		result = append(result, Tool{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: tool.Parameters(t),
		})
	}
	return result
}
