package togetherai

import (
	// Packages
	tool "github.com/mutablelogic/go-toolschema/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TOOLS CONVERSION

// Tools converts tools to Together AI function tools, in the same order
func Tools(tools []tool.Tool) []Tool {
	result := make([]Tool, 0, len(tools))
	for _, t := range tools {
		result = append(result, Tool{
			Type: toolTypeFunction,
			Function: Function{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  tool.Parameters(t),
			},
		})
	}
	return result
}
