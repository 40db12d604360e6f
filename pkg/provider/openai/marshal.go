package openai

import (
	// Packages
	opt "github.com/mutablelogic/go-toolschema/pkg/opt"
	tool "github.com/mutablelogic/go-toolschema/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TOOLS CONVERSION

// Tools converts tools to OpenAI function tools, in the same order. The
// strict flag (WithStrict, default false) applies to every tool. An empty
// list returns an empty, non-nil slice.
func Tools(tools []tool.Tool, opts ...opt.Opt) ([]Tool, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	strict := o.GetBool(opt.StrictKey)

	result := make([]Tool, 0, len(tools))
	for _, t := range tools {
		result = append(result, Tool{
			Type: toolTypeFunction,
			Function: Function{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  tool.Parameters(t),
				Strict:      strict,
			},
		})
	}
	return result, nil
}
