// Package provider maps tools to the tool list of a named provider, and
// renders that list as JSON for a request body.
package provider

import (
	"encoding/json"
	"slices"

	// Packages
	toolschema "github.com/mutablelogic/go-toolschema"
	opt "github.com/mutablelogic/go-toolschema/pkg/opt"
	anthropic "github.com/mutablelogic/go-toolschema/pkg/provider/anthropic"
	deepseek "github.com/mutablelogic/go-toolschema/pkg/provider/deepseek"
	openai "github.com/mutablelogic/go-toolschema/pkg/provider/openai"
	togetherai "github.com/mutablelogic/go-toolschema/pkg/provider/togetherai"
	tool "github.com/mutablelogic/go-toolschema/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type mapper func(tools []tool.Tool, opts ...opt.Opt) (any, error)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Anthropic  = "anthropic"
	DeepSeek   = "deepseek"
	OpenAI     = "openai"
	TogetherAI = "togetherai"
)

var mappers = map[string]mapper{
	Anthropic: func(tools []tool.Tool, opts ...opt.Opt) (any, error) {
		if _, err := opt.Apply(opts...); err != nil {
			return nil, err
		}
		return anthropic.Tools(tools), nil
	},
	DeepSeek: func(tools []tool.Tool, opts ...opt.Opt) (any, error) {
		return deepseek.Tools(tools, opts...)
	},
	OpenAI: func(tools []tool.Tool, opts ...opt.Opt) (any, error) {
		return openai.Tools(tools, opts...)
	},
	TogetherAI: func(tools []tool.Tool, opts ...opt.Opt) (any, error) {
		if _, err := opt.Apply(opts...); err != nil {
			return nil, err
		}
		return togetherai.Tools(tools), nil
	},
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Names returns the provider names in sorted order
func Names() []string {
	names := make([]string, 0, len(mappers))
	for name := range mappers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Tools maps tools for the named provider. The concrete type of the result
// is the provider's tool slice, for example []openai.Tool. Providers without
// a strict flag ignore WithStrict.
func Tools(name string, tools []tool.Tool, opts ...opt.Opt) (any, error) {
	fn, exists := mappers[name]
	if !exists {
		return nil, toolschema.ErrNotFound.Withf("provider %q", name)
	}
	return fn(tools, opts...)
}

// Marshal returns the JSON encoding of the tool list for the named provider
func Marshal(name string, tools []tool.Tool, opts ...opt.Opt) ([]byte, error) {
	result, err := Tools(name, tools, opts...)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(result)
	if err != nil {
		return nil, toolschema.ErrInternalServerError.With(err)
	}
	return data, nil
}
