package openai

import (
	// Packages
	opt "github.com/mutablelogic/go-toolschema/pkg/opt"
)

////////////////////////////////////////////////////////////////////////////////
// TOOL OPTIONS

// WithStrict enables structured outputs for every function tool
func WithStrict(strict bool) opt.Opt {
	return opt.WithStrict(strict)
}
