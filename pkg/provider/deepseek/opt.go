package deepseek

import (
	// Packages
	opt "github.com/mutablelogic/go-toolschema/pkg/opt"
)

////////////////////////////////////////////////////////////////////////////////
// TOOL OPTIONS

// WithStrict sets the strict flag on every function tool
func WithStrict(strict bool) opt.Opt {
	return opt.WithStrict(strict)
}
