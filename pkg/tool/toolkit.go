package tool

import (
	// Packages
	toolschema "github.com/mutablelogic/go-toolschema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Toolkit is an ordered collection of tools with unique names
type Toolkit struct {
	tools []Tool
	index map[string]int
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewToolkit creates a new toolkit with the given tools.
// Returns an error if any tool is rejected by Register.
func NewToolkit(tools ...Tool) (*Toolkit, error) {
	tk := &Toolkit{
		index: make(map[string]int),
	}
	if err := tk.Register(tools...); err != nil {
		return nil, err
	}
	return tk, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns all tools in the order they were registered. A nil toolkit
// has no tools.
func (tk *Toolkit) Tools() []Tool {
	if tk == nil {
		return nil
	}
	return append(make([]Tool, 0, len(tk.tools)), tk.tools...)
}

// Len returns the number of tools
func (tk *Toolkit) Len() int {
	if tk == nil {
		return 0
	}
	return len(tk.tools)
}

// Register adds one or more tools to the toolkit. It returns an error if a
// tool has an invalid or duplicate name, or an inconsistent input schema.
// Tools before the failing one remain registered. A nil toolkit cannot be
// registered into.
func (tk *Toolkit) Register(tools ...Tool) error {
	if tk == nil {
		return toolschema.ErrBadParameter.With("toolkit cannot be nil")
	}
	if tk.index == nil {
		tk.index = make(map[string]int)
	}
	for _, t := range tools {
		if t == nil {
			return toolschema.ErrBadParameter.With("tool cannot be nil")
		}
		name := t.Name()
		if !types.IsIdentifier(name) {
			return toolschema.ErrBadParameter.Withf("invalid tool name: %q", name)
		}
		if _, exists := tk.index[name]; exists {
			return toolschema.ErrConflict.Withf("duplicate tool name: %q", name)
		}
		if s := t.InputSchema(); s != nil {
			if err := s.Validate(); err != nil {
				return toolschema.ErrSchemaInconsistency.Withf("tool %q: %v", name, err)
			}
		}
		tk.index[name] = len(tk.tools)
		tk.tools = append(tk.tools, t)
	}
	return nil
}

// Lookup returns a tool by name, or nil if not found
func (tk *Toolkit) Lookup(name string) Tool {
	if tk == nil {
		return nil
	}
	if i, exists := tk.index[name]; exists {
		return tk.tools[i]
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (tk *Toolkit) String() string {
	defs := make([]any, 0, tk.Len())
	for _, t := range tk.Tools() {
		defs = append(defs, Definition(t))
	}
	return types.Stringify(defs)
}
