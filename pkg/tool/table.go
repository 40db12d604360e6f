package tool

import (
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ToolTable implements table.TableData for a list of tools
type ToolTable []Tool

///////////////////////////////////////////////////////////////////////////////
// TOOL TABLE (LIST)

func (t ToolTable) Header() []string {
	return []string{"NAME", "DESCRIPTION", "PARAMETERS"}
}

func (t ToolTable) Len() int {
	return len(t)
}

func (t ToolTable) Row(i int) []any {
	var params []string
	if s := t[i].InputSchema(); s != nil {
		for _, name := range s.Properties.Keys() {
			if s.IsRequired(name) {
				name += "*"
			}
			params = append(params, name)
		}
	}
	return []any{t[i].Name(), t[i].Description(), strings.Join(params, ", ")}
}
