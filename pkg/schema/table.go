package schema

import (
	"strings"

	// Packages
	uitable "github.com/mutablelogic/go-toolschema/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// PropertyTable implements table.TableData for the properties of an object
// schema, flattened depth-first. Nested names are joined with "." and array
// members are suffixed with "[]". Required properties are rendered in bold.
type PropertyTable []propertyRow

type propertyRow struct {
	name     string
	schema   *Schema
	required bool
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewPropertyTable returns the flattened properties of s
func NewPropertyTable(s *Schema) PropertyTable {
	return appendPropertyRows(nil, "", s)
}

///////////////////////////////////////////////////////////////////////////////
// PROPERTY TABLE

func (t PropertyTable) Header() []string {
	return []string{"NAME", "TYPE", "FORMAT", "DESCRIPTION"}
}

func (t PropertyTable) Len() int {
	return len(t)
}

func (t PropertyTable) Row(i int) []any {
	p := t[i]
	row := []any{p.name, typeLabel(p.schema), deref(p.schema.Format), deref(p.schema.Description)}
	if p.required {
		row[0] = uitable.Bold{Value: p.name}
	}
	return row
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func appendPropertyRows(rows PropertyTable, prefix string, s *Schema) PropertyTable {
	if s == nil {
		return rows
	}
	if s.Items != nil {
		rows = appendPropertyRows(rows, prefix+"[]", s.Items)
	}
	s.Properties.Range(func(name string, child *Schema) bool {
		if child == nil {
			return true
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		rows = append(rows, propertyRow{name: path, schema: child, required: s.IsRequired(name)})
		rows = appendPropertyRows(rows, path, child)
		return true
	})
	return rows
}

func typeLabel(s *Schema) string {
	label := string(s.Type)
	if s.Nullable != nil && *s.Nullable {
		label += "?"
	}
	if s.Enum != nil {
		label += " (" + strings.Join(s.Enum, "|") + ")"
	}
	return label
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
