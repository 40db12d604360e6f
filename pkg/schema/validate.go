package schema

import (
	"errors"

	// Packages
	toolschema "github.com/mutablelogic/go-toolschema"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate checks the tree for internal consistency and returns every
// problem found, joined. Each problem wraps ErrSchemaInconsistency and
// names the path of the offending node. Nothing is modified.
func (s *Schema) Validate() error {
	return s.validate("$")
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (s *Schema) validate(path string) error {
	if s == nil {
		return toolschema.ErrSchemaInconsistency.Withf("%s: missing schema", path)
	}

	var result error
	if s.Type == "" {
		result = errors.Join(result, toolschema.ErrSchemaInconsistency.Withf("%s: missing type", path))
	}
	if s.Items != nil && s.Type != TypeArray {
		result = errors.Join(result, toolschema.ErrSchemaInconsistency.Withf("%s: items on %q schema", path, s.Type))
	}
	if s.Properties != nil && s.Type != TypeObject {
		result = errors.Join(result, toolschema.ErrSchemaInconsistency.Withf("%s: properties on %q schema", path, s.Type))
	}
	if s.Required != nil && s.Type != TypeObject {
		result = errors.Join(result, toolschema.ErrSchemaInconsistency.Withf("%s: required on %q schema", path, s.Type))
	}

	// Required names must be unique and defined
	seen := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		if seen[name] {
			result = errors.Join(result, toolschema.ErrSchemaInconsistency.Withf("%s: duplicate required property %q", path, name))
			continue
		}
		seen[name] = true
		if !s.Properties.Has(name) {
			result = errors.Join(result, toolschema.ErrSchemaInconsistency.Withf("%s: required property %q is not defined", path, name))
		}
	}

	// Children
	if s.Items != nil {
		result = errors.Join(result, s.Items.validate(path+"."+keyItems))
	}
	s.Properties.Range(func(name string, child *Schema) bool {
		result = errors.Join(result, child.validate(path+"."+keyProperties+"."+name))
		return true
	})

	return result
}
