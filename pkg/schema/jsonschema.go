package schema

import (
	"fmt"
	"maps"
	"slices"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	toolschema "github.com/mutablelogic/go-toolschema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// FromJSONSchema converts a jsonschema.Schema into a schema tree. A "null"
// member of a type list becomes the nullable flag. Properties are ordered
// by name, since the source is an unordered map. References and
// combinators (anyOf, oneOf, allOf) are not supported.
func FromJSONSchema(js *jsonschema.Schema) (*Schema, error) {
	return fromJSONSchema(js, "$")
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func fromJSONSchema(js *jsonschema.Schema, path string) (*Schema, error) {
	if js == nil {
		return nil, toolschema.ErrBadParameter.Withf("%s: missing schema", path)
	}
	if js.Ref != "" {
		return nil, toolschema.ErrNotImplemented.Withf("%s: $ref %q", path, js.Ref)
	}
	if len(js.AnyOf) > 0 || len(js.OneOf) > 0 || len(js.AllOf) > 0 {
		return nil, toolschema.ErrNotImplemented.Withf("%s: schema combinators", path)
	}

	// Type and nullable
	s := new(Schema)
	if js.Type != "" {
		s.Type = Type(js.Type)
	}
	for _, t := range js.Types {
		switch {
		case t == string(TypeNull):
			s.Nullable = types.Ptr(true)
		case s.Type == "":
			s.Type = Type(t)
		default:
			return nil, toolschema.ErrNotImplemented.Withf("%s: union of types %q", path, js.Types)
		}
	}
	if s.Type == "" {
		if s.Nullable == nil {
			return nil, toolschema.ErrBadParameter.Withf("%s: missing type", path)
		}
		s.Type, s.Nullable = TypeNull, nil
	}

	// Annotations
	if js.Format != "" {
		s.Format = types.Ptr(js.Format)
	}
	if js.Description != "" {
		s.Description = types.Ptr(js.Description)
	}

	// Enumerations must be strings
	if js.Enum != nil {
		s.Enum = make([]string, 0, len(js.Enum))
		for _, v := range js.Enum {
			str, ok := v.(string)
			if !ok {
				return nil, toolschema.ErrBadParameter.Withf("%s: enum value %v is not a string", path, v)
			}
			s.Enum = append(s.Enum, str)
		}
	}

	// Children
	if js.Items != nil {
		items, err := fromJSONSchema(js.Items, path+"."+keyItems)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	if js.Properties != nil {
		s.Properties = NewProperties()
		for _, name := range slices.Sorted(maps.Keys(js.Properties)) {
			child, err := fromJSONSchema(js.Properties[name], fmt.Sprint(path, ".", keyProperties, ".", name))
			if err != nil {
				return nil, err
			}
			s.Properties.Set(name, child)
		}
	}
	if js.Required != nil {
		s.Required = slices.Clone(js.Required)
	}

	return s, nil
}
