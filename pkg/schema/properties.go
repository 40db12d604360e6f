package schema

import (
	"fmt"

	// Packages
	orderedmap "github.com/wk8/go-ordered-map/v2"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Properties maps property names to child schemas, and iterates in the
// order the properties were added (or decoded)
type Properties struct {
	m *orderedmap.OrderedMap[string, *Schema]
}

// Property is a single named child schema
type Property struct {
	Name   string
	Schema *Schema
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewProperties returns a set of properties in the order given. A later
// property with the same name replaces an earlier one in place.
func NewProperties(properties ...Property) *Properties {
	p := &Properties{m: orderedmap.New[string, *Schema]()}
	for _, property := range properties {
		p.Set(property.Name, property.Schema)
	}
	return p
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Set adds or replaces a property
func (p *Properties) Set(name string, schema *Schema) *Properties {
	if p.m == nil {
		p.m = orderedmap.New[string, *Schema]()
	}
	p.m.Set(name, schema)
	return p
}

// Get returns a property by name
func (p *Properties) Get(name string) (*Schema, bool) {
	if p == nil || p.m == nil {
		return nil, false
	}
	return p.m.Get(name)
}

// Has returns true if the property exists
func (p *Properties) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Len returns the number of properties
func (p *Properties) Len() int {
	if p == nil || p.m == nil {
		return 0
	}
	return p.m.Len()
}

// Keys returns the property names in order
func (p *Properties) Keys() []string {
	keys := make([]string, 0, p.Len())
	p.Range(func(name string, _ *Schema) bool {
		keys = append(keys, name)
		return true
	})
	return keys
}

// Range calls fn for each property in order, until fn returns false
func (p *Properties) Range(fn func(name string, schema *Schema) bool) {
	if p == nil || p.m == nil {
		return
	}
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHALLING

func (p *Properties) MarshalJSON() ([]byte, error) {
	if p == nil || p.m == nil {
		return []byte("{}"), nil
	}
	return p.m.MarshalJSON()
}

func (p *Properties) UnmarshalJSON(data []byte) error {
	p.m = orderedmap.New[string, *Schema]()
	return p.m.UnmarshalJSON(data)
}

////////////////////////////////////////////////////////////////////////////////
// YAML UNMARSHALLING

// UnmarshalYAML decodes a mapping node, keeping the order of its keys
func (p *Properties) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: properties must be a mapping", node.Line)
	}
	p.m = orderedmap.New[string, *Schema]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return err
		}
		child := new(Schema)
		if err := node.Content[i+1].Decode(child); err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
		p.m.Set(name, child)
	}
	return nil
}
