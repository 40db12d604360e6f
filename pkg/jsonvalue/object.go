package jsonvalue

import (
	// Packages
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Object is a mapping from string keys to values which iterates, and
// marshals, in insertion order. The zero value is an empty, read-only
// object; use NewObject to create one which can be written to.
type Object struct {
	m *orderedmap.OrderedMap[string, Value]
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewObject returns an empty object
func NewObject() Object {
	return Object{m: orderedmap.New[string, Value]()}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (Object) Kind() Kind { return KindObject }

// Set adds or replaces a key. Replacing a key keeps its original position.
// Set panics on the zero value, which is read-only.
func (o Object) Set(key string, value Value) {
	if o.m == nil {
		panic("jsonvalue: Set on a zero Object, use NewObject")
	}
	o.m.Set(key, value)
}

// Get returns the value for a key, and whether it was present
func (o Object) Get(key string) (Value, bool) {
	if o.m == nil {
		return nil, false
	}
	return o.m.Get(key)
}

// Has returns true if the key is present
func (o Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Len returns the number of keys
func (o Object) Len() int {
	if o.m == nil {
		return 0
	}
	return o.m.Len()
}

// Keys returns the keys in insertion order
func (o Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	o.Range(func(key string, _ Value) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Range calls fn for each key in insertion order, until fn returns false
func (o Object) Range(fn func(key string, value Value) bool) {
	if o.m == nil {
		return
	}
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// GetString returns the value for key if it is a string
func (o Object) GetString(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(String)
	return string(s), ok
}

// GetObject returns the value for key if it is an object
func (o Object) GetObject(key string) (Object, bool) {
	v, ok := o.Get(key)
	if !ok {
		return Object{}, false
	}
	obj, ok := v.(Object)
	return obj, ok
}

// GetArray returns the value for key if it is an array
func (o Object) GetArray(key string) (Array, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	arr, ok := v.(Array)
	return arr, ok
}

///////////////////////////////////////////////////////////////////////////////
// JSON MARSHALLING

func (o Object) MarshalJSON() ([]byte, error) {
	if o.m == nil {
		return []byte("{}"), nil
	}
	return o.m.MarshalJSON()
}
