package jsonvalue_test

import (
	"encoding/json"
	"testing"

	// Packages
	jsonvalue "github.com/mutablelogic/go-toolschema/pkg/jsonvalue"
	assert "github.com/stretchr/testify/assert"
)

func Test_value_001(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(jsonvalue.KindString, jsonvalue.String("a").Kind())
	assert.Equal(jsonvalue.KindBool, jsonvalue.Bool(true).Kind())
	assert.Equal(jsonvalue.KindNumber, jsonvalue.Number(1).Kind())
	assert.Equal(jsonvalue.KindArray, jsonvalue.Array{}.Kind())
	assert.Equal(jsonvalue.KindObject, jsonvalue.NewObject().Kind())
	assert.Equal("object", jsonvalue.KindObject.String())
}

func Test_value_002(t *testing.T) {
	assert := assert.New(t)

	// Insertion order is kept, replacing a key keeps its position
	obj := jsonvalue.NewObject()
	obj.Set("z", jsonvalue.String("last"))
	obj.Set("a", jsonvalue.Number(1.5))
	obj.Set("m", jsonvalue.Bool(false))
	obj.Set("z", jsonvalue.String("first"))

	assert.Equal([]string{"z", "a", "m"}, obj.Keys())
	assert.Equal(3, obj.Len())

	data, err := json.Marshal(obj)
	assert.NoError(err)
	assert.Equal(`{"z":"first","a":1.5,"m":false}`, string(data))
}

func Test_value_003(t *testing.T) {
	assert := assert.New(t)

	inner := jsonvalue.NewObject()
	inner.Set("type", jsonvalue.String("string"))

	obj := jsonvalue.NewObject()
	obj.Set("items", inner)
	obj.Set("enum", jsonvalue.Strings("b", "a"))

	v, ok := obj.GetObject("items")
	assert.True(ok)
	s, ok := v.GetString("type")
	assert.True(ok)
	assert.Equal("string", s)

	arr, ok := obj.GetArray("enum")
	assert.True(ok)
	assert.Equal([]string{"b", "a"}, arr.Strings())

	_, ok = obj.GetString("items")
	assert.False(ok)
	_, ok = obj.GetObject("missing")
	assert.False(ok)

	data, err := json.Marshal(obj)
	assert.NoError(err)
	assert.Equal(`{"items":{"type":"string"},"enum":["b","a"]}`, string(data))
}

func Test_value_004(t *testing.T) {
	assert := assert.New(t)

	// The zero object and a nil array marshal as empty containers
	var obj jsonvalue.Object
	assert.Equal(0, obj.Len())
	assert.False(obj.Has("type"))
	assert.Empty(obj.Keys())

	data, err := json.Marshal(obj)
	assert.NoError(err)
	assert.Equal(`{}`, string(data))

	data, err = json.Marshal(jsonvalue.Array(nil))
	assert.NoError(err)
	assert.Equal(`[]`, string(data))

	data, err = json.Marshal(jsonvalue.Strings())
	assert.NoError(err)
	assert.Equal(`[]`, string(data))
}

func Test_value_005(t *testing.T) {
	assert := assert.New(t)

	obj := jsonvalue.NewObject()
	for _, key := range []string{"a", "b", "c", "d"} {
		obj.Set(key, jsonvalue.String(key))
	}

	var visited []string
	obj.Range(func(key string, _ jsonvalue.Value) bool {
		visited = append(visited, key)
		return key != "b"
	})
	assert.Equal([]string{"a", "b"}, visited)
}

func Test_value_006(t *testing.T) {
	assert := assert.New(t)

	// The zero object reads as empty and refuses writes
	var zero jsonvalue.Object
	assert.Equal(0, zero.Len())
	assert.False(zero.Has("a"))
	assert.PanicsWithValue("jsonvalue: Set on a zero Object, use NewObject", func() {
		zero.Set("a", jsonvalue.String("b"))
	})
	data, err := json.Marshal(zero)
	assert.NoError(err)
	assert.Equal(`{}`, string(data))
}
