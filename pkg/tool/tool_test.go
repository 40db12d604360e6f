package tool_test

import (
	"encoding/json"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	// Packages
	toolschema "github.com/mutablelogic/go-toolschema"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
	tool "github.com/mutablelogic/go-toolschema/pkg/tool"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// testdataPath returns the absolute path to a file in testdata/
func testdataPath(name string) string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", name)
}

func names(tools []tool.Tool) []string {
	result := make([]string, 0, len(tools))
	for _, t := range tools {
		result = append(result, t.Name())
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// TOOL

func Test_tool_001(t *testing.T) {
	assert := assert.New(t)

	input := schema.Object().WithProperty("q", schema.String(), true)
	tt := tool.New("search", "Search things", input)
	assert.Equal("search", tt.Name())
	assert.Equal("Search things", tt.Description())
	assert.Same(input, tt.InputSchema())

	def := tool.Definition(tt)
	assert.Equal("search", def.Name)
	assert.Equal("Search things", def.Description)
	assert.Same(input, def.InputSchema)

	assert.Equal(def, tool.Definition(tool.FromDefinition(def)))
}

///////////////////////////////////////////////////////////////////////////////
// TOOLKIT

func Test_toolkit_001(t *testing.T) {
	assert := assert.New(t)

	// Registration order is kept
	tk, err := tool.NewToolkit(
		tool.New("zulu", "", nil),
		tool.New("alpha", "", schema.Object()),
		tool.New("mike", "", nil),
	)
	require.NoError(t, err)
	assert.Equal(3, tk.Len())
	assert.Equal([]string{"zulu", "alpha", "mike"}, names(tk.Tools()))
	assert.Equal("alpha", tk.Lookup("alpha").Name())
	assert.Nil(tk.Lookup("missing"))
}

func Test_toolkit_002(t *testing.T) {
	assert := assert.New(t)

	tk, err := tool.NewToolkit()
	require.NoError(t, err)

	assert.ErrorIs(tk.Register(tool.New("", "", nil)), toolschema.ErrBadParameter)
	assert.ErrorIs(tk.Register(tool.New("bad name", "", nil)), toolschema.ErrBadParameter)
	assert.ErrorIs(tk.Register(nil), toolschema.ErrBadParameter)

	assert.NoError(tk.Register(tool.New("my_tool", "", nil)))
	assert.ErrorIs(tk.Register(tool.New("my_tool", "", nil)), toolschema.ErrConflict)

	// Inconsistent schemas are rejected, but do not touch the toolkit
	bad := schema.Object().WithRequired("missing")
	err = tk.Register(tool.New("other_tool", "", bad))
	assert.ErrorIs(err, toolschema.ErrSchemaInconsistency)
	assert.Contains(err.Error(), `"other_tool"`)
	assert.Equal([]string{"my_tool"}, names(tk.Tools()))
}

func Test_toolkit_003(t *testing.T) {
	assert := assert.New(t)

	// A nil toolkit is an absent tool list
	var tk *tool.Toolkit
	assert.Nil(tk.Tools())
	assert.Equal(0, tk.Len())
	assert.Nil(tk.Lookup("any"))
	assert.ErrorIs(tk.Register(tool.New("a", "", nil)), toolschema.ErrBadParameter)

	// The zero value can be registered into
	var zero tool.Toolkit
	assert.NoError(zero.Register(tool.New("a", "", nil)))
	assert.Equal(1, zero.Len())
}

func Test_toolkit_004(t *testing.T) {
	assert := assert.New(t)

	// The returned slice is a copy
	tk, err := tool.NewToolkit(tool.New("a", "", nil), tool.New("b", "", nil))
	require.NoError(t, err)
	tools := tk.Tools()
	tools[0] = tool.New("c", "", nil)
	assert.Equal([]string{"a", "b"}, names(tk.Tools()))
	assert.Contains(tk.String(), `"a"`)
}

///////////////////////////////////////////////////////////////////////////////
// FILE

func Test_file_001(t *testing.T) {
	assert := assert.New(t)

	tools, err := tool.ReadFile(testdataPath("tools.yaml"))
	require.NoError(t, err)
	assert.Equal([]string{"get_weather", "search_news", "ping"}, names(tools))

	weather := tools[0].InputSchema()
	require.NotNil(t, weather)
	assert.Equal([]string{"location", "unit", "days"}, weather.Properties.Keys())
	assert.Equal([]string{"location"}, weather.Required)
	location, ok := weather.Properties.Get("location")
	require.True(t, ok)
	assert.Equal(`City and country, for example "Berlin, DE"`, *location.Description)

	unit, ok := weather.Properties.Get("unit")
	require.True(t, ok)
	assert.Equal([]string{"celsius", "fahrenheit"}, unit.Enum)

	days, _ := weather.Properties.Get("days")
	assert.Equal(schema.TypeInteger, days.Type)
	assert.True(*days.Nullable)

	news := tools[1].InputSchema()
	sources, _ := news.Properties.Get("sources")
	assert.Equal(schema.TypeString, sources.Items.Type)
	from, _ := news.Properties.Get("from")
	assert.Equal("date-time", *from.Format)

	assert.Nil(tools[2].InputSchema())

	// Every definition is consistent
	_, err = tool.NewToolkit(tools...)
	assert.NoError(err)
}

func Test_file_002(t *testing.T) {
	assert := assert.New(t)

	// JSON is read as well
	tools, err := tool.ReadFile(testdataPath("tools.json"))
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal("testTool", tools[0].Name())
	assert.Equal("A test tool", tools[0].Description())
	assert.Equal([]string{"testParam"}, tools[0].InputSchema().Properties.Keys())
}

func Test_file_003(t *testing.T) {
	assert := assert.New(t)

	tools, err := tool.Read(strings.NewReader(""))
	assert.NoError(err)
	assert.NotNil(tools)
	assert.Empty(tools)

	_, err = tool.Read(strings.NewReader("name: not a list"))
	assert.ErrorIs(err, toolschema.ErrBadParameter)

	_, err = tool.Read(strings.NewReader("- name: x\n  input_schema:\n    type: object\n    properties: [a, b]\n"))
	assert.ErrorIs(err, toolschema.ErrBadParameter)

	_, err = tool.ReadFile(testdataPath("missing.yaml"))
	assert.Error(err)
}

///////////////////////////////////////////////////////////////////////////////
// TABLE

func Test_table_001(t *testing.T) {
	assert := assert.New(t)

	tools, err := tool.ReadFile(testdataPath("tools.yaml"))
	require.NoError(t, err)

	table := tool.ToolTable(tools)
	assert.Equal(3, table.Len())
	assert.Equal([]string{"NAME", "DESCRIPTION", "PARAMETERS"}, table.Header())
	assert.Equal([]any{"get_weather", "Return the current weather for a location", "location*, unit, days"}, table.Row(0))
	assert.Equal([]any{"ping", "Check the service is alive", ""}, table.Row(2))
}

func Test_tool_002(t *testing.T) {
	assert := assert.New(t)

	data, err := json.Marshal(tool.Parameters(tool.New("a", "", nil)))
	require.NoError(t, err)
	assert.Equal(`{"type":"object"}`, string(data))

	data, err = json.Marshal(tool.Parameters(tool.New("a", "", schema.Object().WithProperty("q", schema.String(), true))))
	require.NoError(t, err)
	assert.Equal(`{"type":"object","properties":{"q":{"type":"string"}},"required":["q"]}`, string(data))
}
