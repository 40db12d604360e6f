package table_test

import (
	"strings"
	"testing"

	// Packages
	table "github.com/mutablelogic/go-toolschema/pkg/ui/table"
	assert "github.com/stretchr/testify/assert"
)

type testTable [][]any

func (t testTable) Header() []string { return []string{"NAME", "TYPE"} }
func (t testTable) Len() int         { return len(t) }
func (t testTable) Row(i int) []any  { return t[i] }

func Test_table_001(t *testing.T) {
	assert := assert.New(t)
	data := testTable{
		{table.Bold{Value: "query"}, "string"},
		nil,
		{"kind", "string (a|b)"},
		{"empty", ""},
		{"short"},
	}
	assert.Equal(strings.Join([]string{
		"| NAME | TYPE |",
		"|---|---|",
		"| **query** | string |",
		`| kind | string (a\|b) |`,
		"| empty | - |",
		"| short | - |",
		"",
	}, "\n"), table.RenderMarkdown(data))
}

func Test_table_002(t *testing.T) {
	assert := assert.New(t)
	out := table.Render(testTable{{"query", "string"}})
	assert.Contains(out, "NAME")
	assert.Contains(out, "query")
	assert.Contains(out, "string")
}
