// Package table renders tabular data for the terminal (backed by lipgloss)
// or as a markdown table. Consumers supply data via the TableData interface
// rather than building lipgloss tables directly.
package table

import (
	"fmt"
	"os"
	"strings"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TableData is the interface that data sources implement to be rendered
// as a table.
type TableData interface {
	// Header returns the column header labels.
	Header() []string

	// Len returns the number of rows.
	Len() int

	// Row returns the cell values for row i. Return nil to skip a row.
	// Wrap a value in Bold{} to emphasise it.
	Row(i int) []any
}

// Bold wraps a cell value so that it is emphasised when rendered.
type Bold struct{ Value any }

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	cellStyle   = lipgloss.NewStyle()
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render renders the table data for the terminal. When stdout is a
// terminal narrower than the table, columns are wrapped to fit.
func Render(data TableData) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, row := range rows(data, formatCell) {
		t.Row(row...)
	}

	result := t.Render()
	if w := terminalWidth(); w > 0 && lipgloss.Width(result) > w {
		t.Width(w)
		result = t.Render()
	}
	return result
}

// RenderMarkdown renders the table data as a Markdown table
func RenderMarkdown(data TableData) string {
	header := data.Header()
	if len(header) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("| " + strings.Join(header, " | ") + " |\n")
	buf.WriteString("|" + strings.Repeat("---|", len(header)) + "\n")
	for _, row := range rows(data, formatMarkdownCell) {
		cells := make([]string, len(header))
		for j := range cells {
			if j < len(row) {
				cells[j] = row[j]
			} else {
				cells[j] = "-"
			}
		}
		buf.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return buf.String()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func rows(data TableData, format func(any) string) [][]string {
	result := make([][]string, 0, data.Len())
	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = format(v)
		}
		result = append(result, cells)
	}
	return result
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// formatCell converts a value to a display string for a terminal cell
func formatCell(v any) string {
	if b, ok := v.(Bold); ok {
		return boldStyle.Render(formatCell(b.Value))
	}
	return plain(v)
}

// formatMarkdownCell converts a value to a markdown cell, escaping pipes
func formatMarkdownCell(v any) string {
	if b, ok := v.(Bold); ok {
		if inner := formatMarkdownCell(b.Value); inner != "-" {
			return "**" + inner + "**"
		}
		return "-"
	}
	return strings.ReplaceAll(plain(v), "|", `\|`)
}

func plain(v any) string {
	if v == nil {
		return "-"
	}
	s := strings.ReplaceAll(fmt.Sprint(v), "\n", " ")
	if s == "" {
		return "-"
	}
	return s
}
