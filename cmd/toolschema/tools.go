package main

import (
	"bytes"
	"fmt"
	"strings"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	termenv "github.com/muesli/termenv"
	toolschema "github.com/mutablelogic/go-toolschema"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
	tool "github.com/mutablelogic/go-toolschema/pkg/tool"
	uitable "github.com/mutablelogic/go-toolschema/pkg/ui/table"
	goldmark "github.com/yuin/goldmark"
	extension "github.com/yuin/goldmark/extension"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolCommands struct {
	ListTools    ListToolsCommand    `cmd:"" name:"tools" help:"List tools in the definition file." group:"TOOL"`
	DescribeTool DescribeToolCommand `cmd:"" name:"describe" help:"Describe the input of a tool." group:"TOOL"`
}

type ListToolsCommand struct{}

type DescribeToolCommand struct {
	Name  string `arg:"" name:"name" help:"Tool name"`
	Style string `name:"style" help:"Markdown style: dark, light, notty or ascii (detected from the terminal when not set)"`
	HTML  bool   `name:"html" help:"Output as HTML"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListToolsCommand) Run(ctx *Globals) (err error) {
	_, endSpan := ctx.startSpan("ListToolsCommand",
		attribute.String("file", ctx.File),
	)
	defer func() { endSpan(err) }()

	toolkit, err := ctx.Toolkit()
	if err != nil {
		return err
	}

	// Print
	if toolkit.Len() > 0 {
		fmt.Println(uitable.Render(tool.ToolTable(toolkit.Tools())))
	}
	fmt.Printf("%d tool(s)\n", toolkit.Len())
	return nil
}

func (cmd *DescribeToolCommand) Run(ctx *Globals) (err error) {
	_, endSpan := ctx.startSpan("DescribeToolCommand",
		attribute.String("name", cmd.Name),
	)
	defer func() { endSpan(err) }()

	toolkit, err := ctx.Toolkit()
	if err != nil {
		return err
	}
	t := toolkit.Lookup(cmd.Name)
	if t == nil {
		return toolschema.ErrNotFound.Withf("tool %q", cmd.Name)
	}

	// Render as HTML
	if cmd.HTML {
		var buf bytes.Buffer
		md := goldmark.New(goldmark.WithExtensions(extension.Table))
		if err := md.Convert([]byte(describe(t)), &buf); err != nil {
			return err
		}
		fmt.Print(buf.String())
		return nil
	}

	// Render as markdown
	out, err := glamour.Render(describe(t), markdownStyle(cmd.Style))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// markdownStyle returns the glamour style, following the terminal
// background when none is set
func markdownStyle(style string) string {
	switch {
	case style != "":
		return style
	case termenv.HasDarkBackground():
		return "dark"
	default:
		return "light"
	}
}

func describe(t tool.Tool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Name())
	if t.Description() != "" {
		fmt.Fprintf(&b, "%s\n\n", t.Description())
	}
	table := schema.NewPropertyTable(t.InputSchema())
	if table.Len() == 0 {
		b.WriteString("_No parameters_\n")
	} else {
		b.WriteString(uitable.RenderMarkdown(table))
	}
	return b.String()
}
