package main

import (
	"fmt"
	"os"

	// Packages
	toolschema "github.com/mutablelogic/go-toolschema"
	opt "github.com/mutablelogic/go-toolschema/pkg/opt"
	provider "github.com/mutablelogic/go-toolschema/pkg/provider"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ProviderCommands struct {
	ListProviders ListProvidersCommand `cmd:"" name:"providers" help:"List providers." group:"PROVIDER"`
	Convert       ConvertCommand       `cmd:"" name:"convert" help:"Print the tool list for a provider as JSON." group:"PROVIDER"`
}

type ListProvidersCommand struct{}

type ConvertCommand struct {
	Provider string `arg:"" name:"provider" optional:"" help:"Provider name (defaults to --provider)"`
	Strict   bool   `name:"strict" help:"Emit function tools in strict mode, where supported"`
	Indent   bool   `name:"indent" help:"Indent the JSON output"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListProvidersCommand) Run(ctx *Globals) (err error) {
	_, endSpan := ctx.startSpan("ListProvidersCommand")
	defer func() { endSpan(err) }()

	for _, name := range provider.Names() {
		fmt.Println(name)
	}
	return nil
}

func (cmd *ConvertCommand) Run(ctx *Globals) (err error) {
	name := cmd.Provider
	if name == "" {
		name = ctx.Provider
	}
	if name == "" {
		return toolschema.ErrBadParameter.With("missing provider")
	}

	// OTEL
	_, endSpan := ctx.startSpan("ConvertCommand",
		attribute.String("provider", name),
		attribute.Bool("strict", cmd.Strict),
	)
	defer func() { endSpan(err) }()

	toolkit, err := ctx.Toolkit()
	if err != nil {
		return err
	}

	// Convert the tools
	data, err := provider.Marshal(name, toolkit.Tools(), opt.WithStrict(cmd.Strict))
	if err != nil {
		return err
	}
	if cmd.Indent {
		data, err = indent(data)
		if err != nil {
			return err
		}
	}

	// Print
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
