package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug bool `name:"debug" help:"Enable debug output"`

	// Tool definitions
	File     string `name:"file" type:"existingfile" env:"TOOLSCHEMA_FILE" help:"Tool definition file (YAML or JSON)"`
	Provider string `name:"provider" env:"TOOLSCHEMA_PROVIDER" help:"Default provider for convert"`

	// Context
	ctx    context.Context
	tracer trace.Tracer
}

type CLI struct {
	Globals
	ProviderCommands
	ToolCommands
	Version VersionCommand `cmd:"" name:"version" help:"Print the version and build metadata."`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Convert tool definitions into provider tool lists"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.tracer = otel.Tracer(execName())

	// Debug logging goes to stderr
	if cli.Debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
