package main

import (
	"context"

	// Packages
	toolschema "github.com/mutablelogic/go-toolschema"
	tool "github.com/mutablelogic/go-toolschema/pkg/tool"
	attribute "go.opentelemetry.io/otel/attribute"
	codes "go.opentelemetry.io/otel/codes"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Toolkit reads the tool definition file into a toolkit. Every definition
// is validated on the way in.
func (g *Globals) Toolkit() (*tool.Toolkit, error) {
	if g.File == "" {
		return nil, toolschema.ErrBadParameter.With("missing tool definition file, use --file or TOOLSCHEMA_FILE")
	}
	tools, err := tool.ReadFile(g.File)
	if err != nil {
		return nil, err
	}
	return tool.NewToolkit(tools...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// startSpan opens a span for a command. The returned function ends the
// span, recording err when it is not nil.
func (g *Globals) startSpan(name string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := g.tracer.Start(g.ctx, name, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
