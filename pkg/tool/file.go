package tool

import (
	"errors"
	"io"
	"log/slog"
	"os"

	// Packages
	toolschema "github.com/mutablelogic/go-toolschema"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Read decodes a YAML (or JSON) list of tool definitions. Tools and their
// properties are returned in document order.
func Read(r io.Reader) ([]Tool, error) {
	var defs []schema.ToolDefinition
	if err := yaml.NewDecoder(r).Decode(&defs); errors.Is(err, io.EOF) {
		return []Tool{}, nil
	} else if err != nil {
		return nil, toolschema.ErrBadParameter.Withf("tool definitions: %v", err)
	}

	result := make([]Tool, 0, len(defs))
	for _, def := range defs {
		result = append(result, FromDefinition(def))
	}
	return result, nil
}

// ReadFile decodes the tool definitions in a file
func ReadFile(path string) ([]Tool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tools, err := Read(f)
	if err != nil {
		return nil, err
	}
	slog.Debug("read tool definitions", "path", path, "count", len(tools))
	return tools, nil
}
