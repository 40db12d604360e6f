package version_test

import (
	"encoding/json"
	"runtime"
	"testing"

	// Packages
	version "github.com/mutablelogic/go-toolschema/pkg/version"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func Test_version_001(t *testing.T) {
	assert := assert.New(t)

	info := version.New("toolschema")
	assert.Equal("toolschema", info.Name)
	assert.Equal(runtime.Version(), info.Compiler)
	assert.NotEmpty(info.Version)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(version.JSON("toolschema"), &decoded))
	assert.Equal("toolschema", decoded["name"])
	assert.Equal(info.Version, decoded["version"])
}

func Test_version_002(t *testing.T) {
	assert := assert.New(t)

	version.GitTag = "v1.2.3"
	defer func() { version.GitTag = "" }()
	assert.Equal("v1.2.3", version.Version())
	assert.Equal("v1.2.3", version.New("x").Tag)
}
