package toolschema_test

import (
	"errors"
	"testing"

	// Packages
	toolschema "github.com/mutablelogic/go-toolschema"
	assert "github.com/stretchr/testify/assert"
)

func Test_error_001(t *testing.T) {
	assert := assert.New(t)

	err := toolschema.ErrSchemaInconsistency.Withf("%s: %q", "$", "missing")
	assert.True(errors.Is(err, toolschema.ErrSchemaInconsistency))
	assert.False(errors.Is(err, toolschema.ErrBadParameter))
	assert.Equal(`schema inconsistency: $: "missing"`, err.Error())

	err = toolschema.ErrNotFound.With("provider ", "x")
	assert.ErrorIs(err, toolschema.ErrNotFound)
	assert.Equal("not found: provider x", err.Error())

	assert.Equal("error code 99", toolschema.Err(99).Error())
}
