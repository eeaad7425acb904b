package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSchema(t *testing.T) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "schemas", "gosctl-v1.schema.json"))
	require.NoError(t, err, "failed to read schema file")
	SetSchema(data)
}

func TestValidate_DefaultConfigIsValid(t *testing.T) {
	loadSchema(t)

	result, err := Validate(Default())
	require.NoError(t, err)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
}

func TestValidateYAML_BadBranchType(t *testing.T) {
	loadSchema(t)

	result, err := ValidateYAML([]byte("branch: 42\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "branch", result.Errors[0].Field)
}

func TestValidateYAML_UnknownField(t *testing.T) {
	loadSchema(t)

	result, err := ValidateYAML([]byte("banana: true\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidateYAML_AbsoluteTargetDirRejected(t *testing.T) {
	loadSchema(t)

	result, err := ValidateYAML([]byte("targetDir: /etc\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidate_SchemaNotLoaded(t *testing.T) {
	saved := GetSchema()
	defer SetSchema(saved)

	SetSchema(nil)
	_, err := Validate(Default())
	assert.Error(t, err)
}
