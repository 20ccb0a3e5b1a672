package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "score"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"score": {"type": "number", "minimum": 0, "maximum": 100}
	},
	"additionalProperties": false
}`

func writeTestSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(testSchema), 0o644))
	return path
}

func TestValidateBytes_Valid(t *testing.T) {
	path := writeTestSchema(t)

	err := ValidateBytes(path, []byte(`{"name": "grammar", "score": 87.5}`))
	assert.NoError(t, err)
}

func TestValidateBytes_Violations(t *testing.T) {
	path := writeTestSchema(t)

	err := ValidateBytes(path, []byte(`{"name": "", "score": 120, "extra": true}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 3)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateBytes_MissingRequiredField(t *testing.T) {
	path := writeTestSchema(t)

	err := ValidateBytes(path, []byte(`{"name": "grammar"}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Errors[0].Message, "score")
}

func TestValidateBytes_SchemaNotFound(t *testing.T) {
	err := ValidateBytes(filepath.Join(t.TempDir(), "missing.schema.json"), []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestValidateBytes_MalformedDocument(t *testing.T) {
	path := writeTestSchema(t)

	err := ValidateBytes(path, []byte(`{"name": `))

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.Path)
}

func TestValidateString(t *testing.T) {
	assert.NoError(t, ValidateString(testSchema, `{"name": "ats", "score": 55}`))

	err := ValidateString(testSchema, `{"score": -1}`)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestContentSuggestionsSchema(t *testing.T) {
	path := ResolveSchemaPath(filepath.Join("schemas", "content_suggestions.schema.json"))
	require.NotEmpty(t, path, "content suggestions schema should be resolvable from the package directory")

	valid := `{"suggestions": [{
		"section": "summary",
		"original_text": "I done good work",
		"suggested_text": "Delivered measurable results across three product launches",
		"explanation": "Quantifies impact and fixes the grammar",
		"impact": "high"
	}]}`
	assert.NoError(t, ValidateBytes(path, []byte(valid)))

	invalid := `{"suggestions": [{"section": "hobbies", "impact": "critical"}]}`
	var validationErr *ValidationError
	assert.ErrorAs(t, ValidateBytes(path, []byte(invalid)), &validationErr)
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath(filepath.Join("schemas", "does-not-exist.schema.json")))
}
