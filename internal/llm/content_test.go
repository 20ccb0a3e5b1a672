package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

type fakeClient struct {
	response string
	err      error
	prompt   string
	closed   bool
}

func (c *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	c.prompt = prompt
	return c.response, c.err
}

func (c *fakeClient) Close() error {
	c.closed = true
	return nil
}

func testContent() *types.ResumeContent {
	return &types.ResumeContent{
		Summary: "Software engineer with five years of backend experience.",
		Experience: []types.Experience{
			{Description: "Built payment services in Go."},
		},
		Skills: []types.SkillGroup{
			{Skills: []string{"Go", "PostgreSQL", "Docker"}},
		},
	}
}

func contentSchema(t *testing.T) string {
	t.Helper()
	path := schemas.ResolveSchemaPath(contentSchemaPath)
	require.NotEmpty(t, path)
	return path
}

func TestSuggest(t *testing.T) {
	client := &fakeClient{response: `{"suggestions": [{
		"section": "summary",
		"original_text": "Software engineer with five years of backend experience.",
		"suggested_text": "Backend engineer who cut p99 latency 40% across payment services.",
		"explanation": "Leads with a concrete outcome",
		"impact": "high"
	}]}`}
	s := NewSuggesterWithClient(client, contentSchema(t))

	suggestions, err := s.Suggest(context.Background(), testContent())
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "summary", suggestions[0].Section)
	assert.Equal(t, "high", suggestions[0].Impact)
}

func TestSuggest_EmptySuggestions(t *testing.T) {
	s := NewSuggesterWithClient(&fakeClient{response: `{"suggestions": []}`}, contentSchema(t))

	suggestions, err := s.Suggest(context.Background(), testContent())
	require.NoError(t, err)
	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}

func TestSuggest_SchemaViolationRejected(t *testing.T) {
	client := &fakeClient{response: `{"suggestions": [{"section": "hobbies", "impact": "severe"}]}`}
	s := NewSuggesterWithClient(client, contentSchema(t))

	_, err := s.Suggest(context.Background(), testContent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestSuggest_ClientError(t *testing.T) {
	cause := errors.New("model unavailable")
	s := NewSuggesterWithClient(&fakeClient{err: cause}, contentSchema(t))

	_, err := s.Suggest(context.Background(), testContent())
	assert.ErrorIs(t, err, cause)
}

func TestSuggest_SkipsValidationWithoutSchema(t *testing.T) {
	// An unresolvable schema path disables validation rather than failing
	// every request.
	client := &fakeClient{response: `{"suggestions": []}`}
	s := NewSuggesterWithClient(client, "")

	_, err := s.Suggest(context.Background(), testContent())
	assert.NoError(t, err)
}

func TestSuggesterClose(t *testing.T) {
	client := &fakeClient{}
	s := NewSuggesterWithClient(client, "")

	require.NoError(t, s.Close())
	assert.True(t, client.closed)
}

func TestBuildContentPrompt(t *testing.T) {
	prompt := buildContentPrompt(testContent())

	assert.Contains(t, prompt, "SUMMARY:\nSoftware engineer with five years of backend experience.")
	assert.Contains(t, prompt, "EXPERIENCE:\nBuilt payment services in Go.")
	assert.Contains(t, prompt, "SKILLS (): Go, PostgreSQL, Docker")
	// The sections replace the template placeholder.
	assert.NotContains(t, prompt, "{{.Sections}}")
}

func TestBuildContentPrompt_ClipsLongSections(t *testing.T) {
	content := &types.ResumeContent{Summary: strings.Repeat("x", maxPromptSectionLength+500)}

	prompt := buildContentPrompt(content)

	assert.Contains(t, prompt, strings.Repeat("x", maxPromptSectionLength))
	assert.NotContains(t, prompt, strings.Repeat("x", maxPromptSectionLength+1))
}

func TestSuggestPromptIncludesResume(t *testing.T) {
	client := &fakeClient{response: `{"suggestions": []}`}
	s := NewSuggesterWithClient(client, "")

	_, err := s.Suggest(context.Background(), testContent())
	require.NoError(t, err)
	assert.Contains(t, client.prompt, "Built payment services in Go.")
}
