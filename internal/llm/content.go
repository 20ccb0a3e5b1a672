package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// contentSchemaPath is the JSON Schema the model output must satisfy.
const contentSchemaPath = "schemas/content_suggestions.schema.json"

// maxPromptSectionLength caps how much of each resume section is sent to the
// model.
const maxPromptSectionLength = 2000

// Suggester produces content improvement suggestions for a parsed resume.
type Suggester interface {
	Suggest(ctx context.Context, content *types.ResumeContent) ([]types.ContentSuggestion, error)
	Close() error
}

// GeminiSuggester implements Suggester using a generative model client.
type GeminiSuggester struct {
	client     Client
	schemaPath string
}

// NewGeminiSuggester creates a content suggester backed by Gemini.
func NewGeminiSuggester(ctx context.Context, apiKey string) (*GeminiSuggester, error) {
	client, err := NewGeminiClient(ctx, apiKey, "")
	if err != nil {
		return nil, fmt.Errorf("failed to create suggester client: %w", err)
	}
	return &GeminiSuggester{
		client:     client,
		schemaPath: schemas.ResolveSchemaPath(contentSchemaPath),
	}, nil
}

// NewSuggesterWithClient creates a suggester over an existing client; used in
// tests and for alternative providers.
func NewSuggesterWithClient(client Client, schemaPath string) *GeminiSuggester {
	return &GeminiSuggester{client: client, schemaPath: schemaPath}
}

// suggestionsEnvelope is the expected JSON shape of the model response.
type suggestionsEnvelope struct {
	Suggestions []types.ContentSuggestion `json:"suggestions"`
}

// Suggest asks the model for improvement suggestions on the resume's summary,
// experience and skills, validates the response against the content
// suggestions schema, and returns typed records.
func (s *GeminiSuggester) Suggest(ctx context.Context, content *types.ResumeContent) ([]types.ContentSuggestion, error) {
	prompt := buildContentPrompt(content)

	responseText, err := s.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("content suggestion generation failed: %w", err)
	}

	if s.schemaPath != "" {
		if err := schemas.ValidateBytes(s.schemaPath, []byte(responseText)); err != nil {
			return nil, fmt.Errorf("content suggestion response failed schema validation: %w", err)
		}
	}

	var envelope suggestionsEnvelope
	if err := json.Unmarshal([]byte(responseText), &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse content suggestion response: %w", err)
	}

	if envelope.Suggestions == nil {
		return []types.ContentSuggestion{}, nil
	}
	return envelope.Suggestions, nil
}

// Close releases the underlying client.
func (s *GeminiSuggester) Close() error {
	return s.client.Close()
}

// buildContentPrompt constructs the analysis prompt from the structured
// resume, truncating long sections.
func buildContentPrompt(content *types.ResumeContent) string {
	template := prompts.MustGet("content.json", "content-suggestions")

	var sb strings.Builder
	if content.Summary != "" {
		sb.WriteString("SUMMARY:\n")
		sb.WriteString(clip(content.Summary))
		sb.WriteString("\n\n")
	}
	for _, exp := range content.Experience {
		sb.WriteString("EXPERIENCE:\n")
		sb.WriteString(clip(exp.Description))
		sb.WriteString("\n\n")
	}
	for _, group := range content.Skills {
		sb.WriteString("SKILLS (")
		sb.WriteString(group.Category)
		sb.WriteString("): ")
		sb.WriteString(clip(strings.Join(group.Skills, ", ")))
		sb.WriteString("\n")
	}

	return prompts.Format(template, map[string]string{"Sections": sb.String()})
}

func clip(s string) string {
	if len(s) > maxPromptSectionLength {
		return s[:maxPromptSectionLength]
	}
	return s
}
