package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// MaxCheckTextLength caps the text sent to the service; longer documents are
// truncated rather than rejected.
const MaxCheckTextLength = 50000

// MaxIssues caps the number of issues returned from a single check.
const MaxIssues = 50

// maxReplacements is the number of replacement suggestions kept per issue.
const maxReplacements = 3

// DefaultTimeout is the default request timeout for the LanguageTool API.
const DefaultTimeout = 30 * time.Second

// ignoredCategories are rule categories too noisy for resume text: resume
// formatting and header casing are intentional.
var ignoredCategories = map[string]bool{
	"TYPOGRAPHY": true,
	"CASING":     true,
}

// LanguageToolChecker checks grammar via the LanguageTool HTTP API.
type LanguageToolChecker struct {
	baseURL  string
	language string
	client   *http.Client
}

// Options configures a LanguageToolChecker.
type Options struct {
	Language string
	Timeout  time.Duration
}

// NewLanguageToolChecker creates a checker against the given LanguageTool
// endpoint, e.g. "http://localhost:8081" or the hosted API base URL.
func NewLanguageToolChecker(baseURL string, opts *Options) (*LanguageToolChecker, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("LanguageTool base URL is required")
	}
	language := "en-US"
	timeout := DefaultTimeout
	if opts != nil {
		if opts.Language != "" {
			language = opts.Language
		}
		if opts.Timeout > 0 {
			timeout = opts.Timeout
		}
	}
	return &LanguageToolChecker{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		language: language,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// ltResponse mirrors the LanguageTool /v2/check response shape.
type ltResponse struct {
	Matches []ltMatch `json:"matches"`
}

type ltMatch struct {
	Message      string `json:"message"`
	Offset       int    `json:"offset"`
	Replacements []struct {
		Value string `json:"value"`
	} `json:"replacements"`
	Context struct {
		Text string `json:"text"`
	} `json:"context"`
	Rule struct {
		Category struct {
			ID string `json:"id"`
		} `json:"category"`
	} `json:"rule"`
}

// Check sends text to the LanguageTool API and converts the matches into
// GrammarIssue records, filtering noisy categories and capping the result.
func (c *LanguageToolChecker) Check(ctx context.Context, text string) ([]types.GrammarIssue, error) {
	if strings.TrimSpace(text) == "" {
		return []types.GrammarIssue{}, nil
	}

	if len(text) > MaxCheckTextLength {
		log.Printf("grammar.Check: text truncated from %d to %d characters", len(text), MaxCheckTextLength)
		text = text[:MaxCheckTextLength]
	}

	form := url.Values{}
	form.Set("text", text)
	form.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/check",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create grammar check request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("grammar check request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("grammar check returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed ltResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode grammar check response: %w", err)
	}

	issues := make([]types.GrammarIssue, 0, len(parsed.Matches))
	for _, match := range parsed.Matches {
		if ignoredCategories[match.Rule.Category.ID] {
			continue
		}

		suggestions := make([]string, 0, maxReplacements)
		for _, replacement := range match.Replacements {
			suggestions = append(suggestions, replacement.Value)
			if len(suggestions) == maxReplacements {
				break
			}
		}

		issues = append(issues, types.GrammarIssue{
			Text:        match.Context.Text,
			Message:     match.Message,
			Suggestions: suggestions,
			Category:    match.Rule.Category.ID,
			Offset:      match.Offset,
		})

		if len(issues) == MaxIssues {
			log.Printf("grammar.Check: reached max issues limit (%d)", MaxIssues)
			break
		}
	}

	log.Printf("grammar.Check: %d issues after filtering (%d raw matches)", len(issues), len(parsed.Matches))
	return issues, nil
}

// Close releases resources held by the checker. The HTTP client holds no
// state that needs teardown, but callers own the checker lifecycle and are
// expected to call Close when done with it.
func (c *LanguageToolChecker) Close() error {
	c.client.CloseIdleConnections()
	return nil
}
