package grammar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLTServer returns a test server speaking the LanguageTool /v2/check
// protocol, handing each request's form values to the given responder.
func newLTServer(t *testing.T, responder func(t *testing.T, r *http.Request) any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/check", r.URL.Path)
		require.NoError(t, r.ParseForm())

		response := responder(t, r)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
}

func ltMatchJSON(message, category, context string, replacements ...string) map[string]any {
	reps := make([]map[string]string, 0, len(replacements))
	for _, r := range replacements {
		reps = append(reps, map[string]string{"value": r})
	}
	return map[string]any{
		"message":      message,
		"offset":       2,
		"replacements": reps,
		"context":      map[string]any{"text": context},
		"rule":         map[string]any{"category": map[string]any{"id": category}},
	}
}

func TestNewLanguageToolChecker(t *testing.T) {
	checker, err := NewLanguageToolChecker("http://localhost:8081/", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8081", checker.baseURL)
	assert.Equal(t, "en-US", checker.language)

	_, err = NewLanguageToolChecker("", nil)
	assert.Error(t, err)
}

func TestCheck_MapsMatches(t *testing.T) {
	server := newLTServer(t, func(t *testing.T, r *http.Request) any {
		assert.Equal(t, "I recieve mail.", r.Form.Get("text"))
		assert.Equal(t, "en-US", r.Form.Get("language"))
		return map[string]any{"matches": []any{
			ltMatchJSON("Possible spelling mistake found.", "TYPOS", "I recieve mail.",
				"receive", "relieve", "reprieve", "retrieve"),
		}}
	})
	defer server.Close()

	checker, err := NewLanguageToolChecker(server.URL, nil)
	require.NoError(t, err)
	defer func() { _ = checker.Close() }()

	issues, err := checker.Check(context.Background(), "I recieve mail.")
	require.NoError(t, err)

	require.Len(t, issues, 1)
	issue := issues[0]
	assert.Equal(t, "Possible spelling mistake found.", issue.Message)
	assert.Equal(t, "I recieve mail.", issue.Text)
	assert.Equal(t, "TYPOS", issue.Category)
	assert.Equal(t, 2, issue.Offset)
	// Only the top three replacements are kept.
	assert.Equal(t, []string{"receive", "relieve", "reprieve"}, issue.Suggestions)
}

func TestCheck_FiltersNoisyCategories(t *testing.T) {
	server := newLTServer(t, func(t *testing.T, _ *http.Request) any {
		return map[string]any{"matches": []any{
			ltMatchJSON("Smart quote", "TYPOGRAPHY", "ctx"),
			ltMatchJSON("Sentence case", "CASING", "ctx"),
			ltMatchJSON("Agreement error", "GRAMMAR", "ctx"),
		}}
	})
	defer server.Close()

	checker, err := NewLanguageToolChecker(server.URL, nil)
	require.NoError(t, err)

	issues, err := checker.Check(context.Background(), "Some resume text.")
	require.NoError(t, err)

	require.Len(t, issues, 1)
	assert.Equal(t, "GRAMMAR", issues[0].Category)
}

func TestCheck_CapsIssueCount(t *testing.T) {
	server := newLTServer(t, func(t *testing.T, _ *http.Request) any {
		matches := make([]any, MaxIssues+20)
		for i := range matches {
			matches[i] = ltMatchJSON("err", "GRAMMAR", "ctx")
		}
		return map[string]any{"matches": matches}
	})
	defer server.Close()

	checker, err := NewLanguageToolChecker(server.URL, nil)
	require.NoError(t, err)

	issues, err := checker.Check(context.Background(), "text")
	require.NoError(t, err)
	assert.Len(t, issues, MaxIssues)
}

func TestCheck_TruncatesLongText(t *testing.T) {
	server := newLTServer(t, func(t *testing.T, r *http.Request) any {
		assert.Len(t, r.Form.Get("text"), MaxCheckTextLength)
		return map[string]any{"matches": []any{}}
	})
	defer server.Close()

	checker, err := NewLanguageToolChecker(server.URL, nil)
	require.NoError(t, err)

	issues, err := checker.Check(context.Background(), strings.Repeat("a", MaxCheckTextLength+500))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestCheck_EmptyTextSkipsRequest(t *testing.T) {
	called := false
	server := newLTServer(t, func(t *testing.T, _ *http.Request) any {
		called = true
		return map[string]any{"matches": []any{}}
	})
	defer server.Close()

	checker, err := NewLanguageToolChecker(server.URL, nil)
	require.NoError(t, err)

	issues, err := checker.Check(context.Background(), "   \n ")
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.False(t, called)
}

func TestCheck_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "too busy", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	checker, err := NewLanguageToolChecker(server.URL, nil)
	require.NoError(t, err)

	_, err = checker.Check(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestCheck_RespectsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"matches":[]}`))
	}))
	defer server.Close()

	checker, err := NewLanguageToolChecker(server.URL, &Options{Timeout: time.Second})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = checker.Check(ctx, "text")
	assert.Error(t, err)
}

func TestCheck_CustomLanguage(t *testing.T) {
	server := newLTServer(t, func(t *testing.T, r *http.Request) any {
		assert.Equal(t, "de-DE", r.Form.Get("language"))
		return map[string]any{"matches": []any{}}
	})
	defer server.Close()

	checker, err := NewLanguageToolChecker(server.URL, &Options{Language: "de-DE"})
	require.NoError(t, err)

	_, err = checker.Check(context.Background(), "Etwas Text.")
	require.NoError(t, err)
}
