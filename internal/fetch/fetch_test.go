package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_ContentSelector(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs | About</nav>
		<div class="job-description">
			<h1>Senior Engineer</h1>
			<p>Build reliable services in Go.</p>
		</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractText(html, jobPostingSelectors())
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Engineer")
	assert.Contains(t, text, "Build reliable services in Go.")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting with no wrapper.</p><script>var x = 1;</script></body></html>`

	text, err := ExtractText(html, jobPostingSelectors())
	require.NoError(t, err)

	assert.Equal(t, "Plain posting with no wrapper.", text)
}

func TestExtractText_RemovesNoise(t *testing.T) {
	html := `<html><body><main>
		<div class="sidebar">Related jobs</div>
		<div class="cookie-banner">We use cookies</div>
		<p>Actual description</p>
	</main></body></html>`

	text, err := ExtractText(html, jobPostingSelectors())
	require.NoError(t, err)

	assert.Equal(t, "Actual description", text)
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", ".job__description.body"},
		{"https://jobs.lever.co/acme/abc-def", ".posting-page"},
		{"https://acme.wd5.myworkdayjobs.com/careers/job/123", "[data-automation-id='jobPostingDescription']"},
	}
	for _, tt := range tests {
		selectors := detectPlatform(tt.url)
		require.NotEmpty(t, selectors, tt.url)
		assert.Equal(t, tt.want, selectors[0])
	}

	assert.Nil(t, detectPlatform("https://example.com/careers/123"))
}

func TestContentSelectors_PlatformFirst(t *testing.T) {
	selectors := contentSelectors("https://boards.greenhouse.io/acme/jobs/123")
	assert.Equal(t, ".job__description.body", selectors[0])
	assert.Contains(t, selectors, "main")

	generic := contentSelectors("https://example.com/jobs/123")
	assert.Equal(t, jobPostingSelectors(), generic)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("   \n  "))
	assert.True(t, ShouldUseBrowser(strings.Repeat("x", MinContentLength-1)))
	assert.False(t, ShouldUseBrowser(strings.Repeat("x", MinContentLength)))
}

func TestCleanWhitespace(t *testing.T) {
	in := "  Senior   Engineer  \n\n\n   Requirements:  \n\tGo\t experience \n"
	assert.Equal(t, "Senior Engineer\nRequirements:\nGo experience", cleanWhitespace(in))
}

func TestJobDescription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><article>Backend role requiring Go and Postgres.</article></body></html>`))
	}))
	defer srv.Close()

	text, err := JobDescription(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "Backend role requiring Go and Postgres.", text)
}

func TestJobDescription_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobDescription(context.Background(), srv.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, srv.URL, fetchErr.URL)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestJobDescription_InvalidURL(t *testing.T) {
	_, err := JobDescription(context.Background(), "not-a-url", nil)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestJobDescription_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := JobDescription(ctx, srv.URL, nil)
	require.Error(t, err)
}

func TestFetchError_Unwrap(t *testing.T) {
	cause := context.Canceled
	err := &Error{URL: "https://example.com", Message: "HTTP request failed", Cause: cause}

	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "https://example.com")

	noCause := &Error{URL: "https://example.com", Message: "HTTP status 500"}
	assert.Nil(t, noCause.Unwrap())
	assert.Equal(t, "fetch error for https://example.com: HTTP status 500", noCause.Error())
}
