package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func testDuckDuckGo(endpoint string) *DuckDuckGo {
	return &DuckDuckGo{
		endpoint: endpoint,
		client:   &http.Client{Timeout: time.Second},
		limiter:  rate.NewLimiter(rate.Inf, 1),
	}
}

func TestDuckDuckGoSearch(t *testing.T) {
	page := `<html><body>
		<a class="result__a" href="//duckduckgo.com/l/?uddg=` + url.QueryEscape("https://acmecorp.io/x") + `&rut=abc">Acme Corp</a>
		<a class="result__a" href="https://acme-something.com">Acme Something</a>
		<a class="result__a">no href</a>
		<a class="other" href="https://ignored.com">nav</a>
	</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Acme Corp", r.PostForm.Get("q"))
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	urls, err := testDuckDuckGo(srv.URL).Search(context.Background(), "Acme Corp", 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://acmecorp.io/x", "https://acme-something.com"}, urls)
}

func TestDuckDuckGoSearchLimit(t *testing.T) {
	page := `<html><body>
		<a class="result__a" href="https://a.com">a</a>
		<a class="result__a" href="https://b.com">b</a>
		<a class="result__a" href="https://c.com">c</a>
	</body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	urls, err := testDuckDuckGo(srv.URL).Search(context.Background(), "acme", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, urls)
}

func TestDuckDuckGoSearchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := testDuckDuckGo(srv.URL).Search(context.Background(), "acme", 20)
	assert.Error(t, err)
}

func TestResultURL(t *testing.T) {
	assert.Equal(t, "https://acmecorp.io/x",
		resultURL("//duckduckgo.com/l/?uddg="+url.QueryEscape("https://acmecorp.io/x")))
	assert.Equal(t, "https://plain.com/page", resultURL("https://plain.com/page"))
	assert.Equal(t, "", resultURL("javascript:void(0)"))
	assert.Equal(t, "", resultURL("/relative/only"))
}
