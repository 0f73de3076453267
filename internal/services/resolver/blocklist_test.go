package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlocklistBlocked(t *testing.T) {
	b := NewBlocklist(DefaultMarkers)

	blocked := []string{
		"https://linkedin.com/company/acmecorp",
		"https://www.linkedin.com/company/acmecorp",
		"https://Twitter.com/acme",
		"https://de.wikipedia.org/wiki/Acme",
		"https://www.google.com/search?q=acme",
		"https://jobs.acme-careers.com/openings",
		"https://github.com/acme/acme",
		"https://finance.yahoo.com/quote/ACME",
	}
	for _, u := range blocked {
		assert.True(t, b.Blocked(u), "expected blocked: %s", u)
	}

	passed := []string{
		"https://acmecorp.io/x",
		"https://acme-something.com",
		// marker in the path must not exclude the site
		"https://example.com/jobs",
		"https://example.com/?ref=facebook",
	}
	for _, u := range passed {
		assert.False(t, b.Blocked(u), "expected passed: %s", u)
	}
}

func TestBlocklistUnparseableURLPasses(t *testing.T) {
	b := NewBlocklist(DefaultMarkers)
	assert.False(t, b.Blocked("://not a url"))
	assert.False(t, b.Blocked("no-scheme-no-host"))
}

func TestBlocklistFilterKeepsOrder(t *testing.T) {
	b := NewBlocklist(DefaultMarkers)
	in := []string{
		"https://acmecorp.io/x",
		"https://linkedin.com/company/acmecorp",
		"https://acme-something.com",
		"https://youtube.com/watch?v=1",
		"https://zebra.example.com",
	}
	assert.Equal(t, []string{
		"https://acmecorp.io/x",
		"https://acme-something.com",
		"https://zebra.example.com",
	}, b.Filter(in))
}
