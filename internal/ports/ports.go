package ports

import (
	"context"

	"sitehound/internal/domain"
)

// Resolutions enqueues and reads resolution requests.
type Resolutions interface {
	Enqueue(ctx context.Context, query string) (resolutionID string, err error)
	Get(ctx context.Context, resolutionID string) (domain.Resolution, error)
}

// SearchProvider returns search-result URLs for a query in rank order.
// Provider-level failure is reported as an error; callers degrade to an
// empty result rather than aborting.
type SearchProvider interface {
	Search(ctx context.Context, query string, limit int) ([]string, error)
}

// PageFetcher retrieves the title text of a page.
type PageFetcher interface {
	Title(ctx context.Context, rawurl string) (string, error)
}

// DomainParser extracts the registrable root label from a URL, e.g.
// "https://acmecorp.io/x" -> "acmecorp". Failure applies to that URL only.
type DomainParser interface {
	RootDomain(rawurl string) (string, error)
}
