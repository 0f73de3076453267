// Package resolver turns a free-text organization name into its most
// plausible official website: normalize the query, search the web, drop
// known aggregator domains, match the remaining root domains against the
// name in three tiers, then sanity-check the winner's page title.
package resolver

import (
	"context"
	"log"
	"strings"

	"sitehound/internal/domain"
	"sitehound/internal/ports"
)

const defaultResultLimit = 20

type Service struct {
	search    ports.SearchProvider
	fetcher   ports.PageFetcher
	parser    ports.DomainParser
	blocklist Blocklist
	limit     int
}

func New(search ports.SearchProvider, fetcher ports.PageFetcher, parser ports.DomainParser, blocklist Blocklist, limit int) *Service {
	if limit <= 0 {
		limit = defaultResultLimit
	}
	return &Service{search: search, fetcher: fetcher, parser: parser, blocklist: blocklist, limit: limit}
}

// Resolve runs the pipeline for one query. Every stage short-circuits to the
// sentinel outcome when it yields nothing usable; collaborator failures
// degrade (empty search, per-URL skip, validation "check") and are never
// surfaced as errors.
func (s *Service) Resolve(ctx context.Context, query string) domain.Outcome {
	tokens := Tokens(query)
	// An empty token sequence would make every match pattern empty and
	// wrongly match everything downstream.
	if len(tokens) == 0 {
		return domain.NoResult()
	}

	urls, err := s.search.Search(ctx, strings.Join(tokens, " "), s.limit)
	if err != nil {
		log.Printf("search failed for %q: %v", query, err)
		urls = nil
	}
	if len(urls) == 0 {
		return domain.NoResult()
	}

	urls = s.blocklist.Filter(urls)
	if len(urls) == 0 {
		return domain.NoResult()
	}

	cands := s.extract(urls)
	best, tier := Match(cands, tokens)
	if tier == domain.TierNone {
		return domain.NoResult()
	}

	out := domain.Outcome{URL: best.URL, Domain: best.Domain, Tier: tier}
	out.Validation = s.validateTitle(ctx, best.URL, tokens[0])
	return out
}

// extract maps each URL to a (url, root domain) pair in a single pass. URLs
// the parser rejects are skipped, never kept as placeholders, so rank order
// and the url<->domain pairing survive intact.
func (s *Service) extract(urls []string) []domain.Candidate {
	cands := make([]domain.Candidate, 0, len(urls))
	for _, u := range urls {
		root, err := s.parser.RootDomain(u)
		if err != nil {
			log.Printf("domain parse skipped %s: %v", u, err)
			continue
		}
		root = stripNonAlnum(root)
		if root == "" {
			continue
		}
		cands = append(cands, domain.Candidate{URL: u, Domain: root})
	}
	return cands
}
