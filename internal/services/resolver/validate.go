package resolver

import (
	"context"
	"log"
	"strings"

	"sitehound/internal/domain"
)

var titleCleaner = strings.NewReplacer("\t", "", "\r", "", "\n", "", "\f", "")

// validateTitle fetches the winning page's title and checks that the first
// query token appears in it, case-insensitively. Fetch or parse failure
// degrades to "check" rather than suppressing a candidate the matcher
// already found.
func (s *Service) validateTitle(ctx context.Context, rawurl, token string) domain.ValidationStatus {
	title, err := s.fetcher.Title(ctx, rawurl)
	if err != nil {
		log.Printf("title fetch failed for %s: %v", rawurl, err)
		return domain.ValidationCheck
	}
	title = titleCleaner.Replace(title)
	if strings.Contains(strings.ToLower(title), strings.ToLower(token)) {
		return domain.ValidationFine
	}
	return domain.ValidationCheck
}
