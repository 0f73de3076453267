package resolver

import (
	"strings"

	"sitehound/internal/domain"
)

// Match scores candidates against the query tokens with three
// decreasing-strictness rules: domain starts with all tokens concatenated
// (exact), with the first two tokens (semi), or with the first token alone
// (letter). Rules are tried strictly in that order and, within a rule, the
// first candidate in list order wins, so higher-ranked search results break
// ties. No match returns TierNone.
func Match(cands []domain.Candidate, tokens []string) (domain.Candidate, domain.MatchTier) {
	if len(cands) == 0 || len(tokens) == 0 {
		return domain.Candidate{}, domain.TierNone
	}

	semi := tokens
	if len(semi) > 2 {
		semi = tokens[:2]
	}
	rules := []struct {
		prefix string
		tier   domain.MatchTier
	}{
		{strings.ToLower(strings.Join(tokens, "")), domain.TierExact},
		{strings.ToLower(strings.Join(semi, "")), domain.TierSemi},
		{strings.ToLower(tokens[0]), domain.TierLetter},
	}

	for _, rule := range rules {
		if rule.prefix == "" {
			continue
		}
		for _, c := range cands {
			if strings.HasPrefix(strings.ToLower(c.Domain), rule.prefix) {
				return c, rule.tier
			}
		}
	}
	return domain.Candidate{}, domain.TierNone
}
