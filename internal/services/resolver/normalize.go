package resolver

import "strings"

// Tokens splits a raw query into its alphanumeric runs, preserving order and
// case. Normalization is idempotent: tokenizing the joined output yields the
// same sequence.
func Tokens(query string) []string {
	var tokens []string
	var cur strings.Builder
	for _, r := range query {
		if isAlnum(r) {
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

// stripNonAlnum removes every character outside [A-Za-z0-9].
func stripNonAlnum(s string) string {
	return strings.Map(func(r rune) rune {
		if isAlnum(r) {
			return r
		}
		return -1
	}, s)
}

func isAlnum(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
