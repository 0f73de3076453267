// Package tld extracts registrable root labels from URLs using the public
// suffix list.
package tld

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

type Parser struct{}

// RootDomain returns the registrable domain minus its public suffix:
// "https://acmecorp.io/x" -> "acmecorp", "https://www.acme.co.uk" -> "acme".
// Errors apply to the given URL only; callers skip and continue.
func (Parser) RootDomain(rawurl string) (string, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return "", err
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", fmt.Errorf("no host in %q", rawurl)
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", err
	}
	suffix, _ := publicsuffix.PublicSuffix(host)
	root := strings.TrimSuffix(registrable, "."+suffix)
	if root == "" {
		return "", fmt.Errorf("no registrable label in %q", host)
	}
	return root, nil
}
