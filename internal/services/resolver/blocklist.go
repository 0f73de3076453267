package resolver

import (
	"net/url"
	"strings"
)

// DefaultMarkers lists domains that are never an organization's own website:
// social/professional networks, company-intelligence aggregators, video
// platforms, search engines, financial/news sites, job boards and code hosts.
var DefaultMarkers = []string{
	"linkedin.com",
	"twitter",
	"owler",
	"youtube",
	"manta.com",
	"cbinsights.com",
	"opensecrets.org",
	"pitchbook.com",
	"buzzfile.com",
	"massinvestordatabase.com",
	"bciq.biocentury.com",
	"facebook",
	"finance.yahoo.com",
	"wikipedia",
	"google",
	"bloomberg.com",
	"marketwatch.com",
	"ft.com",
	"cnn.com",
	"wsj.com",
	"economist.com",
	"crunchbase.com",
	"xing",
	"glassdoor",
	"jobs",
	"workable.com",
	"github.com",
}

// Blocklist excludes candidate URLs whose host matches a known non-target
// site. It is a denylist: everything not matched passes through in order,
// trusting the search provider's ranking.
type Blocklist struct {
	markers []string
}

func NewBlocklist(markers []string) Blocklist {
	lowered := make([]string, len(markers))
	for i, m := range markers {
		lowered[i] = strings.ToLower(m)
	}
	return Blocklist{markers: lowered}
}

// Blocked reports whether the URL's hostname matches a marker. Matching is
// limited to the host, so a path segment like /jobs does not exclude an
// otherwise valid site. Unparseable URLs pass; the extractor drops them.
func (b Blocklist) Blocked(rawurl string) bool {
	u, err := url.Parse(rawurl)
	if err != nil || u.Hostname() == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, m := range b.markers {
		if strings.Contains(host, m) {
			return true
		}
	}
	return false
}

// Filter returns the URLs not matched by the blocklist, order preserved.
func (b Blocklist) Filter(urls []string) []string {
	kept := make([]string, 0, len(urls))
	for _, u := range urls {
		if !b.Blocked(u) {
			kept = append(kept, u)
		}
	}
	return kept
}
