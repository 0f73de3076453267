// Package search provides SearchProvider adapters: a SearxNG JSON API
// client and a DuckDuckGo HTML scraper.
package search

const (
	userAgent   = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
	maxBodySize = 2 << 20 // 2 MB
)
