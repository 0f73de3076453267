// Command resolve runs the resolution pipeline once for a single
// organization name and prints the result, without a server or database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"sitehound/internal/adapters/fetch"
	"sitehound/internal/adapters/search"
	"sitehound/internal/adapters/tld"
	"sitehound/internal/ports"
	"sitehound/internal/services/resolver"
)

func main() {
	var (
		query        = flag.String("query", "", "organization name to resolve")
		providerName = flag.String("provider", "duckduckgo", "search provider: duckduckgo or searx")
		searxURL     = flag.String("searx-url", "", "base URL of a SearxNG instance (with -provider searx)")
		limit        = flag.Int("limit", 20, "search results to consider")
		timeout      = flag.Duration("timeout", 15*time.Second, "per-request timeout")
	)
	flag.Parse()
	if *query == "" {
		flag.Usage()
		os.Exit(2)
	}

	var provider ports.SearchProvider
	switch *providerName {
	case "searx":
		if *searxURL == "" {
			log.Fatal("-searx-url is required with -provider searx")
		}
		provider = search.NewSearx(*searxURL, *timeout)
	case "duckduckgo":
		provider = search.NewDuckDuckGo(*timeout)
	default:
		log.Fatalf("unknown provider %q", *providerName)
	}

	pipeline := resolver.New(provider, fetch.New(*timeout), tld.Parser{},
		resolver.NewBlocklist(resolver.DefaultMarkers), *limit)

	out := pipeline.Resolve(context.Background(), *query)
	result, status := out.Strings()
	fmt.Printf("result: %s\nstatus: %s\n", result, status)
}
