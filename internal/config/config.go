package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Env            string
	ListenAddr     string
	DatabaseURL    string
	ResolveWorkers int
	SearchProvider string
	SearxURL       string
	SearchResults  int
	FetchTimeout   time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() (Config, error) {
	cfg := Config{
		Env:            getenv("APP_ENV", "development"),
		ListenAddr:     getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		ResolveWorkers: getenvInt("RESOLVE_WORKERS", 0),
		SearchProvider: getenv("SEARCH_PROVIDER", "duckduckgo"),
		SearxURL:       os.Getenv("SEARX_URL"),
		SearchResults:  getenvInt("SEARCH_RESULTS", 20),
		FetchTimeout:   time.Duration(getenvInt("FETCH_TIMEOUT_SECONDS", 15)) * time.Second,
	}
	if cfg.DatabaseURL == "" {
		// Not fatal for early local runs; warn via error value so callers can decide.
		return cfg, fmt.Errorf("DATABASE_URL not set")
	}
	return cfg, nil
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}
