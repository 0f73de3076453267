package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"sitehound/internal/adapters/fetch"
	httpadapter "sitehound/internal/adapters/http"
	pg "sitehound/internal/adapters/postgres"
	"sitehound/internal/adapters/search"
	"sitehound/internal/adapters/tld"
	"sitehound/internal/config"
	"sitehound/internal/ports"
	resolutionsvc "sitehound/internal/services/resolutions"
	resolversvc "sitehound/internal/services/resolver"
	resolveworker "sitehound/internal/workers/resolverunner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("warning: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required for Postgres adapters")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer db.Close()

	var _ ports.ResolutionRepository = db
	var _ ports.JobRepository = db

	var provider ports.SearchProvider
	switch cfg.SearchProvider {
	case "searx":
		if cfg.SearxURL == "" {
			log.Fatal("SEARX_URL is required with SEARCH_PROVIDER=searx")
		}
		provider = search.NewSearx(cfg.SearxURL, cfg.FetchTimeout)
	default:
		provider = search.NewDuckDuckGo(cfg.FetchTimeout)
	}

	pipeline := resolversvc.New(provider, fetch.New(cfg.FetchTimeout), tld.Parser{},
		resolversvc.NewBlocklist(resolversvc.DefaultMarkers), cfg.SearchResults)
	resolutions := resolutionsvc.New(db)

	processor := resolveworker.PipelineProcessor{Pipeline: pipeline, Repo: db}
	srv := httpadapter.New(resolutions, db, processor)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	// Optional background job workers
	if cfg.ResolveWorkers > 0 {
		go resolveworker.Run(ctx, db, processor, cfg.ResolveWorkers, 500*time.Millisecond)
		log.Printf("resolve workers started: %d", cfg.ResolveWorkers)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- http.ListenAndServe(cfg.ListenAddr, r) }()
	log.Printf("listening on %s", cfg.ListenAddr)

	// graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutting down on %s", sig)
		cancel()
		time.Sleep(300 * time.Millisecond)
	case err := <-errCh:
		log.Fatal(fmt.Errorf("server error: %w", err))
	}
}
