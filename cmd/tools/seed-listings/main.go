// cmd/tools/seed-listings/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"deal-analyzer/internal/common/config"
	"deal-analyzer/internal/common/database"
	"deal-analyzer/internal/listings"
)

// seed-listings pre-populates the listings table (and the search index
// when enabled) so a fresh deployment serves data without generating
// pages on demand.
func main() {
	pages := flag.Int("pages", 5, "Number of pages to seed")
	limit := flag.Int("limit", 10, "Listings per page")
	seed := flag.Int64("seed", 0, "Generator seed (0 uses the configured seed)")
	configPath := flag.String("config", "", "Config file path (default: standard search paths)")
	flag.Parse()

	if *pages < 1 || *limit < 1 {
		fmt.Println("Error: pages and limit must be positive.")
		flag.Usage()
		os.Exit(1)
	}

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = cfg.Listings.Seed
	}

	ctx := context.Background()

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		fmt.Printf("Error connecting to postgres: %v\n", err)
		os.Exit(1)
	}
	defer pg.Close()

	if err := pg.Ping(ctx); err != nil {
		fmt.Printf("Error pinging postgres: %v\n", err)
		os.Exit(1)
	}

	repo := listings.NewRepository(pg.DB)
	if err := repo.EnsureSchema(ctx); err != nil {
		fmt.Printf("Error creating schema: %v\n", err)
		os.Exit(1)
	}

	var search *listings.SearchIndex
	if cfg.Listings.SearchEnabled {
		esClient, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			fmt.Printf("Error connecting to elasticsearch: %v\n", err)
			os.Exit(1)
		}
		search = listings.NewSearchIndex(esClient.Client, cfg.Listings.SearchIndex)
	}

	gen := listings.NewGenerator(*seed)
	total := 0
	for page := 1; page <= *pages; page++ {
		props := gen.Page(page, *limit)
		if err := repo.SavePage(ctx, page, props); err != nil {
			fmt.Printf("Error saving page %d: %v\n", page, err)
			os.Exit(1)
		}
		if search != nil {
			if err := search.IndexPage(ctx, props); err != nil {
				fmt.Printf("Error indexing page %d: %v\n", page, err)
				os.Exit(1)
			}
		}
		total += len(props)
	}

	fmt.Printf("Seeded %d listings across %d pages (seed %d)\n", total, *pages, *seed)
}
