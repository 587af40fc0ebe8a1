package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/danielpatrickdp/statespace/go-core/internal/catalog"
	"github.com/danielpatrickdp/statespace/go-core/internal/config"
	"github.com/danielpatrickdp/statespace/go-core/internal/store"
)

// #region main
func main() {
	dbPath := flag.String("db", envOr("STATESPACE_DB", "statespace.db"), "path to statespace.db")
	configPath := flag.String("config", "", "path to spaces.yaml")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "usage: bootstrap --config path/to/spaces.yaml [--db path/to/statespace.db]")
		os.Exit(2)
	}

	fmt.Println("=== State Space Bootstrap ===")
	fmt.Printf("  DB: %s | Config: %s\n", *dbPath, *configPath)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	cat, err := catalog.NewDomainCatalog(st.DB())
	if err != nil {
		log.Fatalf("failed to init domain catalog: %v", err)
	}

	created := 0
	for _, def := range cfg.Spaces {
		if err := cat.Add(def.Name, def.Labels); err != nil {
			log.Fatalf("register domain %s: %v", def.Name, err)
		}

		// Idempotent: a space that already has an active version is skipped.
		if _, err := st.GetCurrent(def.Name); err == nil {
			fmt.Printf("  %-16s already bootstrapped, skipping\n", def.Name)
			continue
		}

		sp, err := def.Build()
		if err != nil {
			log.Fatalf("build space %s: %v", def.Name, err)
		}
		rec, err := st.CreateInitialSpace(store.Snapshot(def.Name, sp))
		if err != nil {
			log.Fatalf("create initial state for %s: %v", def.Name, err)
		}
		created++
		fmt.Printf("  %-16s version=%s  %s\n", def.Name, rec.VersionID, sp)
	}

	fmt.Printf("Done. %d of %d spaces created.\n", created, len(cfg.Spaces))
}
// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
// #endregion helpers
