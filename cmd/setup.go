package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mgreer/arc-tracker/internal/config"
	"github.com/mgreer/arc-tracker/internal/logging"
	"github.com/mgreer/arc-tracker/internal/rest"
	"github.com/mgreer/arc-tracker/internal/status"
	"github.com/mgreer/arc-tracker/internal/store"
)

// openStore loads configuration, initializes logging, and loads the
// collection. Every command starts here.
func openStore(ctx context.Context) *store.Store {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logging.InitializeLogger(cfg)

	client := rest.NewClient(cfg)
	st := store.New(client, cfg.SeedFallback)

	if err := st.Load(ctx); err != nil {
		log.Fatalf("Error loading collection: %v", err)
	}
	if st.State() == store.Degraded {
		fmt.Println("WARNING: backing store unreachable; showing demo data (check base_url and api_key).")
	}
	return st
}

// asOfDate resolves the --as-of flag, defaulting to today.
func asOfDate() time.Time {
	if asOfRaw == "" {
		return time.Now()
	}
	t, err := status.ParseDate(asOfRaw)
	if err != nil {
		log.Fatalf("Invalid --as-of date %q: must be YYYY-MM-DD", asOfRaw)
	}
	return t
}
