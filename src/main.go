package main

import (
	"log"
	"net/http"
	"time"

	"dompet-gateway/src/api"
	"dompet-gateway/src/auth"
	"dompet-gateway/src/config"
	"dompet-gateway/src/db"
	"dompet-gateway/src/directory"
	"dompet-gateway/src/metrics"
	"dompet-gateway/src/provider"
	"dompet-gateway/src/sandbox"
	"dompet-gateway/src/sync"
	"dompet-gateway/src/tokenstore"
)

func main() {
	cfg := config.Load()

	// Internal ledger
	ledger, err := db.Connect(cfg.LedgerDBPath)
	if err != nil {
		log.Fatalf("Ledger connection failed: %v", err)
	}
	defer ledger.Close()

	cache, err := db.NewCache()
	if err != nil {
		log.Fatalf("Cache init failed: %v", err)
	}

	// The token stores are the only shared mutable state; everything else
	// receives them by injection.
	publicTokens := tokenstore.New()
	accessTokens := tokenstore.New()

	data := sandbox.Seed()
	dir := directory.Seed()
	sandboxSvc := sandbox.NewService(data, publicTokens)
	sandboxSvc.SeedPublicTokens()

	authority := auth.NewAuthority(
		cfg.ClientID,
		[]byte(cfg.ClientSecretHash),
		[]byte(cfg.JWTSecret),
		time.Duration(cfg.AppTokenTTLSeconds)*time.Second,
		accessTokens,
	)
	exchanger := auth.NewExchanger(data, publicTokens, accessTokens)
	prov := provider.NewSandboxProvider(data)
	engine := sync.NewEngine(prov, ledger, cache)
	m := metrics.NewMetrics("dompet")

	router := api.NewRouter(authority, exchanger, prov, engine, dir, sandboxSvc, ledger, cache, m, accessTokens, cfg.DemoMode)

	log.Println("Gateway running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
