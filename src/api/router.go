package api

import (
	"database/sql"
	"net/http"

	"dompet-gateway/src/auth"
	"dompet-gateway/src/db"
	"dompet-gateway/src/directory"
	"dompet-gateway/src/handlers"
	"dompet-gateway/src/metrics"
	"dompet-gateway/src/middleware"
	"dompet-gateway/src/provider"
	"dompet-gateway/src/sandbox"
	"dompet-gateway/src/sync"
	"dompet-gateway/src/tokenstore"

	"github.com/go-chi/chi/v5"
)

func NewRouter(
	authority *auth.Authority,
	exchanger *auth.Exchanger,
	prov provider.Provider,
	engine *sync.Engine,
	dir *directory.Directory,
	sandboxSvc *sandbox.Service,
	ledger *sql.DB,
	cache *db.Cache,
	m *metrics.Metrics,
	accessTokens *tokenstore.Store,
	isDemo bool,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Use(m.Middleware)
	r.Use(middleware.DemoModeMiddleware(isDemo))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/v1", func(r chi.Router) {
		// token endpoints carry their own secrets
		r.Post("/oauth2/token", handlers.IssueToken(authority, m))
		r.Post("/token/exchange", handlers.ExchangeToken(exchanger, m))

		// public directory
		r.Get("/institutions", handlers.ListInstitutions(dir))
		r.Get("/institutions/{institution_id}", handlers.GetInstitution(dir))

		// application-level routes
		r.With(middleware.AppAuthMiddleware(authority)).Group(func(r chi.Router) {
			r.Post("/sandbox/public_token/create", handlers.CreateSandboxPublicToken(sandboxSvc, m))
			r.Get("/ledger/accounts", handlers.GetLedgerAccounts(ledger, cache))
			r.Get("/ledger/accounts/{account_id}/transactions", handlers.GetLedgerTransactions(ledger, cache))
		})

		// user-scoped routes
		r.With(middleware.UserAuthMiddleware(accessTokens)).Group(func(r chi.Router) {
			r.Get("/accounts", handlers.GetAccounts(prov))
			r.Get("/accounts/{account_id}/transactions", handlers.GetTransactions(prov))
			r.Get("/identity", handlers.GetIdentity(prov))
			r.Post("/sync", handlers.SyncAccounts(engine, m))
		})
	})

	return r
}
