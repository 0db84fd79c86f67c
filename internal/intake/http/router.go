package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/intake/internal/intake/service"
	"github.com/aussiebroadwan/intake/internal/intake/store"
	"github.com/aussiebroadwan/intake/pkg/httpx"
	"github.com/aussiebroadwan/intake/pkg/slogx"

	_ "github.com/aussiebroadwan/intake/api/intake" // Swagger docs
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// maxBodyBytes caps import payloads, which carry one record and its raw
// source response.
const maxBodyBytes = 1 << 20

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	gatherer     prometheus.Gatherer

	store            store.Store
	ReconcileService *service.ReconcileService
	FirmService      *service.FirmService
	ClientService    *service.ClientService

	// LegacyFirmID is used by PATCH /v1/clients when the body has no firm_id.
	LegacyFirmID string
}

func NewRouter(
	buildVersion string,
	st store.Store,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		gatherer:     gatherer,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
		httpx.MaxBody(maxBodyBytes),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerImport()
	r.registerFirms()
	r.registerClients()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Client Intake Service API
//	@version		0.1.0
//	@description	Reconciles client records pushed by CSV uploads, third-party integrations and the case-management platform against each firm's existing clients.
//	@description
//	@description	Every import either creates a client, updates a matched client, leaves it unchanged, or is rejected with a structured error.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/intake
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerImport() {
	h := &ImportHandler{
		Store:            r.store,
		FirmService:      r.FirmService,
		ReconcileService: r.ReconcileService,
	}

	// POST /import - keyed by IP and firm so one integration cannot starve another
	r.Mux.Handle("POST /v1/firms/{firm_id}/clients/import",
		httpx.Chain(h,
			httpx.RateLimitByIPAndPathValue(httpx.ImportLimit, "firm_id"),
		),
	)

	legacy := &LegacyHandler{
		Store:            r.store,
		FirmService:      r.FirmService,
		ReconcileService: r.ReconcileService,
		DefaultFirmID:    r.LegacyFirmID,
	}
	r.Mux.Handle("PATCH /v1/clients",
		httpx.Chain(legacy,
			httpx.RateLimitByIP(httpx.ImportLimit),
		),
	)
}

func (r *Router) registerFirms() {
	h := &FirmsHandler{FirmService: r.FirmService}

	// PUT /firms/{firm_id} - admin rate limit (configuration writes)
	r.Mux.Handle("PUT /v1/firms/{firm_id}",
		httpx.Chain(http.HandlerFunc(h.HandlePut),
			httpx.RateLimitByIP(httpx.AdminLimit),
		),
	)
	r.Mux.Handle("GET /v1/firms/{firm_id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/firms",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{
		FirmService:   r.FirmService,
		ClientService: r.ClientService,
	}

	r.Mux.Handle("GET /v1/firms/{firm_id}/clients",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/firms/{firm_id}/integration-responses",
		httpx.Chain(http.HandlerFunc(h.HandleListIntegrationResponses),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health and metrics - public rate limits (probes and scrapers poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	gatherer := r.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Mux.Handle("GET /metrics",
		httpx.Chain(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
