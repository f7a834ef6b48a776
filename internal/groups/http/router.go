package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aussiebroadwan/kitty/api/groups" // Swagger docs
	"github.com/aussiebroadwan/kitty/internal/groups/service"
	"github.com/aussiebroadwan/kitty/internal/groups/store"
	"github.com/aussiebroadwan/kitty/pkg/httpx"
	"github.com/aussiebroadwan/kitty/pkg/jwtx"
	"github.com/aussiebroadwan/kitty/pkg/slogx"
)

const (
	scopeRead  = "groups:read"
	scopeWrite = "groups:write"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store        store.Store
	GroupService *service.GroupService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Metrics must sit directly above the mux to see the matched pattern.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.MetricsMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerGroups()
	r.registerMembers()
	r.registerInvites()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Kitty Groups Service API
//	@version		0.1.0
//	@description	Shared-expense groups: membership, roles, invite codes and email invites.
//	@description
//	@description				Callers authenticate with access tokens issued by the BarTab auth service.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/kitty
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with bearer verification, a scope check and a per-user
// rate limit.
func (r *Router) secured(h http.HandlerFunc, scope string, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(scope),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerGroups() {
	h := &GroupsHandler{Groups: r.GroupService}

	r.Mux.Handle("POST /v1/groups", r.secured(h.HandleCreate, scopeWrite, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/groups", r.secured(h.HandleList, scopeRead, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/groups/{id}", r.secured(h.HandleGet, scopeRead, httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/groups/{id}", r.secured(h.HandleUpdate, scopeWrite, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/groups/{id}", r.secured(h.HandleDelete, scopeWrite, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/groups/{id}/code", r.secured(h.HandleRegenerateCode, scopeWrite, httpx.ModerateLimit))

	// Codes are short, so guessing is throttled hard.
	r.Mux.Handle("POST /v1/groups/join", r.secured(h.HandleJoin, scopeWrite, httpx.StrictLimit))
}

func (r *Router) registerMembers() {
	h := &MembersHandler{Groups: r.GroupService}

	r.Mux.Handle("POST /v1/groups/{id}/leave", r.secured(h.HandleLeave, scopeWrite, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/groups/{id}/members/{userID}/admin", r.secured(h.HandleToggleAdmin, scopeWrite, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/groups/{id}/members/{userID}", r.secured(h.HandleRemove, scopeWrite, httpx.ModerateLimit))
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{Groups: r.GroupService}

	r.Mux.Handle("GET /v1/groups/{id}/invites", r.secured(h.HandleList, scopeRead, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/groups/{id}/invites", r.secured(h.HandleSend, scopeWrite, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/groups/{id}/invites/{inviteID}/resend", r.secured(h.HandleResend, scopeWrite, httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/invites/{token}", r.secured(h.HandleState, scopeRead, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/invites/{token}/accept", r.secured(h.HandleAccept, scopeWrite, httpx.StrictLimit))
	r.Mux.Handle("POST /v1/invites/{token}/decline", r.secured(h.HandleDecline, scopeWrite, httpx.StrictLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
