package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/campuspass/internal/accounts/service"
	"github.com/aussiebroadwan/campuspass/internal/accounts/store"
	"github.com/aussiebroadwan/campuspass/pkg/httpx"
	"github.com/aussiebroadwan/campuspass/pkg/jwtx"
	"github.com/aussiebroadwan/campuspass/pkg/slogx"

	_ "github.com/aussiebroadwan/campuspass/api/accounts" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.EdDSASigner
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AccountService *service.AccountService
}

func NewRouter(
	signer *jwtx.EdDSASigner,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerRecovery()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			CampusPass Account Service API
//	@version		0.1.0
//	@description	Account lifecycle service: registration of employee, student,
//	@description	external and guest accounts, credential login issuing a JWT in
//	@description	the Jwt-Token response header, and one-time-code recovery flows.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/campuspass
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

func (r *Router) registerAccounts() {
	// POST /register - strict rate limit (account creation abuse)
	registerHandler := &RegisterHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/accounts/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP + username to slow brute force
	loginHandler := &LoginHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/accounts/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)

	// GET /accounts - authenticated listing, needs accounts:read
	listHandler := &ListUsersHandler{AccountService: r.AccountService}
	r.Mux.Handle("GET /v1/accounts",
		httpx.Chain(listHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
			httpx.AuthnMiddleware(r.signer),
			httpx.RequireAuthority("accounts:read"),
		),
	)
}

func (r *Router) registerRecovery() {
	// All recovery endpoints get the strict profile; they either send mail
	// or consume one-time codes.
	forgotPassword := &ForgotPasswordHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/accounts/forgot-password",
		httpx.Chain(forgotPassword,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)

	verifyForgotPassword := &VerifyForgotPasswordHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/accounts/verify-forgot-password",
		httpx.Chain(verifyForgotPassword,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)

	verifyOTP := &VerifyOTPHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/accounts/verify-otp",
		httpx.Chain(verifyOTP,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)

	forgotUsername := &ForgotUsernameHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/accounts/forgot-username",
		httpx.Chain(forgotUsername,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	verifyForgotUsername := &VerifyForgotUsernameHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/accounts/verify-otp-forgot-username",
		httpx.Chain(verifyForgotUsername,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.signer),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("GET /livez", LivezHandler(r.buildVersion, r.startTime))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.store))
}
