package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/logixport/logixport-backend/api/controllers"
	"github.com/logixport/logixport-backend/api/middleware"
	"github.com/logixport/logixport-backend/api/web"
	"github.com/logixport/logixport-backend/internal/admin"
	"github.com/logixport/logixport-backend/internal/auth"
	"github.com/logixport/logixport-backend/internal/documents"
	"github.com/logixport/logixport-backend/internal/incoterms"
	"github.com/logixport/logixport-backend/internal/shipments"
	"github.com/logixport/logixport-backend/internal/tariffs"
	"github.com/logixport/logixport-backend/pkg/config"
	"github.com/logixport/logixport-backend/pkg/db"
	"github.com/logixport/logixport-backend/pkg/logger"
	"github.com/logixport/logixport-backend/pkg/metrics"
	"github.com/logixport/logixport-backend/pkg/redis"
)

// Deps collects everything the router needs.
type Deps struct {
	Cfg             *config.Config
	Logg            *logger.Logger
	DB              db.Pinger
	Redis           *redis.Client
	Users           middleware.UserLoader
	AuthService     auth.Service
	RegisterService auth.RegisterService
	Shipments       shipments.Service
	Documents       documents.Service
	Tariffs         tariffs.Service
	Incoterms       incoterms.Service
	Admin           admin.Service
	Renderer        *web.Renderer
	Registry        *prometheus.Registry
	HTTPMetrics     *metrics.HTTPMetrics
}

// NewRouter wires the full HTTP surface: public pages, the session-gated web
// area, the JSON API, and the admin API.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(deps.Logg, deps.Renderer),
		middleware.RequestID(deps.Logg),
		middleware.Logging(deps.Logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
		middleware.Gate(deps.Cfg.JWT, deps.Users, deps.Logg),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		deps.Cfg.AuthRateLimit.LoginWindow,
		deps.Cfg.AuthRateLimit.LoginIPLimit,
		deps.Cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		deps.Cfg.AuthRateLimit.RegisterWindow,
		deps.Cfg.AuthRateLimit.RegisterIPLimit,
		deps.Cfg.AuthRateLimit.RegisterEmailLimit,
	)

	pages := &controllers.WebPages{
		Renderer: deps.Renderer,
		JWTCfg:   deps.Cfg.JWT,
		Users:    deps.Users,
		Admin:    deps.Admin,
		Logg:     deps.Logg,
	}

	// web pages
	r.Get("/", pages.Landing())
	r.Get("/login", pages.Login())
	r.Get("/register", pages.Register())
	r.Get("/information", pages.Information())
	r.Get("/dashboard", pages.Dashboard())
	r.Get("/admin", pages.AdminDashboard())
	r.Get("/logout", pages.Logout())
	r.Get("/templates/pages/{page}", pages.LegacyTemplateRedirect())
	r.Handle("/static/*", web.StaticHandler())
	r.NotFound(pages.NotFound())

	// auth
	r.Route("/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, deps.Logg)).
			Post("/login", controllers.AuthLogin(deps.AuthService, deps.Logg))
		r.Get("/verify", controllers.AuthVerify(deps.Cfg.JWT, deps.Logg))
		r.Get("/me", controllers.AuthMe(deps.AuthService, deps.Logg))
		r.Post("/logout", controllers.AuthLogout(deps.Logg))
	})

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, deps.Logg)).
			Post("/token", controllers.APIToken(deps.AuthService, deps.Logg))

		r.With(middleware.AuthRateLimit(registerPolicy, deps.Redis, deps.Logg)).
			Post("/users", controllers.UsersRegister(deps.RegisterService, deps.Logg))
		r.Get("/users/me", controllers.UsersMe(deps.Logg))

		r.Post("/shipments", controllers.ShipmentsCreate(deps.Shipments, deps.Logg))
		r.Get("/shipments/{clientID}", controllers.ShipmentsListByClient(deps.Shipments, deps.Logg))
		r.Put("/shipments/{shipmentID}/status", controllers.ShipmentsUpdateStatus(deps.Shipments, deps.Logg))

		r.Get("/documents", controllers.DocumentsList(deps.Documents, deps.Logg))
		r.Get("/documents/{documentID}", controllers.DocumentsGet(deps.Documents, deps.Logg))
		r.Get("/categories", controllers.DocumentsCategories(deps.Documents, deps.Logg))
		r.Get("/supplements", controllers.DocumentsSupplements(deps.Documents, deps.Logg))

		r.Get("/tariffs", controllers.TariffsList(deps.Tariffs, deps.Logg))
		r.Get("/incoterms", controllers.IncotermsList(deps.Incoterms, deps.Logg))
		r.Get("/incoterms/{code}", controllers.IncotermsGet(deps.Incoterms, deps.Logg))

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(deps.Logg))
			r.Get("/stats", controllers.AdminStats(deps.Admin, deps.Logg))
			r.Get("/usuarios", controllers.AdminUsuarios(deps.Admin, deps.Logg))
			r.Put("/usuarios/{userID}/estado", controllers.AdminUsuarioEstado(deps.Admin, deps.Logg))
			r.Get("/documentos", controllers.AdminDocumentos(deps.Admin, deps.Logg))
			r.Post("/documentos", controllers.AdminCreateDocumento(deps.Documents, deps.Logg))
			r.Post("/documentos/referencias", controllers.AdminCreateReferencia(deps.Documents, deps.Logg))
			r.Post("/suplementos", controllers.AdminCreateSuplemento(deps.Documents, deps.Logg))
			r.Post("/categorias", controllers.AdminCreateCategoria(deps.Documents, deps.Logg))
		})
	})

	// operational endpoints
	r.Get("/healthz", controllers.Healthz(deps.DB, deps.Logg))
	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	return r
}
