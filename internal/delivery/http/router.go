package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventlisting/internal/delivery/http/controllers"
	"eventlisting/internal/delivery/http/middleware"
	"eventlisting/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Auth         *controllers.AuthController
	Events       *controllers.EventController
	Coordinators *controllers.CoordinatorController
	Plugins      *controllers.PluginController
	Public       *controllers.PublicController
	Health       *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes. The editor API
// sits behind bearer authentication; the public namespace routes are served by the
// ordered route table of PublicController.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Editor API
	mux.HandleFunc("GET /api/events", requireAuth(c.Events.ListEvents))
	mux.HandleFunc("POST /api/events", requireAuth(c.Events.CreateEvent))
	mux.HandleFunc("GET /api/events/{eventID}", requireAuth(c.Events.GetEvent))
	mux.HandleFunc("PUT /api/events/{eventID}", requireAuth(c.Events.UpdateEvent))
	mux.HandleFunc("DELETE /api/events/{eventID}", requireAuth(c.Events.DeleteEvent))
	mux.HandleFunc("GET /api/events/{eventID}/registrations", requireAuth(c.Events.ListRegistrations))

	mux.HandleFunc("POST /api/coordinators", requireAuth(c.Coordinators.CreateCoordinator))
	mux.HandleFunc("GET /api/coordinators/{coordinatorID}", requireAuth(c.Coordinators.GetCoordinator))
	mux.HandleFunc("DELETE /api/coordinators/{coordinatorID}", requireAuth(c.Coordinators.DeleteCoordinator))

	mux.HandleFunc("POST /api/plugins/list", requireAuth(c.Plugins.CreateListPlugin))
	mux.HandleFunc("POST /api/plugins/upcoming", requireAuth(c.Plugins.CreateUpcomingPlugin))
	mux.HandleFunc("POST /api/plugins/calendar", requireAuth(c.Plugins.CreateCalendarPlugin))

	// Plugin renders
	mux.HandleFunc("GET /plugins/list/{pluginID}", c.Plugins.RenderList)
	mux.HandleFunc("GET /plugins/upcoming/{pluginID}", c.Plugins.RenderUpcoming)
	mux.HandleFunc("GET /plugins/calendar/{pluginID}", c.Plugins.RenderCalendar)

	// Public namespace routes
	mux.Handle(controllers.PublicPrefix, c.Public)

	mux.HandleFunc("GET /health", c.Health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, mux))
}
