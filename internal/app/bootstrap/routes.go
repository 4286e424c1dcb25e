// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	eventsfeature "github.com/dalemusser/socialevents/internal/app/features/events"
	healthfeature "github.com/dalemusser/socialevents/internal/app/features/health"
	joinedeventsfeature "github.com/dalemusser/socialevents/internal/app/features/joinedevents"
	statusfeature "github.com/dalemusser/socialevents/internal/app/features/status"
	usersfeature "github.com/dalemusser/socialevents/internal/app/features/users"
	eventstore "github.com/dalemusser/socialevents/internal/app/store/events"
	joinstore "github.com/dalemusser/socialevents/internal/app/store/joins"
	userstore "github.com/dalemusser/socialevents/internal/app/store/users"
	"github.com/dalemusser/socialevents/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Each feature gets its stores and the
// shared logger, then mounts its subrouter.
//
// When require_auth is enabled, mutating routes inside each feature run
// behind the bearer-token middleware; reads stay public so browse pages
// work for signed-out visitors.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	guard := func(chi.Router) {}
	if appCfg.RequireAuth {
		keys := auth.NewCertURLKeys(appCfg.IdentityCertURL, nil)
		verifier := auth.NewIDTokenVerifier(appCfg.IdentityProjectID, keys)
		requireToken := auth.RequireToken(verifier, logger)
		guard = func(pr chi.Router) { pr.Use(requireToken) }
		logger.Info("bearer-token enforcement enabled",
			zap.String("project_id", appCfg.IdentityProjectID))
	}

	r := chi.NewRouter()

	// Deployment smoke-check banner
	statusHandler := statusfeature.NewHandler()
	r.Get("/", statusHandler.ServeRoot)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Events: browse, detail, create, update, delete
	eventsHandler := eventsfeature.NewHandler(eventstore.New(deps.MongoDatabase), logger)
	r.Mount("/events", eventsfeature.Routes(eventsHandler, guard))
	r.Mount("/my-events", eventsfeature.MyEventsRoutes(eventsHandler))

	// Join records
	joinsHandler := joinedeventsfeature.NewHandler(joinstore.New(deps.MongoDatabase), logger)
	r.Mount("/joined-events", joinedeventsfeature.Routes(joinsHandler, guard))

	// User records and the admin role flag
	usersHandler := usersfeature.NewHandler(userstore.New(deps.MongoDatabase), logger)
	r.Mount("/users", usersfeature.Routes(usersHandler, guard))

	return r, nil
}
