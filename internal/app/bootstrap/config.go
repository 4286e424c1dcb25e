// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"os"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the service.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, require_auth, etc.
//   - Environment variables: SOCIALEVENTS_MONGO_URI, SOCIALEVENTS_REQUIRE_AUTH, etc.
//   - Command-line flags: --mongo_uri, --require_auth, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "socialEventsDb", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Identity-provider token verification
	{Name: "require_auth", Default: false, Desc: "Require a verified bearer ID token on mutating routes"},
	{Name: "identity_project_id", Default: "", Desc: "Identity-provider project ID tokens must be issued for"},
	{Name: "identity_cert_url", Default: "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com", Desc: "URL serving the identity provider's X.509 signing certs"},
}

// bareEnvAliases maps the plain environment variable names this service
// has always been deployed with onto the prefixed keys WAFFLE reads.
// Prefixed names win when both are set.
var bareEnvAliases = map[string]string{
	"MONGODB_URI":          "SOCIALEVENTS_MONGO_URI",
	"PORT":                 "WAFFLE_HTTP_PORT",
	"PROJECT_ID":           "SOCIALEVENTS_IDENTITY_PROJECT_ID",
	"CLIENT_X509_CERT_URL": "SOCIALEVENTS_IDENTITY_CERT_URL",
}

func applyBareEnvAliases() {
	for bare, prefixed := range bareEnvAliases {
		if os.Getenv(prefixed) != "" {
			continue
		}
		if v := os.Getenv(bare); v != "" {
			os.Setenv(prefixed, v)
		}
	}
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, SOCIALEVENTS_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	applyBareEnvAliases()

	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SOCIALEVENTS", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		RequireAuth:       appValues.Bool("require_auth"),
		IdentityProjectID: appValues.String("identity_project_id"),
		IdentityCertURL:   appValues.String("identity_cert_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI format is checked here to catch configuration errors
// early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	// Token enforcement is meaningless without a project to verify against.
	if appCfg.RequireAuth && appCfg.IdentityProjectID == "" {
		return fmt.Errorf("require_auth is enabled but identity_project_id is not set")
	}

	return nil
}
