// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, CORS, and request body limits.
// AppConfig is where everything specific to this service lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Identity-provider token verification.
	//
	// When RequireAuth is true, mutating routes demand a bearer ID token
	// issued for IdentityProjectID; signing keys are fetched from
	// IdentityCertURL. When false the routes stay open, which is how the
	// service has historically run behind a trusted frontend.
	RequireAuth       bool
	IdentityProjectID string // identity-provider project the tokens must be minted for
	IdentityCertURL   string // URL serving the provider's current X.509 signing certs
}
