package config

// EnvPrefix namespaces every configuration variable read by envconfig.
const EnvPrefix = "CATALOG"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names, shared with tests and deployment manifests.
const (
	EnvAppEnv    = "CATALOG_APP_ENV"
	EnvAppPort   = "CATALOG_APP_PORT"
	EnvDBDriver  = "CATALOG_DB_DRIVER"
	EnvDBPath    = "CATALOG_DB_PATH"
	EnvDBDSN     = "CATALOG_DB_DSN"
	EnvJWTSecret = "CATALOG_JWT_SECRET"
	EnvRedisURL  = "CATALOG_REDIS_URL"
)
