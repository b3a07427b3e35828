package config

// EnvPrefix is the envconfig prefix shared by every section.
const EnvPrefix = "STYLEHAUL"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags (tests, DSN assembly).
const (
	EnvAppEnv       = "STYLEHAUL_APP_ENV"
	EnvPort         = "STYLEHAUL_APP_PORT"
	EnvDBDSN        = "STYLEHAUL_DB_DSN"
	EnvDBHost       = "STYLEHAUL_DB_HOST"
	EnvDBUser       = "STYLEHAUL_DB_USER"
	EnvDBName       = "STYLEHAUL_DB_NAME"
	EnvRedisURL     = "STYLEHAUL_REDIS_URL"
	EnvJWTSecret    = "STYLEHAUL_JWT_SECRET"
	EnvJWTIssuer    = "STYLEHAUL_JWT_ISSUER"
	EnvOpenAIAPIKey = "STYLEHAUL_OPENAI_API_KEY"
	EnvSearchAPIKey = "STYLEHAUL_SEARCH_API_KEY"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
