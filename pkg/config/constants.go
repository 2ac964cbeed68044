package config

const (
	// EnvPrefix is passed to envconfig; individual tags carry the full name.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv   = "PLAYMERCH_APP_ENV"
	EnvPort     = "PLAYMERCH_APP_PORT"
	EnvDBDSN    = "PLAYMERCH_DB_DSN"
	EnvDBHost   = "PLAYMERCH_DB_HOST"
	EnvDBUser   = "PLAYMERCH_DB_USER"
	EnvDBName   = "PLAYMERCH_DB_NAME"
	EnvRedisURL = "PLAYMERCH_REDIS_URL"

	EnvCartTokenSecret = "PLAYMERCH_CART_TOKEN_SECRET"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
