package env

const (
	EnvHttpPort = "HTTP_PORT"

	EnvDatabaseHost     = "DB_HOST"
	EnvDatabasePort     = "DB_PORT"
	EnvDatabaseUser     = "DB_USER"
	EnvDatabasePassword = "DB_PASSWORD"
	EnvDatabaseName     = "DB_NAME"

	EnvJwtSecret = "JWT_SECRET"

	EnvPteroApiUrl = "PTERO_API_URL"
	EnvPteroAppKey = "PTERO_APP_KEY"
	EnvUserDomain  = "PTERO_USER_EMAIL_DOMAIN"

	EnvPakasirSlug   = "PAKASIR_SLUG"
	EnvPakasirApiKey = "PAKASIR_API_KEY"

	EnvPackageCatalogPath = "PACKAGE_CATALOG_PATH"
)
