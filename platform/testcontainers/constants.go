package testcontainers

// Environment keys read by the service config; the postgres container
// publishes its coordinates through them.
const (
	PostgresHostKey     = "POSTGRES_HOST"
	PostgresPortKey     = "POSTGRES_PORT"
	PostgresUserKey     = "POSTGRES_USER"
	PostgresPasswordKey = "POSTGRES_PASSWORD" //nolint:gosec
	PostgresDatabaseKey = "POSTGRES_DB"
	PostgresSSLModeKey  = "POSTGRES_SSL_MODE"
	MigrationDirKey     = "MIGRATION_DIRECTORY"
)
