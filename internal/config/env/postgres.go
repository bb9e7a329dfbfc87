package envconfig

import (
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

type postgresEnv struct {
	Host          string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port          int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User          string `env:"POSTGRES_USER,required"`
	Password      string `env:"POSTGRES_PASSWORD,required"`
	DBName        string `env:"POSTGRES_DB,required"`
	SSLMode       string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	MigrationsDir string `env:"MIGRATION_DIRECTORY" envDefault:"./migrations"`

	ReadTimeout  time.Duration `env:"DB_READ_TIMEOUT" envDefault:"2s"`
	WriteTimeout time.Duration `env:"DB_WRITE_TIMEOUT" envDefault:"3s"`
}

type postgres struct {
	raw postgresEnv
}

func NewPostgresConfig() (*postgres, error) {
	var raw postgresEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &postgres{raw: raw}, nil
}

func (cfg *postgres) MigrationDirectory() string  { return cfg.raw.MigrationsDir }
func (cfg *postgres) ReadTimeout() time.Duration  { return cfg.raw.ReadTimeout }
func (cfg *postgres) WriteTimeout() time.Duration { return cfg.raw.WriteTimeout }

// DSN escapes credentials, so passwords may contain URL delimiters.
func (cfg *postgres) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.raw.User, cfg.raw.Password),
		Host:     net.JoinHostPort(cfg.raw.Host, strconv.Itoa(cfg.raw.Port)),
		Path:     "/" + cfg.raw.DBName,
		RawQuery: url.Values{"sslmode": {cfg.raw.SSLMode}}.Encode(),
	}
	return u.String()
}
