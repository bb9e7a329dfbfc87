package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	platformtc "github.com/vhsenna/parts-unlimited/platform/testcontainers"
)

const (
	postgresPort           = "5432/tcp"
	postgresStartupTimeout = 1 * time.Minute
)

// Container is a disposable postgres instance with a connected pool.
type Container struct {
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	dsn       string
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts...)

	container, err := tcpostgres.Run(ctx,
		cfg.ImageName,
		tcpostgres.WithDatabase(cfg.Database),
		tcpostgres.WithUsername(cfg.Username),
		tcpostgres.WithPassword(cfg.Password),
		testcontainers.WithHostConfigModifier(defaultHostConfig()),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort(postgresPort).WithStartupTimeout(postgresStartupTimeout),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start postgres container")
	}

	success := false
	defer func() {
		if !success {
			if err = container.Terminate(ctx); err != nil {
				cfg.Logger.Error(ctx, "failed to terminate postgres container", zap.Error(err))
			}
		}
	}()

	cfg.Host, err = container.Host(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get container host")
	}

	port, err := container.MappedPort(ctx, postgresPort)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get mapped port")
	}
	cfg.Port = port.Port()

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, errors.Wrap(err, "failed to build connection string")
	}

	pool, err := connectPool(ctx, dsn)
	if err != nil {
		return nil, err
	}

	cfg.Logger.Info(ctx, "Postgres container started",
		zap.String("host", cfg.Host),
		zap.String("port", cfg.Port),
	)
	success = true

	return &Container{
		container: container,
		pool:      pool,
		dsn:       dsn,
		cfg:       cfg,
	}, nil
}

func connectPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Errorf("failed to create pg pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Errorf("failed to ping postgres: %v", err)
	}

	return pool, nil
}

func (c *Container) Pool() *pgxpool.Pool { return c.pool }
func (c *Container) DSN() string         { return c.dsn }
func (c *Container) Config() *Config     { return c.cfg }

// Env maps the service config variables to this container.
func (c *Container) Env() map[string]string {
	return map[string]string{
		platformtc.PostgresHostKey:     c.cfg.Host,
		platformtc.PostgresPortKey:     c.cfg.Port,
		platformtc.PostgresUserKey:     c.cfg.Username,
		platformtc.PostgresPasswordKey: c.cfg.Password,
		platformtc.PostgresDatabaseKey: c.cfg.Database,
		platformtc.PostgresSSLModeKey:  "disable",
	}
}

func (c *Container) Terminate(ctx context.Context) error {
	c.pool.Close()

	if err := c.container.Terminate(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate postgres container", zap.Error(err))
		return err
	}

	c.cfg.Logger.Info(ctx, "Postgres container terminated")

	return nil
}
