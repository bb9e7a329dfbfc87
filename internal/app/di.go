package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/vhsenna/parts-unlimited/internal/config"
	repository "github.com/vhsenna/parts-unlimited/internal/repository/part"
	partservice "github.com/vhsenna/parts-unlimited/internal/service/part"
	wordsservice "github.com/vhsenna/parts-unlimited/internal/service/words"
	parthttp "github.com/vhsenna/parts-unlimited/internal/transport/http/part/v1"
	"github.com/vhsenna/parts-unlimited/internal/transport/http/router"
	wordshttp "github.com/vhsenna/parts-unlimited/internal/transport/http/words/v1"
	"github.com/vhsenna/parts-unlimited/internal/wordfreq"
	"github.com/vhsenna/parts-unlimited/platform/closer"
	"github.com/vhsenna/parts-unlimited/platform/db/migrator"
)

type PartRepository interface {
	partservice.PartRepository
	wordsservice.DescriptionReader
}

type di struct {
	dbPool     *pgxpool.Pool
	migrator   *migrator.Migrator
	repository PartRepository

	analyzer *wordfreq.Analyzer

	partService  parthttp.PartService
	wordsService wordshttp.WordsService

	partHandler  router.Registrar
	wordsHandler router.Registrar

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) PartRepository(ctx context.Context) PartRepository {
	if d.repository == nil {
		d.repository = repository.NewPartRepository(d.DBPool(ctx))
	}

	return d.repository
}

func (d *di) Analyzer(_ context.Context) *wordfreq.Analyzer {
	if d.analyzer == nil {
		d.analyzer = wordfreq.New(wordfreq.DefaultTopN)
	}

	return d.analyzer
}

func (d *di) PartService(ctx context.Context) parthttp.PartService {
	if d.partService == nil {
		d.partService = partservice.NewPartService(
			d.PartRepository(ctx),
			config.C().Postgres.ReadTimeout(),
			config.C().Postgres.WriteTimeout(),
		)
	}

	return d.partService
}

func (d *di) WordsService(ctx context.Context) wordshttp.WordsService {
	if d.wordsService == nil {
		d.wordsService = wordsservice.NewWordsService(
			d.PartRepository(ctx),
			d.Analyzer(ctx),
			config.C().Postgres.ReadTimeout(),
		)
	}

	return d.wordsService
}

func (d *di) PartHandler(ctx context.Context) router.Registrar {
	if d.partHandler == nil {
		d.partHandler = parthttp.NewPartHandler(d.PartService(ctx))
	}

	return d.partHandler
}

func (d *di) WordsHandler(ctx context.Context) router.Registrar {
	if d.wordsHandler == nil {
		d.wordsHandler = wordshttp.NewWordsHandler(d.WordsService(ctx))
	}

	return d.wordsHandler
}

func (d *di) Router(ctx context.Context) *chi.Mux {
	if d.router == nil {
		d.router = router.New(
			d.DBPool(ctx),
			d.PartHandler(ctx),
			d.WordsHandler(ctx),
		)
	}

	return d.router
}
