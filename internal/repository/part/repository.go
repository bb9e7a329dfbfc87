package repository

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vhsenna/parts-unlimited/internal/model"
)

const partTable = "part"

var partColumns = []string{"id", "name", "sku", "description", "weight_ounces", "is_active"}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPartRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, p *model.Part) (*model.Part, error) {
	q := r.sb.
		Insert(partTable).
		Columns("name", "sku", "description", "weight_ounces", "is_active").
		Values(p.Name, p.SKU, p.Description, p.WeightOunces, p.IsActive).
		Suffix("RETURNING " + returning())

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	return scanPart(r.pool.QueryRow(ctx, sqlStr, args...))
}

func (r *repository) PartByID(ctx context.Context, id int64) (*model.Part, error) {
	q := r.sb.
		Select(partColumns...).
		From(partTable).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	return scanPart(r.pool.QueryRow(ctx, sqlStr, args...))
}

func (r *repository) List(ctx context.Context) ([]*model.Part, error) {
	q := r.sb.
		Select(partColumns...).
		From(partTable).
		OrderBy("id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parts := make([]*model.Part, 0)
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return parts, nil
}

// Update overwrites every column of the row with p.ID.
func (r *repository) Update(ctx context.Context, p *model.Part) (*model.Part, error) {
	if p.ID == 0 {
		return nil, errors.New("empty part id")
	}

	q := r.sb.
		Update(partTable).
		SetMap(sq.Eq{
			"name":          p.Name,
			"sku":           p.SKU,
			"description":   p.Description,
			"weight_ounces": p.WeightOunces,
			"is_active":     p.IsActive,
		}).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + returning())

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	return scanPart(r.pool.QueryRow(ctx, sqlStr, args...))
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	q := r.sb.
		Delete(partTable).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrPartNotFound
	}

	return nil
}

func (r *repository) Descriptions(ctx context.Context) ([]string, error) {
	q := r.sb.
		Select("description").
		From(partTable).
		OrderBy("id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func returning() string {
	return strings.Join(partColumns, ", ")
}

func scanPart(row pgx.Row) (*model.Part, error) {
	var p model.Part
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.SKU,
		&p.Description,
		&p.WeightOunces,
		&p.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPartNotFound
		}
		return nil, err
	}

	return &p, nil
}
