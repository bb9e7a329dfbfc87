package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vhsenna/parts-unlimited/internal/model"
	"github.com/vhsenna/parts-unlimited/internal/validate"
	"github.com/vhsenna/parts-unlimited/platform/logger"
)

const requiredField = "this field is required"

type PartRepository interface {
	Create(ctx context.Context, p *model.Part) (*model.Part, error)
	PartByID(ctx context.Context, id int64) (*model.Part, error)
	List(ctx context.Context) ([]*model.Part, error)
	Update(ctx context.Context, p *model.Part) (*model.Part, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo           PartRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewPartService(
	repository PartRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) Create(ctx context.Context, fields model.PartFields) (*model.Part, error) {
	const op = "part.service.Create"

	if missing := fields.Missing(); len(missing) > 0 {
		logger.Warn(ctx, "missing fields", logger.Any("fields", missing))
		return nil, fmt.Errorf("%s: %w", op, missingError(missing))
	}

	var p model.Part
	fields.Apply(&p)
	if err := check(&p); err != nil {
		logger.Warn(ctx, "invalid part", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	created, err := svc.repo.Create(ctx, &p)
	if err != nil {
		logger.Error(ctx, "repository create part", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return created, nil
}

func (svc *service) Part(ctx context.Context, id int64) (*model.Part, error) {
	const op = "part.service.Part"
	log := logger.With(logger.Int64("part_id", id))

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	p, err := svc.repo.PartByID(ctx, id)
	if err != nil {
		log.Error(ctx, "repository part by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return p, nil
}

func (svc *service) List(ctx context.Context) ([]*model.Part, error) {
	const op = "part.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	parts, err := svc.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return parts, nil
}

// Update replaces every field of the part, or with partial set merges only the
// supplied ones. The stored record must exist before the payload is validated.
func (svc *service) Update(
	ctx context.Context,
	id int64,
	fields model.PartFields,
	partial bool,
) (*model.Part, error) {
	const op = "part.service.Update"
	log := logger.With(
		logger.Int64("part_id", id),
		logger.Bool("partial", partial),
	)

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	p, err := svc.repo.PartByID(rdbCtx, id)
	if err != nil {
		log.Error(ctx, "repository part by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	if !partial {
		if missing := fields.Missing(); len(missing) > 0 {
			log.Warn(ctx, "missing fields", logger.Any("fields", missing))
			return nil, fmt.Errorf("%s: %w", op, missingError(missing))
		}
	}

	fields.Apply(p)
	if err := check(p); err != nil {
		log.Warn(ctx, "invalid part", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	updated, err := svc.repo.Update(wdbCtx, p)
	if err != nil {
		log.Error(ctx, "repository update part", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return updated, nil
}

func (svc *service) Delete(ctx context.Context, id int64) error {
	const op = "part.service.Delete"
	log := logger.With(logger.Int64("part_id", id))

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Delete(ctx, id); err != nil {
		log.Error(ctx, "repository delete part", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return nil
}

// check normalizes p in place and validates it.
func check(p *model.Part) error {
	p.Name = strings.TrimSpace(p.Name)
	p.SKU = strings.TrimSpace(p.SKU)
	p.Description = strings.TrimSpace(p.Description)

	fields, err := validate.StructFields(p)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return model.NewValidationError(fields)
	}
	return nil
}

func missingError(names []string) *model.ValidationError {
	fields := make(map[string]string, len(names))
	for _, name := range names {
		fields[name] = requiredField
	}
	return model.NewValidationError(fields)
}

// storageErr tags unexpected repository failures so the transport can tell
// them apart from domain errors.
func storageErr(err error) error {
	if errors.Is(err, model.ErrPartNotFound) {
		return err
	}
	return errors.Join(model.ErrStorage, err)
}
