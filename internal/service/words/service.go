package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vhsenna/parts-unlimited/internal/model"
	"github.com/vhsenna/parts-unlimited/internal/wordfreq"
	"github.com/vhsenna/parts-unlimited/platform/logger"
)

type DescriptionReader interface {
	Descriptions(ctx context.Context) ([]string, error)
}

type service struct {
	repo          DescriptionReader
	analyzer      *wordfreq.Analyzer
	readDBTimeout time.Duration
}

func NewWordsService(
	repository DescriptionReader,
	analyzer *wordfreq.Analyzer,
	readDBTimeout time.Duration,
) *service {
	return &service{
		repo:          repository,
		analyzer:      analyzer,
		readDBTimeout: readDBTimeout,
	}
}

// MostCommon recomputes the ranking from the current descriptions on every call.
func (svc *service) MostCommon(ctx context.Context) (wordfreq.Result, error) {
	const op = "words.service.MostCommon"

	rdbCtx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	descriptions, err := svc.repo.Descriptions(rdbCtx)
	if err != nil {
		logger.Error(ctx, "repository descriptions", logger.ErrorF(err))
		return wordfreq.Result{}, fmt.Errorf("%s: %w", op, errors.Join(model.ErrStorage, err))
	}

	res := svc.analyzer.Compute(descriptions)
	logger.Debug(ctx, "most common words computed",
		logger.Int("descriptions", len(descriptions)),
		logger.String("outcome", res.Outcome.String()),
	)

	return res, nil
}
