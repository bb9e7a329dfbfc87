package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vhsenna/parts-unlimited/internal/converter"
	"github.com/vhsenna/parts-unlimited/internal/model"
	"github.com/vhsenna/parts-unlimited/internal/transport/http/response"
	"github.com/vhsenna/parts-unlimited/internal/wordfreq"
	"github.com/vhsenna/parts-unlimited/platform/logger"
	apiv1 "github.com/vhsenna/parts-unlimited/pkg/api/v1"
)

const (
	msgNoDescriptions = "No descriptions found"
	msgNoWords        = "No words found in descriptions"
	msgInternal       = "internal server error"
)

type WordsService interface {
	MostCommon(ctx context.Context) (wordfreq.Result, error)
}

type handler struct {
	svc WordsService
}

func NewWordsHandler(service WordsService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/most-common-words", h.MostCommonWords)
}

func (h *handler) MostCommonWords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.svc.MostCommon(ctx)
	if err != nil {
		logger.Error(ctx, "most common words", logger.ErrorF(err))
		response.Error(ctx, w, http.StatusInternalServerError, errorDetail(err)) // 500
		return
	}

	switch res.Outcome {
	case wordfreq.NoData:
		response.JSON(ctx, w, http.StatusNoContent, apiv1.MessageResponse{Message: msgNoDescriptions})
	case wordfreq.NoTokens:
		response.JSON(ctx, w, http.StatusNoContent, apiv1.MessageResponse{Message: msgNoWords})
	default:
		body, err := converter.RankingToAPI(res.Words)
		if err != nil {
			logger.Error(ctx, "encode ranking", logger.ErrorF(err))
			response.Error(ctx, w, http.StatusInternalServerError, msgInternal) // 500
			return
		}
		response.JSON(ctx, w, http.StatusOK, body)
	}
}

// errorDetail keeps driver text and op prefixes out of response bodies.
func errorDetail(err error) string {
	if errors.Is(err, model.ErrStorage) {
		return model.ErrStorage.Error()
	}
	return msgInternal
}
