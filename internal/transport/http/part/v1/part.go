package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vhsenna/parts-unlimited/internal/converter"
	"github.com/vhsenna/parts-unlimited/internal/model"
	"github.com/vhsenna/parts-unlimited/internal/transport/http/response"
	"github.com/vhsenna/parts-unlimited/platform/logger"
	apiv1 "github.com/vhsenna/parts-unlimited/pkg/api/v1"
)

type PartService interface {
	Create(ctx context.Context, fields model.PartFields) (*model.Part, error)
	Part(ctx context.Context, id int64) (*model.Part, error)
	List(ctx context.Context) ([]*model.Part, error)
	Update(ctx context.Context, id int64, fields model.PartFields, partial bool) (*model.Part, error)
	Delete(ctx context.Context, id int64) error
}

type handler struct {
	svc PartService
}

func NewPartHandler(service PartService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Route("/parts", func(r chi.Router) {
		r.Post("/", h.CreatePart)
		r.Get("/", h.ListParts)
		r.Get("/{id}", h.GetPart)
		r.Put("/{id}", h.ReplacePart)
		r.Patch("/{id}", h.PatchPart)
		r.Delete("/{id}", h.DeletePart)
	})
}

func (h *handler) CreatePart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := decodePartRequest(r)
	if err != nil {
		writeDecodeError(ctx, w, err)
		return
	}

	p, err := h.svc.Create(ctx, converter.PartRequestToFields(req))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusCreated, converter.PartToAPI(p))
}

func (h *handler) ListParts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	parts, err := h.svc.List(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusOK, converter.PartsToAPI(parts))
}

func (h *handler) GetPart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := partID(r)
	if !ok {
		writeError(ctx, w, model.ErrPartNotFound)
		return
	}

	p, err := h.svc.Part(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusOK, converter.PartToAPI(p))
}

func (h *handler) ReplacePart(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

func (h *handler) PatchPart(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

func (h *handler) update(w http.ResponseWriter, r *http.Request, partial bool) {
	ctx := r.Context()

	id, ok := partID(r)
	if !ok {
		writeError(ctx, w, model.ErrPartNotFound)
		return
	}

	req, err := decodePartRequest(r)
	if err != nil {
		writeDecodeError(ctx, w, err)
		return
	}

	p, err := h.svc.Update(ctx, id, converter.PartRequestToFields(req), partial)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusOK, converter.PartToAPI(p))
}

func (h *handler) DeletePart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := partID(r)
	if !ok {
		writeError(ctx, w, model.ErrPartNotFound)
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}

	response.NoContent(w)
}

// partID reports false for ids that cannot name a stored part; those are 404s.
func partID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

var (
	errInvalidJSON = errors.New("invalid JSON body")
	errNotObject   = errors.New("expected a JSON object")

	partRequestKeys = []string{"name", "sku", "description", "weight_ounces", "is_active"}
)

const notNullField = "this field may not be null"

// decodePartRequest treats an empty body as an empty payload. Anything else
// must be a JSON object whose known keys are not null.
func decodePartRequest(r *http.Request) (*apiv1.PartRequest, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return &apiv1.PartRequest{}, nil
		}
		return nil, errInvalidJSON
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, errNotObject
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, errInvalidJSON
	}

	nulls := make(map[string]string)
	for _, key := range partRequestKeys {
		if v, ok := keys[key]; ok && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			nulls[key] = notNullField
		}
	}
	if len(nulls) > 0 {
		return nil, model.NewValidationError(nulls)
	}

	var req apiv1.PartRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, errInvalidJSON
	}
	return &req, nil
}

func writeDecodeError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrValidation) {
		writeError(ctx, w, err)
		return
	}
	response.Error(ctx, w, http.StatusBadRequest, err.Error()) // 400
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var vErr *model.ValidationError

	switch {
	case errors.As(err, &vErr):
		response.JSON(ctx, w, http.StatusBadRequest, apiv1.ErrorResponse{ // 400
			Error:  model.ErrValidation.Error(),
			Fields: vErr.Fields,
		})
	case errors.Is(err, model.ErrValidation):
		response.Error(ctx, w, http.StatusBadRequest, err.Error()) // 400
	case errors.Is(err, model.ErrPartNotFound):
		response.Error(ctx, w, http.StatusNotFound, model.ErrPartNotFound.Error()) // 404
	default:
		logger.Error(ctx, "part request failed", logger.ErrorF(err))
		response.Error(ctx, w, http.StatusInternalServerError, "internal server error") // 500
	}
}
