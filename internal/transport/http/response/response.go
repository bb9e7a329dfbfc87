package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vhsenna/parts-unlimited/platform/logger"
	apiv1 "github.com/vhsenna/parts-unlimited/pkg/api/v1"
)

// JSON writes v with the given status. Bodies on 204 are attempted but
// net/http drops them for real connections.
func JSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil && !errors.Is(err, http.ErrBodyNotAllowed) {
		logger.Error(ctx, "encode response", logger.Int("status", status), logger.ErrorF(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	JSON(ctx, w, status, apiv1.ErrorResponse{Error: msg})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
