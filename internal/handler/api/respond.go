package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/amanabooks/storefront/internal/domain"
	"github.com/amanabooks/storefront/internal/middleware"
)

// errorBody is the wire shape for every non-2xx response.
type errorBody struct {
	Error string `json:"error"`
}

// JSON writes a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("failed to encode response body", slog.Any("error", err))
	}
}

// Fail writes an error response. Domain validation, conflict, and
// not-found errors surface their own message; everything else is logged
// with full detail and answered with the generic fallback so internal
// failure modes never leak to clients. Logging goes through the
// request-scoped logger when one is in the context, so 500-path log
// lines carry the request id.
func Fail(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, fallback string) {
	code := domain.ErrorCode(err)
	switch code {
	case domain.EINVALID, domain.ECONFLICT:
		JSON(w, http.StatusBadRequest, errorBody{Error: domain.ErrorMessage(err)})
	case domain.ENOTFOUND:
		JSON(w, http.StatusNotFound, errorBody{Error: domain.ErrorMessage(err)})
	default:
		middleware.GetLogger(r.Context(), logger).Error(fallback,
			slog.String("op", domain.ErrorOp(err)),
			slog.String("code", code),
			slog.Any("error", err),
			slog.String("path", r.URL.Path),
		)
		JSON(w, http.StatusInternalServerError, errorBody{Error: fallback})
	}
}

// BadRequest writes a 400 with the given message.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, errorBody{Error: message})
}

// NotFound writes a 404 with the given message.
func NotFound(w http.ResponseWriter, message string) {
	JSON(w, http.StatusNotFound, errorBody{Error: message})
}

// DecodeBody decodes a JSON request body into dst.
func DecodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.Invalid("api.decode", "Invalid JSON body")
	}
	return nil
}
