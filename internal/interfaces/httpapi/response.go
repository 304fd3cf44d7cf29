package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/galero/internal/platform/logging"
	"github.com/riskibarqy/galero/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

// Responses follow the Google JSON style guide: {"apiVersion", "data"} on
// success, {"apiVersion", "error"} on failure.
const (
	googleAPIVersion = "2.0"
	errorDomain      = "galero"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
	// Public replaces err.Error() in the body when set; store and runtime
	// failures never reach clients verbatim.
	Public string
}

var errorMappings = []struct {
	sentinel error
	mapped   mappedError
}{
	{usecase.ErrInvalidInput, mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"}},
	{usecase.ErrNotFound, mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"}},
	{usecase.ErrInvalidState, mappedError{HTTPStatus: http.StatusConflict, Reason: "inconsistentData", Status: "FAILED_PRECONDITION"}},
	{usecase.ErrDependencyUnavailable, mappedError{HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable", Status: "UNAVAILABLE", Public: "competition data is temporarily unavailable"}},
}

var internalErrorMapping = mappedError{
	HTTPStatus: http.StatusInternalServerError,
	Reason:     "internalError",
	Status:     "INTERNAL",
	Public:     "internal server error",
}

func mapError(err error) mappedError {
	for _, m := range errorMappings {
		if errors.Is(err, m.sentinel) {
			return m.mapped
		}
	}
	return internalErrorMapping
}

// writeJSON renders into a pooled buffer before touching w, so an encoding
// failure still yields a clean 500 and Content-Length is exact.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		logging.Default().ErrorContext(ctx, "encode response failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, googleResponseEnvelope{APIVersion: googleAPIVersion, Data: data})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	msg := mapped.Public
	if msg == "" {
		msg = err.Error()
	}

	writeJSON(ctx, w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: msg,
			Status:  mapped.Status,
			Errors:  []googleErrorItem{{Domain: errorDomain, Reason: mapped.Reason, Message: msg}},
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeError(ctx, w, errors.New("panic recovered"))
}
