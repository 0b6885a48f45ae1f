package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/riskibarqy/league-portal/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	apiVersion         = "2.0"
	errorDomain        = "league-portal"
	internalErrMessage = "internal server error"
)

// envelope follows the Google JSON style guide: data on success, error otherwise.
type envelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain   string `json:"domain"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}

type errorClass struct {
	target     error
	httpStatus int
	reason     string
	status     string
}

var errorClasses = []errorClass{
	{usecase.ErrInvalidInput, http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"},
	{usecase.ErrNotFound, http.StatusNotFound, "notFound", "NOT_FOUND"},
	{usecase.ErrConflict, http.StatusConflict, "conflict", "ALREADY_EXISTS"},
	{usecase.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", "UNAUTHENTICATED"},
	{usecase.ErrDependencyUnavailable, http.StatusServiceUnavailable, "dependencyUnavailable", "UNAVAILABLE"},
}

var internalClass = errorClass{httpStatus: http.StatusInternalServerError, reason: "internalError", status: "INTERNAL"}

func classify(err error) errorClass {
	for _, c := range errorClasses {
		if errors.Is(err, c.target) {
			return c
		}
	}
	return internalClass
}

// writeJSON encodes into a pooled buffer first so an encoding failure can still
// become a clean 500 instead of a truncated body.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		logging.Default().ErrorContext(ctx, "encode response failed", "error", err)
		status = http.StatusInternalServerError
		buf.Reset()
		_, _ = buf.WriteString(`{"apiVersion":"` + apiVersion + `","error":{"code":500,"message":"` + internalErrMessage + `","status":"INTERNAL"}}` + "\n")
	}

	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, envelope{APIVersion: apiVersion, Data: data})
}

// writeError maps err onto the envelope. Messages of unclassified errors never
// reach the client.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	class := classify(err)
	message := internalErrMessage
	if class.httpStatus != http.StatusInternalServerError {
		message = err.Error()
	} else {
		logging.Default().ErrorContext(ctx, "request failed", "error", err)
	}

	writeJSON(ctx, w, class.httpStatus, envelope{
		APIVersion: apiVersion,
		Error: &errorBody{
			Code:    class.httpStatus,
			Message: message,
			Status:  class.status,
			Errors:  errorItems(class, err, message),
		},
	})
}

// errorItems yields one item per rejected field for validation errors, else one item.
func errorItems(class errorClass, err error, message string) []errorItem {
	var verr *usecase.ValidationError
	if !errors.As(err, &verr) || len(verr.Fields) == 0 {
		return []errorItem{{Domain: errorDomain, Reason: class.reason, Message: message}}
	}

	items := make([]errorItem, len(verr.Fields))
	for i, f := range verr.Fields {
		items[i] = errorItem{Domain: errorDomain, Reason: class.reason, Message: f.Message, Location: f.Field}
	}
	return items
}
