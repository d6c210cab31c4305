// Package respond provides utilities for sending HTTP responses in JSON format.
// It is the single error normalizer of the API: every failure reaching the
// HTTP boundary is mapped to a stable error code and a uniform response shape,
// and unexpected failures never leak internal detail to the caller.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"article-api/internal/domain/entity"
)

// Stable error code vocabulary.
// ALREADY_EXISTS, UNAUTHORIZED and FORBIDDEN are reserved: no current
// operation produces them, but clients may rely on the full set.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeAlreadyExists   = "ALREADY_EXISTS"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeInternalError   = "INTERNAL_ERROR"
)

// Body is the uniform success envelope.
// Data, Message, Pagination and Stats are emitted only when set.
type Body struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
	Pagination any    `json:"pagination,omitempty"`
	Stats      any    `json:"stats,omitempty"`
}

// ErrorBody is the uniform failure envelope.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// FieldViolation is one entry of a VALIDATION_ERROR details list.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is an error that already carries its HTTP mapping.
// Handlers build one when they can classify a failure at the call site;
// Error passes it through unchanged.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details any
	Err     error // internal cause, logged but never sent to the client
}

// Error returns the error message, implementing the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new APIError with the given parameters.
func NewAPIError(status int, code, message string, details any) *APIError {
	return &APIError{Status: status, Code: code, Message: message, Details: details}
}

// JSON writes a JSON response with the given status code and value.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers already sent; nothing to do but log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error normalizes err and writes the failure envelope.
//
// Classification:
//   - entity.ValidationErrors / *entity.ValidationError -> 400 VALIDATION_ERROR
//     with the field violation list as details
//   - wraps entity.ErrNotFound -> 404 NOT_FOUND
//   - wraps entity.ErrInvalidInput -> 400 VALIDATION_ERROR
//   - *APIError -> passed through as-is
//   - anything else -> 500 INTERNAL_ERROR with a generic message; the real
//     error is logged for operators and never reaches the client
func Error(w http.ResponseWriter, logger *slog.Logger, err error) {
	if err == nil {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}

	var verrs entity.ValidationErrors
	if errors.As(err, &verrs) {
		JSON(w, http.StatusBadRequest, ErrorBody{
			Error:   CodeValidationError,
			Message: "invalid request data",
			Details: violations(verrs),
		})
		return
	}

	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		JSON(w, http.StatusBadRequest, ErrorBody{
			Error:   CodeValidationError,
			Message: "invalid request data",
			Details: violations(entity.ValidationErrors{*verr}),
		})
		return
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status >= http.StatusInternalServerError {
			logger.Error("internal error",
				slog.Int("status", apiErr.Status),
				slog.Any("error", err))
		}
		JSON(w, apiErr.Status, ErrorBody{
			Error:   apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		})
		return
	}

	if errors.Is(err, entity.ErrNotFound) {
		JSON(w, http.StatusNotFound, ErrorBody{
			Error:   CodeNotFound,
			Message: err.Error(),
		})
		return
	}

	if errors.Is(err, entity.ErrInvalidInput) {
		JSON(w, http.StatusBadRequest, ErrorBody{
			Error:   CodeValidationError,
			Message: err.Error(),
		})
		return
	}

	// Unclassified failure: log the full detail, return a generic message.
	logger.Error("internal error", slog.Any("error", err))
	JSON(w, http.StatusInternalServerError, ErrorBody{
		Error:   CodeInternalError,
		Message: "an internal error occurred",
	})
}

func violations(errs entity.ValidationErrors) []FieldViolation {
	out := make([]FieldViolation, 0, len(errs))
	for _, v := range errs {
		out = append(out, FieldViolation{Field: v.Field, Message: v.Message})
	}
	return out
}
