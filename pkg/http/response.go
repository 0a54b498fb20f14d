package http

import (
	"encoding/json"
	"net/http"

	apperrors "atlascars/pkg/errors"
)

// ErrorResponse is the wire shape for every non-2xx payload. The detail
// field carries the user-facing message; details carries structured
// context such as field-level validation errors.
type ErrorResponse struct {
	Detail  string         `json:"detail"`
	Details map[string]any `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)
	return WriteJSON(w, appErr.StatusCode(), ErrorResponse{
		Detail:  appErr.Message,
		Details: appErr.Details,
	})
}

func WriteCreated(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusCreated, data)
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
