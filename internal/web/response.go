package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fishmasterki/fishmaster/internal/service"
	"github.com/fishmasterki/fishmaster/internal/store"
)

type apiError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: apiError{Code: code, Message: message}})
}

// writeDomainError maps domain errors onto HTTP status codes: validation
// failures become 400 with the offending fields, unknown identifiers 404,
// everything else 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: apiError{
			Code:    "validation_error",
			Message: ve.Error(),
			Fields:  ve.Fields,
		}})
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "not found")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func decodeJSON(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}
