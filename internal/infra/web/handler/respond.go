package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ToolRent/GoToolRent/internal/domain/entity"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps the failure taxonomy onto HTTP statuses. Storage
// failures stay opaque to the client.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrInvalidOperation):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
