package http

import (
	"encoding/json"
	"net/http"

	"potluck-backend/internal/domain"
	"potluck-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP status codes.
// Anything unclassified is an infrastructure failure and reports 500
// without leaking detail.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case domain.IsForbiddenError(err):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case domain.IsNotFoundError(err):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case domain.IsConflictError(err):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		logger.Error("Internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
