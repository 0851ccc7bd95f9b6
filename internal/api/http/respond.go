package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/logger"
	"rma-portal-backend/internal/security"
	"rma-portal-backend/internal/service"
)

// envelope matches the response shape the portal front end expects.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// paginated wraps list data with its paging metadata.
type paginated struct {
	Items    interface{} `json:"items"`
	Total    int32       `json:"total"`
	Page     int32       `json:"page"`
	PageSize int32       `json:"page_size"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondOK(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func respondCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: data})
}

// respondError maps service and domain errors onto the status codes
// the portal distinguishes: validation 400, auth 401/403, stale or
// illegal transitions 409, unmet review preconditions 422, missing
// rows 404 and everything else as a retryable upstream failure.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, envelope{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrAccountDisabled), errors.Is(err, security.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, envelope{Error: err.Error()})
	case errors.Is(err, service.ErrForbidden):
		writeJSON(w, http.StatusForbidden, envelope{Error: err.Error()})
	case errors.Is(err, domain.ErrMissingWarrantyDetermination), errors.Is(err, domain.ErrMissingRejectionReason):
		writeJSON(w, http.StatusUnprocessableEntity, envelope{Error: err.Error()})
	case errors.Is(err, domain.ErrIllegalTransition):
		writeJSON(w, http.StatusConflict, envelope{Error: err.Error()})
	case errors.Is(err, sql.ErrNoRows):
		writeJSON(w, http.StatusNotFound, envelope{Error: "not found"})
	default:
		logger.Error("Upstream failure", "error", err)
		writeJSON(w, http.StatusBadGateway, envelope{Error: "service temporarily unavailable, please retry"})
	}
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &domain.ValidationError{Field: "body", Message: "invalid JSON payload"}
	}
	return nil
}
