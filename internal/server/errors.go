package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edooconnect/studycost/internal/calculation"
	"github.com/edooconnect/studycost/internal/refdata"
	"github.com/edooconnect/studycost/internal/store"
)

// ErrInvalidCredentials covers both bad email and bad password so a login
// failure never reveals which one was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNoReport indicates report retrieval before generation.
var ErrNoReport = errors.New("no report generated yet")

// HTTPStatus maps service errors to status codes.
func HTTPStatus(err error) int {
	var locErr *refdata.LocationNotFoundError
	switch {
	case errors.As(err, &locErr):
		return http.StatusBadRequest
	case errors.Is(err, calculation.ErrIncompleteProfile):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrNotFound), errors.Is(err, ErrNoReport):
		return http.StatusNotFound
	case errors.Is(err, store.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeServiceError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	writeError(w, status, message)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
