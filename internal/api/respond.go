package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"partyrental/internal/conflict"
	httperrors "partyrental/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeError maps service errors onto HTTP statuses: HTTPError carries its
// own code, engine validation errors are client faults, everything else is
// a 500.
func writeError(w http.ResponseWriter, err error) {
	var httpErr *httperrors.HTTPError
	if errors.As(err, &httpErr) {
		writeJSON(w, httpErr.Code, map[string]string{"error": httpErr.Message})
		return
	}
	var validationErr *conflict.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": validationErr.Error()})
		return
	}
	log.Printf("Internal error: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// parseDate reads a YYYY-MM-DD query or path value.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
