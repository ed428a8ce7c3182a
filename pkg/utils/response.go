package utils

import (
	"encoding/json"
	"net/http"

	"forklift-backend/internal/apperrors"
)

// JSON writes data as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Error maps an application error to its HTTP status and writes a JSON
// error body. Unknown errors become a 500 without leaking internals.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
		message = err.Error()
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
		message = err.Error()
	case apperrors.IsConflict(err):
		status = http.StatusConflict
		message = err.Error()
	}

	JSON(w, status, map[string]string{"error": message})
}
