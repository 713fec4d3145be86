package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorBody is the JSON envelope of every non-2xx API response.
type ErrorBody struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// WriteJSON serializes data and writes it with statusCode and an
// application/json content type. If marshaling fails it responds with 500
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an [ErrorBody] with the request's trace ID.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	_, _ = WriteJSON(w, ErrorBody{
		Error:   message,
		TraceID: GetTraceIDFromContext(r.Context()),
	}, statusCode)
}
