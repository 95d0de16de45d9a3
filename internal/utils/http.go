package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// TraceIDHeader carries the request trace ID in both directions.
const TraceIDHeader = "X-Trace-ID"

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// Responses may carry recovered secrets, so they are marked as not
// cacheable. If marshaling fails a 500 is written instead and the error is
// returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteText writes text as a text/plain body with statusCode.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}
