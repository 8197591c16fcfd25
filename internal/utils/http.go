package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it with the given status code and a
// "Content-Type: application/json" header.
//
// Marshaling happens before anything is written, so on failure the client
// receives a plain 500 instead of a half-written body, and the wrapped error
// is returned for logging. On success it returns the number of body bytes
// written.
//
//	WriteJSON(w, models.UploadResponse{Success: "Uploaded"}, http.StatusOK)
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
