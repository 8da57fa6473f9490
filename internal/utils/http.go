package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/shopman/models"
)

// internalErrorBody is written when a response value cannot be encoded.
const internalErrorBody = `{"error":"Internal server error"}`

// WriteJSON encodes data as the JSON body of a statusCode response and
// returns the number of body bytes written. A value that cannot be encoded
// turns the response into a 500 with the standard error body.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	w.Header().Set("Content-Type", "application/json")

	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(body)
}

// WriteError writes the {"error": message} body of every non-2xx response
// of the backend.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
