package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/press-pay/models"
)

// WriteJSON serializes data and writes it with the given status code and
// an application/json content type. It returns the number of body bytes
// written.
//
// If data cannot be marshaled the client gets a bare 500 server_error
// envelope and the marshaling error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"ok":false,"error":"server_error"}`))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the {"ok":false,"error":code} envelope.
func WriteError(w http.ResponseWriter, code string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{OK: false, Error: code}, statusCode)
}
