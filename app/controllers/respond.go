package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
)

// sendJSON writes data as a JSON response with the given status code.
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError writes a JSON error body with the given status code.
func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"error": message})
}

// sendValidationErrors writes the 422 body enumerating offending fields.
func sendValidationErrors(w http.ResponseWriter, problems map[string]string) {
	sendJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"errors": problems})
}

// decodeJSON unmarshals a request body into dst, reporting problems
// keyed by field name. A nil result means the body decoded cleanly.
func decodeJSON(r *http.Request, dst interface{}) map[string]string {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return map[string]string{typeErr.Field: "invalid type"}
		}
		return map[string]string{"body": "invalid JSON"}
	}
	return nil
}

// Hello answers the API liveness check.
func Hello(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{"Hello": "world"})
}
