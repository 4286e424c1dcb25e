// internal/app/system/httpjson/httpjson.go

// Package httpjson holds the small JSON response helpers every feature
// handler uses. Responses are encoded inline (no buffering); encode errors
// after the header is written can only be logged by the caller's server.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Message is the body shape for error and notice responses,
// e.g. {"message":"Unauthorized access"}.
type Message struct {
	Message string `json:"message"`
}

// Write sends v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK sends v as JSON with a 200 status.
func OK(w http.ResponseWriter, v any) {
	Write(w, http.StatusOK, v)
}

// Error sends {"message": msg} with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, Message{Message: msg})
}

// Decode reads the request body into dst, rejecting unknown garbage early.
// It returns false after writing a 400 response when the body is not valid
// JSON for dst.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		Error(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
