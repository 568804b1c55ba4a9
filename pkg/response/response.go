package response

import (
	"encoding/json"
	"net/http"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	write(w, status, APIResponse{Success: true, Data: data})
}

// Message is JSON with a human-readable note alongside the payload.
func Message(w http.ResponseWriter, status int, msg string, data interface{}) {
	write(w, status, APIResponse{Success: true, Message: msg, Data: data})
}

func Error(w http.ResponseWriter, status int, msg string) {
	write(w, status, APIResponse{Success: false, Message: msg})
}

// Fail is Error with a payload, e.g. per-field validation errors.
func Fail(w http.ResponseWriter, status int, msg string, data interface{}) {
	write(w, status, APIResponse{Success: false, Message: msg, Data: data})
}

func write(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
