package api

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON envelope returned by every endpoint.
type Response struct {
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Code: "ok", Data: data})
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	writeJSON(w, status, Response{
		Code:  code,
		Error: &ErrorDetail{Code: code, Message: err.Error()},
	})
}
