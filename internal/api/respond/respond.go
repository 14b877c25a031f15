// Package respond writes JSON envelopes for HTTP handlers.
package respond

import (
	"encoding/json"
	"net/http"
)

type successResponse struct {
	Result any `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 response wrapping data.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, successResponse{Result: data})
}

// Created writes a 201 response wrapping data.
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, successResponse{Result: data})
}

// Fail writes an error response. Only err's message reaches the client.
func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, errorResponse{Error: err.Error()})
}
