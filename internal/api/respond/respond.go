// Package respond writes the JSON envelopes the API uses for every
// response.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type successResponse struct {
	Result interface{} `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func OK(w http.ResponseWriter, result interface{}) {
	writeJSON(w, http.StatusOK, successResponse{Result: result})
}

func Created(w http.ResponseWriter, result interface{}) {
	writeJSON(w, http.StatusCreated, successResponse{Result: result})
}

func Fail(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response body")
	}
}
