// Package utils holds small HTTP response-writing helpers shared by the
// service's handlers and middleware.
package utils

import (
	"encoding/json"
	"net/http"

	"github.com/gilchrisn/rgcluster/service/models"
)

// WriteSuccessResponse writes a successful JSON response.
func WriteSuccessResponse(w http.ResponseWriter, message string, data interface{}) {
	writeJSONResponse(w, http.StatusOK, models.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// WriteErrorResponse writes an error JSON response.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, err error) {
	resp := models.APIResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	writeJSONResponse(w, statusCode, resp)
}

func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
