package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/windrow/farmstead/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body, validates it and
// writes a standardized error response on failure. If it returns an error
// the response has already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetQueryParam retrieves a required query parameter. If it is missing the
// error response has already been written and ok is false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	log := logger.FromContext(r.Context())
	value := r.URL.Query().Get(paramName)
	if value == "" {
		log.Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		http.Error(w, fmt.Sprintf(ErrMsgMissingQueryParam, paramName), http.StatusBadRequest)
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter, falling back
// to defaultValue when absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetCoordParams reads the x and y query parameters as map coordinates.
// If either is missing or malformed the error response has already been
// written and ok is false.
func GetCoordParams(r *http.Request, w http.ResponseWriter) (x, y uint, ok bool) {
	xs, ok := GetQueryParam(r, w, "x")
	if !ok {
		return 0, 0, false
	}
	ys, ok := GetQueryParam(r, w, "y")
	if !ok {
		return 0, 0, false
	}

	xv, errX := strconv.ParseUint(xs, 10, 32)
	yv, errY := strconv.ParseUint(ys, 10, 32)
	if errX != nil || errY != nil {
		http.Error(w, ErrMsgInvalidCoordParam, http.StatusBadRequest)
		return 0, 0, false
	}
	return uint(xv), uint(yv), true
}
