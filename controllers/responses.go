package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iaigorluiz-svg/nutriai-api/llm"
	"github.com/iaigorluiz-svg/nutriai-api/services"
)

// Error codes returned in the "error" field of failure bodies.
const (
	CodeValidationError       = "VALIDATION_ERROR"
	CodeMissingIdentifier     = "MISSING_IDENTIFIER"
	CodeNotFound              = "NOT_FOUND"
	CodeUpstreamEmptyResponse = "UPSTREAM_EMPTY_RESPONSE"
	CodeUpstreamAuthError     = "UPSTREAM_AUTH_ERROR"
	CodeUpstreamRateLimit     = "UPSTREAM_RATE_LIMIT"
	CodeUpstreamQuota         = "UPSTREAM_QUOTA_EXCEEDED"
	CodeInvalidUpstreamSchema = "INVALID_UPSTREAM_SCHEMA"
	CodeUnknownError          = "UNKNOWN_ERROR"
)

// ErrorResponse is the JSON body of every failure path.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`

	// Diagnostics, only set for UPSTREAM_EMPTY_RESPONSE
	FinishReason string     `json:"finish_reason,omitempty"`
	Usage        *llm.Usage `json:"usage,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, details string) {
	writeJSON(w, status, ErrorResponse{Error: code, Details: details})
}

// writeEstimateError maps a vision/recalculation failure to the error
// taxonomy: typed service errors first, then upstream classification by
// marker, then the catch-all with message passthrough.
func writeEstimateError(w http.ResponseWriter, err error) {
	var emptyErr *services.EmptyResponseError
	if errors.As(err, &emptyErr) {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:        CodeUpstreamEmptyResponse,
			Details:      emptyErr.Error(),
			FinishReason: emptyErr.FinishReason,
			Usage:        &emptyErr.Usage,
		})
		return
	}

	var schemaErr *services.SchemaError
	if errors.As(err, &schemaErr) {
		writeError(w, http.StatusInternalServerError, CodeInvalidUpstreamSchema, schemaErr.Detail)
		return
	}

	switch llm.ClassifyError(err) {
	case llm.ErrClassAuth:
		writeError(w, http.StatusInternalServerError, CodeUpstreamAuthError, err.Error())
	case llm.ErrClassRateLimit:
		writeError(w, http.StatusTooManyRequests, CodeUpstreamRateLimit, err.Error())
	case llm.ErrClassQuota:
		writeError(w, http.StatusInternalServerError, CodeUpstreamQuota, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, CodeUnknownError, err.Error())
	}
}
