package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/blakestevenson/mediacatalog/internal/apierror"
	"github.com/blakestevenson/mediacatalog/internal/problem"
	"github.com/blakestevenson/mediacatalog/internal/validation"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, "failed to encode response", http.StatusInternalServerError)
		}
	}
}

// RespondNoContent sends an empty 204 response
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondError translates err into a problem document, logs it and sends it
func RespondError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	RespondProblem(w, r, logger, Translate(err), err)
}

// RespondProblem logs a prepared problem document together with its cause
// and sends it. 4xx are logged as warnings, 5xx as errors.
func RespondProblem(w http.ResponseWriter, r *http.Request, logger *zap.Logger, doc *problem.Document, cause error) {
	fields := []zap.Field{
		zap.String("correlation_id", doc.CorrelationID),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Int("status", doc.Status),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if cause != nil {
		fields = append(fields, zap.Error(cause))
	}

	if doc.Status >= http.StatusInternalServerError {
		logger.Error("request failed", fields...)
	} else {
		logger.Warn("request rejected", fields...)
	}

	if err := problem.Write(w, doc); err != nil {
		logger.Debug("failed to write problem response", zap.Error(err))
	}
}

// DecodeJSON decodes a JSON request body and validates the result. Members
// v does not declare are ignored. Malformed JSON, trailing data, type
// mismatches and failed validation produce a *validation.RequestError. A
// body over the configured limit produces a payload_too_large application
// error.
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON body")
		}
		return decodeError(err)
	}

	return validation.ValidateRequest(v)
}

func decodeError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return apierror.PayloadTooLarge(err)
	}
	return validation.NewRequestError(fmt.Errorf("invalid JSON body: %w", err))
}
