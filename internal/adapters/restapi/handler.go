package restapi

import (
	"errors"
	"fmt"
	"net/http"

	"hexquantity/internal/core/application"
	"hexquantity/internal/logger"
	"hexquantity/pkg/hexquantity"

	jsoniter "github.com/json-iterator/go"
)

// maxBodyBytes caps request bodies independently of decoder limits.
const maxBodyBytes = 1 << 20

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPHandler handles incoming HTTP requests for the decoder API.
type HTTPHandler struct {
	decoder hexquantity.Decoder
	logger  logger.AppLogger
}

// NewHTTPHandler creates a new handler with the necessary service dependency.
func NewHTTPHandler(decoder hexquantity.Decoder, appLogger logger.AppLogger) (*HTTPHandler, error) {
	if decoder == nil {
		return nil, errors.New("decoder cannot be nil for HTTPHandler")
	}
	if appLogger == nil {
		return nil, errors.New("logger cannot be nil for HTTPHandler")
	}
	return &HTTPHandler{
		decoder: decoder,
		logger:  appLogger,
	}, nil
}

// HandleDecode handles requests to POST /decode
func (h *HTTPHandler) HandleDecode(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method Not Allowed"}, requestLogger)
		return
	}

	var req DecodeRequest
	if !decodeBody(w, r, &req, requestLogger) {
		return
	}

	res, err := h.decoder.Decode(r.Context(), req.Input)
	if err != nil {
		h.respondWithDecodeError(w, err, requestLogger)
		return
	}

	requestLogger.Debug("Decoded hex quantity", "length", res.Length)
	respondWithJSON(w, http.StatusOK, res, requestLogger)
}

// HandleDecodeBatch handles requests to POST /decode/batch
func (h *HTTPHandler) HandleDecodeBatch(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method Not Allowed"}, requestLogger)
		return
	}

	var req DecodeBatchRequest
	if !decodeBody(w, r, &req, requestLogger) {
		return
	}

	items, err := h.decoder.DecodeBatch(r.Context(), req.Inputs)
	if err != nil {
		h.respondWithDecodeError(w, err, requestLogger)
		return
	}

	requestLogger.Info("Decoded batch", "count", len(items))
	respondWithJSON(w, http.StatusOK, items, requestLogger)
}

// HandleStats handles requests to GET /stats
func (h *HTTPHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method Not Allowed"}, requestLogger)
		return
	}

	stats, err := h.decoder.Stats(r.Context())
	if err != nil {
		requestLogger.Error("Error getting decode stats", "error", err)
		respondWithError(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve stats"}, requestLogger)
		return
	}

	respondWithJSON(w, http.StatusOK, stats, requestLogger)
}

// respondWithDecodeError maps service errors to HTTP status codes.
func (h *HTTPHandler) respondWithDecodeError(w http.ResponseWriter, err error, l logger.AppLogger) {
	var charErr *hexquantity.InvalidCharacterError
	switch {
	case errors.As(err, &charErr):
		offset := charErr.Offset
		respondWithError(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Offset: &offset}, l)
	case errors.Is(err, application.ErrInputTooLong), errors.Is(err, application.ErrBatchTooLarge):
		respondWithError(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: err.Error()}, l)
	default:
		l.Error("Error decoding input", "error", err)
		respondWithError(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to decode input"}, l)
	}
}

// decodeBody reads a JSON body into dst, writing a 400 (or 413 for oversized bodies) response on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, l logger.AppLogger) bool {
	defer func() {
		if err := r.Body.Close(); err != nil {
			l.Warn("Failed to close request body", "error", err)
		}
	}()

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, http.StatusRequestEntityTooLarge,
				ErrorResponse{Error: fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit)}, l)
			return false
		}
		respondWithError(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()}, l)
		return false
	}
	return true
}

// respondWithError logs a warning and sends a JSON error response with the given code.
func respondWithError(w http.ResponseWriter, code int, body ErrorResponse, l logger.AppLogger) {
	l.Warn("Responding with error", "http_code", code, "message", body.Error)
	respondWithJSON(w, code, body, l)
}

// respondWithJSON marshals the given payload into JSON and writes it to the response writer.
func respondWithJSON(w http.ResponseWriter, code int, payload any, l logger.AppLogger) {
	response, err := json.Marshal(payload)
	if err != nil {
		l.Error("Error marshaling JSON response",
			"error", err.Error(),
			"payload_type", fmt.Sprintf("%T", payload),
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if n, writeErr := w.Write(response); writeErr != nil {
		l.Error("Error writing response body", "error", writeErr, "bytes_written", n)
	}
}
