// Package restapi implements the RESTful API layer, including DTOs and handlers.
package restapi

// DecodeRequest defines the expected JSON body for the POST /decode endpoint.
type DecodeRequest struct {
	Input string `json:"input"`
}

// DecodeBatchRequest defines the expected JSON body for the POST /decode/batch endpoint.
type DecodeBatchRequest struct {
	Inputs []string `json:"inputs"`
}

// ErrorResponse defines a standard structure for JSON error responses.
// Offset is set only for invalid character errors.
type ErrorResponse struct {
	Error  string `json:"error"`
	Offset *int   `json:"offset,omitempty"`
}
