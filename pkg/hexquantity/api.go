// Package hexquantity decodes hex quantities ("0x7b", "007b", "7b3") into
// minimal big-endian byte slices, and defines the public contract of the
// decoding service.
package hexquantity

import (
	"context"
	"fmt"

	"hexquantity/internal/core/domain"
)

// ErrInvalidCharacter is matched by errors.Is for any input containing a byte outside [0-9A-Fa-f].
var ErrInvalidCharacter = domain.ErrInvalidCharacter

// InvalidCharacterError carries the offending byte and its offset in the input.
type InvalidCharacterError = domain.InvalidCharacterError

// Decode decodes a hex quantity. An optional lowercase "0x" prefix is accepted,
// leading zero digits are ignored and odd-length input is treated as if
// preceded by a zero digit. An all-zero quantity decodes to a single 0x00
// byte; empty input decodes to an empty slice.
func Decode[T ~string | ~[]byte](input T) ([]byte, error) {
	return domain.Decode([]byte(input))
}

// MustDecode is like Decode but panics on error.
func MustDecode[T ~string | ~[]byte](input T) []byte {
	b, err := Decode(input)
	if err != nil {
		panic(fmt.Sprintf("hexquantity: invalid hex quantity %q: %v", string(input), err))
	}
	return b
}

// Result represents a successful decode returned by the service.
type Result struct {
	Input  string `json:"input"`
	Bytes  []int  `json:"bytes"`
	Length int    `json:"length"`
}

// BatchItem is one entry of a batch response. Exactly one of Result and Error is set.
type BatchItem struct {
	Input  string  `json:"input"`
	Result *Result `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// Stats represents decode counters returned by the API.
type Stats struct {
	Total            uint64 `json:"total"`
	Decoded          uint64 `json:"decoded"`
	InvalidCharacter uint64 `json:"invalid_character"`
	Rejected         uint64 `json:"rejected"`
	BytesProduced    uint64 `json:"bytes_produced"`
}

// Decoder defines the public interface for the hex quantity decoding service.
type Decoder interface {
	// Decode decodes a single hex quantity.
	Decode(ctx context.Context, input string) (result Result, err error)

	// DecodeBatch decodes every input independently; a failing item does not abort the batch.
	DecodeBatch(ctx context.Context, inputs []string) (items []BatchItem, err error)

	// Stats returns the counters accumulated since startup.
	Stats(ctx context.Context) (stats Stats, err error)
}
