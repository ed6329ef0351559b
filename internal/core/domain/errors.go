// Package domain implements the hex quantity decoding pipeline: prefix stripping,
// digit conversion, leading zero canonicalization and big-endian byte packing.
package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter indicates that the input contains a byte outside the hex alphabet.
var ErrInvalidCharacter = errors.New("invalid hex character")

// InvalidCharacterError reports the first offending byte and its offset in the original input.
type InvalidCharacterError struct {
	Char   byte
	Offset int
}

// Error implements the error interface.
func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s %q at offset %d", ErrInvalidCharacter, e.Char, e.Offset)
}

// Unwrap lets errors.Is match ErrInvalidCharacter.
func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}
