// Package errs defines the sentinel errors shared by the buffer and codec packages.
//
// Call sites wrap these with additional context using fmt.Errorf and the %w verb,
// so callers should test for them with errors.Is rather than by comparison.
package errs

import "errors"

// Buffer errors.
var (
	// ErrBufferAllocation is returned when a buffer would be created or truncated to zero capacity.
	ErrBufferAllocation = errors.New("buffer allocation error: capacity must be greater than zero")
	// ErrBufferOverflow is returned when a read or write range extends past the buffer limit.
	ErrBufferOverflow = errors.New("buffer overflow")
	// ErrInvalidLimit is returned when a limit larger than the buffer capacity is requested.
	ErrInvalidLimit = errors.New("invalid buffer limit")
	// ErrInvalidPosition is returned when a position beyond the limit, or a negative index, is requested.
	ErrInvalidPosition = errors.New("invalid buffer position")
)

// Codec errors.
var (
	// ErrInvalidFormat is returned when the stream magic is unknown or does not match the requested variant.
	ErrInvalidFormat = errors.New("invalid compressed stream format")
	// ErrCorruptedData is returned when a compressed stream cannot be decoded into its declared length.
	ErrCorruptedData = errors.New("corrupted compressed data")
	// ErrInputTooLarge is returned when an input is longer than the stream header can describe.
	ErrInputTooLarge = errors.New("input too large")
	// ErrInvalidOption is returned when an encoder option is out of range.
	ErrInvalidOption = errors.New("invalid option")
)
