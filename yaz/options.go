package yaz

import (
	"fmt"

	"github.com/narahiero/CTLib-sub000/errs"
	"github.com/narahiero/CTLib-sub000/format"
	"github.com/narahiero/CTLib-sub000/internal/options"
)

// EncoderConfig holds the match search parameters used by Compress.
type EncoderConfig struct {
	windowSize int
	maxMatch   int
}

// EncoderOption configures Compress.
type EncoderOption = options.Option[*EncoderConfig]

func defaultEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		windowSize: format.WindowSize,
		maxMatch:   format.MaxMatchLength,
	}
}

// WindowSize returns how far back the match search looks.
func (c *EncoderConfig) WindowSize() int {
	return c.windowSize
}

// MaxMatch returns the longest match the search will emit.
func (c *EncoderConfig) MaxMatch() int {
	return c.maxMatch
}

// WithWindowSize limits how many preceding bytes are searched for matches.
// Smaller windows compress faster and worse. Valid range is 1..4096.
func WithWindowSize(n int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if n < 1 || n > format.WindowSize {
			return fmt.Errorf("%w: window size %d outside [1, %d]", errs.ErrInvalidOption, n, format.WindowSize)
		}
		c.windowSize = n

		return nil
	})
}

// WithMaxMatch caps the length of emitted back-references. Valid range is
// 3..273; values of 17 or less never produce the three-byte chunk form.
func WithMaxMatch(n int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if n < format.MinMatchLength || n > format.MaxMatchLength {
			return fmt.Errorf("%w: max match %d outside [%d, %d]",
				errs.ErrInvalidOption, n, format.MinMatchLength, format.MaxMatchLength)
		}
		c.maxMatch = n

		return nil
	})
}
