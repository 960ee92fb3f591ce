package compress

import (
	"fmt"

	"github.com/narahiero/CTLib-sub000/errs"
	"github.com/narahiero/CTLib-sub000/format"
	"github.com/narahiero/CTLib-sub000/yaz"
)

// Compressor turns raw bytes into a complete Yaz stream.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Compressor interface {
	// Compress encodes data and returns the padded stream, header included.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores the bytes described by a Yaz stream.
//
// Example:
//
//	decompressor := compress.NewAutoCodec()
//	original, err := decompressor.Decompress(szs)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Thread Safety: the codecs in this package hold no mutable state and are safe
// for concurrent use.
type Decompressor interface {
	// Decompress decodes a stream produced by a matching Compressor.
	//
	// Error conditions:
	//   - errs.ErrInvalidFormat if the magic is unknown or not accepted
	//   - errs.ErrCorruptedData if the stream ends early or references bytes
	//     outside the output
	//
	// Trailing bytes after the last chunk are ignored.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the given variant with the given match
// search settings.
//
// Parameters:
//   - variant: Stream variant written by Compress and required by Decompress
//   - opts: Optional match search settings
//
// Returns:
//   - Codec: YazCodec for the variant
//   - error: errs.ErrInvalidFormat for an unknown variant
func CreateCodec(variant format.Variant, opts ...yaz.EncoderOption) (Codec, error) {
	if !variant.Valid() {
		return nil, fmt.Errorf("%w: unsupported variant %d", errs.ErrInvalidFormat, variant)
	}

	return NewYazCodec(variant, opts...), nil
}

var builtinCodecs = map[format.Variant]Codec{
	format.VariantYaz0: NewYazCodec(format.VariantYaz0),
	format.VariantYaz1: NewYazCodec(format.VariantYaz1),
}

// GetCodec retrieves a built-in Codec with default settings for the variant.
func GetCodec(variant format.Variant) (Codec, error) {
	if codec, ok := builtinCodecs[variant]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: unsupported variant %s", errs.ErrInvalidFormat, variant)
}
