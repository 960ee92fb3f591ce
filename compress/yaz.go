package compress

import (
	"github.com/narahiero/CTLib-sub000/buffer"
	"github.com/narahiero/CTLib-sub000/format"
	"github.com/narahiero/CTLib-sub000/yaz"
)

// YazCodec compresses to and decompresses from a single Yaz variant.
type YazCodec struct {
	variant format.Variant
	opts    []yaz.EncoderOption
}

var _ Codec = YazCodec{}

// NewYazCodec creates a codec bound to variant.
//
// Options are validated on the first Compress call, not here.
//
// Parameters:
//   - variant: Magic written by Compress and required by Decompress
//   - opts: Optional match search settings
//
// Returns:
//   - YazCodec: New codec instance
func NewYazCodec(variant format.Variant, opts ...yaz.EncoderOption) YazCodec {
	return YazCodec{variant: variant, opts: opts}
}

// Variant returns the variant the codec writes and accepts.
func (c YazCodec) Variant() format.Variant {
	return c.variant
}

// Compress encodes data as a stream of the codec's variant.
//
// Empty input yields a nil result, since a stream declaring zero bytes cannot
// be decoded.
func (c YazCodec) Compress(data []byte) ([]byte, error) {
	return compressBytes(data, c.variant, c.opts)
}

// Decompress decodes data, rejecting streams of any other variant with
// errs.ErrInvalidFormat. Empty input yields a nil result.
func (c YazCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	in, err := buffer.Wrap(data)
	if err != nil {
		return nil, err
	}

	out, err := yaz.DecompressAs(in, c.variant)
	if err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// AutoCodec decompresses either variant and compresses as Yaz0.
type AutoCodec struct {
	opts []yaz.EncoderOption
}

var _ Codec = AutoCodec{}

// NewAutoCodec creates a codec that detects the variant from the magic.
func NewAutoCodec(opts ...yaz.EncoderOption) AutoCodec {
	return AutoCodec{opts: opts}
}

// Compress encodes data as Yaz0.
func (c AutoCodec) Compress(data []byte) ([]byte, error) {
	return compressBytes(data, format.VariantYaz0, c.opts)
}

// Decompress decodes a stream of any supported variant.
func (c AutoCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	in, err := buffer.Wrap(data)
	if err != nil {
		return nil, err
	}

	out, err := yaz.Decompress(in)
	if err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func compressBytes(data []byte, variant format.Variant, opts []yaz.EncoderOption) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	in, err := buffer.Wrap(data)
	if err != nil {
		return nil, err
	}

	out, err := yaz.Compress(in, variant, opts...)
	if err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
