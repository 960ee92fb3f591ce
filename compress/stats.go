package compress

import (
	"fmt"
	"time"

	"github.com/narahiero/CTLib-sub000/buffer"
	"github.com/narahiero/CTLib-sub000/errs"
	"github.com/narahiero/CTLib-sub000/format"
	"github.com/narahiero/CTLib-sub000/internal/hash"
	"github.com/narahiero/CTLib-sub000/yaz"
)

// CompressionStats describes one compress and decompress round trip.
type CompressionStats struct {
	// Variant is the magic found at the start of the compressed stream.
	Variant format.Variant

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of the padded stream, header included
	CompressedSize int64

	CompressionTimeNs   int64
	DecompressionTimeNs int64

	// OriginalDigest and RoundTripDigest are xxHash64 digests of the input and
	// of the decompressed output.
	OriginalDigest  uint64
	RoundTripDigest uint64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression. Small or random
// inputs grow because of the header and control bytes.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
//
// Negative values mean the stream is larger than the input.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Verified reports whether the round trip reproduced the input.
func (s CompressionStats) Verified() bool {
	return s.OriginalDigest == s.RoundTripDigest
}

// Measure compresses data with codec, decompresses the result and records
// sizes, timings and digests.
//
// A round trip that does not reproduce the input is reported as
// errs.ErrCorruptedData together with the stats gathered so far.
//
// Parameters:
//   - codec: Codec under measurement
//   - data: Non-empty input
//
// Returns:
//   - CompressionStats: Sizes, timings and digests
//   - error: Codec error, or errs.ErrCorruptedData on a digest mismatch
func Measure(codec Codec, data []byte) (CompressionStats, error) {
	stats := CompressionStats{
		OriginalSize:   int64(len(data)),
		OriginalDigest: hash.Sum(data),
	}

	start := time.Now()
	packed, err := codec.Compress(data)
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return stats, err
	}
	stats.CompressedSize = int64(len(packed))
	stats.Variant, _ = format.VariantFromMagic(packed)

	start = time.Now()
	restored, err := codec.Decompress(packed)
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return stats, err
	}
	stats.RoundTripDigest = hash.Sum(restored)

	if !stats.Verified() || len(restored) != len(data) {
		return stats, fmt.Errorf("%w: round trip digest %s, want %s",
			errs.ErrCorruptedData, hash.Format(stats.RoundTripDigest), hash.Format(stats.OriginalDigest))
	}

	return stats, nil
}

// Detect returns the variant of a compressed stream without decoding it.
func Detect(data []byte) (format.Variant, bool) {
	return format.VariantFromMagic(data)
}

// ReadHeader parses the 16-byte header at the start of data.
func ReadHeader(data []byte) (yaz.Header, error) {
	if len(data) == 0 {
		return yaz.Header{}, fmt.Errorf("%w: empty stream", errs.ErrCorruptedData)
	}

	in, err := buffer.Wrap(data)
	if err != nil {
		return yaz.Header{}, err
	}

	return yaz.ReadHeader(in)
}
