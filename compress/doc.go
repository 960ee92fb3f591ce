// Package compress exposes the Yaz codec over plain byte slices.
//
// The yaz package works on buffer.ByteBuffer values and cursors. Most callers
// hold a file image instead, so this package wraps the same encoder and
// decoder behind three small interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Codecs
//
// **YazCodec** is bound to one variant. It writes that magic and refuses to
// decode streams carrying the other one:
//
//	codec := compress.NewYazCodec(format.VariantYaz0)
//	szs, _ := codec.Compress(archive)
//	archive, _ = codec.Decompress(szs)
//
// **AutoCodec** accepts either magic on decode and writes Yaz0:
//
//	archive, err := compress.NewAutoCodec().Decompress(szs)
//
// Built-in codecs with default settings are available from GetCodec.
// CreateCodec builds one with custom match search options:
//
//	codec, err := compress.CreateCodec(format.VariantYaz1, yaz.WithWindowSize(1024))
//
// # Empty Input
//
// Both codecs map an empty slice to nil in either direction. A stream that
// declares zero bytes is never produced.
//
// # Measuring
//
// Measure runs a full round trip and reports sizes, timings and xxHash64
// digests of the input and the restored output:
//
//	stats, err := compress.Measure(codec, data)
//	fmt.Printf("%.1f%% saved\n", stats.SpaceSavings())
package compress
