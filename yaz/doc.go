// Package yaz implements the Yaz0/Yaz1 LZSS codec used by the game's archive
// and resource files.
//
// # Stream layout
//
//	0x00  magic "Yaz0" or "Yaz1"
//	0x04  uncompressed length, big-endian uint32
//	0x08  reserved, zero
//	0x0C  reserved, zero
//	0x10  groups of one control byte followed by up to eight chunks
//
// Control bits are consumed most significant first. A set bit is a literal
// byte. A clear bit is a back-reference into the bytes already decoded:
//
//	NNNN DDDD DDDD DDDD            length = N + 2 (3..17), distance = D + 1
//	0000 DDDD DDDD DDDD LLLL LLLL  length = L + 18 (18..273)
//
// The stream is zero padded to a multiple of four bytes. Both variants share
// this layout and differ only in their magic.
//
// # Usage
//
//	in, _ := buffer.Wrap(raw)
//	out, err := yaz.Decompress(in)            // any variant
//	out, err = yaz.DecompressAs(in, format.VariantYaz0) // exactly Yaz0
//
//	packed, err := yaz.Compress(out, format.VariantYaz0)
//
// Everything happens in memory; the codec does not stream and holds no
// global state.
package yaz
